package handlers

import (
	"errors"
	"net/http"

	request "fabricmeasure/internal/adapter/http/dto/request"
	response "fabricmeasure/internal/adapter/http/dto/response"
	"fabricmeasure/internal/usecase"
	"fabricmeasure/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)
)

// SessionHandler exposes the measurement wizard over HTTP: method selection,
// the three capture paths, the draft accessor, save, and abandon.

type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

func (h *SessionHandler) SelectMethod(c *gin.Context) {
	var payload request.SelectMethodRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	method, ok := payload.ResolveMethod()
	if !ok {
		appErr := pkg.NewDomainErrorSimple("INVALID_METHOD", "Measurement method must be upload, manual or ar", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	snapshot, err := h.usecase.SelectMethod(c.Request.Context(), method)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSnapshot(snapshot))
}

func (h *SessionHandler) CaptureUpload(c *gin.Context) {
	var payload request.UploadCaptureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.CaptureUpload(c.Request.Context(), payload.ToUploadedFile())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *SessionHandler) CaptureManual(c *gin.Context) {
	var payload request.ManualCaptureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	draft, err := h.usecase.CaptureManual(c.Request.Context(), payload.Width, payload.Height)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *SessionHandler) StartAR(c *gin.Context) {
	snapshot, err := h.usecase.StartAR(c.Request.Context())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSnapshot(snapshot))
}

func (h *SessionHandler) CaptureAR(c *gin.Context) {
	draft, err := h.usecase.CaptureAR(c.Request.Context())
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSnapshot(h.usecase.Snapshot()))
}

func (h *SessionHandler) GetDraft(c *gin.Context) {
	draft, ok := h.usecase.CurrentDraft()
	if !ok {
		appErr := pkg.NewDomainErrorSimple("NO_DRAFT", "No measurement draft available", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDraft(draft))
}

func (h *SessionHandler) Save(c *gin.Context) {
	var payload request.SaveMeasurementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	record, err := h.usecase.Save(c.Request.Context(), payload.Name, payload.Type, payload.Notes)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRecord(record))
}

func (h *SessionHandler) Abandon(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSnapshot(h.usecase.Abandon(c.Request.Context())))
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMethod):
		return pkg.NewDomainErrorSimple("INVALID_METHOD", "Measurement method must be upload, manual or ar", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAnImage):
		return pkg.NewDomainErrorSimple("NOT_AN_IMAGE", "Selected file is not an image", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDimensions):
		return pkg.NewDomainErrorSimple("INVALID_DIMENSIONS", "Width and height must be positive numbers", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyName):
		return pkg.NewDomainErrorSimple("EMPTY_NAME", "Please enter a fabric name before saving", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCameraUnavailable):
		return pkg.NewDomainErrorSimple("CAMERA_UNSUPPORTED", "Camera unavailable; choose a different measurement method", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNoDraft):
		return pkg.NewDomainErrorSimple("NO_DRAFT", "No measurement draft available", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMethodNotSelected),
		errors.Is(err, usecase.ErrMethodMismatch),
		errors.Is(err, usecase.ErrSessionComplete),
		errors.Is(err, usecase.ErrCameraNotActive),
		errors.Is(err, usecase.ErrOperationInFlight),
		errors.Is(err, usecase.ErrSessionReset):
		return pkg.NewDomainError("SESSION_CONFLICT", "Operation not allowed in the current session state", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
