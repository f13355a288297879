package handlers

import (
	"errors"
	"fmt"
	"net/http"

	response "fabricmeasure/internal/adapter/http/dto/response"
	"fabricmeasure/internal/usecase"
	"fabricmeasure/pkg"

	"github.com/gin-gonic/gin"
)

// HistoryHandler exposes the saved-measurement history: browse with
// search/sort, view, delete, and export.

type HistoryHandler struct {
	usecase usecase.IHistoryUseCase
}

func NewHistoryHandler(uc usecase.IHistoryUseCase) *HistoryHandler {
	return &HistoryHandler{usecase: uc}
}

func (h *HistoryHandler) List(c *gin.Context) {
	key, err := usecase.ParseSortKey(c.Query("sort_by"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_SORT", "sort_by must be date, name or size", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	order, err := usecase.ParseSortOrder(c.Query("order"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_SORT", "order must be asc or desc", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	records, err := h.usecase.Browse(c.Request.Context(), c.Query("search"), key, order)
	if err != nil {
		appErr := mapHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecords(records))
}

func (h *HistoryHandler) Get(c *gin.Context) {
	record, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecord(record))
}

// Delete is idempotent: deleting an id that no longer exists responds the
// same as deleting one that does.
func (h *HistoryHandler) Delete(c *gin.Context) {
	if err := h.usecase.Remove(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *HistoryHandler) Export(c *gin.Context) {
	data, filename, err := h.usecase.ExportCSV(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapHistoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

func mapHistoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRecordID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRecordNotFound):
		return pkg.NewDomainErrorSimple("MEASUREMENT_NOT_FOUND", "Measurement not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
