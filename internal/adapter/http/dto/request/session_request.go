package request

import (
	"strings"

	"fabricmeasure/internal/domain/entities"
)

// SelectMethodRequest picks one of the three capture paths.
type SelectMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

// ResolveMethod normalizes and validates the requested method.
func (r SelectMethodRequest) ResolveMethod() (entities.Method, bool) {
	m := entities.Method(strings.ToLower(strings.TrimSpace(r.Method)))
	if !m.Valid() {
		return "", false
	}
	return m, true
}

// UploadCaptureRequest describes the selected or dropped file. Only the
// declared media type is validated downstream.
type UploadCaptureRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	SizeBytes   int64  `json:"size_bytes"`
}

func (r UploadCaptureRequest) ToUploadedFile() entities.UploadedFile {
	return entities.UploadedFile{
		Filename:    strings.TrimSpace(r.Filename),
		ContentType: strings.TrimSpace(r.ContentType),
		SizeBytes:   r.SizeBytes,
	}
}

// ManualCaptureRequest carries the user-typed dimensions in centimeters.
// The unit label shown by the UI is cosmetic and never sent here.
type ManualCaptureRequest struct {
	Width  float64 `json:"width" binding:"required"`
	Height float64 `json:"height" binding:"required"`
}

// SaveMeasurementRequest labels the reviewed draft before it is saved.
type SaveMeasurementRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Notes string `json:"notes"`
}
