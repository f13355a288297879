package entities

import (
	"math"
	"strings"
	"time"
)

// Method identifies which capture path produced a measurement.
//
// Domain notes:
//   - Exactly one method is active per session at a time.
//   - The upload and ar paths are backed by placeholder analysis today;
//     manual carries the user-typed dimensions verbatim.

type Method string

const (
	MethodUpload Method = "upload"
	MethodManual Method = "manual"
	MethodAR     Method = "ar"
)

func (m Method) Valid() bool {
	switch m {
	case MethodUpload, MethodManual, MethodAR:
		return true
	}
	return false
}

// UnitPricePerSquareMeter is the fixed fabric price used for cost estimates.
// Whether this should be configurable is an open product decision; until then
// it stays a named constant.
const UnitPricePerSquareMeter = 12.99

// MeasurementDraft is the transient, in-memory measurement owned by the
// session. It is consumed when the user saves it into history and discarded
// when the session is abandoned; it is never persisted on its own.
type MeasurementDraft struct {
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	Method     Method    `json:"method"`
	CapturedAt time.Time `json:"captured_at"`
}

// Complete reports whether the draft may be reviewed on the results step.
func (d MeasurementDraft) Complete() bool {
	return d.Width > 0 && d.Height > 0 && d.Method.Valid()
}

// Estimates is derived pricing data, recomputed at save time from the draft
// dimensions. Area converts cm x cm to square meters.
type Estimates struct {
	Area float64 `json:"area"`
	Cost float64 `json:"cost"`
}

// CalculateEstimates derives area and cost from centimeter dimensions.
// Both values are rounded to two decimals; cost is computed from the rounded
// area so the stored pair stays internally consistent.
func CalculateEstimates(width, height float64) Estimates {
	area := round2(width * height / 10000)
	return Estimates{
		Area: area,
		Cost: round2(area * UnitPricePerSquareMeter),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// HistoryRecord is a saved measurement. Records are immutable snapshots:
// changing dimensions means saving a new record, never mutating one in place.
type HistoryRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Method    Method    `json:"method"`
	Timestamp time.Time `json:"timestamp"`
	Estimates Estimates `json:"estimates"`
}

// Size is the raw width x height product used by size ordering.
func (r HistoryRecord) Size() float64 {
	return r.Width * r.Height
}

// UploadedFile describes a file offered to the upload capture path. Only the
// declared media type is enforced; size and format limits are advertised by
// the UI but not checked here.
type UploadedFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
}

// IsImage reports whether the declared media type is an image type.
func (f UploadedFile) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(f.ContentType)), "image/")
}
