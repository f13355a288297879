package response

import (
	"time"

	"fabricmeasure/internal/domain/entities"
)

type SessionResponse struct {
	State    string `json:"state"`
	Method   string `json:"method,omitempty"`
	HasDraft bool   `json:"has_draft"`
}

func FromSnapshot(s entities.SessionSnapshot) SessionResponse {
	return SessionResponse{
		State:    string(s.State),
		Method:   string(s.Method),
		HasDraft: s.HasDraft,
	}
}

type DraftResponse struct {
	Width      float64   `json:"width"`
	Height     float64   `json:"height"`
	Method     string    `json:"method"`
	CapturedAt time.Time `json:"captured_at"`
}

func FromDraft(d entities.MeasurementDraft) DraftResponse {
	return DraftResponse{
		Width:      d.Width,
		Height:     d.Height,
		Method:     string(d.Method),
		CapturedAt: d.CapturedAt,
	}
}

type EstimatesResponse struct {
	Area float64 `json:"area"`
	Cost float64 `json:"cost"`
}

type MeasurementResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Type      string            `json:"type,omitempty"`
	Notes     string            `json:"notes,omitempty"`
	Width     float64           `json:"width"`
	Height    float64           `json:"height"`
	Method    string            `json:"method"`
	Timestamp time.Time         `json:"timestamp"`
	Estimates EstimatesResponse `json:"estimates"`
}

func FromRecord(r entities.HistoryRecord) MeasurementResponse {
	return MeasurementResponse{
		ID:        r.ID,
		Name:      r.Name,
		Type:      r.Type,
		Notes:     r.Notes,
		Width:     r.Width,
		Height:    r.Height,
		Method:    string(r.Method),
		Timestamp: r.Timestamp,
		Estimates: EstimatesResponse{Area: r.Estimates.Area, Cost: r.Estimates.Cost},
	}
}
