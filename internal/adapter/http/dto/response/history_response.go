package response

import "fabricmeasure/internal/domain/entities"

type HistoryResponse struct {
	Count   int                   `json:"count"`
	Records []MeasurementResponse `json:"records"`
}

func FromRecords(records []entities.HistoryRecord) HistoryResponse {
	out := HistoryResponse{
		Count:   len(records),
		Records: make([]MeasurementResponse, 0, len(records)),
	}
	for _, r := range records {
		out.Records = append(out.Records, FromRecord(r))
	}
	return out
}
