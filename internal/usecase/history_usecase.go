package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"fabricmeasure/internal/domain/entities"
	"fabricmeasure/internal/usecase/interfaces"
)

var (
	ErrRecordNotFound   = errors.New("measurement not found")
	ErrInvalidRecordID  = errors.New("invalid measurement id")
	ErrInvalidSortKey   = errors.New("invalid sort key")
	ErrInvalidSortOrder = errors.New("invalid sort order")
)

// SortKey selects the field history views are ordered by.
type SortKey string

// SortOrder selects the direction of a history view.
type SortOrder string

const (
	SortKeyDate SortKey = "date"
	SortKeyName SortKey = "name"
	SortKeySize SortKey = "size"

	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// ParseSortKey maps a query value to a SortKey. Empty means the default
// date ordering.
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return SortKeyDate, nil
	case SortKeyDate:
		return SortKeyDate, nil
	case SortKeyName:
		return SortKeyName, nil
	case SortKeySize:
		return SortKeySize, nil
	}
	return "", ErrInvalidSortKey
}

// ParseSortOrder maps a query value to a SortOrder. Empty means the default
// newest-first ordering.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return SortOrderDesc, nil
	case SortOrderAsc:
		return SortOrderAsc, nil
	case SortOrderDesc:
		return SortOrderDesc, nil
	}
	return "", ErrInvalidSortOrder
}

// IHistoryUseCase exposes the saved-measurement history.
//
// Browse is the history page view: search filter plus sort, both derived,
// never mutating the stored collection.

type IHistoryUseCase interface {
	List(ctx context.Context) ([]entities.HistoryRecord, error)
	Browse(ctx context.Context, term string, key SortKey, order SortOrder) ([]entities.HistoryRecord, error)
	Get(ctx context.Context, id string) (entities.HistoryRecord, error)
	Remove(ctx context.Context, id string) error
	ExportCSV(ctx context.Context, id string) (data []byte, filename string, err error)
}

type HistoryUseCase struct {
	repo interfaces.IHistoryRepository
}

var _ IHistoryUseCase = (*HistoryUseCase)(nil)

func NewHistoryUseCase(repo interfaces.IHistoryRepository) *HistoryUseCase {
	return &HistoryUseCase{repo: repo}
}

func (u *HistoryUseCase) List(ctx context.Context) ([]entities.HistoryRecord, error) {
	return u.repo.List(ctx)
}

func (u *HistoryUseCase) Browse(ctx context.Context, term string, key SortKey, order SortOrder) ([]entities.HistoryRecord, error) {
	records, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return SortRecords(Search(records, term), key, order), nil
}

func (u *HistoryUseCase) Get(ctx context.Context, id string) (entities.HistoryRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.HistoryRecord{}, ErrInvalidRecordID
	}
	records, err := u.repo.List(ctx)
	if err != nil {
		return entities.HistoryRecord{}, err
	}
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return entities.HistoryRecord{}, ErrRecordNotFound
}

func (u *HistoryUseCase) Remove(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRecordID
	}
	// Removing an unknown id is a success: delete is idempotent.
	return u.repo.Remove(ctx, id)
}

func (u *HistoryUseCase) ExportCSV(ctx context.Context, id string) ([]byte, string, error) {
	record, err := u.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "name", "type", "notes", "width_cm", "height_cm", "method", "timestamp", "area_m2", "estimated_cost"})
	_ = w.Write([]string{
		record.ID,
		record.Name,
		record.Type,
		record.Notes,
		formatFloat(record.Width),
		formatFloat(record.Height),
		string(record.Method),
		record.Timestamp.UTC().Format(time.RFC3339),
		formatFloat(record.Estimates.Area),
		formatFloat(record.Estimates.Cost),
	})
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), record.ID + ".csv", nil
}

// Search filters records by a case-insensitive substring match against name,
// type, and notes. Absent optional fields never match. An empty term returns
// the input unchanged.
func Search(records []entities.HistoryRecord, term string) []entities.HistoryRecord {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return records
	}
	out := make([]entities.HistoryRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), term) ||
			(r.Type != "" && strings.Contains(strings.ToLower(r.Type), term)) ||
			(r.Notes != "" && strings.Contains(strings.ToLower(r.Notes), term)) {
			out = append(out, r)
		}
	}
	return out
}

// SortRecords returns an ordered view of the records. The input slice is
// never mutated; ties keep their prior relative order (stable sort).
func SortRecords(records []entities.HistoryRecord, key SortKey, order SortOrder) []entities.HistoryRecord {
	out := make([]entities.HistoryRecord, len(records))
	copy(out, records)

	var less func(a, b entities.HistoryRecord) bool
	switch key {
	case SortKeyName:
		less = func(a, b entities.HistoryRecord) bool { return a.Name < b.Name }
	case SortKeySize:
		less = func(a, b entities.HistoryRecord) bool { return a.Size() < b.Size() }
	default:
		less = func(a, b entities.HistoryRecord) bool { return a.Timestamp.Before(b.Timestamp) }
	}

	sort.SliceStable(out, func(i, j int) bool {
		if order == SortOrderDesc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
