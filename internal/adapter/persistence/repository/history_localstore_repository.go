package repository

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"fabricmeasure/internal/domain/entities"
	"fabricmeasure/internal/infrastructure/localstore"
	"fabricmeasure/internal/usecase/interfaces"
)

const defaultHistorySlotKey = "fabricMeasurementHistory"

// historySchemaVersion is the current on-disk document version. Version 0
// (no envelope, bare record array) is still readable for migration.
const historySchemaVersion = 1

type historyEstimatesItem struct {
	Area float64 `json:"area"`
	Cost float64 `json:"cost"`
}

type historyItem struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Type      string               `json:"type,omitempty"`
	Notes     string               `json:"notes,omitempty"`
	Width     float64              `json:"width"`
	Height    float64              `json:"height"`
	Method    string               `json:"method"`
	Timestamp string               `json:"timestamp"`
	Estimates historyEstimatesItem `json:"estimates"`
}

type historyDocument struct {
	SchemaVersion int           `json:"schema_version"`
	Records       []historyItem `json:"records"`
}

// HistoryLocalStoreRepository persists the measurement history as one JSON
// document under one slot key, newest record first.
//
// Failure model: the store is local and favors UI availability over strict
// integrity. A missing or unparsable document degrades to an empty
// collection; it is never surfaced as an error.
//
// Writes are read-modify-write of the whole document against the latest
// persisted snapshot. Concurrent writers from other processes are not
// guarded beyond that; the session model assumes a single writer.

type HistoryLocalStoreRepository struct {
	store   *localstore.Store
	slotKey string
}

var _ interfaces.IHistoryRepository = (*HistoryLocalStoreRepository)(nil)

func NewHistoryLocalStoreRepository(store *localstore.Store) *HistoryLocalStoreRepository {
	return &HistoryLocalStoreRepository{
		store:   store,
		slotKey: getenvDefault("HISTORY_SLOT_KEY", defaultHistorySlotKey),
	}
}

func (r *HistoryLocalStoreRepository) List(ctx context.Context) ([]entities.HistoryRecord, error) {
	items := r.load(ctx)
	records := make([]entities.HistoryRecord, 0, len(items))
	for _, it := range items {
		records = append(records, fromHistoryItem(it))
	}
	return records, nil
}

func (r *HistoryLocalStoreRepository) Append(ctx context.Context, record entities.HistoryRecord) error {
	items := r.load(ctx)
	items = append([]historyItem{toHistoryItem(record)}, items...)
	return r.persist(ctx, items)
}

func (r *HistoryLocalStoreRepository) Remove(ctx context.Context, id string) error {
	items := r.load(ctx)
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	return r.persist(ctx, kept)
}

// load reads the full persisted collection. Every failure degrades to an
// empty collection.
func (r *HistoryLocalStoreRepository) load(ctx context.Context) []historyItem {
	value, ok, err := r.store.Get(ctx, r.slotKey)
	if err != nil {
		log.Printf("[history][store] read failed, treating as empty: %v", err)
		return nil
	}
	if !ok {
		return nil
	}

	var doc historyDocument
	if err := json.Unmarshal([]byte(value), &doc); err == nil && doc.SchemaVersion >= historySchemaVersion {
		return doc.Records
	}

	// Version 0: the slot holds a bare record array.
	var legacy []historyItem
	if err := json.Unmarshal([]byte(value), &legacy); err == nil {
		return legacy
	}

	log.Printf("[history][store] unparsable document in slot %q, treating as empty", r.slotKey)
	return nil
}

func (r *HistoryLocalStoreRepository) persist(ctx context.Context, items []historyItem) error {
	doc := historyDocument{
		SchemaVersion: historySchemaVersion,
		Records:       items,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.slotKey, string(data))
}

func toHistoryItem(rec entities.HistoryRecord) historyItem {
	return historyItem{
		ID:        rec.ID,
		Name:      rec.Name,
		Type:      rec.Type,
		Notes:     rec.Notes,
		Width:     rec.Width,
		Height:    rec.Height,
		Method:    string(rec.Method),
		Timestamp: rec.Timestamp.UTC().Format(time.RFC3339Nano),
		Estimates: historyEstimatesItem{Area: rec.Estimates.Area, Cost: rec.Estimates.Cost},
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func fromHistoryItem(it historyItem) entities.HistoryRecord {
	timestamp, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	return entities.HistoryRecord{
		ID:        it.ID,
		Name:      it.Name,
		Type:      it.Type,
		Notes:     it.Notes,
		Width:     it.Width,
		Height:    it.Height,
		Method:    entities.Method(it.Method),
		Timestamp: timestamp,
		Estimates: entities.Estimates{Area: it.Estimates.Area, Cost: it.Estimates.Cost},
	}
}
