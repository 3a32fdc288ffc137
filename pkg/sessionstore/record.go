package sessionstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"
)

// Record is the cross-reload memory of the last-active business. Managers
// additionally carry their own ID so support can trace which account pinned
// the session.
type Record struct {
	BusinessID   string `json:"businessId"`
	BusinessName string `json:"businessName"`
	Timestamp    int64  `json:"timestamp"`
	ManagerID    string `json:"managerId,omitempty"`
}

// NewRecord builds a record for the given business stamped with the current
// time in milliseconds.
func NewRecord(businessID, businessName, managerID string) Record {
	return Record{
		BusinessID:   businessID,
		BusinessName: businessName,
		Timestamp:    time.Now().UnixMilli(),
		ManagerID:    managerID,
	}
}

// Records is the typed session-record layer over a raw Store. Persistence
// here is strictly best-effort: a failing store must never break resolution,
// so every store error is logged and swallowed and the feature continues
// without cross-reload persistence.
type Records struct {
	store Store
	key   string
	log   *slog.Logger
}

// NewRecords wraps store with the fixed key for this browsing session.
// A nil logger falls back to slog.Default.
func NewRecords(store Store, key string, log *slog.Logger) *Records {
	if log == nil {
		log = slog.Default()
	}
	return &Records{store: store, key: key, log: log}
}

// Load reads the session record. A missing record, a store failure, and an
// unparseable value all read as "no record".
func (r *Records) Load(ctx context.Context) (Record, bool) {
	raw, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		r.log.WarnContext(ctx, "session store read failed", "error", err)
		return Record{}, false
	}
	if !ok {
		return Record{}, false
	}

	var rec Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		r.log.WarnContext(ctx, "session record corrupt, discarding", "error", err)
		_ = r.store.Remove(ctx, r.key)
		return Record{}, false
	}
	if rec.BusinessID == "" {
		return Record{}, false
	}
	return rec, true
}

// Save writes the session record, replacing any prior one.
func (r *Records) Save(ctx context.Context, rec Record) {
	raw, err := json.Marshal(rec)
	if err != nil {
		r.log.WarnContext(ctx, "session record marshal failed", "error", err)
		return
	}
	if err := r.store.Set(ctx, r.key, string(raw)); err != nil {
		r.log.WarnContext(ctx, "session store write failed", "error", err)
	}
}

// Clear removes the session record.
func (r *Records) Clear(ctx context.Context) {
	if err := r.store.Remove(ctx, r.key); err != nil {
		r.log.WarnContext(ctx, "session store remove failed", "error", err)
	}
}
