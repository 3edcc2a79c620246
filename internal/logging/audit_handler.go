package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/campusconnect/appointment-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditHandler is an slog.Handler that batches records into the audit_logs
// table. It persists every record tagged with an "action" attribute (account
// decisions, bookings, partial failures) plus anything at ERROR or above, so
// an operator can reconcile two-step writes that failed halfway.
type AuditHandler struct {
	sink    auditSink
	mu      sync.Mutex
	buffer  []models.AuditLog
	ticker  *time.Ticker
	done    chan struct{}
	stopped chan struct{}
}

// auditSink persists a flushed batch. The indirection keeps the batching
// logic testable without a live database.
type auditSink interface {
	Save(batch []models.AuditLog) error
}

type gormSink struct {
	db *gorm.DB
}

func (s gormSink) Save(batch []models.AuditLog) error {
	return s.db.CreateInBatches(batch, flushBatchSize).Error
}

const flushBatchSize = 50

func NewAuditHandler(db *gorm.DB) *AuditHandler {
	return newAuditHandler(gormSink{db: db})
}

func newAuditHandler(sink auditSink) *AuditHandler {
	h := &AuditHandler{
		sink:    sink,
		buffer:  make([]models.AuditLog, 0, flushBatchSize),
		ticker:  time.NewTicker(5 * time.Second),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go h.flushLoop()
	return h
}

func (h *AuditHandler) flushLoop() {
	defer close(h.stopped)
	for {
		select {
		case <-h.ticker.C:
			h.flush()
		case <-h.done:
			h.flush()
			return
		}
	}
}

func (h *AuditHandler) flush() {
	h.mu.Lock()
	if len(h.buffer) == 0 {
		h.mu.Unlock()
		return
	}
	batch := h.buffer
	h.buffer = make([]models.AuditLog, 0, flushBatchSize)
	h.mu.Unlock()

	if err := h.sink.Save(batch); err != nil {
		slog.New(stdoutHandler()).Error("failed to flush audit logs", "error", err, "count", len(batch))
	}
}

// Stop flushes whatever is buffered and waits for the flush loop to exit, so
// shutdown never loses tail records.
func (h *AuditHandler) Stop() {
	h.ticker.Stop()
	close(h.done)
	<-h.stopped
}

func (h *AuditHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (h *AuditHandler) Handle(_ context.Context, record slog.Record) error {
	entry := models.AuditLog{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	record.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "user_id":
			s := a.Value.String()
			entry.UserID = &s
		case "action":
			entry.Action = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	})

	// Plain INFO chatter without an action tag stays out of the table.
	if entry.Action == "" && record.Level < slog.LevelError {
		return nil
	}

	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	h.mu.Lock()
	h.buffer = append(h.buffer, entry)
	needFlush := len(h.buffer) >= flushBatchSize
	h.mu.Unlock()

	if needFlush {
		go h.flush()
	}
	return nil
}

func (h *AuditHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *AuditHandler) WithGroup(name string) slog.Handler {
	return h
}
