// Package notifier runs the background worker that turns documents with an
// approaching due date into inbox notifications.
package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/sismin/backoffice-api/internal/api/metrics"
	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/ports"
)

const (
	defaultInterval  = time.Hour
	defaultLookahead = 7 * 24 * time.Hour
)

// Dedup suppresses repeat reminders for the same document on the same day.
type Dedup interface {
	Seen(ctx context.Context, documentID string, day time.Time) (bool, error)
	Mark(ctx context.Context, documentID string, day time.Time) error
}

// ReminderWorker periodically scans for documents due within the lookahead
// window and publishes one notification per document per day.
type ReminderWorker struct {
	documents     ports.DocumentRepository
	notifications ports.NotificationRepository
	dedup         Dedup
	interval      time.Duration
	lookahead     time.Duration
	log           zerolog.Logger
}

// NewReminderWorker creates a ReminderWorker. Non-positive interval or
// lookahead fall back to the defaults.
func NewReminderWorker(documents ports.DocumentRepository, notifications ports.NotificationRepository, dedup Dedup, interval, lookahead time.Duration, log zerolog.Logger) *ReminderWorker {
	if interval <= 0 {
		interval = defaultInterval
	}
	if lookahead <= 0 {
		lookahead = defaultLookahead
	}
	return &ReminderWorker{
		documents:     documents,
		notifications: notifications,
		dedup:         dedup,
		interval:      interval,
		lookahead:     lookahead,
		log:           log,
	}
}

// Start launches the worker goroutine. It stops when ctx is cancelled.
func (w *ReminderWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *ReminderWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	if err := w.Scan(ctx); err != nil {
		w.log.Error().Err(err).Msg("reminder scan failed")
	}
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.Scan(ctx); err != nil {
				w.log.Error().Err(err).Msg("reminder scan failed")
			}
		}
	}
}

// Scan performs one pass. A dedup failure for a single document is logged and
// skipped so one bad key cannot stall the whole batch.
func (w *ReminderWorker) Scan(ctx context.Context) error {
	timer := prometheus.NewTimer(metrics.ReminderScanDuration)
	defer timer.ObserveDuration()

	now := time.Now().UTC()
	due, err := w.documents.FindDueBetween(ctx, now, now.Add(w.lookahead))
	if err != nil {
		return fmt.Errorf("find due documents: %w", err)
	}

	for _, doc := range due {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		seen, err := w.dedup.Seen(ctx, doc.ID, now)
		if err != nil {
			w.log.Error().Err(err).Str("document_id", doc.ID).Msg("reminder dedup check failed")
			continue
		}
		if seen {
			metrics.ReminderDedupTotal.WithLabelValues("hit").Inc()
			continue
		}
		metrics.ReminderDedupTotal.WithLabelValues("miss").Inc()

		if err := w.publish(ctx, doc, now); err != nil {
			w.log.Error().Err(err).Str("document_id", doc.ID).Msg("reminder publish failed")
			continue
		}
		if err := w.dedup.Mark(ctx, doc.ID, now); err != nil {
			w.log.Error().Err(err).Str("document_id", doc.ID).Msg("reminder dedup mark failed")
		}
	}
	return nil
}

func (w *ReminderWorker) publish(ctx context.Context, doc *domain.Document, now time.Time) error {
	days := int(doc.DueDate.Sub(now).Hours() / 24)
	n := &domain.Notification{
		Title:        fmt.Sprintf("Document due: %s", doc.FileName),
		Message:      fmt.Sprintf("%s (%s) is due in %d days", doc.FileName, doc.Category, days),
		Type:         domain.NotifyDocument,
		ConcessionID: doc.ConcessionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if doc.IsGlobal {
		n.ConcessionID = ""
	}

	if _, err := w.notifications.Create(ctx, n); err != nil {
		return err
	}
	scope := "concession"
	if doc.IsGlobal {
		scope = "global"
	}
	metrics.RemindersPublishedTotal.WithLabelValues(scope).Inc()
	w.log.Info().
		Str("document_id", doc.ID).
		Str("concession_id", n.ConcessionID).
		Msg("due date reminder published")
	return nil
}
