package notifier

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sismin/backoffice-api/internal/core/access"
	"github.com/sismin/backoffice-api/internal/core/domain"
	"github.com/sismin/backoffice-api/internal/core/ports"
)

type stubDocumentRepo struct {
	docs []*domain.Document
}

func (s *stubDocumentRepo) Create(_ context.Context, d *domain.Document) (*domain.Document, error) {
	s.docs = append(s.docs, d)
	return d, nil
}

func (s *stubDocumentRepo) FindByID(_ context.Context, id string) (*domain.Document, error) {
	for _, d := range s.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, domain.ErrDocumentNotFound
}

func (s *stubDocumentRepo) List(_ context.Context, _ ports.ListDocumentsFilter) ([]*domain.Document, error) {
	return s.docs, nil
}

func (s *stubDocumentRepo) Update(_ context.Context, _ *domain.Document) error { return nil }

func (s *stubDocumentRepo) FindDueBetween(_ context.Context, from, to time.Time) ([]*domain.Document, error) {
	out := make([]*domain.Document, 0)
	for _, d := range s.docs {
		if d.DeletedAt != nil || d.DueDate == nil {
			continue
		}
		if !d.DueDate.Before(from) && !d.DueDate.After(to) {
			out = append(out, d)
		}
	}
	return out, nil
}

type stubNotificationSink struct {
	created []*domain.Notification
}

func (s *stubNotificationSink) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	s.created = append(s.created, n)
	return n, nil
}

func (s *stubNotificationSink) FindByID(_ context.Context, _ string) (*domain.Notification, error) {
	return nil, domain.ErrNotificationNotFound
}

func (s *stubNotificationSink) List(_ context.Context, _ ports.ListNotificationsFilter) ([]*domain.Notification, error) {
	return s.created, nil
}

func (s *stubNotificationSink) MarkRead(_ context.Context, _ string) error { return nil }

func (s *stubNotificationSink) MarkAllRead(_ context.Context, _ access.Scope) (int64, error) {
	return 0, nil
}

func (s *stubNotificationSink) CountUnread(_ context.Context, _ access.Scope) (int64, error) {
	return int64(len(s.created)), nil
}

type stubDedup struct {
	seen map[string]bool
}

func newStubDedup() *stubDedup { return &stubDedup{seen: make(map[string]bool)} }

func (s *stubDedup) key(id string, day time.Time) string {
	return id + ":" + day.UTC().Format("2006-01-02")
}

func (s *stubDedup) Seen(_ context.Context, id string, day time.Time) (bool, error) {
	return s.seen[s.key(id, day)], nil
}

func (s *stubDedup) Mark(_ context.Context, id string, day time.Time) error {
	s.seen[s.key(id, day)] = true
	return nil
}

func dueIn(d time.Duration) *time.Time {
	t := time.Now().UTC().Add(d)
	return &t
}

func TestReminderWorker_Scan_PublishesForDueDocuments(t *testing.T) {
	docs := &stubDocumentRepo{docs: []*domain.Document{
		{ID: "d1", ConcessionID: "c1", FileName: "insurance.pdf", Category: "insurance", DueDate: dueIn(48 * time.Hour)},
		{ID: "d2", ConcessionID: "c2", FileName: "far.pdf", Category: "permits", DueDate: dueIn(30 * 24 * time.Hour)},
		{ID: "d3", ConcessionID: "c1", FileName: "none.pdf", Category: "invoices"},
	}}
	sink := &stubNotificationSink{}
	worker := NewReminderWorker(docs, sink, newStubDedup(), 0, 0, zerolog.Nop())

	if err := worker.Scan(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sink.created) != 1 {
		t.Fatalf("expected 1 reminder, got %d", len(sink.created))
	}
	n := sink.created[0]
	if n.Type != domain.NotifyDocument || n.ConcessionID != "c1" {
		t.Errorf("unexpected notification: %+v", n)
	}
}

func TestReminderWorker_Scan_DedupSuppressesRepeats(t *testing.T) {
	docs := &stubDocumentRepo{docs: []*domain.Document{
		{ID: "d1", ConcessionID: "c1", FileName: "insurance.pdf", Category: "insurance", DueDate: dueIn(48 * time.Hour)},
	}}
	sink := &stubNotificationSink{}
	worker := NewReminderWorker(docs, sink, newStubDedup(), 0, 0, zerolog.Nop())

	for i := 0; i < 3; i++ {
		if err := worker.Scan(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if len(sink.created) != 1 {
		t.Fatalf("expected a single reminder across repeated scans, got %d", len(sink.created))
	}
}

func TestReminderWorker_Scan_GlobalDocumentPublishesGlobally(t *testing.T) {
	docs := &stubDocumentRepo{docs: []*domain.Document{
		{ID: "d1", ConcessionID: "c1", IsGlobal: true, FileName: "tax.pdf", Category: "taxes", DueDate: dueIn(24 * time.Hour)},
	}}
	sink := &stubNotificationSink{}
	worker := NewReminderWorker(docs, sink, newStubDedup(), 0, 0, zerolog.Nop())

	if err := worker.Scan(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sink.created) != 1 || sink.created[0].ConcessionID != "" {
		t.Fatalf("global document must publish a global notification, got %+v", sink.created)
	}
}

func TestReminderWorker_Scan_CancelledContext(t *testing.T) {
	docs := &stubDocumentRepo{docs: []*domain.Document{
		{ID: "d1", ConcessionID: "c1", FileName: "a.pdf", Category: "insurance", DueDate: dueIn(time.Hour)},
	}}
	sink := &stubNotificationSink{}
	worker := NewReminderWorker(docs, sink, newStubDedup(), 0, 0, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := worker.Scan(ctx); err == nil {
		t.Fatal("expected context error")
	}
	if len(sink.created) != 0 {
		t.Fatalf("cancelled scan must not publish, got %d", len(sink.created))
	}
}
