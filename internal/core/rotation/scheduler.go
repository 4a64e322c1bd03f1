// Package rotation answers "which partner pays payroll this week". Payers
// take turns week by week following a fixed, ordered rotation list; a handful
// of concessions are excluded from rotation and always resolve to one fixed
// payer.
//
// Weeks run Sunday through Saturday and are identified by their Saturday.
// Any two dates inside the same Sunday–Saturday span resolve to the same
// payer, no matter the time of day.
package rotation

import (
	"context"
	"errors"
	"time"

	"github.com/sismin/backoffice-api/internal/core/domain"
)

const week = 7 * 24 * time.Hour

// UserFinder is the single read the scheduler performs: resolving a payer id
// to the stored user.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
}

// Config is the immutable rotation table, loaded once at startup.
type Config struct {
	// Rotation is the ordered cycle of payer user ids.
	Rotation []string
	// Epoch marks week index zero. Any date works; it is normalized to its
	// week's Saturday.
	Epoch time.Time
	// NoRotation lists concession ids excluded from rotation.
	NoRotation []string
	// FixedPayerID is the user who always pays for excluded concessions.
	FixedPayerID string
}

// Scheduler maps (date, concession) to the responsible payer. Safe for
// concurrent use; it holds no mutable state.
type Scheduler struct {
	cfg         Config
	users       UserFinder
	epochAnchor time.Time // normalized once; immutable for process lifetime
	excluded    map[string]struct{}
}

// NewScheduler builds a Scheduler over an immutable config and a user store.
func NewScheduler(cfg Config, users UserFinder) *Scheduler {
	excluded := make(map[string]struct{}, len(cfg.NoRotation))
	for _, id := range cfg.NoRotation {
		excluded[id] = struct{}{}
	}
	return &Scheduler{
		cfg:         cfg,
		users:       users,
		epochAnchor: saturdayAnchor(cfg.Epoch),
		excluded:    excluded,
	}
}

// PayerForDate returns the payer responsible for the pay-week containing
// date. The override check for excluded concessions runs first and wins over
// all rotation math, for any date.
//
// Returns domain.ErrNoPayerFound when the rotation list is empty or the
// indexed user no longer exists. Lookup failures (including cancellation)
// propagate as-is; the scheduler never substitutes a default payer.
func (s *Scheduler) PayerForDate(ctx context.Context, date time.Time, concessionID string) (*domain.User, error) {
	if concessionID != "" {
		if _, ok := s.excluded[concessionID]; ok {
			return s.lookup(ctx, s.cfg.FixedPayerID)
		}
	}

	n := len(s.cfg.Rotation)
	if n == 0 {
		return nil, domain.ErrNoPayerFound
	}

	offset := weeksBetween(s.epochAnchor, saturdayAnchor(date))
	index := ((offset % n) + n) % n

	return s.lookup(ctx, s.cfg.Rotation[index])
}

func (s *Scheduler) lookup(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.ErrNoPayerFound
	}
	payer, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrNoPayerFound
		}
		return nil, err
	}
	return payer, nil
}

// saturdayAnchor maps a date to the Saturday of its Sunday–Saturday week, at
// midnight UTC. Normalizing both target and epoch to the same fixed
// time-of-day in one calendar keeps the subtraction exact across DST.
func saturdayAnchor(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	daysToSat := (int(time.Saturday) - int(day.Weekday()) + 7) % 7
	return day.AddDate(0, 0, daysToSat)
}

// weeksBetween returns the whole number of 7-day periods from to target.
// Both inputs are Saturday anchors, so the division is exact and truncation
// handles negative offsets (dates before the epoch) correctly.
func weeksBetween(from, target time.Time) int {
	return int(target.Sub(from) / week)
}
