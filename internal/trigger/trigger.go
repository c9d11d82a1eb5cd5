// Package trigger persists date-conditioned triggers and fires them when
// their condition holds for "today". Firing is fire-and-forget: handler
// failures are logged, never propagated. The store is saved after every
// mutation.
package trigger

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	appLog "waqt/internal/log"
	"waqt/internal/model"
	"waqt/internal/store"
)

// Kind is the trigger's date condition.
type Kind string

const (
	KindBeforeDate Kind = "before_date"
	KindOnDate     Kind = "on_date"
	KindAfterDate  Kind = "after_date"
	KindRecurring  Kind = "recurring"
)

// Interval is the recurrence step for KindRecurring.
type Interval string

const (
	IntervalDaily   Interval = "daily"
	IntervalWeekly  Interval = "weekly"
	IntervalMonthly Interval = "monthly"
)

// Trigger is one persisted condition-action pair.
type Trigger struct {
	ID                string         `json:"id"`
	Kind              Kind           `json:"type"`
	Action            string         `json:"action"`
	TargetDate        time.Time      `json:"target_date"`
	OffsetDays        int            `json:"offset_days"`
	Data              map[string]any `json:"data,omitempty"`
	Enabled           bool           `json:"enabled"`
	RecurringInterval Interval       `json:"recurring_interval,omitempty"`
	LastFiredAt       *time.Time     `json:"last_fired_at,omitempty"`
}

// Handler runs a trigger's action. A returned error is logged and
// swallowed.
type Handler func(t Trigger) error

// ErrNotFound marks an unknown trigger id.
var ErrNotFound = errors.New("trigger: not found")

// Manager owns the trigger store and the action-handler registry. Not
// safe for concurrent use; the caller serializes access.
type Manager struct {
	repo     store.Repository[[]Trigger]
	triggers []Trigger
	handlers map[string]Handler
}

// EmptyTriggers is the store default for a missing or corrupt file.
func EmptyTriggers() []Trigger { return []Trigger{} }

// NewManager loads the persisted triggers.
func NewManager(repo store.Repository[[]Trigger]) (*Manager, error) {
	triggers, err := repo.Load()
	if err != nil {
		return nil, err
	}
	return &Manager{
		repo:     repo,
		triggers: triggers,
		handlers: map[string]Handler{},
	}, nil
}

// RegisterHandler binds an action name to a handler. Registering again
// replaces the previous handler.
func (m *Manager) RegisterHandler(action string, h Handler) {
	m.handlers[action] = h
}

// Add creates an enabled trigger and persists it.
func (m *Manager) Add(kind Kind, action string, target time.Time, offsetDays int, interval Interval, data map[string]any) (Trigger, error) {
	switch kind {
	case KindBeforeDate, KindOnDate, KindAfterDate:
		if interval != "" {
			return Trigger{}, fmt.Errorf("trigger: interval %q not allowed for kind %q", interval, kind)
		}
	case KindRecurring:
		switch interval {
		case IntervalDaily, IntervalWeekly, IntervalMonthly:
		default:
			return Trigger{}, fmt.Errorf("trigger: invalid recurring interval %q", interval)
		}
	default:
		return Trigger{}, fmt.Errorf("trigger: invalid kind %q", kind)
	}

	t := Trigger{
		ID:                uuid.New().String(),
		Kind:              kind,
		Action:            action,
		TargetDate:        model.DateOnly(target),
		OffsetDays:        offsetDays,
		Data:              data,
		Enabled:           true,
		RecurringInterval: interval,
	}
	m.triggers = append(m.triggers, t)
	if err := m.repo.Save(m.triggers); err != nil {
		return Trigger{}, err
	}
	return t, nil
}

// Triggers returns a copy of the current triggers.
func (m *Manager) Triggers() []Trigger {
	return append([]Trigger(nil), m.triggers...)
}

func (m *Manager) setEnabled(id string, enabled bool) error {
	for i := range m.triggers {
		if m.triggers[i].ID == id {
			m.triggers[i].Enabled = enabled
			return m.repo.Save(m.triggers)
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Enable re-enables a trigger.
func (m *Manager) Enable(id string) error { return m.setEnabled(id, true) }

// Disable stops a trigger from firing without removing it.
func (m *Manager) Disable(id string) error { return m.setEnabled(id, false) }

// Remove deletes a trigger.
func (m *Manager) Remove(id string) error {
	for i := range m.triggers {
		if m.triggers[i].ID == id {
			m.triggers = append(m.triggers[:i], m.triggers[i+1:]...)
			return m.repo.Save(m.triggers)
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// CheckTriggers evaluates every enabled trigger against today and fires
// the due ones. A trigger fires at most once per calendar day no matter
// how often this runs. Returns the number of triggers fired.
func (m *Manager) CheckTriggers(today time.Time) int {
	day := model.DateOnly(today)
	fired := 0

	for i := range m.triggers {
		t := &m.triggers[i]
		if !t.Enabled {
			continue
		}
		if t.LastFiredAt != nil && model.SameDay(*t.LastFiredAt, day) {
			continue
		}
		if !m.due(t, day) {
			continue
		}

		m.fire(*t)
		stamp := day
		t.LastFiredAt = &stamp
		fired++

		if err := m.repo.Save(m.triggers); err != nil {
			appLog.Error("trigger store save failed", err, "id", t.ID)
		}
	}
	return fired
}

func (m *Manager) due(t *Trigger, day time.Time) bool {
	target := model.DateOnly(t.TargetDate)

	switch t.Kind {
	case KindBeforeDate:
		windowStart := target.AddDate(0, 0, -t.OffsetDays)
		return !day.Before(windowStart) && !day.After(target)
	case KindOnDate:
		return day.Equal(target)
	case KindAfterDate:
		return day.After(target)
	case KindRecurring:
		return m.recurringDue(t, day, target)
	}
	return false
}

// recurringDue checks whether today is an occurrence of the trigger's
// recurrence rule anchored at its target date.
func (m *Manager) recurringDue(t *Trigger, day, target time.Time) bool {
	if day.Before(target) {
		return false
	}

	var freq rrule.Frequency
	switch t.RecurringInterval {
	case IntervalDaily:
		freq = rrule.DAILY
	case IntervalWeekly:
		freq = rrule.WEEKLY
	case IntervalMonthly:
		freq = rrule.MONTHLY
	default:
		return false
	}

	r, err := rrule.NewRRule(rrule.ROption{Freq: freq, Dtstart: target})
	if err != nil {
		appLog.Error("trigger recurrence rule invalid", err, "id", t.ID)
		return false
	}
	occ := r.Between(day, day.AddDate(0, 0, 1), true)
	return len(occ) > 0 && model.SameDay(occ[0], day)
}

// fire invokes the registered handler. Missing handlers, handler errors,
// and handler panics are all logged and swallowed.
func (m *Manager) fire(t Trigger) {
	h, ok := m.handlers[t.Action]
	if !ok {
		appLog.Warn("trigger fired with no handler", "id", t.ID, "action", t.Action)
		return
	}

	defer func() {
		if r := recover(); r != nil {
			appLog.Error("trigger handler panicked", fmt.Errorf("%v", r), "id", t.ID, "action", t.Action)
		}
	}()

	if err := h(t); err != nil {
		appLog.Error("trigger handler failed", err, "id", t.ID, "action", t.Action)
		return
	}
	appLog.Info("trigger fired", "id", t.ID, "action", t.Action)
}
