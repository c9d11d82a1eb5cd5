// Package engine assembles the time-intelligence components into one
// explicitly constructed object. Nothing here is a process-wide
// singleton: consumers receive the Engine (or pieces of it) by injection,
// and tests build isolated instances with their own clock.
package engine

import (
	"fmt"
	"path/filepath"
	"time"

	"waqt/internal/config"
	"waqt/internal/hijri"
	"waqt/internal/holiday"
	"waqt/internal/ics"
	appLog "waqt/internal/log"
	"waqt/internal/nlparse"
	"waqt/internal/predictor"
	"waqt/internal/productivity"
	"waqt/internal/scheduler"
	"waqt/internal/store"
	"waqt/internal/trigger"
	"waqt/internal/workcal"
)

// Engine is the constructed context holding every component.
type Engine struct {
	Converter hijri.Converter
	Provider  holiday.Provider
	Calendar  *workcal.Calendar
	Parser    *nlparse.Parser
	Triggers  *trigger.Manager

	// Now supplies the clock; overridable for tests.
	Now func() time.Time

	cfg *config.Config
}

// Option customizes construction.
type Option func(*options)

type options struct {
	now       func() time.Time
	converter hijri.Converter
	provider  holiday.Provider
}

// WithNow injects a clock.
func WithNow(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithConverter overrides the lunar converter (e.g. to force the
// arithmetic algorithm).
func WithConverter(c hijri.Converter) Option {
	return func(o *options) { o.converter = c }
}

// WithProvider overrides the holiday provider.
func WithProvider(p holiday.Provider) Option {
	return func(o *options) { o.provider = p }
}

// New builds an Engine from configuration. Closure-feed problems degrade
// to an engine without closures rather than failing construction.
func New(cfg *config.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{
		now:       time.Now,
		converter: hijri.New(hijri.AlgorithmUmmAlQura),
		provider:  holiday.NewStaticProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	wcfg, err := workcal.NewConfig(cfg.Country, cfg.Weekend(), cfg.WorkStartHour, cfg.WorkEndHour)
	if err != nil {
		return nil, err
	}

	var closures []ics.Closure
	if cfg.ClosuresICS != "" {
		now := o.now()
		closures, err = ics.LoadClosures(cfg.ClosuresICS, now.AddDate(-1, 0, 0), now.AddDate(2, 0, 0))
		if err != nil {
			appLog.Warn("closures feed unavailable", "path", cfg.ClosuresICS, "reason", err)
			closures = nil
		}
	}

	cal := workcal.New(wcfg, o.provider, closures)

	triggers, err := trigger.NewManager(store.NewJSONFile(
		filepath.Join(cfg.DataDir, "triggers.json"), trigger.EmptyTriggers))
	if err != nil {
		return nil, fmt.Errorf("engine: trigger store: %w", err)
	}

	return &Engine{
		Converter: o.converter,
		Provider:  o.provider,
		Calendar:  cal,
		Parser:    nlparse.New(o.converter, cfg.WeekStartDay()),
		Triggers:  triggers,
		Now:       o.now,
		cfg:       cfg,
	}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() *config.Config { return e.cfg }

// LearnerFor opens (or creates) the productivity learner keyed by user
// id. Callers serialize access per user.
func (e *Engine) LearnerFor(userID string) (*productivity.Learner, error) {
	path := filepath.Join(e.cfg.DataDir, "productivity-"+userID+".json")
	return productivity.NewLearner(store.NewJSONFile(path, productivity.EmptyHistory))
}

// PredictorFor builds a deadline predictor for one user.
func (e *Engine) PredictorFor(userID string) (*predictor.Predictor, error) {
	learner, err := e.LearnerFor(userID)
	if err != nil {
		return nil, err
	}
	return predictor.New(e.Calendar, learner), nil
}

// SchedulerFor builds a task scheduler for one user.
func (e *Engine) SchedulerFor(userID string) (*scheduler.Scheduler, error) {
	learner, err := e.LearnerFor(userID)
	if err != nil {
		return nil, err
	}
	return scheduler.New(e.Calendar, learner), nil
}

// CheckTriggers runs the trigger evaluation against the engine clock.
func (e *Engine) CheckTriggers() int {
	return e.Triggers.CheckTriggers(e.Now())
}
