package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level engine configuration.
type Config struct {
	// Country is the ISO country code used for holiday lookup
	// (supported: SA, AE, EG, KW).
	Country string `yaml:"country" json:"country"`

	// WeekendDays are lowercase English weekday names treated as weekend
	// (e.g. ["friday", "saturday"]). The remaining weekdays are the
	// working set; the two always partition the week.
	WeekendDays []string `yaml:"weekend_days" json:"weekend_days"`

	// WorkStartHour / WorkEndHour bound the working hours of a day
	// (24h clock).
	WorkStartHour int `yaml:"work_start_hour" json:"work_start_hour"`
	WorkEndHour   int `yaml:"work_end_hour" json:"work_end_hour"`

	// WeekStart controls which weekday begins a calendar week for period
	// math. Supported values: "sunday" (default), "monday", "saturday".
	WeekStart string `yaml:"week_start" json:"week_start"`

	// FiscalStartMonth is the first month (1-12) of the fiscal year.
	FiscalStartMonth int `yaml:"fiscal_start_month" json:"fiscal_start_month"`

	// DataDir holds the persisted stores (per-user productivity files and
	// the shared triggers file).
	DataDir string `yaml:"data_dir" json:"data_dir"`

	// ClosuresICS, if non-empty, points to a local ICS file whose all-day
	// events are treated as extra non-working days.
	ClosuresICS string `yaml:"closures_ics" json:"closures_ics"`

	// TriggerCron is a cron-style schedule for the periodic trigger check
	// run by the daemon.
	TriggerCron string `yaml:"trigger_cron" json:"trigger_cron"`

	// LogLevel is one of DEBUG, INFO, WARN, ERROR.
	LogLevel string `yaml:"log_level" json:"log_level"`
}

var weekdayByName = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Country:          "SA",
		WeekendDays:      []string{"friday", "saturday"},
		WorkStartHour:    9,
		WorkEndHour:      17,
		WeekStart:        "sunday",
		FiscalStartMonth: 1,
		DataDir:          "./var/waqt",
		ClosuresICS:      "",
		TriggerCron:      "0 * * * *",
		LogLevel:         "INFO",
	}
}

// Normalize fills in missing/zero values so partially-filled configs still
// behave correctly.
func (c *Config) Normalize() {
	if c.Country == "" {
		c.Country = "SA"
	}
	c.Country = strings.ToUpper(c.Country)

	if len(c.WeekendDays) == 0 {
		c.WeekendDays = []string{"friday", "saturday"}
	}
	for i, d := range c.WeekendDays {
		c.WeekendDays[i] = strings.ToLower(strings.TrimSpace(d))
	}

	if c.WorkStartHour <= 0 || c.WorkStartHour > 23 {
		c.WorkStartHour = 9
	}
	if c.WorkEndHour <= c.WorkStartHour || c.WorkEndHour > 24 {
		c.WorkEndHour = c.WorkStartHour + 8
		if c.WorkEndHour > 24 {
			c.WorkEndHour = 24
		}
	}

	switch c.WeekStart {
	case "sunday", "monday", "saturday":
	default:
		c.WeekStart = "sunday"
	}

	if c.FiscalStartMonth < 1 || c.FiscalStartMonth > 12 {
		c.FiscalStartMonth = 1
	}
	if c.DataDir == "" {
		c.DataDir = "./var/waqt"
	}
	if c.TriggerCron == "" {
		c.TriggerCron = "0 * * * *"
	}
	switch c.LogLevel {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		c.LogLevel = "INFO"
	}
}

// Validate rejects configurations Normalize cannot repair, in particular a
// weekend set that does not leave a valid working set.
func (c *Config) Validate() error {
	seen := map[time.Weekday]bool{}
	for _, name := range c.WeekendDays {
		wd, ok := weekdayByName[name]
		if !ok {
			return fmt.Errorf("config: unknown weekend day %q", name)
		}
		if seen[wd] {
			return fmt.Errorf("config: duplicate weekend day %q", name)
		}
		seen[wd] = true
	}
	if len(seen) >= 7 {
		return errors.New("config: weekend set covers the whole week")
	}
	return nil
}

// Weekend returns the weekend set as time.Weekday values. Call Validate
// first; unknown names are skipped here.
func (c *Config) Weekend() map[time.Weekday]bool {
	out := map[time.Weekday]bool{}
	for _, name := range c.WeekendDays {
		if wd, ok := weekdayByName[name]; ok {
			out[wd] = true
		}
	}
	return out
}

// WeekStartDay maps the configured week start onto a time.Weekday.
func (c *Config) WeekStartDay() time.Weekday {
	if wd, ok := weekdayByName[c.WeekStart]; ok {
		return wd
	}
	return time.Sunday
}

// Load loads configuration from the given YAML path.
//
// If the file does not exist, a default config is written there (0600) and
// returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration atomically (temp file + rename, 0600).
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".waqt-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Save delegates to the package-level Save.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
