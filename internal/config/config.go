package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hackjudge/gavel/internal/roster"
	"github.com/hackjudge/gavel/internal/timespec"
	"github.com/hackjudge/gavel/pkg/schedule"
	"gopkg.in/yaml.v3"
)

// Defaults applied by Validate when gavel.yml leaves a field unset. The
// judging numbers mirror a standard 8 minute pitch slot (1 setup + 3 pitch +
// 2 Q&A + 2 scoring) with an 8 minute buffer.
const (
	DefaultRooms           = 6
	DefaultGeneralMinutes  = 8
	DefaultCategoryMinutes = 8
	DefaultBufferMinutes   = 8
	DefaultBreakMinutes    = 30
	DefaultThreshold       = 6
	DefaultOutputDir       = "schedules"
)

// DefaultAggregate is the sponsor award cluster judged together unless
// gavel.yml configures its own grouping.
var DefaultAggregate = AggregateConfig{
	Label:   "MLH",
	Members: []string{"Best Use of MongoDB", "Best GenAI", "Best .tech"},
}

// GavelConfig represents the top-level gavel.yml configuration
type GavelConfig struct {
	Version   string           `yaml:"version"`
	Event     EventConfig      `yaml:"event"`
	Judging   JudgingConfig    `yaml:"judging,omitempty"`
	Aggregate *AggregateConfig `yaml:"aggregate,omitempty"` // Omit for the default MLH grouping; set label: "" to disable
	Roster    RosterConfig     `yaml:"roster,omitempty"`
	Output    OutputConfig     `yaml:"output,omitempty"`
}

// EventConfig holds the event timing
type EventConfig struct {
	Start    string `yaml:"start"`                // Required: "2026-05-16 10:30" or RFC3339
	EndOfDay string `yaml:"end_of_day,omitempty"` // Optional soft boundary, 24h clock like "19:30"
}

// JudgingConfig holds the scheduling knobs. Unset fields take the package
// defaults; explicit values are validated as written.
type JudgingConfig struct {
	Rooms           *int `yaml:"rooms,omitempty"`            // Parallel general judging rooms (>= 1)
	GeneralMinutes  *int `yaml:"general_minutes,omitempty"`  // Length of a general session (>= 1)
	CategoryMinutes *int `yaml:"category_minutes,omitempty"` // Length of a category session (>= 1)
	BufferMinutes   *int `yaml:"buffer_minutes,omitempty"`   // Idle time between sessions (>= 0)
	BreakMinutes    *int `yaml:"break_minutes,omitempty"`    // Gap between the two phases (>= 0)
}

// AggregateConfig groups related sub-awards into one synthetic category
type AggregateConfig struct {
	Label     string   `yaml:"label"`               // Synthetic label; empty disables grouping
	Members   []string `yaml:"members,omitempty"`   // Concrete sub-award labels
	Threshold *int     `yaml:"threshold,omitempty"` // Eligible teams needed for a dedicated room (>= 1)
}

// RosterConfig names the roster CSV columns
type RosterConfig struct {
	IDColumn     string `yaml:"id_column,omitempty"`
	NameColumn   string `yaml:"name_column,omitempty"`
	TrackColumn  string `yaml:"track_column,omitempty"`
	BountyColumn string `yaml:"bounty_column,omitempty"`
}

// OutputConfig holds exporter settings
type OutputConfig struct {
	Directory string `yaml:"directory,omitempty"` // Where schedule files are written
}

// Default returns the configuration used when no gavel.yml is present.
func Default() *GavelConfig {
	cfg := &GavelConfig{
		Version: "1.0",
		Event: EventConfig{
			Start: time.Now().Format(timespec.Layout),
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Validate performs strict validation on the configuration and fills in
// defaults for unset fields.
func (c *GavelConfig) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	c.applyDefaults()

	// Required: event start
	if c.Event.Start == "" {
		return fmt.Errorf("event.start is required")
	}
	start, err := timespec.Parse(c.Event.Start)
	if err != nil {
		return fmt.Errorf("event.start: %w", err)
	}

	if c.Event.EndOfDay != "" {
		end, err := timespec.ParseClock(c.Event.EndOfDay, start)
		if err != nil {
			return fmt.Errorf("event.end_of_day: %w", err)
		}
		if !end.After(start) {
			return fmt.Errorf("event.end_of_day %s is not after the event start %s", c.Event.EndOfDay, c.Event.Start)
		}
	}

	if *c.Judging.Rooms < 1 {
		return fmt.Errorf("judging.rooms must be at least 1, got %d", *c.Judging.Rooms)
	}
	if *c.Judging.GeneralMinutes < 1 {
		return fmt.Errorf("judging.general_minutes must be at least 1, got %d", *c.Judging.GeneralMinutes)
	}
	if *c.Judging.CategoryMinutes < 1 {
		return fmt.Errorf("judging.category_minutes must be at least 1, got %d", *c.Judging.CategoryMinutes)
	}
	if *c.Judging.BufferMinutes < 0 {
		return fmt.Errorf("judging.buffer_minutes cannot be negative, got %d", *c.Judging.BufferMinutes)
	}
	if *c.Judging.BreakMinutes < 0 {
		return fmt.Errorf("judging.break_minutes cannot be negative, got %d", *c.Judging.BreakMinutes)
	}

	if c.Aggregate.Label == "" && len(c.Aggregate.Members) > 0 {
		return fmt.Errorf("aggregate.label is required when aggregate.members is set")
	}
	if c.Aggregate.Label != "" && len(c.Aggregate.Members) == 0 {
		return fmt.Errorf("aggregate.members is required when aggregate.label is set")
	}
	if *c.Aggregate.Threshold < 1 {
		return fmt.Errorf("aggregate.threshold must be at least 1, got %d", *c.Aggregate.Threshold)
	}

	return nil
}

// applyDefaults fills every unset optional field.
func (c *GavelConfig) applyDefaults() {
	if c.Judging.Rooms == nil {
		c.Judging.Rooms = intp(DefaultRooms)
	}
	if c.Judging.GeneralMinutes == nil {
		c.Judging.GeneralMinutes = intp(DefaultGeneralMinutes)
	}
	if c.Judging.CategoryMinutes == nil {
		c.Judging.CategoryMinutes = intp(DefaultCategoryMinutes)
	}
	if c.Judging.BufferMinutes == nil {
		c.Judging.BufferMinutes = intp(DefaultBufferMinutes)
	}
	if c.Judging.BreakMinutes == nil {
		c.Judging.BreakMinutes = intp(DefaultBreakMinutes)
	}

	if c.Aggregate == nil {
		aggregate := DefaultAggregate
		c.Aggregate = &aggregate
	}
	if c.Aggregate.Threshold == nil {
		c.Aggregate.Threshold = intp(DefaultThreshold)
	}

	if c.Roster.IDColumn == "" {
		c.Roster.IDColumn = "BUIDL ID"
	}
	if c.Roster.NameColumn == "" {
		c.Roster.NameColumn = "BUIDL name"
	}
	if c.Roster.TrackColumn == "" {
		c.Roster.TrackColumn = "Track"
	}
	if c.Roster.BountyColumn == "" {
		c.Roster.BountyColumn = "Bounties"
	}

	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutputDir
	}
}

// Options converts the validated configuration into scheduler options.
func (c *GavelConfig) Options() (schedule.Options, error) {
	start, err := timespec.Parse(c.Event.Start)
	if err != nil {
		return schedule.Options{}, fmt.Errorf("event.start: %w", err)
	}

	opts := schedule.Options{
		Start:            start,
		Rooms:            *c.Judging.Rooms,
		GeneralDuration:  time.Duration(*c.Judging.GeneralMinutes) * time.Minute,
		CategoryDuration: time.Duration(*c.Judging.CategoryMinutes) * time.Minute,
		Buffer:           time.Duration(*c.Judging.BufferMinutes) * time.Minute,
		Break:            time.Duration(*c.Judging.BreakMinutes) * time.Minute,
		Aggregate: schedule.AggregatePolicy{
			Label:     c.Aggregate.Label,
			Members:   c.Aggregate.Members,
			Threshold: *c.Aggregate.Threshold,
		},
	}

	if c.Event.EndOfDay != "" {
		opts.DayEnd, err = timespec.ParseClock(c.Event.EndOfDay, start)
		if err != nil {
			return schedule.Options{}, fmt.Errorf("event.end_of_day: %w", err)
		}
	}

	return opts, nil
}

// Columns maps the roster section onto loader columns.
func (c *GavelConfig) Columns() roster.Columns {
	return roster.Columns{
		ID:     c.Roster.IDColumn,
		Name:   c.Roster.NameColumn,
		Track:  c.Roster.TrackColumn,
		Bounty: c.Roster.BountyColumn,
	}
}

// Load reads and validates gavel.yml from the specified path
func Load(path string) (*GavelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config GavelConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func intp(v int) *int {
	return &v
}
