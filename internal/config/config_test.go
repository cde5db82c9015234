package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gavel.yml")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
event:
  start: "2026-05-16 10:30"
  end_of_day: "19:30"
judging:
  rooms: 4
  general_minutes: 8
  category_minutes: 5
  buffer_minutes: 2
  break_minutes: 20
aggregate:
  label: "MLH"
  members:
    - "Best Use of MongoDB"
    - "Best GenAI"
  threshold: 4
output:
  directory: "out"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1.0", cfg.Version)
	assert.Equal(t, "2026-05-16 10:30", cfg.Event.Start)
	assert.Equal(t, 4, *cfg.Judging.Rooms)
	assert.Equal(t, 5, *cfg.Judging.CategoryMinutes)
	assert.Equal(t, 2, *cfg.Judging.BufferMinutes)
	assert.Equal(t, "MLH", cfg.Aggregate.Label)
	assert.Equal(t, 4, *cfg.Aggregate.Threshold)
	assert.Equal(t, "out", cfg.Output.Directory)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/gavel.yml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
event:
  - this is invalid
    yaml syntax
`)

	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
event:
  start: "2026-05-16 10:30"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultRooms, *cfg.Judging.Rooms)
	assert.Equal(t, DefaultGeneralMinutes, *cfg.Judging.GeneralMinutes)
	assert.Equal(t, DefaultBufferMinutes, *cfg.Judging.BufferMinutes)
	assert.Equal(t, DefaultBreakMinutes, *cfg.Judging.BreakMinutes)
	assert.Equal(t, "MLH", cfg.Aggregate.Label)
	assert.Equal(t, DefaultThreshold, *cfg.Aggregate.Threshold)
	assert.Equal(t, "BUIDL ID", cfg.Roster.IDColumn)
	assert.Equal(t, DefaultOutputDir, cfg.Output.Directory)
}

func TestLoad_ExplicitZeroBufferHonored(t *testing.T) {
	path := writeConfig(t, `version: "1.0"
event:
  start: "2026-05-16 10:30"
judging:
  buffer_minutes: 0
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, *cfg.Judging.BufferMinutes)
}

func TestValidate_UnsupportedVersion(t *testing.T) {
	cfg := &GavelConfig{
		Version: "2.0",
		Event:   EventConfig{Start: "2026-05-16 10:30"},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported version: 2.0")
}

func TestValidate_MissingStart(t *testing.T) {
	cfg := &GavelConfig{Version: "1.0"}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "event.start is required")
}

func TestValidate_UnparsableStart(t *testing.T) {
	cfg := &GavelConfig{
		Version: "1.0",
		Event:   EventConfig{Start: "sometime saturday"},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "event.start")
}

func TestValidate_EndOfDayBeforeStart(t *testing.T) {
	cfg := &GavelConfig{
		Version: "1.0",
		Event:   EventConfig{Start: "2026-05-16 10:30", EndOfDay: "09:00"},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not after the event start")
}

func TestValidate_ZeroRooms(t *testing.T) {
	cfg := &GavelConfig{
		Version: "1.0",
		Event:   EventConfig{Start: "2026-05-16 10:30"},
		Judging: JudgingConfig{Rooms: intp(0)},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "judging.rooms must be at least 1")
}

func TestValidate_NegativeBuffer(t *testing.T) {
	cfg := &GavelConfig{
		Version: "1.0",
		Event:   EventConfig{Start: "2026-05-16 10:30"},
		Judging: JudgingConfig{BufferMinutes: intp(-1)},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "judging.buffer_minutes cannot be negative")
}

func TestValidate_AggregateMembersWithoutLabel(t *testing.T) {
	cfg := &GavelConfig{
		Version:   "1.0",
		Event:     EventConfig{Start: "2026-05-16 10:30"},
		Aggregate: &AggregateConfig{Members: []string{"Best GenAI"}},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "aggregate.label is required")
}

func TestValidate_AggregateLabelWithoutMembers(t *testing.T) {
	cfg := &GavelConfig{
		Version:   "1.0",
		Event:     EventConfig{Start: "2026-05-16 10:30"},
		Aggregate: &AggregateConfig{Label: "MLH"},
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "aggregate.members is required")
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "MLH", cfg.Aggregate.Label)
}

func TestOptions_Conversion(t *testing.T) {
	cfg := &GavelConfig{
		Version: "1.0",
		Event:   EventConfig{Start: "2026-05-16 10:30", EndOfDay: "19:30"},
		Judging: JudgingConfig{
			Rooms:           intp(3),
			GeneralMinutes:  intp(8),
			CategoryMinutes: intp(5),
			BufferMinutes:   intp(2),
			BreakMinutes:    intp(20),
		},
		Aggregate: &AggregateConfig{
			Label:     "MLH",
			Members:   []string{"Best GenAI"},
			Threshold: intp(4),
		},
	}
	require.NoError(t, cfg.Validate())

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.May, 16, 10, 30, 0, 0, time.UTC), opts.Start)
	assert.Equal(t, 3, opts.Rooms)
	assert.Equal(t, 8*time.Minute, opts.GeneralDuration)
	assert.Equal(t, 5*time.Minute, opts.CategoryDuration)
	assert.Equal(t, 2*time.Minute, opts.Buffer)
	assert.Equal(t, 20*time.Minute, opts.Break)
	assert.Equal(t, "MLH", opts.Aggregate.Label)
	assert.Equal(t, 4, opts.Aggregate.Threshold)
	assert.Equal(t, time.Date(2026, time.May, 16, 19, 30, 0, 0, time.UTC), opts.DayEnd)
	assert.NoError(t, opts.Validate())
}

func TestOptions_DisabledAggregate(t *testing.T) {
	cfg := &GavelConfig{
		Version:   "1.0",
		Event:     EventConfig{Start: "2026-05-16 10:30"},
		Aggregate: &AggregateConfig{},
	}
	require.NoError(t, cfg.Validate())

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Empty(t, opts.Aggregate.Label)
	assert.False(t, opts.Aggregate.Matches([]string{"Best GenAI"}))
	assert.True(t, opts.DayEnd.IsZero())
}

func TestColumns_Mapping(t *testing.T) {
	cfg := Default()
	cols := cfg.Columns()
	assert.Equal(t, "BUIDL ID", cols.ID)
	assert.Equal(t, "BUIDL name", cols.Name)
	assert.Equal(t, "Track", cols.Track)
	assert.Equal(t, "Bounties", cols.Bounty)
}
