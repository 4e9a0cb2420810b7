package schedule

import (
	"fmt"
	"sort"
	"time"
)

// BreakWindow is a named, toggleable interval during which no slot may start.
type BreakWindow struct {
	Start  TimeOfDay `json:"start"`
	End    TimeOfDay `json:"end"`
	Active bool      `json:"active"`
}

// Breaks holds the two break windows a work configuration carries.
type Breaks struct {
	Lunch  BreakWindow `json:"lunch"`
	Dinner BreakWindow `json:"dinner"`
}

// WorkConfig is a doctor's recurring availability template.
type WorkConfig struct {
	DaysOfWeek   []time.Weekday `json:"daysOfWeek"`
	StartTime    TimeOfDay      `json:"startTime"`
	EndTime      TimeOfDay      `json:"endTime"`
	SlotDuration int            `json:"slotDuration"` // minutes
	Breaks       Breaks         `json:"breaks"`
}

// ConfigurationError reports an invalid work configuration.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("schedule: invalid work config: %s %s", e.Field, e.Reason)
}

// Validate checks the invariants slot generation relies on. A config that
// fails validation must be rejected, never fed into GenerateSlots.
func (c WorkConfig) Validate() error {
	if c.SlotDuration <= 0 {
		return &ConfigurationError{Field: "slotDuration", Reason: "must be positive"}
	}
	if c.StartTime >= c.EndTime {
		return &ConfigurationError{Field: "startTime", Reason: "must precede endTime"}
	}
	for _, d := range c.DaysOfWeek {
		if d < time.Sunday || d > time.Saturday {
			return &ConfigurationError{Field: "daysOfWeek", Reason: fmt.Sprintf("day %d out of range", d)}
		}
	}
	for _, b := range []struct {
		name string
		win  BreakWindow
	}{{"breaks.lunch", c.Breaks.Lunch}, {"breaks.dinner", c.Breaks.Dinner}} {
		if b.win.Active && b.win.Start >= b.win.End {
			return &ConfigurationError{Field: b.name, Reason: "start must precede end"}
		}
	}
	return nil
}

// WorksOn reports whether the configuration includes the given weekday.
func (c WorkConfig) WorksOn(day time.Weekday) bool {
	for _, d := range c.DaysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// Normalize returns a copy with DaysOfWeek deduplicated and sorted.
func (c WorkConfig) Normalize() WorkConfig {
	seen := make(map[time.Weekday]struct{}, len(c.DaysOfWeek))
	days := make([]time.Weekday, 0, len(c.DaysOfWeek))
	for _, d := range c.DaysOfWeek {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	c.DaysOfWeek = days
	return c
}

// BreakPatch is a partial update to one break window.
type BreakPatch struct {
	Start  *TimeOfDay `json:"start,omitempty"`
	End    *TimeOfDay `json:"end,omitempty"`
	Active *bool      `json:"active,omitempty"`
}

// BreaksPatch is a partial update to the break set; each break merges
// independently.
type BreaksPatch struct {
	Lunch  *BreakPatch `json:"lunch,omitempty"`
	Dinner *BreakPatch `json:"dinner,omitempty"`
}

// WorkConfigPatch is a typed partial update to a work configuration.
// Nil fields retain their prior value.
type WorkConfigPatch struct {
	DaysOfWeek   *[]time.Weekday `json:"daysOfWeek,omitempty"`
	StartTime    *TimeOfDay      `json:"startTime,omitempty"`
	EndTime      *TimeOfDay      `json:"endTime,omitempty"`
	SlotDuration *int            `json:"slotDuration,omitempty"`
	Breaks       *BreaksPatch    `json:"breaks,omitempty"`
}

// Apply merges the patch over the given configuration and validates the
// result. The input configuration is not modified.
func (p WorkConfigPatch) Apply(base WorkConfig) (WorkConfig, error) {
	merged := base
	if p.DaysOfWeek != nil {
		merged.DaysOfWeek = append([]time.Weekday(nil), (*p.DaysOfWeek)...)
	}
	if p.StartTime != nil {
		merged.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		merged.EndTime = *p.EndTime
	}
	if p.SlotDuration != nil {
		merged.SlotDuration = *p.SlotDuration
	}
	if p.Breaks != nil {
		merged.Breaks.Lunch = mergeBreak(merged.Breaks.Lunch, p.Breaks.Lunch)
		merged.Breaks.Dinner = mergeBreak(merged.Breaks.Dinner, p.Breaks.Dinner)
	}
	merged = merged.Normalize()
	if err := merged.Validate(); err != nil {
		return WorkConfig{}, err
	}
	return merged, nil
}

func mergeBreak(base BreakWindow, patch *BreakPatch) BreakWindow {
	if patch == nil {
		return base
	}
	if patch.Start != nil {
		base.Start = *patch.Start
	}
	if patch.End != nil {
		base.End = *patch.End
	}
	if patch.Active != nil {
		base.Active = *patch.Active
	}
	return base
}
