package schedule

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	parsed, err := ParseTimeOfDay("13:30")
	require.NoError(t, err)
	assert.Equal(t, NewTimeOfDay(13, 30), parsed)
	assert.Equal(t, "13:30", parsed.String())

	for _, bad := range []string{"", "25:00", "12:61", "noon", "12"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestWorkConfigJSONShape(t *testing.T) {
	data, err := json.Marshal(DefaultWorkConfig())
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"daysOfWeek": [1, 2, 3, 4, 5],
		"startTime": "08:00",
		"endTime": "18:00",
		"slotDuration": 30,
		"breaks": {
			"lunch": {"start": "12:00", "end": "13:30", "active": true},
			"dinner": {"start": "19:00", "end": "20:00", "active": false}
		}
	}`, string(data))

	var decoded WorkConfig
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, DefaultWorkConfig(), decoded)
}

func TestNormalizeDeduplicatesDays(t *testing.T) {
	cfg := DefaultWorkConfig()
	cfg.DaysOfWeek = []time.Weekday{time.Friday, time.Monday, time.Friday, time.Monday}
	normalized := cfg.Normalize()
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, normalized.DaysOfWeek)
}

func TestPatchApplyMergesPerField(t *testing.T) {
	base := DefaultWorkConfig()

	duration := 60
	end := MustTimeOfDay("17:00")
	active := false
	patch := WorkConfigPatch{
		SlotDuration: &duration,
		EndTime:      &end,
		Breaks:       &BreaksPatch{Lunch: &BreakPatch{Active: &active}},
	}

	merged, err := patch.Apply(base)
	require.NoError(t, err)

	assert.Equal(t, 60, merged.SlotDuration)
	assert.Equal(t, end, merged.EndTime)
	assert.False(t, merged.Breaks.Lunch.Active)
	// Untouched fields keep their prior values.
	assert.Equal(t, base.StartTime, merged.StartTime)
	assert.Equal(t, base.Breaks.Lunch.Start, merged.Breaks.Lunch.Start)
	assert.Equal(t, base.Breaks.Dinner, merged.Breaks.Dinner)
	assert.Equal(t, base.DaysOfWeek, merged.DaysOfWeek)
	// The base config is not mutated.
	assert.Equal(t, 30, base.SlotDuration)
}

func TestPatchApplyRejectsInvalidResult(t *testing.T) {
	start := MustTimeOfDay("19:00")
	patch := WorkConfigPatch{StartTime: &start}

	_, err := patch.Apply(DefaultWorkConfig())
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "startTime", cfgErr.Field)
}
