package schedule

import "time"

// DefaultWorkConfig is the template assigned to newly registered
// professionals: weekdays, 08:00-18:00, 30-minute consults, lunch break on.
func DefaultWorkConfig() WorkConfig {
	return WorkConfig{
		DaysOfWeek:   []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		StartTime:    NewTimeOfDay(8, 0),
		EndTime:      NewTimeOfDay(18, 0),
		SlotDuration: 30,
		Breaks: Breaks{
			Lunch:  BreakWindow{Start: NewTimeOfDay(12, 0), End: NewTimeOfDay(13, 30), Active: true},
			Dinner: BreakWindow{Start: NewTimeOfDay(19, 0), End: NewTimeOfDay(20, 0), Active: false},
		},
	}
}
