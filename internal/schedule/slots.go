package schedule

import (
	"sort"
	"time"
)

// DateLayout is the ISO calendar-date form used for DaySchedule.Date and
// appointment dates.
const DateLayout = "2006-01-02"

// DaySchedule is one concrete calendar day of the visible booking window.
type DaySchedule struct {
	Date  string      `json:"date"`
	Label string      `json:"label"`
	Slots []TimeOfDay `json:"slots"`
}

var (
	weekdayAbbr = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}
	monthAbbr   = [13]string{"", "Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}
)

// DayLabel renders the display label for a date, e.g. "Seg, 28 Out".
// The label is derived, never authoritative.
func DayLabel(date time.Time) string {
	return weekdayAbbr[int(date.Weekday())] + ", " + date.Format("02") + " " + monthAbbr[int(date.Month())]
}

// GenerateSlots derives the bookable slot starts for one calendar date from a
// work configuration. The result is empty when the date's weekday is not a
// working day. A slot is emitted when its whole interval fits before EndTime
// and [start, start+duration) does not intersect any active break; a consult
// can neither begin during a break nor run into one.
func GenerateSlots(cfg WorkConfig, date time.Time) ([]TimeOfDay, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !cfg.WorksOn(date.Weekday()) {
		return nil, nil
	}

	step := TimeOfDay(cfg.SlotDuration)
	var slots []TimeOfDay
	for start := cfg.StartTime; start+step <= cfg.EndTime; start += step {
		if overlapsActiveBreak(cfg.Breaks, start, start+step) {
			continue
		}
		slots = append(slots, start)
	}
	return slots, nil
}

func overlapsActiveBreak(breaks Breaks, start, end TimeOfDay) bool {
	for _, b := range []BreakWindow{breaks.Lunch, breaks.Dinner} {
		if b.Active && start < b.End && end > b.Start {
			return true
		}
	}
	return false
}

// BuildWindow produces the visible booking window: one DaySchedule per day in
// [from, from+days) whose generated slot set, minus already-booked times, is
// non-empty. Building twice from the same inputs yields identical windows.
func BuildWindow(cfg WorkConfig, from time.Time, days int, booked map[string][]TimeOfDay) ([]DaySchedule, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	window := make([]DaySchedule, 0, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i)
		slots, err := GenerateSlots(cfg, date)
		if err != nil {
			return nil, err
		}
		if len(slots) == 0 {
			continue
		}

		key := date.Format(DateLayout)
		slots = removeAll(slots, booked[key])
		if len(slots) == 0 {
			continue
		}
		window = append(window, DaySchedule{
			Date:  key,
			Label: DayLabel(date),
			Slots: slots,
		})
	}
	return window, nil
}

func removeAll(slots []TimeOfDay, taken []TimeOfDay) []TimeOfDay {
	if len(taken) == 0 {
		return slots
	}
	out := slots[:0]
	for _, s := range slots {
		if !containsSlot(taken, s) {
			out = append(out, s)
		}
	}
	return out
}

func containsSlot(slots []TimeOfDay, t TimeOfDay) bool {
	for _, s := range slots {
		if s == t {
			return true
		}
	}
	return false
}

// TakeSlot removes t from the day's slots, reporting whether it was present.
func (d *DaySchedule) TakeSlot(t TimeOfDay) bool {
	for i, s := range d.Slots {
		if s == t {
			d.Slots = append(d.Slots[:i], d.Slots[i+1:]...)
			return true
		}
	}
	return false
}

// RestoreSlot re-inserts t preserving ascending order; duplicates are ignored.
func (d *DaySchedule) RestoreSlot(t TimeOfDay) {
	if containsSlot(d.Slots, t) {
		return
	}
	i := sort.Search(len(d.Slots), func(i int) bool { return d.Slots[i] >= t })
	d.Slots = append(d.Slots, 0)
	copy(d.Slots[i+1:], d.Slots[i:])
	d.Slots[i] = t
}
