// Package schedule models the weekly opening hours a store publishes for
// online ordering. An empty schedule means the store never closes online
// ordering; only a schedule with at least one slot restricts anything.
package schedule

import (
	"fmt"
	"regexp"
	"sort"
	"time"
)

var clockRE = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// Slot is one open interval within a day, half-open: a minute is inside when
// start <= minute < end.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Day holds the slots for one weekday. Weekday follows time.Weekday
// numbering (Sunday = 0).
type Day struct {
	Weekday int    `json:"day"`
	Slots   []Slot `json:"slots"`
}

// Week is a normalized weekly schedule, sorted by weekday.
type Week []Day

// ParseClock converts "HH:MM" to minutes since midnight.
func ParseClock(raw string) (int, error) {
	m := clockRE.FindStringSubmatch(raw)
	if m == nil {
		return 0, fmt.Errorf("invalid clock %q", raw)
	}
	var h, min int
	fmt.Sscanf(raw, "%d:%d", &h, &min)
	return h*60 + min, nil
}

func renderClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Normalize repairs a raw schedule: out-of-range weekdays are dropped, slots
// with unparseable or inverted bounds are dropped, the rest are sorted and
// re-rendered in canonical "HH:MM" form.
func Normalize(raw []Day) Week {
	byDay := make(map[int][]Slot)

	for _, day := range raw {
		if day.Weekday < 0 || day.Weekday > 6 {
			continue
		}
		type span struct{ start, end int }
		spans := make([]span, 0, len(day.Slots))
		for _, slot := range day.Slots {
			start, err := ParseClock(slot.Start)
			if err != nil {
				continue
			}
			end, err := ParseClock(slot.End)
			if err != nil || end <= start {
				continue
			}
			spans = append(spans, span{start, end})
		}
		sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

		slots := make([]Slot, 0, len(spans))
		for _, sp := range spans {
			slots = append(slots, Slot{Start: renderClock(sp.start), End: renderClock(sp.end)})
		}
		byDay[day.Weekday] = slots
	}

	week := make(Week, 0, len(byDay))
	for wd, slots := range byDay {
		week = append(week, Day{Weekday: wd, Slots: slots})
	}
	sort.Slice(week, func(i, j int) bool { return week[i].Weekday < week[j].Weekday })
	return week
}

// HasAny reports whether the schedule restricts anything at all.
func (w Week) HasAny() bool {
	for _, day := range w {
		if len(day.Slots) > 0 {
			return true
		}
	}
	return false
}

// SlotsFor returns the slots for a weekday, empty when none are defined.
func (w Week) SlotsFor(weekday int) []Slot {
	for _, day := range w {
		if day.Weekday == weekday {
			return day.Slots
		}
	}
	return nil
}

func minuteInside(minute int, slots []Slot) bool {
	for _, slot := range slots {
		start, err := ParseClock(slot.Start)
		if err != nil {
			continue
		}
		end, err := ParseClock(slot.End)
		if err != nil {
			continue
		}
		if minute >= start && minute < end {
			return true
		}
	}
	return false
}

// AllowedAt reports whether a clock time is orderable on a weekday. An
// unparseable clock is never allowed; an empty schedule allows everything.
func (w Week) AllowedAt(weekday int, clock string) bool {
	minute, err := ParseClock(clock)
	if err != nil {
		return false
	}
	if !w.HasAny() {
		return true
	}
	return minuteInside(minute, w.SlotsFor(weekday))
}

// OpenAt reports whether the store accepts orders at the given instant.
func (w Week) OpenAt(t time.Time) bool {
	if !w.HasAny() {
		return true
	}
	minute := t.Hour()*60 + t.Minute()
	return minuteInside(minute, w.SlotsFor(int(t.Weekday())))
}

// FormatSlots renders slots for display, e.g. "09:00-13:00, 15:00-20:00".
func FormatSlots(slots []Slot) string {
	out := ""
	for i, slot := range slots {
		if i > 0 {
			out += ", "
		}
		out += slot.Start + "-" + slot.End
	}
	return out
}
