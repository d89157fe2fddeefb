package service

import (
	"sort"

	"planner-api/core/timeutil"
	"planner-api/modules/schedule/entity"
)

// SlotFinder computes the free gaps in a day's schedule. The searchable day
// is bounded by a window (default the full 00:00-24:00 day; deployments can
// narrow it to business hours).
type SlotFinder struct {
	// WindowStartMin/WindowEndMin are minutes from midnight.
	WindowStartMin int
	WindowEndMin   int
	wrapEqual      bool
}

// NewSlotFinder creates a slot finder over the given day window.
func NewSlotFinder(windowStartMin, windowEndMin int, wrapEqual bool) *SlotFinder {
	return &SlotFinder{
		WindowStartMin: windowStartMin,
		WindowEndMin:   windowEndMin,
		wrapEqual:      wrapEqual,
	}
}

type minuteRange struct {
	start int
	end   int
}

// FindAvailableSlots walks the day's events in start order and returns every
// positive-length gap within the window, including the edges before the
// first and after the last event. Slots shorter than minDurationMinutes are
// dropped; zero means no minimum. Back-to-back events yield no slot.
func (sf *SlotFinder) FindAvailableSlots(events []entity.Event, minDurationMinutes int) []entity.Slot {
	busy := sf.busyRanges(events)
	merged := mergeRanges(busy)

	slots := []entity.Slot{}
	cursor := sf.WindowStartMin

	appendSlot := func(start, end int) {
		length := end - start
		if length <= 0 {
			return
		}
		if minDurationMinutes > 0 && length < minDurationMinutes {
			return
		}
		slots = append(slots, entity.Slot{
			StartTime:       timeutil.FormatClock(start),
			EndTime:         timeutil.FormatClock(end),
			DurationMinutes: length,
		})
	}

	for _, b := range merged {
		appendSlot(cursor, b.start)
		if b.end > cursor {
			cursor = b.end
		}
	}
	appendSlot(cursor, sf.WindowEndMin)

	return slots
}

// busyRanges converts events to minute ranges clipped to the window. Events
// with unusable times are skipped; one bad record must not hide the rest of
// the day.
func (sf *SlotFinder) busyRanges(events []entity.Event) []minuteRange {
	ranges := make([]minuteRange, 0, len(events))
	for _, e := range events {
		startMin, err := timeutil.ParseClock(e.StartTime)
		if err != nil {
			continue
		}
		dur, err := timeutil.DurationMinutes(e.StartTime, e.EndTime, sf.wrapEqual)
		if err != nil {
			continue
		}

		r := minuteRange{start: startMin, end: startMin + dur}
		// Clip to the window; a midnight-spanning event blocks out to the
		// window end on this day.
		if r.start < sf.WindowStartMin {
			r.start = sf.WindowStartMin
		}
		if r.end > sf.WindowEndMin {
			r.end = sf.WindowEndMin
		}
		if r.end <= r.start {
			continue
		}
		ranges = append(ranges, r)
	}
	return ranges
}

// mergeRanges merges overlapping or adjacent busy ranges into maximal ones.
func mergeRanges(ranges []minuteRange) []minuteRange {
	if len(ranges) == 0 {
		return ranges
	}

	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].start < ranges[j].start
	})

	merged := []minuteRange{ranges[0]}
	for i := 1; i < len(ranges); i++ {
		last := &merged[len(merged)-1]
		current := ranges[i]

		if current.start <= last.end {
			if current.end > last.end {
				last.end = current.end
			}
		} else {
			merged = append(merged, current)
		}
	}
	return merged
}
