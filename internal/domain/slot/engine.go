// Package slot derives bookable start times from business hours, anchor times
// and busy intervals.
package slot

import (
	"sort"
	"time"
)

// Request describes one date/service slot computation. Span is the service
// duration plus its preparation buffer.
type Request struct {
	Date    time.Time
	Span    time.Duration
	Hours   BusinessHours
	Anchors []ClockTime
}

// AvailableStarts returns every valid start time for the request in ascending order.
//
// Candidates are the anchor times, the end of every busy interval and, for every
// busy interval, its start minus the span. A candidate survives when
// [candidate, candidate+span) lies inside business hours and overlaps no busy interval.
func AvailableStarts(req Request, busy []Interval) []time.Time {
	if req.Span <= 0 {
		return nil
	}

	open := req.Hours.Open.On(req.Date)
	closeAt := req.Hours.Close.On(req.Date)

	candidates := make([]time.Time, 0, len(req.Anchors)+2*len(busy))
	for _, a := range req.Anchors {
		candidates = append(candidates, a.On(req.Date))
	}
	for _, b := range busy {
		candidates = append(candidates, b.End, b.Start.Add(-req.Span))
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Before(candidates[j]) })

	var starts []time.Time
	for i, c := range candidates {
		if i > 0 && c.Equal(candidates[i-1]) {
			continue
		}
		end := c.Add(req.Span)
		if c.Before(open) || end.After(closeAt) {
			continue
		}
		if overlapsAny(busy, c, end) {
			continue
		}
		starts = append(starts, c)
	}
	return starts
}

func overlapsAny(busy []Interval, start, end time.Time) bool {
	for _, b := range busy {
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}
