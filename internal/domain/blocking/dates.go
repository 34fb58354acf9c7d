// Package blocking holds the set of calendar dates closed for bookings.
package blocking

import "sort"

// Dates is an immutable set of ISO dates. Every mutator returns a new value.
type Dates struct {
	set map[string]struct{}
}

func NewDates(dates ...string) Dates {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return Dates{set: set}
}

func (d Dates) Contains(date string) bool {
	_, ok := d.set[date]
	return ok
}

func (d Dates) Len() int {
	return len(d.set)
}

// Toggle adds date when absent and removes it when present.
func (d Dates) Toggle(date string) Dates {
	if d.Contains(date) {
		return d.Remove(date)
	}
	return d.Add(date)
}

// ToggleAll flips every date in order. A date listed twice ends where it started.
func (d Dates) ToggleAll(dates []string) Dates {
	next := d
	for _, date := range dates {
		next = next.Toggle(date)
	}
	return next
}

func (d Dates) Add(date string) Dates {
	next := d.clone()
	next.set[date] = struct{}{}
	return next
}

func (d Dates) Remove(date string) Dates {
	next := d.clone()
	delete(next.set, date)
	return next
}

// List returns the dates in chronological order.
func (d Dates) List() []string {
	list := make([]string, 0, len(d.set))
	for date := range d.set {
		list = append(list, date)
	}
	sort.Strings(list)
	return list
}

func (d Dates) Equal(other Dates) bool {
	if d.Len() != other.Len() {
		return false
	}
	for date := range d.set {
		if !other.Contains(date) {
			return false
		}
	}
	return true
}

func (d Dates) clone() Dates {
	set := make(map[string]struct{}, len(d.set)+1)
	for date := range d.set {
		set[date] = struct{}{}
	}
	return Dates{set: set}
}
