// Package availability decides which seating slots are offered for a date.
package availability

import "unicode/utf16"

var canonicalSlots = [...]string{
	"17:00", "17:30", "18:00", "18:30", "19:00",
	"19:30", "20:00", "20:30", "21:00",
}

// Lookup reports whether a date is closed for bookings.
type Lookup interface {
	Contains(date string) bool
}

// CanonicalSlots returns a fresh copy of the nine evening start times.
func CanonicalSlots() []string {
	slots := make([]string, len(canonicalSlots))
	copy(slots, canonicalSlots[:])
	return slots
}

func IsCanonicalSlot(slot string) bool {
	for _, s := range canonicalSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// AvailableSlots returns the slots offered on date. A blocked date offers nothing.
// Otherwise the slot at index i is dropped when (Seed(date)+i) % 3 == 0, which gives a
// stable per-date pattern without looking at real bookings.
func AvailableSlots(date string, blocked Lookup) []string {
	if blocked != nil && blocked.Contains(date) {
		return []string{}
	}

	seed := Seed(date)
	slots := make([]string, 0, len(canonicalSlots))
	for i, s := range canonicalSlots {
		if (seed+i)%3 == 0 {
			continue
		}
		slots = append(slots, s)
	}
	return slots
}

// Seed sums the UTF-16 code units of date. Malformed input is accepted as is.
func Seed(date string) int {
	seed := 0
	for _, u := range utf16.Encode([]rune(date)) {
		seed += int(u)
	}
	return seed
}

// Offers reports whether slot is among the slots offered on date.
func Offers(date, slot string, blocked Lookup) bool {
	for _, s := range AvailableSlots(date, blocked) {
		if s == slot {
			return true
		}
	}
	return false
}
