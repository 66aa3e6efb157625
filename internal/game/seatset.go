package game

import (
	"fmt"
	"strings"
)

// SeatSet is a bitset over seat indices. The engine uses it to track
// need_action_from: the seats still owed a decision on the current street.
// Tables never exceed the 64 seats a single word can hold.
type SeatSet uint64

// Add returns the set with seat included.
func (s SeatSet) Add(seat int) SeatSet {
	return s | 1<<uint(seat)
}

// Remove returns the set with seat excluded.
func (s SeatSet) Remove(seat int) SeatSet {
	return s &^ (1 << uint(seat))
}

// Contains reports whether seat is in the set.
func (s SeatSet) Contains(seat int) bool {
	return s&(1<<uint(seat)) != 0
}

// Empty reports whether no seats remain.
func (s SeatSet) Empty() bool {
	return s == 0
}

// Count returns the number of seats in the set.
func (s SeatSet) Count() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Seats returns the members in ascending order.
func (s SeatSet) Seats() []int {
	seats := make([]int, 0, s.Count())
	for seat := 0; s != 0; seat, s = seat+1, s>>1 {
		if s&1 != 0 {
			seats = append(seats, seat)
		}
	}
	return seats
}

// NextFrom returns the first member at or after `from`, wrapping around a
// table of n seats. Returns -1 when the set is empty.
func (s SeatSet) NextFrom(from, n int) int {
	if s.Empty() {
		return -1
	}
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		if s.Contains(seat) {
			return seat
		}
	}
	return -1
}

func (s SeatSet) String() string {
	parts := make([]string, 0, s.Count())
	for _, seat := range s.Seats() {
		parts = append(parts, fmt.Sprintf("%d", seat))
	}
	return "{" + strings.Join(parts, ",") + "}"
}
