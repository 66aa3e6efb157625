package game

import (
	"fmt"
	"sort"
)

// PotManager keeps the hand's contribution ledger. It is maintained
// independently of the per-player totals so the two can be checked against
// each other, and it resolves main/side pots at hand end.
type PotManager struct {
	contrib []int
}

// NewPotManager creates a ledger for n seats.
func NewPotManager(n int) *PotManager {
	return &PotManager{contrib: make([]int, n)}
}

// Contribute records amount chips entering the pot from seat.
func (pm *PotManager) Contribute(seat, amount int) {
	pm.contrib[seat] += amount
}

// Total returns the chips committed to the hand so far.
func (pm *PotManager) Total() int {
	total := 0
	for _, c := range pm.contrib {
		total += c
	}
	return total
}

// Contribution returns the chips seat has committed to the hand.
func (pm *PotManager) Contribution(seat int) int {
	return pm.contrib[seat]
}

func (pm *PotManager) clone() *PotManager {
	contrib := make([]int, len(pm.contrib))
	copy(contrib, pm.contrib)
	return &PotManager{contrib: contrib}
}

// TierAward describes one resolved pot tier: the invested level it covers,
// the chips it held, the seats eligible to contest it and the seats that won
// a share.
type TierAward struct {
	Threshold int
	Amount    int
	Eligible  []int
	Winners   []int
}

// Resolve splits the pot into all-in tiers and awards each to the best hand
// among its eligible seats. values maps live seats to their showdown value;
// it may be nil when at most one live player remains (fold-out). An uncalled
// excess (a wager nobody matched) is returned to the bettor before tiering.
//
// Ties split a tier evenly; the remainder of an uneven split goes to the
// winner closest to the button's left. The returned distribution includes
// any uncalled return, so its sum always equals the sum of contributions.
func (pm *PotManager) Resolve(players []*Player, values map[int]HandValue, button int) (map[int]int, []TierAward, error) {
	n := len(pm.contrib)
	invested := make([]int, n)
	copy(invested, pm.contrib)
	dist := make(map[int]int)

	// Return the uncalled excess of the largest commitment.
	top, second, topSeat := 0, 0, -1
	for seat, inv := range invested {
		switch {
		case inv > top:
			second = top
			top, topSeat = inv, seat
		case inv == top:
			topSeat = -1
		case inv > second:
			second = inv
		}
	}
	if topSeat >= 0 && top > second {
		refund := top - second
		invested[topSeat] -= refund
		dist[topSeat] += refund
	}

	// Tier thresholds are the distinct commitments of live players.
	levelSet := make(map[int]bool)
	for _, p := range players {
		if p.Live() && invested[p.Seat] > 0 {
			levelSet[invested[p.Seat]] = true
		}
	}
	levels := make([]int, 0, len(levelSet))
	for l := range levelSet {
		levels = append(levels, l)
	}
	sort.Ints(levels)

	awards := make([]TierAward, 0, len(levels))
	prev := 0
	for _, level := range levels {
		tier := TierAward{Threshold: level}
		for seat := 0; seat < n; seat++ {
			slice := min(invested[seat], level) - prev
			if slice > 0 {
				tier.Amount += slice
			}
		}
		for _, p := range players {
			if p.Live() && invested[p.Seat] >= level {
				tier.Eligible = append(tier.Eligible, p.Seat)
			}
		}
		winners, err := tierWinners(tier.Eligible, values)
		if err != nil {
			return nil, nil, err
		}
		tier.Winners = winners

		share := tier.Amount / len(winners)
		remainder := tier.Amount % len(winners)
		for _, seat := range winners {
			dist[seat] += share
		}
		if remainder > 0 {
			dist[firstFromButton(winners, button, n)] += remainder
		}
		awards = append(awards, tier)
		prev = level
	}
	return dist, awards, nil
}

// tierWinners returns the eligible seats holding the best hand value.
func tierWinners(eligible []int, values map[int]HandValue) ([]int, error) {
	if len(eligible) == 1 {
		return eligible, nil
	}
	var winners []int
	var best int32
	for _, seat := range eligible {
		v, ok := values[seat]
		if !ok {
			return nil, fmt.Errorf("game: no showdown value for seat %d", seat)
		}
		switch {
		case len(winners) == 0 || v.Score > best:
			winners = []int{seat}
			best = v.Score
		case v.Score == best:
			winners = append(winners, seat)
		}
	}
	return winners, nil
}

// firstFromButton picks the seat with the smallest clockwise distance from
// the button's left. Decides odd-chip remainders deterministically.
func firstFromButton(seats []int, button, n int) int {
	bestSeat, bestDist := seats[0], n+1
	for _, seat := range seats {
		dist := (seat - button - 1 + n) % n
		if dist < bestDist {
			bestSeat, bestDist = seat, dist
		}
	}
	return bestSeat
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
