package crossing

import "math/rand"

// Lane is the terrain of one row of the play field.
type Lane int

const (
	LaneGround Lane = iota
	LaneWater
	LaneSafe

	laneKinds
)

// String returns the lane name.
func (l Lane) String() string {
	switch l {
	case LaneGround:
		return "ground"
	case LaneWater:
		return "water"
	case LaneSafe:
		return "safe"
	default:
		return "unknown"
	}
}

// Lanes is the terrain of each row, top to bottom.
type Lanes []Lane

// SafeRow returns the index that is always Safe: the last row, which sits
// directly above the player's spawn strip.
func SafeRow(rowCount int) int {
	return rowCount - 1
}

// GenerateLanes assigns a terrain to each of rowCount rows.
// The source is seeded once; every row except SafeRow draws uniformly from
// the three kinds, and SafeRow is forced to LaneSafe without drawing.
// The same (rowCount, seed) always yields the same lanes.
func GenerateLanes(rowCount int, seed int64) Lanes {
	if rowCount <= 0 {
		return Lanes{}
	}

	rng := rand.New(rand.NewSource(seed))
	safe := SafeRow(rowCount)
	lanes := make(Lanes, rowCount)
	for i := range lanes {
		if i == safe {
			lanes[i] = LaneSafe
			continue
		}
		lanes[i] = Lane(rng.Intn(int(laneKinds)))
	}
	return lanes
}

// Count returns how many rows have the given terrain.
func (ls Lanes) Count(kind Lane) int {
	n := 0
	for _, l := range ls {
		if l == kind {
			n++
		}
	}
	return n
}
