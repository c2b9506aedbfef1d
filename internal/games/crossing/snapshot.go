package crossing

// Snapshot contains the complete field state.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Cols        int
	Rows        int
	Seed        int64
	PlayerX     int
	PlayerY     int
	Progress    int
	SessionBest int
	AllTimeBest int

	// One entry per lane row, top to bottom (0=ground, 1=water, 2=safe)
	LaneData []int
}

// Snapshot returns the current field state as a Snapshot.
func (f *Field) Snapshot() Snapshot {
	laneData := make([]int, len(f.lanes))
	for i, l := range f.lanes {
		laneData[i] = int(l)
	}

	return Snapshot{
		Cols:        f.cols,
		Rows:        f.rows,
		Seed:        f.seed,
		PlayerX:     f.player.X,
		PlayerY:     f.player.Y,
		Progress:    f.player.Progress,
		SessionBest: f.player.SessionBest,
		AllTimeBest: f.player.AllTimeBest,
		LaneData:    laneData,
	}
}
