package crossing

// Player tracks the crosser's cell and scores.
//
// Progress is net forward progress: +1 for each row moved up, -1 for each row
// moved down. SessionBest is the peak Progress since spawning and AllTimeBest
// the peak across every session the player was seeded with.
type Player struct {
	X, Y        int
	Progress    int
	SessionBest int
	AllTimeBest int
}

// record folds the current progress into the best scores.
func (p *Player) record() {
	p.SessionBest = max(p.SessionBest, p.Progress)
	p.AllTimeBest = max(p.AllTimeBest, p.SessionBest)
}
