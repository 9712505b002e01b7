package game

import "mlb-gamecast/internal/domain"

// Bases holds the runner on each of first, second and third. Zero means the
// base is empty.
type Bases [3]int

func (b Bases) Runner(base domain.Base) (int, bool) {
	id := b[base]
	return id, id != 0
}

func (b Bases) Empty() bool {
	return b == Bases{}
}

// place puts id on base, first taking id off any other base.
func (b *Bases) place(base domain.Base, id int) {
	for i := range b {
		if b[i] == id {
			b[i] = 0
		}
	}
	b[base] = id
}

// UpdateRunners returns the occupancy after play. The previous state is not
// consulted: every play recomputes the bases from scratch, first from the
// play's runner movements, then from the batter's own result. A single, double
// or triple puts the batter on that base even if a movement landed someone
// else there, and takes him off any base the movements gave him. A home run
// leaves the bases empty. A walk only puts the batter on first when nobody
// else is on base (forced advances are not modelled).
func UpdateRunners(_ Bases, play domain.Play) Bases {
	var next Bases

	for _, mv := range play.Runners {
		if mv.RunnerID == 0 {
			continue
		}
		if base, ok := domain.ParseBase(mv.End); ok {
			next[base] = mv.RunnerID
		}
	}

	switch play.EventType {
	case domain.EventSingle:
		next.place(domain.FirstBase, play.BatterID)
	case domain.EventDouble:
		next.place(domain.SecondBase, play.BatterID)
	case domain.EventTriple:
		next.place(domain.ThirdBase, play.BatterID)
	case domain.EventHomeRun:
		next = Bases{}
	case domain.EventWalk:
		if next.Empty() {
			next[domain.FirstBase] = play.BatterID
		}
	}

	return next
}
