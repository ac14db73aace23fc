package game

// Losses records units killed per (type, level) on one side.
type Losses struct {
	Units map[UnitKey]int
	Total int
}

func NewLosses() Losses {
	return Losses{Units: make(map[UnitKey]int)}
}

// Add records n units of key killed. Zero removals are not recorded.
func (l *Losses) Add(key UnitKey, n int) {
	if n <= 0 {
		return
	}
	if l.Units == nil {
		l.Units = make(map[UnitKey]int)
	}
	l.Units[key] += n
	l.Total += n
}

// Merge accumulates other into l.
func (l *Losses) Merge(other Losses) {
	for key, n := range other.Units {
		l.Add(key, n)
	}
}

func (l Losses) Get(key UnitKey) int {
	return l.Units[key]
}
