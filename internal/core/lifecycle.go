package core

// Lifecycle is the coarse phase of one play session.
type Lifecycle int

const (
	Ready Lifecycle = iota
	Playing
	GameOver
	Win
)

// String returns the lowercase name of the phase.
func (l Lifecycle) String() string {
	switch l {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case GameOver:
		return "gameover"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the session.
func (l Lifecycle) Terminal() bool {
	return l == GameOver || l == Win
}

// Session tracks lifecycle and score for one mounted game.
// The only transitions are Ready -> Playing -> GameOver|Win -> Ready.
type Session struct {
	State Lifecycle
	Score int
	Best  int
}

// Start enters Playing from Ready. It reports whether the transition happened.
func (s *Session) Start() bool {
	if s.State != Ready {
		return false
	}
	s.State = Playing
	return true
}

// Finish ends a running session. It is a no-op outside Playing.
func (s *Session) Finish(win bool) bool {
	if s.State != Playing {
		return false
	}
	if win {
		s.State = Win
	} else {
		s.State = GameOver
	}
	s.bumpBest()
	return true
}

// Restart returns a finished session to Ready and clears the score.
// Best survives for the lifetime of the Session.
func (s *Session) Restart() bool {
	if !s.State.Terminal() {
		return false
	}
	s.State = Ready
	s.Score = 0
	return true
}

// AddScore adds points and keeps Best current.
func (s *Session) AddScore(n int) {
	s.Score += n
	s.bumpBest()
}

// Playing reports whether entities may advance.
func (s *Session) Playing() bool {
	return s.State == Playing
}

// Snapshot returns the session as a GameState.
func (s *Session) Snapshot() GameState {
	return GameState{Lifecycle: s.State, Score: s.Score, Best: s.Best}
}

func (s *Session) bumpBest() {
	if s.Score > s.Best {
		s.Best = s.Score
	}
}
