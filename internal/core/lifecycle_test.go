package core

import "testing"

func TestSessionTransitions(t *testing.T) {
	var s Session

	if s.Finish(false) {
		t.Error("Finish() from Ready must be rejected")
	}
	if s.Restart() {
		t.Error("Restart() from Ready must be rejected")
	}
	if !s.Start() || s.State != Playing {
		t.Fatalf("Start() from Ready should enter Playing, got %v", s.State)
	}
	if s.Start() {
		t.Error("Start() twice must be rejected")
	}

	s.AddScore(30)
	if !s.Finish(true) || s.State != Win {
		t.Fatalf("Finish(true) should enter Win, got %v", s.State)
	}
	if s.Finish(false) {
		t.Error("terminal state must not change except through Restart()")
	}
	if !s.Restart() || s.State != Ready || s.Score != 0 {
		t.Errorf("Restart() = %v score %d, expected ready with score 0", s.State, s.Score)
	}
	if s.Best != 30 {
		t.Errorf("Best = %d, expected 30 to survive Restart()", s.Best)
	}
}

func TestSessionBestTracksScore(t *testing.T) {
	s := Session{Best: 12}
	s.Start()
	s.AddScore(10)
	if s.Best != 12 {
		t.Errorf("Best = %d, expected 12", s.Best)
	}
	s.AddScore(10)
	if s.Best != 20 {
		t.Errorf("Best = %d, expected 20", s.Best)
	}
}

func TestLifecycleString(t *testing.T) {
	tests := map[Lifecycle]string{Ready: "ready", Playing: "playing", GameOver: "gameover", Win: "win"}
	for l, want := range tests {
		if l.String() != want {
			t.Errorf("String() = %q, expected %q", l.String(), want)
		}
	}
	if !GameOver.Terminal() || !Win.Terminal() || Playing.Terminal() {
		t.Error("only gameover and win are terminal")
	}
}
