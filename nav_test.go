package herofx

import "testing"

type countingPlayer struct{ plays int }

func (p *countingPlayer) Play() { p.plays++ }

func newTestNavigator() (*Navigator, *countingPlayer) {
	p := &countingPlayer{}
	return NewNavigator(DefaultConfig().Nav, p), p
}

func TestNavigatorGoToLocksAndPlays(t *testing.T) {
	n, p := newTestNavigator()
	var from, to = -1, -1
	n.OnNavigate = func(f, t int) { from, to = f, t }

	if !n.GoTo(2) {
		t.Fatal("GoTo(2) = false")
	}
	if n.Active() != 2 || !n.Locked() || p.plays != 1 {
		t.Errorf("active=%d locked=%v plays=%d", n.Active(), n.Locked(), p.plays)
	}
	if from != 0 || to != 2 {
		t.Errorf("OnNavigate(%d, %d), want (0, 2)", from, to)
	}
	if n.ActiveItem().Path != "/about" {
		t.Errorf("ActiveItem = %+v", n.ActiveItem())
	}
}

func TestNavigatorIgnoredCalls(t *testing.T) {
	tests := []struct {
		name   string
		prep   func(n *Navigator)
		target int
	}{
		{"active page", func(*Navigator) {}, 0},
		{"out of range", func(*Navigator) {}, 6},
		{"negative", func(*Navigator) {}, -1},
		{"locked", func(n *Navigator) { n.GoTo(1) }, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, p := newTestNavigator()
			tt.prep(n)
			active, plays := n.Active(), p.plays
			if n.GoTo(tt.target) {
				t.Error("GoTo should be ignored")
			}
			if n.Active() != active || p.plays != plays {
				t.Errorf("state changed: active=%d plays=%d", n.Active(), p.plays)
			}
		})
	}
}

func TestNavigatorCompleteUnlocks(t *testing.T) {
	n, _ := newTestNavigator()
	n.GoTo(1)
	n.Complete()
	if n.Locked() {
		t.Fatal("Complete should unlock")
	}
	if !n.GoTo(4) {
		t.Error("GoTo after Complete should navigate")
	}
}

func TestNavigatorSafetyUnlock(t *testing.T) {
	n, _ := newTestNavigator()
	n.GoTo(1)
	n.Update(2.4)
	if !n.Locked() {
		t.Fatal("unlocked before the safety window")
	}
	n.Update(0.2)
	if n.Locked() {
		t.Fatal("safety unlock did not fire after 2.5s")
	}
}

func TestNavigatorSafetyRearmed(t *testing.T) {
	n, _ := newTestNavigator()
	n.GoTo(1)
	n.Update(2.0)
	n.Complete()
	n.GoTo(2)
	n.Update(1.0)
	if !n.Locked() {
		t.Error("an earlier navigation's countdown should not unlock a later one")
	}
}

func TestNavigatorGoToPath(t *testing.T) {
	n, _ := newTestNavigator()
	if !n.GoToPath("/contact") || n.Active() != 5 {
		t.Errorf("GoToPath(/contact) active = %d", n.Active())
	}
	n.Complete()
	if n.GoToPath("/missing") {
		t.Error("unknown path should be ignored")
	}
}

func TestNavigatorWithoutPlayer(t *testing.T) {
	n := NewNavigator(DefaultConfig().Nav, nil)
	if !n.GoTo(1) {
		t.Error("GoTo without a player should still navigate")
	}
}

func TestNavigatorOverlayWiring(t *testing.T) {
	o, _ := newTestOverlay(t, true)
	n := NewNavigator(DefaultConfig().Nav, o)
	o.OnComplete = n.Complete

	n.GoTo(3)
	if !o.Animating() || !n.Locked() {
		t.Fatalf("overlay animating=%v nav locked=%v", o.Animating(), n.Locked())
	}
	for range 130 {
		o.Update(frameDT)
		n.Update(frameDT)
	}
	if n.Locked() {
		t.Error("overlay completion should unlock navigation")
	}
}

func TestNavigatorIndexOf(t *testing.T) {
	n, _ := newTestNavigator()
	tests := []struct {
		path string
		want int
	}{
		{"/", 0},
		{"/chat", 1},
		{"/works", 4},
		{"/nope", -1},
		{"", -1},
	}
	for _, tt := range tests {
		if got := n.IndexOf(tt.path); got != tt.want {
			t.Errorf("IndexOf(%q) = %d, want %d", tt.path, got, tt.want)
		}
	}
}
