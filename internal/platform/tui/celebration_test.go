package tui

import (
	"strings"
	"testing"
)

func TestCelebrationScatter(t *testing.T) {
	c := NewCelebration(40, 3, 10, 1)
	c.Scatter()

	if len(c.sparkles) != sparkleCount {
		t.Fatalf("scattered %d sparkles, want %d", len(c.sparkles), sparkleCount)
	}
	for _, s := range c.sparkles {
		if s.x < 0 || s.x >= 40 || s.y < 0 || s.y >= 3 {
			t.Errorf("sparkle out of bounds: %+v", s)
		}
		if s.delay >= 20 || s.period < 10 || s.period >= 30 {
			t.Errorf("sparkle timing out of range: %+v", s)
		}
	}
}

func TestCelebrationAnimates(t *testing.T) {
	c := NewCelebration(40, 3, 10, 1)
	c.Scatter()

	// Every sparkle lights up at its delay frame
	seen := make(map[int]bool)
	for range 20 {
		for i, s := range c.sparkles {
			if c.visible(s) {
				seen[i] = true
			}
		}
		c.Step()
	}
	if len(seen) != sparkleCount {
		t.Errorf("%d of %d sparkles lit within two seconds", len(seen), sparkleCount)
	}
}

func TestCelebrationRender(t *testing.T) {
	c := NewCelebration(30, 2, 10, 3)
	c.Scatter()
	for range 25 {
		c.Step()
	}

	out := c.Render()
	if strings.Count(out, "\n") != 1 {
		t.Errorf("render should have 2 rows, got %q", out)
	}
	drawn := 0
	for y := 0; y < c.screen.Height(); y++ {
		for x := 0; x < c.screen.Width(); x++ {
			if c.screen.GetCell(x, y).Rune != ' ' {
				drawn++
			}
		}
	}
	if c.Lit() > 0 && drawn == 0 {
		t.Error("lit sparkles should be drawn")
	}
}

func TestCelebrationZeroSize(t *testing.T) {
	c := NewCelebration(0, 0, 10, 1)
	c.Scatter()
	if len(c.sparkles) != 0 {
		t.Error("empty strip should hold no sparkles")
	}
	if c.Render() != "" {
		t.Error("empty strip should render nothing")
	}

	c.Resize(10, 2)
	if len(c.sparkles) != sparkleCount {
		t.Error("resize should re-scatter")
	}
}

func TestTimerGenerations(t *testing.T) {
	timer := NewTimer()
	if timer.take() != nil {
		t.Error("stopped timer should have nothing pending")
	}

	timer.Start()
	gen := timer.gen
	if timer.take() == nil {
		t.Error("Start should leave a tick pending")
	}
	if timer.take() != nil {
		t.Error("take should clear the pending tick")
	}
	if !timer.accept(countdownMsg{gen: gen}) {
		t.Error("tick of the current run should be accepted")
	}

	timer.Stop()
	if timer.accept(countdownMsg{gen: gen}) {
		t.Error("tick after Stop should be rejected")
	}
	timer.rearm()
	if timer.take() != nil {
		t.Error("rearm on a stopped timer should not schedule")
	}
}
