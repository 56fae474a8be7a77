package parallax

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestNewScrollerStartsAtLowerBound(t *testing.T) {
	s := NewScroller(MustInterval(400.0, 0.0))
	if s.Position != 0 {
		t.Errorf("Position = %v, want 0", s.Position)
	}
	if s.Scrolling() {
		t.Error("should not be scrolling")
	}
}

func TestScrollByClamps(t *testing.T) {
	s := NewScroller(MustInterval(0.0, 400.0))
	s.ScrollBy(-10)
	if s.Position != 0 {
		t.Errorf("Position = %v, want 0", s.Position)
	}
	s.ScrollBy(150)
	if s.Position != 150 {
		t.Errorf("Position = %v, want 150", s.Position)
	}
	s.ScrollBy(1000)
	if s.Position != 400 {
		t.Errorf("Position = %v, want 400", s.Position)
	}
}

func TestScrollerPublishesOnlyChanges(t *testing.T) {
	s := NewScroller(MustInterval(0.0, 400.0))
	var got []float64
	s.Stream().Subscribe(func(v float64) { got = append(got, v) })

	s.Update(1.0 / 60) // first update always publishes
	s.Update(1.0 / 60)
	s.ScrollBy(25)
	s.Update(1.0 / 60)
	s.Update(1.0 / 60)

	if len(got) != 2 || got[0] != 0 || got[1] != 25 {
		t.Errorf("published %v, want [0 25]", got)
	}
}

func TestScrollToAnimates(t *testing.T) {
	s := NewScroller(MustInterval(0.0, 400.0))
	s.ScrollTo(200, 1.0, ease.Linear)
	if !s.Scrolling() {
		t.Fatal("should be scrolling")
	}

	s.Update(0.5)
	if math.Abs(s.Position-100) > 0.5 {
		t.Errorf("Position = %f, want ~100 at halfway", s.Position)
	}
	s.Update(0.5)
	if s.Scrolling() {
		t.Error("should have stopped scrolling")
	}
	if math.Abs(s.Position-200) > 0.5 {
		t.Errorf("Position = %f, want ~200", s.Position)
	}
}

func TestScrollToClampsTarget(t *testing.T) {
	s := NewScroller(MustInterval(0.0, 400.0))
	s.ScrollTo(1000, 0.5, ease.Linear)
	s.Update(0.25)
	s.Update(0.25)
	if math.Abs(s.Position-400) > 0.5 {
		t.Errorf("Position = %f, want ~400", s.Position)
	}
}

func TestScrollByCancelsAnimation(t *testing.T) {
	s := NewScroller(MustInterval(0.0, 400.0))
	s.ScrollTo(300, 1.0, ease.Linear)
	s.ScrollBy(10)
	if s.Scrolling() {
		t.Error("ScrollBy should cancel the animation")
	}
	if s.Position != 10 {
		t.Errorf("Position = %v, want 10", s.Position)
	}
}

func TestSnapToNearestPage(t *testing.T) {
	s := NewScroller(MustInterval(0.0, 400.0))
	s.ScrollBy(160)
	s.SnapTo(100, 0.5, ease.OutCubic)
	s.Update(0.25)
	s.Update(0.25)
	if math.Abs(s.Position-200) > 0.5 {
		t.Errorf("Position = %f, want ~200", s.Position)
	}

	s.ScrollBy(-60)
	s.SnapTo(100, 0.5, ease.OutCubic)
	s.Update(0.5)
	if math.Abs(s.Position-100) > 0.5 {
		t.Errorf("Position = %f, want ~100", s.Position)
	}
}

func TestSnapToInvalidStepPanics(t *testing.T) {
	s := NewScroller(MustInterval(0.0, 400.0))
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	s.SnapTo(0, 0.5, ease.Linear)
}

func TestSetBoundsClampsPosition(t *testing.T) {
	s := NewScroller(MustInterval(0.0, 400.0))
	s.ScrollBy(350)
	s.SetBounds(MustInterval(0.0, 300.0))
	if s.Position != 300 {
		t.Errorf("Position = %v, want 300", s.Position)
	}
	if s.Bounds() != MustInterval(0.0, 300.0) {
		t.Errorf("Bounds = %v", s.Bounds())
	}
}

func TestScrollerDrivesPageIndex(t *testing.T) {
	s := NewScroller(MustInterval(0.0, 400.0))
	var pages []int
	Distinct(Map(
		Relate(s.Stream(), s.Bounds()).Relate(MustInterval(0.0, 4.0)).Clamp().Value(),
		func(v float64) int { return int(math.Round(v)) },
	)).Subscribe(func(i int) { pages = append(pages, i) })

	s.Update(0)
	s.ScrollTo(300, 1.0, ease.Linear)
	for i := 0; i < 4; i++ {
		s.Update(0.25)
	}

	want := []int{0, 1, 2, 3}
	if len(pages) != len(want) {
		t.Fatalf("pages = %v, want %v", pages, want)
	}
	for i := range want {
		if pages[i] != want[i] {
			t.Errorf("pages = %v, want %v", pages, want)
			break
		}
	}
}
