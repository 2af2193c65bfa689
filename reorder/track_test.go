package reorder

import (
	"testing"

	"fyne.io/fyne/v2"
)

func liftRow(c *controller, index int) {
	c.establish(index)
	if c.session.state != statePressed {
		panic("session not established")
	}
}

func TestTrack_FirstSampleEntersDragging(t *testing.T) {
	host := newFakeHost(5, 40, 400)
	c, _, _ := newGestureController(host, newFakeCollection("a", "b", "c", "d", "e"))

	liftRow(c, 1)
	c.dragSample(fyne.Delta{DY: 5})

	if c.session.state != stateDragging {
		t.Fatalf("expected dragging state, got %v", c.session.state)
	}
	if got, want := c.session.translationY, float32(5); got != want {
		t.Fatalf("expected translation %v, got %v", want, got)
	}
}

func TestTrack_GhostFollowsAccumulatedTranslation(t *testing.T) {
	host := newFakeHost(10, 40, 400)
	c, _, _ := newGestureController(host, newFakeCollection(make([]string, 10)...))

	liftRow(c, 2)
	// Row 2 spans 80..120, so its top sits at 80 with no scroll.
	if got, want := host.ghostTop, float32(80); got != want {
		t.Fatalf("expected initial ghost top %v, got %v", want, got)
	}

	c.dragSample(fyne.Delta{DY: 12})
	c.dragSample(fyne.Delta{DY: -2})
	if got, want := host.ghostTop, float32(90); got != want {
		t.Fatalf("expected ghost top %v after samples, got %v", want, got)
	}
}

func TestTrack_CenterClampedToViewport(t *testing.T) {
	host := newFakeHost(30, 40, 200)
	host.offset = 200
	c, _, _ := newGestureController(host, newFakeCollection(make([]string, 30)...))

	liftRow(c, 7) // center 300, mid-viewport
	c.dragSample(fyne.Delta{DY: -500})

	// The center may not leave the visible band 200..400.
	if got, want := c.session.centerY, float32(200); got != want {
		t.Fatalf("expected center clamped to viewport top %v, got %v", want, got)
	}
	if got, want := c.session.unclampedCenterY, float32(-200); got != want {
		t.Fatalf("expected raw center %v preserved, got %v", want, got)
	}
}

func TestTrack_ContentClampTopWinsWhenContentShort(t *testing.T) {
	// Two 40 pt rows inside a 400 pt viewport: the content band is shorter
	// than the viewport, and the content clamp takes over from the viewport
	// clamp.
	host := newFakeHost(2, 40, 400)
	c, _, _ := newGestureController(host, newFakeCollection("a", "b"))

	liftRow(c, 0)
	c.dragSample(fyne.Delta{DY: 300})
	if got, want := c.session.centerY, float32(60); got != want {
		t.Fatalf("expected center pinned to content bottom %v, got %v", want, got)
	}

	c.dragSample(fyne.Delta{DY: -600})
	if got, want := c.session.centerY, float32(20); got != want {
		t.Fatalf("expected center pinned to content top %v, got %v", want, got)
	}
}

func TestTrack_DragEndWithPendingPressCancels(t *testing.T) {
	host := newFakeHost(5, 40, 400)
	c, fi, _ := newGestureController(host, newFakeCollection("a", "b", "c", "d", "e"))

	c.pointerDown(fyne.NewPos(10, 50))
	c.dragEnded()

	if c.press.active {
		t.Fatal("expected pending press cancelled by drag end")
	}
	if fi.produced != 0 {
		t.Fatal("expected no session")
	}
}

func TestTrack_SamplesIgnoredWhileIdle(t *testing.T) {
	host := newFakeHost(5, 40, 400)
	c, _, _ := newGestureController(host, newFakeCollection("a", "b", "c", "d", "e"))

	c.dragSample(fyne.Delta{DY: 25})
	if c.session.state != stateIdle || host.ghostMoves != 0 {
		t.Fatal("expected idle controller to ignore drag samples")
	}
}
