// SPDX-License-Identifier: Unlicense OR MIT

package drawer

import (
	"log/slog"
	"math"
	"time"
)

// TouchKind is the phase of a touch within a touch sequence.
type TouchKind uint8

const (
	// TouchDown starts a touch sequence.
	TouchDown TouchKind = iota
	// TouchMove reports a moved pointer.
	TouchMove
	// TouchUp ends a touch sequence by lifting the pointer.
	TouchUp
	// TouchCancel ends a touch sequence without a release.
	TouchCancel
)

// Touch is a single pointer event of a touch sequence, in viewport
// coordinates.
type Touch struct {
	Kind TouchKind
	X, Y float32
	// Time is the event time relative to an arbitrary epoch.
	Time time.Duration
}

// Scroller is a horizontal scroll container. Implementations report
// every offset change back to the drawer through OnScrollChanged.
type Scroller interface {
	// ScrollX returns the current offset.
	ScrollX() int
	// Target returns the offset the scroller is settling at, which is
	// the current offset when no animation is in flight.
	Target() int
	// ScrollTo moves to x immediately.
	ScrollTo(x int)
	// SmoothScrollTo animates towards x, replacing any animation in
	// flight.
	SmoothScrollTo(x int)
}

// Recognizer classifies touch sequences as flings.
type Recognizer interface {
	// Fling observes t and reports whether it completed a horizontal
	// fling, along with the fling velocity in pixels per second.
	Fling(t Touch) (velocityX float32, ok bool)
}

// Disposition tells the host what to do with a touch sequence.
type Disposition uint8

const (
	// Pass lets the panels receive the sequence.
	Pass Disposition = iota
	// Claim takes the sequence away from the panels.
	Claim
)

// Option configures a Drawer.
type Option func(d *Drawer)

// WithLogger sets the logger for scroll and state traces.
func WithLogger(l *slog.Logger) Option {
	return func(d *Drawer) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithTouchSlop sets the distance in pixels a pointer must travel
// before a touch sequence scrolls the drawer.
func WithTouchSlop(px float32) Option {
	return func(d *Drawer) {
		d.slop = px
	}
}

// Drawer is the open/close state machine of a sliding menu. The menu
// is open when the scroll offset settles at 0 and closed when it
// settles at the menu width.
type Drawer struct {
	geom       Geometry
	scroller   Scroller
	recognizer Recognizer
	logger     *slog.Logger
	slop       float32

	open      bool
	transform Transform

	// State of the current touch sequence.
	tracking     bool
	intercepted  bool
	dragging     bool
	downX        float32
	anchorX      float32
	anchorOffset int
}

// New returns a closed drawer. Call Attach once the scroller is ready
// to receive offsets.
func New(g Geometry, s Scroller, r Recognizer, opts ...Option) *Drawer {
	d := &Drawer{
		geom:       g,
		scroller:   s,
		recognizer: r,
		logger:     slog.New(slog.DiscardHandler),
		slop:       8,
	}
	for _, o := range opts {
		o(d)
	}
	d.transform = g.TransformAt(g.MenuWidth)
	return d
}

// Attach moves the drawer to its closed position without animation
// and hides the shadow.
func (d *Drawer) Attach() {
	d.open = false
	d.scroller.ScrollTo(d.geom.MenuWidth)
	d.transform = d.geom.TransformAt(d.geom.MenuWidth)
	d.transform.ShadowAlpha = 0
}

// Geometry returns the fixed extents of the drawer.
func (d *Drawer) Geometry() Geometry {
	return d.geom
}

// IsOpen reports whether the drawer is open or opening.
func (d *Drawer) IsOpen() bool {
	return d.open
}

// Offset returns the current scroll offset.
func (d *Drawer) Offset() int {
	return d.scroller.ScrollX()
}

// Transform returns the visual transform for the most recent scroll
// offset.
func (d *Drawer) Transform() Transform {
	return d.transform
}

// OnScrollChanged recomputes the transform for a new scroll offset.
func (d *Drawer) OnScrollChanged(offset int) {
	d.transform = d.geom.TransformAt(offset)
	d.logger.Debug("scroll changed",
		"offset", offset,
		"content_scale", d.transform.ContentScale,
		"menu_alpha", d.transform.MenuAlpha,
		"shadow_alpha", d.transform.ShadowAlpha,
	)
}

// Open animates the menu into view.
func (d *Drawer) Open() {
	d.moveTo(true, 0)
}

// Close animates the menu out of view.
func (d *Drawer) Close() {
	d.moveTo(false, d.geom.MenuWidth)
}

// Toggle opens a closed drawer and closes an open one.
func (d *Drawer) Toggle() {
	if d.open {
		d.Close()
	} else {
		d.Open()
	}
}

func (d *Drawer) moveTo(open bool, target int) {
	if d.open == open && d.scroller.Target() == target {
		return
	}
	if d.open != open {
		d.logger.Debug("drawer state", "open", open, "from", d.scroller.ScrollX(), "to", target)
	}
	d.open = open
	d.scroller.SmoothScrollTo(target)
}

// HandleTouch feeds a touch event to the drawer and reports whether
// the panels may still receive the sequence.
func (d *Drawer) HandleTouch(t Touch) Disposition {
	if t.Kind == TouchDown {
		d.tracking = true
		d.intercepted = false
		d.dragging = false
		d.downX = t.X
		if d.open && t.X > float32(d.geom.MenuWidth) {
			d.logger.Debug("content touched while open", "x", t.X)
			d.intercepted = true
			d.Close()
		}
	}
	if d.intercepted {
		return Claim
	}
	if !d.tracking {
		return Pass
	}
	if v, ok := d.recognizer.Fling(t); ok {
		switch {
		case d.open && v < 0:
			d.endSequence()
			d.Close()
			return Claim
		case !d.open && v > 0:
			d.endSequence()
			d.Open()
			return Claim
		}
	}
	switch t.Kind {
	case TouchMove:
		return d.drag(t)
	case TouchUp:
		claimed := d.dragging
		d.endSequence()
		d.settle()
		if claimed {
			return Claim
		}
	case TouchCancel:
		dragged := d.dragging
		d.endSequence()
		if dragged {
			d.settle()
		}
	}
	return Pass
}

func (d *Drawer) drag(t Touch) Disposition {
	if !d.dragging {
		if dx := t.X - d.downX; dx <= d.slop && -dx <= d.slop {
			return Pass
		}
		d.dragging = true
		d.anchorX = t.X
		d.anchorOffset = d.scroller.ScrollX()
	}
	dist := int(math.Round(float64(t.X - d.anchorX)))
	d.scroller.ScrollTo(d.geom.Clamp(d.anchorOffset - dist))
	return Claim
}

// settle resolves a released drag to the nearest end. Ties open.
func (d *Drawer) settle() {
	if d.scroller.ScrollX() > d.geom.MenuWidth/2 {
		d.Close()
	} else {
		d.Open()
	}
}

func (d *Drawer) endSequence() {
	d.tracking = false
	d.dragging = false
}
