// SPDX-License-Identifier: Unlicense OR MIT

/*
Package sidemenu implements a sliding side menu widget.

The widget holds a menu panel and a content panel side by side in a
horizontal scroll area. Dragging the content to the right reveals the
menu while the content shrinks towards its left edge and darkens.
Releasing the pointer, flinging, or tapping the visible strip of content
settles the menu fully open or fully closed.
*/
package sidemenu

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/slidingmenu/slidingmenu/config"
	"github.com/slidingmenu/slidingmenu/drawer"
	"github.com/slidingmenu/slidingmenu/internal/fling"
	"github.com/slidingmenu/slidingmenu/internal/scroll"
)

// Panels are the two children of a SlidingMenu.
type Panels struct {
	// Menu is laid out with the menu width.
	Menu layout.Widget
	// Content is laid out with the full screen width.
	Content layout.Widget
}

// PanelsOf assigns children to panels by position: the menu first, the
// content second. Any other number of children is a configuration
// error.
func PanelsOf(children ...layout.Widget) (Panels, error) {
	if len(children) != 2 {
		return Panels{}, &drawer.ConfigError{
			Err:    drawer.ErrChildCount,
			Detail: fmt.Sprintf("got %d", len(children)),
		}
	}
	p := Panels{Menu: children[0], Content: children[1]}
	return p, p.validate()
}

func (p Panels) validate() error {
	switch {
	case p.Menu == nil:
		return &drawer.ConfigError{Err: drawer.ErrChildCount, Detail: "missing menu panel"}
	case p.Content == nil:
		return &drawer.ConfigError{Err: drawer.ErrChildCount, Detail: "missing content panel"}
	}
	return nil
}

// SlidingMenu is a drawer widget. Its geometry is fixed at construction
// from the screen width of the first frame.
type SlidingMenu struct {
	panels Panels
	shadow color.NRGBA
	geom   drawer.Geometry

	drawer *drawer.Drawer
	scroll scroll.Animator
	flings *fling.Detector

	drag    gesture.Drag
	grabbed bool
}

// New returns a closed menu for a screen screenWidth pixels wide.
func New(cfg config.Config, m unit.Metric, screenWidth int, panels Panels, opts ...drawer.Option) (*SlidingMenu, error) {
	if err := panels.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sidemenu: %w", err)
	}
	g, err := drawer.NewGeometry(screenWidth, m.Dp(cfg.MenuRightMargin))
	if err != nil {
		return nil, err
	}
	s := &SlidingMenu{
		panels: panels,
		shadow: cfg.Shadow(),
		geom:   g,
		flings: fling.NewDetector(m, cfg.MinFlingVelocity, cfg.MaxFlingVelocity),
	}
	s.scroll = scroll.Animator{Max: g.MenuWidth, Duration: cfg.SettleDuration}
	opts = append([]drawer.Option{drawer.WithTouchSlop(s.flings.Slop)}, opts...)
	s.drawer = drawer.New(g, &s.scroll, s.flings, opts...)
	s.scroll.OnChange = s.drawer.OnScrollChanged
	s.drawer.Attach()
	return s, nil
}

// Open animates the menu into view.
func (s *SlidingMenu) Open() {
	s.drawer.Open()
}

// Close animates the menu out of view.
func (s *SlidingMenu) Close() {
	s.drawer.Close()
}

// Toggle switches between open and closed.
func (s *SlidingMenu) Toggle() {
	s.drawer.Toggle()
}

// Opened reports whether the menu is open or opening.
func (s *SlidingMenu) Opened() bool {
	return s.drawer.IsOpen()
}

// MenuWidth returns the width of the menu panel in pixels.
func (s *SlidingMenu) MenuWidth() int {
	return s.geom.MenuWidth
}

// Offset returns the scroll offset, 0 when open and MenuWidth when
// closed.
func (s *SlidingMenu) Offset() int {
	return s.scroll.ScrollX()
}

// Animating reports whether the menu is settling.
func (s *SlidingMenu) Animating() bool {
	return s.scroll.Active()
}

// Transform returns the transform applied in the last layout.
func (s *SlidingMenu) Transform() drawer.Transform {
	return s.drawer.Transform()
}

// Layout handles pointer events and lays out the panels.
func (s *SlidingMenu) Layout(gtx layout.Context) layout.Dimensions {
	s.update(gtx)
	if s.scroll.Tick(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}

	size := gtx.Constraints.Max
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	s.drag.Add(gtx.Ops)

	offset := s.scroll.ScrollX()
	tr := s.drawer.Transform()
	s.layoutMenu(gtx, size.Y, offset, tr)
	s.layoutContent(gtx, size.Y, offset, tr)

	// While open, the visible strip of content belongs to the menu: a
	// press there closes it and must not reach the content.
	if s.drawer.IsOpen() {
		strip := clip.Rect{Min: image.Pt(s.geom.MenuWidth, 0), Max: size}.Push(gtx.Ops)
		s.drag.Add(gtx.Ops)
		strip.Pop()
	}
	return layout.Dimensions{Size: size}
}

func (s *SlidingMenu) update(gtx layout.Context) {
	for {
		e, ok := s.drag.Update(gtx.Metric, gtx.Source, gesture.Horizontal)
		if !ok {
			break
		}
		t := drawer.Touch{X: e.Position.X, Y: e.Position.Y, Time: e.Time}
		switch e.Kind {
		case pointer.Press:
			s.grabbed = false
			t.Kind = drawer.TouchDown
		case pointer.Drag:
			t.Kind = drawer.TouchMove
		case pointer.Release:
			t.Kind = drawer.TouchUp
		case pointer.Cancel:
			t.Kind = drawer.TouchCancel
		default:
			continue
		}
		if s.drawer.HandleTouch(t) == drawer.Claim && s.drag.Pressed() && !s.grabbed {
			gtx.Execute(pointer.GrabCmd{Tag: &s.drag, ID: e.PointerID})
			s.grabbed = true
		}
	}
}

func (s *SlidingMenu) layoutMenu(gtx layout.Context, height, offset int, tr drawer.Transform) {
	defer op.Offset(image.Pt(-offset, 0)).Push(gtx.Ops).Pop()
	defer op.Affine(f32.Affine2D{}.Offset(f32.Pt(tr.MenuTranslateX, 0))).Push(gtx.Ops).Pop()
	defer paint.PushOpacity(gtx.Ops, tr.MenuAlpha).Pop()
	gtx.Constraints = layout.Exact(image.Pt(s.geom.MenuWidth, height))
	s.panels.Menu(gtx)
}

// layoutContent lays out the content scaled inside a wrapper the size of
// the screen. The shadow covers the whole wrapper and is not scaled.
func (s *SlidingMenu) layoutContent(gtx layout.Context, height, offset int, tr drawer.Transform) {
	defer op.Offset(image.Pt(s.geom.MenuWidth-offset, 0)).Push(gtx.Ops).Pop()
	wrapper := s.wrapperBounds(height)
	defer clip.Rect(wrapper).Push(gtx.Ops).Pop()

	s.layoutScaled(gtx, wrapper.Size(), tr.ContentScale)

	if tr.ShadowAlpha > 0 {
		defer paint.PushOpacity(gtx.Ops, tr.ShadowAlpha).Pop()
		paint.Fill(gtx.Ops, s.shadow)
	}
}

func (s *SlidingMenu) layoutScaled(gtx layout.Context, size image.Point, scale float32) {
	defer op.Affine(contentAffine(size.Y, scale)).Push(gtx.Ops).Pop()
	gtx.Constraints = layout.Exact(size)
	s.panels.Content(gtx)
}

// wrapperBounds is the area of the content wrapper, which the shadow
// fills, in the wrapper's own coordinates.
func (s *SlidingMenu) wrapperBounds(height int) image.Rectangle {
	return image.Rectangle{Max: image.Pt(s.geom.ScreenWidth, height)}
}

// contentAffine scales the content around its left edge at half height.
func contentAffine(height int, scale float32) f32.Affine2D {
	pivot := f32.Pt(0, float32(height)/2)
	return f32.Affine2D{}.Scale(pivot, f32.Pt(scale, scale))
}
