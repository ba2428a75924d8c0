// SPDX-License-Identifier: Unlicense OR MIT

package drawer

import (
	"fmt"

	"github.com/slidingmenu/slidingmenu/internal/bounds"
)

const (
	// minContentScale is the content scale with the menu fully open.
	minContentScale = 0.7
	// minMenuAlpha is the menu opacity with the menu fully closed.
	minMenuAlpha = 0.3
	// menuNudge is the horizontal translation applied to the menu panel.
	// It does not follow the scroll position.
	menuNudge = 0.25 * 1
)

// Geometry describes the fixed horizontal extents of a drawer. It is
// computed once and never changes for the lifetime of a drawer.
type Geometry struct {
	// ScreenWidth is the width of the viewport and of the content panel.
	ScreenWidth int
	// MenuWidth is the width of the menu panel and the scroll range.
	MenuWidth int
}

// Transform is the set of visual properties derived from a scroll
// offset. The fields are always applied together.
type Transform struct {
	// ContentScale is the uniform scale of the content panel, pivoted
	// at its left edge and vertical center.
	ContentScale float32
	// MenuAlpha is the opacity of the menu panel.
	MenuAlpha float32
	// MenuTranslateX is the horizontal translation of the menu panel
	// in pixels.
	MenuTranslateX float32
	// ShadowAlpha is the opacity of the overlay above the content.
	ShadowAlpha float32
}

// NewGeometry derives the menu width from the screen width and the
// visible strip of content left when the menu is open.
func NewGeometry(screenWidth, rightMargin int) (Geometry, error) {
	g := Geometry{
		ScreenWidth: screenWidth,
		MenuWidth:   screenWidth - rightMargin,
	}
	if g.MenuWidth <= 0 {
		return Geometry{}, &ConfigError{
			Err:    ErrDegenerateGeometry,
			Detail: fmt.Sprintf("screen width %dpx, right margin %dpx", screenWidth, rightMargin),
		}
	}
	return g, nil
}

// Progress returns the normalized scroll position, 1 when closed and 0
// when open.
func (g Geometry) Progress(offset int) float32 {
	if g.MenuWidth <= 0 {
		return 1
	}
	return bounds.Clamp(float32(offset)/float32(g.MenuWidth), 0, 1)
}

// TransformAt maps a scroll offset to the visual transform of the
// panels.
func (g Geometry) TransformAt(offset int) Transform {
	t := g.Progress(offset)
	return Transform{
		ContentScale:   minContentScale + (1-minContentScale)*t,
		MenuAlpha:      minMenuAlpha + (1-minMenuAlpha)*(1-t),
		MenuTranslateX: menuNudge,
		ShadowAlpha:    1 - t,
	}
}

// Clamp restricts an offset to the scroll range.
func (g Geometry) Clamp(offset int) int {
	return bounds.Clamp(offset, 0, g.MenuWidth)
}
