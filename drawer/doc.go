// SPDX-License-Identifier: Unlicense OR MIT

/*
Package drawer implements the state machine behind a sliding side menu.

A drawer is a horizontal scroll container holding a menu panel followed
by a content panel as wide as the screen. Scrolling to offset 0 reveals
the menu; scrolling to the menu width hides it. Every touch sequence
settles at one of the two ends, either through a fling, a release past
the halfway point, or a tap on the visible strip of content while the
menu is open.

The drawer does not draw anything. Hosts feed it touches and scroll
offsets and read back a Transform describing how to paint the panels.
*/
package drawer
