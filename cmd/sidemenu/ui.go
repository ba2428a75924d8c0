// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image/color"
	"log/slog"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/image/colornames"

	"github.com/slidingmenu/slidingmenu/config"
	"github.com/slidingmenu/slidingmenu/drawer"
	"github.com/slidingmenu/slidingmenu/sidemenu"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var (
	menuBackground    = nrgba(colornames.Midnightblue)
	contentBackground = nrgba(colornames.Whitesmoke)
	menuText          = nrgba(colornames.White)
)

type menuItem struct {
	title string
	btn   widget.Clickable
}

type message struct {
	from, body string
}

// ui is the demo window: a menu of chat folders and a list of
// messages.
type ui struct {
	cfg    config.Config
	logger *slog.Logger
	open   bool

	th       *material.Theme
	menu     *sidemenu.SlidingMenu
	items    []*menuItem
	menuList layout.List
	messages layout.List
	toggle   widget.Clickable
	selected int
	chats    [][]message
}

func newUI(cfg config.Config, logger *slog.Logger, open bool) *ui {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	u := &ui{
		cfg:    cfg,
		logger: logger,
		open:   open,
		th:     th,
	}
	u.menuList.Axis = layout.Vertical
	u.messages.Axis = layout.Vertical
	for _, name := range []string{"Inbox", "Friends", "Groups", "Starred", "Archive", "Settings"} {
		u.items = append(u.items, &menuItem{title: name})
		var chat []message
		for i := 1; i <= 30; i++ {
			chat = append(chat, message{
				from: fmt.Sprintf("%s contact %d", name, i%5+1),
				body: fmt.Sprintf("Message %d in %s", i, name),
			})
		}
		u.chats = append(u.chats, chat)
	}
	return u
}

func (u *ui) loop(w *app.Window) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			if u.menu == nil {
				// The screen width is taken once, from the first frame.
				if err := u.attach(gtx); err != nil {
					return err
				}
			}
			u.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (u *ui) attach(gtx C) error {
	panels, err := sidemenu.PanelsOf(u.layoutMenu, u.layoutContent)
	if err != nil {
		return err
	}
	m, err := sidemenu.New(u.cfg, gtx.Metric, gtx.Constraints.Max.X, panels, drawer.WithLogger(u.logger))
	if err != nil {
		return err
	}
	u.logger.Info("side menu attached", "screen_width", gtx.Constraints.Max.X, "menu_width", m.MenuWidth())
	u.menu = m
	if u.open {
		m.Open()
	}
	return nil
}

func (u *ui) layout(gtx C) D {
	for i, it := range u.items {
		if it.btn.Clicked(gtx) {
			u.logger.Debug("folder selected", "folder", it.title)
			u.selected = i
			u.menu.Close()
		}
	}
	if u.toggle.Clicked(gtx) {
		u.menu.Toggle()
	}
	return u.menu.Layout(gtx)
}

func (u *ui) layoutMenu(gtx C) D {
	paint.Fill(gtx.Ops, menuBackground)
	return layout.UniformInset(unit.Dp(24)).Layout(gtx, func(gtx C) D {
		return u.menuList.Layout(gtx, len(u.items), func(gtx C, i int) D {
			it := u.items[i]
			return material.Clickable(gtx, &it.btn, func(gtx C) D {
				return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
					l := material.H6(u.th, it.title)
					l.Color = menuText
					return l.Layout(gtx)
				})
			})
		})
	})
}

func (u *ui) layoutContent(gtx C) D {
	paint.Fill(gtx.Ops, contentBackground)
	chat := u.chats[u.selected]
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(material.Button(u.th, &u.toggle, "☰").Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
					layout.Rigid(material.H6(u.th, u.items[u.selected].title).Layout),
				)
			})
		}),
		layout.Flexed(1, func(gtx C) D {
			return u.messages.Layout(gtx, len(chat), func(gtx C, i int) D {
				msg := chat[i]
				return layout.UniformInset(unit.Dp(12)).Layout(gtx, func(gtx C) D {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(material.Body2(u.th, msg.from).Layout),
						layout.Rigid(material.Body1(u.th, msg.body).Layout),
					)
				})
			})
		}),
	)
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
