package main

import (
	"fmt"
	"log/slog"

	"github.com/dshills/textlayout/internal/config"
	"github.com/dshills/textlayout/internal/input/key"
	"github.com/dshills/textlayout/internal/renderer/backend"
	"github.com/dshills/textlayout/internal/renderer/core"
	"github.com/dshills/textlayout/internal/textformat"
)

// Label origin on screen.
const (
	labelTop  = 1
	labelLeft = 2
)

var alignments = []textformat.Alignment{
	textformat.AlignLeft,
	textformat.AlignRight,
	textformat.AlignCentered,
	textformat.AlignJustified,
}

type action uint8

const (
	actQuit action = iota
	actAlign
	actNarrower
	actWider
	actShorter
	actTaller
)

// labelView owns one label and reacts to terminal events.
type labelView struct {
	ft       *textformat.FormattedText
	normal   core.Style
	hot      core.Style
	frame    core.Style
	bindings map[key.Event]action
	quitKey  key.Key
	alignKey key.Key
	status   string
	logger   *slog.Logger
}

func newLabelView(cfg config.LabelConfig, logger *slog.Logger) (*labelView, error) {
	ft, err := cfg.NewFormattedText(textformat.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	normal, hot, err := cfg.Styles()
	if err != nil {
		return nil, err
	}
	quit, align, err := cfg.Keys.Resolve()
	if err != nil {
		return nil, err
	}

	// Configured keys win over the arrow keys.
	bindings := map[key.Event]action{
		key.NewSpecialEvent(key.KeyLeft, key.ModNone):  actNarrower,
		key.NewSpecialEvent(key.KeyRight, key.ModNone): actWider,
		key.NewSpecialEvent(key.KeyUp, key.ModNone):    actShorter,
		key.NewSpecialEvent(key.KeyDown, key.ModNone):  actTaller,
	}
	bindings[key.NewSpecialEvent(align, key.ModNone)] = actAlign
	bindings[key.NewSpecialEvent(quit, key.ModNone)] = actQuit

	v := &labelView{
		ft:       ft,
		normal:   normal,
		hot:      hot,
		frame:    core.DefaultStyle().WithForeground(core.ColorGray),
		bindings: bindings,
		quitKey:  quit,
		alignKey: align,
		logger:   logger,
	}
	ft.OnHotKeyChanged(func(old key.Event) {
		logger.Info("hotkey changed", "old", old.String(), "new", ft.HotKey().String())
	})
	v.status = v.help()
	return v, nil
}

func (v *labelView) help() string {
	hk := "no hotkey"
	if !v.ft.HotKey().IsUnknown() {
		hk = "hotkey " + v.ft.HotKey().String()
	}
	return fmt.Sprintf("%s | %s: align | arrows: resize | %s: quit", hk, v.alignKey, v.quitKey)
}

// run draws the label and handles events until the user quits.
func (v *labelView) run(b backend.Backend) error {
	for {
		if err := v.draw(b); err != nil {
			return err
		}
		if v.handle(b.PollEvent()) {
			return nil
		}
	}
}

// draw renders the label inside a frame, a status line below it, and parks
// the cursor on the hotkey.
func (v *labelView) draw(b backend.Backend) error {
	b.Clear()
	width, height := v.ft.Size()
	bounds := core.RectFromSize(labelTop, labelLeft, height, width)

	v.drawFrame(b, bounds)
	if err := v.ft.Draw(b, bounds, v.normal, v.hot); err != nil {
		return err
	}

	b.SetStyle(core.DefaultStyle())
	writeString(b, labelLeft, bounds.Bottom+1, fmt.Sprintf("%s, %dx%d", v.ft.Alignment(), width, height))
	writeString(b, labelLeft, bounds.Bottom+2, v.status)

	b.HideCursor()
	if row, ok := v.hotKeyRow(); ok && !bounds.IsEmpty() {
		pos := core.NewScreenPos(bounds.Top+row, bounds.Left+v.ft.CursorPosition())
		if bounds.Contains(pos) {
			b.ShowCursor(pos.Col, pos.Row)
		}
	}
	b.Show()
	return nil
}

// drawFrame draws a one-cell border around bounds.
func (v *labelView) drawFrame(b backend.Backend, bounds core.ScreenRect) {
	frame := core.NewScreenRect(bounds.Top-1, bounds.Left-1, bounds.Bottom+1, bounds.Right+1)
	b.SetStyle(v.frame)
	for x := frame.Left; x < frame.Right; x++ {
		b.MoveTo(x, frame.Top)
		b.WriteRune('─')
		b.MoveTo(x, frame.Bottom-1)
		b.WriteRune('─')
	}
	for y := bounds.Top; y < bounds.Bottom; y++ {
		b.MoveTo(frame.Left, y)
		b.WriteRune('│')
		b.MoveTo(frame.Right-1, y)
		b.WriteRune('│')
	}
}

// hotKeyRow returns the index of the line holding the tagged hotkey.
func (v *labelView) hotKeyRow() (int, bool) {
	lines, err := v.ft.Lines()
	if err != nil {
		return 0, false
	}
	mask := v.ft.HotKeyTagMask()
	for row, line := range lines {
		for _, r := range line {
			if textformat.IsTagged(r, mask) {
				return row, true
			}
		}
	}
	return 0, false
}

// handle applies one event and reports whether the view should close.
func (v *labelView) handle(ev backend.Event) (quit bool) {
	switch ev.Type {
	case backend.EventResize:
		v.logger.Debug("terminal resized", "width", ev.Width, "height", ev.Height)
		v.ft.Invalidate()

	case backend.EventKey:
		k := ev.Key
		act, bound := v.bindings[k]
		if !bound {
			if v.ft.MatchesHotKey(k) {
				v.status = fmt.Sprintf("hotkey %s pressed", v.ft.HotKey())
				v.logger.Info("hotkey activated", "key", k.String())
			} else {
				v.status = fmt.Sprintf("%s is not bound", k)
			}
			return false
		}
		switch act {
		case actQuit:
			return true
		case actAlign:
			v.cycleAlignment()
		case actNarrower:
			v.resize(-1, 0)
		case actWider:
			v.resize(1, 0)
		case actShorter:
			v.resize(0, -1)
		case actTaller:
			v.resize(0, 1)
		}
	}
	return false
}

func (v *labelView) cycleAlignment() {
	cur := v.ft.Alignment()
	for i, a := range alignments {
		if a == cur {
			v.ft.SetAlignment(alignments[(i+1)%len(alignments)])
			return
		}
	}
	v.ft.SetAlignment(textformat.AlignLeft)
}

func (v *labelView) resize(dw, dh int) {
	w, h := v.ft.Size()
	// Height stays at least one so the label keeps a layout.
	if err := v.ft.SetSize(max(w+dw, 0), max(h+dh, 1)); err != nil {
		v.status = err.Error()
	}
}

func writeString(s backend.Surface, col, row int, text string) {
	s.MoveTo(col, row)
	for _, r := range text {
		s.WriteRune(r)
	}
}
