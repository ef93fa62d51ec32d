package textformat

import (
	"fmt"
	"log/slog"
	"unicode"

	"github.com/dshills/textlayout/internal/input/key"
)

// FormattedText holds a piece of label text together with the size and
// alignment it is laid out for. The laid out lines are cached and only
// recomputed on the first read after a setter changed something.
type FormattedText struct {
	text      []rune
	alignment Alignment
	width     int
	height    int
	specifier rune
	tagMask   rune

	dirty   bool
	lines   []Line
	formats int

	hotKeyPos int
	hotKey    key.Event
	cursor    int

	onHotKeyChanged func(old key.Event)
	logger          *slog.Logger
}

// Option configures a FormattedText.
type Option func(*FormattedText)

// WithAlignment sets the initial alignment.
func WithAlignment(a Alignment) Option {
	return func(ft *FormattedText) {
		ft.alignment = a
	}
}

// WithSize sets the initial size. Negative values are clamped to zero.
func WithSize(width, height int) Option {
	return func(ft *FormattedText) {
		ft.width = max(width, 0)
		ft.height = max(height, 0)
	}
}

// WithHotKeySpecifier sets the rune that marks the following rune as the
// hotkey. NoHotKeySpecifier (the default) disables detection.
func WithHotKeySpecifier(r rune) Option {
	return func(ft *FormattedText) {
		ft.specifier = r
	}
}

// WithHotKeyTagMask replaces DefaultHotKeyTagMask.
func WithHotKeyTagMask(mask rune) Option {
	return func(ft *FormattedText) {
		ft.tagMask = mask
	}
}

// WithLogger sets the logger layout recomputations are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(ft *FormattedText) {
		if l != nil {
			ft.logger = l
		}
	}
}

// New creates an empty FormattedText.
func New(opts ...Option) *FormattedText {
	ft := &FormattedText{
		alignment: AlignLeft,
		specifier: NoHotKeySpecifier,
		tagMask:   DefaultHotKeyTagMask,
		dirty:     true,
		hotKeyPos: -1,
		hotKey:    key.Unknown,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(ft)
	}
	return ft
}

// Text returns the raw text, hotkey specifier included.
func (ft *FormattedText) Text() string {
	return string(ft.text)
}

// SetText replaces the text and locates its hotkey.
func (ft *FormattedText) SetText(text string) {
	ft.text = []rune(text)
	ft.dirty = true
	pos, hk, _ := FindHotKey(ft.text, ft.specifier, true)
	ft.setHotKey(pos, hk)
}

// Alignment returns the horizontal alignment.
func (ft *FormattedText) Alignment() Alignment {
	return ft.alignment
}

// SetAlignment changes the horizontal alignment.
func (ft *FormattedText) SetAlignment(a Alignment) {
	ft.alignment = a
	ft.dirty = true
}

// Size returns the width and height lines are laid out for.
func (ft *FormattedText) Size() (width, height int) {
	return ft.width, ft.height
}

// SetSize changes the layout size. A height above one enables word wrap.
func (ft *FormattedText) SetSize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: size must not be negative, got %dx%d", ErrInvalidArgument, width, height)
	}
	ft.width = width
	ft.height = height
	ft.dirty = true
	return nil
}

// HotKeySpecifier returns the rune that marks the hotkey.
func (ft *FormattedText) HotKeySpecifier() rune {
	return ft.specifier
}

// SetHotKeySpecifier changes the specifier and re-locates the hotkey.
func (ft *FormattedText) SetHotKeySpecifier(r rune) {
	ft.specifier = r
	ft.dirty = true
	pos, hk, _ := FindHotKey(ft.text, ft.specifier, true)
	ft.setHotKey(pos, hk)
}

// HotKeyTagMask returns the mask OR'd into the hotkey rune of cached lines.
func (ft *FormattedText) HotKeyTagMask() rune {
	return ft.tagMask
}

// SetHotKeyTagMask changes the tag mask.
func (ft *FormattedText) SetHotKeyTagMask(mask rune) {
	ft.tagMask = mask
	ft.dirty = true
}

// HotKey returns the upper-cased hotkey, or key.Unknown.
func (ft *FormattedText) HotKey() key.Event {
	return ft.hotKey
}

// HotKeyPos returns the rune index of the hotkey in the text with the
// specifier removed, or -1.
func (ft *FormattedText) HotKeyPos() int {
	return ft.hotKeyPos
}

// OnHotKeyChanged registers fn to be called with the previous hotkey whenever
// the hotkey changes.
func (ft *FormattedText) OnHotKeyChanged(fn func(old key.Event)) {
	ft.onHotKeyChanged = fn
}

// MatchesHotKey reports whether ev presses the hotkey. Case is ignored and
// Alt or Shift may be held; Ctrl and Meta chords never match.
func (ft *FormattedText) MatchesHotKey(ev key.Event) bool {
	if ft.hotKey.IsUnknown() || !ev.IsRune() {
		return false
	}
	if ev.Modifiers.HasCtrl() || ev.Modifiers.HasMeta() {
		return false
	}
	return unicode.ToUpper(ev.Rune) == ft.hotKey.Rune
}

// CursorPosition returns the column, relative to the bounds of the last Draw,
// where a focused cursor should sit.
func (ft *FormattedText) CursorPosition() int {
	return ft.cursor
}

// NeedsFormat reports whether the next Lines call recomputes the layout.
func (ft *FormattedText) NeedsFormat() bool {
	return ft.dirty
}

// Invalidate forces the next Lines call to recompute the layout.
func (ft *FormattedText) Invalidate() {
	ft.dirty = true
}

// FormatCount returns how many times the layout has been computed.
func (ft *FormattedText) FormatCount() int {
	return ft.formats
}

// Lines returns the laid out lines. Empty text always yields one empty line.
// Otherwise a size with a positive height must have been set. The returned
// slice is shared with the cache and must not be modified.
func (ft *FormattedText) Lines() ([]Line, error) {
	if len(ft.text) == 0 {
		ft.lines = []Line{{}}
		ft.dirty = false
		return ft.lines, nil
	}
	if !ft.dirty {
		return ft.lines, nil
	}

	shown := ft.text
	pos, hk, ok := FindHotKey(ft.text, ft.specifier, true)
	if ok {
		shown = RemoveHotKeySpecifier(ft.text, pos, ft.specifier)
		shown = ReplaceHotKeyWithTag(shown, pos, ft.tagMask)
	}
	ft.setHotKey(pos, hk)

	if ft.height == 0 {
		return nil, fmt.Errorf("%w: size must be set before reading lines, got %dx%d",
			ErrInvalidState, ft.width, ft.height)
	}

	lines, err := Format(shown, ft.width, ft.alignment, ft.height > 1, false)
	if err != nil {
		return nil, err
	}
	ft.lines = lines
	ft.dirty = false
	ft.formats++

	ft.logger.Debug("text layout computed",
		"width", ft.width,
		"height", ft.height,
		"align", ft.alignment.String(),
		"lines", len(lines),
		"hotkey", ft.hotKey.String(),
		"hotkey_pos", ft.hotKeyPos,
	)
	return ft.lines, nil
}

// ReplaceHotKeyWithTag tags the rune at pos with the configured mask.
func (ft *FormattedText) ReplaceHotKeyWithTag(text []rune, pos int) []rune {
	return ReplaceHotKeyWithTag(text, pos, ft.tagMask)
}

func (ft *FormattedText) setHotKey(pos int, hk key.Event) {
	old := ft.hotKey
	ft.hotKeyPos = pos
	ft.hotKey = hk
	if !old.Equals(hk) && ft.onHotKeyChanged != nil {
		ft.onHotKeyChanged(old)
	}
}
