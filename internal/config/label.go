package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/textlayout/internal/input/key"
	"github.com/dshills/textlayout/internal/renderer/core"
	"github.com/dshills/textlayout/internal/textformat"
)

// ColorConfig is one style entry of the [colors] table.
type ColorConfig struct {
	FG        string `toml:"fg"`
	BG        string `toml:"bg"`
	Bold      bool   `toml:"bold"`
	Underline bool   `toml:"underline"`
	Reverse   bool   `toml:"reverse"`
}

// ColorsConfig holds the styles used for normal text and the hotkey.
type ColorsConfig struct {
	Normal ColorConfig `toml:"normal"`
	Hot    ColorConfig `toml:"hot"`
}

// KeysConfig names the keys labeldemo binds. Names are those accepted by
// key.KeyFromName, such as "escape" or "tab".
type KeysConfig struct {
	Quit  string `toml:"quit"`
	Align string `toml:"align"`
}

// LabelConfig describes a label to lay out and draw.
type LabelConfig struct {
	Text            string       `toml:"text"`
	Align           string       `toml:"align"`
	Width           int          `toml:"width"`
	Height          int          `toml:"height"`
	HotKeySpecifier string       `toml:"hotkey_specifier"`
	Colors          ColorsConfig `toml:"colors"`
	Keys            KeysConfig   `toml:"keys"`
}

// Default returns the label used when no file is given.
func Default() LabelConfig {
	return LabelConfig{
		Text:            "_Hello, world",
		Align:           "left",
		Width:           20,
		Height:          1,
		HotKeySpecifier: "_",
		Colors: ColorsConfig{
			Hot: ColorConfig{Bold: true},
		},
		Keys: KeysConfig{Quit: "escape", Align: "tab"},
	}
}

// Load reads and validates the label file at path.
func Load(path string) (LabelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LabelConfig{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return LabelConfig{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// LoadFS reads and validates the label file name from fsys.
func LoadFS(fsys fs.FS, name string) (LabelConfig, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return LabelConfig{}, fmt.Errorf("%w: %s", ErrFileNotFound, name)
		}
		return LabelConfig{}, fmt.Errorf("reading config file %s: %w", name, err)
	}
	return Parse(name, data)
}

// Parse decodes TOML data on top of Default and validates the result.
// source names the data in error messages.
func Parse(source string, data []byte) (LabelConfig, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return LabelConfig{}, newParseError(source, err)
	}
	if err := cfg.Validate(); err != nil {
		return LabelConfig{}, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var decodeErr *toml.DecodeError
	var strictErr *toml.StrictMissingError
	switch {
	case errors.As(err, &decodeErr):
		pe.Line, pe.Column = decodeErr.Position()
	case errors.As(err, &strictErr) && len(strictErr.Errors) > 0:
		pe.Line, pe.Column = strictErr.Errors[0].Position()
		pe.Message = "unknown key " + strings.Join(strictErr.Errors[0].Key(), ".")
	}
	return pe
}

// Validate checks every field that has a restricted set of values.
func (c LabelConfig) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if _, err := c.Alignment(); err != nil {
		return err
	}
	if _, err := c.Specifier(); err != nil {
		return err
	}
	if _, _, err := c.Keys.Resolve(); err != nil {
		return err
	}
	_, _, err := c.Styles()
	return err
}

// Resolve returns the bound keys. Each must name a special key and the two
// must differ.
func (k KeysConfig) Resolve() (quit, align key.Key, err error) {
	if quit, err = specialKey("quit", k.Quit); err != nil {
		return key.KeyNone, key.KeyNone, err
	}
	if align, err = specialKey("align", k.Align); err != nil {
		return key.KeyNone, key.KeyNone, err
	}
	if quit == align {
		return key.KeyNone, key.KeyNone, fmt.Errorf("%w: quit and align are both %s", ErrInvalidKey, quit)
	}
	return quit, align, nil
}

func specialKey(field, name string) (key.Key, error) {
	k := key.KeyFromName(name)
	if !k.IsSpecial() {
		return key.KeyNone, fmt.Errorf("%w: keys.%s = %q", ErrInvalidKey, field, name)
	}
	return k, nil
}

// Alignment returns the parsed align field.
func (c LabelConfig) Alignment() (textformat.Alignment, error) {
	a, err := textformat.ParseAlignment(c.Align)
	if err != nil {
		return textformat.AlignLeft, fmt.Errorf("%w: %q", ErrInvalidAlignment, c.Align)
	}
	return a, nil
}

// Specifier returns the hotkey specifier rune. An empty value disables
// hotkeys.
func (c LabelConfig) Specifier() (rune, error) {
	if c.HotKeySpecifier == "" {
		return textformat.NoHotKeySpecifier, nil
	}
	r, size := utf8.DecodeRuneInString(c.HotKeySpecifier)
	if r == utf8.RuneError || size != len(c.HotKeySpecifier) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSpecifier, c.HotKeySpecifier)
	}
	return r, nil
}

// Styles returns the normal and hotkey styles.
func (c LabelConfig) Styles() (normal, hot core.Style, err error) {
	if normal, err = c.Colors.Normal.Style(); err != nil {
		return core.Style{}, core.Style{}, fmt.Errorf("colors.normal: %w", err)
	}
	if hot, err = c.Colors.Hot.Style(); err != nil {
		return core.Style{}, core.Style{}, fmt.Errorf("colors.hot: %w", err)
	}
	return normal, hot, nil
}

// Style converts the entry to a core.Style. Empty colors keep the terminal
// default.
func (c ColorConfig) Style() (core.Style, error) {
	s := core.DefaultStyle()
	if c.FG != "" {
		fg, err := core.ColorFromHex(c.FG)
		if err != nil {
			return core.Style{}, fmt.Errorf("%w: fg: %w", ErrInvalidColor, err)
		}
		s = s.WithForeground(fg)
	}
	if c.BG != "" {
		bg, err := core.ColorFromHex(c.BG)
		if err != nil {
			return core.Style{}, fmt.Errorf("%w: bg: %w", ErrInvalidColor, err)
		}
		s = s.WithBackground(bg)
	}
	if c.Bold {
		s = s.Bold()
	}
	if c.Underline {
		s = s.Underline()
	}
	if c.Reverse {
		s = s.Reverse()
	}
	return s, nil
}

// NewFormattedText builds a FormattedText holding the label's text, size,
// alignment and specifier. opts are applied after those.
func (c LabelConfig) NewFormattedText(opts ...textformat.Option) (*textformat.FormattedText, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	align, _ := c.Alignment()
	specifier, _ := c.Specifier()

	base := []textformat.Option{
		textformat.WithAlignment(align),
		textformat.WithSize(c.Width, c.Height),
		textformat.WithHotKeySpecifier(specifier),
	}
	ft := textformat.New(append(base, opts...)...)
	ft.SetText(c.Text)
	return ft, nil
}
