package modifier

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/philipp01105/bitlog/core"
)

// Escape sequences understood by XcodeColors-style consoles
const (
	Escape = "\u001b["
	Reset  = Escape + ";"
)

// ErrNoColor is returned by NewColor when both colors are nil.
var ErrNoColor = errors.New("bitlog: color modifier needs a foreground or background color")

// Color wraps messages in foreground and background escape sequences
// followed by a reset. The zero value emits only the reset.
type Color struct {
	foreground string
	background string
}

// NewColor creates a Color modifier. At least one color must be given.
// Channels are clamped to [0, 1] and rounded to 0..255.
func NewColor(fg, bg *colorful.Color) (*Color, error) {
	if fg == nil && bg == nil {
		return nil, ErrNoColor
	}
	m := &Color{}
	if fg != nil {
		m.foreground = Escape + "fg" + channels(*fg) + ";"
	}
	if bg != nil {
		m.background = Escape + "bg" + channels(*bg) + ";"
	}
	return m, nil
}

// MustColor is like NewColor but panics on error.
func MustColor(fg, bg *colorful.Color) *Color {
	m, err := NewColor(fg, bg)
	if err != nil {
		panic(err)
	}
	return m
}

// RGB returns the color with the given 8-bit channels.
func RGB(r, g, b uint8) *colorful.Color {
	return &colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Modify implements Modifier.
func (m *Color) Modify(message string, _ core.Level, _ *core.Context) string {
	buf := getBuffer()
	defer putBuffer(buf)
	buf.WriteString(m.foreground)
	buf.WriteString(m.background)
	buf.WriteString(message)
	buf.WriteString(Reset)
	return buf.String()
}

func channels(c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return strconv.Itoa(int(r)) + "," + strconv.Itoa(int(g)) + "," + strconv.Itoa(int(b))
}
