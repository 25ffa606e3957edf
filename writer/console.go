package writer

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/philipp01105/bitlog/core"
	"github.com/philipp01105/bitlog/modifier"
)

// ColorMode selects when Console colours its output
type ColorMode int

const (
	// ColorAuto colours only when writing to a terminal
	ColorAuto ColorMode = iota
	// ColorAlways always colours
	ColorAlways
	// ColorNever never colours
	ColorNever
)

// ConsoleConfig holds console writer configuration
type ConsoleConfig struct {
	// Writer is the destination (default: os.Stdout)
	Writer io.Writer
	// Modifiers is the writer-owned modifier chain
	Modifiers modifier.Chain
	// Color selects level colouring (default: ColorAuto)
	Color ColorMode
	// Levels maps bits to severities for colouring (default: core.DefaultLevels())
	Levels core.Levels
	// HideAttributes drops the key=value suffix of structured messages
	HideAttributes bool
}

// Console writes one line per record: the modified text, then the
// attributes of structured messages as sorted key=value pairs.
type Console struct {
	mu        sync.Mutex // serializes writes
	w         io.Writer
	mods      modifier.Chain
	levels    core.Levels
	colors    map[Severity]*color.Color
	showAttrs bool
	buf       bytes.Buffer
}

// NewConsole creates a console writer
func NewConsole(cfg ConsoleConfig) *Console {
	cfg = applyConsoleDefaults(cfg)
	c := &Console{
		w:         cfg.Writer,
		mods:      cfg.Modifiers,
		levels:    cfg.Levels,
		showAttrs: !cfg.HideAttributes,
	}
	if useColor(cfg.Color, cfg.Writer) {
		c.colors = map[Severity]*color.Color{
			SeverityDebug: color.New(color.FgHiBlack),
			SeverityInfo:  color.New(color.FgCyan),
			SeverityEvent: color.New(color.FgGreen),
			SeverityWarn:  color.New(color.FgYellow),
			SeverityError: color.New(color.FgRed, color.Bold),
		}
		for _, col := range c.colors {
			col.EnableColor()
		}
	}
	return c
}

func applyConsoleDefaults(cfg ConsoleConfig) ConsoleConfig {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	cfg.Levels = levelsOrDefault(cfg.Levels)
	return cfg
}

func useColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Modifiers implements ModifierWriter.
func (c *Console) Modifiers() modifier.Chain {
	return c.mods
}

// WriteMessage implements Writer.
func (c *Console) WriteMessage(rec *core.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.buf.Reset()
	if col := c.colors[Classify(c.levels, rec.Level)]; col != nil {
		c.buf.WriteString(col.Sprint(rec.Text))
	} else {
		c.buf.WriteString(rec.Text)
	}
	if c.showAttrs {
		writeAttributes(&c.buf, rec.Attributes())
	}
	c.buf.WriteByte('\n')

	_, err := c.w.Write(c.buf.Bytes())
	return err
}

// writeAttributes appends " key=value" for every renderable attribute.
func writeAttributes(buf *bytes.Buffer, attrs map[string]any) {
	for _, k := range core.SortedKeys(attrs) {
		v, ok := core.RenderAttribute(attrs[k])
		if !ok {
			continue
		}
		buf.WriteByte(' ')
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(v)
	}
}
