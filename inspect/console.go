package inspect

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/vector"
	"golang.org/x/term"
)

// Config holds the properties of an output device.
type Config struct {
	LineWidth int            // maximum width of a slot bar, in fixed-width positions
	Color     bool           // use ANSI colors
	Context   *uax11.Context // East Asian width context; nil means uax11.LatinContext
}

// Palette holds the colors used to distinguish live from reserved slots.
type Palette struct {
	Header, Live, Reserved *color.Color
	Alert                  *color.Color // error messages
}

// DefaultPalette creates the palette used if clients do not provide one.
func DefaultPalette() *Palette {
	return &Palette{
		Header:   color.New(color.Bold),
		Live:     color.New(color.FgBlue),
		Reserved: color.New(color.FgHiBlack),
		Alert:    color.New(color.FgRed, color.Bold),
	}
}

// Console renders vector layouts for output devices with a fixed-width font.
type Console struct {
	config  *Config
	palette *Palette
}

// NewConsole creates a console for an output device described by config. If
// config is nil, ConfigFromTerminal is consulted. If palette is nil,
// DefaultPalette is used. The palette's colors are switched on or off
// according to config.Color.
//
// It is safe to have config.Context set to nil. In this case,
// uax11.LatinContext is used.
func NewConsole(config *Config, palette *Palette) *Console {
	if config == nil {
		config = ConfigFromTerminal()
	} else if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	if palette == nil {
		palette = DefaultPalette()
	}
	for _, c := range []*color.Color{palette.Header, palette.Live, palette.Reserved, palette.Alert} {
		if config.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return &Console{config: config, palette: palette}
}

// Alert formats a message in the palette's alert color.
func (c *Console) Alert(format string, args ...interface{}) string {
	return c.palette.Alert.Sprintf(format, args...)
}

// Layout is a snapshot of a vector's storage.
type Layout struct {
	Len        int      `json:"len"`
	Cap        int      `json:"cap"`
	Generation uint64   `json:"generation"`
	Cells      []string `json:"cells"` // live elements, formatted
}

// Snapshot formats the live elements of v with fmt.Sprint and records the
// shape of v's storage.
func Snapshot[T any](v *vector.Vector[T]) Layout {
	l := Layout{
		Len:        v.Len(),
		Cap:        v.Cap(),
		Generation: v.Generation(),
		Cells:      make([]string, 0, v.Len()),
	}
	for _, x := range v.All() {
		l.Cells = append(l.Cells, fmt.Sprint(x))
	}
	return l
}

const (
	reservedMark = "·"
	elisionMark  = "…"
)

type slot struct {
	text string
	live bool
}

// Render writes a summary line and the slot bar of l to w. Bars wider than the
// configured line width are shortened in the middle.
func (c *Console) Render(l Layout, w io.Writer) error {
	header := c.palette.Header.Sprintf("len=%d cap=%d gen=%d", l.Len, l.Cap, l.Generation)
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, c.bar(l))
	return err
}

func (c *Console) bar(l Layout) string {
	slots := make([]slot, l.Cap)
	for i := range slots {
		if i < len(l.Cells) {
			slots[i] = slot{text: l.Cells[i], live: true}
		} else {
			slots[i] = slot{text: reservedMark}
		}
	}
	slots = fit(slots, c.config.LineWidth, c.config.Context)
	var b strings.Builder
	b.WriteString("[")
	for i, s := range slots {
		if i > 0 {
			b.WriteString("|")
		}
		b.WriteString(" ")
		if s.live {
			b.WriteString(c.palette.Live.Sprint(s.text))
		} else {
			b.WriteString(c.palette.Reserved.Sprint(s.text))
		}
		b.WriteString(" ")
	}
	b.WriteString("]")
	return b.String()
}

var graphemeSetup sync.Once

// cellWidth is the number of fixed-width positions s occupies on screen.
func cellWidth(s string, ctx *uax11.Context) int {
	graphemeSetup.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}

func barWidth(slots []slot, ctx *uax11.Context) int {
	width := 2 + len(slots) - 1
	if len(slots) == 0 {
		width = 2
	}
	for _, s := range slots {
		width += cellWidth(s.text, ctx) + 2
	}
	return width
}

// fit drops slots from the middle of a bar until it fits into width,
// replacing them with an elision mark. The first and last slot are kept.
func fit(slots []slot, width int, ctx *uax11.Context) []slot {
	if width <= 0 || len(slots) <= 2 || barWidth(slots, ctx) <= width {
		return slots
	}
	last := slots[len(slots)-1]
	for head := len(slots) - 2; head >= 1; head-- {
		short := append(append(slots[:head:head], slot{text: elisionMark}), last)
		if barWidth(short, ctx) <= width || head == 1 {
			tracer().P("inspect", "console").Debugf("bar of %d slots shortened to %d", len(slots), len(short))
			return short
		}
	}
	return slots
}

// ConfigFromTerminal is a simple helper for creating a Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and enables colors. The width context is derived from the user's environment.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 65, Context: uax11.ContextFromEnvironment()}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		if w, _, err := term.GetSize(fd); err == nil {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	}
	tracer().P("inspect", "console").Infof("setting line width to %d", config.LineWidth)
	return config
}
