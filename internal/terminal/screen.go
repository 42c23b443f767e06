// Package terminal draws the progress indicator in a terminal. A Screen
// implements progress.Surface by keeping the inserted elements and their
// inline styles, and renders them as text frames with lipgloss.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/yarlson/loadbar/internal/progress"
)

// ErrNotFound is returned when a mutation targets an element that is not on
// the screen.
var ErrNotFound = errors.New("element not found")

const fallbackWidth = 80

type element struct {
	id     string
	styles map[string]string
}

// Screen is a terminal-backed progress.Surface.
type Screen struct {
	mu       sync.Mutex
	elements []*element
	width    int
	label    string
	ascii    bool
	renderer *lipgloss.Renderer
}

var _ progress.Surface = (*Screen)(nil)

// Options configures a Screen.
type Options struct {
	// Output is the writer frames are drawn to. It decides the color
	// profile and, for terminals, the detected width.
	// Default: os.Stderr
	Output io.Writer
	// Width fixes the frame width in cells. Zero detects the terminal width.
	Width int
	// Label is the text shown inside the fullpage box.
	Label string
	// ASCII draws the bar with plain characters, for outputs that are not
	// terminals.
	ASCII bool
}

// NewScreen creates an empty screen.
func NewScreen(opts Options) *Screen {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	width := opts.Width
	if width <= 0 {
		width = detectWidth(opts.Output)
	}
	label := opts.Label
	if label == "" {
		label = "Loading…"
	}
	return &Screen{
		width:    width,
		label:    label,
		ascii:    opts.ASCII,
		renderer: lipgloss.NewRenderer(opts.Output),
	}
}

func detectWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return fallbackWidth
}

// Width returns the frame width in cells.
func (s *Screen) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width
}

// HasBody always reports true; a terminal is always there to draw on.
func (s *Screen) HasBody() bool {
	return true
}

// Exists reports whether the element is on the screen.
func (s *Screen) Exists(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.find(id) != nil
}

// InsertFirst adds the element on top of the others. Its markup is not
// drawn; the element's id decides how it renders.
func (s *Screen) InsertFirst(el progress.Element) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el.ID == "" {
		return fmt.Errorf("insert element: empty id")
	}
	e := &element{id: el.ID, styles: make(map[string]string)}
	s.elements = append([]*element{e}, s.elements...)
	return nil
}

// PrependInto accepts decorations for existing elements and drops them;
// SVG content has no terminal rendering.
func (s *Screen) PrependInto(id, tag, markup string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.find(id) == nil {
		return fmt.Errorf("%w: #%s", ErrNotFound, id)
	}
	return nil
}

// Remove takes the element off the screen.
func (s *Screen) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.elements {
		if e.id == id {
			s.elements = append(s.elements[:i], s.elements[i+1:]...)
			return true
		}
	}
	return false
}

// SetStyle records a style property of the element.
func (s *Screen) SetStyle(id, property, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.find(id)
	if e == nil {
		return false
	}
	e.styles[strings.ToLower(property)] = value
	return true
}

// Style returns a recorded style property, or "" if absent.
func (s *Screen) Style(id, property string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := s.find(id)
	if e == nil {
		return ""
	}
	return e.styles[strings.ToLower(property)]
}

// Frame renders the screen's elements, top first, one per block.
func (s *Screen) Frame() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var blocks []string
	for _, e := range s.elements {
		var block string
		switch e.id {
		case progress.BarID:
			block = s.renderBar(e)
		case progress.FullpageID:
			block = s.renderOverlay(e)
		}
		if block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "\n")
}

func (s *Screen) renderBar(e *element) string {
	pct := parsePercent(e.styles["width"])
	if s.ascii {
		return asciiBar(pct, s.width-2)
	}

	filled := int(pct / 100 * float64(s.width))
	if filled > s.width {
		filled = s.width
	}
	if filled < 0 {
		filled = 0
	}

	style := s.renderer.NewStyle().Foreground(lipgloss.Color(e.styles["background"]))
	if e.styles["opacity"] == "0" {
		style = style.Faint(true)
	}
	return style.Render(strings.Repeat("█", filled)) + strings.Repeat(" ", s.width-filled)
}

func (s *Screen) renderOverlay(e *element) string {
	if e.styles["opacity"] != "1" {
		return ""
	}
	box := s.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(e.styles["background"])).
		Foreground(lipgloss.Color("#a9a9a9")).
		Padding(1, 2).
		Render(s.label)
	return lipgloss.PlaceHorizontal(s.width, lipgloss.Center, box)
}

// find returns the element with the id. Caller holds s.mu.
func (s *Screen) find(id string) *element {
	for _, e := range s.elements {
		if e.id == id {
			return e
		}
	}
	return nil
}

func parsePercent(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(v), "%"), 64)
	if err != nil {
		return 0
	}
	return f
}
