// Package progress drives a page-loading indicator: a thin animated bar or a
// full-page overlay drawn onto a host Surface.
package progress

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Timing defaults
const (
	DefaultTickInterval = 200 * time.Millisecond
	DefaultRevealDelay  = time.Millisecond
)

// ControllerDeps contains the dependencies for the Controller.
type ControllerDeps struct {
	// Surface is the host document the indicator is drawn on. A nil
	// Surface has no body, so Start and Complete do nothing.
	Surface Surface
	// Clock schedules ticks and the overlay reveal. Defaults to SystemClock.
	Clock Clock
	// Logger receives debug and warning events. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Controller owns the indicator's configuration, its animation state and the
// single timer animating it. All methods are safe for concurrent use.
type Controller struct {
	surface Surface
	clock   Clock
	logger  zerolog.Logger

	tickInterval time.Duration
	revealDelay  time.Duration

	mu    sync.Mutex
	opts  Options
	from  float64
	to    float64
	timer Timer
	// generation changes every time the timer is cancelled; callbacks
	// scheduled under an older generation are ignored.
	generation uint64
	runID      string
}

// NewController creates a controller with default options.
func NewController(deps ControllerDeps) *Controller {
	surface := deps.Surface
	if surface == nil {
		surface = nopSurface{}
	}
	clock := deps.Clock
	if clock == nil {
		clock = SystemClock()
	}
	logger := zerolog.Nop()
	if deps.Logger != nil {
		logger = *deps.Logger
	}

	return &Controller{
		surface:      surface,
		clock:        clock,
		logger:       logger,
		tickInterval: DefaultTickInterval,
		revealDelay:  DefaultRevealDelay,
		opts:         DefaultOptions(),
		from:         0.1,
		to:           1,
	}
}

// SetTickInterval sets the period of the bar's increment timer. It applies
// from the next Start.
func (c *Controller) SetTickInterval(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d > 0 {
		c.tickInterval = d
	}
}

// SetRevealDelay sets the delay before a fullpage overlay becomes opaque.
func (c *Controller) SetRevealDelay(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d >= 0 {
		c.revealDelay = d
	}
}

// Options returns the current configuration.
func (c *Controller) Options() Options {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.opts
}

// Fraction returns how far the bar has progressed, before scaling.
func (c *Controller) Fraction() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.from
}

// Active reports whether a timer is currently held.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timer != nil
}

// Configure replaces the whole configuration. Unset fields take their
// defaults. A run in flight keeps its look until the next Start.
func (c *Controller) Configure(opts Options) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if opts.Type != "" && !opts.Type.IsValid() {
		c.logger.Warn().Str("type", string(opts.Type)).Msg("unknown display type, using bar")
	}
	c.opts = opts.withDefaults()
}

// Start begins a new run, replacing any element left by a previous one.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unsubscribe()
	c.runID = uuid.NewString()

	switch c.opts.Type {
	case DisplayFullpage:
		c.startFullpage()
	case DisplayBar:
		c.startBar()
	}
}

// Complete ends the run. A bar is stretched to full width and faded out but
// left in place; an overlay is removed.
func (c *Controller) Complete() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.unsubscribe()

	var touched bool
	switch c.opts.Type {
	case DisplayBar:
		if c.surface.Exists(BarID) {
			c.surface.SetStyle(BarID, "width", "100%")
			c.surface.SetStyle(BarID, "opacity", "0")
			touched = true
		}
	case DisplayFullpage:
		touched = c.surface.Remove(FullpageID)
	}
	if !touched {
		return
	}
	c.logger.Debug().Str("run", c.runID).Str("type", string(c.opts.Type)).Msg("progress completed")
}

func (c *Controller) startBar() {
	if !c.surface.HasBody() {
		return
	}

	c.surface.Remove(BarID)
	if err := c.surface.InsertFirst(barElement()); err != nil {
		c.logger.Warn().Err(err).Str("run", c.runID).Msg("insert progress bar")
		return
	}

	c.from = 0
	c.surface.SetStyle(BarID, "width", percent(c.from*100))
	c.surface.SetStyle(BarID, "opacity", "1")
	c.surface.SetStyle(BarID, "height", formatPx(c.opts.Height))
	c.surface.SetStyle(BarID, "background", c.opts.Background)

	gen := c.generation
	c.timer = c.clock.TickFunc(c.tickInterval, func() { c.tick(gen) })
	c.logger.Debug().Str("run", c.runID).Str("type", string(DisplayBar)).Msg("progress started")
}

func (c *Controller) startFullpage() {
	if !c.surface.HasBody() {
		return
	}

	svg := c.opts.SVG
	if svg == "" {
		svg = DefaultSVG
	}

	c.surface.Remove(FullpageID)
	if err := c.surface.InsertFirst(fullpageElement(svg)); err != nil {
		c.logger.Warn().Err(err).Str("run", c.runID).Msg("insert progress overlay")
		return
	}
	if svg == DefaultSVG {
		if err := c.surface.PrependInto(FullpageID, "svg", shimmerDefs); err != nil {
			c.logger.Warn().Err(err).Str("run", c.runID).Msg("inject shimmer gradient")
		}
	}

	c.surface.SetStyle(FullpageID, "background", c.opts.Background)
	c.surface.SetStyle(FullpageID, "opacity", "0")

	gen := c.generation
	c.timer = c.clock.AfterFunc(c.revealDelay, func() { c.reveal(gen) })
	c.logger.Debug().Str("run", c.runID).Str("type", string(DisplayFullpage)).Msg("progress started")
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return
	}
	c.increment()
}

// increment advances the bar by one step of the ease-out table.
// Caller holds c.mu.
func (c *Controller) increment() {
	step, ok := Step(c.to - c.from)
	if !ok {
		c.unsubscribe()
		return
	}
	if !c.surface.Exists(BarID) {
		return
	}
	c.from += step
	c.surface.SetStyle(BarID, "width", barWidth(c.from))
}

func (c *Controller) reveal(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return
	}
	c.timer = nil
	c.surface.SetStyle(FullpageID, "opacity", "1")
}

// unsubscribe stops the held timer and invalidates its pending callbacks.
// Caller holds c.mu.
func (c *Controller) unsubscribe() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.generation++
}
