package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Renderer repaints a Screen in place on an interval.
type Renderer struct {
	screen   *Screen
	out      io.Writer
	interval time.Duration
	plain    bool

	mu      sync.Mutex
	lines   int
	partial bool
	started bool
	stopCh  chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewRenderer creates a renderer painting screen to out every interval.
// A non-positive interval defaults to 100ms.
func NewRenderer(screen *Screen, out io.Writer, interval time.Duration) *Renderer {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Renderer{
		screen:   screen,
		out:      out,
		interval: interval,
		stopCh:   make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// SetPlain switches the renderer to output that is not a terminal: no
// repainting and no control sequences. Only the final frame is written, on
// Stop. It must be called before Start.
func (r *Renderer) SetPlain(plain bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plain = plain
}

// Start begins repainting. In plain mode it does nothing.
func (r *Renderer) Start() {
	r.mu.Lock()
	if r.plain {
		r.mu.Unlock()
		return
	}
	r.started = true
	r.mu.Unlock()

	go r.loop()
}

// Stop paints a final frame, moves past it and stops repainting.
func (r *Renderer) Stop() {
	r.once.Do(func() {
		close(r.stopCh)
		r.mu.Lock()
		started := r.started
		plain := r.plain
		r.mu.Unlock()
		if started {
			<-r.done
		}
		if plain {
			r.paintPlain()
			return
		}
		r.Paint()
		r.mu.Lock()
		defer r.mu.Unlock()
		_, _ = fmt.Fprintln(r.out)
	})
}

func (r *Renderer) loop() {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.Paint()
		}
	}
}

// Paint draws the current frame over the previous one. In plain mode it
// writes the frame on its own line, or nothing when the frame is empty.
func (r *Renderer) Paint() {
	r.mu.Lock()
	plain := r.plain
	r.mu.Unlock()
	if plain {
		r.paintPlain()
		return
	}

	frame := r.screen.Frame()

	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	if r.partial {
		sb.WriteString("\n")
		r.partial = false
	}
	sb.WriteString("\r")
	if r.lines > 1 {
		fmt.Fprintf(&sb, "\033[%dA", r.lines-1)
	}
	lines := strings.Split(frame, "\n")
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("\033[K")
		sb.WriteString(line)
	}
	// Clear what is left of a taller previous frame.
	for i := len(lines); i < r.lines; i++ {
		sb.WriteString("\n\033[K")
	}
	if extra := r.lines - len(lines); extra > 0 {
		fmt.Fprintf(&sb, "\033[%dA", extra)
	}
	r.lines = len(lines)

	_, _ = io.WriteString(r.out, sb.String())
}

func (r *Renderer) paintPlain() {
	frame := r.screen.Frame()
	if strings.TrimSpace(frame) == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.partial {
		frame = "\n" + frame
		r.partial = false
	}
	_, _ = io.WriteString(r.out, frame+"\n")
}

// Writer returns a writer for output that shares the renderer's stream,
// such as a child process's stderr. On a terminal the current frame is
// erased first and drawn again on the next paint.
func (r *Renderer) Writer() io.Writer {
	return rendererWriter{r}
}

type rendererWriter struct {
	r *Renderer
}

func (w rendererWriter) Write(p []byte) (int, error) {
	r := w.r
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(p) == 0 {
		return 0, nil
	}
	if !r.plain && r.lines > 0 {
		var sb strings.Builder
		sb.WriteString("\r")
		if r.lines > 1 {
			fmt.Fprintf(&sb, "\033[%dA", r.lines-1)
		}
		sb.WriteString("\033[J")
		if _, err := io.WriteString(r.out, sb.String()); err != nil {
			return 0, err
		}
		r.lines = 0
	}
	n, err := r.out.Write(p)
	if n > 0 {
		r.partial = p[n-1] != '\n'
	}
	return n, err
}
