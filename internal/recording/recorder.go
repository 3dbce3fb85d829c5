package recording

import (
	"fmt"
	"io"
	"sync"
	"time"

	"go.uber.org/zap"

	"arena/internal/combat"
)

// Line is one rendered narration entry.
type Line struct {
	At   time.Time        `json:"at"`
	Text string           `json:"text"`
	Type combat.EventType `json:"type"`
}

// Recorder renders engine events to text, keeps them in memory and copies
// every line to its writers.
type Recorder struct {
	mu      sync.Mutex
	lines   []Line
	events  []combat.Event
	writers []io.Writer
	now     func() time.Time
	log     *zap.Logger
}

type Option func(*Recorder)

func WithWriter(w io.Writer) Option {
	return func(r *Recorder) {
		if w != nil {
			r.writers = append(r.writers, w)
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Recorder) {
		if l != nil {
			r.log = l
		}
	}
}

func New(opts ...Option) *Recorder {
	r := &Recorder{now: time.Now, log: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recorder) Record(ev combat.Event) {
	text := Render(ev)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	r.lines = append(r.lines, Line{At: r.now().UTC(), Text: text, Type: ev.Type})
	for _, w := range r.writers {
		if _, err := fmt.Fprintln(w, text); err != nil {
			r.log.Warn("narration write failed", zap.Error(err), zap.String("event", string(ev.Type)))
		}
	}
}

func (r *Recorder) Lines() []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Line(nil), r.lines...)
}

// Texts returns the narration without timestamps.
func (r *Recorder) Texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	for i, l := range r.lines {
		out[i] = l.Text
	}
	return out
}

func (r *Recorder) Events() []combat.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]combat.Event(nil), r.events...)
}

func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
	r.events = nil
}
