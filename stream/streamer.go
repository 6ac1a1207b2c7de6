package stream

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/matt-g-everett/anitx/ani"
	"github.com/matt-g-everett/anitx/lifetime"
	"github.com/matt-g-everett/anitx/util"
)

// ErrStopped is returned by Run once the streamer has stopped.
var ErrStopped = errors.New("stream: streamer stopped")

// Clock tells the streamer what time it is.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Renderer composites the current scene.
type Renderer interface {
	Render() (image.Image, error)
}

// Streamer is the frame loop. Every tick it advances the elapsed time, hands
// a Step to each registered step action, fires the pulse so watched
// properties update, then renders a Frame into Latest.
type Streamer struct {
	logger   *slog.Logger
	clock    Clock
	interval time.Duration
	maxDelta time.Duration
	steps    *lifetime.PerishableCollection[func(ani.Step)]
	pulse    *ani.PulseSource
	renderer Renderer

	// Latest holds the most recently rendered frame.
	Latest *util.ObservableValue[*Frame]

	started bool
	stopped bool
	last    time.Time
	elapsed time.Duration
	frames  uint64
}

// NewStreamer creates a Streamer. renderer may be nil to run the loop
// without producing frames.
func NewStreamer(config Config, steps *lifetime.PerishableCollection[func(ani.Step)], pulse *ani.PulseSource,
	renderer Renderer, logger *slog.Logger) *Streamer {

	s := new(Streamer)
	s.logger = logger
	s.clock = systemClock{}
	s.interval = config.Frame.Interval
	s.maxDelta = config.Frame.MaxDelta
	s.steps = steps
	s.pulse = pulse
	s.renderer = renderer
	s.Latest = util.NewObservableValue[*Frame](nil, nil)
	return s
}

// Elapsed returns the total animated time so far.
func (s *Streamer) Elapsed() time.Duration {
	return s.elapsed
}

// Frames returns the number of frames rendered.
func (s *Streamer) Frames() uint64 {
	return s.frames
}

// Tick runs one iteration of the loop and returns the step it broadcast.
//
// The time since the previous tick is clamped to [0, MaxDelta]; anything
// beyond that, such as time spent paused in a debugger, is dropped rather
// than replayed. Step actions are taken from a snapshot so actions added
// during the broadcast first run on the next tick.
func (s *Streamer) Tick() ani.Step {
	now := s.clock.Now()
	if !s.started {
		s.last = now
		s.started = true
	}
	delta := now.Sub(s.last)
	s.last = now
	if delta < 0 {
		delta = 0
	}
	if delta > s.maxDelta {
		s.logger.Debug("clamping frame delta", "delta", delta, "max", s.maxDelta)
		delta = s.maxDelta
	}

	step := ani.Step{Previous: s.elapsed, Delta: delta}
	for _, item := range s.steps.CurrentItems() {
		if item.Lifetime.IsDead() {
			continue
		}
		action := item.Value
		s.guard("step", func() { action(step) })
	}
	s.elapsed = step.Next()

	s.guard("pulse", func() { s.pulse.Fire(s.elapsed) })
	s.render()
	return step
}

func (s *Streamer) guard(stage string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			callbackFailures.WithLabelValues(stage).Inc()
			s.logger.Error("frame callback panicked",
				"stage", stage,
				"elapsed", s.elapsed,
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	fn()
}

func (s *Streamer) render() {
	if s.renderer == nil {
		return
	}
	start := time.Now()
	img, err := s.renderer.Render()
	renderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.logger.Warn("frame rendered with errors", "elapsed", s.elapsed, "error", err)
	}
	if img == nil {
		return
	}
	s.frames++
	framesRendered.Inc()
	s.Latest.Set(NewFrame(s.frames, s.elapsed, img))
}

// Run ticks every interval until ctx is done or life dies. The streamer
// cannot be restarted.
func (s *Streamer) Run(ctx context.Context, life lifetime.Lifetime) error {
	if s.stopped {
		return ErrStopped
	}
	defer func() { s.stopped = true }()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("streamer running", "interval", s.interval, "maxDelta", s.maxDelta)
	for {
		if life.IsDead() {
			s.logger.Info("streamer lifetime ended", "elapsed", s.elapsed, "frames", s.frames)
			return nil
		}
		s.Tick()

		select {
		case <-ctx.Done():
			s.logger.Info("streamer stopped", "elapsed", s.elapsed, "frames", s.frames)
			return nil
		case <-ticker.C:
		}
	}
}
