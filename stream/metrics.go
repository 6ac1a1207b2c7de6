package stream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	framesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "anitx_frames_rendered_total",
		Help: "Frames rendered by the streamer",
	})

	callbackFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "anitx_frame_callback_failures_total",
		Help: "Per-frame callbacks that panicked and were skipped",
	}, []string{"stage"})

	renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "anitx_frame_render_duration_seconds",
		Help:    "Time to composite one frame",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.03, 0.1, 0.5},
	})

	publishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "anitx_frame_publish_failures_total",
		Help: "Frames that could not be published over MQTT",
	})
)
