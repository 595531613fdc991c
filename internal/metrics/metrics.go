/*
 * Copyright (C) 2023 by Jason Figge
 */

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder collects statistics about rendered frames on its own registry so
// a one-shot render can dump them as a node-exporter textfile. A nil
// *Recorder records nothing.
type Recorder struct {
	registry      *prometheus.Registry
	frames        prometheus.Counter
	columns       prometheus.Counter
	faces         *prometheus.CounterVec
	hitsExamined  prometheus.Histogram
	frameDuration prometheus.Gauge
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "raycast_frames_total",
			Help: "Frames rendered.",
		}),
		columns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "raycast_columns_total",
			Help: "Screen columns rendered.",
		}),
		faces: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "raycast_wall_faces_total",
			Help: "Nearest wall hits by the face struck.",
		}, []string{"face"}),
		hitsExamined: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "raycast_hits_examined",
			Help:    "Grid crossings examined per ray before the first wall.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
		frameDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "raycast_frame_duration_seconds",
			Help: "Wall time of the last rendered frame.",
		}),
	}
	r.registry.MustRegister(r.frames, r.columns, r.faces, r.hitsExamined, r.frameDuration)
	return r
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// ObserveColumn records one rendered column. Safe for concurrent use.
func (r *Recorder) ObserveColumn(face string, examined int) {
	if r == nil {
		return
	}
	r.columns.Inc()
	r.faces.WithLabelValues(face).Inc()
	r.hitsExamined.Observe(float64(examined))
}

func (r *Recorder) ObserveFrame(d time.Duration) {
	if r == nil {
		return
	}
	r.frames.Inc()
	r.frameDuration.Set(d.Seconds())
}

// WriteTextfile writes every metric to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
