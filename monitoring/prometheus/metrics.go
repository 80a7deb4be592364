// Copyright 2026 Google LLC. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package prometheus provides a Prometheus-based implementation of the
// MetricFactory abstraction.
package prometheus

import (
	"github.com/merklet/merklet/monitoring"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"k8s.io/klog/v2"
)

// MetricFactory allows the creation of Prometheus-based metrics.
type MetricFactory struct {
	Prefix string
	// Registerer receives every metric created by the factory. If nil,
	// prometheus.DefaultRegisterer is used.
	Registerer prometheus.Registerer
}

func (pmf MetricFactory) register(c prometheus.Collector) {
	r := pmf.Registerer
	if r == nil {
		r = prometheus.DefaultRegisterer
	}
	r.MustRegister(c)
}

// NewCounter creates a new Counter object backed by Prometheus.
func (pmf MetricFactory) NewCounter(name, help string, labelNames ...string) monitoring.Counter {
	vec := prometheus.NewCounterVec(prometheus.CounterOpts{Name: pmf.Prefix + name, Help: help}, labelNames)
	pmf.register(vec)
	return &Counter{vec: vec}
}

// NewGauge creates a new Gauge object backed by Prometheus.
func (pmf MetricFactory) NewGauge(name, help string, labelNames ...string) monitoring.Gauge {
	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: pmf.Prefix + name, Help: help}, labelNames)
	pmf.register(vec)
	return &Gauge{vec: vec}
}

// NewHistogram creates a new Histogram object backed by Prometheus, using
// the default Prometheus buckets.
func (pmf MetricFactory) NewHistogram(name, help string, labelNames ...string) monitoring.Histogram {
	return pmf.NewHistogramWithBuckets(name, help, nil, labelNames...)
}

// NewHistogramWithBuckets creates a new Histogram object backed by
// Prometheus with the given bucket thresholds.
func (pmf MetricFactory) NewHistogramWithBuckets(name, help string, buckets []float64, labelNames ...string) monitoring.Histogram {
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: pmf.Prefix + name, Help: help, Buckets: buckets}, labelNames)
	pmf.register(vec)
	return &Histogram{vec: vec}
}

// Counter is a wrapper around a Prometheus CounterVec object.
type Counter struct {
	vec *prometheus.CounterVec
}

func (m *Counter) get(labelVals []string) prometheus.Counter {
	c, err := m.vec.GetMetricWithLabelValues(labelVals...)
	if err != nil {
		klog.Error(err)
		return nil
	}
	return c
}

// Inc adds 1 to a counter.
func (m *Counter) Inc(labelVals ...string) {
	if c := m.get(labelVals); c != nil {
		c.Inc()
	}
}

// Add adds the given amount to a counter.
func (m *Counter) Add(val float64, labelVals ...string) {
	if c := m.get(labelVals); c != nil {
		c.Add(val)
	}
}

// Value returns the current amount of a counter.
func (m *Counter) Value(labelVals ...string) float64 {
	c := m.get(labelVals)
	if c == nil {
		return 0.0
	}
	pb := write(c)
	if pb.GetCounter() == nil {
		klog.Errorf("counter field missing")
		return 0.0
	}
	return pb.GetCounter().GetValue()
}

// Gauge is a wrapper around a Prometheus GaugeVec object.
type Gauge struct {
	vec *prometheus.GaugeVec
}

func (m *Gauge) get(labelVals []string) prometheus.Gauge {
	g, err := m.vec.GetMetricWithLabelValues(labelVals...)
	if err != nil {
		klog.Error(err)
		return nil
	}
	return g
}

// Inc adds 1 to a gauge.
func (m *Gauge) Inc(labelVals ...string) {
	if g := m.get(labelVals); g != nil {
		g.Inc()
	}
}

// Dec subtracts 1 from a gauge.
func (m *Gauge) Dec(labelVals ...string) {
	if g := m.get(labelVals); g != nil {
		g.Dec()
	}
}

// Add adds given value to a gauge.
func (m *Gauge) Add(val float64, labelVals ...string) {
	if g := m.get(labelVals); g != nil {
		g.Add(val)
	}
}

// Set sets the value of a gauge.
func (m *Gauge) Set(val float64, labelVals ...string) {
	if g := m.get(labelVals); g != nil {
		g.Set(val)
	}
}

// Value returns the current amount of a gauge.
func (m *Gauge) Value(labelVals ...string) float64 {
	g := m.get(labelVals)
	if g == nil {
		return 0.0
	}
	pb := write(g)
	if pb.GetGauge() == nil {
		klog.Errorf("gauge field missing")
		return 0.0
	}
	return pb.GetGauge().GetValue()
}

// Histogram is a wrapper around a Prometheus HistogramVec object.
type Histogram struct {
	vec *prometheus.HistogramVec
}

func (m *Histogram) get(labelVals []string) prometheus.Observer {
	o, err := m.vec.GetMetricWithLabelValues(labelVals...)
	if err != nil {
		klog.Error(err)
		return nil
	}
	return o
}

// Observe adds a single observation to the histogram.
func (m *Histogram) Observe(val float64, labelVals ...string) {
	if o := m.get(labelVals); o != nil {
		o.Observe(val)
	}
}

// Info returns the count and sum of observations for the histogram.
func (m *Histogram) Info(labelVals ...string) (uint64, float64) {
	o := m.get(labelVals)
	if o == nil {
		return 0, 0.0
	}
	metric, ok := o.(prometheus.Metric)
	if !ok {
		klog.Errorf("observer %T is not a metric", o)
		return 0, 0.0
	}
	h := write(metric).GetHistogram()
	if h == nil {
		klog.Errorf("histogram field missing")
		return 0, 0.0
	}
	return h.GetSampleCount(), h.GetSampleSum()
}

func write(m prometheus.Metric) *dto.Metric {
	var pb dto.Metric
	if err := m.Write(&pb); err != nil {
		klog.Errorf("failed to Write metric: %v", err)
	}
	return &pb
}
