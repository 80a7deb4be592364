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

// Package monitoring provides an abstraction over the metrics recorded while
// building Merkle trees, so that the tree code does not depend on a
// particular metrics system.
//
// Every metric may carry labels. Values passed to a metric must match the
// label names it was created with, in order; the tree builder labels its
// metrics with the name of the hash algorithm in use.
package monitoring

// MetricFactory creates named metrics with a fixed list of label names.
type MetricFactory interface {
	NewCounter(name, help string, labelNames ...string) Counter
	NewGauge(name, help string, labelNames ...string) Gauge
	NewHistogram(name, help string, labelNames ...string) Histogram
	NewHistogramWithBuckets(name, help string, buckets []float64, labelNames ...string) Histogram
}

// Counter counts events, such as trees built or branch digests computed.
type Counter interface {
	Inc(labelVals ...string)
	Add(val float64, labelVals ...string)
	Value(labelVals ...string) float64
}

// Gauge holds a value that is replaced as it changes, such as the height of
// the last tree built.
type Gauge interface {
	Inc(labelVals ...string)
	Dec(labelVals ...string)
	Add(val float64, labelVals ...string)
	Set(val float64, labelVals ...string)
	// Value reads back the current value; tests use it to check what the
	// builder recorded.
	Value(labelVals ...string) float64
}

// Histogram records observations into buckets, such as the number of leaves
// per tree.
type Histogram interface {
	Observe(val float64, labelVals ...string)
	// Info returns the number and sum of the observations made under
	// labelVals.
	Info(labelVals ...string) (uint64, float64)
}
