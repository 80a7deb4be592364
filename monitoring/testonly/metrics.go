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

// Package testonly contains helpers for testing metrics.
package testonly

import (
	"testing"

	"github.com/merklet/merklet/monitoring"
)

type labelCase struct {
	suffix     string
	labelNames []string
	labelVals  []string
}

var labelCases = []labelCase{
	{suffix: "0"},
	{suffix: "1", labelNames: []string{"key1"}, labelVals: []string{"val1"}},
	{suffix: "2", labelNames: []string{"key1", "key2"}, labelVals: []string{"val1", "val2"}},
}

// bogus returns vals with one label too many.
func bogus(vals []string) []string {
	return append(append([]string{}, vals...), "bogus")
}

// TestCounter runs a conformance test for counters made by factory.
func TestCounter(t *testing.T, factory monitoring.MetricFactory) {
	t.Helper()
	for _, lc := range labelCases {
		name := "test_counter" + lc.suffix
		counter := factory.NewCounter(name, "Test only", lc.labelNames...)
		for _, step := range []struct {
			do   func()
			want float64
		}{
			{do: func() {}, want: 0},
			{do: func() { counter.Inc(lc.labelVals...) }, want: 1},
			{do: func() { counter.Add(2.5, lc.labelVals...) }, want: 3.5},
		} {
			step.do()
			if got := counter.Value(lc.labelVals...); got != step.want {
				t.Errorf("Counter(%s)[%v].Value()=%v; want %v", name, lc.labelVals, got, step.want)
			}
		}
		// Mismatched label counts are dropped.
		counter.Add(10.0, bogus(lc.labelVals)...)
		counter.Inc(bogus(lc.labelVals)...)
		if got, want := counter.Value(bogus(lc.labelVals)...), 0.0; got != want {
			t.Errorf("Counter(%s)[%v].Value()=%v; want %v", name, bogus(lc.labelVals), got, want)
		}
		if got, want := counter.Value(lc.labelVals...), 3.5; got != want {
			t.Errorf("Counter(%s)[%v].Value()=%v after bogus updates; want %v", name, lc.labelVals, got, want)
		}
	}
}

// TestGauge runs a conformance test for gauges made by factory.
func TestGauge(t *testing.T, factory monitoring.MetricFactory) {
	t.Helper()
	for _, lc := range labelCases {
		name := "test_gauge" + lc.suffix
		gauge := factory.NewGauge(name, "Test only", lc.labelNames...)
		for _, step := range []struct {
			do   func()
			want float64
		}{
			{do: func() {}, want: 0},
			{do: func() { gauge.Inc(lc.labelVals...) }, want: 1},
			{do: func() { gauge.Dec(lc.labelVals...) }, want: 0},
			{do: func() { gauge.Add(2.5, lc.labelVals...) }, want: 2.5},
			{do: func() { gauge.Set(42.0, lc.labelVals...) }, want: 42},
		} {
			step.do()
			if got := gauge.Value(lc.labelVals...); got != step.want {
				t.Errorf("Gauge(%s)[%v].Value()=%v; want %v", name, lc.labelVals, got, step.want)
			}
		}
		gauge.Add(10.0, bogus(lc.labelVals)...)
		gauge.Inc(bogus(lc.labelVals)...)
		gauge.Dec(bogus(lc.labelVals)...)
		gauge.Set(120.0, bogus(lc.labelVals)...)
		if got, want := gauge.Value(bogus(lc.labelVals)...), 0.0; got != want {
			t.Errorf("Gauge(%s)[%v].Value()=%v; want %v", name, bogus(lc.labelVals), got, want)
		}
	}
}

// TestHistogram runs a conformance test for histograms made by factory.
func TestHistogram(t *testing.T, factory monitoring.MetricFactory) {
	t.Helper()
	for _, lc := range labelCases {
		name := "test_histogram" + lc.suffix
		histogram := factory.NewHistogram(name, "Test only", lc.labelNames...)
		if gotCount, gotSum := histogram.Info(lc.labelVals...); gotCount != 0 || gotSum != 0 {
			t.Errorf("Histogram(%s)[%v].Info()=%v,%v; want 0,0", name, lc.labelVals, gotCount, gotSum)
		}
		for _, v := range []float64{1, 2, 3} {
			histogram.Observe(v, lc.labelVals...)
		}
		if gotCount, gotSum := histogram.Info(lc.labelVals...); gotCount != 3 || gotSum != 6 {
			t.Errorf("Histogram(%s)[%v].Info()=%v,%v; want 3,6", name, lc.labelVals, gotCount, gotSum)
		}
		histogram.Observe(100.0, bogus(lc.labelVals)...)
		if gotCount, gotSum := histogram.Info(bogus(lc.labelVals)...); gotCount != 0 || gotSum != 0 {
			t.Errorf("Histogram(%s)[%v].Info()=%v,%v; want 0,0", name, bogus(lc.labelVals), gotCount, gotSum)
		}
	}
}
