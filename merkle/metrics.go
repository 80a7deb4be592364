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

package merkle

import (
	"fmt"
	"sync"

	"github.com/merklet/merklet/monitoring"
)

var (
	metricsOnce   sync.Once
	treesBuilt    monitoring.Counter
	buildFailures monitoring.Counter
	branchHashes  monitoring.Counter
	treeLeaves    monitoring.Histogram
	lastHeight    monitoring.Gauge
)

// hashAlgorithmLabel is the label attached to every metric recorded by Build.
const hashAlgorithmLabel = "hash_algorithm"

// unknownHasher is the label value used for hashers that do not name their
// algorithm.
const unknownHasher = "unknown"

// InitMetrics creates the metrics recorded by Build using mf. Only the first
// call has an effect. If it is never called before the first Build, inert
// metrics are used.
func InitMetrics(mf monitoring.MetricFactory) {
	metricsOnce.Do(func() { createMetrics(mf) })
}

func createMetrics(mf monitoring.MetricFactory) {
	if mf == nil {
		mf = monitoring.InertMetricFactory{}
	}
	treesBuilt = mf.NewCounter("merkle_trees_built", "Number of Merkle trees built", hashAlgorithmLabel)
	buildFailures = mf.NewCounter("merkle_build_failures", "Number of tree builds rejected", hashAlgorithmLabel)
	branchHashes = mf.NewCounter("merkle_branch_hashes", "Number of branch digests computed while building trees", hashAlgorithmLabel)
	treeLeaves = mf.NewHistogramWithBuckets("merkle_tree_leaves", "Number of leaves per built tree", monitoring.SizeBuckets(32), hashAlgorithmLabel)
	lastHeight = mf.NewGauge("merkle_last_tree_height", "Height of the most recently built tree", hashAlgorithmLabel)
}

// hasherLabel returns the metric label value for h: its String form if it
// has one, such as "SHA256" for merklet.Hasher.
func hasherLabel(h NodeHasher) string {
	if s, ok := h.(fmt.Stringer); ok {
		if name := s.String(); name != "" {
			return name
		}
	}
	return unknownHasher
}
