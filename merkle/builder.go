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
	"errors"

	"k8s.io/klog/v2"
)

// ErrEmptyInput is returned when a tree is requested over zero items. A
// Merkle tree over nothing has no meaningful root.
var ErrEmptyInput = errors.New("merkle: cannot build a tree from zero leaves")

// Build constructs a Merkle tree over items and returns its root.
//
// Level 0 holds one leaf per item, in input order. Each following level pairs
// the nodes of the previous one left to right. If a level has an odd number
// of nodes, the last one is paired with itself: it becomes both children of
// a new branch rather than being promoted unchanged. This policy is visible
// in root digests and must not change. A single item yields its leaf as the
// root.
func Build[T Hashable](h NodeHasher, items []T) (*Node[T], error) {
	label := hasherLabel(h)
	level, err := leafLevel(items, label)
	if err != nil {
		return nil, err
	}
	height := 0
	for len(level) > 1 {
		level = nextLevel(h, level, label)
		height++
	}
	recordBuild(len(items), height, label)
	return level[0], nil
}

// BuildLevels is like Build, but returns every level of the tree: levels[0]
// holds the leaves and the last level holds only the root.
func BuildLevels[T Hashable](h NodeHasher, items []T) ([][]*Node[T], error) {
	label := hasherLabel(h)
	level, err := leafLevel(items, label)
	if err != nil {
		return nil, err
	}
	levels := [][]*Node[T]{level}
	for len(level) > 1 {
		level = nextLevel(h, level, label)
		levels = append(levels, level)
	}
	recordBuild(len(items), len(levels)-1, label)
	return levels, nil
}

// leafLevel returns the leaves for items. Metrics are recorded under label,
// the name of the hash algorithm in use.
func leafLevel[T Hashable](items []T, label string) ([]*Node[T], error) {
	InitMetrics(nil)
	if len(items) == 0 {
		buildFailures.Inc(label)
		return nil, ErrEmptyInput
	}
	level := make([]*Node[T], len(items))
	for i, item := range items {
		level[i] = NewLeaf(item)
	}
	return level, nil
}

// nextLevel pairs the nodes of level into branches, duplicating a trailing
// odd node.
func nextLevel[T Hashable](h NodeHasher, level []*Node[T], label string) []*Node[T] {
	next := make([]*Node[T], 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		left, right := level[i], level[i]
		if i+1 < len(level) {
			right = level[i+1]
		}
		next = append(next, NewBranch(h, left, right))
	}
	branchHashes.Add(float64(len(next)), label)
	if klog.V(2).Enabled() {
		klog.Infof("merkle: reduced level of %d nodes to %d (odd=%t)", len(level), len(next), len(level)%2 == 1)
	}
	return next
}

func recordBuild(leaves, height int, label string) {
	treesBuilt.Inc(label)
	treeLeaves.Observe(float64(leaves), label)
	lastHeight.Set(float64(height), label)
	klog.V(1).Infof("merkle: built %s tree over %d leaves with height %d", label, leaves, height)
}
