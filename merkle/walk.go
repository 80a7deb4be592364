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

// VisitFn is called by Walk for every node with its depth below the root.
// Returning false skips the node's children.
type VisitFn[T Hashable] func(n *Node[T], depth int) bool

// Walk visits the tree under root in pre-order, left child before right.
// Both children of a duplicating branch are visited.
func Walk[T Hashable](root *Node[T], fn VisitFn[T]) {
	walk(root, 0, fn)
}

func walk[T Hashable](n *Node[T], depth int, fn VisitFn[T]) {
	if !fn(n, depth) || n.IsLeaf() {
		return
	}
	walk(n.left, depth+1, fn)
	walk(n.right, depth+1, fn)
}

// Height returns the number of branch levels above the deepest leaf. A
// single leaf has height 0.
func Height[T Hashable](root *Node[T]) int {
	if root.IsLeaf() {
		return 0
	}
	h := Height(root.left)
	if !root.IsDuplicate() {
		h = max(h, Height(root.right))
	}
	return h + 1
}

// LeafCount returns the number of items the tree was built from. The right
// child of a duplicating branch is padding and is not counted.
func LeafCount[T Hashable](root *Node[T]) int {
	switch {
	case root.IsLeaf():
		return 1
	case root.IsDuplicate():
		return LeafCount(root.left)
	default:
		return LeafCount(root.left) + LeafCount(root.right)
	}
}

// Leaves returns the items of the tree in input order, without the padding
// introduced by duplicating branches.
func Leaves[T Hashable](root *Node[T]) []T {
	var items []T
	var collect func(n *Node[T])
	collect = func(n *Node[T]) {
		switch {
		case n.IsLeaf():
			items = append(items, n.item)
		case n.IsDuplicate():
			collect(n.left)
		default:
			collect(n.left)
			collect(n.right)
		}
	}
	collect(root)
	return items
}
