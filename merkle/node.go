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

// Package merkle builds binary Merkle hash trees over ordered sequences of
// hashable items.
//
// A tree is represented by its root Node. Nodes are immutable: a node's
// digest is computed once, when it is created, and children are shared by
// pointer. A leaf's digest is the digest of its item; a branch's digest is
// the digest of the concatenation of its children's digests, left first.
package merkle

import (
	"bytes"
	"fmt"

	"github.com/merklet/merklet"
)

// Hashable is implemented by content that can be placed in a leaf.
type Hashable interface {
	// Digest maps the content to a fixed-size digest. It must be
	// deterministic and free of side effects, and equal content must produce
	// equal digests.
	Digest() merklet.Hash
}

// NodeHasher computes the digest of a branch from the digests of its
// children. merklet.Hasher implements it.
type NodeHasher interface {
	HashChildren(l, r []byte) merklet.Hash
}

// Node is either a leaf wrapping one item, or a branch with exactly two
// children. The zero value is not a valid node; use NewLeaf or NewBranch.
type Node[T Hashable] struct {
	digest merklet.Hash
	item   T
	// left and right are both nil for a leaf, and both set for a branch.
	// They are the same node when the branch duplicates an odd node out.
	left, right *Node[T]
}

// NewLeaf returns a leaf node holding item. The item must not be modified
// afterwards.
func NewLeaf[T Hashable](item T) *Node[T] {
	return &Node[T]{
		digest: bytes.Clone(item.Digest()),
		item:   item,
	}
}

// NewBranch returns a branch node with the given children. Its digest is
// h.HashChildren(left digest, right digest). The children may also be
// referenced elsewhere; nodes are never modified.
func NewBranch[T Hashable](h NodeHasher, left, right *Node[T]) *Node[T] {
	if left == nil || right == nil {
		panic(fmt.Sprintf("merkle: NewBranch with nil child (left=%v, right=%v)", left == nil, right == nil))
	}
	return &Node[T]{
		digest: h.HashChildren(left.digest, right.digest),
		left:   left,
		right:  right,
	}
}

// Digest returns a copy of the node's digest.
func (n *Node[T]) Digest() merklet.Hash {
	return bytes.Clone(n.digest)
}

// IsLeaf reports whether n wraps an item.
func (n *Node[T]) IsLeaf() bool {
	return n.left == nil
}

// IsBranch reports whether n has two children.
func (n *Node[T]) IsBranch() bool {
	return n.left != nil
}

// Left returns the left child of a branch, or nil for a leaf.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child of a branch, or nil for a leaf.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// Item returns the item wrapped by a leaf. ok is false for a branch.
func (n *Node[T]) Item() (item T, ok bool) {
	if n.IsBranch() {
		return item, false
	}
	return n.item, true
}

// IsDuplicate reports whether n is a branch whose two children are the same
// node, as created for an odd node out.
func (n *Node[T]) IsDuplicate() bool {
	return n.left != nil && n.left == n.right
}

// String returns a short description of the node for logging.
func (n *Node[T]) String() string {
	kind := "branch"
	if n.IsLeaf() {
		kind = "leaf"
	}
	return fmt.Sprintf("%s{%x}", kind, []byte(n.digest))
}
