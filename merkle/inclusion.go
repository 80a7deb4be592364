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
	"fmt"
	"math/bits"

	"github.com/merklet/merklet"
)

var (
	// ErrIndexOutOfRange is returned for a leaf index outside [0, size).
	ErrIndexOutOfRange = errors.New("merkle: leaf index out of range")
	// ErrWrongProofSize is returned when a proof does not have one digest
	// per level of the tree.
	ErrWrongProofSize = errors.New("merkle: wrong proof size")
	// ErrBadDuplicate is returned when a proof step for an odd node out does
	// not carry the node's own digest.
	ErrBadDuplicate = errors.New("merkle: odd node out must be its own sibling")
	// ErrUnbalancedTree is returned when a tree does not have the shape Build
	// gives its leaves: a leaf is reached before the expected depth, or a
	// duplicate branch sits anywhere but the end of an odd-sized level.
	ErrUnbalancedTree = errors.New("merkle: tree is not balanced")
)

// RootMismatchError occurs when an inclusion proof does not lead to the
// expected root.
type RootMismatchError struct {
	ExpectedRoot   merklet.Hash
	CalculatedRoot merklet.Hash
}

func (e RootMismatchError) Error() string {
	return fmt.Sprintf("calculated root %x does not match expected root %x", []byte(e.CalculatedRoot), []byte(e.ExpectedRoot))
}

// proofLen returns the number of levels above the leaves of a tree with size
// leaves, which is also the length of every inclusion proof in it.
func proofLen(size int) int {
	return bits.Len(uint(size - 1))
}

// levelSize returns the number of nodes at the given level of a tree with
// size leaves.
func levelSize(size, level int) int {
	return (size + (1 << level) - 1) >> level
}

// InclusionProof returns the digests needed to recompute the root from the
// leaf at index, ordered from the leaf's sibling up to the child of the root.
// Where the node on the path is an odd node out, its sibling is itself.
func InclusionProof[T Hashable](root *Node[T], index int) ([]merklet.Hash, error) {
	size := LeafCount(root)
	if index < 0 || index >= size {
		return nil, fmt.Errorf("%w: index %d, tree size %d", ErrIndexOutOfRange, index, size)
	}
	height := Height(root)
	if height != proofLen(size) {
		return nil, fmt.Errorf("%w: height %d for %d leaves", ErrUnbalancedTree, height, size)
	}
	proof := make([]merklet.Hash, height)
	n := root
	for level := height - 1; level >= 0; level-- {
		if n.IsLeaf() {
			return nil, fmt.Errorf("%w: leaf at level %d", ErrUnbalancedTree, level+1)
		}
		// A branch duplicates its child exactly when that child is the last
		// node of an odd-sized level.
		left := (index >> level) &^ 1
		if wantDup := left+1 == levelSize(size, level); n.IsDuplicate() != wantDup {
			return nil, fmt.Errorf("%w: branch over node %d of level %d has duplicate=%t", ErrUnbalancedTree, left, level, n.IsDuplicate())
		}
		if (index>>level)&1 == 0 {
			proof[level] = n.right.Digest()
			n = n.left
		} else {
			proof[level] = n.left.Digest()
			n = n.right
		}
	}
	return proof, nil
}

// Verifier checks inclusion proofs against tree roots.
type Verifier struct {
	hasher NodeHasher
}

// NewVerifier returns a Verifier that combines digests with hasher, which
// must be the one the tree was built with.
func NewVerifier(hasher NodeHasher) Verifier {
	return Verifier{hasher: hasher}
}

// VerifyInclusion checks that leafHash is at index in the tree of the given
// size with the given root.
func (v Verifier) VerifyInclusion(index, size int, leafHash merklet.Hash, proof []merklet.Hash, root merklet.Hash) error {
	calc, err := v.RootFromInclusionProof(index, size, leafHash, proof)
	if err != nil {
		return err
	}
	if !calc.Equal(root) {
		return RootMismatchError{ExpectedRoot: root, CalculatedRoot: calc}
	}
	return nil
}

// RootFromInclusionProof calculates the root implied by proof for leafHash
// at index. index starts at 0, size at 1.
func (v Verifier) RootFromInclusionProof(index, size int, leafHash merklet.Hash, proof []merklet.Hash) (merklet.Hash, error) {
	if index < 0 || index >= size {
		return nil, fmt.Errorf("%w: index %d, tree size %d", ErrIndexOutOfRange, index, size)
	}
	if got, want := len(proof), proofLen(size); got != want {
		return nil, fmt.Errorf("%w: got %d digests, want %d", ErrWrongProofSize, got, want)
	}
	res := leafHash
	for level, sibling := range proof {
		pos := index >> level
		if pos == levelSize(size, level)-1 && pos%2 == 0 && !sibling.Equal(res) {
			return nil, fmt.Errorf("%w: level %d", ErrBadDuplicate, level)
		}
		if pos%2 == 0 {
			res = v.hasher.HashChildren(res, sibling)
		} else {
			res = v.hasher.HashChildren(sibling, res)
		}
	}
	return res, nil
}
