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
	"bytes"
	"testing"

	"github.com/merklet/merklet"
	"github.com/merklet/merklet/merkle/testonly"
)

var hasher = merklet.NewSHA256()

func TestNewLeaf(t *testing.T) {
	for _, v := range []string{"", "A", "hello world"} {
		item := testonly.Item(v)
		leaf := NewLeaf(item)
		if got, want := leaf.Digest(), item.Digest(); !got.Equal(want) {
			t.Errorf("NewLeaf(%q).Digest(): got %x, want %x", v, got, want)
		}
		if !leaf.IsLeaf() || leaf.IsBranch() {
			t.Errorf("NewLeaf(%q): IsLeaf()=%t IsBranch()=%t, want leaf", v, leaf.IsLeaf(), leaf.IsBranch())
		}
		if got, ok := leaf.Item(); !ok || got != item {
			t.Errorf("NewLeaf(%q).Item(): got %q, %t, want %q, true", v, got, ok, item)
		}
		if leaf.Left() != nil || leaf.Right() != nil {
			t.Errorf("NewLeaf(%q) has children", v)
		}
	}
}

func TestNewBranch(t *testing.T) {
	a, b := NewLeaf(testonly.Item("A")), NewLeaf(testonly.Item("B"))
	br := NewBranch(hasher, a, b)

	want := hasher.Digest(append(a.Digest(), b.Digest()...))
	if got := br.Digest(); !got.Equal(want) {
		t.Errorf("NewBranch(A, B).Digest(): got %x, want %x", got, want)
	}
	if got, want := br.Digest(), testonly.RootHashes()[2]; !got.Equal(want) {
		t.Errorf("NewBranch(A, B).Digest(): got %x, want %x", got, want)
	}
	if !br.IsBranch() || br.IsLeaf() {
		t.Errorf("NewBranch: IsLeaf()=%t IsBranch()=%t, want branch", br.IsLeaf(), br.IsBranch())
	}
	if br.Left() != a || br.Right() != b {
		t.Error("NewBranch: children not in the given order")
	}
	if _, ok := br.Item(); ok {
		t.Error("Item() on a branch: got ok=true")
	}
	if br.IsDuplicate() {
		t.Error("IsDuplicate() on distinct children: got true")
	}
	if !NewBranch(hasher, a, a).IsDuplicate() {
		t.Error("IsDuplicate() on self-paired node: got false")
	}
}

func TestNewBranchOrderSensitive(t *testing.T) {
	for _, tc := range []struct {
		desc string
		l, r *Node[testonly.Item]
	}{
		{desc: "leaves", l: NewLeaf(testonly.Item("A")), r: NewLeaf(testonly.Item("B"))},
		{
			desc: "branches",
			l:    NewBranch(hasher, NewLeaf(testonly.Item("C")), NewLeaf(testonly.Item("D"))),
			r:    NewBranch(hasher, NewLeaf(testonly.Item("E")), NewLeaf(testonly.Item("E"))),
		},
		{desc: "mixed", l: NewLeaf(testonly.Item("F")), r: NewBranch(hasher, NewLeaf(testonly.Item("G")), NewLeaf(testonly.Item("H")))},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			lr, rl := NewBranch(hasher, tc.l, tc.r), NewBranch(hasher, tc.r, tc.l)
			if lr.Digest().Equal(rl.Digest()) {
				t.Errorf("branch digest does not depend on child order: both %x", lr.Digest())
			}
		})
	}
}

func TestNewBranchNilChild(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewBranch with nil child did not panic")
		}
	}()
	NewBranch(hasher, NewLeaf(testonly.Item("A")), nil)
}

func TestDigestIsCopy(t *testing.T) {
	leaf := NewLeaf(testonly.Item("A"))
	d := leaf.Digest()
	d[0] ^= 0xff
	if got, want := leaf.Digest(), testonly.Item("A").Digest(); !bytes.Equal(got, want) {
		t.Errorf("node digest changed after modifying a returned copy: got %x, want %x", got, want)
	}
}

func TestNodeString(t *testing.T) {
	leaf := NewLeaf(testonly.Item("A"))
	if got, want := leaf.String(), "leaf{559aead08264d5795d3909718cdd05abd49572e84fe55590eef31a88a08fdffd}"; got != want {
		t.Errorf("String(): got %q, want %q", got, want)
	}
}
