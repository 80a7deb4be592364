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

package main

import (
	"fmt"

	"github.com/merklet/merklet/leaves"
	"github.com/merklet/merklet/merkle"
	"github.com/xlab/treeprint"
)

// shortLen is the number of digest bytes shown per node.
const shortLen = 6

func label(n *merkle.Node[leaves.Data]) string {
	d := fmt.Sprintf("[%x…]", []byte(n.Digest()[:shortLen]))
	if item, ok := n.Item(); ok {
		return fmt.Sprintf("%s %q", d, item.String())
	}
	if n.IsDuplicate() {
		return d + " (duplicated)"
	}
	return d
}

// renderTree draws the tree under root, one node per line.
func renderTree(root *merkle.Node[leaves.Data]) string {
	tree := treeprint.NewWithRoot(label(root))
	addChildren(tree, root)
	return tree.String()
}

func addChildren(tree treeprint.Tree, n *merkle.Node[leaves.Data]) {
	if n.IsLeaf() {
		return
	}
	for _, c := range []*merkle.Node[leaves.Data]{n.Left(), n.Right()} {
		if c.IsLeaf() {
			tree.AddNode(label(c))
			continue
		}
		addChildren(tree.AddBranch(label(c)), c)
	}
}
