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

// Package testonly contains code and data for testing Merkle trees.
package testonly

import (
	"github.com/merklet/merklet"
	"github.com/merklet/merklet/testonly"
)

var hex = testonly.MustHexDecode

var sha256 = merklet.NewSHA256()

// Item is a string leaf whose digest is the SHA-256 of its bytes.
type Item string

// Digest implements merkle.Hashable.
func (i Item) Digest() merklet.Hash {
	return sha256.Digest([]byte(i))
}

// Items converts strings to Items, keeping their order.
func Items(s ...string) []Item {
	items := make([]Item, len(s))
	for i, v := range s {
		items[i] = Item(v)
	}
	return items
}

// LeafInputs returns the leaf contents used by the vectors below.
func LeafInputs() []Item {
	return Items("A", "B", "C", "D", "E", "F", "G", "H")
}

// RootHashes returns the SHA-256 roots of trees built from the first n
// LeafInputs(), indexed by n. There is no tree over zero leaves, so the first
// entry is nil.
func RootHashes() []merklet.Hash {
	return []merklet.Hash{
		nil,
		// A single leaf is its own root: sha256("A").
		hex("559aead08264d5795d3909718cdd05abd49572e84fe55590eef31a88a08fdffd"),
		// sha256(sha256("A") || sha256("B"))
		hex("63956f0ce48edc48a0d528cb0b5d58e4d625afb14d63ca1bb9950eb657d61f40"),
		hex("420940ee1c7a73de80cfa2554efb4e6cec7ea745fed73108ccb06886054df8c6"),
		hex("1b3faa3fcc5ed50cd8592f805c6f8fce976b8582c739b26a6f3613b7f9b13617"),
		hex("cc7461bf32d59f9249796e6e7691f304a3221825732284b9c049b1dd2c689b56"),
		hex("80da0f7dd1db3cd8cfeb4a054bc3f096a97b2392030c45fb76aee7663206bc5d"),
		hex("9fa660bf1b4f58ff50e1823ac5c0350fbfb4281e7d0fdb1fc2c6d42373486d80"),
		hex("b7d3319e67bfc42bc2013a6ca62152fcf5f43a6696adfb70e8bed24ed91e6af6"),
	}
}

// SwappedRootHash is the root of the tree over "B", "A".
func SwappedRootHash() merklet.Hash {
	return hex("f6d120611fbd704685a217bc41c0779e290ab256e2140d3ef7686a84cb263779")
}

// LevelHashes returns the digests of every level of the tree over the first
// five LeafInputs(). The first index is the level, zero being the leaves.
func LevelHashes() [][]merklet.Hash {
	return [][]merklet.Hash{{
		hex("559aead08264d5795d3909718cdd05abd49572e84fe55590eef31a88a08fdffd"),
		hex("df7e70e5021544f4834bbee64a9e3789febc4be81470df629cad6ddb03320a5c"),
		hex("6b23c0d5f35d1b11f9b683f0b0a617355deb11277d91ae091d399c655b87940d"),
		hex("3f39d5c348e5b79d06e842c114e6cc571583bbf44e4b0ebfda1a01ec05745d43"),
		hex("a9f51566bd6705f7ea6ad54bb9deb449f795582d6529a0e22207b8981233ec58"),
	}, {
		hex("63956f0ce48edc48a0d528cb0b5d58e4d625afb14d63ca1bb9950eb657d61f40"),
		hex("98a2fbfddbc746d702222101ff08fc6f0c60e9cc9e8c0bc7238dbeda7433391c"),
		// sha256(sha256("E") || sha256("E"))
		hex("b84086a44a718ec730f47e830bf7e14dabf486815c64e3ed76760de5b285b64d"),
	}, {
		hex("1b3faa3fcc5ed50cd8592f805c6f8fce976b8582c739b26a6f3613b7f9b13617"),
		hex("d48e3e0653332ff79423214119dfc2d81992f4b9778520be3a424b334b846c9d"),
	}, {
		hex("cc7461bf32d59f9249796e6e7691f304a3221825732284b9c049b1dd2c689b56"),
	}}
}
