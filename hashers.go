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

package merklet

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	sha256simd "github.com/minio/sha256-simd"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hasher computes digests with a single hash function of fixed output width.
// It holds no state between calls and is safe for concurrent use.
type Hasher struct {
	newHash func() hash.Hash
	alg     HashAlgorithm
}

// NewHasher returns a Hasher for the given algorithm.
func NewHasher(alg HashAlgorithm) (Hasher, error) {
	switch alg {
	case SHA256:
		return Hasher{sha256.New, alg}, nil
	case SHA256_SIMD:
		return Hasher{sha256simd.New, alg}, nil
	case SHA512_256:
		return Hasher{sha512.New512_256, alg}, nil
	case SHA3_256:
		return Hasher{sha3.New256, alg}, nil
	case KECCAK256:
		return Hasher{sha3.NewLegacyKeccak256, alg}, nil
	case BLAKE2B_256:
		return Hasher{newBLAKE2b256, alg}, nil
	}
	return Hasher{}, fmt.Errorf("unsupported hash algorithm %v", alg)
}

// NewSHA256 returns a SHA-256 Hasher.
func NewSHA256() Hasher {
	h, err := NewHasher(SHA256)
	if err != nil {
		// SHA256 is always supported.
		panic(err)
	}
	return h
}

func newBLAKE2b256() hash.Hash {
	// New256 only fails for keys longer than 64 bytes.
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}

// Digest calculates the digest of b according to the underlying algorithm.
func (h Hasher) Digest(b []byte) Hash {
	hr := h.newHash()
	hr.Write(b)
	return hr.Sum(nil)
}

// HashChildren returns the digest of the concatenation l||r. No domain
// separation prefix is applied, so swapping l and r changes the result but a
// branch digest is indistinguishable from a leaf whose content is l||r.
func (h Hasher) HashChildren(l, r []byte) Hash {
	hr := h.newHash()
	hr.Write(l)
	hr.Write(r)
	return hr.Sum(nil)
}

// Size returns the number of bytes in output digests.
func (h Hasher) Size() int {
	return h.newHash().Size()
}

// HashAlgorithm returns the algorithm this Hasher was created with.
func (h Hasher) HashAlgorithm() HashAlgorithm {
	return h.alg
}

// String returns the name of the underlying algorithm.
func (h Hasher) String() string {
	return h.alg.String()
}
