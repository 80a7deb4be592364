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

// Package merklet contains the hash primitives and digest type shared by the
// Merkle tree packages.
package merklet

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// Hash is a digest produced by a Hasher. Its length is fixed by the
// algorithm that produced it.
type Hash []byte

// Equal reports whether h and o hold the same bytes.
func (h Hash) Equal(o Hash) bool {
	return bytes.Equal(h, o)
}

// String returns the lower-case hex encoding of h.
func (h Hash) String() string {
	return hex.EncodeToString(h)
}

// HashAlgorithm identifies the hash function used to build a tree. Trees built
// with different algorithms have unrelated roots.
type HashAlgorithm int32

// Supported hash algorithms.
const (
	UNKNOWN_HASH_ALGORITHM HashAlgorithm = iota
	SHA256
	// SHA256_SIMD produces the same digests as SHA256 using an accelerated
	// implementation.
	SHA256_SIMD
	SHA512_256
	SHA3_256
	// KECCAK256 is the pre-standard Keccak used by Ethereum.
	KECCAK256
	BLAKE2B_256
)

var hashAlgorithmNames = map[HashAlgorithm]string{
	UNKNOWN_HASH_ALGORITHM: "UNKNOWN_HASH_ALGORITHM",
	SHA256:                 "SHA256",
	SHA256_SIMD:            "SHA256_SIMD",
	SHA512_256:             "SHA512_256",
	SHA3_256:               "SHA3_256",
	KECCAK256:              "KECCAK256",
	BLAKE2B_256:            "BLAKE2B_256",
}

func (a HashAlgorithm) String() string {
	if n, ok := hashAlgorithmNames[a]; ok {
		return n
	}
	return fmt.Sprintf("HashAlgorithm(%d)", int32(a))
}

// ParseHashAlgorithm returns the algorithm with the given name. Names are
// matched case-insensitively, and "-" may be used in place of "_".
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	norm := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for a, n := range hashAlgorithmNames {
		if a != UNKNOWN_HASH_ALGORITHM && n == norm {
			return a, nil
		}
	}
	return UNKNOWN_HASH_ALGORITHM, fmt.Errorf("unknown hash algorithm %q", name)
}

// Set implements flag.Value.
func (a *HashAlgorithm) Set(name string) error {
	v, err := ParseHashAlgorithm(name)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// UnmarshalYAML accepts the algorithm name as a YAML string.
func (a *HashAlgorithm) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	return a.Set(name)
}
