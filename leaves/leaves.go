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

// Package leaves provides leaf content for callers that hold raw bytes rather
// than their own Hashable type, and reads such content from text input.
package leaves

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/merklet/merklet"
)

// Hasher computes leaf digests. merklet.Hasher implements it.
type Hasher interface {
	Digest(b []byte) merklet.Hash
}

// Data is a leaf holding a private copy of some bytes. Its digest is the
// digest of those bytes under the hasher it was created with.
type Data struct {
	b []byte
	h Hasher
}

// New returns a Data holding a copy of b.
func New(h Hasher, b []byte) Data {
	return Data{b: bytes.Clone(b), h: h}
}

// Digest implements merkle.Hashable.
func (d Data) Digest() merklet.Hash {
	return d.h.Digest(d.b)
}

// Bytes returns a copy of the leaf content.
func (d Data) Bytes() []byte {
	return bytes.Clone(d.b)
}

// String returns the content as text.
func (d Data) String() string {
	return string(d.b)
}

// FromBytes returns one Data per element of bs, in order.
func FromBytes(h Hasher, bs [][]byte) []Data {
	out := make([]Data, len(bs))
	for i, b := range bs {
		out[i] = New(h, b)
	}
	return out
}

// FromStrings returns one Data per element of ss, in order.
func FromStrings(h Hasher, ss []string) []Data {
	out := make([]Data, len(ss))
	for i, s := range ss {
		out[i] = New(h, []byte(s))
	}
	return out
}

// Format is the encoding of leaf content in line-oriented input.
type Format int

const (
	// FormatText uses every line verbatim, including empty ones.
	FormatText Format = iota
	// FormatHex decodes every non-blank line from hex.
	FormatHex
	// FormatBase64 decodes every non-blank line from standard base64.
	FormatBase64
)

var formatNames = []string{"text", "hex", "base64"}

func (f Format) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the Format with the given name.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(name, n) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown leaf format %q, want one of %v", name, formatNames)
}

// maxLine bounds the length of a single input line.
const maxLine = 16 << 20

// Read returns one leaf per line of r, in order. Line terminators ("\n" or
// "\r\n") are not part of the content.
func Read(r io.Reader, f Format, h Hasher) ([]Data, error) {
	decode, err := decoder(f)
	if err != nil {
		return nil, err
	}
	var out []Data
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLine)
	for line := 1; s.Scan(); line++ {
		text := strings.TrimSuffix(s.Text(), "\r")
		if f != FormatText && strings.TrimSpace(text) == "" {
			continue
		}
		b, err := decode(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", line, err)
		}
		out = append(out, Data{b: b, h: h})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading leaves: %w", err)
	}
	return out, nil
}

func decoder(f Format) (func(string) ([]byte, error), error) {
	switch f {
	case FormatText:
		return func(s string) ([]byte, error) { return []byte(s), nil }, nil
	case FormatHex:
		return func(s string) ([]byte, error) { return hex.DecodeString(strings.TrimSpace(s)) }, nil
	case FormatBase64:
		return func(s string) ([]byte, error) { return base64.StdEncoding.DecodeString(strings.TrimSpace(s)) }, nil
	}
	return nil, fmt.Errorf("unsupported leaf format %v", f)
}
