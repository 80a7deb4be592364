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
	"bytes"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/merklet/merklet"
	"github.com/merklet/merklet/merkle"
	mprom "github.com/merklet/merklet/monitoring/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

const rootAB = "63956f0ce48edc48a0d528cb0b5d58e4d625afb14d63ca1bb9950eb657d61f40"

func TestMain(m *testing.M) {
	// Tree metrics are created once per process, so they are pointed at a
	// private registry before any test builds a tree.
	reg := prometheus.NewRegistry()
	metricsGatherer = reg
	merkle.InitMetrics(mprom.MetricFactory{Prefix: "merklet_", Registerer: reg})
	os.Exit(m.Run())
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile(%s): %v", path, err)
	}
	return path
}

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		cfg     func(*Config)
		stdin   string
		want    []string
		wantErr string
	}{
		{
			desc:  "stdin",
			stdin: "A\nB\n",
			want:  []string{rootAB},
		},
		{
			desc:  "hex",
			cfg:   func(c *Config) { c.Format = "hex" },
			stdin: "41\n42\n",
			want:  []string{rootAB},
		},
		{
			desc:  "simd matches sha256",
			cfg:   func(c *Config) { c.HashAlgorithm = merklet.SHA256_SIMD },
			stdin: "A\nB\n",
			want:  []string{rootAB},
		},
		{
			desc:  "sha3",
			cfg:   func(c *Config) { c.HashAlgorithm = merklet.SHA3_256 },
			stdin: "A\nB\n",
			want:  []string{"68ea1c9f7e6afe9d56f4608cc506917aa807de99a6d3a5ea1307a44ae5cef7c5"},
		},
		{
			desc:  "single leaf",
			stdin: "A\n",
			want:  []string{"559aead08264d5795d3909718cdd05abd49572e84fe55590eef31a88a08fdffd"},
		},
		{
			desc:  "proof",
			cfg:   func(c *Config) { c.ProofIndex = 1 },
			stdin: "A\nB\n",
			want: []string{
				rootAB,
				`inclusion proof for leaf 1 of 2 ("B"):`,
				"  0 559aead08264d5795d3909718cdd05abd49572e84fe55590eef31a88a08fdffd",
			},
		},
		{
			desc:    "empty input",
			stdin:   "",
			wantErr: "no leaves",
		},
		{
			desc:    "bad format",
			cfg:     func(c *Config) { c.Format = "csv" },
			stdin:   "A\n",
			wantErr: "unknown leaf format",
		},
		{
			desc:    "unknown algorithm",
			cfg:     func(c *Config) { c.HashAlgorithm = merklet.UNKNOWN_HASH_ALGORITHM },
			stdin:   "A\n",
			wantErr: "unsupported hash algorithm",
		},
		{
			desc:    "proof index out of range",
			cfg:     func(c *Config) { c.ProofIndex = 2 },
			stdin:   "A\nB\n",
			wantErr: "out of range",
		},
		{
			desc:    "missing input file",
			cfg:     func(c *Config) { c.Input = filepath.Join(os.TempDir(), "merklet-does-not-exist") },
			wantErr: "no such file",
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			cfg := DefaultConfig()
			if tc.cfg != nil {
				tc.cfg(&cfg)
			}
			var out bytes.Buffer
			err := run(cfg, strings.NewReader(tc.stdin), &out)
			if tc.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
					t.Fatalf("run(): got err %v, want err containing %q", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("run(): %v", err)
			}
			got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("run() output diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunInputFileAndMetrics(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input = writeFile(t, "leaves.txt", "A\r\nB\r\n")
	cfg.MetricsFile = filepath.Join(t.TempDir(), "merklet.prom")
	var out bytes.Buffer
	if err := run(cfg, strings.NewReader("ignored\n"), &out); err != nil {
		t.Fatalf("run(): %v", err)
	}
	if got, want := strings.TrimSpace(out.String()), rootAB; got != want {
		t.Errorf("run() output: got %q, want %q", got, want)
	}
	metrics, err := os.ReadFile(cfg.MetricsFile)
	if err != nil {
		t.Fatalf("metrics file not written: %v", err)
	}
	for _, want := range []string{
		"# TYPE merklet_merkle_trees_built counter",
		`merklet_merkle_trees_built{hash_algorithm="SHA256"} `,
		`merklet_merkle_last_tree_height{hash_algorithm="SHA256"} 1`,
		`merklet_merkle_tree_leaves_count{hash_algorithm="SHA256"} `,
	} {
		if !strings.Contains(string(metrics), want) {
			t.Errorf("metrics file missing %q:\n%s", want, metrics)
		}
	}
}

func TestRunPrintTree(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PrintTree = true
	var out bytes.Buffer
	if err := run(cfg, strings.NewReader("A\nB\nC\n"), &out); err != nil {
		t.Fatalf("run(): %v", err)
	}
	s := out.String()
	for _, want := range []string{`"A"`, `"B"`, `"C"`, "(duplicated)"} {
		if !strings.Contains(s, want) {
			t.Errorf("tree output missing %s:\n%s", want, s)
		}
	}
	if got, want := strings.Count(s, `"C"`), 2; got != want {
		t.Errorf("duplicated leaf printed %d times, want %d:\n%s", got, want, s)
	}
}

func TestApplyFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.String("hash_algorithm", "SHA256", "")
	fs.String("input", "-", "")
	fs.String("format", "text", "")
	fs.Bool("print_tree", false, "")
	fs.Int("proof_index", -1, "")
	fs.String("metrics_file", "", "")
	if err := fs.Parse([]string{"-hash_algorithm=blake2b_256", "-print_tree", "-proof_index=3"}); err != nil {
		t.Fatalf("Parse(): %v", err)
	}

	cfg := DefaultConfig()
	cfg.Input = "from-config.txt"
	cfg.Format = "hex"
	if err := applyFlags(fs, &cfg); err != nil {
		t.Fatalf("applyFlags(): %v", err)
	}
	want := Config{
		HashAlgorithm: merklet.BLAKE2B_256,
		Input:         "from-config.txt",
		Format:        "hex",
		PrintTree:     true,
		ProofIndex:    3,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("applyFlags() diff (-want +got):\n%s", diff)
	}

	bad := flag.NewFlagSet("bad", flag.ContinueOnError)
	bad.String("hash_algorithm", "", "")
	if err := bad.Parse([]string{"-hash_algorithm=md5"}); err != nil {
		t.Fatalf("Parse(): %v", err)
	}
	if err := applyFlags(bad, &cfg); err == nil {
		t.Error("applyFlags() with unknown algorithm: got nil error")
	}
}
