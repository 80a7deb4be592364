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

// The merklet binary builds a Merkle tree over the lines of its input and
// prints the root digest in hex.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/merklet/merklet"
	"github.com/merklet/merklet/cmd"
	"github.com/merklet/merklet/leaves"
	"github.com/merklet/merklet/merkle"
	mprom "github.com/merklet/merklet/monitoring/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"k8s.io/klog/v2"
)

var (
	hashAlgorithm = flag.String("hash_algorithm", "SHA256", "Hash function for leaves and branches (SHA256, SHA256_SIMD, SHA512_256, SHA3_256, KECCAK256, BLAKE2B_256)")
	input         = flag.String("input", "-", "File to read leaves from, one per line; - reads stdin")
	format        = flag.String("format", "text", "Encoding of input lines: text, hex or base64")
	printTree     = flag.Bool("print_tree", false, "Print every node of the tree after the root")
	proofIndex    = flag.Int("proof_index", -1, "If non-negative, print and check the inclusion proof for this leaf")
	metricsFile   = flag.String("metrics_file", "", "If set, write Prometheus metrics in text format to this file")
	configFile    = flag.String("config", "", "YAML file with settings; flags set on the command line take precedence")
	flagFile      = flag.String("flagfile", "", "File of additional flags; flags set on the command line take precedence")

	// metricsGatherer is what --metrics_file is written from. It must
	// gather the registry that merkle.InitMetrics registered with.
	metricsGatherer prometheus.Gatherer = prometheus.DefaultGatherer
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if *flagFile != "" {
		if err := cmd.ParseFlagFile(flag.CommandLine, *flagFile, os.Args[1:]); err != nil {
			klog.Exitf("Failed to parse %v: %v", *flagFile, err)
		}
	}

	cfg := DefaultConfig()
	if *configFile != "" {
		if err := LoadConfig(*configFile, &cfg); err != nil {
			klog.Exitf("Failed to load config: %v", err)
		}
	}
	if err := applyFlags(flag.CommandLine, &cfg); err != nil {
		klog.Exitf("Invalid flags: %v", err)
	}

	merkle.InitMetrics(mprom.MetricFactory{Prefix: "merklet_"})

	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		klog.Exitf("merklet: %v", err)
	}
}

// applyFlags copies the flags that were set explicitly in fs into cfg.
func applyFlags(fs *flag.FlagSet, cfg *Config) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		v := f.Value.String()
		switch f.Name {
		case "hash_algorithm":
			err = cfg.HashAlgorithm.Set(v)
		case "input":
			cfg.Input = v
		case "format":
			cfg.Format = v
		case "print_tree":
			cfg.PrintTree, err = strconv.ParseBool(v)
		case "proof_index":
			cfg.ProofIndex, err = strconv.Atoi(v)
		case "metrics_file":
			cfg.MetricsFile = v
		}
	})
	return err
}

func run(cfg Config, stdin io.Reader, out io.Writer) error {
	h, err := merklet.NewHasher(cfg.HashAlgorithm)
	if err != nil {
		return err
	}
	f, err := leaves.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	r := stdin
	if cfg.Input != "-" {
		file, err := os.Open(cfg.Input)
		if err != nil {
			return err
		}
		defer file.Close()
		r = file
	}
	items, err := leaves.Read(r, f, h)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.Input, err)
	}
	klog.V(1).Infof("Read %d leaves from %s", len(items), cfg.Input)

	root, err := merkle.Build(h, items)
	if errors.Is(err, merkle.ErrEmptyInput) {
		return fmt.Errorf("no leaves in %s: %w", cfg.Input, err)
	} else if err != nil {
		return err
	}
	fmt.Fprintln(out, root.Digest())

	if cfg.PrintTree {
		fmt.Fprint(out, renderTree(root))
	}
	if cfg.ProofIndex >= 0 {
		if err := printProof(out, h, root, cfg.ProofIndex); err != nil {
			return err
		}
	}
	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, metricsGatherer); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}

// printProof prints the inclusion proof for the leaf at index, after checking
// that it leads back to root.
func printProof(out io.Writer, h merklet.Hasher, root *merkle.Node[leaves.Data], index int) error {
	proof, err := merkle.InclusionProof(root, index)
	if err != nil {
		return err
	}
	size := merkle.LeafCount(root)
	leaf := merkle.Leaves(root)[index]
	if err := merkle.NewVerifier(h).VerifyInclusion(index, size, leaf.Digest(), proof, root.Digest()); err != nil {
		return fmt.Errorf("self-check of inclusion proof failed: %w", err)
	}
	fmt.Fprintf(out, "inclusion proof for leaf %d of %d (%q):\n", index, size, leaf.String())
	for level, d := range proof {
		fmt.Fprintf(out, "  %d %s\n", level, d)
	}
	return nil
}
