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
	"os"

	"github.com/merklet/merklet"
	"gopkg.in/yaml.v2"
)

// Config holds the settings of a single run. It can be loaded from YAML and
// then overridden by command-line flags.
type Config struct {
	HashAlgorithm merklet.HashAlgorithm `yaml:"hash_algorithm"`
	// Input is the file to read leaves from; "-" means stdin.
	Input  string `yaml:"input"`
	Format string `yaml:"format"`
	// PrintTree renders the whole tree after the root.
	PrintTree bool `yaml:"print_tree"`
	// ProofIndex selects a leaf whose inclusion proof is printed. Negative
	// values disable proofs.
	ProofIndex  int    `yaml:"proof_index"`
	MetricsFile string `yaml:"metrics_file"`
}

// DefaultConfig returns the settings used when neither a config file nor
// flags say otherwise.
func DefaultConfig() Config {
	return Config{
		HashAlgorithm: merklet.SHA256,
		Input:         "-",
		Format:        "text",
		ProofIndex:    -1,
	}
}

// LoadConfig reads YAML settings from path on top of cfg. Unknown keys are
// rejected.
func LoadConfig(path string, cfg *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.UnmarshalStrict(b, cfg); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}
