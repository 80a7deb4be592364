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

// Package cmd contains helpers shared by the binaries in this module.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"bitbucket.org/creachadair/shell"
)

// ParseFlagFile parses flags from the file at path into fs, then parses args
// so that flags given on the command line take precedence over those in the
// file. The file holds shell-style words; environment variables are expanded
// before splitting.
func ParseFlagFile(fs *flag.FlagSet, path string, args []string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return parseFlags(fs, string(file), args)
}

func parseFlags(fs *flag.FlagSet, contents string, args []string) error {
	words, ok := shell.Split(os.ExpandEnv(contents))
	if !ok {
		return fmt.Errorf("unbalanced quotes in flag file")
	}
	if err := fs.Parse(words); err != nil {
		return err
	}
	return fs.Parse(args)
}
