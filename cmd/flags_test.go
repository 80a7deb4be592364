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

package cmd

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags(t *testing.T) {
	for _, tc := range []struct {
		name        string
		contents    string
		env         map[string]string
		cliArgs     []string
		expectedErr string
		expectedA   string
		expectedB   string
	}{
		{
			name:      "two flags per line",
			contents:  "-a one -b two",
			expectedA: "one",
			expectedB: "two",
		},
		{
			name:      "one flag per line",
			contents:  "-a one\n-b two",
			expectedA: "one",
			expectedB: "two",
		},
		{
			name:      "quoted value",
			contents:  "-a 'one two' -b \"three four\"",
			expectedA: "one two",
			expectedB: "three four",
		},
		{
			name:      "one flag in file, one flag on command-line",
			contents:  "-a one",
			cliArgs:   []string{"-b", "two"},
			expectedA: "one",
			expectedB: "two",
		},
		{
			name:      "two flags, one overridden by command-line",
			contents:  "-a one\n-b two",
			cliArgs:   []string{"-b", "three"},
			expectedA: "one",
			expectedB: "three",
		},
		{
			name:      "two flags, one using an environment variable",
			contents:  "-a one\n-b $MERKLET_TEST_VAR",
			env:       map[string]string{"MERKLET_TEST_VAR": "from-env"},
			expectedA: "one",
			expectedB: "from-env",
		},
		{
			name:        "three flags, one undefined",
			contents:    "-a one -b two -c three",
			expectedErr: "flag provided but not defined: -c",
		},
		{
			name:        "unbalanced quotes",
			contents:    "-a 'one",
			expectedErr: "unbalanced quotes in flag file",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			a := fs.String("a", "", "")
			b := fs.String("b", "", "")

			if err := parseFlags(fs, tc.contents, tc.cliArgs); err != nil {
				if err.Error() != tc.expectedErr {
					t.Errorf("parseFlags() = %q, want %q", err, tc.expectedErr)
				}
				return
			}
			if tc.expectedErr != "" {
				t.Fatalf("parseFlags() = nil, want %q", tc.expectedErr)
			}
			if *a != tc.expectedA {
				t.Errorf("flag 'a' not properly set: got %q, want %q", *a, tc.expectedA)
			}
			if *b != tc.expectedB {
				t.Errorf("flag 'b' not properly set: got %q, want %q", *b, tc.expectedB)
			}
		})
	}
}

func TestParseFlagFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags")
	if err := os.WriteFile(path, []byte("-a from-file"), 0o600); err != nil {
		t.Fatalf("WriteFile(): %v", err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	a := fs.String("a", "", "")
	if err := ParseFlagFile(fs, path, nil); err != nil {
		t.Fatalf("ParseFlagFile(): %v", err)
	}
	if got, want := *a, "from-file"; got != want {
		t.Errorf("flag 'a': got %q, want %q", got, want)
	}
	if err := ParseFlagFile(fs, filepath.Join(t.TempDir(), "missing"), nil); err == nil {
		t.Error("ParseFlagFile(missing): got nil error")
	}
}
