// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sled-lang/go-sled/pkg/sled/compiler"
	"github.com/sled-lang/go-sled/pkg/util/source"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint flag, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// getConfig determines the compilation configuration: either read from the
// given YAML file, or assembled from the command-line flags.
func getConfig(cmd *cobra.Command) compiler.Config {
	if filename := GetString(cmd, "config"); filename != "" {
		config, err := compiler.LoadConfig(filename)
		//
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		return config
	}
	//
	config := compiler.DefaultConfig()
	config.Strict = GetFlag(cmd, "strict")
	config.RequireRoot = GetFlag(cmd, "require-root")
	config.WordWidth = GetUint(cmd, "word-width")
	//
	return config
}

// compileSpecFiles reads and compiles the given specification files,
// reporting all diagnostics and exiting on failure.
func compileSpecFiles(cmd *cobra.Command, filenames []string) *compiler.Schema {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	srcfiles, err := source.ReadFiles(filenames...)
	//
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	files := make([]*source.File, len(srcfiles))
	for i := range srcfiles {
		files[i] = &srcfiles[i]
	}
	//
	schema, errors := compiler.CompileSourceFiles(getConfig(cmd), files)
	//
	if len(errors) > 0 {
		for _, e := range errors {
			printSyntaxError(&e)
		}
		//
		os.Exit(2)
	}
	//
	return schema
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	line := err.FirstEnclosingLine()
	span := err.Span()
	lineOffset := span.Start() - line.Start()
	// Determine how much of the line to highlight.
	length := min(span.Length(), line.Length()-lineOffset)
	// Print error + line number
	fmt.Printf("%s:%d:%d: %s\n", err.SourceFile().Filename(), line.Number(),
		lineOffset+1, err.Message())
	// Print line itself
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(colourise(strings.Repeat("^", max(1, length))))
}

// colourise the highlight when connected to an ANSI-capable terminal.
func colourise(highlight string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return highlight
	}
	//
	return fmt.Sprintf("\033[31m%s\033[0m", highlight)
}

// maxWidth determines the width of the enclosing terminal, falling back to a
// conventional default when stdout is not a terminal.
func maxWidth() int {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			return width
		}
	}
	//
	return 80
}
