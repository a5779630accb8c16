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

	"github.com/spf13/cobra"

	"github.com/sled-lang/go-sled/pkg/sled/generator"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] spec_file(s)",
	Short: "generate Go decoder source from specification files.",
	Long: `Compile a given set of specification file(s) and generate a Go source file
	 containing the resulting decode tables.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		schema := compileSpecFiles(cmd, args)
		//
		pkg := GetString(cmd, "package")
		output := GetString(cmd, "output")
		templates := GetString(cmd, "templates")
		//
		if err := generator.Generate(schema, pkg, templates, output); err != nil {
			fmt.Printf("error generating decoder: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringP("output", "o", "decoder.go", "specify output file.")
	generateCmd.Flags().StringP("package", "p", "decoder", "specify output package name.")
	generateCmd.Flags().String("templates", "templates", "specify template directory.")
}
