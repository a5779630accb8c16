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

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] spec_file(s)",
	Short: "check a set of specification files elaborates cleanly.",
	Long: `Check a given set of specification file(s) parses and elaborates into a
	 well-formed schema, reporting all diagnostics with source highlighting.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		schema := compileSpecFiles(cmd, args)
		// Print summary
		if GetFlag(cmd, "summary") {
			width := maxWidth()
			//
			for _, table := range schema.Tables() {
				line := fmt.Sprintf("table %s: %d constructor(s), export %s",
					table.Name(), len(table.Constructors()), table.Export())
				// Truncate to terminal width
				if len(line) > width {
					line = line[:width]
				}
				//
				fmt.Println(line)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolP("summary", "s", false, "print per-table summary")
}
