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

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] spec_file(s)",
	Short: "dump the elaborated schema of a set of specification files.",
	Long: `Compile a given set of specification file(s) and dump the resulting schema
	 in a form suitable for debugging the elaboration itself.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		schema := compileSpecFiles(cmd, args)
		//
		for _, table := range schema.Tables() {
			fmt.Printf("=== table %s (export %s) ===\n", table.Name(), table.Export())
			//
			for i, constructor := range table.Constructors() {
				pattern := constructor.Pattern()
				fmt.Printf("[%d] mask=0x%x test=0x%x\n", i, pattern.Mask(), pattern.Test())
				//
				if GetFlag(cmd, "spew") {
					spew.Dump(constructor)
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().Bool("spew", false, "dump full constructor internals")
}
