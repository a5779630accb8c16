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
package compiler

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sled-lang/go-sled/pkg/sled/schema"
)

// Config determines the various options of a compilation run.
type Config struct {
	// WordWidth is the width of the instruction word in bits.  Every declared
	// field must fit within it.
	WordWidth uint `yaml:"word_width"`
	// RequireRoot demands that the specification defines the
	// whole-instruction entry point.
	RequireRoot bool `yaml:"require_root"`
	// Strict turns sub-table references which no rule ever defines into
	// errors, rather than warnings.
	Strict bool `yaml:"strict"`
}

// DefaultConfig returns the configuration used when nothing else is given: a
// 32-bit instruction word, strict linking and no root-table requirement.
func DefaultConfig() Config {
	return Config{
		WordWidth:   32,
		RequireRoot: false,
		Strict:      true,
	}
}

// LoadConfig reads a compilation configuration from a given YAML file,
// filling unset options from the defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()
	//
	bytes, err := os.ReadFile(filename)
	//
	if err != nil {
		return config, err
	}
	//
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return config, err
	}
	// Sanity check resulting configuration
	if config.WordWidth == 0 || config.WordWidth > schema.MaxFieldBit+1 {
		return config, fmt.Errorf("invalid word width %d", config.WordWidth)
	}
	//
	return config, nil
}
