// Copyright 2026 the original author or authors.
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

package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the root of the bytebuf command tree.  Subcommands attach
// themselves from their package init functions.
var RootCmd = &cobra.Command{
	Use:   "bytebuf",
	Short: "Inspect and re-encode byte streams",
	Long: `Inspect and re-encode byte streams between text encodings such as hex,
base64 and UTF-16LE, with optional compression on either side.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"TOML config file (default ~/.config/bytebuf/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
