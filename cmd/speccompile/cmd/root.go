// Copyright 2025 The SPDX Contributors
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
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spdx/spec-compiler/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "speccompile",
	Short: "Compile a structured-Markdown entity spec into an RDF/SHACL/JSON-LD ontology",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug|info|warn|error")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(compileCmd)
}

func initConfig() {
	viper.SetEnvPrefix("SPECCOMPILE")
	viper.AutomaticEnv()

	if cfgFile == "" {
		return
	}
	data, err := os.ReadFile(cfgFile)
	if err != nil {
		cobra.CheckErr(fmt.Errorf("reading config file %s: %w", cfgFile, err))
	}
	if err := config.MergeYAMLFile(viper.GetViper(), cfgFile, data); err != nil {
		cobra.CheckErr(err)
	}
}
