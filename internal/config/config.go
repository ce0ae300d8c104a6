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

// Package config binds the external configuration surface (§6): the
// input/output paths, per-format generate toggles, and metadata fields
// the core phases consume, sourced from flags, environment variables,
// and an optional YAML file, in that order of precedence.
package config

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/spf13/viper"
)

// Config is the fully resolved configuration surface passed to the
// compile pipeline.
type Config struct {
	InputPath string `mapstructure:"input_path"`
	NoOutput  bool   `mapstructure:"no_output"`

	OutputJSONDumpPath string `mapstructure:"output_jsondump_path"`
	OutputMkdocsPath   string `mapstructure:"output_mkdocs_path"`
	OutputPlantUMLPath string `mapstructure:"output_plantuml_path"`
	OutputRDFPath      string `mapstructure:"output_rdf_path"`
	OutputTeXPath      string `mapstructure:"output_tex_path"`
	OutputWebpagesPath string `mapstructure:"output_webpages_path"`

	GenerateJSONDump bool `mapstructure:"generate_jsondump"`
	GenerateMkdocs   bool `mapstructure:"generate_mkdocs"`
	GeneratePlantUML bool `mapstructure:"generate_plantuml"`
	GenerateRDF      bool `mapstructure:"generate_rdf"`
	GenerateTeX      bool `mapstructure:"generate_tex"`
	GenerateWebpages bool `mapstructure:"generate_webpages"`

	AutogenHeader string `mapstructure:"autogen_header"`
	ParserVersion string `mapstructure:"parser_version"`

	// Ontology-level metadata, not part of the original driver surface but
	// required by the RDF emitter's owl:Ontology assertion (§4.6).
	BaseIRI  string `mapstructure:"base_iri"`
	Title    string `mapstructure:"title"`
	Abstract string `mapstructure:"abstract"`
	Creator  string `mapstructure:"creator"`
	Created  string `mapstructure:"created"`
	License  string `mapstructure:"license"`
}

var defaults = map[string]any{
	"no_output":         false,
	"generate_jsondump": false,
	"generate_mkdocs":   false,
	"generate_plantuml": false,
	"generate_rdf":      true,
	"generate_tex":      false,
	"generate_webpages": false,
	"parser_version":    "dev",
	"autogen_header":    "Code generated by spec-compiler. DO NOT EDIT.",
}

// Load resolves v's bound flags/env/file into a Config. v is expected to
// already have its flags bound (the compile command binds them with
// viper.BindPFlag) and, optionally, a config file merged in.
func Load(v *viper.Viper) (*Config, error) {
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if cfg.InputPath == "" {
		return nil, fmt.Errorf("config: input_path is required")
	}
	return &cfg, nil
}

// MergeYAMLFile decodes the YAML document at path with goccy/go-yaml
// (viper's own decoder treats every scalar as a string by default, which
// loses the generate_* booleans) and merges the result into v.
func MergeYAMLFile(v *viper.Viper, path string, data []byte) error {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return v.MergeConfigMap(raw)
}

// AsDict returns the flat string-keyed view of cfg used for templating
// output headers and generator boilerplate (§6 "all_as_dict").
func (c *Config) AsDict() map[string]string {
	return map[string]string{
		"input_path":           c.InputPath,
		"no_output":            strconv.FormatBool(c.NoOutput),
		"output_jsondump_path": c.OutputJSONDumpPath,
		"output_mkdocs_path":   c.OutputMkdocsPath,
		"output_plantuml_path": c.OutputPlantUMLPath,
		"output_rdf_path":      c.OutputRDFPath,
		"output_tex_path":      c.OutputTeXPath,
		"output_webpages_path": c.OutputWebpagesPath,
		"generate_jsondump":    strconv.FormatBool(c.GenerateJSONDump),
		"generate_mkdocs":      strconv.FormatBool(c.GenerateMkdocs),
		"generate_plantuml":    strconv.FormatBool(c.GeneratePlantUML),
		"generate_rdf":         strconv.FormatBool(c.GenerateRDF),
		"generate_tex":         strconv.FormatBool(c.GenerateTeX),
		"generate_webpages":    strconv.FormatBool(c.GenerateWebpages),
		"autogen_header":       c.AutogenHeader,
		"parser_version":       c.ParserVersion,
	}
}
