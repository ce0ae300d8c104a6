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

package config

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/spf13/viper"
)

func TestLoadAppliesDefaults(t *testing.T) {
	v := viper.New()
	v.Set("input_path", "./ontology")

	cfg, err := Load(v)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(cfg.InputPath, "./ontology"))
	qt.Assert(t, qt.IsTrue(cfg.GenerateRDF))
	qt.Assert(t, qt.IsFalse(cfg.GenerateMkdocs))
	qt.Assert(t, qt.Equals(cfg.ParserVersion, "dev"))
}

func TestLoadRequiresInputPath(t *testing.T) {
	v := viper.New()
	_, err := Load(v)
	qt.Assert(t, qt.IsNotNil(err))
}

func TestMergeYAMLFilePreservesBooleanTypes(t *testing.T) {
	v := viper.New()
	v.Set("input_path", "./ontology")

	yamlDoc := []byte("generate_tex: true\noutput_rdf_path: ./out/rdf\n")
	err := MergeYAMLFile(v, "spec-compiler.yaml", yamlDoc)
	qt.Assert(t, qt.IsNil(err))

	cfg, err := Load(v)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(cfg.GenerateTeX))
	qt.Assert(t, qt.Equals(cfg.OutputRDFPath, "./out/rdf"))
}

func TestAsDict(t *testing.T) {
	cfg := &Config{InputPath: "./ontology", GenerateRDF: true, ParserVersion: "1.2.3"}
	dict := cfg.AsDict()
	qt.Assert(t, qt.Equals(dict["input_path"], "./ontology"))
	qt.Assert(t, qt.Equals(dict["generate_rdf"], "true"))
	qt.Assert(t, qt.Equals(dict["parser_version"], "1.2.3"))
}
