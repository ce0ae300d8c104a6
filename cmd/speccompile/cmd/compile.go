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

	"github.com/spdx/spec-compiler/analyzer"
	"github.com/spdx/spec-compiler/builder"
	"github.com/spdx/spec-compiler/diag"
	"github.com/spdx/spec-compiler/internal/config"
	"github.com/spdx/spec-compiler/internal/logging"
	"github.com/spdx/spec-compiler/jsonld"
	"github.com/spdx/spec-compiler/rdf"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Load, validate, and emit the ontology for an input spec tree",
	RunE:  runCompile,
}

func init() {
	flags := compileCmd.Flags()
	flags.String("input-path", "", "directory containing the entity spec tree (required)")
	flags.Bool("no-output", false, "validate and analyze only, skip all emission")
	flags.String("output-rdf-path", "", "directory to write spdx-model.<ext>, spdx-context.jsonld, and spdx-model.dot into")
	flags.Bool("generate-rdf", true, "emit the RDF/SHACL/JSON-LD artifacts")
	flags.String("base-iri", "", "ontology base IRI, e.g. https://spdx.org/rdf/3.0.1/terms/")
	flags.String("title", "", "ontology dcterms:title")
	flags.String("abstract", "", "ontology dcterms:abstract")
	flags.String("creator", "", "ontology dcterms:creator")
	flags.String("created", "", "ontology dcterms:created (xsd:date)")
	flags.String("license", "", "ontology dcterms:license IRI")
	flags.String("parser-version", "dev", "value embedded as creationInfo.specVersion")
	flags.String("autogen-header", "Code generated by spec-compiler. DO NOT EDIT.", "header embedded in generated artifacts")

	for _, name := range []string{
		"input-path", "no-output", "output-rdf-path", "generate-rdf",
		"base-iri", "title", "abstract", "creator", "created", "license",
		"parser-version", "autogen-header",
	} {
		key := flagToKey(name)
		viper.BindPFlag(key, flags.Lookup(name))
	}
}

func flagToKey(flagName string) string {
	key := []byte(flagName)
	for i, c := range key {
		if c == '-' {
			key[i] = '_'
		}
	}
	return string(key)
}

func runCompile(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	level := viper.GetString("log_level")
	log := logging.New(os.Stderr, level)

	m, errs := builder.Build(cfg.InputPath)
	logging.Report(log, "build", errs)
	if errs.HasErrors() {
		return fmt.Errorf("compile: aborting after build errors")
	}

	aErrs := analyzer.Analyze(m)
	logging.Report(log, "analyze", aErrs)
	if aErrs.HasErrors() {
		return fmt.Errorf("compile: aborting after analyze errors")
	}

	if cfg.NoOutput || !cfg.GenerateRDF {
		log.Info("skipping emission", "no_output", cfg.NoOutput, "generate_rdf", cfg.GenerateRDF)
		return nil
	}

	rdfCfg := rdf.Config{
		BaseIRI:       cfg.BaseIRI,
		Title:         cfg.Title,
		Abstract:      cfg.Abstract,
		Creator:       cfg.Creator,
		Created:       cfg.Created,
		License:       cfg.License,
		ParserVersion: cfg.ParserVersion,
	}
	g, eErrs := rdf.Emit(m, rdfCfg)
	logging.Report(log, "emit", eErrs)
	if eErrs.HasErrors() {
		return fmt.Errorf("compile: aborting after emit errors")
	}

	if cfg.OutputRDFPath == "" {
		return fmt.Errorf("compile: output_rdf_path is required when generate_rdf is set")
	}
	if err := os.MkdirAll(cfg.OutputRDFPath, 0o755); err != nil {
		return fmt.Errorf("compile: preparing output directory: %w", err)
	}

	var writeErrs diag.List
	writeErrs.Extend(rdf.WriteAll(g, cfg.BaseIRI, cfg.OutputRDFPath))
	writeErrs.Extend(rdf.WriteDOT(m, cfg.OutputRDFPath))

	ctx, cErrs := jsonld.Derive(g, cfg.BaseIRI)
	writeErrs.Extend(cErrs)
	writeErrs.Extend(jsonld.Write(ctx, cfg.OutputRDFPath))

	logging.Report(log, "write", writeErrs)
	if writeErrs.HasErrors() {
		return fmt.Errorf("compile: aborting after write errors")
	}

	log.Info("wrote ontology", "dir", cfg.OutputRDFPath, "classes", m.Classes.Len(), "properties", m.Properties.Len())
	return nil
}
