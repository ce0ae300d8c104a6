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

package loaders

import (
	"github.com/spdx/spec-compiler/diag"
	"github.com/spdx/spec-compiler/mdparse"
	"github.com/spdx/spec-compiler/model"
)

var individualAllowedKeys = []string{"name", "type", "IRI"}
var individualRequiredKeys = []string{"name", "type"}

// LoadIndividual loads an Individuals/<Name>.md file into an Individual
// entity.
func LoadIndividual(f *mdparse.File, ns string, nsIRI string) (*model.Individual, diag.List) {
	var errs diag.List
	c, cErrs, ok := loadCommon(f)
	errs.Extend(cErrs)
	if !ok {
		return nil, errs
	}
	errs.Extend(checkMetadataKeys(f, c.metadata, individualAllowedKeys, individualRequiredKeys))
	errs.Extend(checkNameAgreement(f, c.metadata))

	ind := &model.Individual{
		Common: commonFields(f, c, f.Name, synthIRI(nsIRI, f.Name)),
		Values: make(map[string]string),
	}
	ind.Common.NS = ns
	ind.Common.FQName = "/" + ns + "/" + f.Name

	if typ, ok := c.metadata.Get("type"); ok {
		ind.Type = model.ExpandFQN(ns, typ)
	}
	if iri, ok := c.metadata.Get("IRI"); ok {
		ind.MetaIRI = iri
	}

	if sec, ok := f.Sections["Property Values"]; ok {
		values, vErrs := mdparse.ParseSingleList(f.Filename, sec)
		errs.Extend(vErrs)
		values.Each(func(k, v string) { ind.Values[k] = v })
	}

	return ind, errs
}
