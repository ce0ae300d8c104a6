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

var namespaceAllowedKeys = []string{"name", "id"}
var namespaceRequiredKeys = []string{"name", "id"}

// LoadNamespace loads the <Name>/<Name>.md file into a Namespace entity.
func LoadNamespace(f *mdparse.File) (*model.Namespace, diag.List) {
	var errs diag.List
	c, cErrs, ok := loadCommon(f)
	errs.Extend(cErrs)
	if !ok {
		return nil, errs
	}
	errs.Extend(checkMetadataKeys(f, c.metadata, namespaceAllowedKeys, namespaceRequiredKeys))
	errs.Extend(checkNameAgreement(f, c.metadata))

	iri, _ := c.metadata.Get("id")

	ns := &model.Namespace{
		Common: commonFields(f, c, f.Name, iri),
	}
	ns.Classes = model.NewOrderedMap[*model.Class]()
	ns.Properties = model.NewOrderedMap[*model.Property]()
	ns.Vocabularies = model.NewOrderedMap[*model.Vocabulary]()
	ns.Individuals = model.NewOrderedMap[*model.Individual]()
	ns.Datatypes = model.NewOrderedMap[*model.Datatype]()

	if sec, ok := f.Sections["Profile conformance"]; ok {
		ns.Conformance = mdparse.ParseContent(sec)
	}

	return ns, errs
}

func commonFields(f *mdparse.File, c common, name, iri string) model.Common {
	return model.Common{
		Name:        name,
		FQName:      "/" + name,
		NS:          name,
		License:     f.License,
		Summary:     c.summary,
		Description: c.description,
		IRI:         iri,
		Metadata:    metadataAsStrings(c.metadata),
		Pos:         f.NamePos,
	}
}

func metadataAsStrings(m *model.OrderedMap[string]) map[string]string {
	out := make(map[string]string, m.Len())
	m.Each(func(k, v string) { out[k] = v })
	return out
}
