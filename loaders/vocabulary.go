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

var vocabularyAllowedKeys = []string{"name"}
var vocabularyRequiredKeys = []string{"name"}

// LoadVocabulary loads a Vocabularies/<Name>.md file into a Vocabulary
// entity.
func LoadVocabulary(f *mdparse.File, ns string, nsIRI string) (*model.Vocabulary, diag.List) {
	var errs diag.List
	c, cErrs, ok := loadCommon(f)
	errs.Extend(cErrs)
	if !ok {
		return nil, errs
	}
	errs.Extend(checkMetadataKeys(f, c.metadata, vocabularyAllowedKeys, vocabularyRequiredKeys))
	errs.Extend(checkNameAgreement(f, c.metadata))

	v := &model.Vocabulary{
		Common:  commonFields(f, c, f.Name, synthIRI(nsIRI, f.Name)),
		Entries: model.NewOrderedMap[string](),
	}
	v.Common.NS = ns
	v.Common.FQName = "/" + ns + "/" + f.Name

	if sec, ok := f.Sections["Entries"]; ok {
		entries, eErrs := mdparse.ParseSingleList(f.Filename, sec)
		errs.Extend(eErrs)
		v.Entries = entries
	} else {
		errs.Addf(f.NamePos, diag.Structural, "missing required section 'Entries'")
	}

	return v, errs
}
