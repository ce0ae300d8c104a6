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

var datatypeAllowedKeys = []string{"name", "SubclassOf"}
var datatypeRequiredKeys = []string{"name", "SubclassOf"}

// LoadDatatype loads a Datatypes/<Name>.md file into a Datatype entity.
func LoadDatatype(f *mdparse.File, ns string, nsIRI string) (*model.Datatype, diag.List) {
	var errs diag.List
	c, cErrs, ok := loadCommon(f)
	errs.Extend(cErrs)
	if !ok {
		return nil, errs
	}
	errs.Extend(checkMetadataKeys(f, c.metadata, datatypeAllowedKeys, datatypeRequiredKeys))
	errs.Extend(checkNameAgreement(f, c.metadata))

	d := &model.Datatype{
		Common: commonFields(f, c, f.Name, synthIRI(nsIRI, f.Name)),
		Format: make(map[string]string),
	}
	d.Common.NS = ns
	d.Common.FQName = "/" + ns + "/" + f.Name

	if sub, ok := c.metadata.Get("SubclassOf"); ok {
		d.SubclassOf = sub
	}

	if sec, ok := f.Sections["Format"]; ok {
		fmtMap, fErrs := mdparse.ParseSingleList(f.Filename, sec)
		errs.Extend(fErrs)
		fmtMap.Each(func(k, v string) { d.Format[k] = v })
	}

	return d, errs
}
