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

var propertyAllowedKeys = []string{"name", "Nature", "Range"}
var propertyRequiredKeys = []string{"name", "Nature", "Range"}

// LoadProperty loads a Properties/<name>.md file into a Property entity.
func LoadProperty(f *mdparse.File, ns string, nsIRI string) (*model.Property, diag.List) {
	var errs diag.List
	c, cErrs, ok := loadCommon(f)
	errs.Extend(cErrs)
	if !ok {
		return nil, errs
	}
	errs.Extend(checkMetadataKeys(f, c.metadata, propertyAllowedKeys, propertyRequiredKeys))
	errs.Extend(checkNameAgreement(f, c.metadata))

	p := &model.Property{
		Common: commonFields(f, c, f.Name, synthIRI(nsIRI, f.Name)),
	}
	p.Common.NS = ns
	p.Common.FQName = "/" + ns + "/" + f.Name

	if nature, ok := c.metadata.Get("Nature"); ok {
		switch nature {
		case string(model.ObjectProperty), string(model.DataProperty):
			p.Nature = model.Nature(nature)
		default:
			errs.Addf(f.NamePos, diag.Schema, "invalid Nature %q, expected ObjectProperty or DataProperty", nature)
		}
	}
	if rng, ok := c.metadata.Get("Range"); ok {
		p.Range = rng
	}

	return p, errs
}
