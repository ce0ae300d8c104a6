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
	"strconv"

	"github.com/spdx/spec-compiler/diag"
	"github.com/spdx/spec-compiler/mdparse"
	"github.com/spdx/spec-compiler/model"
)

var classAllowedKeys = []string{"name", "SubclassOf", "Instantiability"}
var classRequiredKeys = []string{"name"}

// LoadClass loads a Classes/<Name>.md file into a Class entity.
func LoadClass(f *mdparse.File, ns string, nsIRI string) (*model.Class, diag.List) {
	var errs diag.List
	c, cErrs, ok := loadCommon(f)
	errs.Extend(cErrs)
	if !ok {
		return nil, errs
	}
	errs.Extend(checkMetadataKeys(f, c.metadata, classAllowedKeys, classRequiredKeys))
	errs.Extend(checkNameAgreement(f, c.metadata))

	cls := &model.Class{
		Common:          commonFields(f, c, f.Name, synthIRI(nsIRI, f.Name)),
		Instantiability: model.Concrete,
		Properties:      model.NewOrderedMap[*model.PropertyRef](),
		ExtPropRestrs:   make(map[string]*model.ExtPropRestriction),
	}
	cls.Common.NS = ns
	cls.Common.FQName = "/" + ns + "/" + f.Name

	if inst, ok := c.metadata.Get("Instantiability"); ok {
		switch inst {
		case string(model.Concrete), string(model.Abstract):
			cls.Instantiability = model.Instantiability(inst)
		default:
			errs.Addf(f.NamePos, diag.Schema, "invalid Instantiability %q, expected Concrete or Abstract", inst)
		}
	}

	subclassOf, _ := c.metadata.Get("SubclassOf")
	cls.SubclassOf = subclassOf
	if subclassOf != "" && subclassOf != "none" {
		cls.FQSuperCName = model.ExpandFQN(ns, subclassOf)
	}

	if sec, ok := f.Sections["Properties"]; ok {
		items, pErrs := mdparse.ParseNestedList(f.Filename, sec)
		errs.Extend(pErrs)
		for _, item := range items {
			ref := &model.PropertyRef{Token: item.Name, MinCount: 0, MaxCount: "*"}
			if t, ok := item.Fields.Get("type"); ok {
				ref.Type = t
			} else {
				errs.Addf(item.Pos, diag.Schema, "property %q missing required 'type' field", item.Name)
			}
			if v, ok := item.Fields.Get("minCount"); ok {
				n, err := strconv.Atoi(v)
				if err != nil || n < 0 {
					errs.Addf(item.Pos, diag.Schema, "invalid minCount %q for property %q", v, item.Name)
				} else {
					ref.MinCount = n
				}
			}
			if v, ok := item.Fields.Get("maxCount"); ok {
				if v != "*" {
					if n, err := strconv.Atoi(v); err != nil || n < 0 {
						errs.Addf(item.Pos, diag.Schema, "invalid maxCount %q for property %q", v, item.Name)
					}
				}
				ref.MaxCount = v
			}
			cls.Properties.Set(item.Name, ref)
		}
	}

	if sec, ok := f.Sections["External properties restrictions"]; ok {
		items, rErrs := mdparse.ParseNestedList(f.Filename, sec)
		errs.Extend(rErrs)
		for _, item := range items {
			restr := &model.ExtPropRestriction{}
			if v, ok := item.Fields.Get("minCount"); ok {
				n, err := strconv.Atoi(v)
				if err != nil || n < 0 {
					errs.Addf(item.Pos, diag.Schema, "invalid minCount %q in restriction %q", v, item.Name)
				} else {
					restr.MinCount = &n
				}
			}
			if v, ok := item.Fields.Get("maxCount"); ok {
				vv := v
				restr.MaxCount = &vv
			}
			if v, ok := item.Fields.Get("Description"); ok {
				vv := v
				restr.Description = &vv
			}
			cls.ExtPropRestrs[item.Name] = restr
		}
	}

	return cls, errs
}
