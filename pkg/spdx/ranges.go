/*
Copyright SUSE LLC.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package spdx

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// A family is a run of versioned licenses that an "or later" expression
// walks upward: GPL-2.0+ covers GPL-2.0 and GPL-3.0 but not GPL-1.0.
type family struct {
	base     string
	versions []string
}

var families = []family{
	{base: "AGPL", versions: []string{"1.0", "3.0"}},
	{base: "APSL", versions: []string{"1.0", "1.1", "1.2", "2.0"}},
	{base: "Apache", versions: []string{"1.0", "1.1", "2.0"}},
	{base: "Artistic", versions: []string{"1.0", "2.0"}},
	{base: "CC-BY", versions: []string{"3.0", "4.0"}},
	{base: "CC-BY-SA", versions: []string{"3.0", "4.0"}},
	{base: "CDDL", versions: []string{"1.0", "1.1"}},
	{base: "CECILL", versions: []string{"1.0", "1.1", "2.0", "2.1"}},
	{base: "EFL", versions: []string{"1.0", "2.0"}},
	{base: "EPL", versions: []string{"1.0", "2.0"}},
	{base: "EUPL", versions: []string{"1.0", "1.1", "1.2"}},
	{base: "GFDL", versions: []string{"1.1", "1.2", "1.3"}},
	{base: "GPL", versions: []string{"1.0", "2.0", "3.0"}},
	{base: "LGPL", versions: []string{"2.0", "2.1", "3.0"}},
	{base: "MPL", versions: []string{"1.0", "1.1", "2.0"}},
	{base: "OFL", versions: []string{"1.0", "1.1"}},
	{base: "OSL", versions: []string{"1.0", "1.1", "2.0", "2.1", "3.0"}},
	{base: "ZPL", versions: []string{"1.1", "2.0", "2.1"}},
}

// rangeIndex maps every family member to the ordered members at or after it.
var rangeIndex = make(map[LicenseID][]LicenseID)

func init() {
	for _, fam := range families {
		parsed := make([]*semver.Version, len(fam.versions))
		for i, raw := range fam.versions {
			v, err := semver.NewVersion(raw)
			if err != nil {
				panic(fmt.Sprintf("spdx: family %s carries unparseable version %q", fam.base, raw))
			}
			parsed[i] = v
		}
		sort.Slice(parsed, func(i, j int) bool { return parsed[i].LessThan(parsed[j]) })

		members := make([]LicenseID, len(parsed))
		for i, v := range parsed {
			members[i] = LicenseID(fmt.Sprintf("%s-%s", fam.base, v.Original()))
		}
		for i, id := range members {
			if _, ok := licenseIndex[id]; !ok {
				panic(fmt.Sprintf("spdx: family member %s is not a registered license", id))
			}
			rangeIndex[id] = members[i:]
		}
	}
}

// LicenseRange returns the ordered licenses an "or later" expression on id
// covers: id itself and the later members of its family. A registered
// license outside every family ranges to itself alone; an unregistered
// identifier has an empty range.
func LicenseRange(id LicenseID) []LicenseID {
	if members, ok := rangeIndex[id]; ok {
		return members
	}
	if _, ok := licenseIndex[id]; ok {
		return []LicenseID{id}
	}
	return nil
}
