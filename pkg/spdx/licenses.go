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

// Package spdx holds the static license data the checker consults: the
// registered license identifiers with their OSI-approval flag, the
// registered exception identifiers, and the license-family ranges that
// "or later" expressions expand through.
package spdx

import "sort"

// LicenseID is a registered license identifier, e.g. "GPL-2.0".
type LicenseID string

// ExceptionID is a registered license exception identifier, e.g.
// "Classpath-exception-2.0".
type ExceptionID string

// License is one entry of the registered license table.
type License struct {
	ID          LicenseID `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	OSIApproved bool      `json:"osi_approved" yaml:"osi_approved"`
}

var licenses = []License{
	{ID: "AGPL-1.0", Name: "Affero General Public License v1.0"},
	{ID: "AGPL-3.0", Name: "GNU Affero General Public License v3.0", OSIApproved: true},
	{ID: "APSL-1.0", Name: "Apple Public Source License 1.0", OSIApproved: true},
	{ID: "APSL-1.1", Name: "Apple Public Source License 1.1", OSIApproved: true},
	{ID: "APSL-1.2", Name: "Apple Public Source License 1.2", OSIApproved: true},
	{ID: "APSL-2.0", Name: "Apple Public Source License 2.0", OSIApproved: true},
	{ID: "Apache-1.0", Name: "Apache License 1.0"},
	{ID: "Apache-1.1", Name: "Apache License 1.1", OSIApproved: true},
	{ID: "Apache-2.0", Name: "Apache License 2.0", OSIApproved: true},
	{ID: "Artistic-1.0", Name: "Artistic License 1.0", OSIApproved: true},
	{ID: "Artistic-2.0", Name: "Artistic License 2.0", OSIApproved: true},
	{ID: "BSD-2-Clause", Name: "BSD 2-Clause \"Simplified\" License", OSIApproved: true},
	{ID: "BSD-3-Clause", Name: "BSD 3-Clause \"New\" or \"Revised\" License", OSIApproved: true},
	{ID: "BSD-4-Clause", Name: "BSD 4-Clause \"Original\" or \"Old\" License"},
	{ID: "BSL-1.0", Name: "Boost Software License 1.0", OSIApproved: true},
	{ID: "CC-BY-3.0", Name: "Creative Commons Attribution 3.0 Unported"},
	{ID: "CC-BY-4.0", Name: "Creative Commons Attribution 4.0 International"},
	{ID: "CC-BY-SA-3.0", Name: "Creative Commons Attribution Share Alike 3.0 Unported"},
	{ID: "CC-BY-SA-4.0", Name: "Creative Commons Attribution Share Alike 4.0 International"},
	{ID: "CC0-1.0", Name: "Creative Commons Zero v1.0 Universal"},
	{ID: "CDDL-1.0", Name: "Common Development and Distribution License 1.0", OSIApproved: true},
	{ID: "CDDL-1.1", Name: "Common Development and Distribution License 1.1"},
	{ID: "CECILL-1.0", Name: "CeCILL Free Software License Agreement v1.0"},
	{ID: "CECILL-1.1", Name: "CeCILL Free Software License Agreement v1.1"},
	{ID: "CECILL-2.0", Name: "CeCILL Free Software License Agreement v2.0"},
	{ID: "CECILL-2.1", Name: "CeCILL Free Software License Agreement v2.1", OSIApproved: true},
	{ID: "EFL-1.0", Name: "Eiffel Forum License v1.0", OSIApproved: true},
	{ID: "EFL-2.0", Name: "Eiffel Forum License v2.0", OSIApproved: true},
	{ID: "EPL-1.0", Name: "Eclipse Public License 1.0", OSIApproved: true},
	{ID: "EPL-2.0", Name: "Eclipse Public License 2.0", OSIApproved: true},
	{ID: "EUPL-1.0", Name: "European Union Public License 1.0"},
	{ID: "EUPL-1.1", Name: "European Union Public License 1.1", OSIApproved: true},
	{ID: "EUPL-1.2", Name: "European Union Public License 1.2", OSIApproved: true},
	{ID: "GFDL-1.1", Name: "GNU Free Documentation License v1.1"},
	{ID: "GFDL-1.2", Name: "GNU Free Documentation License v1.2"},
	{ID: "GFDL-1.3", Name: "GNU Free Documentation License v1.3"},
	{ID: "GPL-1.0", Name: "GNU General Public License v1.0 only"},
	{ID: "GPL-2.0", Name: "GNU General Public License v2.0 only", OSIApproved: true},
	{ID: "GPL-3.0", Name: "GNU General Public License v3.0 only", OSIApproved: true},
	{ID: "ICU", Name: "ICU License"},
	{ID: "IPL-1.0", Name: "IBM Public License v1.0", OSIApproved: true},
	{ID: "ISC", Name: "ISC License", OSIApproved: true},
	{ID: "LGPL-2.0", Name: "GNU Library General Public License v2 only", OSIApproved: true},
	{ID: "LGPL-2.1", Name: "GNU Lesser General Public License v2.1 only", OSIApproved: true},
	{ID: "LGPL-3.0", Name: "GNU Lesser General Public License v3.0 only", OSIApproved: true},
	{ID: "MIT", Name: "MIT License", OSIApproved: true},
	{ID: "MPL-1.0", Name: "Mozilla Public License 1.0", OSIApproved: true},
	{ID: "MPL-1.1", Name: "Mozilla Public License 1.1", OSIApproved: true},
	{ID: "MPL-2.0", Name: "Mozilla Public License 2.0", OSIApproved: true},
	{ID: "MS-PL", Name: "Microsoft Public License", OSIApproved: true},
	{ID: "MS-RL", Name: "Microsoft Reciprocal License", OSIApproved: true},
	{ID: "NCSA", Name: "University of Illinois/NCSA Open Source License", OSIApproved: true},
	{ID: "OFL-1.0", Name: "SIL Open Font License 1.0"},
	{ID: "OFL-1.1", Name: "SIL Open Font License 1.1", OSIApproved: true},
	{ID: "OSL-1.0", Name: "Open Software License 1.0", OSIApproved: true},
	{ID: "OSL-1.1", Name: "Open Software License 1.1"},
	{ID: "OSL-2.0", Name: "Open Software License 2.0", OSIApproved: true},
	{ID: "OSL-2.1", Name: "Open Software License 2.1", OSIApproved: true},
	{ID: "OSL-3.0", Name: "Open Software License 3.0", OSIApproved: true},
	{ID: "OpenSSL", Name: "OpenSSL License"},
	{ID: "PostgreSQL", Name: "PostgreSQL License", OSIApproved: true},
	{ID: "Python-2.0", Name: "Python License 2.0", OSIApproved: true},
	{ID: "Ruby", Name: "Ruby License"},
	{ID: "Unlicense", Name: "The Unlicense", OSIApproved: true},
	{ID: "W3C", Name: "W3C Software Notice and License", OSIApproved: true},
	{ID: "WTFPL", Name: "Do What The F*ck You Want To Public License"},
	{ID: "X11", Name: "X11 License"},
	{ID: "ZPL-1.1", Name: "Zope Public License 1.1"},
	{ID: "ZPL-2.0", Name: "Zope Public License 2.0", OSIApproved: true},
	{ID: "ZPL-2.1", Name: "Zope Public License 2.1"},
	{ID: "Zlib", Name: "zlib License", OSIApproved: true},
}

var licenseIndex = make(map[LicenseID]License, len(licenses))

func init() {
	sort.Slice(licenses, func(i, j int) bool { return licenses[i].ID < licenses[j].ID })
	for _, l := range licenses {
		licenseIndex[l.ID] = l
	}
}

// Licenses returns every registered license, ordered by identifier.
func Licenses() []License {
	out := make([]License, len(licenses))
	copy(out, licenses)
	return out
}

// LookupLicense returns the registered license for the given identifier.
func LookupLicense(id string) (License, bool) {
	l, ok := licenseIndex[LicenseID(id)]
	return l, ok
}

// IsOSIApproved reports whether id is registered and approved by the OSI.
func IsOSIApproved(id LicenseID) bool {
	return licenseIndex[id].OSIApproved
}
