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

package action

import (
	"io"

	"github.com/gosuri/uitable"

	"github.com/rancher-sandbox/licy/pkg/output"
	"github.com/rancher-sandbox/licy/pkg/spdx"
)

// List enumerates the registered licenses.
type List struct {
	*Config

	// OSIOnly limits the listing to OSI-approved licenses.
	OSIOnly bool
}

// NewList creates a new List object with the given configuration.
func NewList(cfg *Config) *List {
	return &List{Config: cfg}
}

// ListResult is the license listing.
type ListResult struct {
	Licenses []spdx.License `json:"licenses" yaml:"licenses"`
}

// Run collects the registered licenses, ordered by identifier.
func (l *List) Run() *ListResult {
	all := spdx.Licenses()
	result := &ListResult{Licenses: make([]spdx.License, 0, len(all))}
	for _, lic := range all {
		if l.OSIOnly && !lic.OSIApproved {
			continue
		}
		result.Licenses = append(result.Licenses, lic)
	}
	return result
}

// WriteTable prints one row per license.
func (r *ListResult) WriteTable(out io.Writer) error {
	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("ID", "NAME", "OSI APPROVED")
	for _, lic := range r.Licenses {
		table.AddRow(lic.ID, lic.Name, lic.OSIApproved)
	}
	return output.EncodeTable(out, table)
}

func (r *ListResult) WriteJSON(out io.Writer) error {
	return output.EncodeJSON(out, r.Licenses)
}

func (r *ListResult) WriteYAML(out io.Writer) error {
	return output.EncodeYAML(out, r.Licenses)
}
