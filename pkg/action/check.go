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
	"github.com/pkg/errors"

	"github.com/rancher-sandbox/licy/pkg/expression"
	"github.com/rancher-sandbox/licy/pkg/eyecandy"
	"github.com/rancher-sandbox/licy/pkg/output"
)

// Check decides whether one license expression complies with a policy.
type Check struct {
	*Config

	// Policy is the license expression listing what is allowed.
	Policy string
}

// NewCheck creates a new Check object with the given configuration.
func NewCheck(cfg *Config) *Check {
	return &Check{Config: cfg}
}

// CheckResult is the verdict for one package expression.
type CheckResult struct {
	Package      string   `json:"package" yaml:"package"`
	Policy       string   `json:"policy" yaml:"policy"`
	Satisfied    bool     `json:"satisfied" yaml:"satisfied"`
	Unregistered []string `json:"unregistered,omitempty" yaml:"unregistered,omitempty"`

	noEmojis bool
}

// Run checks the package license expression against the policy.
func (c *Check) Run(pkgExpr string) (*CheckResult, error) {
	policy, err := expression.Parse(c.Policy)
	if err != nil {
		return nil, errors.Wrap(err, "invalid policy expression")
	}
	pkg, err := expression.Parse(pkgExpr)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid license expression %q", pkgExpr)
	}

	refs := expression.References(pkg)
	for _, ref := range refs {
		c.Logger.Warnf(eyecandy.ESPrintf(c.Settings.NoEmojis,
			":warning: %q is not a registered license identifier", ref))
	}

	return &CheckResult{
		Package:      pkg.String(),
		Policy:       policy.String(),
		Satisfied:    expression.Satisfies(pkg, policy),
		Unregistered: refs,
		noEmojis:     c.Settings.NoEmojis,
	}, nil
}

// WriteTable prints the verdict as a table.
func (r *CheckResult) WriteTable(out io.Writer) error {
	table := uitable.New()
	table.AddRow("PACKAGE", "POLICY", "STATUS")
	table.AddRow(r.Package, r.Policy, eyecandy.Status(r.Satisfied, r.noEmojis))
	return output.EncodeTable(out, table)
}

func (r *CheckResult) WriteJSON(out io.Writer) error {
	return output.EncodeJSON(out, r)
}

func (r *CheckResult) WriteYAML(out io.Writer) error {
	return output.EncodeYAML(out, r)
}
