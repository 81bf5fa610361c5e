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
	"bufio"
	"io"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"

	"github.com/rancher-sandbox/licy/pkg/expression"
	"github.com/rancher-sandbox/licy/pkg/eyecandy"
	"github.com/rancher-sandbox/licy/pkg/output"
)

// Verify checks every package of a manifest against a policy.
//
// A manifest is a plain-text file with one package per line, the name
// followed by its license expression, shell-quoted when it contains
// spaces:
//
//	zlib Zlib
//	ridley "MIT AND GPL-2.0"
//	# comments and blank lines are skipped
type Verify struct {
	*Config

	// Policy is the license expression listing what is allowed.
	Policy string
}

// NewVerify creates a new Verify object with the given configuration.
func NewVerify(cfg *Config) *Verify {
	return &Verify{Config: cfg}
}

// VerifyEntry is the verdict for one manifest line.
type VerifyEntry struct {
	Name      string `json:"name" yaml:"name"`
	Package   string `json:"package" yaml:"package"`
	Satisfied bool   `json:"satisfied" yaml:"satisfied"`
}

// VerifyResult aggregates the verdicts of a whole manifest.
type VerifyResult struct {
	Policy  string        `json:"policy" yaml:"policy"`
	Entries []VerifyEntry `json:"entries" yaml:"entries"`
	Failed  int           `json:"failed" yaml:"failed"`

	noEmojis bool
}

// Run verifies the manifest read from r against the policy.
func (v *Verify) Run(r io.Reader) (*VerifyResult, error) {
	policy, err := expression.Parse(v.Policy)
	if err != nil {
		return nil, errors.Wrap(err, "invalid policy expression")
	}

	result := &VerifyResult{
		Policy:   policy.String(),
		Entries:  []VerifyEntry{},
		noEmojis: v.Settings.NoEmojis,
	}

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		words, err := shellwords.Parse(line)
		if err != nil {
			return nil, errors.Wrapf(err, "manifest line %d", lineno)
		}
		if len(words) != 2 {
			return nil, errors.Errorf("manifest line %d: want a name and a license expression, got %d words", lineno, len(words))
		}
		name, pkgExpr := words[0], words[1]

		pkg, err := expression.Parse(pkgExpr)
		if err != nil {
			return nil, errors.Wrapf(err, "manifest line %d: package %s", lineno, name)
		}
		for _, ref := range expression.References(pkg) {
			v.Logger.Warnf(eyecandy.ESPrintf(v.Settings.NoEmojis,
				":warning: package %s: %q is not a registered license identifier", name, ref))
		}

		entry := VerifyEntry{
			Name:      name,
			Package:   pkg.String(),
			Satisfied: expression.Satisfies(pkg, policy),
		}
		if !entry.Satisfied {
			result.Failed++
			v.Logger.Errorf(eyecandy.ESPrintf(v.Settings.NoEmojis,
				":cross_mark: package %s violates the policy: %s", name, entry.Package))
		} else if v.Settings.Verbose {
			v.Logger.Infof(eyecandy.ESPrintf(v.Settings.NoEmojis,
				":heavy_check_mark: package %s: %s", name, entry.Package))
		}
		result.Entries = append(result.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading manifest")
	}

	return result, nil
}

// WriteTable prints one row per manifest entry.
func (r *VerifyResult) WriteTable(out io.Writer) error {
	table := uitable.New()
	table.AddRow("NAME", "PACKAGE", "STATUS")
	for _, e := range r.Entries {
		table.AddRow(e.Name, e.Package, eyecandy.Status(e.Satisfied, r.noEmojis))
	}
	return output.EncodeTable(out, table)
}

func (r *VerifyResult) WriteJSON(out io.Writer) error {
	return output.EncodeJSON(out, r)
}

func (r *VerifyResult) WriteYAML(out io.Writer) error {
	return output.EncodeYAML(out, r)
}
