/*
Copyright The Helm Authors, SUSE LLC.

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

package main

import (
	"io"
	"os"

	"github.com/Masterminds/log-go"
	logio "github.com/Masterminds/log-go/io"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rancher-sandbox/licy/pkg/action"
	"github.com/rancher-sandbox/licy/pkg/output"
)

var verifyHelp = `
Verify a manifest of packages against a policy.

The manifest lists one package per line, the name followed by its license
expression, shell-quoted when it contains spaces:

  zlib Zlib
  ridley "MIT AND GPL-2.0"
  # comments and blank lines are skipped

Pass "-" to read the manifest from standard input. The command exits
non-zero when any package violates the policy.
`

func newVerifyCmd(cfg *action.Config, logger log.Logger) *cobra.Command {
	client := action.NewVerify(cfg)
	var outfmt output.Format

	cmd := &cobra.Command{
		Use:   "verify MANIFEST",
		Short: "verify a manifest of packages against a policy",
		Long:  verifyHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var manifest io.Reader = os.Stdin
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "unable to open manifest")
				}
				defer f.Close()
				manifest = f
			}

			res, err := client.Run(manifest)
			if err != nil {
				return err
			}

			wInfo := logio.NewWriter(logger, log.InfoLevel)
			if err := outfmt.Write(wInfo, res); err != nil {
				return err
			}

			if res.Failed > 0 {
				return errors.Errorf("%d package(s) violate the policy", res.Failed)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&client.Policy, "policy", "", "license expression listing the allowed licenses")
	cobra.CheckErr(cmd.MarkFlagRequired("policy"))
	bindOutputFlag(cmd, &outfmt)

	return cmd
}
