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
	"github.com/Masterminds/log-go"
	logio "github.com/Masterminds/log-go/io"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rancher-sandbox/licy/pkg/action"
	"github.com/rancher-sandbox/licy/pkg/output"
)

var checkHelp = `
Check a license expression against a policy.

The expression and the policy are SPDX-style license expressions:

  licy check --policy "MIT AND ISC AND Zlib" "MIT OR GPL-2.0"

The command exits non-zero when the expression violates the policy.
`

func newCheckCmd(cfg *action.Config, logger log.Logger) *cobra.Command {
	client := action.NewCheck(cfg)
	var outfmt output.Format

	cmd := &cobra.Command{
		Use:   "check EXPRESSION",
		Short: "check a license expression against a policy",
		Long:  checkHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := client.Run(args[0])
			if err != nil {
				return err
			}

			wInfo := logio.NewWriter(logger, log.InfoLevel)
			if err := outfmt.Write(wInfo, res); err != nil {
				return err
			}

			if !res.Satisfied {
				return errors.Errorf("%q violates the policy", res.Package)
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
