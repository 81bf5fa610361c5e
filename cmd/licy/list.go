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
	"github.com/spf13/cobra"

	"github.com/rancher-sandbox/licy/pkg/action"
	"github.com/rancher-sandbox/licy/pkg/output"
)

var listHelp = `
List the registered license identifiers.
`

func newListCmd(cfg *action.Config, logger log.Logger) *cobra.Command {
	client := action.NewList(cfg)
	var outfmt output.Format

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "list the registered licenses",
		Long:    listHelp,
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := client.Run()

			// Get an io.Writer compliant logger instance at the info level.
			wInfo := logio.NewWriter(logger, log.InfoLevel)

			return outfmt.Write(wInfo, res)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&client.OSIOnly, "osi", false, "list only OSI-approved licenses")
	bindOutputFlag(cmd, &outfmt)

	return cmd
}
