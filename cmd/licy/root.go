package main

import (
	"errors"
	"os"

	"github.com/Masterminds/log-go"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rancher-sandbox/licy/pkg/action"
)

var globalUsage = `Usage: licy command

A license compliance checker built on SPDX-style license expressions.
`

func newRootCmd(logger log.Logger, args []string) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:          "licy",
		Short:        "A license compliance checker built on SPDX-style license expressions",
		Long:         globalUsage,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	settings.AddFlags(flags)

	actionConfig := action.NewConfig(settings, logger)

	cmd.AddCommand(
		newCheckCmd(actionConfig, logger),
		newVerifyCmd(actionConfig, logger),
		newListCmd(actionConfig, logger),
		newVersionCmd(logger),
	)

	flags.ParseErrorsWhitelist.UnknownFlags = true
	err := flags.Parse(args)

	if err != nil && !errors.Is(err, pflag.ErrHelp) {
		log.Errorf("failed while parsing flags for %s: %s", args, err)

		os.Exit(1)
	}

	if settings.NoColors {
		color.NoColor = true // disable colorized output
	}

	return cmd, nil
}
