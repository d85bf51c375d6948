package main

import (
	"github.com/spf13/cobra"

	"github.com/bjaus/strfmt"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return strfmt.Fprintf(a.stdout, "%s\n", versionString())
		},
	}
}
