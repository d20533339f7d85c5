package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type versionInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

func newVersionCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := opts.BuildInfo
			return newPrinter(cmd.OutOrStdout(), opts.Format).result(versionInfo{
				Version: info.BuildVersion(),
				Date:    info.BuildDate(),
				Commit:  info.BuildCommit(),
			}, func(w io.Writer) { fmt.Fprintln(w, info.String()) })
		},
	}
}
