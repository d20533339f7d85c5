package cli

import (
	"github.com/spf13/cobra"
)

func newServeCommand(opts *RootOptions) *cobra.Command {
	var noBindingWatch bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				return s.app.Serve(s.ctx, !noBindingWatch)
			})
		},
	}
	cmd.Flags().BoolVar(&noBindingWatch, "no-binding-watch", false, "Do not poll the account status in the background")
	return cmd
}
