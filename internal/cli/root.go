// Package cli implements the anything command line: account binding, list
// import and export, backup restore, consistency checks and the local API
// server.
package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/anything-list/internal/config"
	"github.com/MKhiriev/anything-list/internal/tui"
	"github.com/MKhiriev/anything-list/models"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var validFormats = []string{FormatText, FormatJSON}

// RootOptions holds the global flags and the injectable collaborators of
// every command.
type RootOptions struct {
	Flags  config.Flags
	Format string

	BuildInfo models.AppBuildInfo

	// Prompter asks for confirmations. Nil means interactive terminal
	// prompts on stdin.
	Prompter tui.Prompter

	// Clipboard copies exported documents. Nil means the system clipboard.
	Clipboard func(text string) error
}

// NewRootCommand creates the root command with every subcommand attached.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "anything",
		Short:         "Anything - lists built from templates",
		Long:          "Manage template based lists stored on this device: import, export, restore and account binding.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(validFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			return nil
		},
	}

	opts.Flags.Register(cmd.PersistentFlags())
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "Output format (text|json)")

	cmd.AddCommand(newBindingCommand(opts))
	cmd.AddCommand(newImportCommand(opts))
	cmd.AddCommand(newRestoreCommand(opts))
	cmd.AddCommand(newExportCommand(opts))
	cmd.AddCommand(newListsCommand(opts))
	cmd.AddCommand(newDeleteCommand(opts))
	cmd.AddCommand(newCheckCommand(opts))
	cmd.AddCommand(newClearCommand(opts))
	cmd.AddCommand(newLibraryCommand(opts))
	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newVersionCommand(opts))

	return cmd
}
