package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/anything-list/internal/codec"
	"github.com/MKhiriev/anything-list/models"
)

func newImportCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Create a list from a template or snapshot file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "template <file>",
		Short: "Create an empty list from a template (.json, .yaml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read template file: %w", err)
			}
			return withSession(cmd, opts, func(s *session) error {
				result, err := s.app.Services.ImportService.ImportTemplate(s.ctx, data, codec.FormatFromPath(args[0]))
				if err != nil {
					return err
				}
				return s.out.result(result, func(w io.Writer) { writeImportResult(w, "Imported template", result) })
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "snapshot <file>",
		Short: "Create a list with its items from a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read snapshot file: %w", err)
			}
			return withSession(cmd, opts, func(s *session) error {
				result, err := s.app.Services.ImportService.ImportSnapshot(s.ctx, data)
				if err != nil {
					return err
				}
				return s.out.result(result, func(w io.Writer) { writeImportResult(w, "Imported snapshot", result) })
			})
		},
	})

	return cmd
}

func newRestoreCommand(opts *RootOptions) *cobra.Command {
	var assumeYes bool
	cmd := &cobra.Command{
		Use:   "restore <file>",
		Short: "Replace all local lists with a backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read backup file: %w", err)
			}
			return withSession(cmd, opts, func(s *session) error {
				ok, err := s.confirm(assumeYes, "Restore backup "+args[0]+"?",
					"Every list and item on this device will be replaced.")
				if err != nil {
					return err
				}
				if !ok {
					s.out.line("Cancelled.")
					return nil
				}

				result, err := s.app.Services.ImportService.RestoreBackup(s.ctx, data)
				if err != nil {
					return err
				}
				return s.out.result(result, func(w io.Writer) { writeImportResult(w, "Restored backup", result) })
			})
		},
	}
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

type exportFlags struct {
	output    string
	clipboard bool
}

func newExportCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a template, snapshot or full backup",
	}

	var templateFlags, snapshotFlags, backupFlags exportFlags

	templateCmd := &cobra.Command{
		Use:   "template <collection-id>",
		Short: "Export the template of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				doc, err := s.app.Services.ExportService.ExportTemplate(s.ctx, args[0])
				if err != nil {
					return err
				}
				return s.writeDocument(doc, templateFlags, codec.FormatFromPath(templateFlags.output))
			})
		},
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot <collection-id>",
		Short: "Export a list with its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				doc, err := s.app.Services.ExportService.ExportSnapshot(s.ctx, args[0])
				if err != nil {
					return err
				}
				return s.writeDocument(doc, snapshotFlags, codec.FormatJSON)
			})
		},
	}

	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Export every list and item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				doc, err := s.app.Services.ExportService.ExportBackup(s.ctx)
				if err != nil {
					return err
				}
				return s.writeDocument(doc, backupFlags, codec.FormatJSON)
			})
		},
	}

	for _, c := range []struct {
		cmd   *cobra.Command
		flags *exportFlags
	}{{templateCmd, &templateFlags}, {snapshotCmd, &snapshotFlags}, {backupCmd, &backupFlags}} {
		c.cmd.Flags().StringVarP(&c.flags.output, "output", "o", "", "Write to file instead of stdout")
		c.cmd.Flags().BoolVar(&c.flags.clipboard, "clipboard", false, "Also copy the document to the clipboard")
		cmd.AddCommand(c.cmd)
	}

	return cmd
}

// writeDocument encodes doc and writes it to the output file or stdout.
func (s *session) writeDocument(doc any, flags exportFlags, format codec.Format) error {
	data, err := codec.EncodeAs(doc, format)
	if err != nil {
		return err
	}

	if flags.clipboard {
		if err = s.copyToClipboard(string(data)); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}

	if flags.output == "" {
		_, err = fmt.Fprintln(s.out.w, string(data))
		return err
	}

	if err = os.WriteFile(flags.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", flags.output, err)
	}
	s.logger.Info().Str("path", flags.output).Int("bytes", len(data)).Msg("document exported")
	return s.out.result(map[string]string{"path": flags.output}, func(w io.Writer) {
		fmt.Fprintf(w, "Wrote %s.\n", flags.output)
	})
}

func writeImportResult(w io.Writer, action string, r models.ImportResult) {
	fmt.Fprintf(w, "%s: %d list(s), %d item(s).\n", action, r.Collections, r.Items)
	if r.SkippedCollections > 0 || r.SkippedItems > 0 {
		fmt.Fprintf(w, "Skipped %d list(s) and %d item(s) that could not be read.\n", r.SkippedCollections, r.SkippedItems)
	}
	if r.SelectedCollectionID != nil {
		fmt.Fprintf(w, "Selected list: %s\n", *r.SelectedCollectionID)
	}
}
