package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/anything-list/internal/service"
	"github.com/MKhiriev/anything-list/models"
)

func newListsCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Show every list with its summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				overviews, err := s.app.Services.CollectionService.List(s.ctx)
				if err != nil {
					return err
				}
				return s.out.result(overviews, func(w io.Writer) { writeOverviews(w, overviews) })
			})
		},
	}
}

func writeOverviews(w io.Writer, overviews []models.CollectionOverview) {
	if len(overviews) == 0 {
		fmt.Fprintln(w, "No lists yet. Create one with 'anything library create' or 'anything import template'.")
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "ITEMS", "FILLED", "URLS", "LAST EXECUTED", "UPDATED")
	for _, o := range overviews {
		t.Row(
			o.ID,
			o.Title,
			strconv.Itoa(o.Summary.ItemCount),
			o.Summary.CompletionText(),
			strconv.Itoa(o.Summary.URLCount),
			formatOptionalTime(o.Summary.LatestExecutedAt),
			formatOptionalTime(o.Summary.LatestUpdatedAt),
		)
	}
	fmt.Fprintln(w, t.String())
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func newDeleteCommand(opts *RootOptions) *cobra.Command {
	var assumeYes bool
	cmd := &cobra.Command{
		Use:   "delete <collection-id>",
		Short: "Delete a list together with its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				ok, err := s.confirm(assumeYes, "Delete list "+args[0]+"?", "Its items are deleted too.")
				if err != nil {
					return err
				}
				if !ok {
					s.out.line("Cancelled.")
					return nil
				}

				if err = s.app.Services.CollectionService.Delete(s.ctx, args[0]); err != nil {
					return err
				}
				s.out.line("Deleted %s.", args[0])
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newCheckCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report duplicate ids, orphan items and unreadable records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				report, err := s.app.Services.ConsistencyService.Check(s.ctx)
				if err != nil {
					return err
				}
				if report.HasIssues() {
					s.logger.Warn().Str("func", "check").
						Int("orphan_items", report.OrphanItems).
						Int("duplicate_collection_ids", report.DuplicateCollectionIDs).
						Msg("local data has consistency issues")
				}
				return s.out.result(report, func(w io.Writer) { fmt.Fprintln(w, report.String()) })
			})
		},
	}
}

func newClearCommand(opts *RootOptions) *cobra.Command {
	var assumeYes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every local list and item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				ok, err := s.confirm(assumeYes, "Delete all local lists?", "This cannot be undone.")
				if err != nil {
					return err
				}
				if !ok {
					s.out.line("Cancelled.")
					return nil
				}

				if err = s.app.Services.CollectionService.ClearAll(s.ctx); err != nil {
					return err
				}
				s.out.line("All local lists deleted.")
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newLibraryCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Built-in list templates",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show the built-in templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			library := service.TemplateLibrary()
			return newPrinter(cmd.OutOrStdout(), opts.Format).result(library, func(w io.Writer) {
				for i, doc := range library {
					fmt.Fprintf(w, "%d  %s", i, doc.Title)
					if doc.Subtitle != "" {
						fmt.Fprintf(w, " - %s", doc.Subtitle)
					}
					fmt.Fprintln(w)
				}
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create [index]",
		Short: "Create a list from a built-in template; asks which one when no index is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				index, err := s.libraryIndex(args)
				if err != nil {
					return err
				}

				id, err := s.app.Services.CollectionService.CreateFromLibrary(s.ctx, index)
				if err != nil {
					return err
				}
				return s.out.result(map[string]string{"collection_id": id}, func(w io.Writer) {
					fmt.Fprintf(w, "Created list %s.\n", id)
				})
			})
		},
	})

	return cmd
}

func (s *session) libraryIndex(args []string) (int, error) {
	if len(args) == 1 {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an index", service.ErrTemplateNotFound, args[0])
		}
		return index, nil
	}

	library := service.TemplateLibrary()
	titles := make([]string, len(library))
	for i, doc := range library {
		titles[i] = doc.Title
	}
	return s.prompter().Pick(s.ctx, "Choose a template", titles)
}
