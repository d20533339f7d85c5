package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/anything-list/internal/service"
	"github.com/MKhiriev/anything-list/models"
)

func newBindingCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "binding",
		Short: "Show or change the cloud account this device's lists are bound to",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the signed-in and the bound account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, runBindingStatus)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "preview",
		Short: "Show what switching to the signed-in account would change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				preview, err := s.app.Services.BindingService.PreviewSwitchToCurrentAccount(s.ctx)
				if err != nil {
					return err
				}
				return s.out.result(preview, func(w io.Writer) { writePreview(w, preview) })
			})
		},
	})

	var assumeYes bool
	switchCmd := &cobra.Command{
		Use:   "switch",
		Short: "Bind local lists to the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, opts, func(s *session) error {
				return runBindingSwitch(s, assumeYes)
			})
		},
	}
	switchCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")
	cmd.AddCommand(switchCmd)

	return cmd
}

type bindingStatus struct {
	models.BindingState
	CanSyncWithCurrentAccount bool `json:"can_sync_with_current_account"`
	IsBoundAccountMismatch    bool `json:"is_bound_account_mismatch"`
}

func runBindingStatus(s *session) error {
	state, err := s.app.Services.BindingService.FetchBindingState(s.ctx)
	if err != nil {
		return err
	}

	status := bindingStatus{
		BindingState:              state,
		CanSyncWithCurrentAccount: state.CanSyncWithCurrentAccount(),
		IsBoundAccountMismatch:    state.IsBoundAccountMismatch(),
	}
	return s.out.result(status, func(w io.Writer) {
		fmt.Fprintf(w, "Current account: %s\n", orNone(state.CurrentAccountID))
		fmt.Fprintf(w, "Bound account:   %s\n", orNone(state.BoundAccountID))
		fmt.Fprintf(w, "Sync allowed:    %s\n", yesNo(status.CanSyncWithCurrentAccount))
		if status.IsBoundAccountMismatch {
			fmt.Fprintln(w, "Local lists belong to another account. Run 'anything binding switch' to rebind them.")
		}
	})
}

// runBindingSwitch previews first so the user confirms exactly what will be
// written. A preview without a signed-in account is refused.
func runBindingSwitch(s *session, assumeYes bool) error {
	preview, err := s.app.Services.BindingService.PreviewSwitchToCurrentAccount(s.ctx)
	if err != nil {
		return err
	}
	if preview.CurrentAccountID == nil {
		return service.ErrNoCurrentAccount
	}

	warning := ""
	if preview.PreviousBoundAccountID != nil && *preview.PreviousBoundAccountID != *preview.CurrentAccountID {
		warning = fmt.Sprintf("Local lists are bound to %s. They will sync with %s from now on.",
			*preview.PreviousBoundAccountID, *preview.CurrentAccountID)
	}

	ok, err := s.confirm(assumeYes, fmt.Sprintf("Bind local lists to account %s?", *preview.CurrentAccountID), warning)
	if err != nil {
		return err
	}
	if !ok {
		s.out.line("Cancelled.")
		return nil
	}

	switched, err := s.app.Services.BindingService.SwitchBindingToCurrentAccount(s.ctx)
	if err != nil {
		return err
	}
	s.logger.Info().Str("bound_account_id", orNone(switched.TargetBoundAccountID)).Msg("binding switched")

	return s.out.result(switched, func(w io.Writer) {
		fmt.Fprintf(w, "Bound to %s.\n", orNone(switched.TargetBoundAccountID))
	})
}

func writePreview(w io.Writer, p models.SwitchPreview) {
	fmt.Fprintf(w, "Current account:  %s\n", orNone(p.CurrentAccountID))
	fmt.Fprintf(w, "Bound now:        %s\n", orNone(p.PreviousBoundAccountID))
	fmt.Fprintf(w, "Bound after:      %s\n", orNone(p.TargetBoundAccountID))
	fmt.Fprintf(w, "Sync after:       %s\n", yesNo(p.WillEnableSync))
}
