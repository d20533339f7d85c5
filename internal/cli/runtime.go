package cli

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/anything-list/internal/client"
	"github.com/MKhiriev/anything-list/internal/config"
	"github.com/MKhiriev/anything-list/internal/logger"
	"github.com/MKhiriev/anything-list/internal/tui"
	"github.com/MKhiriev/anything-list/internal/utils"
)

const loggerRole = "anything-cli"

// session is one command invocation with an open application.
type session struct {
	app    *client.App
	ctx    context.Context
	logger *logger.Logger
	out    *printer
	opts   *RootOptions
	cmd    *cobra.Command
}

// withSession loads the configuration, opens the application and runs fn.
// The application is closed when fn returns.
func withSession(cmd *cobra.Command, opts *RootOptions, fn func(s *session) error) error {
	cfg, err := config.GetStructuredConfig(&opts.Flags)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log := logger.NewClientLogger(loggerRole, cfg.Log.File, cfg.Log.Level)
	log = &logger.Logger{Logger: log.With().Str("command", cmd.CommandPath()).Logger()}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	traceID := uuid.NewString()
	ctx = log.With().Str("trace_id", traceID).Logger().WithContext(utils.WithTraceID(ctx, traceID))

	app, err := client.NewApp(ctx, cfg, opts.BuildInfo, log)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing local storage")
		}
	}()

	return fn(&session{
		app:    app,
		ctx:    ctx,
		logger: log,
		out:    newPrinter(cmd.OutOrStdout(), opts.Format),
		opts:   opts,
		cmd:    cmd,
	})
}

func (s *session) prompter() tui.Prompter {
	if s.opts.Prompter != nil {
		return s.opts.Prompter
	}
	return tui.New(s.cmd.InOrStdin(), s.cmd.ErrOrStderr(), s.logger)
}

// confirm asks unless assumeYes is set.
func (s *session) confirm(assumeYes bool, title, warning string) (bool, error) {
	if assumeYes {
		return tui.AutoConfirm{}.Confirm(s.ctx, title, warning)
	}
	return s.prompter().Confirm(s.ctx, title, warning)
}

func (s *session) copyToClipboard(text string) error {
	if s.opts.Clipboard != nil {
		return s.opts.Clipboard(text)
	}
	return clipboard.WriteAll(text)
}
