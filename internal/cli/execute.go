package cli

import (
	"context"
	"fmt"
)

// Execute runs the root command with args and returns the process exit code.
// Errors are printed to the command's error stream.
func Execute(ctx context.Context, opts *RootOptions, args []string) int {
	cmd := NewRootCommand(opts)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", userMessage(err))
	}
	return exitCode(err)
}
