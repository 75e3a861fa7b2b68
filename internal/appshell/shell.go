package appshell

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"biofx/internal/cmdutil"
	"biofx/internal/version"
)

// Main executes root with a signal-aware context and exits with the code
// derived from the returned error. It never returns.
func Main(root *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := fang.Execute(ctx, root,
		fang.WithVersion(version.Get()),
		fang.WithCommit(version.GetCommit()),
	)
	code := ExitCode(ctx, err)

	stop()
	os.Exit(code)
}

// ExitCode normalizes err into a process exit code; an interrupted run
// that otherwise succeeded still exits 130.
func ExitCode(ctx context.Context, err error) int {
	code := cmdutil.Code(err)
	if ctx.Err() != nil && code == cmdutil.ExitOK {
		code = cmdutil.ExitCanceled
	}
	return code
}
