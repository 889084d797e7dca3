package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/svnext/cmd/svnext"
	"github.com/arthur-debert/svnext/pkg/errors"
	"github.com/arthur-debert/svnext/pkg/logging"
	"github.com/arthur-debert/svnext/pkg/style"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := svnext.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger := logging.WithFields(errors.GetErrorDetails(err))
		logger.Debug().
			Str("code", string(errors.GetErrorCode(err))).
			Msg("Command failed")
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		stop()
		os.Exit(1)
	}
}
