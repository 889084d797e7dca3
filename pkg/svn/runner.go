package svn

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/svnext/pkg/errors"
	"github.com/arthur-debert/svnext/pkg/logging"
	"github.com/rs/zerolog"
)

// Output is the captured result of a command
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Lines splits stdout into lines without their terminators
func (o Output) Lines() []string {
	if o.Stdout == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(o.Stdout, "\n"), "\n")
}

// Runner executes a command synchronously in dir
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (Output, error)
}

// ExecRunner runs commands with os/exec
type ExecRunner struct {
	logger zerolog.Logger
}

// NewExecRunner creates a runner that spawns real processes
func NewExecRunner() *ExecRunner {
	return &ExecRunner{logger: logging.GetLogger("svn.runner")}
}

// Run executes name with args in dir. A command that cannot be started or
// exits non-zero yields an ErrToolInvocation error carrying the captured
// output; the Output is returned in both cases.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (Output, error) {
	logging.LogCommand(r.logger, dir, name, args)

	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return Output{ExitCode: -1}, errors.Wrapf(err, errors.ErrToolInvocation,
				"working directory does not exist: %s", dir)
		}
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	out := Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if cmd.ProcessState != nil {
		out.ExitCode = cmd.ProcessState.ExitCode()
	}

	if stdout.Len() > 0 {
		r.logger.Trace().Str("output", out.Stdout).Msg("Command stdout")
	}

	if err != nil {
		if cmd.ProcessState == nil {
			out.ExitCode = -1
		}
		r.logger.Error().
			Err(err).
			Str("command", name).
			Strs("args", args).
			Str("stderr", out.Stderr).
			Msg("Command execution failed")

		return out, errors.Wrapf(err, errors.ErrToolInvocation, "%s %s failed", name, firstArg(args)).
			WithDetail("command", name).
			WithDetail("args", args).
			WithDetail("dir", dir).
			WithDetail("exitCode", out.ExitCode).
			WithDetail("stderr", strings.TrimSpace(out.Stderr))
	}

	return out, nil
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
