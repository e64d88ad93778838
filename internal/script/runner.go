// Package script runs the external link-extraction script as a child process.
package script

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("github.com/curaious/linkfinder/internal/script")

// Outcome is the finalized result of one script run.
type Outcome struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
	Duration time.Duration
}

// Succeeded reports whether the script exited with code zero.
func (o *Outcome) Succeeded() bool {
	return o.ExitCode == 0
}

type Config struct {
	// Interpreter runs Path. Empty means Path is executed directly.
	Interpreter string
	Path        string
	Workdir     string
	// Timeout kills the child after the given duration. Zero disables it.
	Timeout time.Duration
}

type Runner struct {
	conf Config
}

func NewRunner(conf Config) *Runner {
	return &Runner{conf: conf}
}

func (r *Runner) command(ctx context.Context, arg string) *exec.Cmd {
	var cmd *exec.Cmd
	if r.conf.Interpreter == "" {
		cmd = exec.CommandContext(ctx, r.conf.Path, arg)
	} else {
		cmd = exec.CommandContext(ctx, r.conf.Interpreter, r.conf.Path, arg)
	}
	cmd.Dir = r.conf.Workdir
	cmd.Env = os.Environ()
	killProcessGroupOnCancel(cmd)
	return cmd
}

// Run executes the script with arg as its only argument and blocks until both
// output streams are drained and the process has exited.
//
// A non-zero exit is not an error: it is reported through Outcome.ExitCode.
// An error is returned when the process could not be started or waited on, or
// when ctx ended before the process did. In the latter case the partial
// Outcome is returned alongside the context error.
func (r *Runner) Run(ctx context.Context, arg string) (*Outcome, error) {
	ctx, span := tracer.Start(ctx, "script.run")
	defer span.End()
	span.SetAttributes(attribute.String("script.path", r.conf.Path), attribute.String("script.arg", arg))

	if r.conf.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.conf.Timeout)
		defer cancel()
	}

	outcome, err := r.run(ctx, arg)
	if outcome != nil {
		span.SetAttributes(
			attribute.Int("script.exit_code", outcome.ExitCode),
			attribute.Int("script.stdout_bytes", len(outcome.Stdout)),
			attribute.Int("script.stderr_bytes", len(outcome.Stderr)),
		)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return outcome, err
}

func (r *Runner) run(ctx context.Context, arg string) (*Outcome, error) {
	cmd := r.command(ctx, arg)

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}

	slog.DebugContext(ctx, "Executing script", slog.String("command", cmd.String()))
	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}

	var stdoutBuf, stderrBuf bytes.Buffer

	// Both pipes must hit EOF before Wait, which closes them.
	var streams errgroup.Group
	streams.Go(func() error {
		_, err := io.Copy(&stdoutBuf, stdoutPipe)
		return err
	})
	streams.Go(func() error {
		_, err := io.Copy(&stderrBuf, stderrPipe)
		return err
	})
	copyErr := streams.Wait()

	err = cmd.Wait()
	outcome := &Outcome{
		Stdout:   stdoutBuf.Bytes(),
		Stderr:   stderrBuf.Bytes(),
		Duration: time.Since(start),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		outcome.ExitCode = -1
		return outcome, ctxErr
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("wait: %w", err)
		}
		outcome.ExitCode = exitErr.ExitCode()
	}

	if copyErr != nil {
		return nil, fmt.Errorf("read output: %w", copyErr)
	}

	return outcome, nil
}
