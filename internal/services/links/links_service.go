package links

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/bytedance/sonic"

	"github.com/curaious/linkfinder/internal/metrics"
	"github.com/curaious/linkfinder/internal/perrors"
	"github.com/curaious/linkfinder/internal/script"
)

// Runner executes the link-extraction script.
type Runner interface {
	Run(ctx context.Context, arg string) (*script.Outcome, error)
}

// Numbers are kept as json.Number so values round-trip unchanged.
var resultsAPI = sonic.Config{UseNumber: true}.Froze()

// LinksService turns an image URL into the script's parsed results.
type LinksService struct {
	runner Runner
}

func NewLinksService(runner Runner) *LinksService {
	return &LinksService{runner: runner}
}

// FindLinks runs the script for req.ImageURL and returns its parsed stdout.
// Every failure is a perrors.Err carrying the caller-facing payload.
func (s *LinksService) FindLinks(ctx context.Context, req *FindLinksRequest) (any, error) {
	if req == nil || req.ImageURL == "" {
		return nil, perrors.NewErrInvalidRequest("Image URL is missing", MsgNoImageURL, nil)
	}

	slog.InfoContext(ctx, "Received image URL", slog.String("image_url", req.ImageURL))
	args := map[string]interface{}{"image_url": req.ImageURL}

	outcome, err := s.runner.Run(ctx, req.ImageURL)
	if err != nil {
		if outcome == nil {
			metrics.ObserveScriptRun(metrics.OutcomeStartFailure, 0)
			return nil, perrors.NewErrInternalServerError("Unable to run script", MsgProcessImage, err, args)
		}

		// Cancelled or timed out: report whatever diagnostics were captured.
		metrics.ObserveScriptRun(metrics.OutcomeTimeout, outcome.Duration)
		args["stderr"] = string(outcome.Stderr)
		return nil, perrors.NewErrInternalServerError("Script did not finish", MsgProcessImage, err, args).
			WithDetails(string(outcome.Stderr))
	}

	slog.InfoContext(ctx, "Script completed",
		slog.String("image_url", req.ImageURL),
		slog.Int("exit_code", outcome.ExitCode),
		slog.Duration("duration", outcome.Duration),
		slog.Int("stdout_bytes", len(outcome.Stdout)),
		slog.Int("stderr_bytes", len(outcome.Stderr)),
	)

	return s.resolve(ctx, outcome, args)
}

// resolve applies the exit-code policy and parses stdout.
func (s *LinksService) resolve(ctx context.Context, outcome *script.Outcome, args map[string]interface{}) (any, error) {
	stderr := string(outcome.Stderr)
	args["exit_code"] = outcome.ExitCode
	args["stderr"] = stderr

	if !outcome.Succeeded() {
		metrics.ObserveScriptRun(metrics.OutcomeExitFailure, outcome.Duration)
		return nil, perrors.NewErrInternalServerError("Script exited with non-zero code", MsgProcessImage, nil, args).
			WithDetails(stderr)
	}

	if len(outcome.Stderr) > 0 {
		slog.WarnContext(ctx, "Script wrote to stderr on success", slog.String("stderr", stderr))
	}

	stdout := bytes.TrimSpace(outcome.Stdout)
	if len(stdout) == 0 {
		metrics.ObserveScriptRun(metrics.OutcomeEmptyOutput, outcome.Duration)
		return nil, perrors.NewErrInternalServerError("Script produced no output", MsgProcessImage, nil, args).
			WithDetails(stderr)
	}

	var results any
	if err := resultsAPI.Unmarshal(stdout, &results); err != nil {
		metrics.ObserveScriptRun(metrics.OutcomeParseFailure, outcome.Duration)
		args["stdout"] = string(outcome.Stdout)
		return nil, perrors.NewErrInternalServerError("Unable to parse script output", MsgParseResults, err, args)
	}

	metrics.ObserveScriptRun(metrics.OutcomeSuccess, outcome.Duration)
	slog.InfoContext(ctx, "Successfully parsed script output")
	return results, nil
}

// Encode serializes results the same way they were decoded.
func Encode(results any) ([]byte, error) {
	return resultsAPI.Marshal(results)
}
