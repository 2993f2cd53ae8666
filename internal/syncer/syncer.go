// Package syncer implements the decision-and-transfer engine: for each
// target, compare last-modified timestamps and download, upload, or do
// nothing, then reconcile timestamps so both sides converge.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/fatih/color"
)

// Options configures a Syncer. Zero values get sensible defaults.
type Options struct {
	// Out receives the per-target summary lines. Defaults to os.Stdout.
	Out io.Writer

	// Reporter receives per-chunk transfer progress. Defaults to a
	// no-op reporter.
	Reporter Reporter

	// BasicOutput disables summary coloring.
	BasicOutput bool
}

// Syncer drives the per-run loop over an ordered, immutable target
// list. Targets are processed strictly sequentially over the one open
// session; every target is independent and nothing accumulates across
// them except outcome counters.
type Syncer struct {
	session  Session
	targets  []Target
	out      io.Writer
	reporter Reporter
	basic    bool
	logger   *slog.Logger
}

// New creates a Syncer over an open session and a prebuilt target list.
func New(session Session, targets []Target, opts Options, logger *slog.Logger) *Syncer {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.Reporter == nil {
		opts.Reporter = nopReporter{}
	}

	return &Syncer{
		session:  session,
		targets:  targets,
		out:      opts.Out,
		reporter: opts.Reporter,
		basic:    opts.BasicOutput,
		logger:   logger,
	}
}

// Result counts per-target outcomes for one run.
type Result struct {
	Downloaded int
	Uploaded   int
	InSync     int
	Failed     int
}

// Run processes every target in order. A failure on one target is
// logged with the offending remote path and the loop continues;
// cancellation stops further targets immediately and is returned.
func (s *Syncer) Run(ctx context.Context) (Result, error) {
	var res Result

	for i, t := range s.targets {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		decision, err := s.syncOne(ctx, t, i, len(s.targets))
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return res, err
			}

			res.Failed++
			s.logger.Error("sync failed",
				slog.String("remote", t.RemotePath),
				slog.String("error", err.Error()),
			)
			fmt.Fprintf(s.out, "Error syncing file %s: %v\n", t.RemotePath, err)

			continue
		}

		switch decision {
		case Download:
			res.Downloaded++
		case Upload:
			res.Uploaded++
		default:
			res.InSync++
		}
	}

	return res, nil
}

// syncOne runs the query -> decide -> execute sequence for one target.
func (s *Syncer) syncOne(ctx context.Context, t Target, idx, total int) (Decision, error) {
	remote, err := s.session.ModTime(t.RemotePath)
	if err != nil {
		return NoOp, fmt.Errorf("querying mtime of %s: %w", t.RemotePath, err)
	}

	// Both sides are coerced to whole-second epoch values before
	// comparison; the wire format carries nothing finer.
	rmt := remote.Unix()

	lmt, localExists, err := localModTime(t.LocalPath)
	if err != nil {
		return NoOp, fmt.Errorf("reading local mtime of %s: %w", t.LocalPath, err)
	}

	decision := Decide(rmt, lmt, localExists)

	s.printSummary(t, idx, total, lmt, localExists, rmt, decision)
	s.logger.Debug("decided",
		slog.String("name", t.Name),
		slog.String("action", decision.String()),
		slog.Int64("remote_mtime", rmt),
		slog.Int64("local_mtime", lmt),
	)

	switch decision {
	case Download:
		return decision, s.download(ctx, t, rmt)
	case Upload:
		return decision, s.upload(ctx, t)
	default:
		return decision, nil
	}
}

// localModTime returns the local file's mtime in epoch seconds. The
// second return is false when no local file exists yet, a condition
// distinct from "local is older".
func localModTime(path string) (int64, bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, err
	}

	return info.ModTime().Unix(), true, nil
}

// printSummary writes the one-line, pre-transfer summary:
//
//	[2/6]: 04/05/2025 18:31:02 SLUS-21274-1.bin <--> SLUS-21274-1.mc2 04/05/2025 19:00:41 | Remote is newer. Downloading...
func (s *Syncer) printSummary(t Target, idx, total int, lmt int64, localExists bool, rmt int64, decision Decision) {
	var action string

	switch {
	case decision == Download && !localExists:
		action = "No local file. Downloading..."
	case decision == Download:
		action = "Remote is newer. Downloading..."
	case decision == Upload:
		action = "Local is newer. Uploading..."
	default:
		action = "Files are in sync"
	}

	if !s.basic {
		action = colorFor(decision).Sprint(action)
	}

	fmt.Fprintf(s.out, "[%d/%d]: %s %s <--> %s %s | %s\n",
		idx+1, total,
		formatEpoch(lmt), filepath.Base(t.LocalPath),
		path.Base(t.RemotePath), formatEpoch(rmt),
		action,
	)
}

func colorFor(decision Decision) *color.Color {
	switch decision {
	case Download:
		return color.New(color.FgCyan)
	case Upload:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

// formatEpoch renders an epoch-seconds value as dd/mm/yyyy hh:mm:ss in
// local time. A missing local file shows as the epoch itself, matching
// the tool's historical output.
func formatEpoch(sec int64) string {
	return time.Unix(sec, 0).Format("02/01/2006 15:04:05")
}
