package syncer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// chunkSize is the fixed transfer block size. Progress is reported
// after every chunk in both directions.
const chunkSize = 1024

// download streams the remote file into the local path and, only after
// all data is on disk, moves the local mtime back to the remote's so
// the next run sees the pair as in sync. On a mid-stream error the
// partial file's timestamp is left unreconciled and the error
// propagates; the next run then re-evaluates the target from scratch.
func (s *Syncer) download(ctx context.Context, t Target, remoteTime int64) error {
	size, err := s.session.Size(t.RemotePath)
	if err != nil {
		return fmt.Errorf("querying size of %s: %w", t.RemotePath, err)
	}

	src, err := s.session.Retrieve(t.RemotePath)
	if err != nil {
		return fmt.Errorf("opening download stream for %s: %w", t.RemotePath, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(t.LocalPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", t.LocalPath, err)
	}

	s.reporter.Start(size, filepath.Base(t.LocalPath))
	err = copyChunks(ctx, dst, src, s.reporter)
	s.reporter.Finish()

	if cerr := dst.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return fmt.Errorf("downloading %s: %w", t.RemotePath, err)
	}

	// Timestamp reconciliation is strictly last, after the data is
	// fully written.
	mt := time.Unix(remoteTime, 0)
	if err := os.Chtimes(t.LocalPath, mt, mt); err != nil {
		return fmt.Errorf("setting mtime on %s: %w", t.LocalPath, err)
	}

	return nil
}

// upload streams the local file to the remote path, then reconciles the
// local mtime. The card has no MFMT command, so the server stamps the
// upload with its own clock; re-querying that time and rewriting the
// local mtime to match is what keeps the next run from re-uploading the
// same unchanged file forever.
func (s *Syncer) upload(ctx context.Context, t Target) error {
	info, err := os.Stat(t.LocalPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", t.LocalPath, err)
	}

	src, err := os.Open(t.LocalPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", t.LocalPath, err)
	}

	s.reporter.Start(info.Size(), filepath.Base(t.LocalPath))
	err = s.session.Store(t.RemotePath, &chunkReader{ctx: ctx, r: src, reporter: s.reporter})
	s.reporter.Finish()

	if cerr := src.Close(); err == nil {
		err = cerr
	}

	if err != nil {
		return fmt.Errorf("uploading to %s: %w", t.RemotePath, err)
	}

	remote, err := s.session.ModTime(t.RemotePath)
	if err != nil {
		return fmt.Errorf("querying mtime of %s after upload: %w", t.RemotePath, err)
	}

	mt := time.Unix(remote.Unix(), 0)
	if err := os.Chtimes(t.LocalPath, mt, mt); err != nil {
		return fmt.Errorf("setting mtime on %s: %w", t.LocalPath, err)
	}

	return nil
}

// copyChunks copies src to dst in fixed-size chunks, reporting after
// each one and checking for cancellation between chunks.
func copyChunks(ctx context.Context, dst io.Writer, src io.Reader, rep Reporter) error {
	buf := make([]byte, chunkSize)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, rerr := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return werr
			}

			rep.Add(int64(n))
		}

		if rerr == io.EOF {
			return nil
		}

		if rerr != nil {
			return rerr
		}
	}
}

// chunkReader caps each Read at the transfer chunk size so uploads
// report progress at the same granularity as downloads, and checks for
// cancellation between chunks.
type chunkReader struct {
	ctx      context.Context
	r        io.Reader
	reporter Reporter
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}

	if len(p) > chunkSize {
		p = p[:chunkSize]
	}

	n, err := c.r.Read(p)
	if n > 0 {
		c.reporter.Add(int64(n))
	}

	return n, err
}
