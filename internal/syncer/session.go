package syncer

import (
	"io"
	"time"
)

//go:generate mockgen -source=session.go -destination=mock_session_test.go -package=syncer

// Session is the open transport connection the engine drives. The
// concrete implementation is ftpx.Session; tests substitute a mock.
// All calls are issued sequentially from the sync loop; Session
// implementations are not required to be safe for concurrent use.
type Session interface {
	// ModTime returns the remote file's last-modified time, second
	// granularity, UTC. An error means the path is missing remotely or
	// the reply was unparseable; it is never treated as "remote older".
	ModTime(path string) (time.Time, error)

	// Size returns the remote file's size in bytes.
	Size(path string) (int64, error)

	// Retrieve opens a download stream for the remote path.
	Retrieve(path string) (io.ReadCloser, error)

	// Store uploads r to the remote path, reading until EOF.
	Store(path string, r io.Reader) error
}
