// Package ftpx wraps the jlaffaye FTP client in the narrow session
// surface the sync engine drives: modify-time query, size query, and
// chunk-streamable download/upload. The MemCard PRO 2 speaks plain FTP
// with second-granularity MDTM timestamps and no MFMT support.
package ftpx

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
)

const (
	defaultPort = "21"
	dialTimeout = 10 * time.Second
)

// Session is one authenticated FTP connection. It is owned by the
// caller for the lifetime of a sync run and must be closed with Quit on
// every exit path. It satisfies the sync engine's Session interface.
type Session struct {
	conn *ftp.ServerConn
}

// Dial connects and logs in. Connection and authentication failures are
// fatal to the run; there is no per-target retry of session setup.
func Dial(ctx context.Context, host, user, password string) (*Session, error) {
	addr := host
	if !strings.Contains(host, ":") {
		addr = host + ":" + defaultPort
	}

	conn, err := ftp.Dial(addr,
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(dialTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", addr, err)
	}

	if err := conn.Login(user, password); err != nil {
		_ = conn.Quit()
		return nil, fmt.Errorf("logging in as %s: %w", user, err)
	}

	return &Session{conn: conn}, nil
}

// ModTime queries the remote file's last-modified time. The wire reply
// is the fixed 14-digit YYYYMMDDHHMMSS form, always UTC; a missing file
// or unparseable reply surfaces as an error for the caller to contain.
func (s *Session) ModTime(path string) (time.Time, error) {
	return s.conn.GetTime(path)
}

// Size queries the remote file's size in bytes.
func (s *Session) Size(path string) (int64, error) {
	return s.conn.FileSize(path)
}

// Retrieve opens a download stream for the remote path. The caller
// must close it before issuing further commands on the session.
func (s *Session) Retrieve(path string) (io.ReadCloser, error) {
	return s.conn.Retr(path)
}

// Store uploads r to the remote path, reading until EOF.
func (s *Session) Store(path string, r io.Reader) error {
	return s.conn.Stor(path, r)
}

// Quit sends QUIT and closes the connection.
func (s *Session) Quit() error {
	return s.conn.Quit()
}
