package syncer

// Decision is the action chosen for one target after comparing
// modification times. Decisions are recomputed fresh on every run and
// never stored.
type Decision int

const (
	// NoOp means both sides carry the same second-granularity mtime.
	NoOp Decision = iota

	// Download means the remote copy is newer, or no local copy exists.
	Download

	// Upload means the local copy is newer.
	Upload
)

func (d Decision) String() string {
	switch d {
	case Download:
		return "download"
	case Upload:
		return "upload"
	default:
		return "no-op"
	}
}

// Decide compares whole-second POSIX timestamps and picks the transfer
// direction. localExists=false means no local copy exists yet, which is
// a first-sync download, not "local older". Equality at second
// granularity is deliberate: the wire timestamp cannot express
// sub-second precision, so residual drift below one second must never
// trigger a spurious transfer.
func Decide(remote, local int64, localExists bool) Decision {
	if !localExists {
		return Download
	}

	switch {
	case remote > local:
		return Download
	case local > remote:
		return Upload
	default:
		return NoOp
	}
}
