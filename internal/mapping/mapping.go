// Package mapping resolves logical card-image names to remote and
// local paths. Strategies are pure: they never touch the filesystem or
// the network.
package mapping

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ps2mcs/ps2mcs/internal/errors"
)

// Strategy maps a card-image name to the path it lives at on the card
// and the path its local copy lives at under the sync root. One
// strategy is selected at startup and never switched mid-run.
type Strategy interface {
	MapToRemote(name string) (string, error)
	MapToLocal(name, localRoot string) (string, error)
}

// ForName returns the strategy for a config value.
func ForName(name string) (Strategy, error) {
	switch name {
	case "card":
		return CardStrategy{}, nil
	case "flat":
		return FlatStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown mapping strategy %q", name)
	}
}

// family binds a remote card-image extension to the remote root
// directory for that image family and the extension used for local
// copies. The raw MemCard PRO 2 format (.mc2) is stored locally as
// .bin; PS1 images (.mcd) are stored losslessly under their own name.
type family struct {
	ext      string
	root     string
	localExt string
}

var families = []family{
	{ext: "mc2", root: "PS2", localExt: "bin"},
	{ext: "mcd", root: "PS1", localExt: "mcd"},
}

// namePattern is the canonical filename grammar:
// <CardName>-<Channel>.<ext> with channel 1-8 and no '/' anywhere in
// the card name segment.
var namePattern = regexp.MustCompile(`^([^/]+)-([1-8])\.([A-Za-z0-9]+)$`)

// parseName matches a name against the grammar and the known families.
// The extension match is case-insensitive.
func parseName(name string) (card, channel string, fam family, err error) {
	m := namePattern.FindStringSubmatch(name)
	if m == nil {
		return "", "", family{}, fmt.Errorf("%q: %w", name, errors.ErrInvalidTargetFormat)
	}

	for _, f := range families {
		if strings.EqualFold(m[3], f.ext) {
			return m[1], m[2], f, nil
		}
	}

	return "", "", family{}, fmt.Errorf("%q: unknown extension %q: %w", name, m[3], errors.ErrInvalidTargetFormat)
}
