package mapping

import (
	"path"
	"path/filepath"
)

// CardStrategy is the canonical naming scheme matching the directory
// layout on the card: each card name has its own remote directory under
// the family root, and local copies sit directly under the sync root
// with the family's local extension.
//
//	SLUS-21274-1.mc2 -> remote PS2/SLUS-21274/SLUS-21274-1.mc2
//	                 -> local  <root>/SLUS-21274-1.bin
type CardStrategy struct{}

func (CardStrategy) MapToRemote(name string) (string, error) {
	card, _, fam, err := parseName(name)
	if err != nil {
		return "", err
	}

	// Remote paths always use forward slashes, whatever the local OS.
	return path.Join(fam.root, card, name), nil
}

func (CardStrategy) MapToLocal(name, localRoot string) (string, error) {
	card, channel, fam, err := parseName(name)
	if err != nil {
		return "", err
	}

	return filepath.Join(localRoot, card+"-"+channel+"."+fam.localExt), nil
}
