package mapping

import (
	"path"
	"path/filepath"
)

// FlatStrategy is the legacy naming scheme. Remote paths are identical
// to CardStrategy, but local copies flatten the remote parent directory
// into the filename and are always stored as .bin:
//
//	SLUS-21274-1.mc2 -> local <root>/SLUS-21274_SLUS-21274-1.bin
type FlatStrategy struct{}

func (FlatStrategy) MapToRemote(name string) (string, error) {
	card, _, fam, err := parseName(name)
	if err != nil {
		return "", err
	}

	return path.Join(fam.root, card, name), nil
}

func (FlatStrategy) MapToLocal(name, localRoot string) (string, error) {
	card, channel, _, err := parseName(name)
	if err != nil {
		return "", err
	}

	return filepath.Join(localRoot, card+"_"+card+"-"+channel+".bin"), nil
}
