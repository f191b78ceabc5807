package persistence

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	worldMetaFile    = "world.meta"
	worldMetaMagic   = "MMCW"
	worldMetaVersion = 1
)

// LoadWorldSeed reads <worldDir>/world.meta and returns the stored seed.
// A missing file is not an error: the caller should fall back to the
// default seed (1), matching the baseline's hardcoded-seed behavior for
// worlds created before seed became metadata.
func LoadWorldSeed(worldDir string) (int64, bool, error) {
	path := filepath.Join(worldDir, worldMetaFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, errors.Wrap(err, "persistence: read world metadata")
	}
	if len(data) != 4+1+8 || string(data[:4]) != worldMetaMagic || data[4] != worldMetaVersion {
		return 0, false, errors.New("persistence: malformed world metadata")
	}
	seed := int64(binary.LittleEndian.Uint64(data[5:13]))
	return seed, true, nil
}

// SaveWorldSeed writes the seed a newly created world was generated with.
func SaveWorldSeed(worldDir string, seed int64) error {
	if err := os.MkdirAll(worldDir, 0o755); err != nil {
		return errors.Wrap(err, "persistence: create world dir")
	}
	buf := make([]byte, 4+1+8)
	copy(buf[:4], worldMetaMagic)
	buf[4] = worldMetaVersion
	binary.LittleEndian.PutUint64(buf[5:13], uint64(seed))
	path := filepath.Join(worldDir, worldMetaFile)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return errors.Wrap(err, "persistence: write world metadata")
	}
	return nil
}
