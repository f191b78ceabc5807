// Package persistence implements the on-disk region/zone/chunk hierarchy.
// Only blocks that differ from what the generator would produce for the
// current seed are written, so a freshly generated world needs no save
// files at all.
package persistence

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"mini-mc/internal/world"
)

const (
	zoneMagic        = "MMC1"
	zoneFormatVersion = 1

	zoneChunksPerSide = 4 // a zone is 4x4 chunks
)

// regionOf returns the region coordinates a zone belongs to; each region
// axis floor-divides the matching zone axis.
func regionOf(zx, zz int) (rx, rz int) {
	return floorDiv(zx, zoneChunksPerSide), floorDiv(zz, zoneChunksPerSide)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ZonePath returns <worldDir>/Region_<rx>_<rz>/Zone_<zx>_<zz>.dat.
func ZonePath(worldDir string, zx, zz int) string {
	rx, rz := regionOf(zx, zz)
	return filepath.Join(worldDir, fmt.Sprintf("Region_%d_%d", rx, rz), fmt.Sprintf("Zone_%d_%d.dat", zx, zz))
}

// ZoneFileExists reports whether a zone file is present for (zx, zz). A
// missing directory or file both count as "does not exist", so an empty
// world folder reports no zones.
func ZoneFileExists(worldDir string, zx, zz int) bool {
	_, err := os.Stat(ZonePath(worldDir, zx, zz))
	return err == nil
}

// ChunkSource resolves a chunk within a zone by its chunk-grid index,
// instantiating it if necessary. It mirrors Terrain's responsibility of
// owning the chunk map; persistence never allocates chunks itself.
type ChunkSource func(cx, cz int) *world.Chunk

// SaveZone writes one record per chunk in the 4x4 zone to a freshly created
// (truncated) file, preceded by the magic/version header. Only cells that
// differ from the generator's output for the current seed are recorded.
func SaveZone(worldDir string, zx, zz int, get ChunkSource, gen *world.Generator, rivers world.RiverSet) error {
	path := ZonePath(worldDir, zx, zz)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "persistence: create region dir for zone (%d,%d)", zx, zz)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "persistence: create zone file (%d,%d)", zx, zz)
	}
	defer f.Close()

	if err := writeHeader(f); err != nil {
		return err
	}

	baseCX := zx * zoneChunksPerSide
	baseCZ := zz * zoneChunksPerSide
	for lcx := 0; lcx < zoneChunksPerSide; lcx++ {
		for lcz := 0; lcz < zoneChunksPerSide; lcz++ {
			c := get(baseCX+lcx, baseCZ+lcz)
			if c == nil {
				continue
			}
			if err := writeChunkRecord(f, c, lcx, lcz, gen, rivers); err != nil {
				return errors.Wrapf(err, "persistence: write chunk record (%d,%d) in zone (%d,%d)", lcx, lcz, zx, zz)
			}
		}
	}
	return nil
}

func writeHeader(w io.Writer) error {
	if _, err := w.Write([]byte(zoneMagic)); err != nil {
		return errors.Wrap(err, "persistence: write magic")
	}
	if _, err := w.Write([]byte{zoneFormatVersion}); err != nil {
		return errors.Wrap(err, "persistence: write version")
	}
	return nil
}

func writeChunkRecord(w io.Writer, c *world.Chunk, lcx, lcz int, gen *world.Generator, rivers world.RiverSet) error {
	type mod struct {
		xz, y, t byte
	}
	var mods []mod
	for lx := 0; lx < world.ChunkSizeX; lx++ {
		wx := c.MinX + lx
		for lz := 0; lz < world.ChunkSizeZ; lz++ {
			wz := c.MinZ + lz
			for y := 0; y < world.ChunkSizeY; y++ {
				actual := c.GetLocalBlock(lx, y, lz)
				expected := gen.GenerateBlock(wx, y, wz, rivers)
				if actual != expected {
					xz := byte((lx&0xF)<<4 | (lz & 0xF))
					mods = append(mods, mod{xz: xz, y: byte(y), t: byte(actual)})
				}
			}
		}
	}

	if _, err := w.Write([]byte{byte(lcx), byte(lcz)}); err != nil {
		return err
	}
	var countBuf [2]byte
	binary.LittleEndian.PutUint16(countBuf[:], uint16(len(mods)))
	if _, err := w.Write(countBuf[:]); err != nil {
		return err
	}
	for _, m := range mods {
		if _, err := w.Write([]byte{m.xz, m.y, m.t}); err != nil {
			return err
		}
	}
	return nil
}

// LoadZone reads a zone file record by record. For each record it
// instantiates the chunk via get, regenerates its baseline with gen, then
// applies the recorded modifications. An unexpected EOF mid-file stops
// parsing and keeps whatever chunks were already applied, returning nil:
// a truncated file is a recoverable condition, not a caller error.
// A missing or header-mismatched file is reported via the returned error so
// the caller can fall back to fresh generation.
func LoadZone(worldDir string, zx, zz int, get ChunkSource, gen *world.Generator, rivers world.RiverSet) error {
	path := ZonePath(worldDir, zx, zz)
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "persistence: open zone file (%d,%d)", zx, zz)
	}
	defer f.Close()

	if err := checkHeader(f); err != nil {
		return errors.Wrapf(err, "persistence: zone file (%d,%d) header invalid", zx, zz)
	}

	baseCX := zx * zoneChunksPerSide
	baseCZ := zz * zoneChunksPerSide

	for {
		var head [4]byte
		if _, err := io.ReadFull(f, head[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			// Unexpected EOF partway through a record: stop parsing,
			// keep what has already been loaded from this file.
			return nil
		}
		lcx := int(head[0])
		lcz := int(head[1])
		count := binary.LittleEndian.Uint16(head[2:4])

		c := get(baseCX+lcx, baseCZ+lcz)
		gen.Generate(c, rivers)

		for i := uint16(0); i < count; i++ {
			var rec [3]byte
			if _, err := io.ReadFull(f, rec[:]); err != nil {
				// Unexpected EOF mid-record: keep everything applied so far.
				return nil
			}
			lx := int(rec[0]>>4) & 0xF
			lz := int(rec[0]) & 0xF
			y := int(rec[1])
			t := world.BlockType(rec[2])
			c.SetLocalBlock(lx, y, lz, t)
		}
	}
}

func checkHeader(r io.Reader) error {
	var buf [5]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	if string(buf[:4]) != zoneMagic {
		return errors.New("persistence: bad magic")
	}
	if buf[4] != zoneFormatVersion {
		return errors.Errorf("persistence: unsupported zone format version %d", buf[4])
	}
	return nil
}
