// Package hue maps a workspace identifier to its base hue. The
// mapping is a plain FNV-1a hash: stable across processes, platforms
// and releases, so the same workspace always lands on the same color.
package hue

import (
	"encoding/binary"
	"hash/fnv"
	"io"
)

// BaseHue hashes the identifier (mixed with an optional seed; pass 0
// for none) into a hue in [0,360), with a tenth of a degree of
// granularity.
func BaseHue(identifier string, seed uint64) float64 {
	h := fnv.New64a()
	io.WriteString(h, identifier) //nolint:errcheck // hash.Hash never errors
	if seed != 0 {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], seed)
		h.Write(buf[:])
	}
	return float64(h.Sum64()%3600) / 10
}
