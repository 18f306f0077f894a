// Package util provides byte/word packing helpers for the AES engine.
// Mirrors Bouncy Castle's org.bouncycastle.util.Pack.
package util

import "encoding/binary"

// BigEndianToUint32 unpacks a uint32 from big-endian bytes.
func BigEndianToUint32(bs []byte, off int) uint32 {
	return binary.BigEndian.Uint32(bs[off:])
}
