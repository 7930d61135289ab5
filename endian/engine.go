// Package endian provides the byte order engines used to lay out multi-byte
// code units and keys as bytes.
//
// The radix sort itself extracts integer digits arithmetically and never depends
// on host byte order. Byte order only matters where values are turned into byte
// sequences: wide-string byte views, key fingerprints, and fixture files.
//
// # Basic Usage
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint16(buf, unit)
//
// Big-endian views of wide strings sort in code-unit order. Little-endian views
// reproduce the ordering of the raw in-memory layout on little-endian hosts.
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNativeEndianEngine returns the engine matching the host byte order.
func GetNativeEndianEngine() EndianEngine {
	if IsNativeLittleEndian() {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// ParseEngine resolves "big", "little" or "native" (case-insensitive) to an engine.
func ParseEngine(name string) (EndianEngine, error) {
	switch strings.ToLower(name) {
	case "big", "be":
		return GetBigEndianEngine(), nil
	case "little", "le":
		return GetLittleEndianEngine(), nil
	case "native":
		return GetNativeEndianEngine(), nil
	default:
		return nil, fmt.Errorf("unknown byte order %q", name)
	}
}
