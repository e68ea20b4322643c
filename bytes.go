// Package gtp holds the wire-level primitives shared by the gtpv1, gtpv1u
// and gtpv2 codecs: big-endian integer helpers, BCD digit packing, and the
// length-prefixed label encoding used by APN and FQDN values. None of these
// types or functions are GTP-version-specific; they exist once here so the
// three version packages do not each reinvent them.
package gtp

import "encoding/binary"

// AppendUint16 appends v to b in big-endian order, as every multi-byte
// field on the wire is (spec TS 29.060/29.274: all multi-byte integers are
// big-endian).
func AppendUint16(b []byte, v uint16) []byte {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	return append(b, tmp[:]...)
}

// AppendUint32 appends v to b in big-endian order.
func AppendUint32(b []byte, v uint32) []byte {
	var tmp [4]byte
	binary.BigEndian.PutUint32(tmp[:], v)
	return append(b, tmp[:]...)
}

// AppendUint24 appends the low 24 bits of v to b in big-endian order, used
// by the v2 header's sequence number.
func AppendUint24(b []byte, v uint32) []byte {
	return append(b, byte(v>>16), byte(v>>8), byte(v))
}

// Uint16 reads a big-endian uint16 from the start of b.
func Uint16(b []byte) uint16 { return binary.BigEndian.Uint16(b) }

// Uint32 reads a big-endian uint32 from the start of b.
func Uint32(b []byte) uint32 { return binary.BigEndian.Uint32(b) }

// Uint24 reads a big-endian 24-bit value from the start of b.
func Uint24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// PatchUint16 overwrites the big-endian uint16 at offset off in b. It is
// the back-patch helper described in spec.md §9: record the offset of a
// length field, emit the body, then write the delta into that offset. It is
// used by gtpv2's marshalTLIV to fill in an IE's length once its value has
// been appended.
func PatchUint16(b []byte, off int, v uint16) {
	binary.BigEndian.PutUint16(b[off:off+2], v)
}
