package gtpv1

// IE is the common interface implemented by every GTPv1 Information
// Element variant plus the Unknown catch-all (spec.md §4.1.1). Unlike
// GTPv2, a v1 IE carries no instance discriminator.
type IE interface {
	// IEType returns the 1-byte type tag.
	IEType() uint8
	// Marshal appends this IE's full on-wire encoding (type, and for TLV
	// types a backpatched 2-byte length, then value) to b.
	Marshal(b []byte) []byte
	// Len returns the total on-wire size, including the type octet and,
	// for TLV types, the length octets.
	Len() int
}

// ieDecoder decodes one IE starting at buf[0] (the type tag) and returns
// the parsed IE, the number of bytes consumed, and any error.
type ieDecoder func(buf []byte) (IE, int, error)

// registry maps type tag to decoder. Populated by init() in the per-family
// IE files (ie_basic.go, ...).
var registry = map[uint8]ieDecoder{}

func register(typ uint8, fn ieDecoder) { registry[typ] = fn }

// UnknownIE preserves an unrecognised v1 IE type byte-for-byte (spec.md
// §4.1.3, §8.7). Tlv distinguishes a TLV encoding (2-byte length field,
// type >= 0x80 by 3GPP convention) from a fixed-length TV encoding.
type UnknownIE struct {
	Type  uint8
	Tlv   bool
	Value []byte
}

func (u *UnknownIE) IEType() uint8 { return u.Type }

func (u *UnknownIE) Len() int {
	if u.Tlv {
		return 3 + len(u.Value)
	}
	return 1 + len(u.Value)
}

func (u *UnknownIE) Marshal(b []byte) []byte {
	b = append(b, u.Type)
	if u.Tlv {
		b = append(b, 0, 0) // placeholder, patched below
		off := len(b) - 2
		start := len(b)
		b = append(b, u.Value...)
		patchLen16(b, off, len(b)-start)
		return b
	}
	return append(b, u.Value...)
}

func patchLen16(b []byte, off, v int) {
	b[off] = byte(v >> 8)
	b[off+1] = byte(v)
}

// decodeUnknownTV and decodeUnknownTLV are the TV and TLV unknown-IE shapes,
// chosen by the 3GPP convention that type tags 0-127 are fixed-length TV and 128-255 are
// TLV. Because an unrecognised TV type's fixed length cannot be known, an
// unrecognised type below 0x80 is treated as a 1-byte value; this matches
// the smallest IE defined in the standard and keeps the flat-list decoder
// making forward progress. Messages that need a longer unrecognised TV IE
// should register a dedicated decoder instead of relying on this fallback.
func decodeUnknownTV(typ uint8, buf []byte) (IE, int, error) {
	if len(buf) < 2 {
		return nil, 0, IEInvalidLength(typ)
	}
	return &UnknownIE{Type: typ, Tlv: false, Value: []byte{buf[1]}}, 2, nil
}

func decodeUnknownTLV(typ uint8, buf []byte) (IE, int, error) {
	if len(buf) < 3 {
		return nil, 0, IEInvalidLength(typ)
	}
	l := int(buf[1])<<8 | int(buf[2])
	if len(buf) < 3+l {
		return nil, 0, IEInvalidLength(typ)
	}
	return &UnknownIE{Type: typ, Tlv: true, Value: append([]byte(nil), buf[3:3+l]...)}, 3 + l, nil
}

// DecodeIEs decodes a flat sequence of IEs from buf (spec.md §4.1.3),
// dispatching on each leading type tag, advancing by the variant's
// reported length, and preserving unknown tags via UnknownIE.
func DecodeIEs(buf []byte) ([]IE, error) {
	var ies []IE
	for len(buf) > 0 {
		typ := buf[0]
		dec, ok := registry[typ]
		if !ok {
			if typ < 0x80 {
				dec = func(b []byte) (IE, int, error) { return decodeUnknownTV(typ, b) }
			} else {
				dec = func(b []byte) (IE, int, error) { return decodeUnknownTLV(typ, b) }
			}
		}
		ie, n, err := dec(buf)
		if err != nil {
			return nil, err
		}
		ies = append(ies, ie)
		buf = buf[n:]
	}
	return ies, nil
}
