package gtpv2

import "github.com/packetflux/gtp"

// IE is the common interface implemented by every GTPv2 Information
// Element variant plus the Unknown catch-all (spec.md §4.1.1, §3.4).
type IE interface {
	// IEType returns the 1-byte type tag.
	IEType() uint8
	// Instance returns the 4-bit instance discriminator.
	Instance() uint8
	// Marshal appends this IE's full on-wire encoding (type, backpatched
	// 2-byte length, instance, value) to b.
	Marshal(b []byte) []byte
	// Len returns the total on-wire size, including the 4-byte preamble.
	Len() int
}

// ieDecoder decodes one IE's value region (already bounded to the declared
// length) together with its instance, and returns the parsed IE.
type ieDecoder func(instance uint8, value []byte) (IE, error)

// registry maps type tag to decoder. Populated by init() in the per-family
// IE files (ie_basic.go, ie_grouped.go, ie_mmcontext.go, ie_targetid.go).
var registry = map[uint8]ieDecoder{}

func register(typ uint8, fn ieDecoder) { registry[typ] = fn }

// UnknownIE preserves an unrecognised v2 IE type byte-for-byte (spec.md
// §4.1.3, §8.7).
type UnknownIE struct {
	Type  uint8
	Ins   uint8
	Value []byte
}

func (u *UnknownIE) IEType() uint8   { return u.Type }
func (u *UnknownIE) Instance() uint8 { return u.Ins }
func (u *UnknownIE) Len() int        { return 4 + len(u.Value) }
func (u *UnknownIE) Marshal(b []byte) []byte {
	return marshalTLIV(b, u.Type, u.Ins, u.Value)
}

// marshalTLIV appends the 4-byte v2 preamble (type, backpatched length,
// instance) followed by value: the building block every concrete non-grouped
// IE's Marshal reuses (spec.md §9). Grouped IEs write their own preamble and
// back-patch their length with patchGroupedLen.
func marshalTLIV(b []byte, typ uint8, instance uint8, value []byte) []byte {
	b = append(b, typ)
	off := len(b)
	b = append(b, 0, 0)
	b = append(b, instance&0xf)
	start := len(b)
	b = append(b, value...)
	gtp.PatchUint16(b, off, uint16(len(b)-start))
	return b
}

// readTLIV reads one IE's preamble starting at buf[0] and returns its type,
// instance, value region, and total bytes consumed.
func readTLIV(buf []byte) (typ uint8, instance uint8, value []byte, consumed int, err error) {
	if len(buf) < 4 {
		return 0, 0, nil, 0, MessageInvalidMessageFormat("truncated IE preamble")
	}
	typ = buf[0]
	l := int(gtp.Uint16(buf[1:3]))
	instance = buf[3] & 0xf
	if len(buf) < 4+l {
		return 0, 0, nil, 0, IEInvalidLength(typ)
	}
	return typ, instance, buf[4 : 4+l], 4 + l, nil
}

// DecodeIEs decodes a flat sequence of IEs from buf (spec.md §4.1.3),
// dispatching on each leading type tag, advancing by the variant's
// reported length, and preserving unknown tags via UnknownIE. It is used
// both at message top level and, recursively, against a grouped IE's value
// region (spec.md §4.1.4).
func DecodeIEs(buf []byte) ([]IE, error) {
	var ies []IE
	for len(buf) > 0 {
		typ, instance, value, n, err := readTLIV(buf)
		if err != nil {
			return nil, err
		}
		dec, ok := registry[typ]
		if !ok {
			dec = func(ins uint8, v []byte) (IE, error) {
				return &UnknownIE{Type: typ, Ins: ins, Value: append([]byte(nil), v...)}, nil
			}
		}
		ie, err := dec(instance, value)
		if err != nil {
			return nil, err
		}
		ies = append(ies, ie)
		buf = buf[n:]
	}
	return ies, nil
}

// firstOf returns the first IE matching (typ, instance), or nil. Per
// spec.md §4.3.2 step 4, the first occurrence at a given instance wins for
// optional slots; later duplicates are discarded, not errors.
func firstOf(ies []IE, typ, instance uint8) IE {
	for _, ie := range ies {
		if ie.IEType() == typ && ie.Instance() == instance {
			return ie
		}
	}
	return nil
}

// allOf returns every IE matching typ, regardless of instance, in
// encounter order. Used for repeatable slots such as Bearer Context.
func allOf(ies []IE, typ uint8) []IE {
	var out []IE
	for _, ie := range ies {
		if ie.IEType() == typ {
			out = append(out, ie)
		}
	}
	return out
}
