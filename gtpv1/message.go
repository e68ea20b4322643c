package gtpv1

// Message is the common interface implemented by every GTPv1-C message
// variant (spec.md §3.5, §4.3.1).
type Message interface {
	// MessageType returns the 1-byte message type tag.
	MessageType() uint8
	// TEID returns the tunnel endpoint identifier carried in the header.
	TEID() uint32
	// IEs returns the message's IEs in canonical (non-decreasing type tag)
	// wire order (spec.md §4.3.4).
	IEs() []IE
}

// Marshal appends the full encoding of msg — header then IEs — to b. The
// header's Length field is computed from the IEs' Len() before the header
// is written.
func Marshal(b []byte, msg Message, seq uint16) []byte {
	ies := msg.IEs()
	payloadLen := 0
	for _, ie := range ies {
		payloadLen += ie.Len()
	}
	h := &Header{
		ProtocolType:   protocolTypeGTP,
		MessageType:    msg.MessageType(),
		TEID:           msg.TEID(),
		HasSequence:    true,
		SequenceNumber: seq,
	}
	b = h.Marshal(b, payloadLen)
	for _, ie := range ies {
		b = ie.Marshal(b)
	}
	return b
}

// decoded is the generic result of decodeMessage: a parsed header plus the
// IE sequence, with v1's non-decreasing type-tag ordering already
// enforced (spec.md §4.3.3).
type decoded struct {
	header *Header
	ies    []IE
}

// decodeMessage parses a v1-C PDU, verifies its message type, bounds the
// payload against the header's declared Length, enforces the v1
// non-decreasing type-tag ordering invariant while decoding IEs, and
// returns the result for the concrete per-message unmarshal function to
// project into named fields (spec.md §4.3.2, §4.3.3).
func decodeMessage(buf []byte, wantType uint8) (*decoded, error) {
	h, payload, err := DecodeHeader(buf, decodeExtensionC)
	if err != nil {
		return nil, err
	}
	if h.MessageType != wantType {
		return nil, MessageIncorrectMessageType(h.MessageType, wantType)
	}
	ies, err := decodeOrderedIEs(payload)
	if err != nil {
		return nil, err
	}
	return &decoded{header: h, ies: ies}, nil
}

// decodeOrderedIEs is DecodeIEs plus the v1 ordering invariant: the type
// tag sequence must be non-decreasing (spec.md §4.3.3, §8.4).
func decodeOrderedIEs(buf []byte) ([]IE, error) {
	var ies []IE
	highWater := uint8(0)
	for len(buf) > 0 {
		typ := buf[0]
		if typ < highWater {
			return nil, MessageInvalidMessageFormat("IE type tags out of order")
		}
		highWater = typ

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

// firstOf returns the first IE of type typ found in ies, or nil.
func firstOf(ies []IE, typ uint8) IE {
	for _, ie := range ies {
		if ie.IEType() == typ {
			return ie
		}
	}
	return nil
}

// allOf returns every IE of type typ found in ies, in encounter order. Used
// for the GSN Address positional-role duplicate semantics (spec.md §9):
// callers index into the result by occurrence (0 = control-plane address,
// 1 = user-plane address, 2 = alternative control-plane, 3 = alternative
// user-plane).
func allOf(ies []IE, typ uint8) []IE {
	var out []IE
	for _, ie := range ies {
		if ie.IEType() == typ {
			out = append(out, ie)
		}
	}
	return out
}
