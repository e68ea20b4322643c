// Package gtpv2 implements the GTPv2-C control-plane codec per 3GPP TS
// 29.274: the evolved header (flag-gated TEID, piggyback and
// message-priority bits), the Information Element catalog (including
// grouped IEs, the MM Context family, and Target Identification), and the
// message layer that assigns instance-discriminated IEs into named fields.
package gtpv2

import "github.com/packetflux/gtp"

const (
	version2        = 2
	flagPiggyback   = 0x10
	flagTEID        = 0x08
	flagMsgPriority = 0x04

	// HeaderMinLen is the header size when the TEID flag is clear: flags,
	// message type, length, 24-bit sequence number, spare/priority octet.
	HeaderMinLen = 8
	// HeaderTEIDLen is the header size when the TEID flag is set.
	HeaderTEIDLen = 12
)

// Header is the GTPv2-C variable header (spec.md §3.1, §4.2.3).
type Header struct {
	Piggyback      bool
	HasTEID        bool
	MessagePriority bool
	MessageType    uint8
	TEID           uint32
	SequenceNumber uint32 // 24-bit
	Priority       uint8  // low nibble, meaningful only when MessagePriority is set
}

// Len reports the total on-wire size of the header.
func (h *Header) Len() int {
	if h.HasTEID {
		return HeaderTEIDLen
	}
	return HeaderMinLen
}

// Marshal appends the encoded header to b. length is the size in bytes of
// everything that follows the first 4 octets (TEID if present, sequence
// number, spare/priority octet, and the IE payload).
func (h *Header) Marshal(b []byte, length int) []byte {
	flags := byte(version2 << 5)
	if h.Piggyback {
		flags |= flagPiggyback
	}
	if h.HasTEID {
		flags |= flagTEID
	}
	if h.MessagePriority {
		flags |= flagMsgPriority
	}
	b = append(b, flags, h.MessageType)
	b = gtp.AppendUint16(b, uint16(length))
	if h.HasTEID {
		b = gtp.AppendUint32(b, h.TEID)
	}
	b = gtp.AppendUint24(b, h.SequenceNumber)
	priority := byte(0)
	if h.MessagePriority {
		priority = h.Priority & 0xf
	}
	return append(b, priority)
}

// DecodeHeader parses a v2 header from the start of buf. It returns the
// parsed header, the remaining bytes (the IE payload region bounded by the
// Length field), and any error.
func DecodeHeader(buf []byte) (*Header, []byte, error) {
	if len(buf) < HeaderMinLen {
		return nil, nil, HeaderInvalidLength(len(buf))
	}
	flags := buf[0]
	version := flags >> 5
	if version != version2 {
		return nil, nil, HeaderVersionNotSupported(version)
	}
	h := &Header{
		Piggyback:       flags&flagPiggyback != 0,
		HasTEID:         flags&flagTEID != 0,
		MessagePriority: flags&flagMsgPriority != 0,
		MessageType:     buf[1],
	}
	length := int(gtp.Uint16(buf[2:4]))

	minLen := HeaderMinLen
	if h.HasTEID {
		minLen = HeaderTEIDLen
	}
	if len(buf) < minLen {
		return nil, nil, HeaderInvalidLength(len(buf))
	}
	total := 4 + length
	if total > len(buf) {
		return nil, nil, MessageInvalidMessageFormat("payload shorter than header length")
	}

	cursor := 4
	if h.HasTEID {
		h.TEID = gtp.Uint32(buf[cursor : cursor+4])
		cursor += 4
	}
	h.SequenceNumber = gtp.Uint24(buf[cursor : cursor+3])
	cursor += 3
	h.Priority = buf[cursor] & 0xf
	cursor++

	return h, buf[cursor:total], nil
}
