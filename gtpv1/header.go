// Package gtpv1 implements the GTPv1-C control-plane codec per 3GPP TS
// 29.060: the variable header, its extension-header chain, the
// Information Element catalog, and the message layer that aggregates them.
// GTPv1-U (TS 29.281) reuses this package's Header and ExtensionHeader
// types from the sibling gtpv1u package, which supplies the v1-U
// extension-header family and message set.
package gtpv1

import (
	"github.com/packetflux/gtp"
)

const (
	version1            = 1
	protocolTypeGTP     = 1
	flagExtensionHeader = 0x04
	flagSequenceNumber  = 0x02
	flagNPDUNumber      = 0x01

	// HeaderMinLen is the fixed mandatory portion of the header: flags,
	// message type, length, TEID.
	HeaderMinLen = 8
	// HeaderOptLen is the size of the optional sequence/N-PDU/next-
	// extension-type block, physically present whenever any one of the
	// three is logically present (spec.md §3.1 invariant).
	HeaderOptLen = 4
)

// ExtensionHeader is one link in a v1 extension-header chain (spec.md
// §3.2). Implementations are provided per codec family: see the
// v1-C variants in this package and the v1-U variants in gtpv1u.
// ExtensionHeader describes one link in the chain. Because each link's own
// type tag is physically stored as the *previous* link's (or the header's)
// trailing "next extension header type" octet (spec.md §3.2), Marshal
// emits only the length-in-4-byte-units octet and the payload; the type
// octet that precedes this block and the next-type octet that follows it
// are written by the header/chain encoder.
type ExtensionHeader interface {
	// Type returns the tag that identifies this variant on the wire.
	Type() uint8
	// Marshal appends this extension header's length octet and payload
	// (not its type, not the trailing next-type octet) to b.
	Marshal(b []byte) []byte
	// Len returns the total on-wire size of this block: the length
	// octet, the payload, and the trailing next-type octet.
	Len() int
}

// ExtensionDecoder decodes one extension header whose type tag and
// declared length (in 4-byte units, payload only) have already been read
// from the wire. payload is exactly 4*lengthUnits-2 bytes (the content
// after type+length, before the trailing next-type octet is re-attached by
// the caller). Unrecognised types must be preserved via Unknown rather than
// rejected (spec.md §8.7).
type ExtensionDecoder func(typ uint8, payload []byte) (ExtensionHeader, error)

// Header is the GTPv1 variable header shared by GTPv1-C and GTPv1-U.
type Header struct {
	ProtocolType   uint8
	MessageType    uint8
	TEID           uint32
	HasSequence    bool
	SequenceNumber uint16
	HasNPDU        bool
	NPDUNumber     uint8
	Extensions     []ExtensionHeader
}

// hasOptionalFields reports whether the physically-present optional block
// (sequence number, N-PDU number, next-extension-type) must be emitted:
// present whenever any one of the three logical fields is present (spec.md
// §3.1).
func (h *Header) hasOptionalFields() bool {
	return h.HasSequence || h.HasNPDU || len(h.Extensions) > 0
}

// Len reports the total on-wire size of the header, including the 8-byte
// mandatory part.
func (h *Header) Len() int {
	n := HeaderMinLen
	if h.hasOptionalFields() {
		n += HeaderOptLen
		for _, e := range h.Extensions {
			n += e.Len()
		}
	}
	return n
}

// Marshal appends the encoded header to b. The Length field covers
// everyting after the 8-byte mandatory part plus payloadLen, the size of
// the IE payload that follows the header on the wire.
func (h *Header) Marshal(b []byte, payloadLen int) []byte {
	flags := byte(version1<<5) | byte(h.ProtocolType<<4)
	opt := h.hasOptionalFields()
	if h.HasSequence {
		flags |= flagSequenceNumber
	}
	if h.HasNPDU {
		flags |= flagNPDUNumber
	}
	if len(h.Extensions) > 0 {
		flags |= flagExtensionHeader
	}
	b = append(b, flags, h.MessageType)

	extLen := 0
	for _, e := range h.Extensions {
		extLen += e.Len()
	}
	length := payloadLen + extLen
	if opt {
		length += HeaderOptLen
	}
	b = gtp.AppendUint16(b, uint16(length))
	b = gtp.AppendUint32(b, h.TEID)

	if opt {
		seq := uint16(0)
		if h.HasSequence {
			seq = h.SequenceNumber
		}
		b = gtp.AppendUint16(b, seq)

		npdu := uint8(0)
		if h.HasNPDU {
			npdu = h.NPDUNumber
		}
		b = append(b, npdu)

		nextType := uint8(0)
		if len(h.Extensions) > 0 {
			nextType = h.Extensions[0].Type()
		}
		b = append(b, nextType)

		for i, e := range h.Extensions {
			b = e.Marshal(b)
			following := byte(0x00)
			if i+1 < len(h.Extensions) {
				following = h.Extensions[i+1].Type()
			}
			b = append(b, following)
		}
	}
	return b
}

// DecodeHeader parses a v1 header from the start of buf using decodeExt to
// interpret extension-header type tags. It returns the parsed header, the
// remaining bytes (the IE payload region bounded by the Length field), and
// any error.
func DecodeHeader(buf []byte, decodeExt ExtensionDecoder) (*Header, []byte, error) {
	if len(buf) < HeaderMinLen {
		return nil, nil, HeaderInvalidLength(len(buf))
	}
	flags := buf[0]
	version := flags >> 5
	pt := (flags >> 4) & 0x1
	if version != version1 {
		return nil, nil, HeaderVersionNotSupported(version)
	}
	if pt != protocolTypeGTP {
		return nil, nil, HeaderVersionNotSupported(version)
	}

	h := &Header{ProtocolType: pt}
	hasSeq := flags&flagSequenceNumber != 0
	hasNPDU := flags&flagNPDUNumber != 0
	hasExt := flags&flagExtensionHeader != 0
	anyOpt := hasSeq || hasNPDU || hasExt

	h.MessageType = buf[1]
	length := gtp.Uint16(buf[2:4])
	h.TEID = gtp.Uint32(buf[4:8])

	cursor := HeaderMinLen
	total := HeaderMinLen + int(length)
	if total > len(buf) {
		return nil, nil, MessageInvalidMessageFormat("payload shorter than header length")
	}

	if anyOpt {
		if len(buf) < HeaderMinLen+HeaderOptLen {
			return nil, nil, HeaderInvalidLength(len(buf))
		}
		h.HasSequence = hasSeq
		h.SequenceNumber = gtp.Uint16(buf[8:10])
		h.HasNPDU = hasNPDU
		h.NPDUNumber = buf[10]
		nextType := buf[11]
		cursor = HeaderMinLen + HeaderOptLen

		for nextType != 0x00 {
			if cursor >= len(buf) {
				return nil, nil, HeaderInvalidLength(len(buf))
			}
			lengthUnits := int(buf[cursor])
			if lengthUnits == 0 {
				return nil, nil, ExtHeaderInvalidLength(nextType)
			}
			extTotal := lengthUnits * 4
			if cursor+extTotal > len(buf) {
				return nil, nil, HeaderInvalidLength(len(buf))
			}
			payload := buf[cursor+1 : cursor+extTotal-1]
			ext, err := decodeExt(nextType, payload)
			if err != nil {
				return nil, nil, err
			}
			h.Extensions = append(h.Extensions, ext)
			nextType = buf[cursor+extTotal-1]
			cursor += extTotal
		}
	}

	return h, buf[cursor:total], nil
}
