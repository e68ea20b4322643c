package gtpv1u

import "github.com/packetflux/gtp/gtpv1"

// GTPv1-U extension header type tags (3GPP TS 29.281 table 5.2.1-3). Only
// UDP Port, PDCP PDU Number (short and long encodings), Service Class
// Indicator, and the RAN/Xw-RAN/NR-RAN/PDU-Session containers have a
// dedicated variant here; unrecognised types fall back to
// gtpv1.Unknown, which this package reuses directly since it already
// round-trips any extension-header payload byte-for-byte.
const (
	extTypeUDPPort               = 0x40
	extTypeServiceClassIndicator = 0x20
	extTypePDCPPDUNumber         = 0xc0
	extTypeLongPDCPPDUNumberShort = 0xc1
	extTypeLongPDCPPDUNumberLong  = 0xc2
	extTypeRANContainer          = 0x81
	extTypeXwRANContainer        = 0x83
	extTypeNRRANContainer        = 0x84
	extTypePDUSessionContainer   = 0x85
)

// decodeExtensionU is the v1-U ExtensionDecoder.
func decodeExtensionU(typ uint8, payload []byte) (gtpv1.ExtensionHeader, error) {
	switch typ {
	case extTypeUDPPort:
		if len(payload) != 2 {
			return nil, ExtHeaderInvalidLength(typ)
		}
		return &UDPPort{Port: uint16(payload[0])<<8 | uint16(payload[1])}, nil
	case extTypeServiceClassIndicator:
		if len(payload) != 2 {
			return nil, ExtHeaderInvalidLength(typ)
		}
		return &ServiceClassIndicator{Value: payload[0]}, nil
	case extTypePDCPPDUNumber:
		if len(payload) != 2 {
			return nil, ExtHeaderInvalidLength(typ)
		}
		return &PDCPPDUNumber{Number: uint16(payload[0])<<8 | uint16(payload[1])}, nil
	case extTypeLongPDCPPDUNumberShort:
		if len(payload) != 2 {
			return nil, ExtHeaderInvalidLength(typ)
		}
		return &LongPDCPPDUNumber{Encoding: LongPDCPEncodingShort, Number: uint32(payload[0])<<8 | uint32(payload[1])}, nil
	case extTypeLongPDCPPDUNumberLong:
		if len(payload) != 6 {
			return nil, ExtHeaderInvalidLength(typ)
		}
		n := uint32(payload[0])<<16 | uint32(payload[1])<<8 | uint32(payload[2])
		return &LongPDCPPDUNumber{Encoding: LongPDCPEncodingLong, Number: n, Spare: append([]byte(nil), payload[3:6]...)}, nil
	case extTypeRANContainer:
		return &RANContainer{Payload: append([]byte(nil), payload...)}, nil
	case extTypeXwRANContainer:
		return &XwRANContainer{Payload: append([]byte(nil), payload...)}, nil
	case extTypeNRRANContainer:
		return &NRRANContainer{Payload: append([]byte(nil), payload...)}, nil
	case extTypePDUSessionContainer:
		return &PDUSessionContainer{Payload: append([]byte(nil), payload...)}, nil
	default:
		return &gtpv1.Unknown{ExtType: typ, Payload: append([]byte(nil), payload...)}, nil
	}
}

// marshalUnits appends a length-in-4-byte-units octet followed by payload,
// zero-padded so that length-octet + padded-payload + the trailing
// next-type octet this block's caller appends totals a multiple of 4
// bytes (mirrors gtpv1's spare2 shape, generalised to variable payloads).
// The wire carries no payload length of its own, so decoding a container
// yields the padded payload, zero padding included.
func marshalUnits(b []byte, payload []byte) []byte {
	units := (len(payload) + 2 + 3) / 4
	paddedLen := units*4 - 2
	b = append(b, byte(units))
	b = append(b, payload...)
	for i := len(payload); i < paddedLen; i++ {
		b = append(b, 0)
	}
	return b
}

// UDPPort carries the UDP source port of the originating transport layer,
// needed when multiple UEs share one GTP-U tunnel source IP (TS 29.281
// 5.2.2.1).
type UDPPort struct{ Port uint16 }

func (u *UDPPort) Type() uint8 { return extTypeUDPPort }
func (u *UDPPort) Len() int    { return 4 }
func (u *UDPPort) Marshal(b []byte) []byte {
	b = append(b, 1)
	return append(b, byte(u.Port>>8), byte(u.Port))
}

// ServiceClassIndicator conveys a DSCP-like per-packet service class (TS
// 29.281 5.2.2.6).
type ServiceClassIndicator struct{ Value uint8 }

func (s *ServiceClassIndicator) Type() uint8 { return extTypeServiceClassIndicator }
func (s *ServiceClassIndicator) Len() int    { return 4 }
func (s *ServiceClassIndicator) Marshal(b []byte) []byte {
	b = append(b, 1)
	return append(b, s.Value, 0)
}

// PDCPPDUNumber carries a 16-bit PDCP sequence number for lossless SRNS
// relocation, the same shape as its v1-C counterpart (TS 29.281 5.2.2.3).
type PDCPPDUNumber struct{ Number uint16 }

func (p *PDCPPDUNumber) Type() uint8 { return extTypePDCPPDUNumber }
func (p *PDCPPDUNumber) Len() int    { return 4 }
func (p *PDCPPDUNumber) Marshal(b []byte) []byte {
	b = append(b, 1)
	return append(b, byte(p.Number>>8), byte(p.Number))
}

// LongPDCPEncoding selects between the two wire encodings 3GPP defines for
// a PDCP sequence number wider than 16 bits (TS 29.281 5.2.2.3a).
type LongPDCPEncoding uint8

const (
	LongPDCPEncodingShort LongPDCPEncoding = iota
	LongPDCPEncodingLong
)

// LongPDCPPDUNumber carries an extended-range PDCP sequence number in
// whichever of the two defined encodings Encoding selects.
type LongPDCPPDUNumber struct {
	Encoding LongPDCPEncoding
	Number   uint32
	Spare    []byte // present (3 bytes) only in the long encoding
}

func (p *LongPDCPPDUNumber) Type() uint8 {
	if p.Encoding == LongPDCPEncodingLong {
		return extTypeLongPDCPPDUNumberLong
	}
	return extTypeLongPDCPPDUNumberShort
}
func (p *LongPDCPPDUNumber) Len() int {
	if p.Encoding == LongPDCPEncodingLong {
		return 8
	}
	return 4
}
func (p *LongPDCPPDUNumber) Marshal(b []byte) []byte {
	if p.Encoding == LongPDCPEncodingLong {
		b = append(b, 2)
		b = append(b, byte(p.Number>>16), byte(p.Number>>8), byte(p.Number))
		spare := p.Spare
		for len(spare) < 3 {
			spare = append(spare, 0)
		}
		return append(b, spare[:3]...)
	}
	b = append(b, 1)
	return append(b, byte(p.Number>>8), byte(p.Number))
}

// RANContainer carries an opaque E-UTRAN RAN container, used to transport
// RAN-layer signalling alongside user-plane data (TS 29.281 5.2.2.7).
type RANContainer struct{ Payload []byte }

func (r *RANContainer) Type() uint8 { return extTypeRANContainer }
func (r *RANContainer) Len() int    { return ((len(r.Payload) + 5) / 4) * 4 }
func (r *RANContainer) Marshal(b []byte) []byte {
	return marshalUnits(b, r.Payload)
}

// XwRANContainer is the Xw-interface analogue of RANContainer, used in
// dual-connectivity deployments (TS 29.281 5.2.2.8).
type XwRANContainer struct{ Payload []byte }

func (x *XwRANContainer) Type() uint8 { return extTypeXwRANContainer }
func (x *XwRANContainer) Len() int    { return ((len(x.Payload) + 5) / 4) * 4 }
func (x *XwRANContainer) Marshal(b []byte) []byte {
	return marshalUnits(b, x.Payload)
}

// NRRANContainer is the 5G NR analogue of RANContainer (TS 29.281 5.2.2.9).
type NRRANContainer struct{ Payload []byte }

func (n *NRRANContainer) Type() uint8 { return extTypeNRRANContainer }
func (n *NRRANContainer) Len() int    { return ((len(n.Payload) + 5) / 4) * 4 }
func (n *NRRANContainer) Marshal(b []byte) []byte {
	return marshalUnits(b, n.Payload)
}

// PDUSessionContainer carries 5G QoS flow and PDU session metadata
// alongside the user-plane payload (TS 29.281 5.2.2.10).
type PDUSessionContainer struct{ Payload []byte }

func (p *PDUSessionContainer) Type() uint8 { return extTypePDUSessionContainer }
func (p *PDUSessionContainer) Len() int    { return ((len(p.Payload) + 5) / 4) * 4 }
func (p *PDUSessionContainer) Marshal(b []byte) []byte {
	return marshalUnits(b, p.Payload)
}
