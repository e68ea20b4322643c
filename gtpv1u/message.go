// Package gtpv1u implements the GTPv1-U user-plane codec per 3GPP TS
// 29.281: it reuses gtpv1's Header and ExtensionHeader types, supplying
// only the v1-U extension-header family and the small user-plane message
// set (G-PDU, Echo Request/Response, Error Indication, Supported
// Extension Headers Notification, End Marker).
package gtpv1u

import "github.com/packetflux/gtp/gtpv1"

// GTPv1-U message type numbers (TS 29.281 table 5.1-1).
const (
	MsgTypeEchoRequest                           = 1
	MsgTypeEchoResponse                          = 2
	MsgTypeErrorIndication                       = 26
	MsgTypeSupportedExtensionHeadersNotification = 31
	MsgTypeEndMarker                             = 254
	MsgTypeGPDU                                  = 255
)

// decodeMessage parses a v1-U header using the v1-U extension-header
// family, verifies its message type, and returns the header plus the
// remaining payload bounded by the header's declared Length.
func decodeMessage(buf []byte, want uint8) (*gtpv1.Header, []byte, error) {
	h, payload, err := gtpv1.DecodeHeader(buf, decodeExtensionU)
	if err != nil {
		return nil, nil, err
	}
	if h.MessageType != want {
		return nil, nil, MessageIncorrectMessageType(h.MessageType, want)
	}
	return h, payload, nil
}

// marshalHeader assembles a v1-U header for msgType/teid/seq carrying the
// given payload length, in the same style as gtpv1.Marshal.
func marshalHeader(msgType uint8, teid uint32, seq uint16, hasSeq bool, payloadLen int) []byte {
	h := &gtpv1.Header{
		ProtocolType:   1,
		MessageType:    msgType,
		TEID:           teid,
		HasSequence:    hasSeq,
		SequenceNumber: seq,
	}
	return h.Marshal(nil, payloadLen)
}

// EchoRequest is a GTP-U liveness probe (TS 29.281 5.1), carrying no
// mandatory IEs.
type EchoRequest struct {
	Teid             uint32
	Seq              uint16
	PrivateExtension *gtpv1.PrivateExtension
}

// Marshal encodes the Echo Request PDU.
func (m *EchoRequest) Marshal() []byte {
	var payload []byte
	if m.PrivateExtension != nil {
		payload = m.PrivateExtension.Marshal(payload)
	}
	b := marshalHeader(MsgTypeEchoRequest, m.Teid, m.Seq, true, len(payload))
	return append(b, payload...)
}

// DecodeEchoRequest parses a GTPv1-U Echo Request PDU.
func DecodeEchoRequest(buf []byte) (*EchoRequest, error) {
	h, payload, err := decodeMessage(buf, MsgTypeEchoRequest)
	if err != nil {
		return nil, err
	}
	ies, err := gtpv1.DecodeIEs(payload)
	if err != nil {
		return nil, err
	}
	m := &EchoRequest{Teid: h.TEID, Seq: h.SequenceNumber}
	for _, ie := range ies {
		if pe, ok := ie.(*gtpv1.PrivateExtension); ok {
			m.PrivateExtension = pe
		}
	}
	return m, nil
}

// EchoResponse confirms liveness and the peer's restart counter (TS
// 29.281 5.1). Recovery is mandatory.
type EchoResponse struct {
	Teid             uint32
	Seq              uint16
	Recovery         *gtpv1.Recovery
	PrivateExtension *gtpv1.PrivateExtension
}

// Marshal encodes the Echo Response PDU.
func (m *EchoResponse) Marshal() []byte {
	payload := m.Recovery.Marshal(nil)
	if m.PrivateExtension != nil {
		payload = m.PrivateExtension.Marshal(payload)
	}
	b := marshalHeader(MsgTypeEchoResponse, m.Teid, m.Seq, true, len(payload))
	return append(b, payload...)
}

// DecodeEchoResponse parses a GTPv1-U Echo Response PDU.
func DecodeEchoResponse(buf []byte) (*EchoResponse, error) {
	h, payload, err := decodeMessage(buf, MsgTypeEchoResponse)
	if err != nil {
		return nil, err
	}
	ies, err := gtpv1.DecodeIEs(payload)
	if err != nil {
		return nil, err
	}
	m := &EchoResponse{Teid: h.TEID, Seq: h.SequenceNumber}
	for _, ie := range ies {
		switch v := ie.(type) {
		case *gtpv1.Recovery:
			if m.Recovery == nil {
				m.Recovery = v
			}
		case *gtpv1.PrivateExtension:
			m.PrivateExtension = v
		}
	}
	if m.Recovery == nil {
		return nil, MessageMandatoryIEMissing(gtpv1.TypeRecovery)
	}
	return m, nil
}

// ErrorIndication reports a received G-PDU for which no PDP context
// exists (TS 29.281 7.3.1). TEID Data I and the peer's GSN Address are
// mandatory.
type ErrorIndication struct {
	Seq              uint16
	TEIDDataI        *gtpv1.TEIDDataI
	GSNAddress       *gtpv1.GSNAddress
	PrivateExtension *gtpv1.PrivateExtension
}

// Marshal encodes the Error Indication PDU. Error Indication carries a
// zero TEID in its header (TS 29.281 7.3.1): the tunnel it refers to is
// identified by the TEID Data I IE instead.
func (m *ErrorIndication) Marshal() []byte {
	payload := m.TEIDDataI.Marshal(nil)
	payload = m.GSNAddress.Marshal(payload)
	if m.PrivateExtension != nil {
		payload = m.PrivateExtension.Marshal(payload)
	}
	b := marshalHeader(MsgTypeErrorIndication, 0, m.Seq, true, len(payload))
	return append(b, payload...)
}

// DecodeErrorIndication parses a GTPv1-U Error Indication PDU.
func DecodeErrorIndication(buf []byte) (*ErrorIndication, error) {
	h, payload, err := decodeMessage(buf, MsgTypeErrorIndication)
	if err != nil {
		return nil, err
	}
	ies, err := gtpv1.DecodeIEs(payload)
	if err != nil {
		return nil, err
	}
	m := &ErrorIndication{Seq: h.SequenceNumber}
	for _, ie := range ies {
		switch v := ie.(type) {
		case *gtpv1.TEIDDataI:
			if m.TEIDDataI == nil {
				m.TEIDDataI = v
			}
		case *gtpv1.GSNAddress:
			if m.GSNAddress == nil {
				m.GSNAddress = v
			}
		case *gtpv1.PrivateExtension:
			m.PrivateExtension = v
		}
	}
	if m.TEIDDataI == nil {
		return nil, MessageMandatoryIEMissing(gtpv1.TypeTEIDDataI)
	}
	if m.GSNAddress == nil {
		return nil, MessageMandatoryIEMissing(gtpv1.TypeGSNAddress)
	}
	return m, nil
}

// SupportedExtensionHeadersNotification announces the sending GSN's
// supported extension header types (TS 29.281 7.3.2). The Extension
// Header Type List is mandatory.
type SupportedExtensionHeadersNotification struct {
	ExtensionHeaderTypeList *ExtensionHeaderTypeList
}

// Marshal encodes the notification PDU. Unlike the control-plane
// messages, this message type carries a zero TEID and no sequence number
// (TS 29.281 table 5.1-1).
func (m *SupportedExtensionHeadersNotification) Marshal() []byte {
	payload := m.ExtensionHeaderTypeList.Marshal(nil)
	b := marshalHeader(MsgTypeSupportedExtensionHeadersNotification, 0, 0, false, len(payload))
	return append(b, payload...)
}

// DecodeSupportedExtensionHeadersNotification parses the notification
// PDU.
func DecodeSupportedExtensionHeadersNotification(buf []byte) (*SupportedExtensionHeadersNotification, error) {
	_, payload, err := decodeMessage(buf, MsgTypeSupportedExtensionHeadersNotification)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, MessageMandatoryIEMissing(TypeExtensionHeaderTypeList)
	}
	list, _, err := decodeExtensionHeaderTypeList(payload)
	if err != nil {
		return nil, err
	}
	return &SupportedExtensionHeadersNotification{ExtensionHeaderTypeList: list}, nil
}

// EndMarker signals the last G-PDU on a bearer before a path switch (TS
// 29.281 5.1); it carries no IEs.
type EndMarker struct {
	Teid uint32
}

// Marshal encodes the End Marker PDU.
func (m *EndMarker) Marshal() []byte {
	return marshalHeader(MsgTypeEndMarker, m.Teid, 0, false, 0)
}

// DecodeEndMarker parses a GTPv1-U End Marker PDU.
func DecodeEndMarker(buf []byte) (*EndMarker, error) {
	h, _, err := decodeMessage(buf, MsgTypeEndMarker)
	if err != nil {
		return nil, err
	}
	return &EndMarker{Teid: h.TEID}, nil
}

// GPDU wraps a T-PDU (the tunneled user-plane packet, typically an IP
// datagram) with the GTP-U header (TS 29.281 4.2). Unlike every other
// message in this package, the payload following the header is the raw
// T-PDU bytes, not a TLV IE sequence: G-PDU carries no Information
// Elements at all.
type GPDU struct {
	Teid       uint32
	Seq        uint16
	HasSeq     bool
	Extensions []gtpv1.ExtensionHeader
	TPDU       []byte
}

// Marshal encodes the G-PDU PDU: header (with any extension headers)
// followed verbatim by the T-PDU payload.
func (m *GPDU) Marshal() []byte {
	h := &gtpv1.Header{
		ProtocolType:   1,
		MessageType:    MsgTypeGPDU,
		TEID:           m.Teid,
		HasSequence:    m.HasSeq,
		SequenceNumber: m.Seq,
		Extensions:     m.Extensions,
	}
	b := h.Marshal(nil, len(m.TPDU))
	return append(b, m.TPDU...)
}

// DecodeGPDU parses a GTPv1-U G-PDU PDU. The bytes remaining after the
// header (bounded by the header's declared Length) are the T-PDU,
// returned unparsed: this codec has no opinion on what protocol the
// tunneled packet carries (spec.md §1 non-goals).
func DecodeGPDU(buf []byte) (*GPDU, error) {
	h, payload, err := decodeMessage(buf, MsgTypeGPDU)
	if err != nil {
		return nil, err
	}
	return &GPDU{
		Teid:       h.TEID,
		Seq:        h.SequenceNumber,
		HasSeq:     h.HasSequence,
		Extensions: h.Extensions,
		TPDU:       append([]byte(nil), payload...),
	}, nil
}
