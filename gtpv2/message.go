package gtpv2

// GTPv2-C message type numbers (TS 29.274 table 6.1-1), the subset this
// codec implements with a dedicated variant (spec.md §8.8, §3.3).
const (
	MsgTypeEchoRequest                 = 1
	MsgTypeEchoResponse                = 2
	MsgTypeCreateSessionRequest        = 32
	MsgTypeCreateSessionResponse       = 33
	MsgTypeModifyBearerRequest         = 34
	MsgTypeModifyBearerResponse        = 35
	MsgTypeDeleteSessionRequest        = 36
	MsgTypeDeleteSessionResponse       = 37
	MsgTypeCreateBearerRequest         = 95
	MsgTypeCreateBearerResponse        = 96
	MsgTypeUpdateBearerRequest         = 97
	MsgTypeUpdateBearerResponse        = 98
	MsgTypeDeleteBearerRequest         = 99
	MsgTypeDeleteBearerResponse        = 100
	MsgTypeBearerResourceCommand       = 68
	MsgTypeBearerResourceFailureIndication = 69
	MsgTypeTraceSessionActivation      = 71
	MsgTypeTraceSessionDeactivation    = 72
	MsgTypeContextRequest              = 130
	MsgTypeContextResponse             = 131
	MsgTypeContextAcknowledge           = 132
	MsgTypeForwardRelocationRequest     = 133
	MsgTypeForwardRelocationResponse    = 135
	MsgTypeReleaseAccessBearersRequest  = 170
	MsgTypeReleaseAccessBearersResponse = 171
)

// Message is implemented by every concrete v2 message type (spec.md §3.3).
type Message interface {
	// MessageType returns the message's 8-bit type number.
	MessageType() uint8
	// IEs returns the field-by-field emission order defined for this
	// message (spec.md §4.3.3): unlike v1, this is not tag-sorted, it is a
	// fixed per-message order.
	IEs() []IE
}

// Marshal encodes a complete v2 PDU: header followed by the message's IEs
// in their declared field order. The header's length is computed from the
// IEs' Len() before the header is written.
func Marshal(h *Header, m Message) []byte {
	h.MessageType = m.MessageType()
	ies := m.IEs()
	bodyLen := 0
	for _, ie := range ies {
		bodyLen += ie.Len()
	}
	length := h.Len() - 4 + bodyLen
	b := make([]byte, 0, h.Len()+bodyLen)
	b = h.Marshal(b, length)
	for _, ie := range ies {
		b = ie.Marshal(b)
	}
	return b
}

// decodeMessage parses the header and flat IE list shared by every v2
// message, checking the message type matches want and the header length
// field against the slice actually supplied (spec.md §4.3.2, §7).
func decodeMessage(buf []byte, want uint8) (*Header, []IE, error) {
	h, rest, err := DecodeHeader(buf)
	if err != nil {
		return nil, nil, err
	}
	if h.MessageType != want {
		return nil, nil, MessageIncorrectMessageType(h.MessageType, want)
	}
	ies, err := DecodeIEs(rest)
	if err != nil {
		return nil, nil, err
	}
	return h, ies, nil
}
