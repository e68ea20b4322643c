package gtpv2

// EchoRequest is a path-management keepalive (TS 29.274 7.2.1).
type EchoRequest struct {
	Recovery *Recovery
}

func (r *EchoRequest) MessageType() uint8 { return MsgTypeEchoRequest }

func (r *EchoRequest) IEs() []IE {
	var ies []IE
	if r.Recovery != nil {
		ies = append(ies, r.Recovery)
	}
	return ies
}

// DecodeEchoRequest parses a complete Echo Request PDU.
func DecodeEchoRequest(buf []byte) (*Header, *EchoRequest, error) {
	h, ies, err := decodeMessage(buf, MsgTypeEchoRequest)
	if err != nil {
		return nil, nil, err
	}
	r := &EchoRequest{}
	if ie := firstOf(ies, TypeRecovery, 0); ie != nil {
		r.Recovery = ie.(*Recovery)
	}
	return h, r, nil
}

// EchoResponse answers an Echo Request with the sender's restart counter
// (TS 29.274 7.2.2).
type EchoResponse struct {
	Recovery *Recovery
}

func (r *EchoResponse) MessageType() uint8 { return MsgTypeEchoResponse }

func (r *EchoResponse) IEs() []IE {
	var ies []IE
	if r.Recovery != nil {
		ies = append(ies, r.Recovery)
	}
	return ies
}

// DecodeEchoResponse parses a complete Echo Response PDU.
func DecodeEchoResponse(buf []byte) (*Header, *EchoResponse, error) {
	h, ies, err := decodeMessage(buf, MsgTypeEchoResponse)
	if err != nil {
		return nil, nil, err
	}
	r := &EchoResponse{}
	if ie := firstOf(ies, TypeRecovery, 0); ie != nil {
		r.Recovery = ie.(*Recovery)
	}
	if r.Recovery == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeRecovery)
	}
	return h, r, nil
}
