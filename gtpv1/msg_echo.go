package gtpv1

// v1-C message type tags, 3GPP TS 29.060 table 6.
const (
	MsgTypeEchoRequest             = 1
	MsgTypeEchoResponse            = 2
	MsgTypeCreatePDPContextRequest  = 16
	MsgTypeCreatePDPContextResponse = 17
	MsgTypeUpdatePDPContextRequest  = 18
	MsgTypeUpdatePDPContextResponse = 19
	MsgTypeDeletePDPContextRequest  = 20
	MsgTypeDeletePDPContextResponse = 21
	MsgTypeErrorIndication          = 26
)

// EchoRequest carries no mandatory IEs; it is a liveness probe (TS 29.060
// 7.2.1).
type EchoRequest struct {
	Teid             uint32
	PrivateExtension *PrivateExtension
}

func (m *EchoRequest) MessageType() uint8 { return MsgTypeEchoRequest }
func (m *EchoRequest) TEID() uint32       { return m.Teid }
func (m *EchoRequest) IEs() []IE {
	var ies []IE
	if m.PrivateExtension != nil {
		ies = append(ies, m.PrivateExtension)
	}
	return ies
}

// DecodeEchoRequest parses a GTPv1-C Echo Request PDU.
func DecodeEchoRequest(buf []byte) (*EchoRequest, error) {
	d, err := decodeMessage(buf, MsgTypeEchoRequest)
	if err != nil {
		return nil, err
	}
	m := &EchoRequest{Teid: d.header.TEID}
	if ie := firstOf(d.ies, TypePrivateExtension); ie != nil {
		m.PrivateExtension = ie.(*PrivateExtension)
	}
	return m, nil
}

// EchoResponse confirms liveness and the peer's restart counter (TS
// 29.060 7.2.2).
type EchoResponse struct {
	Teid             uint32
	Recovery         *Recovery
	PrivateExtension *PrivateExtension
}

func (m *EchoResponse) MessageType() uint8 { return MsgTypeEchoResponse }
func (m *EchoResponse) TEID() uint32       { return m.Teid }
func (m *EchoResponse) IEs() []IE {
	ies := []IE{m.Recovery}
	if m.PrivateExtension != nil {
		ies = append(ies, m.PrivateExtension)
	}
	return ies
}

// DecodeEchoResponse parses a GTPv1-C Echo Response PDU.
func DecodeEchoResponse(buf []byte) (*EchoResponse, error) {
	d, err := decodeMessage(buf, MsgTypeEchoResponse)
	if err != nil {
		return nil, err
	}
	m := &EchoResponse{Teid: d.header.TEID}
	if ie := firstOf(d.ies, TypeRecovery); ie != nil {
		m.Recovery = ie.(*Recovery)
	} else {
		return nil, MessageMandatoryIEMissing(TypeRecovery)
	}
	if ie := firstOf(d.ies, TypePrivateExtension); ie != nil {
		m.PrivateExtension = ie.(*PrivateExtension)
	}
	return m, nil
}

// ErrorIndication reports a received G-PDU for which no PDP context exists
// (TS 29.060 7.5.1). TEID Data I and the peer's GSN Address are mandatory.
type ErrorIndication struct {
	Teid             uint32 // header TEID, 0 for this message
	TEIDDataI        *TEIDDataI
	GSNAddress       *GSNAddress
	PrivateExtension *PrivateExtension
}

func (m *ErrorIndication) MessageType() uint8 { return MsgTypeErrorIndication }
func (m *ErrorIndication) TEID() uint32       { return m.Teid }
func (m *ErrorIndication) IEs() []IE {
	ies := []IE{m.TEIDDataI, m.GSNAddress}
	if m.PrivateExtension != nil {
		ies = append(ies, m.PrivateExtension)
	}
	return ies
}

// DecodeErrorIndication parses a GTPv1-C Error Indication PDU.
func DecodeErrorIndication(buf []byte) (*ErrorIndication, error) {
	d, err := decodeMessage(buf, MsgTypeErrorIndication)
	if err != nil {
		return nil, err
	}
	m := &ErrorIndication{Teid: d.header.TEID}
	ie := firstOf(d.ies, TypeTEIDDataI)
	if ie == nil {
		return nil, MessageMandatoryIEMissing(TypeTEIDDataI)
	}
	m.TEIDDataI = ie.(*TEIDDataI)

	ie = firstOf(d.ies, TypeGSNAddress)
	if ie == nil {
		return nil, MessageMandatoryIEMissing(TypeGSNAddress)
	}
	m.GSNAddress = ie.(*GSNAddress)

	if ie := firstOf(d.ies, TypePrivateExtension); ie != nil {
		m.PrivateExtension = ie.(*PrivateExtension)
	}
	return m, nil
}
