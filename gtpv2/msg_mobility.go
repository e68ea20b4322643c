package gtpv2

// ContextRequest is sent by a target SGSN/MME to fetch a UE's mobility
// context from the source node during inter-system handover (TS 29.274
// 7.3.1).
type ContextRequest struct {
	IMSI              *IMSI
	SenderFTEID       *FTEID
	TargetIdentification *TargetIdentification
	Indication        *Indication
}

func (r *ContextRequest) MessageType() uint8 { return MsgTypeContextRequest }

func (r *ContextRequest) IEs() []IE {
	var ies []IE
	if r.IMSI != nil {
		ies = append(ies, r.IMSI)
	}
	if r.SenderFTEID != nil {
		r.SenderFTEID.ins = instanceSender
		ies = append(ies, r.SenderFTEID)
	}
	if r.TargetIdentification != nil {
		ies = append(ies, r.TargetIdentification)
	}
	if r.Indication != nil {
		ies = append(ies, r.Indication)
	}
	return ies
}

// DecodeContextRequest parses a complete Context Request PDU.
func DecodeContextRequest(buf []byte) (*Header, *ContextRequest, error) {
	h, ies, err := decodeMessage(buf, MsgTypeContextRequest)
	if err != nil {
		return nil, nil, err
	}
	r := &ContextRequest{}
	if ie := firstOf(ies, TypeIMSI, 0); ie != nil {
		r.IMSI = ie.(*IMSI)
	}
	if ie := firstOf(ies, TypeFTEID, instanceSender); ie != nil {
		r.SenderFTEID = ie.(*FTEID)
	}
	if r.SenderFTEID == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeFTEID)
	}
	if ie := firstOf(ies, TypeTargetIdentification, 0); ie != nil {
		r.TargetIdentification = ie.(*TargetIdentification)
	}
	if ie := firstOf(ies, TypeIndication, 0); ie != nil {
		r.Indication = ie.(*Indication)
	}
	return h, r, nil
}

// ContextResponse carries the UE's full mobility context back to the
// requesting node (TS 29.274 7.3.2): Cause, MM Context, and one PDN
// Connection grouped IE per active PDN connection.
type ContextResponse struct {
	Cause          *Cause
	MMContext      *MMContext
	PDNConnections []*PDNConnection
	SenderFTEID    *FTEID
}

func (r *ContextResponse) MessageType() uint8 { return MsgTypeContextResponse }

func (r *ContextResponse) IEs() []IE {
	var ies []IE
	if r.Cause != nil {
		ies = append(ies, r.Cause)
	}
	if r.MMContext != nil {
		ies = append(ies, r.MMContext)
	}
	for i, pdn := range r.PDNConnections {
		pdn.ins = uint8(i)
		ies = append(ies, pdn)
	}
	if r.SenderFTEID != nil {
		r.SenderFTEID.ins = instanceSender
		ies = append(ies, r.SenderFTEID)
	}
	return ies
}

// DecodeContextResponse parses a complete Context Response PDU.
func DecodeContextResponse(buf []byte) (*Header, *ContextResponse, error) {
	h, ies, err := decodeMessage(buf, MsgTypeContextResponse)
	if err != nil {
		return nil, nil, err
	}
	r := &ContextResponse{}
	if ie := firstOf(ies, TypeCause, 0); ie != nil {
		r.Cause = ie.(*Cause)
	}
	if r.Cause == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeCause)
	}
	if ie := firstOf(ies, TypeMMContext, 0); ie != nil {
		r.MMContext = ie.(*MMContext)
	}
	for _, ie := range allOf(ies, TypePDNConnection) {
		r.PDNConnections = append(r.PDNConnections, ie.(*PDNConnection))
	}
	if ie := firstOf(ies, TypeFTEID, instanceSender); ie != nil {
		r.SenderFTEID = ie.(*FTEID)
	}
	return h, r, nil
}

// ContextAcknowledge confirms a Context Response was accepted and that the
// source node may release its resources (TS 29.274 7.3.3).
type ContextAcknowledge struct {
	Cause *Cause
}

func (r *ContextAcknowledge) MessageType() uint8 { return MsgTypeContextAcknowledge }

func (r *ContextAcknowledge) IEs() []IE {
	if r.Cause == nil {
		return nil
	}
	return []IE{r.Cause}
}

// DecodeContextAcknowledge parses a complete Context Acknowledge PDU.
func DecodeContextAcknowledge(buf []byte) (*Header, *ContextAcknowledge, error) {
	h, ies, err := decodeMessage(buf, MsgTypeContextAcknowledge)
	if err != nil {
		return nil, nil, err
	}
	r := &ContextAcknowledge{}
	if ie := firstOf(ies, TypeCause, 0); ie != nil {
		r.Cause = ie.(*Cause)
	}
	if r.Cause == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeCause)
	}
	return h, r, nil
}

// ForwardRelocationRequest initiates an inter-system/inter-RAT handover
// toward a target MME/SGSN (TS 29.274 7.3.4): the heaviest v2 message,
// carrying the full MM Context and every active PDN connection.
type ForwardRelocationRequest struct {
	IMSI                 *IMSI
	MMContext            *MMContext
	PDNConnections       []*PDNConnection
	TargetIdentification *TargetIdentification
	Indication           *Indication
}

func (r *ForwardRelocationRequest) MessageType() uint8 {
	return MsgTypeForwardRelocationRequest
}

func (r *ForwardRelocationRequest) IEs() []IE {
	var ies []IE
	if r.IMSI != nil {
		ies = append(ies, r.IMSI)
	}
	if r.MMContext != nil {
		ies = append(ies, r.MMContext)
	}
	for i, pdn := range r.PDNConnections {
		pdn.ins = uint8(i)
		ies = append(ies, pdn)
	}
	if r.TargetIdentification != nil {
		ies = append(ies, r.TargetIdentification)
	}
	if r.Indication != nil {
		ies = append(ies, r.Indication)
	}
	return ies
}

// DecodeForwardRelocationRequest parses a complete Forward Relocation
// Request PDU.
func DecodeForwardRelocationRequest(buf []byte) (*Header, *ForwardRelocationRequest, error) {
	h, ies, err := decodeMessage(buf, MsgTypeForwardRelocationRequest)
	if err != nil {
		return nil, nil, err
	}
	r := &ForwardRelocationRequest{}
	if ie := firstOf(ies, TypeIMSI, 0); ie != nil {
		r.IMSI = ie.(*IMSI)
	}
	if r.IMSI == nil {
		return nil, nil, FirstIEMissing(TypeIMSI)
	}
	if ie := firstOf(ies, TypeMMContext, 0); ie != nil {
		r.MMContext = ie.(*MMContext)
	}
	if r.MMContext == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeMMContext)
	}
	for _, ie := range allOf(ies, TypePDNConnection) {
		r.PDNConnections = append(r.PDNConnections, ie.(*PDNConnection))
	}
	if len(r.PDNConnections) == 0 {
		return nil, nil, MessageMandatoryIEMissing(TypePDNConnection)
	}
	if ie := firstOf(ies, TypeTargetIdentification, 0); ie != nil {
		r.TargetIdentification = ie.(*TargetIdentification)
	}
	if ie := firstOf(ies, TypeIndication, 0); ie != nil {
		r.Indication = ie.(*Indication)
	}
	return h, r, nil
}

// ForwardRelocationResponse answers a Forward Relocation Request (TS
// 29.274 7.3.5).
type ForwardRelocationResponse struct {
	Cause       *Cause
	SenderFTEID *FTEID
}

func (r *ForwardRelocationResponse) MessageType() uint8 {
	return MsgTypeForwardRelocationResponse
}

func (r *ForwardRelocationResponse) IEs() []IE {
	var ies []IE
	if r.Cause != nil {
		ies = append(ies, r.Cause)
	}
	if r.SenderFTEID != nil {
		r.SenderFTEID.ins = instanceSender
		ies = append(ies, r.SenderFTEID)
	}
	return ies
}

// DecodeForwardRelocationResponse parses a complete Forward Relocation
// Response PDU.
func DecodeForwardRelocationResponse(buf []byte) (*Header, *ForwardRelocationResponse, error) {
	h, ies, err := decodeMessage(buf, MsgTypeForwardRelocationResponse)
	if err != nil {
		return nil, nil, err
	}
	r := &ForwardRelocationResponse{}
	if ie := firstOf(ies, TypeCause, 0); ie != nil {
		r.Cause = ie.(*Cause)
	}
	if r.Cause == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeCause)
	}
	if ie := firstOf(ies, TypeFTEID, instanceSender); ie != nil {
		r.SenderFTEID = ie.(*FTEID)
	}
	return h, r, nil
}

// TraceSessionActivation requests trace recording for a subscriber across
// network elements (TS 29.274 7.9.1).
type TraceSessionActivation struct {
	IMSI             *IMSI
	TraceInformation *TraceInformation
}

func (r *TraceSessionActivation) MessageType() uint8 { return MsgTypeTraceSessionActivation }

func (r *TraceSessionActivation) IEs() []IE {
	var ies []IE
	if r.IMSI != nil {
		ies = append(ies, r.IMSI)
	}
	if r.TraceInformation != nil {
		ies = append(ies, r.TraceInformation)
	}
	return ies
}

// DecodeTraceSessionActivation parses a complete Trace Session Activation
// PDU.
func DecodeTraceSessionActivation(buf []byte) (*Header, *TraceSessionActivation, error) {
	h, ies, err := decodeMessage(buf, MsgTypeTraceSessionActivation)
	if err != nil {
		return nil, nil, err
	}
	r := &TraceSessionActivation{}
	if ie := firstOf(ies, TypeIMSI, 0); ie != nil {
		r.IMSI = ie.(*IMSI)
	}
	if ie := firstOf(ies, TypeTraceInformation, 0); ie != nil {
		r.TraceInformation = ie.(*TraceInformation)
	}
	if r.TraceInformation == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeTraceInformation)
	}
	return h, r, nil
}

// TraceSessionDeactivation stops a previously activated trace (TS 29.274
// 7.9.2).
type TraceSessionDeactivation struct {
	TraceReference *TraceReference
}

func (r *TraceSessionDeactivation) MessageType() uint8 { return MsgTypeTraceSessionDeactivation }

func (r *TraceSessionDeactivation) IEs() []IE {
	if r.TraceReference == nil {
		return nil
	}
	return []IE{r.TraceReference}
}

// DecodeTraceSessionDeactivation parses a complete Trace Session
// Deactivation PDU.
func DecodeTraceSessionDeactivation(buf []byte) (*Header, *TraceSessionDeactivation, error) {
	h, ies, err := decodeMessage(buf, MsgTypeTraceSessionDeactivation)
	if err != nil {
		return nil, nil, err
	}
	r := &TraceSessionDeactivation{}
	if ie := firstOf(ies, TypeTraceReference, 0); ie != nil {
		r.TraceReference = ie.(*TraceReference)
	}
	if r.TraceReference == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeTraceReference)
	}
	return h, r, nil
}
