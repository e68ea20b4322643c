package gtpv2

// CreateBearerRequest establishes one or more dedicated bearers on an
// existing PDN connection (TS 29.274 7.2.3).
type CreateBearerRequest struct {
	LinkedEBI      *EPSBearerID
	PCO            *ProtocolConfigOptions
	BearerContexts []*BearerContext
}

func (r *CreateBearerRequest) MessageType() uint8 { return MsgTypeCreateBearerRequest }

func (r *CreateBearerRequest) IEs() []IE {
	var ies []IE
	if r.LinkedEBI != nil {
		ies = append(ies, r.LinkedEBI)
	}
	if r.PCO != nil {
		ies = append(ies, r.PCO)
	}
	for i, bc := range r.BearerContexts {
		bc.ins = uint8(i)
		ies = append(ies, bc)
	}
	return ies
}

// DecodeCreateBearerRequest parses a complete Create Bearer Request PDU.
func DecodeCreateBearerRequest(buf []byte) (*Header, *CreateBearerRequest, error) {
	h, ies, err := decodeMessage(buf, MsgTypeCreateBearerRequest)
	if err != nil {
		return nil, nil, err
	}
	r := &CreateBearerRequest{}
	if ie := firstOf(ies, TypeEPSBearerID, 0); ie != nil {
		r.LinkedEBI = ie.(*EPSBearerID)
	}
	if r.LinkedEBI == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeEPSBearerID)
	}
	if ie := firstOf(ies, TypeProtocolConfigOptions, 0); ie != nil {
		r.PCO = ie.(*ProtocolConfigOptions)
	}
	for _, ie := range allOf(ies, TypeBearerContext) {
		r.BearerContexts = append(r.BearerContexts, ie.(*BearerContext))
	}
	if len(r.BearerContexts) == 0 {
		return nil, nil, MessageMandatoryIEMissing(TypeBearerContext)
	}
	return h, r, nil
}

// CreateBearerResponse answers a Create Bearer Request (TS 29.274 7.2.4).
type CreateBearerResponse struct {
	Cause          *Cause
	BearerContexts []*BearerContext
	Recovery       *Recovery
}

func (r *CreateBearerResponse) MessageType() uint8 { return MsgTypeCreateBearerResponse }

func (r *CreateBearerResponse) IEs() []IE {
	var ies []IE
	if r.Cause != nil {
		ies = append(ies, r.Cause)
	}
	for i, bc := range r.BearerContexts {
		bc.ins = uint8(i)
		ies = append(ies, bc)
	}
	if r.Recovery != nil {
		ies = append(ies, r.Recovery)
	}
	return ies
}

// DecodeCreateBearerResponse parses a complete Create Bearer Response PDU.
func DecodeCreateBearerResponse(buf []byte) (*Header, *CreateBearerResponse, error) {
	h, ies, err := decodeMessage(buf, MsgTypeCreateBearerResponse)
	if err != nil {
		return nil, nil, err
	}
	r := &CreateBearerResponse{}
	if ie := firstOf(ies, TypeCause, 0); ie != nil {
		r.Cause = ie.(*Cause)
	}
	if r.Cause == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeCause)
	}
	for _, ie := range allOf(ies, TypeBearerContext) {
		r.BearerContexts = append(r.BearerContexts, ie.(*BearerContext))
	}
	if ie := firstOf(ies, TypeRecovery, 0); ie != nil {
		r.Recovery = ie.(*Recovery)
	}
	return h, r, nil
}

// UpdateBearerRequest modifies QoS or TFT on one or more bearers (TS 29.274
// 7.2.5).
type UpdateBearerRequest struct {
	PCO            *ProtocolConfigOptions
	AMBR           *AggregateMaximumBitRate
	BearerContexts []*BearerContext
}

func (r *UpdateBearerRequest) MessageType() uint8 { return MsgTypeUpdateBearerRequest }

func (r *UpdateBearerRequest) IEs() []IE {
	var ies []IE
	if r.PCO != nil {
		ies = append(ies, r.PCO)
	}
	if r.AMBR != nil {
		ies = append(ies, r.AMBR)
	}
	for i, bc := range r.BearerContexts {
		bc.ins = uint8(i)
		ies = append(ies, bc)
	}
	return ies
}

// DecodeUpdateBearerRequest parses a complete Update Bearer Request PDU.
func DecodeUpdateBearerRequest(buf []byte) (*Header, *UpdateBearerRequest, error) {
	h, ies, err := decodeMessage(buf, MsgTypeUpdateBearerRequest)
	if err != nil {
		return nil, nil, err
	}
	r := &UpdateBearerRequest{}
	if ie := firstOf(ies, TypeProtocolConfigOptions, 0); ie != nil {
		r.PCO = ie.(*ProtocolConfigOptions)
	}
	if ie := firstOf(ies, TypeAggregateMaximumBitRate, 0); ie != nil {
		r.AMBR = ie.(*AggregateMaximumBitRate)
	}
	for _, ie := range allOf(ies, TypeBearerContext) {
		r.BearerContexts = append(r.BearerContexts, ie.(*BearerContext))
	}
	if len(r.BearerContexts) == 0 {
		return nil, nil, MessageMandatoryIEMissing(TypeBearerContext)
	}
	return h, r, nil
}

// UpdateBearerResponse answers an Update Bearer Request (TS 29.274 7.2.6).
type UpdateBearerResponse struct {
	Cause          *Cause
	BearerContexts []*BearerContext
}

func (r *UpdateBearerResponse) MessageType() uint8 { return MsgTypeUpdateBearerResponse }

func (r *UpdateBearerResponse) IEs() []IE {
	var ies []IE
	if r.Cause != nil {
		ies = append(ies, r.Cause)
	}
	for i, bc := range r.BearerContexts {
		bc.ins = uint8(i)
		ies = append(ies, bc)
	}
	return ies
}

// DecodeUpdateBearerResponse parses a complete Update Bearer Response PDU.
func DecodeUpdateBearerResponse(buf []byte) (*Header, *UpdateBearerResponse, error) {
	h, ies, err := decodeMessage(buf, MsgTypeUpdateBearerResponse)
	if err != nil {
		return nil, nil, err
	}
	r := &UpdateBearerResponse{}
	if ie := firstOf(ies, TypeCause, 0); ie != nil {
		r.Cause = ie.(*Cause)
	}
	if r.Cause == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeCause)
	}
	for _, ie := range allOf(ies, TypeBearerContext) {
		r.BearerContexts = append(r.BearerContexts, ie.(*BearerContext))
	}
	return h, r, nil
}

// DeleteBearerRequest tears down one or more dedicated bearers (TS 29.274
// 7.2.11).
type DeleteBearerRequest struct {
	EBIs []*EPSBearerID
	PCO  *ProtocolConfigOptions
}

func (r *DeleteBearerRequest) MessageType() uint8 { return MsgTypeDeleteBearerRequest }

func (r *DeleteBearerRequest) IEs() []IE {
	var ies []IE
	for i, ebi := range r.EBIs {
		ebi.ins = uint8(i)
		ies = append(ies, ebi)
	}
	if r.PCO != nil {
		ies = append(ies, r.PCO)
	}
	return ies
}

// DecodeDeleteBearerRequest parses a complete Delete Bearer Request PDU.
func DecodeDeleteBearerRequest(buf []byte) (*Header, *DeleteBearerRequest, error) {
	h, ies, err := decodeMessage(buf, MsgTypeDeleteBearerRequest)
	if err != nil {
		return nil, nil, err
	}
	r := &DeleteBearerRequest{}
	for _, ie := range allOf(ies, TypeEPSBearerID) {
		r.EBIs = append(r.EBIs, ie.(*EPSBearerID))
	}
	if len(r.EBIs) == 0 {
		return nil, nil, MessageMandatoryIEMissing(TypeEPSBearerID)
	}
	if ie := firstOf(ies, TypeProtocolConfigOptions, 0); ie != nil {
		r.PCO = ie.(*ProtocolConfigOptions)
	}
	return h, r, nil
}

// DeleteBearerResponse answers a Delete Bearer Request (TS 29.274 7.2.12).
type DeleteBearerResponse struct {
	Cause *Cause
	EBIs  []*EPSBearerID
}

func (r *DeleteBearerResponse) MessageType() uint8 { return MsgTypeDeleteBearerResponse }

func (r *DeleteBearerResponse) IEs() []IE {
	var ies []IE
	if r.Cause != nil {
		ies = append(ies, r.Cause)
	}
	for i, ebi := range r.EBIs {
		ebi.ins = uint8(i)
		ies = append(ies, ebi)
	}
	return ies
}

// DecodeDeleteBearerResponse parses a complete Delete Bearer Response PDU.
func DecodeDeleteBearerResponse(buf []byte) (*Header, *DeleteBearerResponse, error) {
	h, ies, err := decodeMessage(buf, MsgTypeDeleteBearerResponse)
	if err != nil {
		return nil, nil, err
	}
	r := &DeleteBearerResponse{}
	if ie := firstOf(ies, TypeCause, 0); ie != nil {
		r.Cause = ie.(*Cause)
	}
	if r.Cause == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeCause)
	}
	for _, ie := range allOf(ies, TypeEPSBearerID) {
		r.EBIs = append(r.EBIs, ie.(*EPSBearerID))
	}
	return h, r, nil
}

// BearerResourceCommand requests a dedicated-bearer resource allocation
// change from the PCRF/PGW (TS 29.274 7.2.13).
type BearerResourceCommand struct {
	LinkedEBI *EPSBearerID
	PCO       *ProtocolConfigOptions
}

func (r *BearerResourceCommand) MessageType() uint8 { return MsgTypeBearerResourceCommand }

func (r *BearerResourceCommand) IEs() []IE {
	var ies []IE
	if r.LinkedEBI != nil {
		ies = append(ies, r.LinkedEBI)
	}
	if r.PCO != nil {
		ies = append(ies, r.PCO)
	}
	return ies
}

// DecodeBearerResourceCommand parses a complete Bearer Resource Command
// PDU.
func DecodeBearerResourceCommand(buf []byte) (*Header, *BearerResourceCommand, error) {
	h, ies, err := decodeMessage(buf, MsgTypeBearerResourceCommand)
	if err != nil {
		return nil, nil, err
	}
	r := &BearerResourceCommand{}
	if ie := firstOf(ies, TypeEPSBearerID, 0); ie != nil {
		r.LinkedEBI = ie.(*EPSBearerID)
	}
	if r.LinkedEBI == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeEPSBearerID)
	}
	if ie := firstOf(ies, TypeProtocolConfigOptions, 0); ie != nil {
		r.PCO = ie.(*ProtocolConfigOptions)
	}
	return h, r, nil
}

// ReleaseAccessBearersRequest tells the SGW to release its S1-U bearers
// while keeping the session (TS 29.274 7.2.14), e.g. during ECM-IDLE.
type ReleaseAccessBearersRequest struct {
}

func (r *ReleaseAccessBearersRequest) MessageType() uint8 {
	return MsgTypeReleaseAccessBearersRequest
}
func (r *ReleaseAccessBearersRequest) IEs() []IE { return nil }

// DecodeReleaseAccessBearersRequest parses a complete Release Access
// Bearers Request PDU.
func DecodeReleaseAccessBearersRequest(buf []byte) (*Header, *ReleaseAccessBearersRequest, error) {
	h, _, err := decodeMessage(buf, MsgTypeReleaseAccessBearersRequest)
	if err != nil {
		return nil, nil, err
	}
	return h, &ReleaseAccessBearersRequest{}, nil
}

// ReleaseAccessBearersResponse answers a Release Access Bearers Request
// (TS 29.274 7.2.15).
type ReleaseAccessBearersResponse struct {
	Cause *Cause
}

func (r *ReleaseAccessBearersResponse) MessageType() uint8 {
	return MsgTypeReleaseAccessBearersResponse
}
func (r *ReleaseAccessBearersResponse) IEs() []IE {
	if r.Cause == nil {
		return nil
	}
	return []IE{r.Cause}
}

// DecodeReleaseAccessBearersResponse parses a complete Release Access
// Bearers Response PDU.
func DecodeReleaseAccessBearersResponse(buf []byte) (*Header, *ReleaseAccessBearersResponse, error) {
	h, ies, err := decodeMessage(buf, MsgTypeReleaseAccessBearersResponse)
	if err != nil {
		return nil, nil, err
	}
	r := &ReleaseAccessBearersResponse{}
	if ie := firstOf(ies, TypeCause, 0); ie != nil {
		r.Cause = ie.(*Cause)
	}
	if r.Cause == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeCause)
	}
	return h, r, nil
}
