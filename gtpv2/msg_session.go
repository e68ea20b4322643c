package gtpv2

// F-TEID instance conventions used throughout the session messages (TS
// 29.274 7.2.1, table 7.2.1-1): instance 0 is the IE's own interface (the
// control-plane sender), instance 1 is the PGW S5/S8 control-plane F-TEID
// offered back, per the interface types named in each field.
const (
	instanceSender = 0
	instancePGWS5S8CPlane = 1
)

// CreateSessionRequest establishes a new PDN connection (TS 29.274 7.2.1).
type CreateSessionRequest struct {
	IMSI              *IMSI
	MSISDN            *MSISDN
	MEI               *MobileEquipmentIdentity
	ULI               *ULI
	ServingNetwork    *ServingNetwork
	RATType           *RATType
	Indication        *Indication
	SenderFTEID       *FTEID
	PGWS5S8CPlaneFTEID *FTEID
	APN               *AccessPointName
	SelectionMode     *SelectionMode
	PDNType           *PDNType
	PAA               *PDNAddressAllocation
	APNRestriction    *APNRestriction
	AMBR              *AggregateMaximumBitRate
	BearerContexts    []*BearerContext
	Recovery          *Recovery
	PrivateExtension  *PrivateExtension
}

func (r *CreateSessionRequest) MessageType() uint8 { return MsgTypeCreateSessionRequest }

func (r *CreateSessionRequest) IEs() []IE {
	var ies []IE
	add := func(ie IE) {
		if ie != nil {
			ies = append(ies, ie)
		}
	}
	add(r.IMSI)
	add(r.MSISDN)
	add(r.MEI)
	add(r.ULI)
	add(r.ServingNetwork)
	add(r.RATType)
	add(r.Indication)
	if r.SenderFTEID != nil {
		r.SenderFTEID.ins = instanceSender
		ies = append(ies, r.SenderFTEID)
	}
	if r.PGWS5S8CPlaneFTEID != nil {
		r.PGWS5S8CPlaneFTEID.ins = instancePGWS5S8CPlane
		ies = append(ies, r.PGWS5S8CPlaneFTEID)
	}
	add(r.APN)
	add(r.SelectionMode)
	add(r.PDNType)
	add(r.PAA)
	add(r.APNRestriction)
	add(r.AMBR)
	for i, bc := range r.BearerContexts {
		bc.ins = uint8(i)
		ies = append(ies, bc)
	}
	add(r.Recovery)
	add(r.PrivateExtension)
	return ies
}

// DecodeCreateSessionRequest parses a complete Create Session Request PDU,
// requiring IMSI as the first mandatory field (spec.md §7, FirstIEMissing)
// and APN/SenderFTEID as the remaining mandatory IEs.
func DecodeCreateSessionRequest(buf []byte) (*Header, *CreateSessionRequest, error) {
	h, ies, err := decodeMessage(buf, MsgTypeCreateSessionRequest)
	if err != nil {
		return nil, nil, err
	}
	r := &CreateSessionRequest{}
	if ie := firstOf(ies, TypeIMSI, 0); ie != nil {
		r.IMSI = ie.(*IMSI)
	}
	if r.IMSI == nil {
		return nil, nil, FirstIEMissing(TypeIMSI)
	}
	if ie := firstOf(ies, TypeMSISDN, 0); ie != nil {
		r.MSISDN = ie.(*MSISDN)
	}
	if ie := firstOf(ies, TypeMobileEquipmentIdentity, 0); ie != nil {
		r.MEI = ie.(*MobileEquipmentIdentity)
	}
	if ie := firstOf(ies, TypeULI, 0); ie != nil {
		r.ULI = ie.(*ULI)
	}
	if ie := firstOf(ies, TypeServingNetwork, 0); ie != nil {
		r.ServingNetwork = ie.(*ServingNetwork)
	}
	if ie := firstOf(ies, TypeRATType, 0); ie != nil {
		r.RATType = ie.(*RATType)
	}
	if ie := firstOf(ies, TypeIndication, 0); ie != nil {
		r.Indication = ie.(*Indication)
	}
	if ie := firstOf(ies, TypeFTEID, instanceSender); ie != nil {
		r.SenderFTEID = ie.(*FTEID)
	}
	if r.SenderFTEID == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeFTEID)
	}
	if ie := firstOf(ies, TypeFTEID, instancePGWS5S8CPlane); ie != nil {
		r.PGWS5S8CPlaneFTEID = ie.(*FTEID)
	}
	if ie := firstOf(ies, TypeAccessPointName, 0); ie != nil {
		r.APN = ie.(*AccessPointName)
	}
	if r.APN == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeAccessPointName)
	}
	if ie := firstOf(ies, TypeSelectionMode, 0); ie != nil {
		r.SelectionMode = ie.(*SelectionMode)
	}
	if ie := firstOf(ies, TypePDNType, 0); ie != nil {
		r.PDNType = ie.(*PDNType)
	}
	if ie := firstOf(ies, TypePDNAddressAllocation, 0); ie != nil {
		r.PAA = ie.(*PDNAddressAllocation)
	}
	if ie := firstOf(ies, TypeAPNRestriction, 0); ie != nil {
		r.APNRestriction = ie.(*APNRestriction)
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
	if ie := firstOf(ies, TypeRecovery, 0); ie != nil {
		r.Recovery = ie.(*Recovery)
	}
	if ie := firstOf(ies, TypePrivateExtension, 0); ie != nil {
		r.PrivateExtension = ie.(*PrivateExtension)
	}
	return h, r, nil
}

// CreateSessionResponse answers a Create Session Request (TS 29.274
// 7.2.2).
type CreateSessionResponse struct {
	Cause             *Cause
	PGWS5S8CPlaneFTEID *FTEID
	PAA               *PDNAddressAllocation
	APNRestriction    *APNRestriction
	AMBR              *AggregateMaximumBitRate
	BearerContexts    []*BearerContext
	Recovery          *Recovery
	PrivateExtension  *PrivateExtension
}

func (r *CreateSessionResponse) MessageType() uint8 { return MsgTypeCreateSessionResponse }

func (r *CreateSessionResponse) IEs() []IE {
	var ies []IE
	add := func(ie IE) {
		if ie != nil {
			ies = append(ies, ie)
		}
	}
	add(r.Cause)
	if r.PGWS5S8CPlaneFTEID != nil {
		r.PGWS5S8CPlaneFTEID.ins = instancePGWS5S8CPlane
		ies = append(ies, r.PGWS5S8CPlaneFTEID)
	}
	add(r.PAA)
	add(r.APNRestriction)
	add(r.AMBR)
	for i, bc := range r.BearerContexts {
		bc.ins = uint8(i)
		ies = append(ies, bc)
	}
	add(r.Recovery)
	add(r.PrivateExtension)
	return ies
}

// DecodeCreateSessionResponse parses a complete Create Session Response
// PDU.
func DecodeCreateSessionResponse(buf []byte) (*Header, *CreateSessionResponse, error) {
	h, ies, err := decodeMessage(buf, MsgTypeCreateSessionResponse)
	if err != nil {
		return nil, nil, err
	}
	r := &CreateSessionResponse{}
	if ie := firstOf(ies, TypeCause, 0); ie != nil {
		r.Cause = ie.(*Cause)
	}
	if r.Cause == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeCause)
	}
	if ie := firstOf(ies, TypeFTEID, instancePGWS5S8CPlane); ie != nil {
		r.PGWS5S8CPlaneFTEID = ie.(*FTEID)
	}
	if ie := firstOf(ies, TypePDNAddressAllocation, 0); ie != nil {
		r.PAA = ie.(*PDNAddressAllocation)
	}
	if ie := firstOf(ies, TypeAPNRestriction, 0); ie != nil {
		r.APNRestriction = ie.(*APNRestriction)
	}
	if ie := firstOf(ies, TypeAggregateMaximumBitRate, 0); ie != nil {
		r.AMBR = ie.(*AggregateMaximumBitRate)
	}
	for _, ie := range allOf(ies, TypeBearerContext) {
		r.BearerContexts = append(r.BearerContexts, ie.(*BearerContext))
	}
	if ie := firstOf(ies, TypeRecovery, 0); ie != nil {
		r.Recovery = ie.(*Recovery)
	}
	if ie := firstOf(ies, TypePrivateExtension, 0); ie != nil {
		r.PrivateExtension = ie.(*PrivateExtension)
	}
	return h, r, nil
}

// ModifyBearerRequest updates an established session, typically on
// handover (TS 29.274 7.2.7).
type ModifyBearerRequest struct {
	MEI            *MobileEquipmentIdentity
	ULI            *ULI
	ServingNetwork *ServingNetwork
	RATType        *RATType
	Indication     *Indication
	SenderFTEID    *FTEID
	BearerContexts []*BearerContext
	Recovery       *Recovery
}

func (r *ModifyBearerRequest) MessageType() uint8 { return MsgTypeModifyBearerRequest }

func (r *ModifyBearerRequest) IEs() []IE {
	var ies []IE
	add := func(ie IE) {
		if ie != nil {
			ies = append(ies, ie)
		}
	}
	add(r.MEI)
	add(r.ULI)
	add(r.ServingNetwork)
	add(r.RATType)
	add(r.Indication)
	if r.SenderFTEID != nil {
		r.SenderFTEID.ins = instanceSender
		ies = append(ies, r.SenderFTEID)
	}
	for i, bc := range r.BearerContexts {
		bc.ins = uint8(i)
		ies = append(ies, bc)
	}
	add(r.Recovery)
	return ies
}

// DecodeModifyBearerRequest parses a complete Modify Bearer Request PDU.
func DecodeModifyBearerRequest(buf []byte) (*Header, *ModifyBearerRequest, error) {
	h, ies, err := decodeMessage(buf, MsgTypeModifyBearerRequest)
	if err != nil {
		return nil, nil, err
	}
	r := &ModifyBearerRequest{}
	if ie := firstOf(ies, TypeMobileEquipmentIdentity, 0); ie != nil {
		r.MEI = ie.(*MobileEquipmentIdentity)
	}
	if ie := firstOf(ies, TypeULI, 0); ie != nil {
		r.ULI = ie.(*ULI)
	}
	if ie := firstOf(ies, TypeServingNetwork, 0); ie != nil {
		r.ServingNetwork = ie.(*ServingNetwork)
	}
	if ie := firstOf(ies, TypeRATType, 0); ie != nil {
		r.RATType = ie.(*RATType)
	}
	if ie := firstOf(ies, TypeIndication, 0); ie != nil {
		r.Indication = ie.(*Indication)
	}
	if ie := firstOf(ies, TypeFTEID, instanceSender); ie != nil {
		r.SenderFTEID = ie.(*FTEID)
	}
	for _, ie := range allOf(ies, TypeBearerContext) {
		r.BearerContexts = append(r.BearerContexts, ie.(*BearerContext))
	}
	if ie := firstOf(ies, TypeRecovery, 0); ie != nil {
		r.Recovery = ie.(*Recovery)
	}
	return h, r, nil
}

// ModifyBearerResponse answers a Modify Bearer Request (TS 29.274 7.2.8).
type ModifyBearerResponse struct {
	Cause          *Cause
	BearerContexts []*BearerContext
	Recovery       *Recovery
}

func (r *ModifyBearerResponse) MessageType() uint8 { return MsgTypeModifyBearerResponse }

func (r *ModifyBearerResponse) IEs() []IE {
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

// DecodeModifyBearerResponse parses a complete Modify Bearer Response PDU.
func DecodeModifyBearerResponse(buf []byte) (*Header, *ModifyBearerResponse, error) {
	h, ies, err := decodeMessage(buf, MsgTypeModifyBearerResponse)
	if err != nil {
		return nil, nil, err
	}
	r := &ModifyBearerResponse{}
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

// DeleteSessionRequest tears down a PDN connection (TS 29.274 7.2.9).
type DeleteSessionRequest struct {
	LinkedEBI  *EPSBearerID
	ULI        *ULI
	Indication *Indication
}

func (r *DeleteSessionRequest) MessageType() uint8 { return MsgTypeDeleteSessionRequest }

func (r *DeleteSessionRequest) IEs() []IE {
	var ies []IE
	add := func(ie IE) {
		if ie != nil {
			ies = append(ies, ie)
		}
	}
	add(r.LinkedEBI)
	add(r.ULI)
	add(r.Indication)
	return ies
}

// DecodeDeleteSessionRequest parses a complete Delete Session Request PDU.
func DecodeDeleteSessionRequest(buf []byte) (*Header, *DeleteSessionRequest, error) {
	h, ies, err := decodeMessage(buf, MsgTypeDeleteSessionRequest)
	if err != nil {
		return nil, nil, err
	}
	r := &DeleteSessionRequest{}
	if ie := firstOf(ies, TypeEPSBearerID, 0); ie != nil {
		r.LinkedEBI = ie.(*EPSBearerID)
	}
	if r.LinkedEBI == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeEPSBearerID)
	}
	if ie := firstOf(ies, TypeULI, 0); ie != nil {
		r.ULI = ie.(*ULI)
	}
	if ie := firstOf(ies, TypeIndication, 0); ie != nil {
		r.Indication = ie.(*Indication)
	}
	return h, r, nil
}

// DeleteSessionResponse answers a Delete Session Request (TS 29.274
// 7.2.10).
type DeleteSessionResponse struct {
	Cause            *Cause
	Recovery         *Recovery
	PrivateExtension *PrivateExtension
}

func (r *DeleteSessionResponse) MessageType() uint8 { return MsgTypeDeleteSessionResponse }

func (r *DeleteSessionResponse) IEs() []IE {
	var ies []IE
	add := func(ie IE) {
		if ie != nil {
			ies = append(ies, ie)
		}
	}
	add(r.Cause)
	add(r.Recovery)
	add(r.PrivateExtension)
	return ies
}

// DecodeDeleteSessionResponse parses a complete Delete Session Response
// PDU.
func DecodeDeleteSessionResponse(buf []byte) (*Header, *DeleteSessionResponse, error) {
	h, ies, err := decodeMessage(buf, MsgTypeDeleteSessionResponse)
	if err != nil {
		return nil, nil, err
	}
	r := &DeleteSessionResponse{}
	if ie := firstOf(ies, TypeCause, 0); ie != nil {
		r.Cause = ie.(*Cause)
	}
	if r.Cause == nil {
		return nil, nil, MessageMandatoryIEMissing(TypeCause)
	}
	if ie := firstOf(ies, TypeRecovery, 0); ie != nil {
		r.Recovery = ie.(*Recovery)
	}
	if ie := firstOf(ies, TypePrivateExtension, 0); ie != nil {
		r.PrivateExtension = ie.(*PrivateExtension)
	}
	return h, r, nil
}
