package gtpv1

// CreatePDPContextRequest establishes a new PDP context (TS 29.060 7.3.1).
// GSNAddressSignalling and GSNAddressUser are the first and second GSN
// Address occurrences respectively, per the positional-role duplicate
// semantics of spec.md §9.
type CreatePDPContextRequest struct {
	Teid                  uint32
	IMSI                  *IMSI
	Recovery              *Recovery
	SelectionMode         *SelectionMode
	TEIDDataI             *TEIDDataI
	TEIDControlPlane      *TEIDControlPlane
	NSAPI                 *NSAPI
	ChargingCharacteristics *ChargingCharacteristics
	TraceReference        *TraceReference
	TraceType              *TraceType
	EndUserAddress         *EndUserAddress
	APN                    *AccessPointName
	ProtocolConfigOptions  *ProtocolConfigOptions
	GSNAddressSignalling   *GSNAddress
	GSNAddressUser         *GSNAddress
	MSISDN                 *MSISDN
	QoSProfile             *QoSProfile
	CommonFlags            *CommonFlags
	APNRestriction         *APNRestriction
	PrivateExtension       *PrivateExtension
}

func (m *CreatePDPContextRequest) MessageType() uint8 { return MsgTypeCreatePDPContextRequest }
func (m *CreatePDPContextRequest) TEID() uint32       { return m.Teid }

// IEs emits the message's IEs in canonical non-decreasing type-tag order
// (spec.md §4.3.4).
func (m *CreatePDPContextRequest) IEs() []IE {
	var ies []IE
	if m.IMSI != nil {
		ies = append(ies, m.IMSI)
	}
	if m.Recovery != nil {
		ies = append(ies, m.Recovery)
	}
	if m.SelectionMode != nil {
		ies = append(ies, m.SelectionMode)
	}
	ies = append(ies, m.TEIDDataI)
	if m.TEIDControlPlane != nil {
		ies = append(ies, m.TEIDControlPlane)
	}
	ies = append(ies, m.NSAPI)
	if m.ChargingCharacteristics != nil {
		ies = append(ies, m.ChargingCharacteristics)
	}
	if m.TraceReference != nil {
		ies = append(ies, m.TraceReference)
	}
	if m.TraceType != nil {
		ies = append(ies, m.TraceType)
	}
	if m.EndUserAddress != nil {
		ies = append(ies, m.EndUserAddress)
	}
	if m.APN != nil {
		ies = append(ies, m.APN)
	}
	if m.ProtocolConfigOptions != nil {
		ies = append(ies, m.ProtocolConfigOptions)
	}
	if m.GSNAddressSignalling != nil {
		ies = append(ies, m.GSNAddressSignalling)
	}
	if m.GSNAddressUser != nil {
		ies = append(ies, m.GSNAddressUser)
	}
	if m.MSISDN != nil {
		ies = append(ies, m.MSISDN)
	}
	ies = append(ies, m.QoSProfile)
	if m.CommonFlags != nil {
		ies = append(ies, m.CommonFlags)
	}
	if m.APNRestriction != nil {
		ies = append(ies, m.APNRestriction)
	}
	if m.PrivateExtension != nil {
		ies = append(ies, m.PrivateExtension)
	}
	return ies
}

// DecodeCreatePDPContextRequest parses a Create PDP Context Request PDU.
func DecodeCreatePDPContextRequest(buf []byte) (*CreatePDPContextRequest, error) {
	d, err := decodeMessage(buf, MsgTypeCreatePDPContextRequest)
	if err != nil {
		return nil, err
	}
	m := &CreatePDPContextRequest{Teid: d.header.TEID}

	if ie := firstOf(d.ies, TypeIMSI); ie != nil {
		m.IMSI = ie.(*IMSI)
	}
	if ie := firstOf(d.ies, TypeRecovery); ie != nil {
		m.Recovery = ie.(*Recovery)
	}
	if ie := firstOf(d.ies, TypeSelectionMode); ie != nil {
		m.SelectionMode = ie.(*SelectionMode)
	}
	ie := firstOf(d.ies, TypeTEIDDataI)
	if ie == nil {
		return nil, MessageMandatoryIEMissing(TypeTEIDDataI)
	}
	m.TEIDDataI = ie.(*TEIDDataI)
	if ie := firstOf(d.ies, TypeTEIDControlPlane); ie != nil {
		m.TEIDControlPlane = ie.(*TEIDControlPlane)
	}
	ie = firstOf(d.ies, TypeNSAPI)
	if ie == nil {
		return nil, MessageMandatoryIEMissing(TypeNSAPI)
	}
	m.NSAPI = ie.(*NSAPI)
	if ie := firstOf(d.ies, TypeChargingCharacteristics); ie != nil {
		m.ChargingCharacteristics = ie.(*ChargingCharacteristics)
	}
	if ie := firstOf(d.ies, TypeTraceReference); ie != nil {
		m.TraceReference = ie.(*TraceReference)
	}
	if ie := firstOf(d.ies, TypeTraceType); ie != nil {
		m.TraceType = ie.(*TraceType)
	}
	if ie := firstOf(d.ies, TypeEndUserAddress); ie != nil {
		m.EndUserAddress = ie.(*EndUserAddress)
	}
	if ie := firstOf(d.ies, TypeAccessPointName); ie != nil {
		m.APN = ie.(*AccessPointName)
	}
	if ie := firstOf(d.ies, TypeProtocolConfigOptions); ie != nil {
		m.ProtocolConfigOptions = ie.(*ProtocolConfigOptions)
	}
	addrs := allOf(d.ies, TypeGSNAddress)
	if len(addrs) < 2 {
		return nil, MessageMandatoryIEMissing(TypeGSNAddress)
	}
	m.GSNAddressSignalling = addrs[0].(*GSNAddress)
	m.GSNAddressUser = addrs[1].(*GSNAddress)

	if ie := firstOf(d.ies, TypeMSISDN); ie != nil {
		m.MSISDN = ie.(*MSISDN)
	}
	ie = firstOf(d.ies, TypeQoSProfile)
	if ie == nil {
		return nil, MessageMandatoryIEMissing(TypeQoSProfile)
	}
	m.QoSProfile = ie.(*QoSProfile)
	if ie := firstOf(d.ies, TypeCommonFlags); ie != nil {
		m.CommonFlags = ie.(*CommonFlags)
	}
	if ie := firstOf(d.ies, TypeAPNRestriction); ie != nil {
		m.APNRestriction = ie.(*APNRestriction)
	}
	if ie := firstOf(d.ies, TypePrivateExtension); ie != nil {
		m.PrivateExtension = ie.(*PrivateExtension)
	}
	return m, nil
}

// CreatePDPContextResponse accepts or rejects a CreatePDPContextRequest
// (TS 29.060 7.3.2). Only Cause is unconditionally mandatory; the
// remaining fields are present when Cause indicates request accepted.
type CreatePDPContextResponse struct {
	Teid                 uint32
	Cause                *Cause
	ReorderingRequired   *ReorderingRequired
	Recovery             *Recovery
	TEIDDataI            *TEIDDataI
	TEIDControlPlane     *TEIDControlPlane
	ChargingID           *ChargingID
	EndUserAddress       *EndUserAddress
	ProtocolConfigOptions *ProtocolConfigOptions
	GSNAddressSignalling *GSNAddress
	GSNAddressUser       *GSNAddress
	QoSProfile           *QoSProfile
	CommonFlags          *CommonFlags
	APNRestriction       *APNRestriction
	PrivateExtension     *PrivateExtension
}

func (m *CreatePDPContextResponse) MessageType() uint8 { return MsgTypeCreatePDPContextResponse }
func (m *CreatePDPContextResponse) TEID() uint32       { return m.Teid }
func (m *CreatePDPContextResponse) IEs() []IE {
	ies := []IE{m.Cause}
	if m.ReorderingRequired != nil {
		ies = append(ies, m.ReorderingRequired)
	}
	if m.Recovery != nil {
		ies = append(ies, m.Recovery)
	}
	if m.TEIDDataI != nil {
		ies = append(ies, m.TEIDDataI)
	}
	if m.TEIDControlPlane != nil {
		ies = append(ies, m.TEIDControlPlane)
	}
	if m.ChargingID != nil {
		ies = append(ies, m.ChargingID)
	}
	if m.EndUserAddress != nil {
		ies = append(ies, m.EndUserAddress)
	}
	if m.ProtocolConfigOptions != nil {
		ies = append(ies, m.ProtocolConfigOptions)
	}
	if m.GSNAddressSignalling != nil {
		ies = append(ies, m.GSNAddressSignalling)
	}
	if m.GSNAddressUser != nil {
		ies = append(ies, m.GSNAddressUser)
	}
	if m.QoSProfile != nil {
		ies = append(ies, m.QoSProfile)
	}
	if m.CommonFlags != nil {
		ies = append(ies, m.CommonFlags)
	}
	if m.APNRestriction != nil {
		ies = append(ies, m.APNRestriction)
	}
	if m.PrivateExtension != nil {
		ies = append(ies, m.PrivateExtension)
	}
	return ies
}

// DecodeCreatePDPContextResponse parses a Create PDP Context Response PDU.
func DecodeCreatePDPContextResponse(buf []byte) (*CreatePDPContextResponse, error) {
	d, err := decodeMessage(buf, MsgTypeCreatePDPContextResponse)
	if err != nil {
		return nil, err
	}
	m := &CreatePDPContextResponse{Teid: d.header.TEID}

	ie := firstOf(d.ies, TypeCause)
	if ie == nil {
		return nil, MessageMandatoryIEMissing(TypeCause)
	}
	m.Cause = ie.(*Cause)

	if ie := firstOf(d.ies, TypeReorderingRequired); ie != nil {
		m.ReorderingRequired = ie.(*ReorderingRequired)
	}
	if ie := firstOf(d.ies, TypeRecovery); ie != nil {
		m.Recovery = ie.(*Recovery)
	}
	if ie := firstOf(d.ies, TypeTEIDDataI); ie != nil {
		m.TEIDDataI = ie.(*TEIDDataI)
	}
	if ie := firstOf(d.ies, TypeTEIDControlPlane); ie != nil {
		m.TEIDControlPlane = ie.(*TEIDControlPlane)
	}
	if ie := firstOf(d.ies, TypeChargingID); ie != nil {
		m.ChargingID = ie.(*ChargingID)
	}
	if ie := firstOf(d.ies, TypeEndUserAddress); ie != nil {
		m.EndUserAddress = ie.(*EndUserAddress)
	}
	if ie := firstOf(d.ies, TypeProtocolConfigOptions); ie != nil {
		m.ProtocolConfigOptions = ie.(*ProtocolConfigOptions)
	}
	addrs := allOf(d.ies, TypeGSNAddress)
	if len(addrs) > 0 {
		m.GSNAddressSignalling = addrs[0].(*GSNAddress)
	}
	if len(addrs) > 1 {
		m.GSNAddressUser = addrs[1].(*GSNAddress)
	}
	if ie := firstOf(d.ies, TypeQoSProfile); ie != nil {
		m.QoSProfile = ie.(*QoSProfile)
	}
	if ie := firstOf(d.ies, TypeCommonFlags); ie != nil {
		m.CommonFlags = ie.(*CommonFlags)
	}
	if ie := firstOf(d.ies, TypeAPNRestriction); ie != nil {
		m.APNRestriction = ie.(*APNRestriction)
	}
	if ie := firstOf(d.ies, TypePrivateExtension); ie != nil {
		m.PrivateExtension = ie.(*PrivateExtension)
	}
	return m, nil
}

// UpdatePDPContextRequest relocates or refreshes an existing PDP context
// (TS 29.060 7.3.3); both the SGSN-originated and GGSN-originated field
// sets share this shape, differing only in which GSN Address occurrence
// carries which role.
type UpdatePDPContextRequest struct {
	Teid                 uint32
	IMSI                 *IMSI
	Recovery             *Recovery
	TEIDDataI            *TEIDDataI
	TEIDControlPlane     *TEIDControlPlane
	NSAPI                *NSAPI
	TraceReference       *TraceReference
	TraceType            *TraceType
	ProtocolConfigOptions *ProtocolConfigOptions
	GSNAddressSignalling *GSNAddress
	GSNAddressUser       *GSNAddress
	// AltGSNAddressSignalling and AltGSNAddressUser are the third and
	// fourth GSN Address occurrences, carrying an alternative SGSN address
	// pair used during certain relocation scenarios (spec.md §8.8 scenario
	// 3).
	AltGSNAddressSignalling *GSNAddress
	AltGSNAddressUser       *GSNAddress
	QoSProfile              *QoSProfile
	CommonFlags             *CommonFlags
	APNRestriction          *APNRestriction
	MSISDN                  *MSISDN
	PrivateExtension        *PrivateExtension
}

func (m *UpdatePDPContextRequest) MessageType() uint8 { return MsgTypeUpdatePDPContextRequest }
func (m *UpdatePDPContextRequest) TEID() uint32       { return m.Teid }
func (m *UpdatePDPContextRequest) IEs() []IE {
	var ies []IE
	if m.IMSI != nil {
		ies = append(ies, m.IMSI)
	}
	if m.Recovery != nil {
		ies = append(ies, m.Recovery)
	}
	ies = append(ies, m.TEIDDataI)
	if m.TEIDControlPlane != nil {
		ies = append(ies, m.TEIDControlPlane)
	}
	ies = append(ies, m.NSAPI)
	if m.TraceReference != nil {
		ies = append(ies, m.TraceReference)
	}
	if m.TraceType != nil {
		ies = append(ies, m.TraceType)
	}
	if m.ProtocolConfigOptions != nil {
		ies = append(ies, m.ProtocolConfigOptions)
	}
	if m.GSNAddressSignalling != nil {
		ies = append(ies, m.GSNAddressSignalling)
	}
	if m.GSNAddressUser != nil {
		ies = append(ies, m.GSNAddressUser)
	}
	if m.AltGSNAddressSignalling != nil {
		ies = append(ies, m.AltGSNAddressSignalling)
	}
	if m.AltGSNAddressUser != nil {
		ies = append(ies, m.AltGSNAddressUser)
	}
	if m.MSISDN != nil {
		ies = append(ies, m.MSISDN)
	}
	ies = append(ies, m.QoSProfile)
	if m.CommonFlags != nil {
		ies = append(ies, m.CommonFlags)
	}
	if m.APNRestriction != nil {
		ies = append(ies, m.APNRestriction)
	}
	if m.PrivateExtension != nil {
		ies = append(ies, m.PrivateExtension)
	}
	return ies
}

// DecodeUpdatePDPContextRequest parses an Update PDP Context Request PDU.
// GSN Address instances are assigned by encounter order: first occurrence
// to the control-plane address, second to the user-plane address, third
// and fourth to their alternative counterparts (spec.md §8.8 scenario 3).
// Decode fails MessageMandatoryIEMissing only when no GSN Address is
// present at all. When the first (control) occurrence is left out but later
// ones are present, the later ones fill the earlier roles in order.
func DecodeUpdatePDPContextRequest(buf []byte) (*UpdatePDPContextRequest, error) {
	d, err := decodeMessage(buf, MsgTypeUpdatePDPContextRequest)
	if err != nil {
		return nil, err
	}
	m := &UpdatePDPContextRequest{Teid: d.header.TEID}

	if ie := firstOf(d.ies, TypeIMSI); ie != nil {
		m.IMSI = ie.(*IMSI)
	}
	if ie := firstOf(d.ies, TypeRecovery); ie != nil {
		m.Recovery = ie.(*Recovery)
	}
	ie := firstOf(d.ies, TypeTEIDDataI)
	if ie == nil {
		return nil, MessageMandatoryIEMissing(TypeTEIDDataI)
	}
	m.TEIDDataI = ie.(*TEIDDataI)
	if ie := firstOf(d.ies, TypeTEIDControlPlane); ie != nil {
		m.TEIDControlPlane = ie.(*TEIDControlPlane)
	}
	ie = firstOf(d.ies, TypeNSAPI)
	if ie == nil {
		return nil, MessageMandatoryIEMissing(TypeNSAPI)
	}
	m.NSAPI = ie.(*NSAPI)
	if ie := firstOf(d.ies, TypeTraceReference); ie != nil {
		m.TraceReference = ie.(*TraceReference)
	}
	if ie := firstOf(d.ies, TypeTraceType); ie != nil {
		m.TraceType = ie.(*TraceType)
	}
	if ie := firstOf(d.ies, TypeProtocolConfigOptions); ie != nil {
		m.ProtocolConfigOptions = ie.(*ProtocolConfigOptions)
	}
	addrs := allOf(d.ies, TypeGSNAddress)
	if len(addrs) < 1 {
		return nil, MessageMandatoryIEMissing(TypeGSNAddress)
	}
	m.GSNAddressSignalling = addrs[0].(*GSNAddress)
	if len(addrs) > 1 {
		m.GSNAddressUser = addrs[1].(*GSNAddress)
	}
	if len(addrs) > 2 {
		m.AltGSNAddressSignalling = addrs[2].(*GSNAddress)
	}
	if len(addrs) > 3 {
		m.AltGSNAddressUser = addrs[3].(*GSNAddress)
	}
	ie = firstOf(d.ies, TypeQoSProfile)
	if ie == nil {
		return nil, MessageMandatoryIEMissing(TypeQoSProfile)
	}
	m.QoSProfile = ie.(*QoSProfile)
	if ie := firstOf(d.ies, TypeCommonFlags); ie != nil {
		m.CommonFlags = ie.(*CommonFlags)
	}
	if ie := firstOf(d.ies, TypeAPNRestriction); ie != nil {
		m.APNRestriction = ie.(*APNRestriction)
	}
	if ie := firstOf(d.ies, TypeMSISDN); ie != nil {
		m.MSISDN = ie.(*MSISDN)
	}
	if ie := firstOf(d.ies, TypePrivateExtension); ie != nil {
		m.PrivateExtension = ie.(*PrivateExtension)
	}
	return m, nil
}

// UpdatePDPContextResponse accepts or rejects an
// UpdatePDPContextRequest (TS 29.060 7.3.4).
type UpdatePDPContextResponse struct {
	Teid             uint32
	Cause            *Cause
	Recovery         *Recovery
	TEIDDataI        *TEIDDataI
	TEIDControlPlane *TEIDControlPlane
	ChargingID       *ChargingID
	GSNAddressSignalling *GSNAddress
	GSNAddressUser   *GSNAddress
	QoSProfile       *QoSProfile
	CommonFlags      *CommonFlags
	APNRestriction   *APNRestriction
	MSISDN           *MSISDN
	PrivateExtension *PrivateExtension
}

func (m *UpdatePDPContextResponse) MessageType() uint8 { return MsgTypeUpdatePDPContextResponse }
func (m *UpdatePDPContextResponse) TEID() uint32       { return m.Teid }
func (m *UpdatePDPContextResponse) IEs() []IE {
	ies := []IE{m.Cause}
	if m.Recovery != nil {
		ies = append(ies, m.Recovery)
	}
	if m.TEIDDataI != nil {
		ies = append(ies, m.TEIDDataI)
	}
	if m.TEIDControlPlane != nil {
		ies = append(ies, m.TEIDControlPlane)
	}
	if m.ChargingID != nil {
		ies = append(ies, m.ChargingID)
	}
	if m.GSNAddressSignalling != nil {
		ies = append(ies, m.GSNAddressSignalling)
	}
	if m.GSNAddressUser != nil {
		ies = append(ies, m.GSNAddressUser)
	}
	if m.MSISDN != nil {
		ies = append(ies, m.MSISDN)
	}
	if m.QoSProfile != nil {
		ies = append(ies, m.QoSProfile)
	}
	if m.CommonFlags != nil {
		ies = append(ies, m.CommonFlags)
	}
	if m.APNRestriction != nil {
		ies = append(ies, m.APNRestriction)
	}
	if m.PrivateExtension != nil {
		ies = append(ies, m.PrivateExtension)
	}
	return ies
}

// DecodeUpdatePDPContextResponse parses an Update PDP Context Response
// PDU.
func DecodeUpdatePDPContextResponse(buf []byte) (*UpdatePDPContextResponse, error) {
	d, err := decodeMessage(buf, MsgTypeUpdatePDPContextResponse)
	if err != nil {
		return nil, err
	}
	m := &UpdatePDPContextResponse{Teid: d.header.TEID}

	ie := firstOf(d.ies, TypeCause)
	if ie == nil {
		return nil, MessageMandatoryIEMissing(TypeCause)
	}
	m.Cause = ie.(*Cause)

	if ie := firstOf(d.ies, TypeRecovery); ie != nil {
		m.Recovery = ie.(*Recovery)
	}
	if ie := firstOf(d.ies, TypeTEIDDataI); ie != nil {
		m.TEIDDataI = ie.(*TEIDDataI)
	}
	if ie := firstOf(d.ies, TypeTEIDControlPlane); ie != nil {
		m.TEIDControlPlane = ie.(*TEIDControlPlane)
	}
	if ie := firstOf(d.ies, TypeChargingID); ie != nil {
		m.ChargingID = ie.(*ChargingID)
	}
	addrs := allOf(d.ies, TypeGSNAddress)
	if len(addrs) > 0 {
		m.GSNAddressSignalling = addrs[0].(*GSNAddress)
	}
	if len(addrs) > 1 {
		m.GSNAddressUser = addrs[1].(*GSNAddress)
	}
	if ie := firstOf(d.ies, TypeQoSProfile); ie != nil {
		m.QoSProfile = ie.(*QoSProfile)
	}
	if ie := firstOf(d.ies, TypeCommonFlags); ie != nil {
		m.CommonFlags = ie.(*CommonFlags)
	}
	if ie := firstOf(d.ies, TypeAPNRestriction); ie != nil {
		m.APNRestriction = ie.(*APNRestriction)
	}
	if ie := firstOf(d.ies, TypeMSISDN); ie != nil {
		m.MSISDN = ie.(*MSISDN)
	}
	if ie := firstOf(d.ies, TypePrivateExtension); ie != nil {
		m.PrivateExtension = ie.(*PrivateExtension)
	}
	return m, nil
}

// DeletePDPContextRequest tears down an existing PDP context (TS 29.060
// 7.3.5).
type DeletePDPContextRequest struct {
	Teid             uint32
	NSAPI            *NSAPI
	PrivateExtension *PrivateExtension
}

func (m *DeletePDPContextRequest) MessageType() uint8 { return MsgTypeDeletePDPContextRequest }
func (m *DeletePDPContextRequest) TEID() uint32       { return m.Teid }
func (m *DeletePDPContextRequest) IEs() []IE {
	var ies []IE
	if m.NSAPI != nil {
		ies = append(ies, m.NSAPI)
	}
	if m.PrivateExtension != nil {
		ies = append(ies, m.PrivateExtension)
	}
	return ies
}

// DecodeDeletePDPContextRequest parses a Delete PDP Context Request PDU.
func DecodeDeletePDPContextRequest(buf []byte) (*DeletePDPContextRequest, error) {
	d, err := decodeMessage(buf, MsgTypeDeletePDPContextRequest)
	if err != nil {
		return nil, err
	}
	m := &DeletePDPContextRequest{Teid: d.header.TEID}
	ie := firstOf(d.ies, TypeNSAPI)
	if ie == nil {
		return nil, MessageMandatoryIEMissing(TypeNSAPI)
	}
	m.NSAPI = ie.(*NSAPI)
	if ie := firstOf(d.ies, TypePrivateExtension); ie != nil {
		m.PrivateExtension = ie.(*PrivateExtension)
	}
	return m, nil
}

// DeletePDPContextResponse acknowledges a DeletePDPContextRequest (TS
// 29.060 7.3.6).
type DeletePDPContextResponse struct {
	Teid             uint32
	Cause            *Cause
	PrivateExtension *PrivateExtension
}

func (m *DeletePDPContextResponse) MessageType() uint8 { return MsgTypeDeletePDPContextResponse }
func (m *DeletePDPContextResponse) TEID() uint32       { return m.Teid }
func (m *DeletePDPContextResponse) IEs() []IE {
	ies := []IE{m.Cause}
	if m.PrivateExtension != nil {
		ies = append(ies, m.PrivateExtension)
	}
	return ies
}

// DecodeDeletePDPContextResponse parses a Delete PDP Context Response
// PDU.
func DecodeDeletePDPContextResponse(buf []byte) (*DeletePDPContextResponse, error) {
	d, err := decodeMessage(buf, MsgTypeDeletePDPContextResponse)
	if err != nil {
		return nil, err
	}
	m := &DeletePDPContextResponse{Teid: d.header.TEID}
	ie := firstOf(d.ies, TypeCause)
	if ie == nil {
		return nil, MessageMandatoryIEMissing(TypeCause)
	}
	m.Cause = ie.(*Cause)
	if ie := firstOf(d.ies, TypePrivateExtension); ie != nil {
		m.PrivateExtension = ie.(*PrivateExtension)
	}
	return m, nil
}
