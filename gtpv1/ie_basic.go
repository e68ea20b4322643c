package gtpv1

import "github.com/packetflux/gtp"

// Type tags, 3GPP TS 29.060 table 7.7.0.
const (
	TypeCause                      = 1
	TypeIMSI                       = 2
	TypeReorderingRequired         = 8
	TypeRecovery                   = 14
	TypeSelectionMode              = 15
	TypeTEIDDataI                  = 16
	TypeTEIDControlPlane           = 17
	TypeNSAPI                      = 20
	TypeChargingCharacteristics    = 26
	TypeTraceReference             = 27
	TypeTraceType                  = 28
	TypeChargingID                 = 127
	TypeEndUserAddress             = 128
	TypeAccessPointName            = 131
	TypeProtocolConfigOptions      = 132
	TypeGSNAddress                 = 133
	TypeMSISDN                     = 134
	TypeQoSProfile                 = 135
	TypeCommonFlags                = 148
	TypeAPNRestriction             = 149
	TypePrivateExtension           = 255
)

func init() {
	register(TypeCause, decodeCause)
	register(TypeIMSI, decodeIMSI)
	register(TypeReorderingRequired, decodeReorderingRequired)
	register(TypeRecovery, decodeRecovery)
	register(TypeSelectionMode, decodeSelectionMode)
	register(TypeTEIDDataI, decodeTEIDDataI)
	register(TypeTEIDControlPlane, decodeTEIDControlPlane)
	register(TypeNSAPI, decodeNSAPI)
	register(TypeChargingCharacteristics, decodeChargingCharacteristics)
	register(TypeTraceReference, decodeTraceReference)
	register(TypeTraceType, decodeTraceType)
	register(TypeChargingID, decodeChargingID)
	register(TypeEndUserAddress, decodeEndUserAddress)
	register(TypeAccessPointName, decodeAccessPointName)
	register(TypeProtocolConfigOptions, decodeProtocolConfigOptions)
	register(TypeGSNAddress, decodeGSNAddress)
	register(TypeMSISDN, decodeMSISDN)
	register(TypeQoSProfile, decodeQoSProfile)
	register(TypeCommonFlags, decodeCommonFlags)
	register(TypeAPNRestriction, decodeAPNRestriction)
	register(TypePrivateExtension, decodePrivateExtension)
}

// --- fixed-length (TV) IEs ---

// Cause carries the accept/reject reason for a request (TS 29.060 7.7.1).
type Cause struct{ Value uint8 }

func NewCause(v uint8) *Cause       { return &Cause{v} }
func (c *Cause) IEType() uint8      { return TypeCause }
func (c *Cause) Len() int           { return 2 }
func (c *Cause) Marshal(b []byte) []byte {
	return append(b, TypeCause, c.Value)
}
func decodeCause(buf []byte) (IE, int, error) {
	if len(buf) < 2 {
		return nil, 0, IEInvalidLength(TypeCause)
	}
	return &Cause{buf[1]}, 2, nil
}

// Cause values in common use.
const (
	CauseRequestAccepted             = 128
	CauseNonExistent                 = 192
	CauseMandatoryIEIncorrect        = 201
	CauseMandatoryIEMissing          = 202
)

// IMSI is the subscriber identity, BCD-packed (TS 29.060 7.7.2).
type IMSI struct{ Digits string }

func NewIMSI(digits string) *IMSI { return &IMSI{digits} }
func (i *IMSI) IEType() uint8     { return TypeIMSI }
func (i *IMSI) Len() int          { return 9 }
func (i *IMSI) Marshal(b []byte) []byte {
	b = append(b, TypeIMSI)
	v := gtp.EncodeBCD(i.Digits)
	for len(v) < 8 {
		v = append(v, 0xff)
	}
	return append(b, v[:8]...)
}
func decodeIMSI(buf []byte) (IE, int, error) {
	if len(buf) < 9 {
		return nil, 0, IEInvalidLength(TypeIMSI)
	}
	return &IMSI{gtp.DecodeBCD(buf[1:9])}, 9, nil
}

// ReorderingRequired indicates the peer must reorder packets before
// delivery (TS 29.060 7.7.3).
type ReorderingRequired struct{ Required bool }

func (r *ReorderingRequired) IEType() uint8 { return TypeReorderingRequired }
func (r *ReorderingRequired) Len() int      { return 2 }
func (r *ReorderingRequired) Marshal(b []byte) []byte {
	v := byte(0xfe)
	if r.Required {
		v = 0xff
	}
	return append(b, TypeReorderingRequired, v)
}
func decodeReorderingRequired(buf []byte) (IE, int, error) {
	if len(buf) < 2 {
		return nil, 0, IEInvalidLength(TypeReorderingRequired)
	}
	return &ReorderingRequired{buf[1]&0x1 == 1}, 2, nil
}

// Recovery carries the restart counter used to detect GSN/UPF restarts
// (TS 29.060 7.7.11).
type Recovery struct{ RestartCounter uint8 }

func NewRecovery(rc uint8) *Recovery { return &Recovery{rc} }
func (r *Recovery) IEType() uint8    { return TypeRecovery }
func (r *Recovery) Len() int         { return 2 }
func (r *Recovery) Marshal(b []byte) []byte {
	return append(b, TypeRecovery, r.RestartCounter)
}
func decodeRecovery(buf []byte) (IE, int, error) {
	if len(buf) < 2 {
		return nil, 0, IEInvalidLength(TypeRecovery)
	}
	return &Recovery{buf[1]}, 2, nil
}

// SelectionMode records who selected the APN (TS 29.060 7.7.12).
type SelectionMode struct{ Value uint8 }

func (s *SelectionMode) IEType() uint8 { return TypeSelectionMode }
func (s *SelectionMode) Len() int      { return 2 }
func (s *SelectionMode) Marshal(b []byte) []byte {
	return append(b, TypeSelectionMode, 0xfc|s.Value&0x3)
}
func decodeSelectionMode(buf []byte) (IE, int, error) {
	if len(buf) < 2 {
		return nil, 0, IEInvalidLength(TypeSelectionMode)
	}
	return &SelectionMode{buf[1] & 0x3}, 2, nil
}

// TEIDDataI is the tunnel endpoint identifier for the user-plane GTP-U
// tunnel (TS 29.060 7.7.13).
type TEIDDataI struct{ TEID uint32 }

func NewTEIDDataI(teid uint32) *TEIDDataI { return &TEIDDataI{teid} }
func (t *TEIDDataI) IEType() uint8        { return TypeTEIDDataI }
func (t *TEIDDataI) Len() int             { return 5 }
func (t *TEIDDataI) Marshal(b []byte) []byte {
	b = append(b, TypeTEIDDataI)
	return gtp.AppendUint32(b, t.TEID)
}
func decodeTEIDDataI(buf []byte) (IE, int, error) {
	if len(buf) < 5 {
		return nil, 0, IEInvalidLength(TypeTEIDDataI)
	}
	return &TEIDDataI{gtp.Uint32(buf[1:5])}, 5, nil
}

// TEIDControlPlane is the tunnel endpoint identifier for the signalling
// plane (TS 29.060 7.7.14).
type TEIDControlPlane struct{ TEID uint32 }

func NewTEIDControlPlane(teid uint32) *TEIDControlPlane { return &TEIDControlPlane{teid} }
func (t *TEIDControlPlane) IEType() uint8               { return TypeTEIDControlPlane }
func (t *TEIDControlPlane) Len() int                    { return 5 }
func (t *TEIDControlPlane) Marshal(b []byte) []byte {
	b = append(b, TypeTEIDControlPlane)
	return gtp.AppendUint32(b, t.TEID)
}
func decodeTEIDControlPlane(buf []byte) (IE, int, error) {
	if len(buf) < 5 {
		return nil, 0, IEInvalidLength(TypeTEIDControlPlane)
	}
	return &TEIDControlPlane{gtp.Uint32(buf[1:5])}, 5, nil
}

// NSAPI identifies the PDP context within the MS (TS 29.060 7.7.17).
type NSAPI struct{ Value uint8 }

func NewNSAPI(v uint8) *NSAPI { return &NSAPI{v} }
func (n *NSAPI) IEType() uint8 { return TypeNSAPI }
func (n *NSAPI) Len() int      { return 2 }
func (n *NSAPI) Marshal(b []byte) []byte {
	return append(b, TypeNSAPI, n.Value&0xf)
}
func decodeNSAPI(buf []byte) (IE, int, error) {
	if len(buf) < 2 {
		return nil, 0, IEInvalidLength(TypeNSAPI)
	}
	return &NSAPI{buf[1] & 0xf}, 2, nil
}

// ChargingCharacteristics conveys which charging methods apply (TS 29.060
// 7.7.23).
type ChargingCharacteristics struct{ Value uint16 }

func (c *ChargingCharacteristics) IEType() uint8 { return TypeChargingCharacteristics }
func (c *ChargingCharacteristics) Len() int      { return 3 }
func (c *ChargingCharacteristics) Marshal(b []byte) []byte {
	b = append(b, TypeChargingCharacteristics)
	return gtp.AppendUint16(b, c.Value)
}
func decodeChargingCharacteristics(buf []byte) (IE, int, error) {
	if len(buf) < 3 {
		return nil, 0, IEInvalidLength(TypeChargingCharacteristics)
	}
	return &ChargingCharacteristics{gtp.Uint16(buf[1:3])}, 3, nil
}

// TraceReference identifies a trace recording session (TS 29.060 7.7.24).
type TraceReference struct{ Value uint16 }

func (t *TraceReference) IEType() uint8 { return TypeTraceReference }
func (t *TraceReference) Len() int      { return 3 }
func (t *TraceReference) Marshal(b []byte) []byte {
	b = append(b, TypeTraceReference)
	return gtp.AppendUint16(b, t.Value)
}
func decodeTraceReference(buf []byte) (IE, int, error) {
	if len(buf) < 3 {
		return nil, 0, IEInvalidLength(TypeTraceReference)
	}
	return &TraceReference{gtp.Uint16(buf[1:3])}, 3, nil
}

// TraceType selects which trace triggers apply (TS 29.060 7.7.25).
type TraceType struct{ Value uint16 }

func (t *TraceType) IEType() uint8 { return TypeTraceType }
func (t *TraceType) Len() int      { return 3 }
func (t *TraceType) Marshal(b []byte) []byte {
	b = append(b, TypeTraceType)
	return gtp.AppendUint16(b, t.Value)
}
func decodeTraceType(buf []byte) (IE, int, error) {
	if len(buf) < 3 {
		return nil, 0, IEInvalidLength(TypeTraceType)
	}
	return &TraceType{gtp.Uint16(buf[1:3])}, 3, nil
}

// ChargingID identifies charging records for a PDP context across GSNs
// (TS 29.060 7.7.26).
type ChargingID struct{ Value uint32 }

func NewChargingID(v uint32) *ChargingID { return &ChargingID{v} }
func (c *ChargingID) IEType() uint8      { return TypeChargingID }
func (c *ChargingID) Len() int           { return 5 }
func (c *ChargingID) Marshal(b []byte) []byte {
	b = append(b, TypeChargingID)
	return gtp.AppendUint32(b, c.Value)
}
func decodeChargingID(buf []byte) (IE, int, error) {
	if len(buf) < 5 {
		return nil, 0, IEInvalidLength(TypeChargingID)
	}
	return &ChargingID{gtp.Uint32(buf[1:5])}, 5, nil
}

// --- variable-length (TLV) IEs ---

// EndUserAddress carries the PDP type and, when allocated, the PDP address
// (TS 29.060 7.7.27).
type EndUserAddress struct {
	PDPTypeOrganization uint8
	PDPType             uint8
	Address             []byte // empty when dynamically allocated and not yet assigned
}

func (e *EndUserAddress) IEType() uint8 { return TypeEndUserAddress }
func (e *EndUserAddress) Len() int      { return 5 + len(e.Address) }
func (e *EndUserAddress) Marshal(b []byte) []byte {
	value := []byte{0xf0 | e.PDPTypeOrganization&0xf, e.PDPType}
	value = append(value, e.Address...)
	return marshalTLV(b, TypeEndUserAddress, value)
}
func decodeEndUserAddress(buf []byte) (IE, int, error) {
	val, n, err := readTLV(TypeEndUserAddress, buf)
	if err != nil {
		return nil, 0, err
	}
	if len(val) < 2 {
		return nil, 0, IEIncorrect(TypeEndUserAddress)
	}
	return &EndUserAddress{
		PDPTypeOrganization: val[0] & 0xf,
		PDPType:             val[1],
		Address:             append([]byte(nil), val[2:]...),
	}, n, nil
}

// AccessPointName is the label-encoded APN (TS 29.060 7.7.30).
type AccessPointName struct{ Value string }

func NewAccessPointName(v string) *AccessPointName { return &AccessPointName{v} }
func (a *AccessPointName) IEType() uint8            { return TypeAccessPointName }
func (a *AccessPointName) Len() int                 { return 3 + len(gtp.EncodeLabels(a.Value)) }
func (a *AccessPointName) Marshal(b []byte) []byte {
	return marshalTLV(b, TypeAccessPointName, gtp.EncodeLabels(a.Value))
}
func decodeAccessPointName(buf []byte) (IE, int, error) {
	val, n, err := readTLV(TypeAccessPointName, buf)
	if err != nil {
		return nil, 0, err
	}
	return &AccessPointName{gtp.DecodeLabels(val)}, n, nil
}

// ProtocolConfigOptions carries opaque PCO content negotiated between the
// MS and the network (TS 29.060 7.7.31); this codec treats it as an opaque
// byte blob, matching spec.md's framing of PCO as a carried payload rather
// than a parsed protocol.
type ProtocolConfigOptions struct{ Value []byte }

func (p *ProtocolConfigOptions) IEType() uint8 { return TypeProtocolConfigOptions }
func (p *ProtocolConfigOptions) Len() int      { return 3 + len(p.Value) }
func (p *ProtocolConfigOptions) Marshal(b []byte) []byte {
	return marshalTLV(b, TypeProtocolConfigOptions, p.Value)
}
func decodeProtocolConfigOptions(buf []byte) (IE, int, error) {
	val, n, err := readTLV(TypeProtocolConfigOptions, buf)
	if err != nil {
		return nil, 0, err
	}
	return &ProtocolConfigOptions{append([]byte(nil), val...)}, n, nil
}

// GSNAddress carries an IPv4 or IPv6 GSN address (TS 29.060 7.7.32). The
// IE type repeats within a message with positional, not instance-tagged,
// semantics (spec.md §9): the message decoder is responsible for routing
// the first/second/third/fourth occurrence to its distinct field.
type GSNAddress struct{ Address []byte } // 4 bytes (IPv4) or 16 bytes (IPv6)

func NewGSNAddress(addr []byte) *GSNAddress { return &GSNAddress{addr} }
func (g *GSNAddress) IEType() uint8         { return TypeGSNAddress }
func (g *GSNAddress) Len() int              { return 3 + len(g.Address) }
func (g *GSNAddress) Marshal(b []byte) []byte {
	return marshalTLV(b, TypeGSNAddress, g.Address)
}
func decodeGSNAddress(buf []byte) (IE, int, error) {
	val, n, err := readTLV(TypeGSNAddress, buf)
	if err != nil {
		return nil, 0, err
	}
	if len(val) != 4 && len(val) != 16 {
		return nil, 0, IEIncorrect(TypeGSNAddress)
	}
	return &GSNAddress{append([]byte(nil), val...)}, n, nil
}

// MSISDN is the subscriber's directory number, BCD-packed (TS 29.060
// 7.7.33).
type MSISDN struct{ Digits string }

func NewMSISDN(digits string) *MSISDN { return &MSISDN{digits} }
func (m *MSISDN) IEType() uint8       { return TypeMSISDN }
func (m *MSISDN) Len() int            { return 3 + len(gtp.EncodeBCD(m.Digits)) }
func (m *MSISDN) Marshal(b []byte) []byte {
	return marshalTLV(b, TypeMSISDN, gtp.EncodeBCD(m.Digits))
}
func decodeMSISDN(buf []byte) (IE, int, error) {
	val, n, err := readTLV(TypeMSISDN, buf)
	if err != nil {
		return nil, 0, err
	}
	return &MSISDN{gtp.DecodeBCD(val)}, n, nil
}

// QoSProfile carries the negotiated or requested QoS, treated as an opaque
// byte blob beyond its leading allocation/retention priority octet (TS
// 29.060 7.7.34 / TS 24.008 10.5.6.5).
type QoSProfile struct {
	AllocationRetentionPriority uint8
	Profile                     []byte
}

func (q *QoSProfile) IEType() uint8 { return TypeQoSProfile }
func (q *QoSProfile) Len() int      { return 3 + 1 + len(q.Profile) }
func (q *QoSProfile) Marshal(b []byte) []byte {
	value := append([]byte{q.AllocationRetentionPriority}, q.Profile...)
	return marshalTLV(b, TypeQoSProfile, value)
}
func decodeQoSProfile(buf []byte) (IE, int, error) {
	val, n, err := readTLV(TypeQoSProfile, buf)
	if err != nil {
		return nil, 0, err
	}
	if len(val) < 1 {
		return nil, 0, IEIncorrect(TypeQoSProfile)
	}
	return &QoSProfile{val[0], append([]byte(nil), val[1:]...)}, n, nil
}

// CommonFlags is a bitset of per-message behavioural flags (TS 29.060
// 7.7.48).
type CommonFlags struct{ Value uint8 }

func (c *CommonFlags) IEType() uint8 { return TypeCommonFlags }
func (c *CommonFlags) Len() int      { return 3 + 1 }
func (c *CommonFlags) Marshal(b []byte) []byte {
	return marshalTLV(b, TypeCommonFlags, []byte{c.Value})
}
func decodeCommonFlags(buf []byte) (IE, int, error) {
	val, n, err := readTLV(TypeCommonFlags, buf)
	if err != nil {
		return nil, 0, err
	}
	if len(val) < 1 {
		return nil, 0, IEIncorrect(TypeCommonFlags)
	}
	return &CommonFlags{val[0]}, n, nil
}

// APNRestriction records the restriction level for the context's APN (TS
// 29.060 7.7.49).
type APNRestriction struct{ Value uint8 }

func (a *APNRestriction) IEType() uint8 { return TypeAPNRestriction }
func (a *APNRestriction) Len() int      { return 3 + 1 }
func (a *APNRestriction) Marshal(b []byte) []byte {
	return marshalTLV(b, TypeAPNRestriction, []byte{a.Value})
}
func decodeAPNRestriction(buf []byte) (IE, int, error) {
	val, n, err := readTLV(TypeAPNRestriction, buf)
	if err != nil {
		return nil, 0, err
	}
	if len(val) < 1 {
		return nil, 0, IEIncorrect(TypeAPNRestriction)
	}
	return &APNRestriction{val[0]}, n, nil
}

// PrivateExtension carries vendor-specific content (TS 29.060 7.7.46).
type PrivateExtension struct {
	ExtensionID uint16
	Value       []byte
}

func (p *PrivateExtension) IEType() uint8 { return TypePrivateExtension }
func (p *PrivateExtension) Len() int      { return 3 + 2 + len(p.Value) }
func (p *PrivateExtension) Marshal(b []byte) []byte {
	value := gtp.AppendUint16(nil, p.ExtensionID)
	value = append(value, p.Value...)
	return marshalTLV(b, TypePrivateExtension, value)
}
func decodePrivateExtension(buf []byte) (IE, int, error) {
	val, n, err := readTLV(TypePrivateExtension, buf)
	if err != nil {
		return nil, 0, err
	}
	if len(val) < 2 {
		return nil, 0, IEIncorrect(TypePrivateExtension)
	}
	return &PrivateExtension{gtp.Uint16(val[:2]), append([]byte(nil), val[2:]...)}, n, nil
}

// --- shared TLV helpers ---

func marshalTLV(b []byte, typ uint8, value []byte) []byte {
	b = append(b, typ)
	b = gtp.AppendUint16(b, uint16(len(value)))
	return append(b, value...)
}

func readTLV(typ uint8, buf []byte) (value []byte, consumed int, err error) {
	if len(buf) < 3 {
		return nil, 0, IEInvalidLength(typ)
	}
	l := int(gtp.Uint16(buf[1:3]))
	if len(buf) < 3+l {
		return nil, 0, IEInvalidLength(typ)
	}
	return buf[3 : 3+l], 3 + l, nil
}
