package gtpv2

import (
	"net"

	"github.com/packetflux/gtp"
)

// Type tags, 3GPP TS 29.274 table 8.1-1.
const (
	TypeIMSI                     = 1
	TypeCause                    = 2
	TypeRecovery                 = 3
	TypeAccessPointName          = 71
	TypeAggregateMaximumBitRate  = 72
	TypeEPSBearerID              = 73
	TypeIPAddress                = 74
	TypeMobileEquipmentIdentity  = 75
	TypeMSISDN                   = 76
	TypeIndication               = 77
	TypeProtocolConfigOptions    = 78
	TypePDNAddressAllocation     = 79
	TypeBearerQoS                = 80
	TypeBearerTFT                = 84
	TypeRATType                  = 82
	TypeServingNetwork           = 83
	TypeULI                      = 86
	TypeFTEID                    = 87
	TypeTraceReference           = 116
	TypeTraceInformation         = 96
	TypeBearerContext            = 93
	TypeChargingID               = 94
	TypePDNType                  = 99
	TypePDNConnection            = 109
	TypeUETimeZone               = 114
	TypeFContainer               = 118
	TypeFCause                   = 119
	TypePLMNID                   = 120
	TypeTargetIdentification     = 121
	TypeAPNRestriction           = 127
	TypeSelectionMode            = 128
	TypeFQCSID                   = 132
	TypeNodeType                 = 135
	TypeFQDN                     = 136
	TypeOverloadControlInfo      = 180
	TypeLoadControlInfo          = 181
	TypePrivateExtension         = 255
)

func init() {
	register(TypeIMSI, decodeIMSI)
	register(TypeCause, decodeCause)
	register(TypeRecovery, decodeRecovery)
	register(TypeAccessPointName, decodeAccessPointName)
	register(TypeAggregateMaximumBitRate, decodeAMBR)
	register(TypeEPSBearerID, decodeEPSBearerID)
	register(TypeIPAddress, decodeIPAddress)
	register(TypeMobileEquipmentIdentity, decodeMobileEquipmentIdentity)
	register(TypeMSISDN, decodeMSISDN)
	register(TypeIndication, decodeIndication)
	register(TypeProtocolConfigOptions, decodeProtocolConfigOptions)
	register(TypePDNAddressAllocation, decodePDNAddressAllocation)
	register(TypeBearerQoS, decodeBearerQoS)
	register(TypeBearerTFT, decodeBearerTFT)
	register(TypeRATType, decodeRATType)
	register(TypeServingNetwork, decodeServingNetwork)
	register(TypeULI, decodeULI)
	register(TypeFTEID, decodeFTEID)
	register(TypeTraceInformation, decodeTraceInformation)
	register(TypeTraceReference, decodeTraceReference)
	register(TypeChargingID, decodeChargingID)
	register(TypePDNType, decodePDNType)
	register(TypeUETimeZone, decodeUETimeZone)
	register(TypeFContainer, decodeFContainer)
	register(TypeFCause, decodeFCause)
	register(TypePLMNID, decodePLMNIDIE)
	register(TypeAPNRestriction, decodeAPNRestriction)
	register(TypeSelectionMode, decodeSelectionMode)
	register(TypeFQCSID, decodeFQCSID)
	register(TypeNodeType, decodeNodeType)
	register(TypeFQDN, decodeFQDN)
	register(TypePrivateExtension, decodePrivateExtension)
}

// simple is embedded by every scalar-value IE to supply Instance().
type simple struct {
	typ uint8
	ins uint8
}

func (s simple) IEType() uint8   { return s.typ }
func (s simple) Instance() uint8 { return s.ins }

// IMSI is the subscriber identity, BCD-packed (TS 29.274 8.3).
type IMSI struct {
	simple
	Digits string
}

func NewIMSI(digits string, instance uint8) *IMSI {
	return &IMSI{simple{TypeIMSI, instance}, digits}
}
func (i *IMSI) Len() int { return 4 + len(gtp.EncodeBCD(i.Digits)) }
func (i *IMSI) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeIMSI, i.ins, gtp.EncodeBCD(i.Digits))
}
func decodeIMSI(ins uint8, v []byte) (IE, error) {
	return &IMSI{simple{TypeIMSI, ins}, gtp.DecodeBCD(v)}, nil
}

// Cause carries the accept/reject reason and, when the offending-IE flag
// is set, the type/instance of the IE that triggered rejection (TS 29.274
// 8.4).
type Cause struct {
	simple
	Value               uint8
	PCE, BCE, CS        bool
	OffendingIEType     uint8
	OffendingIEInstance uint8
}

func NewCause(value uint8, instance uint8) *Cause {
	return &Cause{simple: simple{TypeCause, instance}, Value: value}
}
func (c *Cause) Len() int {
	if c.CS {
		return 4 + 6
	}
	return 4 + 2
}
func (c *Cause) Marshal(b []byte) []byte {
	flags := byte(0)
	if c.PCE {
		flags |= 0x08
	}
	if c.BCE {
		flags |= 0x02
	}
	if c.CS {
		flags |= 0x04
	}
	value := []byte{c.Value, flags}
	if c.CS {
		value = gtp.AppendUint16(append(value, c.OffendingIEType), 0)
		value = append(value, c.OffendingIEInstance&0xf)
	}
	return marshalTLIV(b, TypeCause, c.ins, value)
}
func decodeCause(ins uint8, v []byte) (IE, error) {
	if len(v) < 2 {
		return nil, IEInvalidLength(TypeCause)
	}
	c := &Cause{simple: simple{TypeCause, ins}, Value: v[0]}
	flags := v[1]
	c.PCE = flags&0x08 != 0
	c.CS = flags&0x04 != 0
	c.BCE = flags&0x02 != 0
	if c.CS {
		if len(v) < 6 {
			return nil, IEInvalidLength(TypeCause)
		}
		c.OffendingIEType = v[2]
		c.OffendingIEInstance = v[5] & 0xf
	}
	return c, nil
}

// Cause values in common use (TS 29.274 table 8.4-1).
const (
	CauseRequestAccepted    = 16
	CauseContextNotFound    = 64
	CauseMandatoryIEMissing = 69
	CauseIMSIIMEINotKnown   = 96
)

// Recovery carries the restart counter used to detect peer restarts (TS
// 29.274 8.5).
type Recovery struct {
	simple
	RestartCounter uint8
}

func NewRecovery(rc uint8, instance uint8) *Recovery {
	return &Recovery{simple{TypeRecovery, instance}, rc}
}
func (r *Recovery) Len() int { return 5 }
func (r *Recovery) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeRecovery, r.ins, []byte{r.RestartCounter})
}
func decodeRecovery(ins uint8, v []byte) (IE, error) {
	if len(v) < 1 {
		return nil, IEInvalidLength(TypeRecovery)
	}
	return &Recovery{simple{TypeRecovery, ins}, v[0]}, nil
}

// AccessPointName is the label-encoded APN (TS 29.274 8.6).
type AccessPointName struct {
	simple
	Value string
}

func NewAccessPointName(v string, instance uint8) *AccessPointName {
	return &AccessPointName{simple{TypeAccessPointName, instance}, v}
}
func (a *AccessPointName) Len() int { return 4 + len(gtp.EncodeLabels(a.Value)) }
func (a *AccessPointName) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeAccessPointName, a.ins, gtp.EncodeLabels(a.Value))
}
func decodeAccessPointName(ins uint8, v []byte) (IE, error) {
	return &AccessPointName{simple{TypeAccessPointName, ins}, gtp.DecodeLabels(v)}, nil
}

// AggregateMaximumBitRate carries the uplink/downlink AMBR in kbps (TS
// 29.274 8.7).
type AggregateMaximumBitRate struct {
	simple
	Uplink, Downlink uint32
}

func NewAggregateMaximumBitRate(ul, dl uint32, instance uint8) *AggregateMaximumBitRate {
	return &AggregateMaximumBitRate{simple{TypeAggregateMaximumBitRate, instance}, ul, dl}
}
func (a *AggregateMaximumBitRate) Len() int { return 4 + 8 }
func (a *AggregateMaximumBitRate) Marshal(b []byte) []byte {
	value := gtp.AppendUint32(nil, a.Uplink)
	value = gtp.AppendUint32(value, a.Downlink)
	return marshalTLIV(b, TypeAggregateMaximumBitRate, a.ins, value)
}
func decodeAMBR(ins uint8, v []byte) (IE, error) {
	if len(v) < 8 {
		return nil, IEInvalidLength(TypeAggregateMaximumBitRate)
	}
	return &AggregateMaximumBitRate{simple{TypeAggregateMaximumBitRate, ins}, gtp.Uint32(v[0:4]), gtp.Uint32(v[4:8])}, nil
}

// EPSBearerID identifies a bearer within a PDN connection (TS 29.274 8.8).
type EPSBearerID struct {
	simple
	Value uint8
}

func NewEPSBearerID(v uint8, instance uint8) *EPSBearerID {
	return &EPSBearerID{simple{TypeEPSBearerID, instance}, v & 0xf}
}
func (e *EPSBearerID) Len() int { return 5 }
func (e *EPSBearerID) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeEPSBearerID, e.ins, []byte{e.Value})
}
func decodeEPSBearerID(ins uint8, v []byte) (IE, error) {
	if len(v) < 1 {
		return nil, IEInvalidLength(TypeEPSBearerID)
	}
	return &EPSBearerID{simple{TypeEPSBearerID, ins}, v[0] & 0xf}, nil
}

// IPAddress carries an IPv4 or IPv6 address (TS 29.274 8.9).
type IPAddress struct {
	simple
	Addr net.IP
}

func NewIPAddress(addr net.IP, instance uint8) *IPAddress {
	return &IPAddress{simple{TypeIPAddress, instance}, addr}
}
func (i *IPAddress) Len() int {
	if v4 := i.Addr.To4(); v4 != nil {
		return 4 + 4
	}
	return 4 + 16
}
func (i *IPAddress) Marshal(b []byte) []byte {
	if v4 := i.Addr.To4(); v4 != nil {
		return marshalTLIV(b, TypeIPAddress, i.ins, v4)
	}
	return marshalTLIV(b, TypeIPAddress, i.ins, i.Addr.To16())
}
func decodeIPAddress(ins uint8, v []byte) (IE, error) {
	switch len(v) {
	case 4:
		return &IPAddress{simple{TypeIPAddress, ins}, net.IP(append([]byte(nil), v...))}, nil
	case 16:
		return &IPAddress{simple{TypeIPAddress, ins}, net.IP(append([]byte(nil), v...))}, nil
	default:
		return nil, IEIncorrect(TypeIPAddress)
	}
}

// MobileEquipmentIdentity carries the IMEI/IMEISV, BCD-packed (TS 29.274
// 8.10).
type MobileEquipmentIdentity struct {
	simple
	Digits string
}

func NewMobileEquipmentIdentity(digits string, instance uint8) *MobileEquipmentIdentity {
	return &MobileEquipmentIdentity{simple{TypeMobileEquipmentIdentity, instance}, digits}
}
func (m *MobileEquipmentIdentity) Len() int { return 4 + len(gtp.EncodeBCD(m.Digits)) }
func (m *MobileEquipmentIdentity) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeMobileEquipmentIdentity, m.ins, gtp.EncodeBCD(m.Digits))
}
func decodeMobileEquipmentIdentity(ins uint8, v []byte) (IE, error) {
	return &MobileEquipmentIdentity{simple{TypeMobileEquipmentIdentity, ins}, gtp.DecodeBCD(v)}, nil
}

// MSISDN is the subscriber's directory number, BCD-packed (TS 29.274
// 8.11).
type MSISDN struct {
	simple
	Digits string
}

func NewMSISDN(digits string, instance uint8) *MSISDN {
	return &MSISDN{simple{TypeMSISDN, instance}, digits}
}
func (m *MSISDN) Len() int { return 4 + len(gtp.EncodeBCD(m.Digits)) }
func (m *MSISDN) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeMSISDN, m.ins, gtp.EncodeBCD(m.Digits))
}
func decodeMSISDN(ins uint8, v []byte) (IE, error) {
	return &MSISDN{simple{TypeMSISDN, ins}, gtp.DecodeBCD(v)}, nil
}

// Indication is the per-message behavioural flag bitset (TS 29.274 8.12);
// it is carried as an opaque bit vector since the codec's job is lossless
// transport, not interpreting every one of its ~70 defined flags.
type Indication struct {
	simple
	Flags []byte
}

func NewIndication(flags []byte, instance uint8) *Indication {
	return &Indication{simple{TypeIndication, instance}, flags}
}
func (i *Indication) Len() int { return 4 + len(i.Flags) }
func (i *Indication) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeIndication, i.ins, i.Flags)
}
func decodeIndication(ins uint8, v []byte) (IE, error) {
	return &Indication{simple{TypeIndication, ins}, append([]byte(nil), v...)}, nil
}

// ProtocolConfigOptions carries opaque PCO content negotiated between the
// UE and the network (TS 29.274 8.20); like gtpv1's PCO this codec treats
// it as an opaque byte blob.
type ProtocolConfigOptions struct {
	simple
	Value []byte
}

func NewProtocolConfigOptions(v []byte, instance uint8) *ProtocolConfigOptions {
	return &ProtocolConfigOptions{simple{TypeProtocolConfigOptions, instance}, v}
}
func (p *ProtocolConfigOptions) Len() int { return 4 + len(p.Value) }
func (p *ProtocolConfigOptions) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeProtocolConfigOptions, p.ins, p.Value)
}
func decodeProtocolConfigOptions(ins uint8, v []byte) (IE, error) {
	return &ProtocolConfigOptions{simple{TypeProtocolConfigOptions, ins}, append([]byte(nil), v...)}, nil
}

// PDN type values shared by PDNAddressAllocation and PDNType (TS 29.274
// 8.14, 8.34).
const (
	PDNTypeIPv4   = 1
	PDNTypeIPv6   = 2
	PDNTypeIPv4v6 = 3
	PDNTypeNonIP  = 4
)

// PDNAddressAllocation switches payload layout on the PDN-type nibble
// (spec.md §4.1.5): IPv4 carries a 4-byte address, IPv6 a prefix length
// plus 16-byte address, and dual-stack carries the IPv6 prefix length and
// address first, then the IPv4 address.
type PDNAddressAllocation struct {
	simple
	PDNType      uint8
	IPv4         net.IP
	IPv6         net.IP
	IPv6PrefixLen uint8
}

func (p *PDNAddressAllocation) Len() int {
	n := 4 + 1
	if p.PDNType == PDNTypeIPv4 || p.PDNType == PDNTypeIPv4v6 {
		n += 4
	}
	if p.PDNType == PDNTypeIPv6 || p.PDNType == PDNTypeIPv4v6 {
		n += 1 + 16
	}
	return n
}
func (p *PDNAddressAllocation) Marshal(b []byte) []byte {
	value := []byte{p.PDNType}
	if p.PDNType == PDNTypeIPv6 || p.PDNType == PDNTypeIPv4v6 {
		value = append(value, p.IPv6PrefixLen)
		value = append(value, p.IPv6.To16()...)
	}
	if p.PDNType == PDNTypeIPv4 || p.PDNType == PDNTypeIPv4v6 {
		value = append(value, p.IPv4.To4()...)
	}
	return marshalTLIV(b, TypePDNAddressAllocation, p.ins, value)
}
func decodePDNAddressAllocation(ins uint8, v []byte) (IE, error) {
	if len(v) < 1 {
		return nil, IEInvalidLength(TypePDNAddressAllocation)
	}
	p := &PDNAddressAllocation{simple: simple{TypePDNAddressAllocation, ins}, PDNType: v[0] & 0x7}
	rest := v[1:]
	switch p.PDNType {
	case PDNTypeIPv4:
		if len(rest) < 4 {
			return nil, IEInvalidLength(TypePDNAddressAllocation)
		}
		p.IPv4 = net.IP(append([]byte(nil), rest[:4]...))
	case PDNTypeIPv6:
		if len(rest) < 17 {
			return nil, IEInvalidLength(TypePDNAddressAllocation)
		}
		p.IPv6PrefixLen = rest[0]
		p.IPv6 = net.IP(append([]byte(nil), rest[1:17]...))
	case PDNTypeIPv4v6:
		if len(rest) < 21 {
			return nil, IEInvalidLength(TypePDNAddressAllocation)
		}
		p.IPv6PrefixLen = rest[0]
		p.IPv6 = net.IP(append([]byte(nil), rest[1:17]...))
		p.IPv4 = net.IP(append([]byte(nil), rest[17:21]...))
	}
	return p, nil
}

// uint40 helpers for BearerQoS's 5-byte bit-rate fields.
func appendUint40(b []byte, v uint64) []byte {
	return append(b, byte(v>>32), byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
func uint40(b []byte) uint64 {
	return uint64(b[0])<<32 | uint64(b[1])<<24 | uint64(b[2])<<16 | uint64(b[3])<<8 | uint64(b[4])
}

// BearerQoS carries the negotiated QoS Class Identifier, ARP, and the four
// 40-bit bit-rate fields (TS 29.274 8.15).
type BearerQoS struct {
	simple
	PCI                    bool
	PriorityLevel          uint8
	PVI                    bool
	QCI                    uint8
	MaxUplink, MaxDownlink   uint64
	GuarUplink, GuarDownlink uint64
}

func (q *BearerQoS) Len() int { return 4 + 22 }
func (q *BearerQoS) Marshal(b []byte) []byte {
	arp := q.PriorityLevel << 2 & 0x3c
	if q.PCI {
		arp |= 0x40
	}
	if q.PVI {
		arp |= 0x01
	}
	value := []byte{arp, q.QCI}
	value = appendUint40(value, q.MaxUplink)
	value = appendUint40(value, q.MaxDownlink)
	value = appendUint40(value, q.GuarUplink)
	value = appendUint40(value, q.GuarDownlink)
	return marshalTLIV(b, TypeBearerQoS, q.ins, value)
}
func decodeBearerQoS(ins uint8, v []byte) (IE, error) {
	if len(v) < 22 {
		return nil, IEInvalidLength(TypeBearerQoS)
	}
	arp := v[0]
	q := &BearerQoS{
		simple:        simple{TypeBearerQoS, ins},
		PCI:           arp&0x40 != 0,
		PriorityLevel: (arp >> 2) & 0xf,
		PVI:           arp&0x01 != 0,
		QCI:           v[1],
	}
	q.MaxUplink = uint40(v[2:7])
	q.MaxDownlink = uint40(v[7:12])
	q.GuarUplink = uint40(v[12:17])
	q.GuarDownlink = uint40(v[17:22])
	return q, nil
}

// BearerTFT carries the traffic flow template negotiated for a bearer (TS
// 29.274 8.16); treated as an opaque byte blob, matching this codec's
// framing of PCO-shaped payloads.
type BearerTFT struct {
	simple
	Value []byte
}

func (t *BearerTFT) Len() int { return 4 + len(t.Value) }
func (t *BearerTFT) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeBearerTFT, t.ins, t.Value)
}
func decodeBearerTFT(ins uint8, v []byte) (IE, error) {
	return &BearerTFT{simple{TypeBearerTFT, ins}, append([]byte(nil), v...)}, nil
}

// RAT Type values (TS 29.274 8.17).
const (
	RATTypeUTRAN = 1
	RATTypeEUTRAN = 6
	RATTypeWLAN  = 9
)

// RATType identifies the radio access technology in use (TS 29.274 8.17).
type RATType struct {
	simple
	Value uint8
}

func NewRATType(v uint8, instance uint8) *RATType {
	return &RATType{simple{TypeRATType, instance}, v}
}
func (r *RATType) Len() int { return 5 }
func (r *RATType) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeRATType, r.ins, []byte{r.Value})
}
func decodeRATType(ins uint8, v []byte) (IE, error) {
	if len(v) < 1 {
		return nil, IEInvalidLength(TypeRATType)
	}
	return &RATType{simple{TypeRATType, ins}, v[0]}, nil
}

// ServingNetwork carries the serving PLMN ID (TS 29.274 8.18).
type ServingNetwork struct {
	simple
	MCC, MNC string
}

func NewServingNetwork(mcc, mnc string, instance uint8) *ServingNetwork {
	return &ServingNetwork{simple{TypeServingNetwork, instance}, mcc, mnc}
}
func (s *ServingNetwork) Len() int { return 7 }
func (s *ServingNetwork) Marshal(b []byte) []byte {
	plmn := encodePLMN(s.MCC, s.MNC)
	return marshalTLIV(b, TypeServingNetwork, s.ins, plmn[:])
}
func decodeServingNetwork(ins uint8, v []byte) (IE, error) {
	if len(v) < 3 {
		return nil, IEInvalidLength(TypeServingNetwork)
	}
	mcc, mnc := decodePLMN(v)
	return &ServingNetwork{simple{TypeServingNetwork, ins}, mcc, mnc}, nil
}

// PLMNID carries a bare PLMN identity, reusing Serving Network's wire shape
// (TS 29.274 8.39).
type PLMNID struct {
	simple
	MCC, MNC string
}

func NewPLMNID(mcc, mnc string, instance uint8) *PLMNID {
	return &PLMNID{simple{TypePLMNID, instance}, mcc, mnc}
}
func (p *PLMNID) Len() int { return 7 }
func (p *PLMNID) Marshal(b []byte) []byte {
	plmn := encodePLMN(p.MCC, p.MNC)
	return marshalTLIV(b, TypePLMNID, p.ins, plmn[:])
}
func decodePLMNIDIE(ins uint8, v []byte) (IE, error) {
	if len(v) < 3 {
		return nil, IEInvalidLength(TypePLMNID)
	}
	mcc, mnc := decodePLMN(v)
	return &PLMNID{simple{TypePLMNID, ins}, mcc, mnc}, nil
}

// APN Restriction values (TS 29.274 8.57).
const (
	APNRestrictionNone     = 0
	APNRestrictionPublic1  = 1
	APNRestrictionPublic2  = 2
	APNRestrictionPrivate1 = 3
	APNRestrictionPrivate2 = 4
)

// APNRestriction records the restriction level for the session's APN (TS
// 29.274 8.57).
type APNRestriction struct {
	simple
	Value uint8
}

func NewAPNRestriction(v uint8, instance uint8) *APNRestriction {
	return &APNRestriction{simple{TypeAPNRestriction, instance}, v}
}
func (a *APNRestriction) Len() int { return 5 }
func (a *APNRestriction) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeAPNRestriction, a.ins, []byte{a.Value})
}
func decodeAPNRestriction(ins uint8, v []byte) (IE, error) {
	if len(v) < 1 {
		return nil, IEInvalidLength(TypeAPNRestriction)
	}
	return &APNRestriction{simple{TypeAPNRestriction, ins}, v[0]}, nil
}

// Selection Mode values (TS 29.274 8.58).
const (
	SelectionModeMSProvidedAPNSubscriptionVerified    = 0
	SelectionModeMSProvidedAPNSubscriptionNotVerified = 1
	SelectionModeNetworkProvidedAPN                   = 2
)

// SelectionMode records who selected the APN (TS 29.274 8.58).
type SelectionMode struct {
	simple
	Value uint8
}

func NewSelectionMode(v uint8, instance uint8) *SelectionMode {
	return &SelectionMode{simple{TypeSelectionMode, instance}, v & 0x3}
}
func (s *SelectionMode) Len() int { return 5 }
func (s *SelectionMode) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeSelectionMode, s.ins, []byte{s.Value & 0x3})
}
func decodeSelectionMode(ins uint8, v []byte) (IE, error) {
	if len(v) < 1 {
		return nil, IEInvalidLength(TypeSelectionMode)
	}
	return &SelectionMode{simple{TypeSelectionMode, ins}, v[0] & 0x3}, nil
}

// Interface types used by F-TEID (TS 29.274 8.22 table 8.22-1), the subset
// exercised by this codec's test fixtures.
const (
	IFTypeS1UeNodeBGTPU  = 0
	IFTypeS5S8SGWGTPU    = 4
	IFTypeS11MMEGTPC     = 10
	IFTypeS11S4SGWGTPC   = 11
)

// FTEID encodes interface type, IPv4/IPv6-present flags, a TEID, and the
// addresses the flags gate (spec.md §4.1.5).
type FTEID struct {
	simple
	InterfaceType uint8
	TEID          uint32
	IPv4          net.IP
	IPv6          net.IP
}

func NewFTEID(ifType uint8, teid uint32, ipv4, ipv6 net.IP, instance uint8) *FTEID {
	return &FTEID{simple{TypeFTEID, instance}, ifType, teid, ipv4, ipv6}
}
func (f *FTEID) Len() int {
	n := 4 + 1 + 4
	if f.IPv4 != nil {
		n += 4
	}
	if f.IPv6 != nil {
		n += 16
	}
	return n
}
func (f *FTEID) Marshal(b []byte) []byte {
	flags := f.InterfaceType & 0x3f
	if f.IPv4 != nil {
		flags |= 0x80
	}
	if f.IPv6 != nil {
		flags |= 0x40
	}
	value := []byte{flags}
	value = gtp.AppendUint32(value, f.TEID)
	if f.IPv4 != nil {
		value = append(value, f.IPv4.To4()...)
	}
	if f.IPv6 != nil {
		value = append(value, f.IPv6.To16()...)
	}
	return marshalTLIV(b, TypeFTEID, f.ins, value)
}
func decodeFTEID(ins uint8, v []byte) (IE, error) {
	if len(v) < 5 {
		return nil, IEInvalidLength(TypeFTEID)
	}
	flags := v[0]
	f := &FTEID{simple: simple{TypeFTEID, ins}, InterfaceType: flags & 0x3f}
	f.TEID = gtp.Uint32(v[1:5])
	cursor := 5
	if flags&0x80 != 0 {
		if len(v) < cursor+4 {
			return nil, IEInvalidLength(TypeFTEID)
		}
		f.IPv4 = net.IP(append([]byte(nil), v[cursor:cursor+4]...))
		cursor += 4
	}
	if flags&0x40 != 0 {
		if len(v) < cursor+16 {
			return nil, IEInvalidLength(TypeFTEID)
		}
		f.IPv6 = net.IP(append([]byte(nil), v[cursor:cursor+16]...))
		cursor += 16
	}
	return f, nil
}

// ChargingID identifies charging records across GSNs/GWs (TS 29.274 8.28).
type ChargingID struct {
	simple
	Value uint32
}

func NewChargingID(v uint32, instance uint8) *ChargingID {
	return &ChargingID{simple{TypeChargingID, instance}, v}
}
func (c *ChargingID) Len() int { return 8 }
func (c *ChargingID) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeChargingID, c.ins, gtp.AppendUint32(nil, c.Value))
}
func decodeChargingID(ins uint8, v []byte) (IE, error) {
	if len(v) < 4 {
		return nil, IEInvalidLength(TypeChargingID)
	}
	return &ChargingID{simple{TypeChargingID, ins}, gtp.Uint32(v[:4])}, nil
}

// PDNType records the PDN type negotiated for the session (TS 29.274
// 8.34), sharing its value space with PDNAddressAllocation.
type PDNType struct {
	simple
	Value uint8
}

func NewPDNType(v uint8, instance uint8) *PDNType {
	return &PDNType{simple{TypePDNType, instance}, v}
}
func (p *PDNType) Len() int { return 5 }
func (p *PDNType) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypePDNType, p.ins, []byte{p.Value})
}
func decodePDNType(ins uint8, v []byte) (IE, error) {
	if len(v) < 1 {
		return nil, IEInvalidLength(TypePDNType)
	}
	return &PDNType{simple{TypePDNType, ins}, v[0] & 0x7}, nil
}

// ULI encodes a bitset of six location-identifier flags followed by the
// concatenation of present identifiers in fixed order (spec.md §4.1.5):
// CGI, SAI, RAI, TAI, ECGI, Macro eNB ID.
type ULI struct {
	simple
	HasCGI, HasSAI, HasRAI, HasTAI, HasECGI, HasMacroENB bool
	CGI        ULICellID
	SAI        ULICellID
	RAI        ULICellID
	TAI        ULITAI
	ECGI       ULIECGI
	MacroENBID ULIMacroENB
}

// ULICellID is the shared PLMN+LAC+cell-identifier shape of CGI/SAI/RAI.
type ULICellID struct {
	MCC, MNC string
	LAC      uint16
	CellID   uint16
}

type ULITAI struct {
	MCC, MNC string
	TAC      uint16
}

type ULIECGI struct {
	MCC, MNC string
	ECI      uint32 // low 28 bits significant
}

type ULIMacroENB struct {
	MCC, MNC string
	ID       uint32 // low 20 bits significant
}

func (u *ULI) Len() int {
	n := 5
	if u.HasCGI {
		n += 7
	}
	if u.HasSAI {
		n += 7
	}
	if u.HasRAI {
		n += 7
	}
	if u.HasTAI {
		n += 5
	}
	if u.HasECGI {
		n += 7
	}
	if u.HasMacroENB {
		n += 6
	}
	return n
}
func (u *ULI) Marshal(b []byte) []byte {
	flags := byte(0)
	if u.HasCGI {
		flags |= 0x01
	}
	if u.HasSAI {
		flags |= 0x02
	}
	if u.HasRAI {
		flags |= 0x04
	}
	if u.HasTAI {
		flags |= 0x08
	}
	if u.HasECGI {
		flags |= 0x10
	}
	if u.HasMacroENB {
		flags |= 0x20
	}
	value := []byte{flags}
	if u.HasCGI {
		value = append(value, marshalULICellID(u.CGI)...)
	}
	if u.HasSAI {
		value = append(value, marshalULICellID(u.SAI)...)
	}
	if u.HasRAI {
		value = append(value, marshalULICellID(u.RAI)...)
	}
	if u.HasTAI {
		plmn := encodePLMN(u.TAI.MCC, u.TAI.MNC)
		value = append(value, plmn[:]...)
		value = gtp.AppendUint16(value, u.TAI.TAC)
	}
	if u.HasECGI {
		plmn := encodePLMN(u.ECGI.MCC, u.ECGI.MNC)
		value = append(value, plmn[:]...)
		value = gtp.AppendUint32(value, u.ECGI.ECI&0x0fffffff)
	}
	if u.HasMacroENB {
		plmn := encodePLMN(u.MacroENBID.MCC, u.MacroENBID.MNC)
		value = append(value, plmn[:]...)
		value = append(value, byte(u.MacroENBID.ID>>16), byte(u.MacroENBID.ID>>8), byte(u.MacroENBID.ID))
	}
	return marshalTLIV(b, TypeULI, u.ins, value)
}

func marshalULICellID(c ULICellID) []byte {
	plmn := encodePLMN(c.MCC, c.MNC)
	v := append([]byte(nil), plmn[:]...)
	v = gtp.AppendUint16(v, c.LAC)
	return gtp.AppendUint16(v, c.CellID)
}

func decodeULICellID(v []byte) (ULICellID, error) {
	if len(v) < 7 {
		return ULICellID{}, IEInvalidLength(TypeULI)
	}
	mcc, mnc := decodePLMN(v)
	return ULICellID{mcc, mnc, gtp.Uint16(v[3:5]), gtp.Uint16(v[5:7])}, nil
}

func decodeULI(ins uint8, v []byte) (IE, error) {
	if len(v) < 1 {
		return nil, IEInvalidLength(TypeULI)
	}
	flags := v[0]
	u := &ULI{simple: simple{TypeULI, ins}}
	cursor := 1
	take := func(n int) ([]byte, error) {
		if len(v) < cursor+n {
			return nil, IEInvalidLength(TypeULI)
		}
		out := v[cursor : cursor+n]
		cursor += n
		return out, nil
	}
	if flags&0x01 != 0 {
		u.HasCGI = true
		raw, err := take(7)
		if err != nil {
			return nil, err
		}
		u.CGI, err = decodeULICellID(raw)
		if err != nil {
			return nil, err
		}
	}
	if flags&0x02 != 0 {
		u.HasSAI = true
		raw, err := take(7)
		if err != nil {
			return nil, err
		}
		u.SAI, err = decodeULICellID(raw)
		if err != nil {
			return nil, err
		}
	}
	if flags&0x04 != 0 {
		u.HasRAI = true
		raw, err := take(7)
		if err != nil {
			return nil, err
		}
		u.RAI, err = decodeULICellID(raw)
		if err != nil {
			return nil, err
		}
	}
	if flags&0x08 != 0 {
		u.HasTAI = true
		raw, err := take(5)
		if err != nil {
			return nil, err
		}
		mcc, mnc := decodePLMN(raw)
		u.TAI = ULITAI{mcc, mnc, gtp.Uint16(raw[3:5])}
	}
	if flags&0x10 != 0 {
		u.HasECGI = true
		raw, err := take(7)
		if err != nil {
			return nil, err
		}
		mcc, mnc := decodePLMN(raw)
		u.ECGI = ULIECGI{mcc, mnc, gtp.Uint32(raw[3:7]) & 0x0fffffff}
	}
	if flags&0x20 != 0 {
		u.HasMacroENB = true
		raw, err := take(6)
		if err != nil {
			return nil, err
		}
		mcc, mnc := decodePLMN(raw)
		u.MacroENBID = ULIMacroENB{mcc, mnc, uint32(raw[3])<<16 | uint32(raw[4])<<8 | uint32(raw[5])}
	}
	return u, nil
}

// FQDN carries a label-encoded fully qualified domain name (TS 29.274
// 8.41).
type FQDN struct {
	simple
	Value string
}

func NewFQDN(v string, instance uint8) *FQDN {
	return &FQDN{simple{TypeFQDN, instance}, v}
}
func (f *FQDN) Len() int { return 4 + len(gtp.EncodeLabels(f.Value)) }
func (f *FQDN) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeFQDN, f.ins, gtp.EncodeLabels(f.Value))
}
func decodeFQDN(ins uint8, v []byte) (IE, error) {
	return &FQDN{simple{TypeFQDN, ins}, gtp.DecodeLabels(v)}, nil
}

// UETimeZone carries the UE's time zone as a BCD-packed 15-minute-unit
// offset plus a daylight-saving adjustment indicator (TS 29.274 8.44).
type UETimeZone struct {
	simple
	Offset15Min int8
	DST         uint8
}

func NewUETimeZone(offset15Min int8, dst uint8, instance uint8) *UETimeZone {
	return &UETimeZone{simple{TypeUETimeZone, instance}, offset15Min, dst}
}
func (u *UETimeZone) Len() int { return 6 }
func (u *UETimeZone) Marshal(b []byte) []byte {
	sign := u.Offset15Min
	digits := sign
	if digits < 0 {
		digits = -digits
	}
	tz := gtp.EncodeBCD(itoa2(uint8(digits)))[0]
	if sign < 0 {
		tz |= 0x08
	}
	return marshalTLIV(b, TypeUETimeZone, u.ins, []byte{tz, u.DST & 0x3})
}
func decodeUETimeZone(ins uint8, v []byte) (IE, error) {
	if len(v) < 2 {
		return nil, IEInvalidLength(TypeUETimeZone)
	}
	tz := v[0]
	negative := tz&0x08 != 0
	digits := tz &^ 0x08
	n := int8(digits&0xf)*10 + int8(digits>>4)
	if negative {
		n = -n
	}
	return &UETimeZone{simple{TypeUETimeZone, ins}, n, v[1] & 0x3}, nil
}

func itoa2(n uint8) string {
	return string('0'+n/10) + string('0'+n%10)
}

// TraceInformation carries trace activation parameters as an opaque blob
// beyond its leading Trace ID (TS 29.274 8.32); matches this codec's
// framing of the deep nested trace-configuration fields as a carried
// payload rather than a parsed protocol.
type TraceInformation struct {
	simple
	MCC, MNC   string
	TraceID    uint32 // low 24 bits significant
	Rest       []byte
}

func (t *TraceInformation) Len() int { return 4 + 3 + 3 + len(t.Rest) }
func (t *TraceInformation) Marshal(b []byte) []byte {
	plmn := encodePLMN(t.MCC, t.MNC)
	value := append([]byte(nil), plmn[:]...)
	value = append(value, byte(t.TraceID>>16), byte(t.TraceID>>8), byte(t.TraceID))
	value = append(value, t.Rest...)
	return marshalTLIV(b, TypeTraceInformation, t.ins, value)
}
func decodeTraceInformation(ins uint8, v []byte) (IE, error) {
	if len(v) < 6 {
		return nil, IEInvalidLength(TypeTraceInformation)
	}
	mcc, mnc := decodePLMN(v)
	traceID := uint32(v[3])<<16 | uint32(v[4])<<8 | uint32(v[5])
	return &TraceInformation{simple{TypeTraceInformation, ins}, mcc, mnc, traceID, append([]byte(nil), v[6:]...)}, nil
}

// TraceReference identifies a trace recording session by PLMN plus trace
// ID (TS 29.274 8.31), the same leading fields Trace Information carries.
type TraceReference struct {
	simple
	MCC, MNC string
	TraceID  uint32 // low 24 bits significant
}

func NewTraceReference(mcc, mnc string, traceID uint32, instance uint8) *TraceReference {
	return &TraceReference{simple{TypeTraceReference, instance}, mcc, mnc, traceID}
}
func (t *TraceReference) Len() int { return 4 + 6 }
func (t *TraceReference) Marshal(b []byte) []byte {
	plmn := encodePLMN(t.MCC, t.MNC)
	value := append([]byte(nil), plmn[:]...)
	value = append(value, byte(t.TraceID>>16), byte(t.TraceID>>8), byte(t.TraceID))
	return marshalTLIV(b, TypeTraceReference, t.ins, value)
}
func decodeTraceReference(ins uint8, v []byte) (IE, error) {
	if len(v) < 6 {
		return nil, IEInvalidLength(TypeTraceReference)
	}
	mcc, mnc := decodePLMN(v)
	return &TraceReference{simple{TypeTraceReference, ins}, mcc, mnc, uint32(v[3])<<16 | uint32(v[4])<<8 | uint32(v[5])}, nil
}

// FContainer carries an opaque RAN/NAS transparent container, keyed by the
// container type conveyed alongside it in its host message (TS 29.274
// 8.62).
type FContainer struct {
	simple
	Value []byte
}

func (f *FContainer) Len() int { return 4 + len(f.Value) }
func (f *FContainer) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeFContainer, f.ins, f.Value)
}
func decodeFContainer(ins uint8, v []byte) (IE, error) {
	return &FContainer{simple{TypeFContainer, ins}, append([]byte(nil), v...)}, nil
}

// FCause carries an opaque RAN-originated cause value (TS 29.274 8.63).
type FCause struct {
	simple
	Value []byte
}

func (f *FCause) Len() int { return 4 + len(f.Value) }
func (f *FCause) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeFCause, f.ins, f.Value)
}
func decodeFCause(ins uint8, v []byte) (IE, error) {
	return &FCause{simple{TypeFCause, ins}, append([]byte(nil), v...)}, nil
}

// Node type values (TS 29.274 8.70).
const (
	NodeTypeMME  = 0
	NodeTypeSGSN = 1
)

// NodeType identifies the node class in messages exchanged between core
// network elements (TS 29.274 8.70).
type NodeType struct {
	simple
	Value uint8
}

func NewNodeType(v uint8, instance uint8) *NodeType {
	return &NodeType{simple{TypeNodeType, instance}, v}
}
func (n *NodeType) Len() int { return 5 }
func (n *NodeType) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeNodeType, n.ins, []byte{n.Value})
}
func decodeNodeType(ins uint8, v []byte) (IE, error) {
	if len(v) < 1 {
		return nil, IEInvalidLength(TypeNodeType)
	}
	return &NodeType{simple{TypeNodeType, ins}, v[0]}, nil
}

// FQCSID carries a node identifier (IPv4, IPv6, or a 4-byte "other" form)
// plus one or more connection-set IDs (TS 29.274 8.62, table 8.62-1).
type FQCSID struct {
	simple
	NodeIDType uint8 // 0 = IPv4, 1 = IPv6, 2 = other (4 bytes)
	NodeID     []byte
	CSIDs      []uint16
}

func (f *FQCSID) Len() int { return 4 + 1 + len(f.NodeID) + 2*len(f.CSIDs) }
func (f *FQCSID) Marshal(b []byte) []byte {
	value := []byte{f.NodeIDType<<4 | uint8(len(f.CSIDs))&0xf}
	value = append(value, f.NodeID...)
	for _, c := range f.CSIDs {
		value = gtp.AppendUint16(value, c)
	}
	return marshalTLIV(b, TypeFQCSID, f.ins, value)
}
func decodeFQCSID(ins uint8, v []byte) (IE, error) {
	if len(v) < 1 {
		return nil, IEInvalidLength(TypeFQCSID)
	}
	nodeType := v[0] >> 4
	count := int(v[0] & 0xf)
	nodeLen := map[uint8]int{0: 4, 1: 16, 2: 4}[nodeType]
	if nodeLen == 0 && nodeType != 2 {
		return nil, IEIncorrect(TypeFQCSID)
	}
	if len(v) < 1+nodeLen+2*count {
		return nil, IEInvalidLength(TypeFQCSID)
	}
	f := &FQCSID{simple: simple{TypeFQCSID, ins}, NodeIDType: nodeType, NodeID: append([]byte(nil), v[1:1+nodeLen]...)}
	cursor := 1 + nodeLen
	for i := 0; i < count; i++ {
		f.CSIDs = append(f.CSIDs, gtp.Uint16(v[cursor:cursor+2]))
		cursor += 2
	}
	return f, nil
}

// PrivateExtension carries vendor-specific content (TS 29.274 8.90).
type PrivateExtension struct {
	simple
	ExtensionID uint16
	Value       []byte
}

func NewPrivateExtension(extID uint16, value []byte, instance uint8) *PrivateExtension {
	return &PrivateExtension{simple{TypePrivateExtension, instance}, extID, value}
}
func (p *PrivateExtension) Len() int { return 4 + 2 + len(p.Value) }
func (p *PrivateExtension) Marshal(b []byte) []byte {
	value := gtp.AppendUint16(nil, p.ExtensionID)
	value = append(value, p.Value...)
	return marshalTLIV(b, TypePrivateExtension, p.ins, value)
}
func decodePrivateExtension(ins uint8, v []byte) (IE, error) {
	if len(v) < 2 {
		return nil, IEInvalidLength(TypePrivateExtension)
	}
	return &PrivateExtension{simple{TypePrivateExtension, ins}, gtp.Uint16(v[:2]), append([]byte(nil), v[2:]...)}, nil
}
