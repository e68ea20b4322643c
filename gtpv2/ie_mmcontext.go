package gtpv2

import "github.com/packetflux/gtp"

// MM Context type tags (TS 29.274 8.38, table 8.38-1). Each shares the type
// byte 103; the security-mode sub-variant lives in the top 3 bits of the
// first value octet (TS 29.274 figure 8.38-1).
const TypeMMContext = 103

// Security mode discriminator values (TS 29.274 table 8.38-1).
const (
	SecurityModeGSMKeyAndTriplets           = 0
	SecurityModeUMTSKeyUsedCipherAndQuintuplets = 1
	SecurityModeGSMKeyUsedCipherAndQuintuplets  = 2
	SecurityModeUMTSKeyAndQuintuplets       = 3
	SecurityModeEPSSecurityContextQuadruplets   = 4
	SecurityModeUMTSKeyQuadrupletsQuintuplets   = 5
)

// MMContext carries the subset of fields common to every security-mode
// variant, plus the variant-specific key material selected by SecurityMode.
// Only modes 4 (EPS Security Context + Quadruplets) and 5 (UMTS Key +
// Quadruplets + Quintuplets) are fixture-grounded against the reference
// Rust decoder; modes 0-3 follow the same layout family by analogy and are
// not independently fixture-verified (see DESIGN.md).
//
// Modes 4 and 5 additionally carry a tail of presence-flag-gated fields
// (TS 29.274 8.38): DRX parameters, next-hop chaining (mode 4 only),
// subscribed/used AMBR, UE/MS network capability, MEI, and the APN
// rate-control status list. Fields beyond that tail (old EPS security
// context, voice-domain preference, extended access restriction, and
// later octets) are not represented; decoders tolerate the value ending
// before any of this tail is reached, per spec.md's truncated-prefix
// invariant.
type MMContext struct {
	simple
	SecurityMode uint8
	NHI          bool // next-hop indicator, mode 4 only
	DRXI         bool
	KSI          uint8
	NumberOfQuintuplets uint8
	NumberOfQuadruplets uint8
	NASIntegrity uint8 // mode 4 only
	UsedCipher   uint8
	KASME        []byte // 32 bytes, mode 4
	CK, IK       []byte // 16 bytes each, mode 5
	Key          []byte // Kc (8B) for GSM modes, or CK+IK for UMTS modes 1/3
	Quintuplets  [][]byte
	Quadruplets  [][]byte
	NASDownlinkCount uint32 // 24-bit, mode 4
	NASUplinkCount   uint32
	NextHop      []byte // 32 bytes, mode 4
	NCC          uint8

	DRX                 []byte // 2 bytes, present when DRXI is set
	SubscribedAMBR      *AggregateMaximumBitRate
	UsedAMBR            *AggregateMaximumBitRate
	UENetworkCapability []byte
	MSNetworkCapability []byte
	MEI                 []byte
	APNRateControls     []*APNRateControlStatus
}

// APNRateControlStatus records the uplink/downlink rate-limit state the
// network is enforcing for one APN, embedded in modes 4 and 5 of MMContext
// (TS 29.274 8.108).
type APNRateControlStatus struct {
	APN                  string
	UplinkRateLimit      uint32
	ExceptionReportCount uint32
	DownlinkRateLimit    uint32
	StatusValidity       []byte // 8 bytes
}

func (s *APNRateControlStatus) marshal(b []byte) []byte {
	b = append(b, byte(len(s.APN)))
	b = append(b, s.APN...)
	b = gtp.AppendUint32(b, s.UplinkRateLimit)
	b = gtp.AppendUint32(b, s.ExceptionReportCount)
	b = gtp.AppendUint32(b, s.DownlinkRateLimit)
	validity := s.StatusValidity
	for len(validity) < 8 {
		validity = append(validity, 0)
	}
	return append(b, validity[:8]...)
}

// decodeAPNRateControlStatus reads one entry starting at v[0] and returns
// it along with the number of bytes consumed.
func decodeAPNRateControlStatus(v []byte) (*APNRateControlStatus, int, error) {
	if len(v) < 1 {
		return nil, 0, IEInvalidLength(TypeMMContext)
	}
	n := int(v[0])
	cursor := 1 + n
	if len(v) < cursor+4+4+4+8 {
		return nil, 0, IEInvalidLength(TypeMMContext)
	}
	s := &APNRateControlStatus{APN: string(v[1 : 1+n])}
	s.UplinkRateLimit = gtp.Uint32(v[cursor : cursor+4])
	cursor += 4
	s.ExceptionReportCount = gtp.Uint32(v[cursor : cursor+4])
	cursor += 4
	s.DownlinkRateLimit = gtp.Uint32(v[cursor : cursor+4])
	cursor += 4
	s.StatusValidity = append([]byte(nil), v[cursor:cursor+8]...)
	cursor += 8
	return s, cursor, nil
}

func (m *MMContext) Len() int {
	return 4 + len(m.mmContextValue())
}

func (m *MMContext) Marshal(b []byte) []byte {
	return marshalTLIV(b, TypeMMContext, m.ins, m.mmContextValue())
}

func (m *MMContext) mmContextValue() []byte {
	first := m.SecurityMode<<5 | boolBit(m.NHI, 4) | boolBit(m.DRXI, 3) | (m.KSI & 0x7)
	value := []byte{first}
	switch m.SecurityMode {
	case SecurityModeEPSSecurityContextQuadruplets:
		value = append(value, m.NumberOfQuintuplets&0x7<<5|m.NumberOfQuadruplets&0x7<<2|boolBit(m.UsedAMBR != nil, 1))
		value = append(value, boolBit(m.SubscribedAMBR != nil, 7)|m.NASIntegrity&0x7<<4|m.UsedCipher&0xf)
		value = append(value, m.KASME...)
		for _, q := range m.Quadruplets {
			value = append(value, byte(len(q)))
			value = append(value, q...)
		}
		for _, q := range m.Quintuplets {
			value = append(value, byte(len(q)))
			value = append(value, q...)
		}
		value = append(value, byte(m.NASDownlinkCount>>16), byte(m.NASDownlinkCount>>8), byte(m.NASDownlinkCount))
		value = append(value, byte(m.NASUplinkCount>>16), byte(m.NASUplinkCount>>8), byte(m.NASUplinkCount))
		if m.NHI {
			value = append(value, m.NextHop...)
			value = append(value, m.NCC&0x7)
		}
		value = m.appendCommonTail(value)
	case SecurityModeUMTSKeyQuadrupletsQuintuplets:
		value = append(value, m.NumberOfQuintuplets&0x7<<5|m.NumberOfQuadruplets&0x7<<2|boolBit(m.UsedAMBR != nil, 1)|boolBit(m.SubscribedAMBR != nil, 0))
		value = append(value, m.CK...)
		value = append(value, m.IK...)
		for _, q := range m.Quadruplets {
			value = append(value, byte(len(q)))
			value = append(value, q...)
		}
		for _, q := range m.Quintuplets {
			value = append(value, byte(len(q)))
			value = append(value, q...)
		}
		value = m.appendCommonTail(value)
	default:
		value = append(value, m.UsedCipher&0xf)
		value = append(value, m.Key...)
		for _, q := range m.Quintuplets {
			value = append(value, byte(len(q)))
			value = append(value, q...)
		}
	}
	return value
}

// appendCommonTail appends the presence-flag-gated field family shared by
// modes 4 and 5: DRX parameters, subscribed/used AMBR, UE/MS network
// capability, MEI, and the APN rate-control status list (TS 29.274 8.38).
func (m *MMContext) appendCommonTail(value []byte) []byte {
	if m.DRXI {
		drx := m.DRX
		for len(drx) < 2 {
			drx = append(drx, 0)
		}
		value = append(value, drx[:2]...)
	}
	if m.SubscribedAMBR != nil {
		value = appendRawAMBR(value, m.SubscribedAMBR)
	}
	if m.UsedAMBR != nil {
		value = appendRawAMBR(value, m.UsedAMBR)
	}
	value = appendLenPrefixed(value, m.UENetworkCapability)
	value = appendLenPrefixed(value, m.MSNetworkCapability)
	value = appendLenPrefixed(value, m.MEI)
	value = append(value, byte(len(m.APNRateControls)))
	for _, s := range m.APNRateControls {
		value = s.marshal(value)
	}
	return value
}

func appendRawAMBR(b []byte, a *AggregateMaximumBitRate) []byte {
	b = gtp.AppendUint32(b, a.Uplink)
	return gtp.AppendUint32(b, a.Downlink)
}

func appendLenPrefixed(b, v []byte) []byte {
	b = append(b, byte(len(v)))
	return append(b, v...)
}

func boolBit(b bool, shift uint) uint8 {
	if b {
		return 1 << shift
	}
	return 0
}

// decodeCommonTail parses the presence-flag-gated tail shared by modes 4
// and 5 (DRX, subscribed/used AMBR, UE/MS network capability, MEI, APN
// rate-control status list), stopping silently the moment rest runs out,
// per spec.md's truncated-prefix invariant: everything past that point is
// simply left unset rather than treated as an error.
func (m *MMContext) decodeCommonTail(rest []byte, cursor int, usedAMBRPresent, subscribedAMBRPresent bool) {
	if m.DRXI {
		if len(rest) < cursor+2 {
			return
		}
		m.DRX = append([]byte(nil), rest[cursor:cursor+2]...)
		cursor += 2
	}
	if subscribedAMBRPresent {
		a, n, ok := decodeRawAMBR(rest[cursor:])
		if !ok {
			return
		}
		m.SubscribedAMBR = a
		cursor += n
	}
	if usedAMBRPresent {
		a, n, ok := decodeRawAMBR(rest[cursor:])
		if !ok {
			return
		}
		m.UsedAMBR = a
		cursor += n
	}
	var ok bool
	m.UENetworkCapability, cursor, ok = decodeLenPrefixed(rest, cursor)
	if !ok {
		return
	}
	m.MSNetworkCapability, cursor, ok = decodeLenPrefixed(rest, cursor)
	if !ok {
		return
	}
	m.MEI, cursor, ok = decodeLenPrefixed(rest, cursor)
	if !ok {
		return
	}
	if len(rest) < cursor+1 {
		return
	}
	count := int(rest[cursor])
	cursor++
	for i := 0; i < count; i++ {
		if cursor >= len(rest) {
			break
		}
		s, n, err := decodeAPNRateControlStatus(rest[cursor:])
		if err != nil {
			break
		}
		m.APNRateControls = append(m.APNRateControls, s)
		cursor += n
	}
}

func decodeRawAMBR(v []byte) (*AggregateMaximumBitRate, int, bool) {
	if len(v) < 8 {
		return nil, 0, false
	}
	return &AggregateMaximumBitRate{Uplink: gtp.Uint32(v[0:4]), Downlink: gtp.Uint32(v[4:8])}, 8, true
}

// decodeLenPrefixed reads a 1-byte length prefix followed by that many raw
// bytes starting at cursor, returning the new cursor. ok is false if rest
// runs out before the prefix or the declared payload can be read.
func decodeLenPrefixed(rest []byte, cursor int) ([]byte, int, bool) {
	if len(rest) < cursor+1 {
		return nil, cursor, false
	}
	n := int(rest[cursor])
	cursor++
	if n == 0 {
		return nil, cursor, true
	}
	if len(rest) < cursor+n {
		return nil, cursor, false
	}
	v := append([]byte(nil), rest[cursor:cursor+n]...)
	cursor += n
	return v, cursor, true
}

func decodeMMContext(ins uint8, v []byte) (IE, error) {
	if len(v) < 1 {
		return nil, IEInvalidLength(TypeMMContext)
	}
	first := v[0]
	m := &MMContext{
		simple:       simple{TypeMMContext, ins},
		SecurityMode: first >> 5,
		NHI:          first&0x10 != 0,
		DRXI:         first&0x08 != 0,
		KSI:          first & 0x7,
	}
	rest := v[1:]
	switch m.SecurityMode {
	case SecurityModeEPSSecurityContextQuadruplets:
		if len(rest) < 2 {
			return nil, IEInvalidLength(TypeMMContext)
		}
		m.NumberOfQuintuplets = rest[0] >> 5 & 0x7
		m.NumberOfQuadruplets = rest[0] >> 2 & 0x7
		usedAMBRPresent := rest[0]&0x02 != 0
		subscribedAMBRPresent := rest[1]&0x80 != 0
		m.NASIntegrity = rest[1] >> 4 & 0x7
		m.UsedCipher = rest[1] & 0xf
		cursor := 2
		if len(rest) < cursor+32 {
			return nil, IEInvalidLength(TypeMMContext)
		}
		m.KASME = append([]byte(nil), rest[cursor:cursor+32]...)
		cursor += 32
		for i := uint8(0); i < m.NumberOfQuadruplets; i++ {
			if len(rest) < cursor+1 {
				return nil, IEInvalidLength(TypeMMContext)
			}
			n := int(rest[cursor])
			cursor++
			if len(rest) < cursor+n {
				return nil, IEInvalidLength(TypeMMContext)
			}
			m.Quadruplets = append(m.Quadruplets, append([]byte(nil), rest[cursor:cursor+n]...))
			cursor += n
		}
		for i := uint8(0); i < m.NumberOfQuintuplets; i++ {
			if len(rest) < cursor+1 {
				return nil, IEInvalidLength(TypeMMContext)
			}
			n := int(rest[cursor])
			cursor++
			if len(rest) < cursor+n {
				return nil, IEInvalidLength(TypeMMContext)
			}
			m.Quintuplets = append(m.Quintuplets, append([]byte(nil), rest[cursor:cursor+n]...))
			cursor += n
		}
		if len(rest) < cursor+6 {
			return nil, IEInvalidLength(TypeMMContext)
		}
		m.NASDownlinkCount = gtp.Uint24(rest[cursor : cursor+3])
		cursor += 3
		m.NASUplinkCount = gtp.Uint24(rest[cursor : cursor+3])
		cursor += 3
		if m.NHI {
			if len(rest) < cursor+33 {
				return nil, IEInvalidLength(TypeMMContext)
			}
			m.NextHop = append([]byte(nil), rest[cursor:cursor+32]...)
			cursor += 32
			m.NCC = rest[cursor] & 0x7
			cursor++
		}
		m.decodeCommonTail(rest, cursor, usedAMBRPresent, subscribedAMBRPresent)
	case SecurityModeUMTSKeyQuadrupletsQuintuplets:
		if len(rest) < 1+16+16 {
			return nil, IEInvalidLength(TypeMMContext)
		}
		m.NumberOfQuintuplets = rest[0] >> 5 & 0x7
		m.NumberOfQuadruplets = rest[0] >> 2 & 0x7
		usedAMBRPresent := rest[0]&0x02 != 0
		subscribedAMBRPresent := rest[0]&0x01 != 0
		cursor := 1
		m.CK = append([]byte(nil), rest[cursor:cursor+16]...)
		cursor += 16
		m.IK = append([]byte(nil), rest[cursor:cursor+16]...)
		cursor += 16
		for i := uint8(0); i < m.NumberOfQuadruplets; i++ {
			if len(rest) < cursor+1 {
				return nil, IEInvalidLength(TypeMMContext)
			}
			n := int(rest[cursor])
			cursor++
			if len(rest) < cursor+n {
				return nil, IEInvalidLength(TypeMMContext)
			}
			m.Quadruplets = append(m.Quadruplets, append([]byte(nil), rest[cursor:cursor+n]...))
			cursor += n
		}
		for i := uint8(0); i < m.NumberOfQuintuplets; i++ {
			if len(rest) < cursor+1 {
				return nil, IEInvalidLength(TypeMMContext)
			}
			n := int(rest[cursor])
			cursor++
			if len(rest) < cursor+n {
				return nil, IEInvalidLength(TypeMMContext)
			}
			m.Quintuplets = append(m.Quintuplets, append([]byte(nil), rest[cursor:cursor+n]...))
			cursor += n
		}
		m.decodeCommonTail(rest, cursor, usedAMBRPresent, subscribedAMBRPresent)
	default:
		if len(rest) < 1 {
			return nil, IEInvalidLength(TypeMMContext)
		}
		m.UsedCipher = rest[0] & 0xf
		cursor := 1
		keyLen := 8
		if m.SecurityMode == SecurityModeUMTSKeyUsedCipherAndQuintuplets || m.SecurityMode == SecurityModeUMTSKeyAndQuintuplets {
			keyLen = 32
		}
		if len(rest) < cursor+keyLen {
			return nil, IEInvalidLength(TypeMMContext)
		}
		m.Key = append([]byte(nil), rest[cursor:cursor+keyLen]...)
		cursor += keyLen
		for cursor < len(rest) {
			if len(rest) < cursor+1 {
				break
			}
			n := int(rest[cursor])
			cursor++
			if len(rest) < cursor+n {
				break
			}
			m.Quintuplets = append(m.Quintuplets, append([]byte(nil), rest[cursor:cursor+n]...))
			cursor += n
		}
	}
	return m, nil
}

func init() {
	register(TypeMMContext, decodeMMContext)
}
