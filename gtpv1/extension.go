package gtpv1

// Unknown preserves an unrecognised extension-header type byte-for-byte
// (spec.md §8.7), so re-encoding an extension chain containing one
// reproduces the original bytes exactly.
type Unknown struct {
	ExtType uint8
	Payload []byte
}

func (u *Unknown) Type() uint8 { return u.ExtType }

func (u *Unknown) Marshal(b []byte) []byte {
	units := (len(u.Payload) + 2) / 4
	b = append(b, byte(units))
	return append(b, u.Payload...)
}

func (u *Unknown) Len() int { return 2 + len(u.Payload) }

// decodeExtensionC is the v1-C ExtensionDecoder: PDCP PDU Number, Suspend
// Request/Response, MBMS Support Indication, MS Info Change Reporting
// Support Indication, falling back to Unknown for anything else.
func decodeExtensionC(typ uint8, payload []byte) (ExtensionHeader, error) {
	switch typ {
	case extTypeMBMSSupportIndication:
		return decodeSpare2(typ, payload, newMBMSSupportIndication)
	case extTypeMSInfoChangeReportingSupportIndication:
		return decodeSpare2(typ, payload, newMSInfoChangeReportingSupportIndication)
	case extTypeSuspendRequest:
		return decodeSpare2(typ, payload, newSuspendRequest)
	case extTypeSuspendResponse:
		return decodeSpare2(typ, payload, newSuspendResponse)
	case extTypePDCPPDUNumber:
		if len(payload) != 2 {
			return nil, ExtHeaderInvalidLength(typ)
		}
		return &PDCPPDUNumber{Number: uint16(payload[0])<<8 | uint16(payload[1])}, nil
	default:
		return &Unknown{ExtType: typ, Payload: append([]byte(nil), payload...)}, nil
	}
}

func decodeSpare2(typ uint8, payload []byte, new func([2]byte) ExtensionHeader) (ExtensionHeader, error) {
	if len(payload) != 2 {
		return nil, ExtHeaderInvalidLength(typ)
	}
	return new([2]byte{payload[0], payload[1]}), nil
}
