package gtpv1

// GTPv1-C extension header type tags (3GPP TS 29.060 table 7.7.4-1).
const (
	extTypeMBMSSupportIndication                   = 0x01
	extTypeMSInfoChangeReportingSupportIndication   = 0x02
	extTypePDCPPDUNumber                            = 0xc0
	extTypeSuspendRequest                           = 0xc1
	extTypeSuspendResponse                          = 0xc2
)

// spare2 is the shared shape of the four 2-byte-spare v1-C extension
// headers: the payload carries no information, but the two bytes are
// preserved verbatim to round-trip exactly.
type spare2 struct {
	extType uint8
	raw     [2]byte
}

func (s *spare2) Type() uint8 { return s.extType }
func (s *spare2) Len() int    { return 4 }
func (s *spare2) Marshal(b []byte) []byte {
	b = append(b, 1) // 1 unit == 4 bytes total for this block
	return append(b, s.raw[0], s.raw[1])
}

// MBMSSupportIndication signals MBMS support on the interface carrying the
// PDU (TS 29.060 7.7.5.1).
type MBMSSupportIndication struct{ spare2 }

func newMBMSSupportIndication(raw [2]byte) ExtensionHeader {
	return &MBMSSupportIndication{spare2{extTypeMBMSSupportIndication, raw}}
}

// MSInfoChangeReportingSupportIndication signals MS Info Change Reporting
// support (TS 29.060 7.7.5.2).
type MSInfoChangeReportingSupportIndication struct{ spare2 }

func newMSInfoChangeReportingSupportIndication(raw [2]byte) ExtensionHeader {
	return &MSInfoChangeReportingSupportIndication{spare2{extTypeMSInfoChangeReportingSupportIndication, raw}}
}

// SuspendRequest requests the peer GSN to buffer downlink packets for a
// suspended MS (TS 29.060 7.7.6).
type SuspendRequest struct{ spare2 }

func newSuspendRequest(raw [2]byte) ExtensionHeader {
	return &SuspendRequest{spare2{extTypeSuspendRequest, raw}}
}

// SuspendResponse acknowledges a SuspendRequest (TS 29.060 7.7.7).
type SuspendResponse struct{ spare2 }

func newSuspendResponse(raw [2]byte) ExtensionHeader {
	return &SuspendResponse{spare2{extTypeSuspendResponse, raw}}
}

// PDCPPDUNumber carries the PDCP sequence number for lossless SRNS
// relocation (TS 29.060 7.7.73).
type PDCPPDUNumber struct {
	Number uint16
}

func NewPDCPPDUNumber(n uint16) *PDCPPDUNumber { return &PDCPPDUNumber{Number: n} }

func (p *PDCPPDUNumber) Type() uint8 { return extTypePDCPPDUNumber }
func (p *PDCPPDUNumber) Len() int    { return 4 }
func (p *PDCPPDUNumber) Marshal(b []byte) []byte {
	b = append(b, 1)
	return append(b, byte(p.Number>>8), byte(p.Number))
}
