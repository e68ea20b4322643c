package gtpv1

import (
	"bytes"
	"testing"
)

// spec.md §8.8 scenario 1: a bare v1 header, no optional fields, followed
// by the 52 bytes its own Length field declares.
func TestDecodeHeaderBareRoundTrip(t *testing.T) {
	headerOnly := []byte{0x30, 0xff, 0x00, 0x34, 0x16, 0x62, 0x67, 0x19}
	buf := append(append([]byte(nil), headerOnly...), make([]byte, 0x34)...)

	h, rest, err := DecodeHeader(buf, decodeExtensionC)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if h.MessageType != 0xff {
		t.Errorf("MessageType = %#x, want 0xff", h.MessageType)
	}
	if h.TEID != 0x16626719 {
		t.Errorf("TEID = %#x, want 0x16626719", h.TEID)
	}
	if h.HasSequence || h.HasNPDU || len(h.Extensions) != 0 {
		t.Errorf("expected no optional fields, got %+v", h)
	}
	if len(rest) != 0x34 {
		t.Errorf("payload len = %d, want 52", len(rest))
	}

	got := h.Marshal(nil, len(rest))
	if !bytes.Equal(got, headerOnly) {
		t.Errorf("re-encode = % x, want % x", got, headerOnly)
	}
}

// spec.md §8.8 scenario 2: sequence number present plus two chained
// extension headers (MBMS Support Indication, then PDCP PDU Number).
func TestDecodeHeaderSequenceAndExtensionsRoundTrip(t *testing.T) {
	wire := []byte{
		0x36, 0x02, 0x00, 0x0c, 0x00, 0x00, 0x00, 0x00,
		0xf6, 0x4e, 0x00, 0x01,
		0x01, 0xff, 0xff,
		0xc0, 0x01, 0x10, 0x00,
		0x00,
	}

	h, rest, err := DecodeHeader(wire, decodeExtensionC)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if len(rest) != 0 {
		t.Fatalf("expected empty payload, got %d bytes", len(rest))
	}
	if !h.HasSequence || h.SequenceNumber != 0xf64e {
		t.Fatalf("sequence = present=%v %#x, want present 0xf64e", h.HasSequence, h.SequenceNumber)
	}
	if len(h.Extensions) != 2 {
		t.Fatalf("got %d extensions, want 2", len(h.Extensions))
	}
	mbms, ok := h.Extensions[0].(*MBMSSupportIndication)
	if !ok {
		t.Fatalf("extension 0 = %T, want *MBMSSupportIndication", h.Extensions[0])
	}
	if mbms.raw != [2]byte{0xff, 0xff} {
		t.Errorf("MBMS raw = %x, want ff ff", mbms.raw)
	}
	pdcp, ok := h.Extensions[1].(*PDCPPDUNumber)
	if !ok {
		t.Fatalf("extension 1 = %T, want *PDCPPDUNumber", h.Extensions[1])
	}
	if pdcp.Number != 0x1000 {
		t.Errorf("PDCP PDU number = %#x, want 0x1000", pdcp.Number)
	}

	got := h.Marshal(nil, len(rest))
	if !bytes.Equal(got, wire) {
		t.Errorf("re-encode = % x, want % x", got, wire)
	}
}

// spec.md §4.2.2 / §8.6: an extension header declaring length zero must be
// rejected, not cause an infinite loop.
func TestDecodeHeaderZeroLengthExtensionRejected(t *testing.T) {
	wire := []byte{
		0x34, 0x01, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0xc0, // next-type = PDCP PDU Number
		0x00, 0xff, 0xff, 0x00, // declared length-in-units = 0
	}
	_, _, err := DecodeHeader(wire, decodeExtensionC)
	if !IsExtHeaderInvalidLength(err) {
		t.Fatalf("err = %v, want ExtHeaderInvalidLength", err)
	}
}

func TestDecodeHeaderVersionNotSupported(t *testing.T) {
	wire := []byte{0x10, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	_, _, err := DecodeHeader(wire, decodeExtensionC)
	if !IsHeaderVersionNotSupported(err) {
		t.Fatalf("err = %v, want HeaderVersionNotSupported", err)
	}
}

func TestDecodeHeaderTooShort(t *testing.T) {
	_, _, err := DecodeHeader([]byte{0x30, 0xff, 0x00}, decodeExtensionC)
	if !IsHeaderInvalidLength(err) {
		t.Fatalf("err = %v, want HeaderInvalidLength", err)
	}
}
