package gtpv1u

import (
	"bytes"
	"testing"

	"github.com/packetflux/gtp/gtpv1"
)

// TestGPDUExtensionChainRoundTrip exercises a chain of v1-U extension
// headers (UDP Port, then a long-encoding PDCP PDU Number, then an opaque
// PDU Session Container) carried in a G-PDU.
func TestGPDUExtensionChainRoundTrip(t *testing.T) {
	tpdu := []byte{0x45, 0x00, 0x00, 0x1c}
	m := &GPDU{
		Teid:   0x0a0b0c0d,
		HasSeq: true,
		Seq:    99,
		Extensions: []gtpv1.ExtensionHeader{
			&UDPPort{Port: 2152},
			&LongPDCPPDUNumber{Encoding: LongPDCPEncodingLong, Number: 0x00abcdef},
			&PDUSessionContainer{Payload: []byte{0x11, 0x22}},
		},
		TPDU: tpdu,
	}
	wire := m.Marshal()

	got, err := DecodeGPDU(wire)
	if err != nil {
		t.Fatalf("DecodeGPDU: %v", err)
	}
	if !bytes.Equal(got.TPDU, tpdu) {
		t.Errorf("TPDU = % x, want % x", got.TPDU, tpdu)
	}
	if len(got.Extensions) != 3 {
		t.Fatalf("got %d extensions, want 3", len(got.Extensions))
	}

	udp, ok := got.Extensions[0].(*UDPPort)
	if !ok || udp.Port != 2152 {
		t.Errorf("extension 0 = %+v, want UDPPort{2152}", got.Extensions[0])
	}
	pdcp, ok := got.Extensions[1].(*LongPDCPPDUNumber)
	if !ok || pdcp.Encoding != LongPDCPEncodingLong || pdcp.Number != 0x00abcdef {
		t.Errorf("extension 1 = %+v, want LongPDCPPDUNumber{Long, 0xabcdef}", got.Extensions[1])
	}
	sess, ok := got.Extensions[2].(*PDUSessionContainer)
	if !ok || !bytes.Equal(sess.Payload, []byte{0x11, 0x22}) {
		t.Errorf("extension 2 = %+v, want PDUSessionContainer{11 22}", got.Extensions[2])
	}

	// Re-encoding must reproduce the exact same wire bytes.
	if again := got.Marshal(); !bytes.Equal(again, wire) {
		t.Errorf("re-encode = % x, want % x", again, wire)
	}
}

// TestRANContainerFamilyOddPayloadLengths exercises payload lengths that are
// NOT congruent to 2 mod 4, so the on-wire block needs padding beyond the
// length octet and the trailing next-type octet. A chain is used so that an
// undercounted Len() on an earlier container shows up as the next
// container's type tag being misread.
func TestRANContainerFamilyOddPayloadLengths(t *testing.T) {
	m := &GPDU{
		Teid: 0x11,
		Extensions: []gtpv1.ExtensionHeader{
			&RANContainer{Payload: []byte{0x01}},
			&XwRANContainer{Payload: []byte{0x01, 0x02, 0x03}},
			&NRRANContainer{Payload: []byte{0x01, 0x02, 0x03, 0x04, 0x05}},
			&PDUSessionContainer{Payload: []byte{}},
		},
		TPDU: []byte{0x00},
	}
	wire := m.Marshal()

	got, err := DecodeGPDU(wire)
	if err != nil {
		t.Fatalf("DecodeGPDU: %v", err)
	}
	if len(got.Extensions) != 4 {
		t.Fatalf("got %d extensions, want 4", len(got.Extensions))
	}
	ran, ok := got.Extensions[0].(*RANContainer)
	// Decoded payloads keep the zero padding the encoder added.
	if !ok || !bytes.Equal(ran.Payload, []byte{0x01, 0x00}) {
		t.Errorf("extension 0 = %+v, want RANContainer{01 00}", got.Extensions[0])
	}
	xw, ok := got.Extensions[1].(*XwRANContainer)
	if !ok || !bytes.Equal(xw.Payload, []byte{0x01, 0x02, 0x03, 0x00, 0x00, 0x00}) {
		t.Errorf("extension 1 = %+v, want XwRANContainer{01 02 03 00 00 00}", got.Extensions[1])
	}
	nr, ok := got.Extensions[2].(*NRRANContainer)
	if !ok || !bytes.Equal(nr.Payload, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x00}) {
		t.Errorf("extension 2 = %+v, want NRRANContainer{01 02 03 04 05 00}", got.Extensions[2])
	}
	sess, ok := got.Extensions[3].(*PDUSessionContainer)
	if !ok || !bytes.Equal(sess.Payload, []byte{0x00, 0x00}) {
		t.Errorf("extension 3 = %+v, want PDUSessionContainer{00 00}", got.Extensions[3])
	}

	if again := got.Marshal(); !bytes.Equal(again, wire) {
		t.Errorf("re-encode = % x, want % x", again, wire)
	}
	for i, e := range m.Extensions {
		if e.Len()%4 != 0 {
			t.Errorf("extension %d Len() = %d, want a multiple of 4", i, e.Len())
		}
	}
}

func TestExtensionUnrecognisedTypeFallsBackToUnknown(t *testing.T) {
	m := &GPDU{
		Teid: 1,
		Extensions: []gtpv1.ExtensionHeader{
			&gtpv1.Unknown{ExtType: 0x90, Payload: []byte{0xaa, 0xbb}},
		},
		TPDU: []byte{0x01},
	}
	wire := m.Marshal()

	got, err := DecodeGPDU(wire)
	if err != nil {
		t.Fatalf("DecodeGPDU: %v", err)
	}
	if len(got.Extensions) != 1 {
		t.Fatalf("got %d extensions, want 1", len(got.Extensions))
	}
	u, ok := got.Extensions[0].(*gtpv1.Unknown)
	if !ok {
		t.Fatalf("extension 0 = %T, want *gtpv1.Unknown", got.Extensions[0])
	}
	if u.ExtType != 0x90 || !bytes.Equal(u.Payload, []byte{0xaa, 0xbb}) {
		t.Errorf("Unknown = %+v", u)
	}
}

// TestServiceClassIndicatorAndShortPDCPRoundTrip covers the fixed-length
// extension variants not exercised above: Service Class Indicator, the
// 16-bit PDCP PDU Number, and the short Long-PDCP-PDU-Number encoding.
func TestServiceClassIndicatorAndShortPDCPRoundTrip(t *testing.T) {
	m := &GPDU{
		Teid: 2,
		Extensions: []gtpv1.ExtensionHeader{
			&ServiceClassIndicator{Value: 0x07},
			&PDCPPDUNumber{Number: 0x1234},
			&LongPDCPPDUNumber{Encoding: LongPDCPEncodingShort, Number: 0x2345},
		},
		TPDU: []byte{0x00},
	}
	wire := m.Marshal()
	got, err := DecodeGPDU(wire)
	if err != nil {
		t.Fatalf("DecodeGPDU: %v", err)
	}
	sci, ok := got.Extensions[0].(*ServiceClassIndicator)
	if !ok || sci.Value != 0x07 {
		t.Errorf("extension 0 = %+v", got.Extensions[0])
	}
	pdcp, ok := got.Extensions[1].(*PDCPPDUNumber)
	if !ok || pdcp.Number != 0x1234 {
		t.Errorf("extension 1 = %+v", got.Extensions[1])
	}
	long, ok := got.Extensions[2].(*LongPDCPPDUNumber)
	if !ok || long.Encoding != LongPDCPEncodingShort || long.Number != 0x2345 {
		t.Errorf("extension 2 = %+v", got.Extensions[2])
	}
}
