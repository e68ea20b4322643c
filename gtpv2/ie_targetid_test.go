package gtpv2

import (
	"bytes"
	"testing"

	"github.com/packetflux/gtp"
)

// TestTargetIdentificationENgNBFixture reproduces spec.md §8.8 scenario 6
// byte-for-byte: TargetType EN-gNB, MCC/MNC 263/04, a 22-byte gNB-ID, TAC
// and extended-TAC both present.
func TestTargetIdentificationENgNBFixture(t *testing.T) {
	wire := []byte{
		TypeTargetIdentification, 0x00, 0x00, 0x00,
		0x08,             // TargetType = EN-gNB
		0x62, 0xf3, 0x40, // PLMN 263/04
		0xd6, // presence(TAC|extTAC) | gNB-ID length 22
	}
	gnbID := make([]byte, 22)
	for i := range gnbID {
		gnbID[i] = byte(i + 1)
	}
	wire = append(wire, gnbID...)
	wire = append(wire, 0x12, 0x34) // TAC
	wire = append(wire, 0x56, 0x78, 0x9a) // extended TAC
	gtp.PatchUint16(wire, 1, uint16(len(wire)-4))

	decoded, err := DecodeIEs(wire)
	if err != nil {
		t.Fatalf("DecodeIEs: %v", err)
	}
	got, ok := decoded[0].(*TargetIdentification)
	if !ok {
		t.Fatalf("got %T, want *TargetIdentification", decoded[0])
	}
	if got.TargetType != TargetTypeENgNBID {
		t.Errorf("TargetType = %d, want %d", got.TargetType, TargetTypeENgNBID)
	}
	if got.MCC != "263" || got.MNC != "04" {
		t.Errorf("MCC/MNC = %s/%s, want 263/04", got.MCC, got.MNC)
	}
	if !got.HasTAC || !got.HasExtendedTAC {
		t.Errorf("HasTAC/HasExtendedTAC = %v/%v, want true/true", got.HasTAC, got.HasExtendedTAC)
	}
	if !bytes.Equal(got.GNBID, gnbID) {
		t.Errorf("GNBID = % x, want % x", got.GNBID, gnbID)
	}
	if got.TAC != 0x1234 {
		t.Errorf("TAC = %#x, want 0x1234", got.TAC)
	}
	if got.ExtendedTAC != 0x56789a {
		t.Errorf("ExtendedTAC = %#x, want 0x56789a", got.ExtendedTAC)
	}

	again := got.Marshal(nil)
	if !bytes.Equal(again, wire) {
		t.Errorf("re-encode = % x, want % x", again, wire)
	}
}

func TestTargetIdentificationRNCIDRoundTrip(t *testing.T) {
	ti := &TargetIdentification{
		simple:     simple{TypeTargetIdentification, 0},
		TargetType: TargetTypeRNCID,
		MCC:        "310", MNC: "410",
		LAC: 0x2233, RAC: 0x44, RNCID: 0x5566, ExtendedRNCID: 0x7788,
	}
	wire := ti.Marshal(nil)
	decoded, err := DecodeIEs(wire)
	if err != nil {
		t.Fatalf("DecodeIEs: %v", err)
	}
	got, ok := decoded[0].(*TargetIdentification)
	if !ok {
		t.Fatalf("got %T, want *TargetIdentification", decoded[0])
	}
	if got.LAC != 0x2233 || got.RAC != 0x44 || got.RNCID != 0x5566 || got.ExtendedRNCID != 0x7788 {
		t.Errorf("RNC fields = %+v", got)
	}
	if got.MCC != "310" || got.MNC != "410" {
		t.Errorf("MCC/MNC = %s/%s, want 310/410", got.MCC, got.MNC)
	}
}

func TestTargetIdentificationMacroENBRoundTrip(t *testing.T) {
	ti := &TargetIdentification{
		simple:     simple{TypeTargetIdentification, 0},
		TargetType: TargetTypeMacroENBID,
		MCC:        "262", MNC: "01",
		ENBID: 0x0abcde,
		TAC:   0x9988,
	}
	wire := ti.Marshal(nil)
	decoded, err := DecodeIEs(wire)
	if err != nil {
		t.Fatalf("DecodeIEs: %v", err)
	}
	got := decoded[0].(*TargetIdentification)
	if got.ENBID != 0x0abcde || got.TAC != 0x9988 {
		t.Errorf("ENBID/TAC = %#x/%#x", got.ENBID, got.TAC)
	}
}
