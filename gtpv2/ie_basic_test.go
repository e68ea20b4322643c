package gtpv2

import (
	"bytes"
	"net"
	"reflect"
	"testing"
)

// TestIERoundTrip exercises marshal/unmarshal/length for a representative
// sample of scalar v2 IEs (spec.md §4.1.1, §8.1), across a few different
// instance numbers to exercise the 4-bit discriminator.
func TestIERoundTrip(t *testing.T) {
	tests := []IE{
		NewIMSI("262011234567890", 0),
		NewCause(CauseRequestAccepted, 0),
		NewRecovery(9, 0),
		NewAccessPointName("internet.mnc001.mcc262.gprs", 0),
		NewAggregateMaximumBitRate(50000, 100000, 0),
		NewEPSBearerID(5, 0),
		NewIPAddress(net.IPv4(172, 16, 9, 9).To4(), 1),
		NewMobileEquipmentIdentity("3512340123456780", 0),
		NewMSISDN("491771234567", 0),
		NewRATType(RATTypeEUTRAN, 0),
		NewServingNetwork("262", "01", 0),
		NewPLMNID("262", "01", 0),
		NewAPNRestriction(2, 0),
		NewSelectionMode(0, 0),
		NewChargingID(0xaabbccdd, 0),
		NewPDNType(1, 0),
		NewFQDN("topon.s5s8.pgw.node.epc.mnc001.mcc262.3gppnetwork.org", 0),
		NewNodeType(1, 0),
		NewTraceReference("262", "01", 0x00112233, 0),
	}
	for _, ie := range tests {
		wire := ie.Marshal(nil)
		if len(wire) != ie.Len() {
			t.Errorf("%T: Len() = %d, wire = %d bytes", ie, ie.Len(), len(wire))
		}
		decoded, err := DecodeIEs(wire)
		if err != nil {
			t.Fatalf("%T: DecodeIEs: %v", ie, err)
		}
		if len(decoded) != 1 {
			t.Fatalf("%T: DecodeIEs produced %d IEs, want 1", ie, len(decoded))
		}
		if !reflect.DeepEqual(decoded[0], ie) {
			t.Errorf("%T: round trip = %+v, want %+v", ie, decoded[0], ie)
		}
	}
}

func TestFTEIDRoundTripIPv4Only(t *testing.T) {
	f := NewFTEID(10, 0x11223344, net.IPv4(10, 20, 30, 40).To4(), nil, 0)
	wire := f.Marshal(nil)
	decoded, err := DecodeIEs(wire)
	if err != nil {
		t.Fatalf("DecodeIEs: %v", err)
	}
	got := decoded[0].(*FTEID)
	if got.InterfaceType != 10 || got.TEID != 0x11223344 {
		t.Errorf("InterfaceType/TEID = %d/%#x", got.InterfaceType, got.TEID)
	}
	if !got.IPv4.Equal(net.IPv4(10, 20, 30, 40)) {
		t.Errorf("IPv4 = %v", got.IPv4)
	}
	if got.IPv6 != nil {
		t.Errorf("IPv6 = %v, want nil", got.IPv6)
	}
}

func TestFTEIDRoundTripDualStack(t *testing.T) {
	v6 := net.ParseIP("2001:db8::1")
	f := NewFTEID(36, 0x01020304, net.IPv4(192, 0, 2, 1).To4(), v6, 2)
	wire := f.Marshal(nil)
	decoded, err := DecodeIEs(wire)
	if err != nil {
		t.Fatalf("DecodeIEs: %v", err)
	}
	got := decoded[0].(*FTEID)
	if got.Instance() != 2 {
		t.Errorf("Instance = %d, want 2", got.Instance())
	}
	if !got.IPv4.Equal(net.IPv4(192, 0, 2, 1)) {
		t.Errorf("IPv4 = %v", got.IPv4)
	}
	if !got.IPv6.Equal(v6) {
		t.Errorf("IPv6 = %v, want %v", got.IPv6, v6)
	}
}

func TestULIRoundTripTAIAndECGI(t *testing.T) {
	u := &ULI{
		simple:   simple{TypeULI, 0},
		HasTAI:   true,
		HasECGI:  true,
		TAI:      ULITAI{MCC: "262", MNC: "01", TAC: 0x1234},
		ECGI:     ULIECGI{MCC: "262", MNC: "01", ECI: 0x0fedcba9},
	}
	wire := u.Marshal(nil)
	decoded, err := DecodeIEs(wire)
	if err != nil {
		t.Fatalf("DecodeIEs: %v", err)
	}
	got := decoded[0].(*ULI)
	if !got.HasTAI || got.TAI.TAC != 0x1234 || got.TAI.MCC != "262" || got.TAI.MNC != "01" {
		t.Errorf("TAI = %+v", got.TAI)
	}
	if !got.HasECGI || got.ECGI.ECI != 0x0fedcba9 {
		t.Errorf("ECGI = %+v", got.ECGI)
	}
	if got.HasCGI || got.HasSAI || got.HasRAI || got.HasMacroENB {
		t.Errorf("unexpected presence flags set: %+v", got)
	}
}

func TestPDNAddressAllocationRoundTripIPv4v6(t *testing.T) {
	p := &PDNAddressAllocation{
		simple:        simple{TypePDNAddressAllocation, 0},
		PDNType:       PDNTypeIPv4v6,
		IPv4:          net.IPv4(10, 1, 2, 3).To4(),
		IPv6:          net.ParseIP("2001:db8::abcd"),
		IPv6PrefixLen: 64,
	}
	wire := p.Marshal(nil)
	decoded, err := DecodeIEs(wire)
	if err != nil {
		t.Fatalf("DecodeIEs: %v", err)
	}
	got := decoded[0].(*PDNAddressAllocation)
	if !got.IPv4.Equal(net.IPv4(10, 1, 2, 3)) {
		t.Errorf("IPv4 = %v", got.IPv4)
	}
	if !got.IPv6.Equal(net.ParseIP("2001:db8::abcd")) {
		t.Errorf("IPv6 = %v", got.IPv6)
	}
	if got.IPv6PrefixLen != 64 {
		t.Errorf("IPv6PrefixLen = %d, want 64", got.IPv6PrefixLen)
	}
}

func TestBearerQoSRoundTrip(t *testing.T) {
	q := &BearerQoS{
		simple:        simple{TypeBearerQoS, 0},
		PCI:           true,
		PriorityLevel: 5,
		PVI:           true,
		QCI:           9,
		MaxUplink:     1000000,
		MaxDownlink:   2000000,
		GuarUplink:    500000,
		GuarDownlink:  1500000,
	}
	wire := q.Marshal(nil)
	decoded, err := DecodeIEs(wire)
	if err != nil {
		t.Fatalf("DecodeIEs: %v", err)
	}
	if !reflect.DeepEqual(decoded[0], IE(q)) {
		t.Errorf("round trip = %+v, want %+v", decoded[0], q)
	}
}

// TestUnknownIEPassthrough ensures an unrecognised type tag round-trips
// byte-for-byte (spec.md §8.7).
func TestUnknownIEPassthrough(t *testing.T) {
	wire := []byte{0xf9, 0x00, 0x03, 0x02, 0xde, 0xad, 0xbe}
	ies, err := DecodeIEs(wire)
	if err != nil {
		t.Fatalf("DecodeIEs: %v", err)
	}
	if len(ies) != 1 {
		t.Fatalf("got %d IEs, want 1", len(ies))
	}
	u, ok := ies[0].(*UnknownIE)
	if !ok {
		t.Fatalf("got %T, want *UnknownIE", ies[0])
	}
	if u.Type != 0xf9 || u.Ins != 2 || !bytes.Equal(u.Value, []byte{0xde, 0xad, 0xbe}) {
		t.Errorf("UnknownIE = %+v", u)
	}
	if got := u.Marshal(nil); !bytes.Equal(got, wire) {
		t.Errorf("re-encode = % x, want % x", got, wire)
	}
}
