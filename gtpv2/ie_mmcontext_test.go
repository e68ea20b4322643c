package gtpv2

import (
	"reflect"
	"testing"
)

// TestMMContextEPSSecurityContextQuadrupletsRoundTrip exercises security
// mode 4, the fixture-grounded EPS Security Context Quadruplets variant
// (TS 29.274 figure 8.38-1).
func TestMMContextEPSSecurityContextQuadrupletsRoundTrip(t *testing.T) {
	kasme := make([]byte, 32)
	for i := range kasme {
		kasme[i] = byte(i)
	}
	nextHop := make([]byte, 32)
	for i := range nextHop {
		nextHop[i] = byte(31 - i)
	}
	m := &MMContext{
		simple:              simple{TypeMMContext, 0},
		SecurityMode:        SecurityModeEPSSecurityContextQuadruplets,
		NHI:                 true,
		DRXI:                true,
		KSI:                 3,
		NumberOfQuadruplets: 1,
		NumberOfQuintuplets: 1,
		UsedCipher:          2,
		KASME:               kasme,
		Quintuplets:         [][]byte{{0xaa, 0xbb, 0xcc}},
		Quadruplets:         [][]byte{{0x11, 0x22}},
		NASDownlinkCount:    0x010203,
		NASUplinkCount:      0x040506,
		NextHop:             nextHop,
		NCC:                 5,
		DRX:                 []byte{0x02, 0x50},
	}
	wire := m.Marshal(nil)
	if len(wire) != m.Len() {
		t.Errorf("Len() = %d, wire = %d bytes", m.Len(), len(wire))
	}

	decoded, err := DecodeIEs(wire)
	if err != nil {
		t.Fatalf("DecodeIEs: %v", err)
	}
	got, ok := decoded[0].(*MMContext)
	if !ok {
		t.Fatalf("got %T, want *MMContext", decoded[0])
	}
	if !reflect.DeepEqual(got, m) {
		t.Errorf("round trip = %+v, want %+v", got, m)
	}
}

// TestMMContextUMTSKeyQuadrupletsQuintupletsRoundTrip exercises security
// mode 5.
func TestMMContextUMTSKeyQuadrupletsQuintupletsRoundTrip(t *testing.T) {
	ck := make([]byte, 16)
	ik := make([]byte, 16)
	for i := range ck {
		ck[i] = byte(i)
		ik[i] = byte(15 - i)
	}
	m := &MMContext{
		simple:              simple{TypeMMContext, 1},
		SecurityMode:        SecurityModeUMTSKeyQuadrupletsQuintuplets,
		KSI:                 2,
		NumberOfQuadruplets: 2,
		NumberOfQuintuplets: 1,
		CK:                  ck,
		IK:                  ik,
		Quintuplets:         [][]byte{{0x01, 0x02, 0x03, 0x04, 0x05}},
		Quadruplets:         [][]byte{{0xde, 0xad}, {0xbe, 0xef, 0x01}},
	}
	wire := m.Marshal(nil)
	decoded, err := DecodeIEs(wire)
	if err != nil {
		t.Fatalf("DecodeIEs: %v", err)
	}
	got, ok := decoded[0].(*MMContext)
	if !ok {
		t.Fatalf("got %T, want *MMContext", decoded[0])
	}
	if !reflect.DeepEqual(got, m) {
		t.Errorf("round trip = %+v, want %+v", got, m)
	}
}

// TestMMContextEPSSecurityContextTailFieldsRoundTrip exercises the
// presence-flag-gated tail (DRX, subscribed/used AMBR, UE/MS network
// capability, MEI, APN rate-control status list), approximating the
// two-rate-controlled-APN scenario called out for mode 4.
func TestMMContextEPSSecurityContextTailFieldsRoundTrip(t *testing.T) {
	kasme := make([]byte, 32)
	nextHop := make([]byte, 32)
	m := &MMContext{
		simple:              simple{TypeMMContext, 0},
		SecurityMode:        SecurityModeEPSSecurityContextQuadruplets,
		NHI:                 true,
		DRXI:                true,
		KSI:                 1,
		NumberOfQuadruplets: 1,
		NumberOfQuintuplets: 1,
		NASIntegrity:        2,
		UsedCipher:          1,
		KASME:               kasme,
		Quadruplets:         [][]byte{{0xaa, 0xbb}},
		Quintuplets:         [][]byte{{0x01, 0x02, 0x03}},
		NASDownlinkCount:    7,
		NASUplinkCount:      9,
		NextHop:             nextHop,
		NCC:                 5,
		DRX:                 []byte{0x01, 0x02},
		SubscribedAMBR:      &AggregateMaximumBitRate{Uplink: 100000, Downlink: 200000},
		UsedAMBR:            &AggregateMaximumBitRate{Uplink: 50000, Downlink: 90000},
		UENetworkCapability: []byte{0x01, 0x02, 0x03},
		MSNetworkCapability: []byte{0x04, 0x05},
		MEI:                 []byte{0x35, 0x80, 0x09, 0x85, 0x01, 0x00, 0x12, 0x30},
		APNRateControls: []*APNRateControlStatus{
			{APN: "internet", UplinkRateLimit: 10, ExceptionReportCount: 1, DownlinkRateLimit: 20, StatusValidity: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
			{APN: "ims", UplinkRateLimit: 5, ExceptionReportCount: 0, DownlinkRateLimit: 15, StatusValidity: []byte{8, 7, 6, 5, 4, 3, 2, 1}},
		},
	}
	wire := m.Marshal(nil)
	if len(wire) != m.Len() {
		t.Errorf("Len() = %d, wire = %d bytes", m.Len(), len(wire))
	}

	decoded, err := DecodeIEs(wire)
	if err != nil {
		t.Fatalf("DecodeIEs: %v", err)
	}
	got, ok := decoded[0].(*MMContext)
	if !ok {
		t.Fatalf("got %T, want *MMContext", decoded[0])
	}
	if !reflect.DeepEqual(got, m) {
		t.Errorf("round trip = %+v, want %+v", got, m)
	}
}

// TestMMContextTailFieldsAbsentRoundTrip confirms that omitting every tail
// field (no DRXI, no AMBRs, no capability strings, no rate-control entries)
// still round-trips, matching the decoder's tolerate-truncated-prefix style.
func TestMMContextTailFieldsAbsentRoundTrip(t *testing.T) {
	m := &MMContext{
		simple:              simple{TypeMMContext, 0},
		SecurityMode:        SecurityModeUMTSKeyQuadrupletsQuintuplets,
		KSI:                 4,
		NumberOfQuadruplets: 0,
		NumberOfQuintuplets: 0,
		CK:                  make([]byte, 16),
		IK:                  make([]byte, 16),
	}
	wire := m.Marshal(nil)
	decoded, err := DecodeIEs(wire)
	if err != nil {
		t.Fatalf("DecodeIEs: %v", err)
	}
	got, ok := decoded[0].(*MMContext)
	if !ok {
		t.Fatalf("got %T, want *MMContext", decoded[0])
	}
	if !reflect.DeepEqual(got, m) {
		t.Errorf("round trip = %+v, want %+v", got, m)
	}
}

// TestMMContextGSMKeyAndTripletsRoundTrip exercises one of the default-path
// (non-fixture-grounded) security modes, confirming the shared Key+
// Quintuplets layout round-trips for the simplest variant too.
func TestMMContextGSMKeyAndTripletsRoundTrip(t *testing.T) {
	m := &MMContext{
		simple:       simple{TypeMMContext, 0},
		SecurityMode: SecurityModeGSMKeyAndTriplets,
		KSI:          1,
		UsedCipher:   3,
		Key:          []byte{1, 2, 3, 4, 5, 6, 7, 8},
		Quintuplets:  [][]byte{{0xa, 0xb}},
	}
	wire := m.Marshal(nil)
	decoded, err := DecodeIEs(wire)
	if err != nil {
		t.Fatalf("DecodeIEs: %v", err)
	}
	got, ok := decoded[0].(*MMContext)
	if !ok {
		t.Fatalf("got %T, want *MMContext", decoded[0])
	}
	if got.UsedCipher != 3 || len(got.Key) != 8 {
		t.Errorf("Key/UsedCipher = %v/%d", got.Key, got.UsedCipher)
	}
	if len(got.Quintuplets) != 1 || got.Quintuplets[0][0] != 0xa {
		t.Errorf("Quintuplets = %v", got.Quintuplets)
	}
}
