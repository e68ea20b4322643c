package gtpv1

import "testing"

func TestCreatePDPContextRoundTrip(t *testing.T) {
	req := &CreatePDPContextRequest{
		Teid:                 0x01020304,
		IMSI:                 NewIMSI("262011234567890"),
		TEIDDataI:            NewTEIDDataI(0xaaaabbbb),
		NSAPI:                NewNSAPI(5),
		APN:                  NewAccessPointName("internet"),
		GSNAddressSignalling: NewGSNAddress([]byte{10, 0, 0, 1}),
		GSNAddressUser:       NewGSNAddress([]byte{10, 0, 0, 2}),
		QoSProfile:           &QoSProfile{AllocationRetentionPriority: 2, Profile: []byte{0x0b, 0x92, 0x92, 0x92}},
	}
	wire := Marshal(nil, req, 1)
	got, err := DecodeCreatePDPContextRequest(wire)
	if err != nil {
		t.Fatalf("DecodeCreatePDPContextRequest: %v", err)
	}
	if got.IMSI.Digits != "262011234567890" {
		t.Errorf("IMSI = %s", got.IMSI.Digits)
	}
	if got.TEIDDataI.TEID != 0xaaaabbbb {
		t.Errorf("TEIDDataI = %#x", got.TEIDDataI.TEID)
	}
	if got.NSAPI.Value != 5 {
		t.Errorf("NSAPI = %d", got.NSAPI.Value)
	}
	if string(got.GSNAddressSignalling.Address) != string([]byte{10, 0, 0, 1}) {
		t.Errorf("GSNAddressSignalling = %v", got.GSNAddressSignalling.Address)
	}
	if string(got.GSNAddressUser.Address) != string([]byte{10, 0, 0, 2}) {
		t.Errorf("GSNAddressUser = %v", got.GSNAddressUser.Address)
	}

	resp := &CreatePDPContextResponse{
		Teid:                 0x05060708,
		Cause:                NewCause(CauseRequestAccepted),
		TEIDDataI:            NewTEIDDataI(0xcccc1111),
		GSNAddressSignalling: NewGSNAddress([]byte{10, 0, 0, 3}),
		QoSProfile:           &QoSProfile{AllocationRetentionPriority: 1, Profile: []byte{0x0b}},
	}
	wire = Marshal(nil, resp, 1)
	gotResp, err := DecodeCreatePDPContextResponse(wire)
	if err != nil {
		t.Fatalf("DecodeCreatePDPContextResponse: %v", err)
	}
	if gotResp.Cause.Value != CauseRequestAccepted {
		t.Errorf("Cause = %d", gotResp.Cause.Value)
	}
	if gotResp.TEIDDataI.TEID != 0xcccc1111 {
		t.Errorf("TEIDDataI = %#x", gotResp.TEIDDataI.TEID)
	}
}

func TestCreatePDPContextRequestMandatoryGSNAddressMissing(t *testing.T) {
	req := &CreatePDPContextRequest{
		Teid:       1,
		IMSI:       NewIMSI("262011234567890"),
		TEIDDataI:  NewTEIDDataI(1),
		NSAPI:      NewNSAPI(5),
		QoSProfile: &QoSProfile{},
	}
	wire := Marshal(nil, req, 1)
	if _, err := DecodeCreatePDPContextRequest(wire); !IsMessageMandatoryIEMissing(err) {
		t.Fatalf("err = %v, want MessageMandatoryIEMissing", err)
	}
}

func TestUpdatePDPContextRequestAlternativeAddressesRoundTrip(t *testing.T) {
	req := &UpdatePDPContextRequest{
		Teid:                    0x0a0b0c0d,
		TEIDDataI:               NewTEIDDataI(1),
		NSAPI:                   NewNSAPI(5),
		GSNAddressSignalling:    NewGSNAddress([]byte{1, 1, 1, 1}),
		GSNAddressUser:          NewGSNAddress([]byte{2, 2, 2, 2}),
		AltGSNAddressSignalling: NewGSNAddress([]byte{3, 3, 3, 3}),
		AltGSNAddressUser:       NewGSNAddress([]byte{4, 4, 4, 4}),
		QoSProfile:              &QoSProfile{},
	}
	wire := Marshal(nil, req, 1)
	got, err := DecodeUpdatePDPContextRequest(wire)
	if err != nil {
		t.Fatalf("DecodeUpdatePDPContextRequest: %v", err)
	}
	if string(got.AltGSNAddressSignalling.Address) != string([]byte{3, 3, 3, 3}) {
		t.Errorf("AltGSNAddressSignalling = %v", got.AltGSNAddressSignalling.Address)
	}
	if string(got.AltGSNAddressUser.Address) != string([]byte{4, 4, 4, 4}) {
		t.Errorf("AltGSNAddressUser = %v", got.AltGSNAddressUser.Address)
	}
}

func TestUpdatePDPContextResponseRoundTrip(t *testing.T) {
	resp := &UpdatePDPContextResponse{
		Teid:  0x11223344,
		Cause: NewCause(CauseRequestAccepted),
	}
	wire := Marshal(nil, resp, 1)
	got, err := DecodeUpdatePDPContextResponse(wire)
	if err != nil {
		t.Fatalf("DecodeUpdatePDPContextResponse: %v", err)
	}
	if got.Cause.Value != CauseRequestAccepted {
		t.Errorf("Cause = %d", got.Cause.Value)
	}
}

func TestDeletePDPContextRoundTrip(t *testing.T) {
	req := &DeletePDPContextRequest{Teid: 0x99887766, NSAPI: NewNSAPI(5)}
	wire := Marshal(nil, req, 1)
	got, err := DecodeDeletePDPContextRequest(wire)
	if err != nil {
		t.Fatalf("DecodeDeletePDPContextRequest: %v", err)
	}
	if got.NSAPI.Value != 5 {
		t.Errorf("NSAPI = %d", got.NSAPI.Value)
	}

	resp := &DeletePDPContextResponse{Teid: 0x99887766, Cause: NewCause(CauseRequestAccepted)}
	wire = Marshal(nil, resp, 1)
	gotResp, err := DecodeDeletePDPContextResponse(wire)
	if err != nil {
		t.Fatalf("DecodeDeletePDPContextResponse: %v", err)
	}
	if gotResp.Cause.Value != CauseRequestAccepted {
		t.Errorf("Cause = %d", gotResp.Cause.Value)
	}
}

func TestDeletePDPContextRequestMandatoryNSAPIMissing(t *testing.T) {
	req := &DeletePDPContextRequest{Teid: 1}
	wire := Marshal(nil, req, 1)
	if _, err := DecodeDeletePDPContextRequest(wire); !IsMessageMandatoryIEMissing(err) {
		t.Fatalf("err = %v, want MessageMandatoryIEMissing", err)
	}
}
