package gtpv2

import (
	"net"
	"testing"
)

func TestEchoRoundTrip(t *testing.T) {
	req := &EchoRequest{Recovery: NewRecovery(4, 0)}
	h := &Header{SequenceNumber: 1}
	wire := Marshal(h, req)

	_, got, err := DecodeEchoRequest(wire)
	if err != nil {
		t.Fatalf("DecodeEchoRequest: %v", err)
	}
	if got.Recovery.RestartCounter != 4 {
		t.Errorf("RestartCounter = %d, want 4", got.Recovery.RestartCounter)
	}

	resp := &EchoResponse{Recovery: NewRecovery(5, 0)}
	wire = Marshal(&Header{SequenceNumber: 1}, resp)
	_, gotResp, err := DecodeEchoResponse(wire)
	if err != nil {
		t.Fatalf("DecodeEchoResponse: %v", err)
	}
	if gotResp.Recovery.RestartCounter != 5 {
		t.Errorf("RestartCounter = %d, want 5", gotResp.Recovery.RestartCounter)
	}
}

func TestEchoResponseMandatoryIEMissing(t *testing.T) {
	wire := Marshal(&Header{SequenceNumber: 1}, &EchoResponse{})
	if _, _, err := DecodeEchoResponse(wire); !IsMessageMandatoryIEMissing(err) {
		t.Fatalf("err = %v, want MessageMandatoryIEMissing", err)
	}
}

// TestCreateSessionRequestRoundTrip exercises the two F-TEID instances
// (sender vs PGW S5/S8 control plane), a nested Bearer Context, and the
// message's full mandatory-IE set (spec.md §8.8 scenario 4 semantics).
func TestCreateSessionRequestRoundTrip(t *testing.T) {
	req := &CreateSessionRequest{
		IMSI:        NewIMSI("262011234567890", 0),
		MSISDN:      NewMSISDN("491771234567", 0),
		APN:         NewAccessPointName("internet.mnc001.mcc262.gprs", 0),
		SenderFTEID: NewFTEID(IFTypeS11MMEGTPC, 0x11112222, net.IPv4(10, 0, 0, 1).To4(), nil, 0),
		PGWS5S8CPlaneFTEID: NewFTEID(IFTypeS5S8SGWGTPU, 0x33334444, net.IPv4(10, 0, 0, 2).To4(), nil, 0),
		BearerContexts: []*BearerContext{
			NewBearerContext([]IE{
				NewEPSBearerID(5, 0),
				NewFTEID(IFTypeS5S8SGWGTPU, 0x55556666, net.IPv4(10, 0, 0, 3).To4(), nil, 2),
			}, 0),
		},
	}
	h := &Header{HasTEID: false, SequenceNumber: 0x000099}
	wire := Marshal(h, req)

	_, got, err := DecodeCreateSessionRequest(wire)
	if err != nil {
		t.Fatalf("DecodeCreateSessionRequest: %v", err)
	}
	if got.IMSI.Digits != "262011234567890" {
		t.Errorf("IMSI = %s", got.IMSI.Digits)
	}
	if got.SenderFTEID.TEID != 0x11112222 {
		t.Errorf("SenderFTEID.TEID = %#x", got.SenderFTEID.TEID)
	}
	if got.PGWS5S8CPlaneFTEID.TEID != 0x33334444 {
		t.Errorf("PGWS5S8CPlaneFTEID.TEID = %#x", got.PGWS5S8CPlaneFTEID.TEID)
	}
	if got.SenderFTEID.Instance() != instanceSender {
		t.Errorf("SenderFTEID instance = %d, want %d", got.SenderFTEID.Instance(), instanceSender)
	}
	if got.PGWS5S8CPlaneFTEID.Instance() != instancePGWS5S8CPlane {
		t.Errorf("PGWS5S8CPlaneFTEID instance = %d, want %d", got.PGWS5S8CPlaneFTEID.Instance(), instancePGWS5S8CPlane)
	}
	if len(got.BearerContexts) != 1 {
		t.Fatalf("got %d bearer contexts, want 1", len(got.BearerContexts))
	}
	if ebi := got.BearerContexts[0].EPSBearerID(); ebi == nil || ebi.Value != 5 {
		t.Errorf("BearerContexts[0].EPSBearerID = %+v", ebi)
	}
}

func TestCreateSessionRequestFirstIEMissing(t *testing.T) {
	req := &CreateSessionRequest{
		APN:         NewAccessPointName("x", 0),
		SenderFTEID: NewFTEID(IFTypeS11MMEGTPC, 1, nil, nil, 0),
		BearerContexts: []*BearerContext{
			NewBearerContext([]IE{NewEPSBearerID(5, 0)}, 0),
		},
	}
	wire := Marshal(&Header{}, req)
	if _, _, err := DecodeCreateSessionRequest(wire); !IsFirstIEMissing(err) {
		t.Fatalf("err = %v, want FirstIEMissing", err)
	}
}

func TestCreateSessionRequestMandatoryAPNMissing(t *testing.T) {
	req := &CreateSessionRequest{
		IMSI:        NewIMSI("262011234567890", 0),
		SenderFTEID: NewFTEID(IFTypeS11MMEGTPC, 1, nil, nil, 0),
		BearerContexts: []*BearerContext{
			NewBearerContext([]IE{NewEPSBearerID(5, 0)}, 0),
		},
	}
	wire := Marshal(&Header{}, req)
	if _, _, err := DecodeCreateSessionRequest(wire); !IsMessageMandatoryIEMissing(err) {
		t.Fatalf("err = %v, want MessageMandatoryIEMissing", err)
	}
}

func TestCreateSessionRequestMandatoryBearerContextMissing(t *testing.T) {
	req := &CreateSessionRequest{
		IMSI:        NewIMSI("262011234567890", 0),
		APN:         NewAccessPointName("x", 0),
		SenderFTEID: NewFTEID(IFTypeS11MMEGTPC, 1, nil, nil, 0),
	}
	wire := Marshal(&Header{}, req)
	if _, _, err := DecodeCreateSessionRequest(wire); !IsMessageMandatoryIEMissing(err) {
		t.Fatalf("err = %v, want MessageMandatoryIEMissing", err)
	}
}

func TestCreateSessionResponseRoundTrip(t *testing.T) {
	resp := &CreateSessionResponse{
		Cause: NewCause(CauseRequestAccepted, 0),
		PGWS5S8CPlaneFTEID: NewFTEID(IFTypeS5S8SGWGTPU, 0x77778888, net.IPv4(10, 0, 0, 4).To4(), nil, 0),
		BearerContexts: []*BearerContext{
			NewBearerContext([]IE{NewEPSBearerID(5, 0)}, 0),
		},
	}
	wire := Marshal(&Header{}, resp)
	_, got, err := DecodeCreateSessionResponse(wire)
	if err != nil {
		t.Fatalf("DecodeCreateSessionResponse: %v", err)
	}
	if got.Cause.Value != CauseRequestAccepted {
		t.Errorf("Cause = %d", got.Cause.Value)
	}
	if got.PGWS5S8CPlaneFTEID.TEID != 0x77778888 {
		t.Errorf("PGWS5S8CPlaneFTEID.TEID = %#x", got.PGWS5S8CPlaneFTEID.TEID)
	}
}

func TestDeleteSessionRoundTrip(t *testing.T) {
	req := &DeleteSessionRequest{LinkedEBI: NewEPSBearerID(5, 0)}
	wire := Marshal(&Header{}, req)
	_, got, err := DecodeDeleteSessionRequest(wire)
	if err != nil {
		t.Fatalf("DecodeDeleteSessionRequest: %v", err)
	}
	if got.LinkedEBI.Value != 5 {
		t.Errorf("LinkedEBI = %d, want 5", got.LinkedEBI.Value)
	}

	resp := &DeleteSessionResponse{Cause: NewCause(CauseRequestAccepted, 0)}
	wire = Marshal(&Header{}, resp)
	_, gotResp, err := DecodeDeleteSessionResponse(wire)
	if err != nil {
		t.Fatalf("DecodeDeleteSessionResponse: %v", err)
	}
	if gotResp.Cause.Value != CauseRequestAccepted {
		t.Errorf("Cause = %d", gotResp.Cause.Value)
	}
}

func TestDecodeMessageIncorrectMessageType(t *testing.T) {
	wire := Marshal(&Header{}, &EchoRequest{})
	if _, _, err := DecodeEchoResponse(wire); !IsMessageIncorrectMessageType(err) {
		t.Fatalf("err = %v, want MessageIncorrectMessageType", err)
	}
}
