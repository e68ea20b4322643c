package gtpv2

import "testing"

func TestContextRoundTrip(t *testing.T) {
	req := &ContextRequest{
		IMSI:        NewIMSI("262011234567890", 0),
		SenderFTEID: NewFTEID(IFTypeS11MMEGTPC, 0x1000, nil, nil, 0),
		TargetIdentification: &TargetIdentification{
			simple:     simple{TypeTargetIdentification, 0},
			TargetType: TargetTypeMacroENBID,
			MCC:        "262", MNC: "01",
			ENBID: 0x001122,
			TAC:   0x3344,
		},
	}
	wire := Marshal(&Header{}, req)
	_, got, err := DecodeContextRequest(wire)
	if err != nil {
		t.Fatalf("DecodeContextRequest: %v", err)
	}
	if got.IMSI.Digits != "262011234567890" {
		t.Errorf("IMSI = %s", got.IMSI.Digits)
	}
	if got.TargetIdentification.ENBID != 0x001122 {
		t.Errorf("ENBID = %#x", got.TargetIdentification.ENBID)
	}

	resp := &ContextResponse{
		Cause: NewCause(CauseRequestAccepted, 0),
		PDNConnections: []*PDNConnection{
			NewPDNConnection([]IE{NewAccessPointName("internet", 0)}, 0),
		},
	}
	wire = Marshal(&Header{}, resp)
	_, gotResp, err := DecodeContextResponse(wire)
	if err != nil {
		t.Fatalf("DecodeContextResponse: %v", err)
	}
	if gotResp.Cause.Value != CauseRequestAccepted {
		t.Errorf("Cause = %d", gotResp.Cause.Value)
	}
	if len(gotResp.PDNConnections) != 1 {
		t.Fatalf("got %d PDN connections, want 1", len(gotResp.PDNConnections))
	}
}

func TestContextRequestMandatorySenderFTEIDMissing(t *testing.T) {
	req := &ContextRequest{IMSI: NewIMSI("262011234567890", 0)}
	wire := Marshal(&Header{}, req)
	if _, _, err := DecodeContextRequest(wire); !IsMessageMandatoryIEMissing(err) {
		t.Fatalf("err = %v, want MessageMandatoryIEMissing", err)
	}
}

func TestContextAcknowledgeRoundTrip(t *testing.T) {
	wire := Marshal(&Header{}, &ContextAcknowledge{Cause: NewCause(CauseRequestAccepted, 0)})
	_, got, err := DecodeContextAcknowledge(wire)
	if err != nil {
		t.Fatalf("DecodeContextAcknowledge: %v", err)
	}
	if got.Cause.Value != CauseRequestAccepted {
		t.Errorf("Cause = %d", got.Cause.Value)
	}
}

func TestForwardRelocationRequestRoundTrip(t *testing.T) {
	req := &ForwardRelocationRequest{
		IMSI: NewIMSI("262011234567890", 0),
		MMContext: &MMContext{
			simple:       simple{TypeMMContext, 0},
			SecurityMode: SecurityModeGSMKeyAndTriplets,
			Key:          []byte{1, 2, 3, 4, 5, 6, 7, 8},
		},
		PDNConnections: []*PDNConnection{
			NewPDNConnection([]IE{NewAccessPointName("internet", 0)}, 0),
		},
	}
	wire := Marshal(&Header{}, req)
	_, got, err := DecodeForwardRelocationRequest(wire)
	if err != nil {
		t.Fatalf("DecodeForwardRelocationRequest: %v", err)
	}
	if got.IMSI.Digits != "262011234567890" {
		t.Errorf("IMSI = %s", got.IMSI.Digits)
	}
	if got.MMContext.SecurityMode != SecurityModeGSMKeyAndTriplets {
		t.Errorf("SecurityMode = %d", got.MMContext.SecurityMode)
	}
	if len(got.PDNConnections) != 1 {
		t.Fatalf("got %d PDN connections, want 1", len(got.PDNConnections))
	}
}

func TestForwardRelocationRequestFirstIEMissing(t *testing.T) {
	req := &ForwardRelocationRequest{
		MMContext: &MMContext{simple: simple{TypeMMContext, 0}, SecurityMode: SecurityModeGSMKeyAndTriplets, Key: []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		PDNConnections: []*PDNConnection{
			NewPDNConnection([]IE{NewAccessPointName("internet", 0)}, 0),
		},
	}
	wire := Marshal(&Header{}, req)
	if _, _, err := DecodeForwardRelocationRequest(wire); !IsFirstIEMissing(err) {
		t.Fatalf("err = %v, want FirstIEMissing", err)
	}
}

func TestForwardRelocationRequestMandatoryPDNConnectionsMissing(t *testing.T) {
	req := &ForwardRelocationRequest{
		IMSI: NewIMSI("262011234567890", 0),
		MMContext: &MMContext{
			simple: simple{TypeMMContext, 0}, SecurityMode: SecurityModeGSMKeyAndTriplets,
			Key: []byte{1, 2, 3, 4, 5, 6, 7, 8},
		},
	}
	wire := Marshal(&Header{}, req)
	if _, _, err := DecodeForwardRelocationRequest(wire); !IsMessageMandatoryIEMissing(err) {
		t.Fatalf("err = %v, want MessageMandatoryIEMissing", err)
	}
}

func TestForwardRelocationResponseRoundTrip(t *testing.T) {
	resp := &ForwardRelocationResponse{
		Cause:       NewCause(CauseRequestAccepted, 0),
		SenderFTEID: NewFTEID(IFTypeS11MMEGTPC, 0x2000, nil, nil, 0),
	}
	wire := Marshal(&Header{}, resp)
	_, got, err := DecodeForwardRelocationResponse(wire)
	if err != nil {
		t.Fatalf("DecodeForwardRelocationResponse: %v", err)
	}
	if got.SenderFTEID.TEID != 0x2000 {
		t.Errorf("SenderFTEID.TEID = %#x", got.SenderFTEID.TEID)
	}
}

func TestTraceSessionRoundTrip(t *testing.T) {
	act := &TraceSessionActivation{
		IMSI: NewIMSI("262011234567890", 0),
		TraceInformation: &TraceInformation{
			simple:  simple{TypeTraceInformation, 0},
			MCC:     "262",
			MNC:     "01",
			TraceID: 0x0a0b0c,
			Rest:    []byte{0x01, 0x02},
		},
	}
	wire := Marshal(&Header{}, act)
	_, got, err := DecodeTraceSessionActivation(wire)
	if err != nil {
		t.Fatalf("DecodeTraceSessionActivation: %v", err)
	}
	if got.TraceInformation.TraceID != 0x0a0b0c {
		t.Errorf("TraceID = %#x", got.TraceInformation.TraceID)
	}

	deact := &TraceSessionDeactivation{TraceReference: NewTraceReference("262", "01", 0x0a0b0c, 0)}
	wire = Marshal(&Header{}, deact)
	_, gotDeact, err := DecodeTraceSessionDeactivation(wire)
	if err != nil {
		t.Fatalf("DecodeTraceSessionDeactivation: %v", err)
	}
	if gotDeact.TraceReference.TraceID != 0x0a0b0c {
		t.Errorf("TraceID = %#x", gotDeact.TraceReference.TraceID)
	}
}

func TestTraceSessionActivationMandatoryTraceInformationMissing(t *testing.T) {
	wire := Marshal(&Header{}, &TraceSessionActivation{IMSI: NewIMSI("262011234567890", 0)})
	if _, _, err := DecodeTraceSessionActivation(wire); !IsMessageMandatoryIEMissing(err) {
		t.Fatalf("err = %v, want MessageMandatoryIEMissing", err)
	}
}

func TestTraceSessionDeactivationMandatoryTraceReferenceMissing(t *testing.T) {
	wire := Marshal(&Header{}, &TraceSessionDeactivation{})
	if _, _, err := DecodeTraceSessionDeactivation(wire); !IsMessageMandatoryIEMissing(err) {
		t.Fatalf("err = %v, want MessageMandatoryIEMissing", err)
	}
}
