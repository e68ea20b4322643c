package gtp

import (
	"bytes"
	"testing"
)

func TestEncodeBCD(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		want   []byte
	}{
		{"odd length", "123451234567890", []byte{0x21, 0x43, 0x15, 0x32, 0x54, 0x76, 0x98, 0xf0}},
		{"even length", "12345012345678", []byte{0x21, 0x43, 0x05, 0x21, 0x43, 0x65, 0x87}},
		{"empty", "", []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeBCD(tt.digits)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("EncodeBCD(%q) = % x, want % x", tt.digits, got, tt.want)
			}
		})
	}
}

func TestDecodeBCDRoundTrip(t *testing.T) {
	for _, digits := range []string{"123451234567890", "12345012345678", "901405101073874"} {
		got := DecodeBCD(EncodeBCD(digits))
		if got != digits {
			t.Errorf("round trip %q => %q", digits, got)
		}
	}
}

func TestLabelsRoundTrip(t *testing.T) {
	for _, name := range []string{"iot.1nce.net.mnc040.mcc901.gprs", "some.apn.example", "a"} {
		got := DecodeLabels(EncodeLabels(name))
		if got != name {
			t.Errorf("round trip %q => %q", name, got)
		}
	}
}
