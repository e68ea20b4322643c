package gtpv2

import "strconv"

// encodePLMN packs an MCC/MNC pair into the 3-byte BCD form shared by
// Serving Network, PLMN ID, ULI's location identifiers, Target
// Identification, and Trace Reference/Information (TS 29.274 8.21/8.37;
// TS 23.003 Annex A). A 2-digit MNC pads its third
// BCD nibble with 0xf.
func encodePLMN(mcc, mnc string) [3]byte {
	var out [3]byte
	out[0] = digit(mcc, 1)<<4 | digit(mcc, 0)
	mncDigit3 := byte(0xf)
	if len(mnc) == 3 {
		mncDigit3 = digit(mnc, 2)
	}
	out[1] = mncDigit3<<4 | digit(mcc, 2)
	out[2] = digit(mnc, 1)<<4 | digit(mnc, 0)
	return out
}

func digit(s string, i int) byte {
	if i >= len(s) {
		return 0
	}
	return s[i] - '0'
}

// decodePLMN reverses encodePLMN.
func decodePLMN(b []byte) (mcc, mnc string) {
	mccDigits := []byte{b[0] & 0xf, b[0] >> 4, b[1] & 0xf}
	mnc3 := b[1] >> 4
	mncDigits := []byte{b[2] & 0xf, b[2] >> 4}
	mcc = string(mccDigits[0]+'0') + string(mccDigits[1]+'0') + string(mccDigits[2]+'0')
	if mnc3 != 0xf {
		mncDigits = append(mncDigits, mnc3)
	}
	for _, d := range mncDigits {
		mnc += strconv.Itoa(int(d))
	}
	return mcc, mnc
}
