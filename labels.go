package gtp

import "strings"

// EncodeLabels encodes a dotted name (Access Point Name, Fully Qualified
// Domain Name) as a sequence of length-prefixed labels, per 3GPP TS 23.003
// Annex A / TS 29.274 8.35: each label is preceded by a single byte giving
// its length.
func EncodeLabels(name string) []byte {
	if name == "" {
		return nil
	}
	labels := strings.Split(name, ".")
	out := make([]byte, 0, len(name)+len(labels))
	for _, l := range labels {
		out = append(out, byte(len(l)))
		out = append(out, l...)
	}
	return out
}

// DecodeLabels reverses EncodeLabels, reconstructing the dotted name from
// its length-prefixed label sequence.
func DecodeLabels(b []byte) string {
	var sb strings.Builder
	for len(b) > 0 {
		l := int(b[0])
		b = b[1:]
		if l > len(b) {
			l = len(b)
		}
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		sb.Write(b[:l])
		b = b[l:]
	}
	return sb.String()
}
