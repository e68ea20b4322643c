package gtpv1u

import "github.com/packetflux/gtp"

// TypeExtensionHeaderTypeList is the only GTPv1-U-specific Information
// Element this package needs: it carries the set of extension header
// types a GSN supports, used solely by Supported Extension Headers
// Notification (TS 29.281 8.4). Every other IE referenced by this
// package's messages (TEID Data I, GSN Address, Recovery, Private
// Extension) is common to GTPv1-C and GTPv1-U and is reused directly from
// gtpv1.
const TypeExtensionHeaderTypeList = 141

// ExtensionHeaderTypeList is a TLV IE whose value is a flat list of
// one-byte extension header type tags.
type ExtensionHeaderTypeList struct {
	Types []uint8
}

func NewExtensionHeaderTypeList(types ...uint8) *ExtensionHeaderTypeList {
	return &ExtensionHeaderTypeList{Types: types}
}

func (e *ExtensionHeaderTypeList) IEType() uint8 { return TypeExtensionHeaderTypeList }
func (e *ExtensionHeaderTypeList) Len() int      { return 3 + len(e.Types) }
func (e *ExtensionHeaderTypeList) Marshal(b []byte) []byte {
	b = append(b, TypeExtensionHeaderTypeList)
	b = gtp.AppendUint16(b, uint16(len(e.Types)))
	return append(b, e.Types...)
}

func decodeExtensionHeaderTypeList(buf []byte) (*ExtensionHeaderTypeList, int, error) {
	if len(buf) < 3 {
		return nil, 0, IEInvalidLength(TypeExtensionHeaderTypeList)
	}
	l := int(gtp.Uint16(buf[1:3]))
	if len(buf) < 3+l {
		return nil, 0, IEInvalidLength(TypeExtensionHeaderTypeList)
	}
	return &ExtensionHeaderTypeList{Types: append([]byte(nil), buf[3:3+l]...)}, 3 + l, nil
}
