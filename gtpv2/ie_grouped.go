package gtpv2

// GroupedIE is the shape shared by every container IE that nests a full IE
// list inside its value region (spec.md §4.1.4, §3.4): Bearer Context, PDN
// Connection, Overload Control Information, Load Control Information.
type GroupedIE struct {
	simple
	Children []IE
}

func (g *GroupedIE) Len() int {
	n := 0
	for _, c := range g.Children {
		n += c.Len()
	}
	return 4 + n
}

func (g *GroupedIE) Marshal(b []byte) []byte {
	b = append(b, g.typ)
	off := len(b)
	b = append(b, 0, 0)
	b = append(b, g.ins&0xf)
	start := len(b)
	for _, c := range g.Children {
		b = c.Marshal(b)
	}
	patchGroupedLen(b, off, len(b)-start)
	return b
}

func patchGroupedLen(b []byte, off int, length int) {
	b[off] = byte(length >> 8)
	b[off+1] = byte(length)
}

func decodeGrouped(typ uint8, ins uint8, v []byte) (*GroupedIE, error) {
	children, err := DecodeIEs(v)
	if err != nil {
		return nil, err
	}
	return &GroupedIE{simple{typ, ins}, children}, nil
}

// BearerContext groups the IEs describing a single EPS bearer: EPS Bearer
// ID, Bearer QoS, Bearer TFT, and one or two F-TEIDs (S1-U/S5-S8), among
// others (TS 29.274 8.28, table 8.28-1).
type BearerContext struct {
	GroupedIE
}

func NewBearerContext(children []IE, instance uint8) *BearerContext {
	return &BearerContext{GroupedIE{simple{TypeBearerContext, instance}, children}}
}

func decodeBearerContext(ins uint8, v []byte) (IE, error) {
	g, err := decodeGrouped(TypeBearerContext, ins, v)
	if err != nil {
		return nil, err
	}
	return &BearerContext{*g}, nil
}

// EPSBearerID returns the bearer's identifier, or nil if absent.
func (b *BearerContext) EPSBearerID() *EPSBearerID {
	if ie := firstOf(b.Children, TypeEPSBearerID, 0); ie != nil {
		return ie.(*EPSBearerID)
	}
	return nil
}

// BearerQoS returns the bearer's negotiated QoS, or nil if absent.
func (b *BearerContext) BearerQoS() *BearerQoS {
	if ie := firstOf(b.Children, TypeBearerQoS, 0); ie != nil {
		return ie.(*BearerQoS)
	}
	return nil
}

// PDNConnection groups the IEs describing one PDN connection, including its
// nested Bearer Context entries, when carried inside Context
// Response/Forward Relocation Request (TS 29.274 8.55, table 8.55-1).
type PDNConnection struct {
	GroupedIE
}

func NewPDNConnection(children []IE, instance uint8) *PDNConnection {
	return &PDNConnection{GroupedIE{simple{TypePDNConnection, instance}, children}}
}

func decodePDNConnection(ins uint8, v []byte) (IE, error) {
	g, err := decodeGrouped(TypePDNConnection, ins, v)
	if err != nil {
		return nil, err
	}
	return &PDNConnection{*g}, nil
}

// BearerContexts returns every nested Bearer Context grouped IE.
func (p *PDNConnection) BearerContexts() []*BearerContext {
	var out []*BearerContext
	for _, ie := range allOf(p.Children, TypeBearerContext) {
		out = append(out, ie.(*BearerContext))
	}
	return out
}

// OverloadControlInformation groups the IEs conveying a peer's self-reported
// overload state: Sequence Number, Overload Reduction Metric, Period of
// Validity, and optionally a List of Access Rat Type (TS 29.274 8.99,
// table 8.99-1).
type OverloadControlInformation struct {
	GroupedIE
}

func NewOverloadControlInformation(children []IE, instance uint8) *OverloadControlInformation {
	return &OverloadControlInformation{GroupedIE{simple{TypeOverloadControlInfo, instance}, children}}
}

func decodeOverloadControlInformation(ins uint8, v []byte) (IE, error) {
	g, err := decodeGrouped(TypeOverloadControlInfo, ins, v)
	if err != nil {
		return nil, err
	}
	return &OverloadControlInformation{*g}, nil
}

// LoadControlInformation groups the IEs conveying a peer's self-reported
// load state: Sequence Number, a Load Metric, and optionally a List of
// Access Rat Type and APN (TS 29.274 8.99, table 8.100-1).
type LoadControlInformation struct {
	GroupedIE
}

func NewLoadControlInformation(children []IE, instance uint8) *LoadControlInformation {
	return &LoadControlInformation{GroupedIE{simple{TypeLoadControlInfo, instance}, children}}
}

func decodeLoadControlInformation(ins uint8, v []byte) (IE, error) {
	g, err := decodeGrouped(TypeLoadControlInfo, ins, v)
	if err != nil {
		return nil, err
	}
	return &LoadControlInformation{*g}, nil
}

func init() {
	register(TypeBearerContext, decodeBearerContext)
	register(TypePDNConnection, decodePDNConnection)
	register(TypeOverloadControlInfo, decodeOverloadControlInformation)
	register(TypeLoadControlInfo, decodeLoadControlInformation)
}
