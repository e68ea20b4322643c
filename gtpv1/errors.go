package gtpv1

import "fmt"

// errHeaderVersionNotSupported is returned when the version bits of a
// decoded PDU are not 001 (spec.md §8.3): the offending version is never
// heuristically promoted to a supported one.
type errHeaderVersionNotSupported struct{ Version uint8 }

func (e errHeaderVersionNotSupported) Error() string {
	return fmt.Sprintf("gtpv1: header version %d not supported", e.Version)
}

// HeaderVersionNotSupported is returned by DecodeHeader when the version
// bits do not read 1.
func HeaderVersionNotSupported(version uint8) error { return errHeaderVersionNotSupported{version} }

// IsHeaderVersionNotSupported reports whether err is a version-mismatch
// failure, mirroring the teacher's errSingleCmdTerm/IsErrSingleCmdTerm
// predicate style.
func IsHeaderVersionNotSupported(err error) bool {
	_, ok := err.(errHeaderVersionNotSupported)
	return ok
}

type errHeaderInvalidLength struct{ Len int }

func (e errHeaderInvalidLength) Error() string {
	return fmt.Sprintf("gtpv1: header too short: %d bytes", e.Len)
}

// HeaderInvalidLength reports a PDU shorter than the minimum header size
// its own flag bits demand.
func HeaderInvalidLength(length int) error { return errHeaderInvalidLength{length} }

func IsHeaderInvalidLength(err error) bool {
	_, ok := err.(errHeaderInvalidLength)
	return ok
}

type errExtHeaderInvalidLength struct{ Type uint8 }

func (e errExtHeaderInvalidLength) Error() string {
	return fmt.Sprintf("gtpv1: extension header type 0x%02x has invalid length", e.Type)
}

// ExtHeaderInvalidLength is returned when an extension header's declared
// length is zero (spec.md §4.2.2, §8.6): a length of zero would not
// advance the decode cursor and must be rejected rather than looped on.
// It is also returned when an extension's payload size does not match the
// size of a fixed-size extension type.
func ExtHeaderInvalidLength(typ uint8) error { return errExtHeaderInvalidLength{typ} }

func IsExtHeaderInvalidLength(err error) bool {
	_, ok := err.(errExtHeaderInvalidLength)
	return ok
}

// errIEIncorrect is returned when an IE's content fails structural
// validation for its declared type (spec.md §7).
type errIEIncorrect struct{ Type uint8 }

func (e errIEIncorrect) Error() string {
	return fmt.Sprintf("gtpv1: IE type 0x%02x incorrect", e.Type)
}

func IEIncorrect(typ uint8) error { return errIEIncorrect{typ} }

func IsIEIncorrect(err error) bool {
	_, ok := err.(errIEIncorrect)
	return ok
}

// errIEInvalidLength is returned when an IE's declared length does not
// leave enough bytes in the slice, or is inconsistent with the type's
// minimum (spec.md §4.1.2).
type errIEInvalidLength struct{ Type uint8 }

func (e errIEInvalidLength) Error() string {
	return fmt.Sprintf("gtpv1: IE type 0x%02x invalid length", e.Type)
}

func IEInvalidLength(typ uint8) error { return errIEInvalidLength{typ} }

func IsIEInvalidLength(err error) bool {
	_, ok := err.(errIEInvalidLength)
	return ok
}

// errMessageIncorrectMessageType is returned when a decoded header's
// message type does not match the type the caller asked to decode.
type errMessageIncorrectMessageType struct{ Got, Want uint8 }

func (e errMessageIncorrectMessageType) Error() string {
	return fmt.Sprintf("gtpv1: message type 0x%02x, expected 0x%02x", e.Got, e.Want)
}

func MessageIncorrectMessageType(got, want uint8) error {
	return errMessageIncorrectMessageType{got, want}
}

func IsMessageIncorrectMessageType(err error) bool {
	_, ok := err.(errMessageIncorrectMessageType)
	return ok
}

// errMessageMandatoryIEMissing carries the type tag of the first mandatory
// IE found absent after a successful parse (spec.md §8.5).
type errMessageMandatoryIEMissing struct{ Type uint8 }

func (e errMessageMandatoryIEMissing) Error() string {
	return fmt.Sprintf("gtpv1: mandatory IE 0x%02x missing", e.Type)
}

func MessageMandatoryIEMissing(typ uint8) error { return errMessageMandatoryIEMissing{typ} }

func IsMessageMandatoryIEMissing(err error) bool {
	_, ok := err.(errMessageMandatoryIEMissing)
	return ok
}

// errMessageInvalidMessageFormat covers an out-of-order IE (a type tag lower
// than one already seen), or a payload shorter than the header's length
// field claims (spec.md §7, §8.4). An IE with an unrecognised type tag does
// not produce it: such an IE is decoded as an UnknownIE.
type errMessageInvalidMessageFormat struct{ Reason string }

func (e errMessageInvalidMessageFormat) Error() string {
	return "gtpv1: invalid message format: " + e.Reason
}

func MessageInvalidMessageFormat(reason string) error {
	return errMessageInvalidMessageFormat{reason}
}

func IsMessageInvalidMessageFormat(err error) bool {
	_, ok := err.(errMessageInvalidMessageFormat)
	return ok
}

// errMessageLengthError describes a header Length field that does not leave
// exactly the bytes the datagram actually carries (spec.md §4.3.2, §7). No
// decoder in this package returns it: bytes beyond the declared Length are
// ignored, and a datagram shorter than the declared Length fails with
// errMessageInvalidMessageFormat.
type errMessageLengthError struct{ Declared, Got int }

func (e errMessageLengthError) Error() string {
	return fmt.Sprintf("gtpv1: header declares length %d, got %d bytes", e.Declared, e.Got)
}

func MessageLengthError(declared, got int) error { return errMessageLengthError{declared, got} }

func IsMessageLengthError(err error) bool {
	_, ok := err.(errMessageLengthError)
	return ok
}
