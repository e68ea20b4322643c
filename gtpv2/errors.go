package gtpv2

import "fmt"

// errHeaderVersionNotSupported mirrors gtpv1's predicate-style sentinel
// error (spec.md §8.3): the offending version is never heuristically
// promoted to a supported one.
type errHeaderVersionNotSupported struct{ Version uint8 }

func (e errHeaderVersionNotSupported) Error() string {
	return fmt.Sprintf("gtpv2: header version %d not supported", e.Version)
}

func HeaderVersionNotSupported(version uint8) error { return errHeaderVersionNotSupported{version} }

func IsHeaderVersionNotSupported(err error) bool {
	_, ok := err.(errHeaderVersionNotSupported)
	return ok
}

type errHeaderInvalidLength struct{ Len int }

func (e errHeaderInvalidLength) Error() string {
	return fmt.Sprintf("gtpv2: header too short: %d bytes", e.Len)
}

func HeaderInvalidLength(length int) error { return errHeaderInvalidLength{length} }

func IsHeaderInvalidLength(err error) bool {
	_, ok := err.(errHeaderInvalidLength)
	return ok
}

// errIEIncorrect is returned when an IE's content fails structural
// validation for its declared type (spec.md §7).
type errIEIncorrect struct{ Type uint8 }

func (e errIEIncorrect) Error() string {
	return fmt.Sprintf("gtpv2: IE type %d incorrect", e.Type)
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
	return fmt.Sprintf("gtpv2: IE type %d invalid length", e.Type)
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
	return fmt.Sprintf("gtpv2: message type %d, expected %d", e.Got, e.Want)
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
	return fmt.Sprintf("gtpv2: mandatory IE %d missing", e.Type)
}

func MessageMandatoryIEMissing(typ uint8) error { return errMessageMandatoryIEMissing{typ} }

func IsMessageMandatoryIEMissing(err error) bool {
	_, ok := err.(errMessageMandatoryIEMissing)
	return ok
}

// errMessageInvalidMessageFormat covers a payload shorter than the header's
// Length field claims, or any other structural violation detected at
// message level that isn't attributable to a single IE (spec.md §7).
type errMessageInvalidMessageFormat struct{ Reason string }

func (e errMessageInvalidMessageFormat) Error() string {
	return "gtpv2: invalid message format: " + e.Reason
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
	return fmt.Sprintf("gtpv2: header declares length %d, got %d bytes", e.Declared, e.Got)
}

func MessageLengthError(declared, got int) error { return errMessageLengthError{declared, got} }

func IsMessageLengthError(err error) bool {
	_, ok := err.(errMessageLengthError)
	return ok
}

// errMessageOptionalIEIncorrect covers an optional IE present on the wire
// whose content is structurally invalid for its own type, surfaced at
// message granularity because the offending slot (not just the tag) is
// known to the caller (spec.md §7).
type errMessageOptionalIEIncorrect struct{ Type uint8 }

func (e errMessageOptionalIEIncorrect) Error() string {
	return fmt.Sprintf("gtpv2: optional IE %d incorrect", e.Type)
}

func MessageOptionalIEIncorrect(typ uint8) error { return errMessageOptionalIEIncorrect{typ} }

func IsMessageOptionalIEIncorrect(err error) bool {
	_, ok := err.(errMessageOptionalIEIncorrect)
	return ok
}

// errFirstIEMissing is returned by the handful of messages (e.g. Create
// Session Request) whose first wire IE is semantically required to be a
// specific type even though the general mandatory-IE check would also
// catch its absence; it lets callers distinguish "wrong leading IE" from
// "leading IE present but something later is missing" (spec.md §7).
type errFirstIEMissing struct{ Type uint8 }

func (e errFirstIEMissing) Error() string {
	return fmt.Sprintf("gtpv2: first IE %d missing", e.Type)
}

func FirstIEMissing(typ uint8) error { return errFirstIEMissing{typ} }

func IsFirstIEMissing(err error) bool {
	_, ok := err.(errFirstIEMissing)
	return ok
}
