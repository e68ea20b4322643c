package gtpv1u

import "fmt"

// errHeaderVersionNotSupported mirrors gtpv1's predicate-style sentinel
// error (spec.md §8.3).
type errHeaderVersionNotSupported struct{ Version uint8 }

func (e errHeaderVersionNotSupported) Error() string {
	return fmt.Sprintf("gtpv1u: header version %d not supported", e.Version)
}

func HeaderVersionNotSupported(version uint8) error { return errHeaderVersionNotSupported{version} }

func IsHeaderVersionNotSupported(err error) bool {
	_, ok := err.(errHeaderVersionNotSupported)
	return ok
}

type errExtHeaderInvalidLength struct{ Type uint8 }

func (e errExtHeaderInvalidLength) Error() string {
	return fmt.Sprintf("gtpv1u: extension header type 0x%02x has invalid length", e.Type)
}

func ExtHeaderInvalidLength(typ uint8) error { return errExtHeaderInvalidLength{typ} }

func IsExtHeaderInvalidLength(err error) bool {
	_, ok := err.(errExtHeaderInvalidLength)
	return ok
}

type errMessageIncorrectMessageType struct{ Got, Want uint8 }

func (e errMessageIncorrectMessageType) Error() string {
	return fmt.Sprintf("gtpv1u: message type 0x%02x, expected 0x%02x", e.Got, e.Want)
}

func MessageIncorrectMessageType(got, want uint8) error {
	return errMessageIncorrectMessageType{got, want}
}

func IsMessageIncorrectMessageType(err error) bool {
	_, ok := err.(errMessageIncorrectMessageType)
	return ok
}

type errMessageMandatoryIEMissing struct{ Type uint8 }

func (e errMessageMandatoryIEMissing) Error() string {
	return fmt.Sprintf("gtpv1u: mandatory IE 0x%02x missing", e.Type)
}

func MessageMandatoryIEMissing(typ uint8) error { return errMessageMandatoryIEMissing{typ} }

func IsMessageMandatoryIEMissing(err error) bool {
	_, ok := err.(errMessageMandatoryIEMissing)
	return ok
}

// errIEInvalidLength is returned when an IE's declared length does not
// leave enough bytes in the slice (spec.md §4.1.2).
type errIEInvalidLength struct{ Type uint8 }

func (e errIEInvalidLength) Error() string {
	return fmt.Sprintf("gtpv1u: IE type 0x%02x invalid length", e.Type)
}

func IEInvalidLength(typ uint8) error { return errIEInvalidLength{typ} }

func IsIEInvalidLength(err error) bool {
	_, ok := err.(errIEInvalidLength)
	return ok
}

type errMessageInvalidMessageFormat struct{ Reason string }

func (e errMessageInvalidMessageFormat) Error() string {
	return "gtpv1u: invalid message format: " + e.Reason
}

func MessageInvalidMessageFormat(reason string) error {
	return errMessageInvalidMessageFormat{reason}
}

func IsMessageInvalidMessageFormat(err error) bool {
	_, ok := err.(errMessageInvalidMessageFormat)
	return ok
}
