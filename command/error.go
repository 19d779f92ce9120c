package command

import (
	"errors"
	"fmt"
)

const (
	// UnKnownCommandStr is the command not find
	UnKnownCommandStr = "unknown command '%s'"
	// WrongArgs is for wrong number of arguments error
	WrongArgs = "ERR wrong number of arguments for '%s' command"
)

var (
	// ErrNoKey a required key argument is missing or empty
	ErrNoKey = errors.New("ERR key must not be empty")

	// ErrNoMembers a variadic member command was called with no members
	ErrNoMembers = errors.New("ERR at least one member is required")

	// ErrNoKeys a multi-key command was called with no keys
	ErrNoKeys = errors.New("ERR at least one key is required")

	// ErrValueType a member value cannot be converted to its string form
	ErrValueType = errors.New("ERR unsupported argument value type")

	// ErrGeoTriplets GEOADD entries must be (longitude, latitude, member) triplets
	ErrGeoTriplets = errors.New("ERR GEOADD requires longitude, latitude, member triplets")

	// ErrSearchFrom exactly one of member-form and coordinate-form FROM is required
	ErrSearchFrom = errors.New("ERR exactly one of FROMMEMBER and FROMLONLAT must be set")

	// ErrSearchBy exactly one of radius-form and box-form BY is required
	ErrSearchBy = errors.New("ERR exactly one of BYRADIUS and BYBOX must be set")

	// ErrNoUnit a geo search requires a distance unit
	ErrNoUnit = errors.New("ERR distance unit is required")

	// ErrDecodeMismatch reply shape does not match the command's schema
	ErrDecodeMismatch = errors.New("ERR reply shape mismatch")

	// ErrSyntax syntax error
	ErrSyntax = errors.New("ERR syntax error")
)

//ErrUnKnownCommand return the unknown command error of cmd
func ErrUnKnownCommand(cmd string) error {
	return fmt.Errorf(UnKnownCommandStr, cmd)
}

// ErrWrongArgs return the wrong arity error of cmd
func ErrWrongArgs(cmd string) error {
	return fmt.Errorf(WrongArgs, cmd)
}
