package bluez

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// CallError reports a remote call that the bus or the daemon rejected:
// unreachable daemon, unknown object/interface/property, or a mutation
// the daemon refused (e.g. setting Discoverable on a powered-off
// adapter). The underlying D-Bus error is available via Unwrap.
type CallError struct {
	Method string
	Path   dbus.ObjectPath
	Err    error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("bluez: call %s on %s: %v", e.Method, e.Path, e.Err)
}

func (e *CallError) Unwrap() error { return e.Err }

// ParseError reports a reply the daemon returned successfully but that
// could not be decoded into the expected type.
type ParseError struct {
	What  string // what was being decoded, e.g. a property name
	Value string // the offending input
	Err   error  // underlying cause, if any
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("bluez: parse %s from %q: %v", e.What, e.Value, e.Err)
	}
	return fmt.Sprintf("bluez: parse %s from %q", e.What, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }
