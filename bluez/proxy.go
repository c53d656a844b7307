package bluez

import (
	"context"

	"github.com/godbus/dbus/v5"
)

// proxy is the shared core of Adapter and Device: a session reference,
// a remote object path and the interface every call targets. It carries
// no mutable state, so handles embedding it are safe to copy and use
// concurrently.
type proxy struct {
	session *Session
	path    dbus.ObjectPath
	iface   string
}

// Path returns the remote object path, e.g. /org/bluez/hci0.
func (p proxy) Path() dbus.ObjectPath { return p.path }

// Session returns the session this proxy was created from.
func (p proxy) Session() *Session { return p.session }

func (p proxy) object() dbus.BusObject { return p.session.object(p.path) }

// call invokes a method on the proxy's interface, bounded by the
// session's fixed call timeout.
func (p proxy) call(ctx context.Context, method string, args ...any) *dbus.Call {
	ctx, cancel := context.WithTimeout(ctx, p.session.timeout)
	defer cancel()
	return p.object().CallWithContext(ctx, p.iface+"."+method, 0, args...)
}

func (p proxy) callErr(ctx context.Context, method string, args ...any) error {
	if err := p.call(ctx, method, args...).Err; err != nil {
		return &CallError{Method: p.iface + "." + method, Path: p.path, Err: err}
	}
	return nil
}

// getProperty issues org.freedesktop.DBus.Properties.Get for one named
// property on the proxy's interface.
func (p proxy) getProperty(ctx context.Context, name string) (dbus.Variant, error) {
	ctx, cancel := context.WithTimeout(ctx, p.session.timeout)
	defer cancel()
	var v dbus.Variant
	err := p.object().CallWithContext(ctx, propertiesGet, 0, p.iface, name).Store(&v)
	if err != nil {
		return dbus.Variant{}, &CallError{Method: p.iface + "." + name, Path: p.path, Err: err}
	}
	return v, nil
}

// setProperty issues org.freedesktop.DBus.Properties.Set. A rejection by
// the daemon surfaces unchanged as a CallError.
func (p proxy) setProperty(ctx context.Context, name string, value any) error {
	ctx, cancel := context.WithTimeout(ctx, p.session.timeout)
	defer cancel()
	err := p.object().CallWithContext(ctx, propertiesSet, 0, p.iface, name, dbus.MakeVariant(value)).Err
	if err != nil {
		return &CallError{Method: p.iface + "." + name, Path: p.path, Err: err}
	}
	return nil
}

func (p proxy) getString(ctx context.Context, name string) (string, error) {
	v, err := p.getProperty(ctx, name)
	if err != nil {
		return "", err
	}
	s, ok := v.Value().(string)
	if !ok {
		return "", &ParseError{What: name, Value: v.String()}
	}
	return s, nil
}

func (p proxy) getBool(ctx context.Context, name string) (bool, error) {
	v, err := p.getProperty(ctx, name)
	if err != nil {
		return false, err
	}
	b, ok := v.Value().(bool)
	if !ok {
		return false, &ParseError{What: name, Value: v.String()}
	}
	return b, nil
}

func (p proxy) getUint32(ctx context.Context, name string) (uint32, error) {
	v, err := p.getProperty(ctx, name)
	if err != nil {
		return 0, err
	}
	u, ok := v.Value().(uint32)
	if !ok {
		return 0, &ParseError{What: name, Value: v.String()}
	}
	return u, nil
}

func (p proxy) getInt16(ctx context.Context, name string) (int16, error) {
	v, err := p.getProperty(ctx, name)
	if err != nil {
		return 0, err
	}
	i, ok := v.Value().(int16)
	if !ok {
		return 0, &ParseError{What: name, Value: v.String()}
	}
	return i, nil
}

func (p proxy) getStrings(ctx context.Context, name string) ([]string, error) {
	v, err := p.getProperty(ctx, name)
	if err != nil {
		return nil, err
	}
	ss, ok := v.Value().([]string)
	if !ok {
		return nil, &ParseError{What: name, Value: v.String()}
	}
	return ss, nil
}
