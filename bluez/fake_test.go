package bluez

import (
	"context"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/sirupsen/logrus"
)

// fakeObject implements dbus.BusObject against canned replies and
// records every call so tests can assert on outgoing arguments.
type fakeObject struct {
	path    dbus.ObjectPath
	props   map[string]dbus.Variant
	propErr map[string]error
	setErr  map[string]error
	replies map[string]*dbus.Call
	calls   []recordedCall
}

type recordedCall struct {
	method string
	args   []any
}

func newFakeObject(path dbus.ObjectPath) *fakeObject {
	return &fakeObject{
		path:    path,
		props:   map[string]dbus.Variant{},
		propErr: map[string]error{},
		setErr:  map[string]error{},
		replies: map[string]*dbus.Call{},
	}
}

// lastCall returns the most recent call with the given method name.
func (o *fakeObject) lastCall(method string) (recordedCall, bool) {
	for i := len(o.calls) - 1; i >= 0; i-- {
		if o.calls[i].method == method {
			return o.calls[i], true
		}
	}
	return recordedCall{}, false
}

func (o *fakeObject) Call(method string, flags dbus.Flags, args ...any) *dbus.Call {
	o.calls = append(o.calls, recordedCall{method: method, args: args})
	switch method {
	case propertiesGet:
		name := args[1].(string)
		if err, ok := o.propErr[name]; ok {
			return &dbus.Call{Err: err}
		}
		v, ok := o.props[name]
		if !ok {
			return &dbus.Call{Err: dbus.Error{Name: "org.freedesktop.DBus.Error.InvalidArgs"}}
		}
		return &dbus.Call{Body: []any{v}}
	case propertiesSet:
		name := args[1].(string)
		if err, ok := o.setErr[name]; ok {
			return &dbus.Call{Err: err}
		}
		o.props[name] = args[2].(dbus.Variant)
		return &dbus.Call{}
	}
	if call, ok := o.replies[method]; ok {
		return call
	}
	return &dbus.Call{Err: dbus.Error{Name: "org.freedesktop.DBus.Error.UnknownMethod"}}
}

func (o *fakeObject) CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...any) *dbus.Call {
	return o.Call(method, flags, args...)
}

func (o *fakeObject) Go(method string, flags dbus.Flags, ch chan *dbus.Call, args ...any) *dbus.Call {
	panic("not used")
}

func (o *fakeObject) GoWithContext(ctx context.Context, method string, flags dbus.Flags, ch chan *dbus.Call, args ...any) *dbus.Call {
	panic("not used")
}

func (o *fakeObject) AddMatchSignal(iface, member string, options ...dbus.MatchOption) *dbus.Call {
	panic("not used")
}

func (o *fakeObject) RemoveMatchSignal(iface, member string, options ...dbus.MatchOption) *dbus.Call {
	panic("not used")
}

func (o *fakeObject) GetProperty(p string) (dbus.Variant, error) {
	// full name is iface.Prop; the fakes key on the bare name
	if i := strings.LastIndexByte(p, '.'); i >= 0 {
		p = p[i+1:]
	}
	if err, ok := o.propErr[p]; ok {
		return dbus.Variant{}, err
	}
	v, ok := o.props[p]
	if !ok {
		return dbus.Variant{}, dbus.Error{Name: "org.freedesktop.DBus.Error.InvalidArgs"}
	}
	return v, nil
}

func (o *fakeObject) StoreProperty(p string, value any) error {
	panic("not used")
}

func (o *fakeObject) SetProperty(p string, v any) error {
	panic("not used")
}

func (o *fakeObject) Destination() string { return bluezDest }

func (o *fakeObject) Path() dbus.ObjectPath { return o.path }

// newFakeSession builds a Session that resolves paths to the given fake
// objects instead of a live bus connection.
func newFakeSession(objects map[dbus.ObjectPath]*fakeObject) *Session {
	s := &Session{
		timeout: time.Second,
		log:     logrus.WithField("component", "bluez"),
	}
	s.object = func(path dbus.ObjectPath) dbus.BusObject {
		if o, ok := objects[path]; ok {
			return o
		}
		return newFakeObject(path)
	}
	return s
}
