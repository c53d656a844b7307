package bluez

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/sirupsen/logrus"
)

// DefaultCallTimeout bounds every remote call issued through a session
// built with NewSession.
const DefaultCallTimeout = 10 * time.Second

// Session owns the shared system-bus connection. It outlives all proxies
// built from it; proxies hold a non-owning reference and need no
// teardown of their own. The connection is safe for concurrent use by
// any number of proxies.
type Session struct {
	conn    *dbus.Conn
	timeout time.Duration
	log     *logrus.Entry

	// object resolves a path to a bus object; tests substitute fakes here.
	object func(path dbus.ObjectPath) dbus.BusObject
}

// NewSession connects to the system bus with the default call timeout.
func NewSession() (*Session, error) {
	return NewSessionWithTimeout(DefaultCallTimeout)
}

// NewSessionWithTimeout connects to the system bus. Every remote call
// issued through the session is bounded by the given timeout.
func NewSessionWithTimeout(timeout time.Duration) (*Session, error) {
	conn, err := dbus.ConnectSystemBus()
	if err != nil {
		return nil, fmt.Errorf("connect system bus: %w", err)
	}
	s := &Session{
		conn:    conn,
		timeout: timeout,
		log:     logrus.WithField("component", "bluez"),
	}
	s.object = func(path dbus.ObjectPath) dbus.BusObject {
		return conn.Object(bluezDest, path)
	}
	s.log.WithField("timeout", timeout).Debug("session opened")
	return s, nil
}

// Connection exposes the underlying bus connection.
func (s *Session) Connection() *dbus.Conn { return s.conn }

// Close closes the bus connection. All proxies built from the session
// become unusable.
func (s *Session) Close() error {
	s.log.Debug("session closed")
	return s.conn.Close()
}

// Adapter returns a proxy for the adapter with the given short name
// (e.g. hci0). Pure local construction, no I/O; whether the object
// exists is only learned on the first call through it.
func (s *Session) Adapter(name string) *Adapter {
	return newAdapter(s, name)
}

// DefaultAdapter returns a proxy for the first adapter on the bus.
func (s *Session) DefaultAdapter(ctx context.Context) (*Adapter, error) {
	names, err := s.AdapterNames(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no BlueZ adapter found")
	}
	return s.Adapter(names[0]), nil
}

// AdapterNames lists the short names of all adapters the daemon manages,
// sorted, from one managed-objects scan.
func (s *Session) AdapterNames(ctx context.Context) ([]string, error) {
	objects, err := s.managedObjects(ctx)
	if err != nil {
		return nil, err
	}
	var names []string
	for path, ifaces := range objects {
		if _, ok := ifaces[adapterInterface]; !ok {
			continue
		}
		name, ok := strings.CutPrefix(string(path), adapterPrefix)
		if !ok || strings.ContainsRune(name, '/') {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// managedObjects fetches the daemon's full object tree in one call:
// path -> interface name -> property map.
func (s *Session) managedObjects(ctx context.Context) (map[dbus.ObjectPath]map[string]map[string]dbus.Variant, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	var objects map[dbus.ObjectPath]map[string]map[string]dbus.Variant
	err := s.object(bluezRoot).CallWithContext(ctx, getManagedObjects, 0).Store(&objects)
	if err != nil {
		return nil, &CallError{Method: getManagedObjects, Path: bluezRoot, Err: err}
	}
	return objects, nil
}
