// Package bluez provides typed client proxies for the BlueZ daemon's
// D-Bus API (Linux only). A Session owns the shared bus connection;
// Adapter and Device are cheap per-object handles built on top of it.
// Nothing is cached locally: every property read is a live round trip
// to the daemon.
package bluez

import (
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	bluezDest     = "org.bluez"
	bluezRoot     = dbus.ObjectPath("/")
	adapterPrefix = "/org/bluez/"

	adapterInterface = "org.bluez.Adapter1"
	deviceInterface  = "org.bluez.Device1"

	propertiesGet     = "org.freedesktop.DBus.Properties.Get"
	propertiesSet     = "org.freedesktop.DBus.Properties.Set"
	getManagedObjects = "org.freedesktop.DBus.ObjectManager.GetManagedObjects"
)

// DevicePath converts an address to a device object path under an adapter
// (e.g. AA:BB:CC:DD:EE:FF -> <adapter>/dev_AA_BB_CC_DD_EE_FF).
func DevicePath(adapterPath dbus.ObjectPath, addr Address) dbus.ObjectPath {
	return dbus.ObjectPath(string(adapterPath) + "/dev_" + strings.ReplaceAll(addr.String(), ":", "_"))
}

// AddressFromPath extracts the address from a device path dev_AA_BB_CC_DD_EE_FF -> AA:BB:CC:DD:EE:FF.
func AddressFromPath(path dbus.ObjectPath) (Address, error) {
	s := string(path)
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		s = s[i+1:]
	}
	tail, ok := strings.CutPrefix(s, "dev_")
	if !ok {
		return Address{}, &ParseError{What: "device path", Value: string(path)}
	}
	return ParseAddress(strings.ReplaceAll(tail, "_", ":"))
}
