package bluez

import (
	"context"

	"github.com/godbus/dbus/v5"
)

// Device is a proxy for a remote device object under an adapter, keyed
// by hardware address. Same contract as Adapter: no local state, every
// read a live round trip.
type Device struct {
	proxy
	address Address
}

func newDevice(session *Session, adapterPath dbus.ObjectPath, address Address) *Device {
	return &Device{
		proxy: proxy{
			session: session,
			path:    DevicePath(adapterPath, address),
			iface:   deviceInterface,
		},
		address: address,
	}
}

// Address returns the device's hardware address.
func (d *Device) Address() Address { return d.address }

// RemoteName returns the name the remote device advertises.
func (d *Device) RemoteName(ctx context.Context) (string, error) {
	return d.getString(ctx, "Name")
}

// Alias returns the device's friendly name, falling back to the remote
// name when no alias is set.
func (d *Device) Alias(ctx context.Context) (string, error) {
	return d.getString(ctx, "Alias")
}

// SetAlias changes the friendly name. The empty string resets it to the
// remote name.
func (d *Device) SetAlias(ctx context.Context, alias string) error {
	return d.setProperty(ctx, "Alias", alias)
}

// Paired reports whether the device is paired.
func (d *Device) Paired(ctx context.Context) (bool, error) {
	return d.getBool(ctx, "Paired")
}

// Connected reports whether the device is currently connected.
func (d *Device) Connected(ctx context.Context) (bool, error) {
	return d.getBool(ctx, "Connected")
}

// Trusted reports whether the device is marked trusted.
func (d *Device) Trusted(ctx context.Context) (bool, error) {
	return d.getBool(ctx, "Trusted")
}

func (d *Device) SetTrusted(ctx context.Context, trusted bool) error {
	return d.setProperty(ctx, "Trusted", trusted)
}

// Blocked reports whether the daemon rejects the device's connections.
func (d *Device) Blocked(ctx context.Context) (bool, error) {
	return d.getBool(ctx, "Blocked")
}

func (d *Device) SetBlocked(ctx context.Context, blocked bool) error {
	return d.setProperty(ctx, "Blocked", blocked)
}

// RSSI returns the received signal strength of the device. Only present
// while the device is advertising or connected.
func (d *Device) RSSI(ctx context.Context) (int16, error) {
	return d.getInt16(ctx, "RSSI")
}

// Connect connects all connectable profiles of the device.
func (d *Device) Connect(ctx context.Context) error {
	return d.callErr(ctx, "Connect")
}

// Disconnect terminates all connections to the device.
func (d *Device) Disconnect(ctx context.Context) error {
	return d.callErr(ctx, "Disconnect")
}

// Pair pairs with the device.
func (d *Device) Pair(ctx context.Context) error {
	return d.callErr(ctx, "Pair")
}
