package bluez

import (
	"context"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"
)

// Adapter is a proxy for one BlueZ adapter object (e.g. /org/bluez/hci0).
// It holds no remote state: every accessor is a fresh round trip, so
// repeated reads may differ if the daemon's state changed in between.
// Adapters are cheap to create and copy and need no teardown.
type Adapter struct {
	proxy
	name string
}

func newAdapter(session *Session, name string) *Adapter {
	return &Adapter{
		proxy: proxy{
			session: session,
			path:    dbus.ObjectPath(adapterPrefix + name),
			iface:   adapterInterface,
		},
		name: name,
	}
}

// Name returns the adapter short name, e.g. hci0.
func (a *Adapter) Name() string { return a.name }

// Device returns a proxy for the device with the given address under
// this adapter. Pure local construction, no I/O.
func (a *Adapter) Device(address Address) *Device {
	return newDevice(a.session, a.path, address)
}

// Address returns the adapter's public Bluetooth address.
func (a *Adapter) Address(ctx context.Context) (string, error) {
	return a.getString(ctx, "Address")
}

// AddressType returns the adapter's address type. Defaults to public for
// classic and dual-mode adapters.
func (a *Adapter) AddressType(ctx context.Context) (AddressType, error) {
	s, err := a.getString(ctx, "AddressType")
	if err != nil {
		return "", err
	}
	return ParseAddressType(s)
}

// SystemName returns the Bluetooth system name (pretty hostname).
func (a *Adapter) SystemName(ctx context.Context) (string, error) {
	return a.getString(ctx, "Name")
}

// Alias returns the adapter's friendly name. If no alias has been set it
// falls back to the system name.
func (a *Adapter) Alias(ctx context.Context) (string, error) {
	return a.getString(ctx, "Alias")
}

// SetAlias changes the friendly name. Setting the empty string resets
// the alias back to the system-provided name.
func (a *Adapter) SetAlias(ctx context.Context, alias string) error {
	return a.setProperty(ctx, "Alias", alias)
}

// Class returns the Bluetooth class-of-device bitmask.
func (a *Adapter) Class(ctx context.Context) (uint32, error) {
	return a.getUint32(ctx, "Class")
}

// Powered reports whether the adapter is switched on.
func (a *Adapter) Powered(ctx context.Context) (bool, error) {
	return a.getBool(ctx, "Powered")
}

// SetPowered switches the adapter on or off. The value is not
// persistent: it resets to false when the adapter is replugged.
func (a *Adapter) SetPowered(ctx context.Context, powered bool) error {
	return a.setProperty(ctx, "Powered", powered)
}

// Discoverable reports whether the adapter is visible to other devices.
func (a *Adapter) Discoverable(ctx context.Context) (bool, error) {
	return a.getBool(ctx, "Discoverable")
}

// SetDiscoverable makes the adapter visible or hidden. With a non-zero
// DiscoverableTimeout the daemon resets the flag to false when the timer
// expires. The daemon rejects the call while the adapter is powered off;
// that rejection surfaces as a CallError.
func (a *Adapter) SetDiscoverable(ctx context.Context, discoverable bool) error {
	return a.setProperty(ctx, "Discoverable", discoverable)
}

// Pairable reports whether the adapter accepts incoming pairing
// requests. Defaults to true.
func (a *Adapter) Pairable(ctx context.Context) (bool, error) {
	return a.getBool(ctx, "Pairable")
}

// SetPairable switches incoming pairing on or off. Only affects incoming
// requests.
func (a *Adapter) SetPairable(ctx context.Context, pairable bool) error {
	return a.setProperty(ctx, "Pairable", pairable)
}

// PairableTimeout returns the pairable timeout in seconds; zero means
// the adapter stays pairable forever (the default).
func (a *Adapter) PairableTimeout(ctx context.Context) (uint32, error) {
	return a.getUint32(ctx, "PairableTimeout")
}

func (a *Adapter) SetPairableTimeout(ctx context.Context, seconds uint32) error {
	return a.setProperty(ctx, "PairableTimeout", seconds)
}

// DiscoverableTimeout returns the discoverable timeout in seconds; zero
// means the adapter stays discoverable forever. Default is 180.
func (a *Adapter) DiscoverableTimeout(ctx context.Context) (uint32, error) {
	return a.getUint32(ctx, "DiscoverableTimeout")
}

func (a *Adapter) SetDiscoverableTimeout(ctx context.Context, seconds uint32) error {
	return a.setProperty(ctx, "DiscoverableTimeout", seconds)
}

// Discovering reports whether a device discovery procedure is active.
func (a *Adapter) Discovering(ctx context.Context) (bool, error) {
	return a.getBool(ctx, "Discovering")
}

// UUIDs returns the 128-bit service UUIDs of the available local
// services, as the daemon reports them.
func (a *Adapter) UUIDs(ctx context.Context) ([]string, error) {
	return a.getStrings(ctx, "UUIDs")
}

// ServiceUUIDs returns the local service UUIDs as parsed values. A UUID
// string from the daemon that does not parse is a ParseError.
func (a *Adapter) ServiceUUIDs(ctx context.Context) ([]uuid.UUID, error) {
	raw, err := a.UUIDs(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		u, err := uuid.Parse(s)
		if err != nil {
			return nil, &ParseError{What: "service UUID", Value: s, Err: err}
		}
		out = append(out, u)
	}
	return out, nil
}

// Modalias returns the local device ID in modalias format. Adapters
// without DMI/ACPI data do not expose the property; the daemon's
// missing-property error propagates as a CallError.
func (a *Adapter) Modalias(ctx context.Context) (Modalias, error) {
	s, err := a.getString(ctx, "Modalias")
	if err != nil {
		return Modalias{}, err
	}
	return ParseModalias(s)
}

// RemoveDevice removes the device object at the given path. The daemon
// also discards any stored pairing information for it.
func (a *Adapter) RemoveDevice(ctx context.Context, devicePath dbus.ObjectPath) error {
	return a.callErr(ctx, "RemoveDevice", devicePath)
}

// ConnectDevice connects to a device by address without prior discovery.
// It returns once the daemon reports the physical link established;
// profile discovery continues asynchronously on the daemon side. The
// result is the path of the new or existing device object.
//
// addressType qualifies the initial connection; the zero value omits it
// from the filter and lets the daemon attempt a BR/EDR connection.
func (a *Adapter) ConnectDevice(ctx context.Context, address Address, addressType AddressType) (dbus.ObjectPath, error) {
	filter := map[string]any{
		"Address": address.String(),
	}
	if addressType != "" {
		filter["AddressType"] = string(addressType)
	}
	var path dbus.ObjectPath
	if err := a.call(ctx, "ConnectDevice", filter).Store(&path); err != nil {
		return "", &CallError{Method: adapterInterface + ".ConnectDevice", Path: a.path, Err: err}
	}
	return path, nil
}

// DeviceAddresses lists the addresses of every device the daemon
// currently knows under this adapter, from one managed-objects scan.
// The scan is all-or-nothing: a matched path whose address segment does
// not parse fails the whole call. Order follows the daemon's reply and
// is not stable across calls.
func (a *Adapter) DeviceAddresses(ctx context.Context) ([]Address, error) {
	objects, err := a.session.managedObjects(ctx)
	if err != nil {
		return nil, err
	}
	prefix := string(a.path) + "/dev_"
	var addrs []Address
	for path, ifaces := range objects {
		tail, ok := strings.CutPrefix(string(path), prefix)
		if !ok {
			continue
		}
		// Same-prefixed objects that are not devices are skipped.
		if _, ok := ifaces[deviceInterface]; !ok {
			continue
		}
		addr, err := ParseAddress(strings.ReplaceAll(tail, "_", ":"))
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

// StartDiscovery starts device discovery.
func (a *Adapter) StartDiscovery(ctx context.Context) error {
	return a.callErr(ctx, "StartDiscovery")
}

// StopDiscovery stops discovery.
func (a *Adapter) StopDiscovery(ctx context.Context) error {
	return a.callErr(ctx, "StopDiscovery")
}

// SetDiscoveryFilter sets the discovery filter, e.g.
// map[string]any{"Transport": "le"}. An empty map clears it.
func (a *Adapter) SetDiscoveryFilter(ctx context.Context, filter map[string]any) error {
	return a.callErr(ctx, "SetDiscoveryFilter", filter)
}
