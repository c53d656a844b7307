package bluez

// AddressType is the daemon's address type for an adapter or device.
// Dual-mode and BR/EDR-only adapters report "public"; single-mode LE
// adapters may report either value.
type AddressType string

const (
	AddressTypePublic AddressType = "public"
	AddressTypeRandom AddressType = "random"
)

// ParseAddressType rejects everything outside the daemon's closed set.
func ParseAddressType(s string) (AddressType, error) {
	switch AddressType(s) {
	case AddressTypePublic, AddressTypeRandom:
		return AddressType(s), nil
	}
	return "", &ParseError{What: "address type", Value: s}
}

func (t AddressType) String() string { return string(t) }
