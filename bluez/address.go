package bluez

import (
	"fmt"
	"strconv"
	"strings"
)

// Address is a 6-octet Bluetooth hardware address.
type Address [6]byte

// ParseAddress parses the canonical colon-separated form, e.g.
// AA:BB:CC:DD:EE:FF.
func ParseAddress(s string) (Address, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 6 {
		return Address{}, &ParseError{What: "address", Value: s}
	}
	var a Address
	for i, p := range parts {
		if len(p) != 2 {
			return Address{}, &ParseError{What: "address", Value: s}
		}
		b, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return Address{}, &ParseError{What: "address", Value: s, Err: err}
		}
		a[i] = byte(b)
	}
	return a, nil
}

func (a Address) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", a[0], a[1], a[2], a[3], a[4], a[5])
}
