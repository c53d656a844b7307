package bluez

import (
	"fmt"
	"strconv"
	"strings"
)

// Modalias is the kernel/udev device identification record, decoded from
// a string of the form <source>:vXXXXpYYYYdZZZZ (hex fields), e.g.
// usb:v1D6Bp0246d053F.
type Modalias struct {
	Source  string // bus the ID was read from, e.g. "usb"
	Vendor  uint16
	Product uint16
	Device  uint16
}

// ParseModalias decodes the delimited modalias form.
func ParseModalias(s string) (Modalias, error) {
	colon := strings.IndexByte(s, ':')
	if colon <= 0 {
		return Modalias{}, &ParseError{What: "modalias", Value: s}
	}
	rest := s[colon+1:]
	if len(rest) != 15 || rest[0] != 'v' || rest[5] != 'p' || rest[10] != 'd' {
		return Modalias{}, &ParseError{What: "modalias", Value: s}
	}
	vendor, err := strconv.ParseUint(rest[1:5], 16, 16)
	if err != nil {
		return Modalias{}, &ParseError{What: "modalias", Value: s, Err: err}
	}
	product, err := strconv.ParseUint(rest[6:10], 16, 16)
	if err != nil {
		return Modalias{}, &ParseError{What: "modalias", Value: s, Err: err}
	}
	device, err := strconv.ParseUint(rest[11:15], 16, 16)
	if err != nil {
		return Modalias{}, &ParseError{What: "modalias", Value: s, Err: err}
	}
	return Modalias{
		Source:  s[:colon],
		Vendor:  uint16(vendor),
		Product: uint16(product),
		Device:  uint16(device),
	}, nil
}

func (m Modalias) String() string {
	return fmt.Sprintf("%s:v%04Xp%04Xd%04X", m.Source, m.Vendor, m.Product, m.Device)
}
