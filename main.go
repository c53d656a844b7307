// bluelink inspects a BlueZ adapter over D-Bus: identity, properties
// and the addresses of every device the daemon currently knows.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"bluelink/bluez"
)

func main() {
	adapterName := flag.String("adapter", "", "adapter short name (e.g. hci0); default: first adapter on the bus")
	power := flag.Bool("power", false, "power the adapter on before reading its state")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	session, err := bluez.NewSession()
	if err != nil {
		logrus.WithError(err).Fatal("cannot open bluez session")
	}
	defer session.Close()

	ctx := context.Background()

	var adapter *bluez.Adapter
	if *adapterName != "" {
		adapter = session.Adapter(*adapterName)
	} else {
		adapter, err = session.DefaultAdapter(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("cannot find adapter")
		}
	}

	if *power {
		if err := adapter.SetPowered(ctx, true); err != nil {
			logrus.WithError(err).Fatal("cannot power adapter on")
		}
	}

	if err := report(ctx, adapter); err != nil {
		logrus.WithError(err).Fatal("cannot read adapter state")
	}
}

func report(ctx context.Context, adapter *bluez.Adapter) error {
	address, err := adapter.Address(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s) at %s\n", adapter.Name(), adapter.Path(), address)

	if addrType, err := adapter.AddressType(ctx); err == nil {
		fmt.Printf("  address type: %s\n", addrType)
	}
	alias, err := adapter.Alias(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("  alias:        %s\n", alias)

	for _, p := range []struct {
		name string
		read func(context.Context) (bool, error)
	}{
		{"powered", adapter.Powered},
		{"discoverable", adapter.Discoverable},
		{"pairable", adapter.Pairable},
		{"discovering", adapter.Discovering},
	} {
		v, err := p.read(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("  %-13s %v\n", p.name+":", v)
	}

	// Modalias is optional hardware info; skip quietly when absent.
	if modalias, err := adapter.Modalias(ctx); err == nil {
		fmt.Printf("  modalias:     %s\n", modalias)
	}

	addrs, err := adapter.DeviceAddresses(ctx)
	if err != nil {
		return err
	}
	if len(addrs) == 0 {
		fmt.Println("no known devices")
		return nil
	}
	fmt.Printf("%d known device(s):\n", len(addrs))
	for _, addr := range addrs {
		fmt.Printf("  %s\n", addr)
	}
	return nil
}
