package periph

import (
	"context"
	"fmt"

	"github.com/ardnew/fram/hal"
	"github.com/ardnew/fram/pkg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// Bus implements hal.Bus over a periph.io i2c bus.
type Bus struct {
	bus i2c.Bus
}

// New wraps an existing periph.io bus handle. The caller must not issue
// transactions on the handle while the returned Bus is in use.
func New(b i2c.Bus) *Bus {
	return &Bus{bus: b}
}

// Open resolves a bus by name through the periph.io registry. An empty
// name selects the first available bus. The host's periph.io drivers
// must have been initialized (periph.io/x/host/v3 host.Init) for the
// registry to be populated.
func Open(name string) (*Bus, error) {
	b, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", name, err)
	}
	pkg.LogInfo(pkg.ComponentBus, "i2c bus opened", "bus", b.String())
	return &Bus{bus: b}, nil
}

// Tx implements hal.Bus. Cancellation is checked before the transaction
// is issued; once started, the transaction runs to completion in the
// transport.
func (b *Bus) Tx(ctx context.Context, addr hal.Addr, w, r []byte) error {
	if !addr.Valid() {
		return pkg.ErrInvalidAddress
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.bus == nil {
		return pkg.ErrBusClosed
	}
	return b.bus.Tx(uint16(addr), w, r)
}

// Close releases the underlying bus when it supports closing.
func (b *Bus) Close() error {
	if b.bus == nil {
		return nil
	}
	defer func() { b.bus = nil }()
	if c, ok := b.bus.(i2c.BusCloser); ok {
		return c.Close()
	}
	return nil
}

// Compile-time interface check
var _ hal.Bus = (*Bus)(nil)
