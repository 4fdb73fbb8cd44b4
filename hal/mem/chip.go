package mem

import (
	"sync"

	"github.com/ardnew/fram"
	"github.com/ardnew/fram/hal"
	"github.com/ardnew/fram/pkg"
)

// DefaultDeviceID is the 24-bit JEDEC identification the simulated chip
// reports unless overridden: manufacturer 0x004, product 0x400.
const DefaultDeviceID uint32 = 0x004400

// Chip models an FM24V10-class F-RAM attached to a simulated bus.
//
// The model implements the device's externally observable behavior: a
// 131,072-byte array split into two banks selected by the slave-address
// LSB, a 16-bit big-endian address latch, sequential access that wraps
// inside the addressed bank, writes committed the moment the transaction
// completes, and the reserved device-ID port.
type Chip struct {
	mutex sync.Mutex
	array [fram.Capacity]byte
	base  hal.Addr
	latch uint16
	id    uint32
}

// NewChip creates a chip configured with the given address-select pins.
func NewChip(pins fram.Pins) *Chip {
	return &Chip{base: pins.Base(), id: DefaultDeviceID}
}

// Base returns the chip's 7-bit base slave address (bank bit clear).
func (c *Chip) Base() hal.Addr {
	return c.base
}

// SetDeviceID overrides the 24-bit identification reported on the
// device-ID port.
func (c *Chip) SetDeviceID(id uint32) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.id = id & 0xFFFFFF
}

// Attach registers the chip on bus at both of its bank addresses and at
// the device-ID port. Only one chip per bus can claim the device-ID
// port; on a real bus every device answers it, which a single-device
// simulation does not need to model.
func (c *Chip) Attach(b *Bus) error {
	for _, addr := range []hal.Addr{c.base, c.base | 1, fram.DeviceIDAddr} {
		if err := b.Attach(addr, c); err != nil {
			return err
		}
	}
	return nil
}

// Transact implements Device.
func (c *Chip) Transact(addr hal.Addr, w, r []byte) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if addr == fram.DeviceIDAddr {
		return c.deviceID(w, r)
	}

	bank := uint32(addr&1) * fram.BankSize

	if len(w) > 0 {
		// The first two bytes of any write phase load the address
		// latch, MSB first. A lone address byte is a truncated frame.
		if len(w) < 2 {
			return pkg.ErrProtocol
		}
		c.latch = uint16(w[0])<<8 | uint16(w[1])
		for _, v := range w[2:] {
			c.array[bank+uint32(c.latch)] = v
			c.latch++ // wraps inside the bank at 0xFFFF
		}
	}

	for i := range r {
		r[i] = c.array[bank+uint32(c.latch)]
		c.latch++
	}
	return nil
}

// deviceID answers the reserved port. The write phase must carry the
// chip's own 8-bit write address; anything else is not acknowledged.
func (c *Chip) deviceID(w, r []byte) error {
	if len(w) != 1 || w[0] != byte(c.base)<<1 {
		return pkg.ErrNACK
	}
	id := [3]byte{byte(c.id >> 16), byte(c.id >> 8), byte(c.id)}
	copy(r, id[:])
	return nil
}

// Peek copies the array contents at [off, off+len(p)) into p without bus
// activity. Test helper.
func (c *Chip) Peek(off uint32, p []byte) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	copy(p, c.array[off:])
}

// Poke seeds the array contents at [off, off+len(p)) from p without bus
// activity. Test helper.
func (c *Chip) Poke(off uint32, p []byte) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	copy(c.array[off:], p)
}

// Compile-time interface check
var _ Device = (*Chip)(nil)
