package fram

import (
	"context"
	"fmt"
	"sync"

	"github.com/ardnew/fram/hal"
	"github.com/ardnew/fram/pkg"
)

// Device is a driver for an FM24V10-class serial F-RAM.
//
// A Device takes exclusive ownership of the bus handle passed to New: no
// other component may issue transactions on it while the Device exists.
// The address-select pin configuration is immutable for the Device's
// lifetime.
//
// Methods are safe for concurrent use; an internal mutex serializes
// operations so the bus only ever sees one transaction at a time.
type Device struct {
	bus  hal.Bus
	base hal.Addr

	mutex sync.Mutex
	wbuf  []byte // reusable scratch for address+payload write bursts
}

// New creates a driver for the device configured with the given
// address-select pins, taking ownership of bus.
func New(bus hal.Bus, pins Pins) *Device {
	return &Device{bus: bus, base: pins.Base()}
}

// Capacity returns the size of the storage array in bytes.
func (d *Device) Capacity() int {
	return Capacity
}

// BusError reports a failed bus transaction. It records the slave address
// and in-bank memory address of the transaction that failed and wraps the
// underlying transport error, which remains reachable through errors.Is.
type BusError struct {
	Addr hal.Addr // slave address of the failing transaction
	Mem  uint16   // in-bank start address
	Err  error    // underlying transport failure
}

// Error returns a description of the failed transaction.
func (e *BusError) Error() string {
	return fmt.Sprintf("bus transaction (slave %v, mem 0x%04X): %v", e.Addr, e.Mem, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *BusError) Unwrap() error {
	return e.Err
}

// Read fills buf with the bytes stored at [off, off+len(buf)).
//
// Transfers that straddle the bank boundary are split into two
// transactions, issued strictly in order. Each transaction sends the
// 16-bit in-bank address in a write phase and receives the chunk in the
// following read phase. The first transport failure aborts the operation
// with a *BusError; bytes already read from completed transactions remain
// in buf. An empty buf succeeds without touching the bus.
func (d *Device) Read(ctx context.Context, off uint32, buf []byte) error {
	descs, count, err := plan(d.base, off, len(buf))
	if err != nil {
		return err
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	pos := 0
	for i := 0; i < count; i++ {
		dsc := descs[i]
		mem := [memAddrBytes]byte{byte(dsc.mem >> 8), byte(dsc.mem)}

		pkg.LogDebug(pkg.ComponentDriver, "read chunk",
			"slave", dsc.addr, "mem", dsc.mem, "n", dsc.n)

		if err := d.bus.Tx(ctx, dsc.addr, mem[:], buf[pos:pos+dsc.n]); err != nil {
			return &BusError{Addr: dsc.addr, Mem: dsc.mem, Err: err}
		}
		pos += dsc.n
	}
	return nil
}

// Write stores data at [off, off+len(data)).
//
// Each bank-confined chunk is sent as a single contiguous burst: the two
// address bytes immediately followed by the chunk's payload. The first
// transport failure aborts the operation with a *BusError; chunks written
// by completed transactions stay committed, since the memory has no
// delayed write cycle. An empty data succeeds without touching the bus.
func (d *Device) Write(ctx context.Context, off uint32, data []byte) error {
	descs, count, err := plan(d.base, off, len(data))
	if err != nil {
		return err
	}

	d.mutex.Lock()
	defer d.mutex.Unlock()

	pos := 0
	for i := 0; i < count; i++ {
		dsc := descs[i]
		burst := d.scratch(memAddrBytes + dsc.n)
		burst[0] = byte(dsc.mem >> 8)
		burst[1] = byte(dsc.mem)
		copy(burst[memAddrBytes:], data[pos:pos+dsc.n])

		pkg.LogDebug(pkg.ComponentDriver, "write chunk",
			"slave", dsc.addr, "mem", dsc.mem, "n", dsc.n)

		if err := d.bus.Tx(ctx, dsc.addr, burst, nil); err != nil {
			return &BusError{Addr: dsc.addr, Mem: dsc.mem, Err: err}
		}
		pos += dsc.n
	}
	return nil
}

// ReadByte returns the byte stored at off.
func (d *Device) ReadByte(ctx context.Context, off uint32) (byte, error) {
	var b [1]byte
	if err := d.Read(ctx, off, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// WriteByte stores value at off.
func (d *Device) WriteByte(ctx context.Context, off uint32, value byte) error {
	b := [1]byte{value}
	return d.Write(ctx, off, b[:])
}

// ID is the JEDEC device identification returned by DeviceID.
type ID struct {
	Manufacturer uint16 // 12-bit JEDEC manufacturer ID
	Product      uint16 // 12-bit product ID (density and revision)
}

// String returns the identification in manufacturer:product hex notation.
func (i ID) String() string {
	return fmt.Sprintf("%03X:%03X", i.Manufacturer, i.Product)
}

// DeviceID reads the device's JEDEC identification through the reserved
// device-ID port. The write phase carries the device's own 8-bit write
// address; the read phase returns three bytes holding the 12-bit
// manufacturer ID followed by the 12-bit product ID.
func (d *Device) DeviceID(ctx context.Context) (ID, error) {
	w := [1]byte{byte(d.base) << 1}
	var raw [3]byte

	d.mutex.Lock()
	defer d.mutex.Unlock()

	if err := d.bus.Tx(ctx, DeviceIDAddr, w[:], raw[:]); err != nil {
		return ID{}, &BusError{Addr: DeviceIDAddr, Err: err}
	}

	v := uint32(raw[0])<<16 | uint32(raw[1])<<8 | uint32(raw[2])
	return ID{
		Manufacturer: uint16(v >> 12),
		Product:      uint16(v & 0xFFF),
	}, nil
}

// scratch returns a reusable buffer of n bytes. Caller holds d.mutex.
func (d *Device) scratch(n int) []byte {
	if cap(d.wbuf) < n {
		d.wbuf = make([]byte, n)
	}
	return d.wbuf[:n]
}
