package mem

import (
	"context"
	"fmt"
	"sync"

	"github.com/ardnew/fram/hal"
	"github.com/ardnew/fram/pkg"
)

// Device is implemented by simulated bus devices. Transact is invoked
// with the slave address the master actually used, so one device can
// respond on several addresses (the F-RAM answers on one address per
// bank plus the device-ID port).
type Device interface {
	Transact(addr hal.Addr, w, r []byte) error
}

// TxRecord captures one transaction for test assertions.
type TxRecord struct {
	Addr hal.Addr // slave address used
	W    []byte   // copy of the write phase payload
	R    int      // read phase length
}

// Bus is an in-memory hal.Bus. The zero value is not usable; call NewBus.
type Bus struct {
	mutex   sync.Mutex
	devices map[hal.Addr]Device
	records []TxRecord
	closed  bool

	failIn     int // transactions until injected failure; 0 = disabled
	failStatus pkg.TxStatus
}

// NewBus creates an empty simulated bus.
func NewBus() *Bus {
	return &Bus{devices: make(map[hal.Addr]Device)}
}

// Attach registers dev at addr. Attaching to an occupied address fails
// with pkg.ErrInvalidAddress wrapped with context.
func (b *Bus) Attach(addr hal.Addr, dev Device) error {
	if !addr.Valid() {
		return pkg.ErrInvalidAddress
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()

	if _, ok := b.devices[addr]; ok {
		return fmt.Errorf("device already attached at %v: %w", addr, pkg.ErrInvalidAddress)
	}
	b.devices[addr] = dev

	pkg.LogDebug(pkg.ComponentSim, "device attached", "addr", addr)
	return nil
}

// Detach removes the device registered at addr, if any.
func (b *Bus) Detach(addr hal.Addr) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	delete(b.devices, addr)
}

// FailAfter arranges for the n-th subsequent transaction (1-based) to
// fail with the error of the given status instead of reaching a device.
// A new call replaces any pending injection.
func (b *Bus) FailAfter(n int, status pkg.TxStatus) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.failIn = n
	b.failStatus = status
}

// TxCount returns the number of transactions issued so far, including
// failed ones.
func (b *Bus) TxCount() int {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return len(b.records)
}

// Records returns a copy of the transaction log.
func (b *Bus) Records() []TxRecord {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	out := make([]TxRecord, len(b.records))
	copy(out, b.records)
	return out
}

// ClearRecords empties the transaction log.
func (b *Bus) ClearRecords() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.records = nil
}

// Tx implements hal.Bus. Cancellation is observed before the transaction
// starts; a transaction in progress is atomic.
func (b *Bus) Tx(ctx context.Context, addr hal.Addr, w, r []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !addr.Valid() {
		return pkg.ErrInvalidAddress
	}

	b.mutex.Lock()
	defer b.mutex.Unlock()

	if b.closed {
		return pkg.ErrBusClosed
	}

	rec := TxRecord{Addr: addr, R: len(r)}
	if len(w) > 0 {
		rec.W = make([]byte, len(w))
		copy(rec.W, w)
	}
	b.records = append(b.records, rec)

	if b.failIn > 0 {
		b.failIn--
		if b.failIn == 0 {
			pkg.LogDebug(pkg.ComponentSim, "injected failure",
				"addr", addr, "status", b.failStatus)
			return b.failStatus.Error()
		}
	}

	dev, ok := b.devices[addr]
	if !ok {
		return fmt.Errorf("no device at %v: %w", addr, pkg.ErrNACK)
	}

	pkg.LogDebug(pkg.ComponentSim, "transaction",
		"addr", addr, "w", len(w), "r", len(r))
	return dev.Transact(addr, w, r)
}

// Close implements hal.Bus. Attached devices stay registered but become
// unreachable.
func (b *Bus) Close() error {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.closed = true
	return nil
}

// Compile-time interface check
var _ hal.Bus = (*Bus)(nil)
