package mem

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ardnew/fram"
	"github.com/ardnew/fram/hal"
	"github.com/ardnew/fram/pkg"
)

func TestBus_UnattachedAddressNACKs(t *testing.T) {
	bus := NewBus()
	err := bus.Tx(context.Background(), 0x50, []byte{0, 0}, nil)
	if !errors.Is(err, pkg.ErrNACK) {
		t.Errorf("Tx to empty bus error = %v, want ErrNACK", err)
	}
	if n := bus.TxCount(); n != 1 {
		t.Errorf("TxCount = %d, want 1", n)
	}
}

func TestBus_AttachConflict(t *testing.T) {
	bus := NewBus()
	chip := NewChip(fram.Pins{})

	if err := bus.Attach(0x50, chip); err != nil {
		t.Fatalf("Attach: %v", err)
	}
	if err := bus.Attach(0x50, chip); !errors.Is(err, pkg.ErrInvalidAddress) {
		t.Errorf("second Attach error = %v, want ErrInvalidAddress", err)
	}
	if err := bus.Attach(0x85, chip); !errors.Is(err, pkg.ErrInvalidAddress) {
		t.Errorf("Attach invalid address error = %v, want ErrInvalidAddress", err)
	}
}

func TestBus_Detach(t *testing.T) {
	bus := NewBus()
	chip := NewChip(fram.Pins{})
	if err := chip.Attach(bus); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	bus.Detach(chip.Base())
	err := bus.Tx(context.Background(), chip.Base(), []byte{0, 0}, nil)
	if !errors.Is(err, pkg.ErrNACK) {
		t.Errorf("Tx to detached address error = %v, want ErrNACK", err)
	}
}

func TestBus_Closed(t *testing.T) {
	bus := NewBus()
	chip := NewChip(fram.Pins{})
	if err := chip.Attach(bus); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	if err := bus.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	err := bus.Tx(context.Background(), chip.Base(), []byte{0, 0}, nil)
	if !errors.Is(err, pkg.ErrBusClosed) {
		t.Errorf("Tx after Close error = %v, want ErrBusClosed", err)
	}
}

func TestBus_FailAfter(t *testing.T) {
	bus := NewBus()
	chip := NewChip(fram.Pins{})
	if err := chip.Attach(bus); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	ctx := context.Background()
	bus.FailAfter(2, pkg.TxStatusArbitrationLost)

	if err := bus.Tx(ctx, chip.Base(), []byte{0, 0}, nil); err != nil {
		t.Fatalf("first Tx failed early: %v", err)
	}
	if err := bus.Tx(ctx, chip.Base(), []byte{0, 0}, nil); !errors.Is(err, pkg.ErrArbitrationLost) {
		t.Fatalf("second Tx error = %v, want ErrArbitrationLost", err)
	}
	if err := bus.Tx(ctx, chip.Base(), []byte{0, 0}, nil); err != nil {
		t.Errorf("third Tx failed after injection consumed: %v", err)
	}
}

func TestBus_Records(t *testing.T) {
	bus := NewBus()
	chip := NewChip(fram.Pins{})
	if err := chip.Attach(bus); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	ctx := context.Background()
	buf := make([]byte, 3)
	if err := bus.Tx(ctx, chip.Base(), []byte{0x12, 0x34}, buf); err != nil {
		t.Fatalf("Tx: %v", err)
	}

	recs := bus.Records()
	if len(recs) != 1 {
		t.Fatalf("Records() length = %d, want 1", len(recs))
	}
	if recs[0].Addr != chip.Base() || !bytes.Equal(recs[0].W, []byte{0x12, 0x34}) || recs[0].R != 3 {
		t.Errorf("record = %+v", recs[0])
	}

	bus.ClearRecords()
	if n := bus.TxCount(); n != 0 {
		t.Errorf("TxCount after ClearRecords = %d, want 0", n)
	}
}

func TestChip_LatchWrapsInsideBank(t *testing.T) {
	chip := NewChip(fram.Pins{})

	// Write four bytes starting two bytes shy of the bank end: the last
	// two wrap to the start of the same bank, never into bank 1.
	w := []byte{0xFF, 0xFE, 0xA1, 0xA2, 0xA3, 0xA4}
	if err := chip.Transact(chip.Base(), w, nil); err != nil {
		t.Fatalf("Transact: %v", err)
	}

	got := make([]byte, 2)
	chip.Peek(fram.BankSize-2, got)
	if !bytes.Equal(got, []byte{0xA1, 0xA2}) {
		t.Errorf("bytes at bank end = % x, want a1 a2", got)
	}
	chip.Peek(0, got)
	if !bytes.Equal(got, []byte{0xA3, 0xA4}) {
		t.Errorf("bytes at bank start = % x, want a3 a4", got)
	}

	// Bank 1 start untouched.
	chip.Peek(fram.BankSize, got)
	if !bytes.Equal(got, []byte{0, 0}) {
		t.Errorf("bank 1 modified: % x", got)
	}
}

func TestChip_CurrentAddressRead(t *testing.T) {
	chip := NewChip(fram.Pins{})
	chip.Poke(0x0100, []byte{0x0A, 0x0B, 0x0C})

	// Load the latch with a write phase carrying no data.
	if err := chip.Transact(chip.Base(), []byte{0x01, 0x00}, nil); err != nil {
		t.Fatalf("Transact: %v", err)
	}

	// A read phase with no write phase continues at the latch.
	buf := make([]byte, 3)
	if err := chip.Transact(chip.Base(), nil, buf); err != nil {
		t.Fatalf("Transact: %v", err)
	}
	if !bytes.Equal(buf, []byte{0x0A, 0x0B, 0x0C}) {
		t.Errorf("current-address read = % x, want 0a 0b 0c", buf)
	}
}

func TestChip_BankSelectByAddress(t *testing.T) {
	chip := NewChip(fram.Pins{})

	// Same in-bank address, different bank bit.
	if err := chip.Transact(chip.Base(), []byte{0x00, 0x10, 0xB0}, nil); err != nil {
		t.Fatalf("Transact bank 0: %v", err)
	}
	if err := chip.Transact(chip.Base()|1, []byte{0x00, 0x10, 0xB1}, nil); err != nil {
		t.Fatalf("Transact bank 1: %v", err)
	}

	got := make([]byte, 1)
	chip.Peek(0x10, got)
	if got[0] != 0xB0 {
		t.Errorf("bank 0 byte = %#02x, want 0xB0", got[0])
	}
	chip.Peek(fram.BankSize+0x10, got)
	if got[0] != 0xB1 {
		t.Errorf("bank 1 byte = %#02x, want 0xB1", got[0])
	}
}

func TestChip_TruncatedFrame(t *testing.T) {
	chip := NewChip(fram.Pins{})
	err := chip.Transact(chip.Base(), []byte{0x01}, nil)
	if !errors.Is(err, pkg.ErrProtocol) {
		t.Errorf("truncated frame error = %v, want ErrProtocol", err)
	}
}

func TestChip_DeviceIDPort(t *testing.T) {
	chip := NewChip(fram.Pins{A1: true})

	// Correct probe: the chip's own 8-bit write address.
	buf := make([]byte, 3)
	if err := chip.Transact(fram.DeviceIDAddr, []byte{byte(chip.Base()) << 1}, buf); err != nil {
		t.Fatalf("Transact: %v", err)
	}
	want := []byte{0x00, 0x44, 0x00}
	if !bytes.Equal(buf, want) {
		t.Errorf("device ID bytes = % x, want % x", buf, want)
	}

	// Probe for a different device is not acknowledged.
	err := chip.Transact(fram.DeviceIDAddr, []byte{0x50 << 1}, buf)
	if !errors.Is(err, pkg.ErrNACK) {
		t.Errorf("foreign probe error = %v, want ErrNACK", err)
	}
}

func TestChip_AttachAddresses(t *testing.T) {
	bus := NewBus()
	chip := NewChip(fram.Pins{A1: true, A2: true})
	if err := chip.Attach(bus); err != nil {
		t.Fatalf("Attach: %v", err)
	}

	ctx := context.Background()
	for _, addr := range []hal.Addr{0x56, 0x57, fram.DeviceIDAddr} {
		var err error
		if addr == fram.DeviceIDAddr {
			err = bus.Tx(ctx, addr, []byte{byte(chip.Base()) << 1}, make([]byte, 3))
		} else {
			err = bus.Tx(ctx, addr, []byte{0, 0}, nil)
		}
		if err != nil {
			t.Errorf("Tx(%v) failed: %v", addr, err)
		}
	}
}
