package fram

import (
	"github.com/ardnew/fram/hal"
	"github.com/ardnew/fram/pkg"
)

// Pins holds the states of the A1 and A2 hardware address-select pins.
// Together with the device type prefix and the bank-select bit they form
// the 7-bit slave address. Fixed at driver construction.
type Pins struct {
	A1 bool // A1 pin state (slave address bit 1)
	A2 bool // A2 pin state (slave address bit 2)
}

// Base returns the 7-bit base slave address 0b1010_A2_A1_0. The
// least-significant bit is left clear for the bank-select bit.
func (p Pins) Base() hal.Addr {
	a := hal.Addr(devTypeCode << 3)
	if p.A2 {
		a |= 1 << 2
	}
	if p.A1 {
		a |= 1 << 1
	}
	return a
}

// txDesc describes one bank-confined bus transaction: the slave address
// carrying the bank-select bit, the 16-bit in-bank start address, and the
// payload byte count. Descriptors are produced transiently by plan and
// never stored.
type txDesc struct {
	addr hal.Addr
	mem  uint16
	n    int
}

// plan computes the ordered transactions covering [off, off+n) with no
// gaps and no overlaps, each confined to a single bank. A transaction can
// never cross the bank boundary because the bus target would have to be
// re-addressed mid-transfer.
//
// The fixed-size result avoids allocation; count is the number of valid
// descriptors, at most bankCount. n == 0 yields an empty plan. Spans
// reaching outside [0, Capacity) fail with pkg.ErrOutOfRange before any
// bus activity.
func plan(base hal.Addr, off uint32, n int) (descs [bankCount]txDesc, count int, err error) {
	if n < 0 || uint64(off) >= Capacity || uint64(off)+uint64(n) > Capacity {
		return descs, 0, pkg.ErrOutOfRange
	}
	for n > 0 {
		bank := off / BankSize
		local := off % BankSize
		chunk := BankSize - int(local)
		if chunk > n {
			chunk = n
		}
		descs[count] = txDesc{
			addr: base | hal.Addr(bank),
			mem:  uint16(local),
			n:    chunk,
		}
		count++
		off += uint32(chunk)
		n -= chunk
	}
	return descs, count, nil
}
