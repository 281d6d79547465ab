package solver

import (
	"iter"
	"math/bits"
)

// candidates is a bitset over the digits 1..9: bit d-1 set means
// digit d is still possible for a cell.
type candidates uint16

const allCandidates candidates = 0x1FF

func newCandidates() candidates { return allCandidates }

func (c candidates) count() int { return bits.OnesCount16(uint16(c)) }

func (c candidates) contains(d uint8) bool { return c&(1<<(d-1)) != 0 }

// remove returns a copy with digit d cleared. Removing an absent
// digit is a no-op.
func (c candidates) remove(d uint8) candidates { return c &^ (1 << (d - 1)) }

// values iterates the remaining digits in ascending order. The
// sequence is restartable; it snapshots the set it was built from.
func (c candidates) values() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for d := uint8(1); d <= 9; d++ {
			if c.contains(d) && !yield(d) {
				return
			}
		}
	}
}

// single returns the sole remaining digit, or 0 when the cell is not
// down to exactly one candidate.
func (c candidates) single() uint8 {
	if c.count() != 1 {
		return 0
	}
	return uint8(bits.TrailingZeros16(uint16(c))) + 1
}
