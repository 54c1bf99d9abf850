package lru

import "math"

// pointers is one of the forward/backward link arrays. Each cell holds a
// slot number; the element width is fixed at construction.
type pointers interface {
	get(slot uint32) uint32
	set(slot, to uint32)
	bits() int
}

type pointerArray[T uint8 | uint16 | uint32] []T

func (p pointerArray[T]) get(slot uint32) uint32 { return uint32(p[slot]) }
func (p pointerArray[T]) set(slot, to uint32)    { p[slot] = T(to) }

func (p pointerArray[T]) bits() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	default:
		return 32
	}
}

// pointerBits returns the narrowest width able to address every slot of a
// cache holding capacity entries, or 0 if no supported width can.
func pointerBits(capacity int) int {
	maxIndex := uint64(capacity - 1)
	switch {
	case maxIndex <= math.MaxUint8:
		return 8
	case maxIndex <= math.MaxUint16:
		return 16
	case maxIndex <= math.MaxUint32:
		return 32
	default:
		return 0
	}
}

// newPointers allocates a zeroed link array of the given width.
func newPointers(bits, capacity int) pointers {
	switch bits {
	case 8:
		return make(pointerArray[uint8], capacity)
	case 16:
		return make(pointerArray[uint16], capacity)
	default:
		return make(pointerArray[uint32], capacity)
	}
}
