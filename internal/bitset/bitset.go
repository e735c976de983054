// Package bitset implements an append-only, MSB-first packed sequence of bits.
package bitset

import (
	"fmt"
)

type Bitset struct {
	// The number of bits stored.
	numBits int

	// Storage for individual bits.
	bits []byte
}

func New(v ...bool) *Bitset {
	b := &Bitset{numBits: 0, bits: make([]byte, 0)}
	b.AppendBools(v...)

	return b
}

// WithCapacity returns an empty Bitset able to hold numBits without growing.
func WithCapacity(numBits int) *Bitset {
	b := New()
	b.ensureCapacity(numBits)

	return b
}

func (b *Bitset) ensureCapacity(numBits int) {
	numBits += b.numBits

	newNumBytes := numBits / 8
	if numBits%8 != 0 {
		newNumBytes++
	}

	if len(b.bits) >= newNumBytes {
		return
	}

	b.bits = append(b.bits, make([]byte, newNumBytes+2*len(b.bits))...)
}

func (b *Bitset) AppendBools(bits ...bool) {
	b.ensureCapacity(len(bits))

	for _, v := range bits {
		if v {
			b.bits[b.numBits/8] |= 0x80 >> uint(b.numBits%8)
		}

		b.numBits++
	}
}

func (b *Bitset) Len() int {
	return b.numBits
}

func (b *Bitset) At(index int) (bool, error) {
	if index < 0 || index >= b.numBits {
		return false, fmt.Errorf("index %d out of range", index)
	}

	return (b.bits[index/8] & (0x80 >> byte(index%8))) != 0, nil
}

// Count returns the number of set bits.
func (b *Bitset) Count() int {
	n := 0

	for i := 0; i < b.numBits; i++ {
		if b.bits[i/8]&(0x80>>byte(i%8)) != 0 {
			n++
		}
	}

	return n
}
