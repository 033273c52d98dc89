// Package bits provides bit-granularity readers and writers over files and
// in-memory buffers, following the LSB pattern, where least significant bits
// are read and written first within each byte.
package bits

import "fmt"

// MinGroupSize and MaxGroupSize bound the number of bits a single ReadBits or
// WriteBits call may transfer.
const (
	MinGroupSize = 1
	MaxGroupSize = 8
)

func checkGroupSize(numBits uint8) {
	if numBits < MinGroupSize || numBits > MaxGroupSize {
		panic(fmt.Sprintf("bits: invalid bit group size %d, must be %d-%d", numBits, MinGroupSize, MaxGroupSize))
	}
}
