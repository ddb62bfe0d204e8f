package random

import (
	"crypto/rand"
	"encoding/binary"
)

// Source yields uniformly distributed floats in [0, 1).
// *math/rand/v2.Rand satisfies it.
type Source interface {
	Float64() float64
}

// CryptoSource draws from crypto/rand, so draws cannot be predicted from earlier ones.
type CryptoSource struct{}

func (CryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand.Read never fails on supported platforms
		panic("random: crypto source unavailable: " + err.Error())
	}
	// 53 старших бит дают равномерное распределение в [0, 1)
	return float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53)
}
