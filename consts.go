package udiv128

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1

	// decimalChunk is the largest power of ten that fits in a uint64.
	decimalChunk       = 10000000000000000000
	decimalChunkDigits = 19
)

var (
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroU128 U128

	bigMaxUint64 = new(big.Int).SetUint64(maxUint64)
)
