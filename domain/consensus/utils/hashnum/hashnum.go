package hashnum

import (
	"encoding/binary"
	"math/big"
	"math/bits"

	"github.com/pkg/errors"
)

// HashNumSize is the size in bytes of the canonical HashNum encoding.
const HashNumSize = 32

// HashNumBits is the width of a HashNum in bits.
const HashNumBits = HashNumSize * 8

// HashNum is a 256-bit unsigned integer. It is the numeric interpretation
// of a proof-of-work hash digest: the digest's bytes read as a little-endian
// integer.
//
// The limbs are stored least-significant first, so num[0] holds bits 0-63
// and num[3] holds bits 192-255. Note that limb order and the little-endian
// byte encoding are two separate orderings of the same value; LeadingZeros
// counts in bit-significance order regardless of how the value is encoded.
//
// Add, Sub, Mul64 and Lsh treat overflow as a programming error and panic.
// A silently wrapped value here would corrupt a difficulty target, which in
// the worst case accepts arbitrary hashes as valid proof-of-work.
type HashNum [4]uint64

// MaxHashNum is the highest value a HashNum can hold, 2^256 - 1.
var MaxHashNum = HashNum{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}

// FromBytes interprets the given bytes as a little-endian unsigned integer.
func FromBytes(numBytes [HashNumSize]byte) HashNum {
	var num HashNum
	for i := range num {
		num[i] = binary.LittleEndian.Uint64(numBytes[i*8:])
	}
	return num
}

// FromByteSlice interprets the given byte slice as a little-endian unsigned
// integer. An error is returned if the slice is not exactly HashNumSize
// bytes long.
func FromByteSlice(numBytes []byte) (HashNum, error) {
	if len(numBytes) != HashNumSize {
		return HashNum{}, errors.Errorf("invalid hash number size. Want: %d, got: %d",
			HashNumSize, len(numBytes))
	}
	var arr [HashNumSize]byte
	copy(arr[:], numBytes)
	return FromBytes(arr), nil
}

// FromUint64 returns the HashNum representation of v.
func FromUint64(v uint64) HashNum {
	return HashNum{v, 0, 0, 0}
}

// FromBig converts a big.Int into a HashNum. An error is returned if b is
// negative or does not fit in 256 bits.
func FromBig(b *big.Int) (HashNum, error) {
	if b.Sign() < 0 {
		return HashNum{}, errors.Errorf("cannot represent negative value %s as a hash number", b)
	}
	if b.BitLen() > HashNumBits {
		return HashNum{}, errors.Errorf("value of %d bits overflows a %d-bit hash number",
			b.BitLen(), HashNumBits)
	}
	var beBytes [HashNumSize]byte
	b.FillBytes(beBytes[:])
	var numBytes [HashNumSize]byte
	for i := range numBytes {
		numBytes[i] = beBytes[HashNumSize-1-i]
	}
	return FromBytes(numBytes), nil
}

// Bytes returns the canonical encoding of num: exactly HashNumSize bytes,
// little-endian, zero-padded in the high-order bytes.
func (num HashNum) Bytes() [HashNumSize]byte {
	var numBytes [HashNumSize]byte
	for i, limb := range num {
		binary.LittleEndian.PutUint64(numBytes[i*8:], limb)
	}
	return numBytes
}

// ByteSlice returns the canonical encoding of num as a fresh slice.
func (num HashNum) ByteSlice() []byte {
	numBytes := num.Bytes()
	return numBytes[:]
}

// ToBig returns num as a big.Int.
func (num HashNum) ToBig() *big.Int {
	numBytes := num.Bytes()
	var beBytes [HashNumSize]byte
	for i := range beBytes {
		beBytes[i] = numBytes[HashNumSize-1-i]
	}
	return new(big.Int).SetBytes(beBytes[:])
}

// Uint64 returns num as a uint64. It panics if num does not fit.
func (num HashNum) Uint64() uint64 {
	if num[1] != 0 || num[2] != 0 || num[3] != 0 {
		panic(errors.Errorf("hash number %s overflows uint64", num))
	}
	return num[0]
}

// IsZero returns whether num is zero.
func (num HashNum) IsZero() bool {
	return num == HashNum{}
}

// Cmp compares num and other and returns -1, 0 or 1.
func (num HashNum) Cmp(other HashNum) int {
	for i := 3; i >= 0; i-- {
		if num[i] < other[i] {
			return -1
		}
		if num[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Add returns num+other. It panics on overflow.
func (num HashNum) Add(other HashNum) HashNum {
	var sum HashNum
	var carry uint64
	for i := range num {
		sum[i], carry = bits.Add64(num[i], other[i], carry)
	}
	if carry != 0 {
		panic(errors.Errorf("overflow adding hash numbers %s and %s", num, other))
	}
	return sum
}

// Sub returns num-other. It panics on underflow.
func (num HashNum) Sub(other HashNum) HashNum {
	var diff HashNum
	var borrow uint64
	for i := range num {
		diff[i], borrow = bits.Sub64(num[i], other[i], borrow)
	}
	if borrow != 0 {
		panic(errors.Errorf("underflow subtracting hash number %s from %s", other, num))
	}
	return diff
}

// Mul64 returns num*v. It panics on overflow.
func (num HashNum) Mul64(v uint64) HashNum {
	var product HashNum
	var carry uint64
	for i := range num {
		hi, lo := bits.Mul64(num[i], v)
		lo, carryOut := bits.Add64(lo, carry, 0)
		product[i] = lo
		carry = hi + carryOut
	}
	if carry != 0 {
		panic(errors.Errorf("overflow multiplying hash number %s by %d", num, v))
	}
	return product
}

// Div64 returns num/v using floor division. It panics if v is zero.
func (num HashNum) Div64(v uint64) HashNum {
	if v == 0 {
		panic(errors.New("division of hash number by zero"))
	}
	var quotient HashNum
	var rem uint64
	for i := 3; i >= 0; i-- {
		quotient[i], rem = bits.Div64(rem, num[i], v)
	}
	return quotient
}

// Div returns num/other using floor division. It panics if other is zero.
func (num HashNum) Div(other HashNum) HashNum {
	if other.IsZero() {
		panic(errors.New("division of hash number by zero"))
	}
	quotient := new(big.Int).Div(num.ToBig(), other.ToBig())
	result, err := FromBig(quotient)
	if err != nil {
		// A quotient can never exceed its dividend.
		panic(err)
	}
	return result
}

// Lsh returns num<<n. It panics if any set bit is shifted out.
func (num HashNum) Lsh(n uint) HashNum {
	if num.IsZero() {
		return num
	}
	if n > uint(num.LeadingZeros()) {
		panic(errors.Errorf("overflow shifting hash number %s left by %d bits", num, n))
	}
	shifted, err := FromBig(new(big.Int).Lsh(num.ToBig(), n))
	if err != nil {
		panic(err)
	}
	return shifted
}

// Rsh returns num>>n.
func (num HashNum) Rsh(n uint) HashNum {
	if n >= HashNumBits {
		return HashNum{}
	}
	shifted, err := FromBig(new(big.Int).Rsh(num.ToBig(), n))
	if err != nil {
		panic(err)
	}
	return shifted
}

// LeadingZeros returns the number of zero bits above the most significant
// set bit of num, scanning limbs from the most significant limb down. It
// returns HashNumBits when num is zero.
func (num HashNum) LeadingZeros() int {
	for i := 3; i >= 0; i-- {
		if num[i] != 0 {
			return (3-i)*64 + bits.LeadingZeros64(num[i])
		}
	}
	return HashNumBits
}

// String returns num as a hexadecimal string in natural (most significant
// digit first) order.
func (num HashNum) String() string {
	return num.ToBig().Text(16)
}
