package hashnum

import (
	"math/big"
	"testing"
)

func TestBytesRoundTrip(t *testing.T) {
	tests := []HashNum{
		{},
		FromUint64(1),
		FromUint64(0xdeadbeef),
		{0x0123456789abcdef, 0xfedcba9876543210, 0x0f0f0f0f0f0f0f0f, 0xf0f0f0f0f0f0f0f0},
		MaxHashNum,
	}

	for i, num := range tests {
		encoded := num.Bytes()
		if len(encoded) != HashNumSize {
			t.Errorf("TestBytesRoundTrip #%d failed: encoding is %d bytes, want %d",
				i, len(encoded), HashNumSize)
		}
		decoded := FromBytes(encoded)
		if decoded != num {
			t.Errorf("TestBytesRoundTrip #%d failed: got %s want %s", i, decoded, num)
		}
	}
}

// TestEncodingEndianness checks that shifting the maximum value right by
// whole bytes zeroes exactly the high-order (trailing, in little-endian
// layout) bytes of the encoding.
func TestEncodingEndianness(t *testing.T) {
	for i := 1; i < HashNumSize; i++ {
		shifted := MaxHashNum.Rsh(uint(8 * i))
		encoded := shifted.Bytes()

		trailingZeros := 0
		for j := HashNumSize - 1; j >= 0 && encoded[j] == 0; j-- {
			trailingZeros++
		}
		if trailingZeros != i {
			t.Errorf("TestEncodingEndianness: maxValue>>%d has %d trailing zero bytes, want %d",
				8*i, trailingZeros, i)
		}
	}
}

func TestFromByteSlice(t *testing.T) {
	valid := make([]byte, HashNumSize)
	valid[0] = 0x2a
	num, err := FromByteSlice(valid)
	if err != nil {
		t.Fatalf("TestFromByteSlice: unexpected error: %+v", err)
	}
	if num != FromUint64(0x2a) {
		t.Errorf("TestFromByteSlice: got %s want 2a", num)
	}

	for _, size := range []int{0, 31, 33} {
		if _, err := FromByteSlice(make([]byte, size)); err == nil {
			t.Errorf("TestFromByteSlice: expected error for %d-byte slice", size)
		}
	}
}

func TestBigRoundTrip(t *testing.T) {
	tests := []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		new(big.Int).Lsh(big.NewInt(1), 255),
		new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)),
	}

	for i, want := range tests {
		num, err := FromBig(want)
		if err != nil {
			t.Fatalf("TestBigRoundTrip #%d failed: unexpected error: %+v", i, err)
		}
		if got := num.ToBig(); got.Cmp(want) != 0 {
			t.Errorf("TestBigRoundTrip #%d failed: got %s want %s", i, got, want)
		}
	}

	if _, err := FromBig(big.NewInt(-1)); err == nil {
		t.Errorf("TestBigRoundTrip: expected error for negative value")
	}
	tooBig := new(big.Int).Lsh(big.NewInt(1), 256)
	if _, err := FromBig(tooBig); err == nil {
		t.Errorf("TestBigRoundTrip: expected error for 257-bit value")
	}
}

func TestCmp(t *testing.T) {
	tests := []struct {
		a, b     HashNum
		expected int
	}{
		{HashNum{}, HashNum{}, 0},
		{FromUint64(1), HashNum{}, 1},
		{HashNum{}, FromUint64(1), -1},
		{HashNum{0, 0, 0, 1}, MaxHashNum, -1},
		{MaxHashNum, MaxHashNum, 0},
		// Equal low limbs, differing high limb.
		{HashNum{5, 0, 1, 0}, HashNum{5, 0, 2, 0}, -1},
	}

	for i, test := range tests {
		if got := test.a.Cmp(test.b); got != test.expected {
			t.Errorf("TestCmp #%d failed: got %d want %d", i, got, test.expected)
		}
	}
}

func TestCheckedArithmetic(t *testing.T) {
	sum := FromUint64(^uint64(0)).Add(FromUint64(1))
	if sum != (HashNum{0, 1, 0, 0}) {
		t.Errorf("TestCheckedArithmetic: carry propagation failed, got %s", sum)
	}

	diff := (HashNum{0, 1, 0, 0}).Sub(FromUint64(1))
	if diff != FromUint64(^uint64(0)) {
		t.Errorf("TestCheckedArithmetic: borrow propagation failed, got %s", diff)
	}

	product := FromUint64(1 << 60).Mul64(1 << 10)
	if product != (HashNum{0, 1 << 6, 0, 0}) {
		t.Errorf("TestCheckedArithmetic: multiplication carry failed, got %s", product)
	}

	expectPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("TestCheckedArithmetic: %s did not panic", name)
			}
		}()
		f()
	}
	expectPanic("overflowing Add", func() { MaxHashNum.Add(FromUint64(1)) })
	expectPanic("underflowing Sub", func() { HashNum{}.Sub(FromUint64(1)) })
	expectPanic("overflowing Mul64", func() { MaxHashNum.Mul64(2) })
	expectPanic("overflowing Lsh", func() { MaxHashNum.Lsh(1) })
	expectPanic("zero Div64", func() { MaxHashNum.Div64(0) })
	expectPanic("zero Div", func() { MaxHashNum.Div(HashNum{}) })
}

func TestDiv(t *testing.T) {
	tests := []struct {
		dividend, divisor, expected HashNum
	}{
		{FromUint64(100), FromUint64(10), FromUint64(10)},
		{FromUint64(101), FromUint64(10), FromUint64(10)},
		{MaxHashNum, MaxHashNum, FromUint64(1)},
		{MaxHashNum, FromUint64(1), MaxHashNum},
		{FromUint64(1), FromUint64(2), HashNum{}},
	}

	for i, test := range tests {
		if got := test.dividend.Div(test.divisor); got != test.expected {
			t.Errorf("TestDiv #%d failed: got %s want %s", i, got, test.expected)
		}
		if got := test.dividend.Div64(test.divisor[0]); test.divisor[1] == 0 && got != test.expected {
			t.Errorf("TestDiv #%d failed: Div64 got %s want %s", i, got, test.expected)
		}
	}
}

func TestShifts(t *testing.T) {
	one := FromUint64(1)
	for _, n := range []uint{0, 1, 63, 64, 127, 255} {
		shifted := one.Lsh(n)
		if shifted.LeadingZeros() != HashNumBits-1-int(n) {
			t.Errorf("TestShifts: 1<<%d has %d leading zeros, want %d",
				n, shifted.LeadingZeros(), HashNumBits-1-int(n))
		}
		if back := shifted.Rsh(n); back != one {
			t.Errorf("TestShifts: (1<<%d)>>%d = %s, want 1", n, n, back)
		}
	}

	if got := MaxHashNum.Rsh(256); !got.IsZero() {
		t.Errorf("TestShifts: maxValue>>256 = %s, want 0", got)
	}
	if got := (HashNum{}).Lsh(1000); !got.IsZero() {
		t.Errorf("TestShifts: 0<<1000 = %s, want 0", got)
	}
}

func TestLeadingZeros(t *testing.T) {
	tests := []struct {
		num      HashNum
		expected int
	}{
		{HashNum{}, 256},
		{FromUint64(1), 255},
		{MaxHashNum, 0},
		{HashNum{0, 0, 0, 1}, 63},
		{HashNum{0, 1, 0, 0}, 191},
	}

	for i, test := range tests {
		if got := test.num.LeadingZeros(); got != test.expected {
			t.Errorf("TestLeadingZeros #%d failed: got %d want %d", i, got, test.expected)
		}
	}
}
