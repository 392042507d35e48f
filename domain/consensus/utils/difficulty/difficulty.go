// Package difficulty implements the proof-of-work target model: the duality
// between hash targets (the highest hash value a valid block may have) and
// hash difficulties (the expected number of hashes needed to solve a block),
// the conversions between them, and the proof validity check.
//
// All values are immutable and every function here is a pure computation,
// so everything in this package is safe for concurrent use.
package difficulty

import (
	"math/big"
	"strings"

	"github.com/4everaerial/chainweb-node/domain/consensus/utils/hashnum"
	"github.com/pkg/errors"
)

// TargetSize is the size in bytes of the serialized form of a Target or a
// Difficulty. The layout (little-endian, zero-padded) is consensus-critical:
// it is embedded verbatim in the block-header encoding.
const TargetSize = hashnum.HashNumSize

// Target is the highest hash value that solves a block. A larger target
// means easier mining. A valid target is always strictly positive and never
// exceeds the active version's maximum target.
type Target hashnum.HashNum

// Difficulty is the expected number of hashes required to solve a block.
// A valid difficulty is always strictly positive.
type Difficulty hashnum.HashNum

// MaxTarget returns the easiest target a given chainweb version permits:
// the maximum 256-bit value shifted right by the version's pre-reduction
// bit count. Pre-reduction is 0 on networks where proof-of-work is
// disabled and a small constant on real networks, so the ceiling may sit
// below the absolute maximum of the type.
func MaxTarget(prereductionBits uint) Target {
	return Target(hashnum.MaxHashNum.Rsh(prereductionBits))
}

// maxTargetWord is MaxTarget as a raw hash number.
func maxTargetWord(prereductionBits uint) hashnum.HashNum {
	return hashnum.MaxHashNum.Rsh(prereductionBits)
}

// DifficultyToTarget converts a difficulty to the corresponding target for
// the given pre-reduction bit count, using floor division. The conversion
// loses low-order precision, so it is only an approximate inverse of
// TargetToDifficulty. A zero difficulty indicates corrupted consensus data
// upstream and is returned as an error.
func DifficultyToTarget(prereductionBits uint, d Difficulty) (Target, error) {
	if hashnum.HashNum(d).IsZero() {
		return Target{}, errors.New("cannot convert a zero difficulty to a target")
	}
	return Target(maxTargetWord(prereductionBits).Div(hashnum.HashNum(d))), nil
}

// TargetToDifficulty converts a target to the corresponding difficulty for
// the given pre-reduction bit count, using floor division. A zero target
// indicates corrupted consensus data upstream and is returned as an error.
func TargetToDifficulty(prereductionBits uint, t Target) (Difficulty, error) {
	if hashnum.HashNum(t).IsZero() {
		return Difficulty{}, errors.New("cannot convert a zero target to a difficulty")
	}
	return Difficulty(maxTargetWord(prereductionBits).Div(hashnum.HashNum(t))), nil
}

// TargetToDifficultyRat converts a target to a difficulty as an exact
// rational, with no flooring. The retarget computation works in rationals
// end to end and floors exactly once, when producing the final target;
// flooring at every conversion would compound rounding error across epochs.
func TargetToDifficultyRat(prereductionBits uint, t Target) (*big.Rat, error) {
	if hashnum.HashNum(t).IsZero() {
		return nil, errors.New("cannot convert a zero target to a difficulty")
	}
	return new(big.Rat).SetFrac(maxTargetWord(prereductionBits).ToBig(), hashnum.HashNum(t).ToBig()), nil
}

// DifficultyRatToTargetWord converts an exact rational difficulty to the
// corresponding target word, flooring exactly once. The result is returned
// as a big.Int because an unclamped candidate target may exceed 256 bits;
// bounding it is the retarget algorithm's job, in its own clamp order.
func DifficultyRatToTargetWord(prereductionBits uint, d *big.Rat) (*big.Int, error) {
	if d.Sign() <= 0 {
		return nil, errors.Errorf("cannot convert non-positive difficulty %s to a target", d)
	}
	targetRat := new(big.Rat).SetInt(maxTargetWord(prereductionBits).ToBig())
	targetRat.Quo(targetRat, d)
	return new(big.Int).Quo(targetRat.Num(), targetRat.Denom()), nil
}

// CheckTarget returns whether powHash solves target t. The boundary is
// inclusive: a hash exactly equal to the target is a valid solution. This
// is the sole proof-of-work acceptance criterion.
func CheckTarget(t Target, powHash hashnum.HashNum) bool {
	return powHash.Cmp(hashnum.HashNum(t)) <= 0
}

// TargetFromByteSlice deserializes a target from its canonical 32-byte
// little-endian encoding.
func TargetFromByteSlice(targetBytes []byte) (Target, error) {
	num, err := hashnum.FromByteSlice(targetBytes)
	if err != nil {
		return Target{}, errors.Wrap(err, "failed deserializing target")
	}
	return Target(num), nil
}

// Bytes returns the canonical 32-byte little-endian encoding of t.
func (t Target) Bytes() [TargetSize]byte {
	return hashnum.HashNum(t).Bytes()
}

// ByteSlice returns the canonical encoding of t as a fresh slice.
func (t Target) ByteSlice() []byte {
	return hashnum.HashNum(t).ByteSlice()
}

// Bytes returns the canonical 32-byte little-endian encoding of d.
func (d Difficulty) Bytes() [TargetSize]byte {
	return hashnum.HashNum(d).Bytes()
}

func (t Target) String() string {
	return hashnum.HashNum(t).String()
}

func (d Difficulty) String() string {
	return hashnum.HashNum(d).String()
}

// BitString renders t as a fixed-width binary string, most significant bit
// first. Diagnostic output only, never consensus-relevant.
func (t Target) BitString() string {
	var builder strings.Builder
	builder.Grow(hashnum.HashNumBits)
	num := hashnum.HashNum(t)
	for i := 3; i >= 0; i-- {
		for bit := 63; bit >= 0; bit-- {
			if num[i]&(1<<uint(bit)) != 0 {
				builder.WriteByte('1')
			} else {
				builder.WriteByte('0')
			}
		}
	}
	return builder.String()
}
