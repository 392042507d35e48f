// Package difficultymanager implements epoch-based difficulty retargeting:
// computing the proof-of-work target carried by the next epoch's blocks
// from the previous target and the observed mining rate.
package difficultymanager

import (
	"math/big"

	"github.com/4everaerial/chainweb-node/dagconfig"
	"github.com/4everaerial/chainweb-node/domain/consensus/utils/difficulty"
	"github.com/4everaerial/chainweb-node/domain/consensus/utils/hashnum"
	"github.com/4everaerial/chainweb-node/util/ustime"
	"github.com/pkg/errors"
)

// maxAdjustmentBits bounds how much the target may move in a single epoch:
// difficulty may rise or fall by at most 2^maxAdjustmentBits (8x). Hash
// rate can spike abruptly as miners join or leave, and an unbounded single
// epoch would let one anomaly stall or flood the chain.
const maxAdjustmentBits = 3

const microsecondsInSecond = 1_000_000

// DifficultyManager computes block targets for one chainweb version. It
// holds no mutable state; all methods are pure functions of their inputs
// and the version parameters, and are safe for concurrent use.
type DifficultyManager struct {
	params *dagconfig.Params
}

// New returns a DifficultyManager for the given version parameters.
func New(params *dagconfig.Params) *DifficultyManager {
	return &DifficultyManager{params: params}
}

// RequiredTarget returns the target for a block whose parent has the given
// target and height. Inside an epoch the parent's target is carried
// unchanged; exactly at each epoch boundary a fresh target is computed
// from the elapsed wall-clock span of the closing epoch.
func (dm *DifficultyManager) RequiredTarget(parentTarget difficulty.Target, parentHeight uint64,
	elapsed ustime.Span) (difficulty.Target, error) {

	if dm.params.WindowWidth == 0 {
		return difficulty.Target{}, errors.Errorf("version %s has a zero difficulty window", dm.params.Name)
	}
	if (parentHeight+1)%dm.params.WindowWidth != 0 {
		return parentTarget, nil
	}
	return dm.AdjustTarget(elapsed, parentTarget)
}

// AdjustTarget computes the next epoch's target from the previous epoch's
// target and its observed elapsed time.
//
// The underlying model holds the network's hash rate constant across the
// epoch: if blocks arrived faster than the version's block rate, difficulty
// rises proportionally, and vice versa. The whole computation runs in exact
// rational arithmetic and floors exactly once, so every node produces a
// bit-identical result; binary floating point is forbidden here.
//
// A negative elapsed span means the upstream block timestamps are corrupt.
// That is an invariant violation reported as an error, never clamped away.
func (dm *DifficultyManager) AdjustTarget(elapsed ustime.Span, oldTarget difficulty.Target) (difficulty.Target, error) {
	if elapsed < 0 {
		return difficulty.Target{}, errors.Errorf(
			"negative elapsed epoch span %d microseconds indicates corrupted block timestamps", elapsed)
	}
	if dm.params.BlockRate <= 0 || dm.params.WindowWidth == 0 {
		return difficulty.Target{}, errors.Errorf(
			"version %s has invalid difficulty parameters: block rate %d, window width %d",
			dm.params.Name, dm.params.BlockRate, dm.params.WindowWidth)
	}

	prereductionBits := dm.params.TargetPrereductionBits
	maxTarget := hashnum.HashNum(difficulty.MaxTarget(prereductionBits))
	oldNum := hashnum.HashNum(oldTarget)
	if oldNum.IsZero() {
		return difficulty.Target{}, errors.New("cannot adjust a zero target")
	}
	if oldNum.Cmp(maxTarget) > 0 {
		return difficulty.Target{}, errors.Errorf(
			"target %s exceeds the version maximum %s", oldTarget, maxTarget)
	}

	candidateWord, err := dm.candidateTargetWord(elapsed, oldTarget)
	if err != nil {
		return difficulty.Target{}, err
	}

	oldWord := oldNum.ToBig()
	maxWord := maxTarget.ToBig()

	var newWord *big.Int
	switch {
	case candidateWord.Cmp(oldWord) < 0:
		// Difficulty is rising. Bound the rise to 8x per epoch. Targets
		// are strictly positive, so the bound floors at one rather than
		// letting the shift collapse a minuscule target to zero.
		boundWord := new(big.Int).Rsh(oldWord, maxAdjustmentBits)
		if boundWord.Sign() == 0 {
			boundWord.SetInt64(1)
		}
		if candidateWord.Cmp(boundWord) < 0 {
			newWord = boundWord
		} else {
			newWord = candidateWord
		}
	case candidateWord.Cmp(maxWord) > 0:
		// The version's ceiling may sit below the absolute maximum of
		// the type, so an easing candidate can overshoot it.
		newWord = maxWord
	default:
		// Difficulty is falling. Bound the fall to roughly 8x per
		// epoch, detected via the leading-zero-bit delta rather than a
		// second division. The candidate fits in 256 bits here since
		// the previous case ruled out anything above the ceiling.
		candidateNum, err := hashnum.FromBig(candidateWord)
		if err != nil {
			return difficulty.Target{}, err
		}
		if oldNum.LeadingZeros()-candidateNum.LeadingZeros() > maxAdjustmentBits {
			newWord = new(big.Int).Lsh(oldWord, maxAdjustmentBits)
		} else {
			newWord = candidateWord
		}
	}

	newNum, err := hashnum.FromBig(newWord)
	if err != nil {
		return difficulty.Target{}, err
	}
	newTarget := difficulty.Target(newNum)
	log.Tracef("Adjusted target for version %s: %s -> %s (epoch took %s)",
		dm.params.Name, oldTarget, newTarget, elapsed)
	return newTarget, nil
}

// candidateTargetWord computes the unclamped retarget candidate as an
// unbounded integer: the exact-rational new difficulty converted back to a
// target word with a single floor.
func (dm *DifficultyManager) candidateTargetWord(elapsed ustime.Span, oldTarget difficulty.Target) (*big.Int, error) {
	if elapsed == 0 {
		// An instantaneous epoch calls for an unbounded difficulty
		// rise; a zero candidate lets the rise bound take over.
		return big.NewInt(0), nil
	}

	oldDifficulty, err := difficulty.TargetToDifficultyRat(dm.params.TargetPrereductionBits, oldTarget)
	if err != nil {
		return nil, err
	}

	// avgSecondsPerBlock = (elapsedMicroseconds / windowWidth) / 1e6
	avgSecondsPerBlock := big.NewRat(elapsed.Microseconds(),
		int64(dm.params.WindowWidth)*microsecondsInSecond)

	newDifficulty := new(big.Rat).Mul(oldDifficulty, big.NewRat(dm.params.BlockRate, 1))
	newDifficulty.Quo(newDifficulty, avgSecondsPerBlock)

	return difficulty.DifficultyRatToTargetWord(dm.params.TargetPrereductionBits, newDifficulty)
}
