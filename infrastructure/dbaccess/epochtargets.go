package dbaccess

import (
	"encoding/binary"

	"github.com/4everaerial/chainweb-node/domain/consensus/utils/difficulty"
	"github.com/pkg/errors"
)

var epochTargetKeyPrefix = []byte("epoch-target")

// epochTargetKey lays the key out as prefix | chainID (4 bytes BE) |
// epochIndex (8 bytes BE), so per-chain records sort by epoch.
func epochTargetKey(chainID uint32, epochIndex uint64) []byte {
	key := make([]byte, len(epochTargetKeyPrefix)+4+8)
	copy(key, epochTargetKeyPrefix)
	binary.BigEndian.PutUint32(key[len(epochTargetKeyPrefix):], chainID)
	binary.BigEndian.PutUint64(key[len(epochTargetKeyPrefix)+4:], epochIndex)
	return key
}

// StoreEpochTarget records the target produced at the given chain's epoch
// boundary. Values use the canonical 32-byte little-endian target encoding.
func (ctx *DatabaseContext) StoreEpochTarget(chainID uint32, epochIndex uint64,
	target difficulty.Target) error {

	err := ctx.db.Put(epochTargetKey(chainID, epochIndex), target.ByteSlice())
	return errors.Wrapf(err, "failed storing target for chain %d epoch %d", chainID, epochIndex)
}

// FetchEpochTarget retrieves the target recorded for the given chain's
// epoch. Returns an error for which IsNotFoundError is true when no record
// exists.
func (ctx *DatabaseContext) FetchEpochTarget(chainID uint32, epochIndex uint64) (difficulty.Target, error) {
	targetBytes, err := ctx.db.Get(epochTargetKey(chainID, epochIndex))
	if err != nil {
		return difficulty.Target{}, err
	}
	target, err := difficulty.TargetFromByteSlice(targetBytes)
	if err != nil {
		return difficulty.Target{}, errors.Wrapf(err,
			"corrupt target record for chain %d epoch %d", chainID, epochIndex)
	}
	return target, nil
}

// HasEpochTarget returns whether a target is recorded for the given
// chain's epoch.
func (ctx *DatabaseContext) HasEpochTarget(chainID uint32, epochIndex uint64) (bool, error) {
	return ctx.db.Has(epochTargetKey(chainID, epochIndex))
}
