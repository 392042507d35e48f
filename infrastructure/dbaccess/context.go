// Package dbaccess exposes the node's local persistence operations. The
// difficulty engine itself owns no state; what is stored here are
// checkpoints of its outputs, so a restarting node can resume from the
// last epoch boundary instead of replaying header history.
package dbaccess

import (
	"github.com/4everaerial/chainweb-node/infrastructure/db/ldb"
)

// DatabaseContext carries the database handle queries run against.
type DatabaseContext struct {
	db *ldb.LevelDB
}

// New opens (creating if needed) the database at the given path and
// returns a context for accessing it.
func New(path string) (*DatabaseContext, error) {
	db, err := ldb.NewLevelDB(path)
	if err != nil {
		return nil, err
	}
	return &DatabaseContext{db: db}, nil
}

// Close closes the underlying database.
func (ctx *DatabaseContext) Close() error {
	return ctx.db.Close()
}

// IsNotFoundError checks whether an error signals a missing key.
func IsNotFoundError(err error) bool {
	return ldb.IsNotFoundError(err)
}
