package difficultymanager

import (
	"github.com/4everaerial/chainweb-node/infrastructure/logger"
)

var log = logger.RegisterSubSystem("DIFF")
