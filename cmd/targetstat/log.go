package main

import (
	"github.com/4everaerial/chainweb-node/infrastructure/logger"
)

var log = logger.RegisterSubSystem("TGST")
