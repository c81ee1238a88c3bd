package log

import "go.uber.org/zap"

const zapDebug = zap.DebugLevel
