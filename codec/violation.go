package codec

import (
	"go.uber.org/zap"

	"github.com/wippyai/bridge/errors"
)

// fatal reports a broken codec contract. It never returns.
func fatal(err *errors.Error) {
	Logger().Error("bridge contract violated",
		zap.String("phase", string(err.Phase)),
		zap.String("kind", string(err.Kind)),
		zap.String("go_type", err.GoType),
		zap.Any("value", err.Value),
		zap.Error(err),
	)
	panic(err)
}
