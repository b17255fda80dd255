package balloons

import "github.com/charmbracelet/log"

// safeExecute runs fn and converts a panic into a logged error and the
// fallback value, so a single bad tick never stops the loop.
func safeExecute[T any](logger *log.Logger, op string, fallback T, fn func() T) (result T) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("recovered from panic", "op", op, "panic", r)
			result = fallback
		}
	}()
	return fn()
}

// safeRun is safeExecute for operations without a result.
func safeRun(logger *log.Logger, op string, fn func()) {
	safeExecute(logger, op, struct{}{}, func() struct{} {
		fn()
		return struct{}{}
	})
}
