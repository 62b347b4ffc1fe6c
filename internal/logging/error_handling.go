package logging

import (
	"fmt"
	"log/slog"
)

// HandleDeferredError handles errors from deferred operations
// It modifies the original error to include deferred operation failures
func HandleDeferredError(originalErr *error, deferredOp func() error, logger *slog.Logger, operation string) {
	if deferredOp == nil {
		return
	}

	if err := deferredOp(); err != nil {
		LogError(logger, "deferred operation failed", err,
			slog.String("operation", operation),
			slog.String("component", "deferred_cleanup"))

		// The original error takes precedence
		if *originalErr == nil {
			*originalErr = fmt.Errorf("%s failed: %w", operation, err)
		}
	}
}
