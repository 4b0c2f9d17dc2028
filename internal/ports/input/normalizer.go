package input

import (
	"context"

	"arbfix/internal/domain/entities"
)

type NormalizerUseCase interface {
	// Normalize rewrites every path in order and stops at the first failure.
	Normalize(ctx context.Context, paths []string) ([]entities.Result, error)
	// Check reports which paths would change without writing anything.
	Check(ctx context.Context, paths []string) ([]entities.Result, error)
}
