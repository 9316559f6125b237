// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/undup/internal/core/domain"
)

// ActionExecutor consumes an ordered match plan. The matching engine never
// mutates the filesystem itself; executors either render the plan (dry run)
// or replace each duplicate with a symlink.
//
// Implementations report per-match failures and keep going rather than
// aborting the batch. Matches are re-appliable: replacing an already
// replaced duplicate is a no-op, not an error.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type ActionExecutor interface {
	// Execute processes every match in order.
	Execute(ctx context.Context, matches []domain.MatchingFile) error
}
