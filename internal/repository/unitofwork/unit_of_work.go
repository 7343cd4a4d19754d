package unitofwork

import (
	"context"

	"course-assist-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	EscalatedQueryRepository() contract.EscalatedQueryRepository
	ChatHistoryRepository() contract.ChatHistoryRepository
}
