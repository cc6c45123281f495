package uowmock

import (
	"context"
	"errors"

	"fundraising-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in WithinTxFn, or set Repos and fn runs against them directly
// (the common case: a "transaction" that just executes the callback).
type UoW struct {
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
	Repos      uow.Repos
}

func New() *UoW { return &UoW{} }

// WithRepos makes WithinTx execute the callback against the given repos.
func (m *UoW) WithRepos(r uow.Repos) *UoW {
	m.Repos = r
	m.WithinTxFn = func(ctx context.Context, fn func(r uow.Repos) error) error {
		return fn(m.Repos)
	}
	return m
}

func (m *UoW) Reset() { *m = UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
