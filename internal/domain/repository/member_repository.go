package repository

import (
	"context"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
)

// MemberRepository is the membership record store contract.
type MemberRepository interface {
	// Create persists a new member and its ledger payment in a single
	// database transaction. Registration treats receipt write plus this
	// insert as one logical unit: on failure the caller removes the
	// stored receipt. payment may be nil.
	Create(ctx context.Context, member *entity.Member, payment *entity.Payment) error

	GetByID(ctx context.Context, id string) (*entity.Member, error)

	// List returns a gym's members ordered by created_at ascending,
	// optionally filtered by status ("" means all).
	List(ctx context.Context, gymID string, status entity.MemberStatus, p entity.PaginationParams) ([]*entity.Member, error)

	// ListPending returns members awaiting manual payment verification:
	// status inactive and (payment pending or method manual). Ordered by
	// created_at ascending; no member appears twice.
	ListPending(ctx context.Context, gymID string, p entity.PaginationParams) ([]*entity.Member, error)

	// TransitionPaymentState atomically moves payment status from one
	// value to another, updating the member status alongside. It is a
	// compare-and-swap: the update applies only when the current payment
	// status equals from, and the return value reports whether any row
	// changed. Racing transitions on the same member serialize here.
	TransitionPaymentState(ctx context.Context, id string, from, to entity.PaymentStatus, status entity.MemberStatus) (bool, error)
}
