package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	adapter "github.com/IT22898920/GYM-App-sub004/internal/adapter/repository"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
	dErrors "github.com/IT22898920/GYM-App-sub004/internal/domain/errors"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/model"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/repository"
)

func setupMemberRepo(t *testing.T) (repository.MemberRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&model.Member{}, &model.Payment{}))

	return adapter.NewMemberRepository(db, zap.NewNop()), db
}

func seedMember(t *testing.T, repo repository.MemberRepository, gymID string, status entity.MemberStatus, method entity.PaymentMethod, paymentStatus entity.PaymentStatus, createdAt time.Time) *entity.Member {
	t.Helper()

	member := &entity.Member{
		ID:     uuid.NewString(),
		GymID:  gymID,
		Name:   "Member " + createdAt.Format("15:04:05.000"),
		Email:  uuid.NewString() + "@example.com",
		Phone:  "+94770000000",
		Plan:   "basic",
		Status: status,
		PaymentDetails: entity.PaymentDetails{
			Method:        method,
			PaymentStatus: paymentStatus,
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	require.NoError(t, repo.Create(context.Background(), member, nil))
	return member
}

func TestMemberRepository_Create(t *testing.T) {
	ctx := context.Background()
	gymID := uuid.NewString()

	t.Run("persists member with ledger payment in one transaction", func(t *testing.T) {
		repo, db := setupMemberRepo(t)

		now := time.Now().UTC()
		member := &entity.Member{
			ID:     uuid.NewString(),
			GymID:  gymID,
			Name:   "Jamie Fernando",
			Email:  "jamie@example.com",
			Phone:  "+94771234567",
			Plan:   "basic",
			Status: entity.MemberStatusActive,
			PaymentDetails: entity.PaymentDetails{
				Method:        entity.PaymentMethodCard,
				PaymentStatus: entity.PaymentStatusCompleted,
			},
			CreatedAt: now,
			UpdatedAt: now,
		}
		payment := &entity.Payment{
			ID:        uuid.NewString(),
			MemberID:  member.ID,
			GymID:     gymID,
			Plan:      "basic",
			Currency:  "USD",
			Method:    entity.PaymentMethodCard,
			Status:    entity.PaymentStatusCompleted,
			CreatedAt: now,
		}

		require.NoError(t, repo.Create(ctx, member, payment))

		got, err := repo.GetByID(ctx, member.ID)
		require.NoError(t, err)
		assert.Equal(t, member.Email, got.Email)
		assert.Equal(t, entity.MemberStatusActive, got.Status)
		assert.Equal(t, entity.PaymentStatusCompleted, got.PaymentDetails.PaymentStatus)

		var paymentCount int64
		require.NoError(t, db.Model(&model.Payment{}).Count(&paymentCount).Error)
		assert.Equal(t, int64(1), paymentCount)
	})

	t.Run("invalid entity rolls back nothing", func(t *testing.T) {
		repo, db := setupMemberRepo(t)

		member := &entity.Member{ID: "not-a-uuid", GymID: gymID}

		err := repo.Create(ctx, member, nil)
		assert.Error(t, err)

		var memberCount int64
		require.NoError(t, db.Model(&model.Member{}).Count(&memberCount).Error)
		assert.Zero(t, memberCount)
	})
}

func TestMemberRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupMemberRepo(t)

	t.Run("missing member", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, dErrors.ErrMemberNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "nope")
		assert.ErrorIs(t, err, dErrors.ErrMemberNotFound)
	})
}

func TestMemberRepository_ListPending(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupMemberRepo(t)
	gymID := uuid.NewString()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// Oldest first: a pending bank transfer, a rejected manual payment,
	// a rejected bank transfer, and an active card member.
	pendingBank := seedMember(t, repo, gymID,
		entity.MemberStatusInactive, entity.PaymentMethodBankTransfer, entity.PaymentStatusPending, base)
	rejectedManual := seedMember(t, repo, gymID,
		entity.MemberStatusInactive, entity.PaymentMethodManual, entity.PaymentStatusFailed, base.Add(time.Minute))
	seedMember(t, repo, gymID,
		entity.MemberStatusInactive, entity.PaymentMethodBankTransfer, entity.PaymentStatusFailed, base.Add(2*time.Minute))
	seedMember(t, repo, gymID,
		entity.MemberStatusActive, entity.PaymentMethodCard, entity.PaymentStatusCompleted, base.Add(3*time.Minute))

	// Another gym's pending member must never leak in.
	seedMember(t, repo, uuid.NewString(),
		entity.MemberStatusInactive, entity.PaymentMethodBankTransfer, entity.PaymentStatusPending, base)

	t.Run("projects pending and manual members oldest first", func(t *testing.T) {
		got, err := repo.ListPending(ctx, gymID, entity.PaginationParams{Limit: 10})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, pendingBank.ID, got[0].ID)
		assert.Equal(t, rejectedManual.ID, got[1].ID)
	})

	t.Run("pagination preserves order", func(t *testing.T) {
		first, err := repo.ListPending(ctx, gymID, entity.PaginationParams{Limit: 1})
		require.NoError(t, err)
		require.Len(t, first, 1)
		assert.Equal(t, pendingBank.ID, first[0].ID)

		second, err := repo.ListPending(ctx, gymID, entity.PaginationParams{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, second, 1)
		assert.Equal(t, rejectedManual.ID, second[0].ID)
	})
}

func TestMemberRepository_List(t *testing.T) {
	ctx := context.Background()
	repo, _ := setupMemberRepo(t)
	gymID := uuid.NewString()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	active := seedMember(t, repo, gymID,
		entity.MemberStatusActive, entity.PaymentMethodCard, entity.PaymentStatusCompleted, base)
	inactive := seedMember(t, repo, gymID,
		entity.MemberStatusInactive, entity.PaymentMethodBankTransfer, entity.PaymentStatusPending, base.Add(time.Minute))

	t.Run("all members", func(t *testing.T) {
		got, err := repo.List(ctx, gymID, "", entity.PaginationParams{Limit: 10})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("filter by status", func(t *testing.T) {
		got, err := repo.List(ctx, gymID, entity.MemberStatusActive, entity.PaginationParams{Limit: 10})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, active.ID, got[0].ID)

		got, err = repo.List(ctx, gymID, entity.MemberStatusInactive, entity.PaginationParams{Limit: 10})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, inactive.ID, got[0].ID)
	})
}

func TestMemberRepository_TransitionPaymentState(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("first transition wins, second sees no rows", func(t *testing.T) {
		repo, _ := setupMemberRepo(t)
		gymID := uuid.NewString()
		member := seedMember(t, repo, gymID,
			entity.MemberStatusInactive, entity.PaymentMethodBankTransfer, entity.PaymentStatusPending, base)

		updated, err := repo.TransitionPaymentState(ctx, member.ID,
			entity.PaymentStatusPending, entity.PaymentStatusCompleted, entity.MemberStatusActive)
		require.NoError(t, err)
		assert.True(t, updated)

		got, err := repo.GetByID(ctx, member.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.MemberStatusActive, got.Status)
		assert.Equal(t, entity.PaymentStatusCompleted, got.PaymentDetails.PaymentStatus)

		// Duplicate confirm: compare-and-swap fails, record unchanged.
		updated, err = repo.TransitionPaymentState(ctx, member.ID,
			entity.PaymentStatusPending, entity.PaymentStatusCompleted, entity.MemberStatusActive)
		require.NoError(t, err)
		assert.False(t, updated)

		got, err = repo.GetByID(ctx, member.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.MemberStatusActive, got.Status)
	})

	t.Run("reject after confirm does not downgrade", func(t *testing.T) {
		repo, _ := setupMemberRepo(t)
		gymID := uuid.NewString()
		member := seedMember(t, repo, gymID,
			entity.MemberStatusInactive, entity.PaymentMethodManual, entity.PaymentStatusPending, base)

		updated, err := repo.TransitionPaymentState(ctx, member.ID,
			entity.PaymentStatusPending, entity.PaymentStatusCompleted, entity.MemberStatusActive)
		require.NoError(t, err)
		assert.True(t, updated)

		updated, err = repo.TransitionPaymentState(ctx, member.ID,
			entity.PaymentStatusPending, entity.PaymentStatusFailed, entity.MemberStatusInactive)
		require.NoError(t, err)
		assert.False(t, updated)

		got, err := repo.GetByID(ctx, member.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.MemberStatusActive, got.Status)
		assert.Equal(t, entity.PaymentStatusCompleted, got.PaymentDetails.PaymentStatus)
	})

	t.Run("missing member reports no update", func(t *testing.T) {
		repo, _ := setupMemberRepo(t)

		updated, err := repo.TransitionPaymentState(ctx, uuid.NewString(),
			entity.PaymentStatusPending, entity.PaymentStatusCompleted, entity.MemberStatusActive)
		require.NoError(t, err)
		assert.False(t, updated)
	})
}
