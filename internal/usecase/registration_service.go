package usecase

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
	dErrors "github.com/IT22898920/GYM-App-sub004/internal/domain/errors"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/provider"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/repository"
	"github.com/IT22898920/GYM-App-sub004/internal/metrics"
)

// PlanFees maps membership plan names to their registration fee.
type PlanFees map[string]decimal.Decimal

// RegistrationInput is the raw, as-submitted application payload.
type RegistrationInput struct {
	Name          string
	Email         string
	Phone         string
	Plan          string
	PaymentMethod string
	CardToken     string
	Receipt       *entity.ReceiptAttachment
}

// RegistrationService validates membership applications and turns them
// into persisted members with a resolved payment state.
type RegistrationService struct {
	members  repository.MemberRepository
	receipts repository.ReceiptStore
	card     provider.CardProcessor
	fees     PlanFees
	currency string
	logger   *zap.Logger
}

// NewRegistrationService creates a new registration service.
func NewRegistrationService(
	members repository.MemberRepository,
	receipts repository.ReceiptStore,
	card provider.CardProcessor,
	fees PlanFees,
	currency string,
	logger *zap.Logger,
) *RegistrationService {
	return &RegistrationService{
		members:  members,
		receipts: receipts,
		card:     card,
		fees:     fees,
		currency: currency,
		logger:   logger,
	}
}

// Intake validates and normalizes a raw application. It has no side
// effects and writes nothing to storage; every failure is recoverable
// by the caller.
func (s *RegistrationService) Intake(input RegistrationInput) (*entity.MembershipApplication, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, dErrors.NewValidationError("name", dErrors.ReasonRequired)
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, dErrors.NewValidationError("email", dErrors.ReasonRequired)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, dErrors.NewValidationError("email", dErrors.ReasonInvalidEmail)
	}

	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		return nil, dErrors.NewValidationError("phone", dErrors.ReasonRequired)
	}

	plan := strings.TrimSpace(input.Plan)
	if plan == "" {
		return nil, dErrors.NewValidationError("plan", dErrors.ReasonRequired)
	}
	if _, ok := s.fees[plan]; !ok {
		return nil, dErrors.NewValidationError("plan", dErrors.ReasonUnknownValue)
	}

	method := entity.PaymentMethod(strings.TrimSpace(input.PaymentMethod))
	if !method.Valid() {
		// Config or client-integration bug, never a user typo: the form
		// only offers known methods. Reject loudly instead of defaulting.
		return nil, dErrors.NewUnknownPaymentMethodError(string(method))
	}

	if method.RequiresReceipt() && input.Receipt == nil {
		return nil, dErrors.NewMissingReceiptError()
	}

	return &entity.MembershipApplication{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Plan:      plan,
		Method:    method,
		CardToken: input.CardToken,
		Receipt:   input.Receipt,
	}, nil
}

// Register resolves the application's payment state and persists the
// member together with its ledger payment. The receipt write and the
// record insert form one logical transaction: a failed insert removes
// the stored receipt so no orphan survives.
func (s *RegistrationService) Register(ctx context.Context, gymID string, app *entity.MembershipApplication) (*entity.Member, error) {
	fee, ok := s.fees[app.Plan]
	if !ok {
		return nil, dErrors.NewValidationError("plan", dErrors.ReasonUnknownValue)
	}

	captured := false
	transactionID := ""
	if app.Method == entity.PaymentMethodCard {
		result, err := s.card.Capture(ctx, &provider.CaptureRequest{
			Reference: fmt.Sprintf("reg_%s_%s", gymID, app.Email),
			Amount:    fee,
			Currency:  s.currency,
			CardToken: app.CardToken,
		})
		if err != nil {
			s.logger.Error("Card capture failed",
				zap.String("gym_id", gymID),
				zap.String("email", app.Email),
				zap.Error(err))
			return nil, fmt.Errorf("card capture: %w", err)
		}
		captured = result.Captured
		transactionID = result.TransactionID
		if !captured {
			s.logger.Warn("Card declined",
				zap.String("gym_id", gymID),
				zap.String("email", app.Email),
				zap.String("failure_code", result.FailureCode))
		}
	}

	state, err := ResolveInitialState(app.Method, captured)
	if err != nil {
		// Request-fatal, never process-fatal.
		s.logger.Error("Unknown payment method reached resolver",
			zap.String("method", string(app.Method)),
			zap.Error(err))
		return nil, err
	}

	receiptPath := ""
	if app.Receipt != nil {
		receiptPath, err = s.receipts.Save(ctx, gymID, app.Receipt.Filename, app.Receipt.Content)
		if err != nil {
			return nil, fmt.Errorf("store receipt: %w", err)
		}
	}

	now := time.Now().UTC()
	member := &entity.Member{
		ID:     uuid.NewString(),
		GymID:  gymID,
		Name:   app.Name,
		Email:  app.Email,
		Phone:  app.Phone,
		Plan:   app.Plan,
		Status: state.Status,
		PaymentDetails: entity.PaymentDetails{
			Method:        app.Method,
			PaymentStatus: state.PaymentStatus,
			ReceiptPath:   receiptPath,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	payment := &entity.Payment{
		ID:            uuid.NewString(),
		MemberID:      member.ID,
		GymID:         gymID,
		Plan:          app.Plan,
		Amount:        fee,
		Currency:      s.currency,
		Method:        app.Method,
		Status:        state.PaymentStatus,
		TransactionID: transactionID,
		CreatedAt:     now,
	}

	if err := s.members.Create(ctx, member, payment); err != nil {
		if receiptPath != "" {
			if rmErr := s.receipts.Remove(ctx, receiptPath); rmErr != nil {
				s.logger.Error("Failed to remove orphaned receipt",
					zap.String("receipt_path", receiptPath),
					zap.Error(rmErr))
			}
		}
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(app.Method), string(state.PaymentStatus)).Inc()

	s.logger.Info("Member registered",
		zap.String("member_id", member.ID),
		zap.String("gym_id", gymID),
		zap.String("method", string(app.Method)),
		zap.String("status", string(state.Status)),
		zap.String("payment_status", string(state.PaymentStatus)))

	return member, nil
}
