package repository

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/IT22898920/GYM-App-sub004/internal/domain/entity"
	"github.com/IT22898920/GYM-App-sub004/internal/domain/model"
)

func memberEntityToModel(e *entity.Member) (*model.Member, error) {
	id, err := uuid.Parse(e.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid member id: %w", err)
	}
	gymID, err := uuid.Parse(e.GymID)
	if err != nil {
		return nil, fmt.Errorf("invalid gym id: %w", err)
	}

	m := &model.Member{
		ID:            id,
		GymID:         gymID,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		Plan:          e.Plan,
		Status:        model.MemberStatus(e.Status),
		PaymentMethod: string(e.PaymentDetails.Method),
		PaymentStatus: model.PaymentStatus(e.PaymentDetails.PaymentStatus),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}

	if e.PaymentDetails.ReceiptPath != "" {
		path := e.PaymentDetails.ReceiptPath
		m.ReceiptPath = &path
	}

	return m, nil
}

func memberModelToEntity(m *model.Member) *entity.Member {
	if m == nil {
		return nil
	}

	e := &entity.Member{
		ID:     m.ID.String(),
		GymID:  m.GymID.String(),
		Name:   m.Name,
		Email:  m.Email,
		Phone:  m.Phone,
		Plan:   m.Plan,
		Status: entity.MemberStatus(m.Status),
		PaymentDetails: entity.PaymentDetails{
			Method:        entity.PaymentMethod(m.PaymentMethod),
			PaymentStatus: entity.PaymentStatus(m.PaymentStatus),
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.ReceiptPath != nil {
		e.PaymentDetails.ReceiptPath = *m.ReceiptPath
	}

	return e
}

func memberModelsToEntities(models []model.Member) []*entity.Member {
	entities := make([]*entity.Member, len(models))
	for i := range models {
		entities[i] = memberModelToEntity(&models[i])
	}
	return entities
}

func paymentEntityToModel(e *entity.Payment) (*model.Payment, error) {
	id, err := uuid.Parse(e.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid payment id: %w", err)
	}
	memberID, err := uuid.Parse(e.MemberID)
	if err != nil {
		return nil, fmt.Errorf("invalid member id: %w", err)
	}
	gymID, err := uuid.Parse(e.GymID)
	if err != nil {
		return nil, fmt.Errorf("invalid gym id: %w", err)
	}

	p := &model.Payment{
		ID:        id,
		MemberID:  memberID,
		GymID:     gymID,
		Plan:      e.Plan,
		Amount:    e.Amount,
		Currency:  e.Currency,
		Method:    string(e.Method),
		Status:    model.PaymentStatus(e.Status),
		CreatedAt: e.CreatedAt,
	}

	if e.TransactionID != "" {
		txn := e.TransactionID
		p.TransactionID = &txn
	}

	return p, nil
}

func paymentModelToEntity(m *model.Payment) *entity.Payment {
	if m == nil {
		return nil
	}

	e := &entity.Payment{
		ID:        m.ID.String(),
		MemberID:  m.MemberID.String(),
		GymID:     m.GymID.String(),
		Plan:      m.Plan,
		Amount:    m.Amount,
		Currency:  m.Currency,
		Method:    entity.PaymentMethod(m.Method),
		Status:    entity.PaymentStatus(m.Status),
		CreatedAt: m.CreatedAt,
	}

	if m.TransactionID != nil {
		e.TransactionID = *m.TransactionID
	}

	return e
}

func gymEntityToModel(e *entity.Gym) (*model.Gym, error) {
	id, err := uuid.Parse(e.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid gym id: %w", err)
	}
	ownerID, err := uuid.Parse(e.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner id: %w", err)
	}

	return &model.Gym{
		ID:          id,
		OwnerID:     ownerID,
		Name:        e.Name,
		Address:     e.Address,
		Phone:       e.Phone,
		Email:       e.Email,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}, nil
}

func gymModelToEntity(m *model.Gym) *entity.Gym {
	if m == nil {
		return nil
	}
	return &entity.Gym{
		ID:          m.ID.String(),
		OwnerID:     m.OwnerID.String(),
		Name:        m.Name,
		Address:     m.Address,
		Phone:       m.Phone,
		Email:       m.Email,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func planEntityToModel(e *entity.WorkoutPlan) (*model.WorkoutPlan, error) {
	id, err := uuid.Parse(e.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid plan id: %w", err)
	}
	gymID, err := uuid.Parse(e.GymID)
	if err != nil {
		return nil, fmt.Errorf("invalid gym id: %w", err)
	}
	instructorID, err := uuid.Parse(e.InstructorID)
	if err != nil {
		return nil, fmt.Errorf("invalid instructor id: %w", err)
	}

	return &model.WorkoutPlan{
		ID:           id,
		GymID:        gymID,
		InstructorID: instructorID,
		Name:         e.Name,
		Description:  e.Description,
		Difficulty:   e.Difficulty,
		Schedule:     model.StringList(e.Schedule),
		Price:        e.Price,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}, nil
}

func planModelToEntity(m *model.WorkoutPlan) *entity.WorkoutPlan {
	if m == nil {
		return nil
	}
	return &entity.WorkoutPlan{
		ID:           m.ID.String(),
		GymID:        m.GymID.String(),
		InstructorID: m.InstructorID.String(),
		Name:         m.Name,
		Description:  m.Description,
		Difficulty:   m.Difficulty,
		Schedule:     []string(m.Schedule),
		Price:        m.Price,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func userEntityToModel(e *entity.User, passwordHash string) (*model.User, error) {
	id, err := uuid.Parse(e.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id: %w", err)
	}

	m := &model.User{
		ID:           id,
		Email:        e.Email,
		Name:         e.Name,
		PasswordHash: passwordHash,
		Role:         string(e.Role),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.CreatedAt,
	}

	if e.GymID != "" {
		gymID, err := uuid.Parse(e.GymID)
		if err != nil {
			return nil, fmt.Errorf("invalid gym id: %w", err)
		}
		m.GymID = &gymID
	}

	return m, nil
}

func userModelToEntity(m *model.User) *entity.User {
	if m == nil {
		return nil
	}

	e := &entity.User{
		ID:        m.ID.String(),
		Email:     m.Email,
		Name:      m.Name,
		Role:      entity.Role(m.Role),
		CreatedAt: m.CreatedAt,
	}

	if m.GymID != nil {
		e.GymID = m.GymID.String()
	}

	return e
}
