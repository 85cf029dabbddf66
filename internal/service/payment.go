package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"warcat/internal/model"
	"warcat/internal/repository"
	"warcat/internal/storage"
)

// PaymentService records completed payment events. Records are
// append-only: one insert per event, never updated.
type PaymentService struct {
	payments repository.IPaymentRepository
	users    repository.IUserRepository
}

func NewPaymentService(payments repository.IPaymentRepository, users repository.IUserRepository) *PaymentService {
	return &PaymentService{payments: payments, users: users}
}

// Record verifies the paying user exists and appends the payment.
func (s *PaymentService) Record(ctx context.Context, req *model.PaymentRequest) (*model.Payment, error) {
	oid, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return nil, storage.ErrNotFound
	}
	if _, err := s.users.FindByEmailAndID(ctx, req.Email, oid); err != nil {
		return nil, err
	}
	return s.payments.Create(ctx, &model.Payment{
		Email:         req.Email,
		UserID:        req.UserID,
		UserPaymentID: req.UserPaymentID,
		PayFor:        req.PayFor,
	})
}
