package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"warcat/internal/model"
	"warcat/internal/storage"
	"warcat/internal/testutil"
)

func newPaymentFixture() (*PaymentService, *testutil.UserRepo, *testutil.PaymentRepo) {
	users := &testutil.UserRepo{}
	payments := &testutil.PaymentRepo{}
	return NewPaymentService(payments, users), users, payments
}

func TestRecordPayment_AppendsRecord(t *testing.T) {
	svc, users, payments := newPaymentFixture()
	ctx := context.Background()

	u := addUser(users, "payer@example.com", "secretary", "D1")

	p, err := svc.Record(ctx, &model.PaymentRequest{
		Email:         "payer@example.com",
		UserPaymentID: "pay_abc123",
		UserID:        u.ID.Hex(),
		PayFor:        "maintenance",
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(payments.Payments) != 1 {
		t.Fatalf("expected one appended payment, got %d", len(payments.Payments))
	}
	if p.UserPaymentID != "pay_abc123" || p.PayFor != "maintenance" || p.CreatedAt.IsZero() {
		t.Fatalf("unexpected payment record: %+v", p)
	}
}

func TestRecordPayment_UnknownUser(t *testing.T) {
	svc, users, payments := newPaymentFixture()
	ctx := context.Background()

	u := addUser(users, "payer@example.com", "secretary", "D1")

	// right id, wrong email
	if _, err := svc.Record(ctx, &model.PaymentRequest{
		Email: "other@example.com", UserPaymentID: "p", UserID: u.ID.Hex(), PayFor: "maintenance",
	}); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// right email, wrong id
	if _, err := svc.Record(ctx, &model.PaymentRequest{
		Email: "payer@example.com", UserPaymentID: "p", UserID: primitive.NewObjectID().Hex(), PayFor: "maintenance",
	}); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// malformed id
	if _, err := svc.Record(ctx, &model.PaymentRequest{
		Email: "payer@example.com", UserPaymentID: "p", UserID: "garbage", PayFor: "maintenance",
	}); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(payments.Payments) != 0 {
		t.Fatalf("failed lookups must not append payments, got %d", len(payments.Payments))
	}
}
