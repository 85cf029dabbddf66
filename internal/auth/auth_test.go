package auth

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"warcat/internal/model"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("hash equals plaintext")
	}
	if !CheckPassword(hash, "s3cret") {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatalf("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)
	u := &model.User{
		ID:       primitive.NewObjectID(),
		Email:    "a@example.com",
		Name:     "A",
		RoleType: "secretary",
	}
	raw, err := tm.Generate(u)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	c, err := tm.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.UserID != u.ID.Hex() || c.Email != u.Email || c.Name != u.Name || c.RoleType != u.RoleType {
		t.Fatalf("claims mismatch: %+v", c)
	}
}

func TestTokenWrongSecretAndExpiry(t *testing.T) {
	u := &model.User{ID: primitive.NewObjectID(), Email: "a@example.com", RoleType: "secretary"}

	raw, err := NewTokenManager("secret-one", time.Hour).Generate(u)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := NewTokenManager("secret-two", time.Hour).Parse(raw); err == nil {
		t.Fatalf("token accepted with wrong secret")
	}

	expired, err := NewTokenManager("secret", -time.Minute).Generate(u)
	if err != nil {
		t.Fatalf("generate expired: %v", err)
	}
	if _, err := NewTokenManager("secret", -time.Minute).Parse(expired); err == nil {
		t.Fatalf("expired token accepted")
	}
}
