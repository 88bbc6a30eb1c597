package auth

import (
	"errors"
	"testing"
	"time"
)

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret-key-32-bytes-long!!!", time.Hour)

	t.Run("round-trips claims", func(t *testing.T) {
		token, err := manager.Generate("user-1", "alice@example.com")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		claims, err := manager.Validate(token)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if claims.UserID != "user-1" {
			t.Errorf("UserID = %s, want user-1", claims.UserID)
		}
		if claims.Email != "alice@example.com" {
			t.Errorf("Email = %s, want alice@example.com", claims.Email)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := manager.Validate("not-a-token")
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("rejects token signed with a different secret", func(t *testing.T) {
		other := NewJWTManager("some-other-secret-entirely!!!!!!", time.Hour)
		token, err := other.Generate("user-1", "alice@example.com")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		_, err = manager.Validate(token)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate error = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret-key-32-bytes-long!!!", -time.Minute)
		token, err := expired.Generate("user-1", "alice@example.com")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		_, err = manager.Validate(token)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Validate error = %v, want ErrInvalidToken", err)
		}
	})
}
