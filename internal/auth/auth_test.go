package auth

import (
	"testing"
	"time"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "hunter22" {
		t.Error("Expected the hash to differ from the password")
	}
	if !CheckPassword("hunter22", hash) {
		t.Error("Expected the right password to verify")
	}
	if CheckPassword("wrong", hash) {
		t.Error("Expected the wrong password to fail")
	}
}

func TestSessionStore_CreateAndResolve(t *testing.T) {
	store := NewSessionStore(0)

	token := store.Create(42)
	if token == "" {
		t.Fatal("Expected a non-empty token")
	}

	userID, ok := store.UserID(token)
	if !ok || userID != 42 {
		t.Errorf("Expected user 42, got %d (ok=%v)", userID, ok)
	}

	other := store.Create(7)
	if other == token {
		t.Error("Expected distinct tokens per session")
	}
}

func TestSessionStore_UnknownToken(t *testing.T) {
	store := NewSessionStore(0)
	if _, ok := store.UserID("nope"); ok {
		t.Error("Expected unknown token to fail")
	}
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(time.Millisecond)
	token := store.Create(1)

	time.Sleep(5 * time.Millisecond)
	if _, ok := store.UserID(token); ok {
		t.Error("Expected expired token to fail")
	}
	// Expired tokens are removed, so a second lookup fails the same way.
	if _, ok := store.UserID(token); ok {
		t.Error("Expected expired token to stay invalid")
	}
}

func TestSessionStore_SlidingExpiry(t *testing.T) {
	store := NewSessionStore(50 * time.Millisecond)
	token := store.Create(1)

	// Touch the session before it expires a few times; it must stay alive
	// past the original TTL.
	for i := 0; i < 3; i++ {
		time.Sleep(30 * time.Millisecond)
		if _, ok := store.UserID(token); !ok {
			t.Fatalf("Expected session alive on touch %d", i+1)
		}
	}
}

func TestSessionStore_Destroy(t *testing.T) {
	store := NewSessionStore(0)
	token := store.Create(1)
	store.Destroy(token)
	if _, ok := store.UserID(token); ok {
		t.Error("Expected destroyed token to fail")
	}
}
