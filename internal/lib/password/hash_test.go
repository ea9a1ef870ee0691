package password

import (
	"strings"
	"testing"
)

func TestGetHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{
			name:     "simple password",
			password: "secret123",
		},
		{
			name:     "long password",
			password: strings.Repeat("a", 70),
		},
		{
			name:     "password with special characters",
			password: "p@$$w0rd!#%",
		},
		{
			name:     "cyrillic password",
			password: "пароль123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := GetHash(tt.password)
			if err != nil {
				t.Fatalf("GetHash() error = %v", err)
			}
			if hash == "" {
				t.Error("GetHash() returned empty hash")
			}
			if hash == tt.password {
				t.Error("GetHash() returned password in plain text")
			}
			if err := CompareHash(hash, tt.password); err != nil {
				t.Errorf("CompareHash() failed for freshly generated hash: %v", err)
			}
		})
	}
}

func TestCompareHash(t *testing.T) {
	correctHash, err := GetHash("secret123")
	if err != nil {
		t.Fatalf("GetHash() error = %v", err)
	}
	anotherHash, err := GetHash("another-password")
	if err != nil {
		t.Fatalf("GetHash() error = %v", err)
	}

	tests := []struct {
		name      string
		hash      string
		password  string
		wantError bool
	}{
		{
			name:      "correct password",
			hash:      correctHash,
			password:  "secret123",
			wantError: false,
		},
		{
			name:      "wrong password",
			hash:      correctHash,
			password:  "wrong-password",
			wantError: true,
		},
		{
			name:      "hash of another password",
			hash:      anotherHash,
			password:  "secret123",
			wantError: true,
		},
		{
			name:      "empty password",
			hash:      correctHash,
			password:  "",
			wantError: true,
		},
		{
			name:      "not a bcrypt hash",
			hash:      "plain-text-not-a-hash",
			password:  "secret123",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHash(tt.hash, tt.password)
			if tt.wantError && err == nil {
				t.Error("CompareHash() expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("CompareHash() unexpected error: %v", err)
			}
		})
	}
}

func TestGetHash_DifferentPasswordsProduceDifferentHashes(t *testing.T) {
	hash1, err := GetHash("secret123")
	if err != nil {
		t.Fatalf("GetHash() error = %v", err)
	}
	hash2, err := GetHash("secret123")
	if err != nil {
		t.Fatalf("GetHash() error = %v", err)
	}

	// bcrypt использует случайную соль, хэши одинаковых паролей не совпадают
	if hash1 == hash2 {
		t.Error("GetHash() produced identical hashes for the same password")
	}
}
