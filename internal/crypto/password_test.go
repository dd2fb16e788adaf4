package crypto

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "password123" {
		t.Fatalf("hash must not equal the raw password")
	}
	if err := CheckPassword(hash, "password123"); err != nil {
		t.Fatalf("expected password to match")
	}
	if err := CheckPassword(hash, "wrongpassword"); err == nil {
		t.Fatalf("expected password mismatch")
	}
}

func TestHashesAreSalted(t *testing.T) {
	h1, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	h2, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ")
	}
}
