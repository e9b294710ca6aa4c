package utils

import "testing"

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("orchestral-manoeuvres")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "orchestral-manoeuvres" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "orchestral-manoeuvres") {
		t.Fatalf("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatalf("wrong password accepted")
	}
}
