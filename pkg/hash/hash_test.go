package hash

import "testing"

func TestPasswordRoundTrip(t *testing.T) {
	hashed, err := Password("correct horse battery staple")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hashed == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !Verify(hashed, "correct horse battery staple") {
		t.Error("correct password should verify")
	}
	if Verify(hashed, "wrong password") {
		t.Error("wrong password should not verify")
	}
}

func TestPasswordHashesDiffer(t *testing.T) {
	a, err := Password("same input")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Password("same input")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// bcrypt salts per call
	if a == b {
		t.Error("two hashes of the same input should differ")
	}
}

func TestVerifyGarbageHash(t *testing.T) {
	if Verify("not-a-bcrypt-hash", "anything") {
		t.Error("garbage hash should not verify")
	}
}
