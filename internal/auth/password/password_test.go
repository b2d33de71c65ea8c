package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Fatalf("unexpected hash format: %s", hash)
	}

	if !Verify("correct horse battery staple", hash) {
		t.Fatal("expected matching password to verify")
	}
	if Verify("wrong password", hash) {
		t.Fatal("expected mismatching password to fail")
	}
}

func TestHash_UniqueSalt(t *testing.T) {
	a, err := Hash("segredo123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	b, err := Hash("segredo123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if a == b {
		t.Fatal("expected distinct salts to produce distinct hashes")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	if Verify("segredo123", "not-a-hash") {
		t.Fatal("expected malformed hash to fail verification")
	}
	if Verify("segredo123", "$argon2i$v=19$m=65536,t=1,p=4$AAAA$BBBB") {
		t.Fatal("expected wrong variant to fail verification")
	}
}
