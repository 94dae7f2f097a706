package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"maker@example.com", "first.last+tag@sub.domain.org"}
	invalid := []string{"", "not-an-email", "missing@tld", "@example.com"}

	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Fatalf("SanitizeInput = %q", got)
	}
}

func TestIsAllowedArtifactExt(t *testing.T) {
	for _, ext := range []string{".stl", ".obj", ".step", ".stp", ".3mf", ".zip"} {
		if !IsAllowedArtifactExt(ext) {
			t.Errorf("expected %s to be allowed", ext)
		}
	}
	for _, ext := range []string{".exe", ".sh", "", ".STL", "stl"} {
		if IsAllowedArtifactExt(ext) {
			t.Errorf("expected %s to be rejected", ext)
		}
	}
}
