package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"budi", "intern_2024", "a.b-c", "Abc123"}
	invalid := []string{"ab", "", "with space", "semi;colon", "verylongusername-that-exceeds-the-fifty-character-limit"}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-06-02"); !ok {
		t.Error(`IsValidDate("2024-06-02") = false, want true`)
	}
	for _, bad := range []string{"2024-6-2", "02-06-2024", "2024-13-01", "yesterday", ""} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	statuses := []string{"PRESENT", "LATE", "ABSENT"}
	if !IsInSlice("LATE", statuses) {
		t.Error(`IsInSlice("LATE") = false, want true`)
	}
	if IsInSlice("late", statuses) {
		t.Error(`IsInSlice("late") = true, want false`)
	}
	if IsInSlice("x", nil) {
		t.Error(`IsInSlice on nil slice = true, want false`)
	}
}
