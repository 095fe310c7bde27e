package normalize

import (
	"sort"
	"testing"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"user@example.com", "user@example.com"},
		{"USER@EXAMPLE.COM", "user@example.com"},
		{"  User@Example.Com  ", "user@example.com"},
		{"", ""},
		{"   ", ""},
		{"Mixed.Case@Domain.ORG", "mixed.case@domain.org"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Email(tt.input)
			if got != tt.want {
				t.Errorf("Email(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"John Doe", "John Doe"},
		{"  John Doe  ", "John Doe"},
		{"", ""},
		{"UPPERCASE NAME", "UPPERCASE NAME"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Name(tt.input)
			if got != tt.want {
				t.Errorf("Name(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Zebra Org", "zebra org"},
		{"  Déjà Vu  ", "deja vu"},
		{"apple co", "apple co"},
		{"BETA Group", "beta group"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Fold(tt.input)
			if got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// name_ci keys must compare case-insensitively under Mongo's byte-order
// sort, so "apple co" has to come before "Zebra Org" once folded.
func TestFoldOrdersMixedCaseNames(t *testing.T) {
	keys := []string{Fold("Zebra Org"), Fold("apple co"), Fold("Beta Group")}
	sort.Strings(keys)

	want := []string{"apple co", "beta group", "zebra org"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("sorted keys = %v, want %v", keys, want)
		}
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"  Annual Report 2025  ", "annual-report-2025"},
		{"Clean---Water!!", "clean-water"},
		{"Déjà Vu", "deja-vu"},
		{"--leading and trailing--", "leading-and-trailing"},
		{"!!!", "untitled"},
		{"", "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := Slug(tt.input)
			if got != tt.want {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSlugWithSuffix(t *testing.T) {
	if got := SlugWithSuffix("annual-report", 2); got != "annual-report-2" {
		t.Errorf("SlugWithSuffix = %q, want %q", got, "annual-report-2")
	}
}
