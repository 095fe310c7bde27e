package search

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRegexEscapesMetaCharacters(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"water", "water"},
		{"a+b", `a\+b`},
		{"(x|y)*", `\(x\|y\)\*`},
		{".^$", `\.\^\$`},
		{"  padded  ", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			re := Regex(tt.input)
			if re.Pattern != tt.want {
				t.Errorf("Regex(%q).Pattern = %q, want %q", tt.input, re.Pattern, tt.want)
			}
			if re.Options != "i" {
				t.Errorf("Regex(%q).Options = %q, want %q", tt.input, re.Options, "i")
			}
		})
	}
}

func TestOr(t *testing.T) {
	clause := Or("clean water", "title", "description")
	if clause == nil {
		t.Fatal("expected a clause, got nil")
	}

	or, ok := clause["$or"].([]bson.M)
	if !ok {
		t.Fatalf("expected $or slice, got %T", clause["$or"])
	}
	if len(or) != 2 {
		t.Fatalf("expected 2 branches, got %d", len(or))
	}

	first, ok := or[0]["title"].(primitive.Regex)
	if !ok {
		t.Fatalf("expected regex on title, got %T", or[0]["title"])
	}
	if first.Pattern != "clean water" {
		t.Errorf("pattern = %q, want %q", first.Pattern, "clean water")
	}
}

func TestOrBlankQuery(t *testing.T) {
	if clause := Or("   ", "title"); clause != nil {
		t.Errorf("expected nil for blank query, got %v", clause)
	}
	if clause := Or("x"); clause != nil {
		t.Errorf("expected nil with no fields, got %v", clause)
	}
}
