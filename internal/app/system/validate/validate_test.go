package validate

import "testing"

type contactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,min=10"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(contactRequest{
		Name:    "A",
		Email:   "a@x.com",
		Subject: "Hi",
		Message: "Hello there, testing.",
	})
	if errs != nil {
		t.Errorf("expected no errors, got %v", errs)
	}
}

func TestStructMissingFields(t *testing.T) {
	errs := Struct(contactRequest{})
	if len(errs) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(errs), errs)
	}

	byField := map[string]string{}
	for _, fe := range errs {
		byField[fe.Field] = fe.Message
	}
	if byField["name"] != "name is required" {
		t.Errorf("name message = %q", byField["name"])
	}
	if byField["email"] != "email is required" {
		t.Errorf("email message = %q", byField["email"])
	}
}

func TestStructBadEmail(t *testing.T) {
	errs := Struct(contactRequest{
		Name:    "A",
		Email:   "not-an-email",
		Subject: "Hi",
		Message: "Hello there, testing.",
	})
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Field != "email" {
		t.Errorf("field = %q, want email", errs[0].Field)
	}
	if errs[0].Message != "email must be a valid email address" {
		t.Errorf("message = %q", errs[0].Message)
	}
}

func TestStructShortMessage(t *testing.T) {
	errs := Struct(contactRequest{
		Name:    "A",
		Email:   "a@x.com",
		Subject: "Hi",
		Message: "short",
	})
	if len(errs) != 1 || errs[0].Field != "message" {
		t.Fatalf("expected one message error, got %v", errs)
	}
}
