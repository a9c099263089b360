package entity_test

import (
	"strings"
	"testing"

	"notekeep/internal/domain/entity"
)

func TestValidationError_Error(t *testing.T) {
	err := &entity.ValidationError{Field: "title", Message: "is required"}
	want := "validation error on field 'title': is required"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationErrors_Aggregate(t *testing.T) {
	var errs entity.ValidationErrors
	if errs.OrNil() != nil {
		t.Fatal("empty ValidationErrors must collapse to nil")
	}

	errs = append(errs,
		&entity.ValidationError{Field: "title", Message: "is required"},
		&entity.ValidationError{Field: "body", Message: "is required"},
	)

	err := errs.OrNil()
	if err == nil {
		t.Fatal("want error, got nil")
	}
	if !strings.Contains(err.Error(), "title") || !strings.Contains(err.Error(), "body") {
		t.Fatalf("joined message missing fields: %q", err.Error())
	}

	fields := errs.Fields()
	if fields["title"] != "is required" || fields["body"] != "is required" {
		t.Fatalf("Fields() = %#v", fields)
	}
}

func TestValidateEmail(t *testing.T) {
	if err := entity.ValidateEmail("user@example.com"); err != nil {
		t.Fatalf("valid address rejected: %v", err)
	}
	for _, bad := range []string{"", "not-an-email", "a b@example.com", "Name <a@example.com>"} {
		if err := entity.ValidateEmail(bad); err == nil {
			t.Fatalf("address %q accepted", bad)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := entity.ValidatePassword("secret"); err != nil {
		t.Fatalf("6-char password rejected: %v", err)
	}
	if err := entity.ValidatePassword("short"); err == nil {
		t.Fatal("5-char password accepted")
	}
}
