package helpers

import "testing"

type sampleForm struct {
	Username string `validate:"required,min=3,max=150"`
	Email    string `validate:"required,email"`
	Role     string `validate:"required,oneof=admin staff student"`
}

func TestValidateStructValid(t *testing.T) {
	form := sampleForm{Username: "alice", Email: "alice@example.com", Role: "student"}
	if fields := ValidateStruct(form); fields != nil {
		t.Errorf("expected no validation errors, got %v", fields)
	}
}

func TestValidateStructInvalid(t *testing.T) {
	form := sampleForm{Username: "al", Email: "not-an-email", Role: "superuser"}
	fields := ValidateStruct(form)
	if fields == nil {
		t.Fatal("expected validation errors, got none")
	}

	if msg, ok := fields["username"]; !ok {
		t.Error("missing username error")
	} else if msg != "must be at least 3 characters" {
		t.Errorf("username message = %q", msg)
	}
	if msg, ok := fields["email"]; !ok {
		t.Error("missing email error")
	} else if msg != "must be a valid email address" {
		t.Errorf("email message = %q", msg)
	}
	if msg, ok := fields["role"]; !ok {
		t.Error("missing role error")
	} else if msg != "must be one of: admin staff student" {
		t.Errorf("role message = %q", msg)
	}
}

func TestValidateStructRequired(t *testing.T) {
	fields := ValidateStruct(sampleForm{})
	if fields == nil {
		t.Fatal("expected validation errors, got none")
	}
	for _, key := range []string{"username", "email", "role"} {
		if fields[key] != "this field is required" {
			t.Errorf("fields[%q] = %q, want required message", key, fields[key])
		}
	}
}
