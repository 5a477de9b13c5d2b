package models

import "testing"

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleStaff, RoleStudent} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%q) = false", role)
		}
	}
	for _, role := range []string{"", "superuser", "Admin"} {
		if ValidRole(role) {
			t.Errorf("ValidRole(%q) = true", role)
		}
	}
}

func TestUserFullName(t *testing.T) {
	u := &User{Username: "jdoe", FirstName: "Jane", LastName: "Doe"}
	if got := u.FullName(); got != "Jane Doe" {
		t.Errorf("FullName() = %q, want %q", got, "Jane Doe")
	}

	u = &User{Username: "jdoe"}
	if got := u.FullName(); got != "jdoe" {
		t.Errorf("FullName() = %q, want username fallback", got)
	}
}

func TestLeaveStatusLabel(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{LeavePending, "Pending"},
		{LeaveApproved, "Approved"},
		{LeaveRejected, "Rejected"},
		{99, "Unknown"},
	}
	for _, tt := range tests {
		l := &Leave{Status: tt.status}
		if got := l.StatusLabel(); got != tt.want {
			t.Errorf("StatusLabel(%d) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
