package auth

import (
	"testing"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name    string
		user    *models.User
		allowed []string
		want    error
	}{
		{
			name: "nil user is not authenticated",
			user: nil,
			want: ErrNotAuthenticated,
		},
		{
			name: "inactive user is denied before role check",
			user: &models.User{Role: models.RoleAdmin, IsActive: false},
			// an inactive admin asking for an admin route is still
			// inactive_account, never forbidden
			allowed: []string{models.RoleAdmin},
			want:    ErrInactiveAccount,
		},
		{
			name:    "active user with wrong role is forbidden",
			user:    &models.User{Role: models.RoleStudent, IsActive: true},
			allowed: []string{models.RoleAdmin, models.RoleStaff},
			want:    ErrForbidden,
		},
		{
			name:    "active user with allowed role passes",
			user:    &models.User{Role: models.RoleStaff, IsActive: true},
			allowed: []string{models.RoleAdmin, models.RoleStaff},
			want:    nil,
		},
		{
			name: "empty allowed set admits any active user",
			user: &models.User{Role: models.RoleStudent, IsActive: true},
			want: nil,
		},
		{
			name: "inactive user denied even with no role restriction",
			user: &models.User{Role: models.RoleStudent, IsActive: false},
			want: ErrInactiveAccount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Authorize(tt.user, tt.allowed...)
			if got != tt.want {
				t.Errorf("Authorize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDenialReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrNotAuthenticated, "not_authenticated"},
		{ErrInactiveAccount, "inactive_account"},
		{ErrForbidden, "forbidden"},
	}
	for _, tt := range tests {
		if got := DenialReason(tt.err); got != tt.want {
			t.Errorf("DenialReason(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestDashboardRoute(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{models.RoleAdmin, "/dashboard/admin"},
		{models.RoleStaff, "/dashboard/staff"},
		{models.RoleStudent, "/dashboard/student"},
		{"unknown", "/auth/login"},
	}
	for _, tt := range tests {
		if got := DashboardRoute(tt.role); got != tt.want {
			t.Errorf("DashboardRoute(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}
