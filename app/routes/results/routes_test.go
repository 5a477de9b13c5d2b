package results

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	_ "github.com/lib/pq"

	"github.com/jupallivinaykumar/StudentManagementSystem/app/config"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/database"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/models"
	"github.com/jupallivinaykumar/StudentManagementSystem/app/routes/auth"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping test database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	config.AppConfig = &config.Config{DB: db}
	t.Cleanup(func() {
		config.AppConfig = nil
		db.Close()
	})

	app := fiber.New()
	SetupResultsRoutes(app)
	return app
}

func loginAs(t *testing.T, role string) *http.Cookie {
	t.Helper()
	db := config.GetDB()

	tag := auth.GenerateSessionID()[:8]
	user := &models.User{
		Username: role + "-" + tag,
		Email:    role + "-" + tag + "@example.com",
		Password: "not-a-real-hash",
		Role:     role,
		IsActive: true,
	}
	if err := database.CreateUser(db, user, nil, nil); err != nil {
		t.Fatalf("create %s user: %v", role, err)
	}
	t.Cleanup(func() {
		db.Exec(`DELETE FROM users WHERE id = $1`, user.ID)
	})

	sessionID := auth.GenerateSessionID()
	if err := database.CreateSession(db, sessionID, user.ID, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("create session: %v", err)
	}
	return &http.Cookie{Name: auth.SessionCookie, Value: sessionID}
}

// The results listing is for admins and for students seeing their own
// rows; a staff session must be turned away at the gate.
func TestListResultsRoleGate(t *testing.T) {
	app := testApp(t)

	tests := []struct {
		role string
		want int
	}{
		{models.RoleAdmin, http.StatusOK},
		{models.RoleStudent, http.StatusOK},
		{models.RoleStaff, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/results/", nil)
			req.AddCookie(loginAs(t, tt.role))

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tt.want {
				t.Errorf("%s GET /results/ = %d, want %d", tt.role, resp.StatusCode, tt.want)
			}
		})
	}
}
