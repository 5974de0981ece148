package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/salonhq/booking-api/config"
	"github.com/salonhq/booking-api/controllers"
	"github.com/salonhq/booking-api/db"
	"github.com/salonhq/booking-api/middleware"
	"github.com/salonhq/booking-api/models"
	"github.com/salonhq/booking-api/routes"
)

// newTestApp wires the full route surface over an in-memory database, the
// same way main does against Postgres. Redis, mail and cloudinary are off.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()
	return newTestAppWithRedis(t, nil)
}

func newTestAppWithRedis(t *testing.T, rdb *redis.Client) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	cfg := &config.Config{JWTSecret: "test-secret", CORSOrigins: "*"}

	app := fiber.New()
	api := app.Group("/api")

	protected := middleware.Protected(cfg, gdb, rdb)
	requireAdmin := middleware.RequireAdmin()

	routes.SetupAuthRoutes(api, controllers.NewAuthController(gdb, rdb, cfg), protected)
	routes.SetupCatalogRoutes(api, controllers.NewServiceController(gdb), controllers.NewStaffController(gdb))
	routes.SetupBookingRoutes(api,
		controllers.NewAppointmentController(gdb),
		controllers.NewBookingController(gdb, nil),
		controllers.NewPaymentController(gdb),
		controllers.NewUserController(gdb),
		protected,
	)
	routes.SetupAdminRoutes(api, controllers.NewAdminController(gdb, nil), protected, requireAdmin)

	return app, gdb, cfg
}

func createUser(t *testing.T, gdb *gorm.DB, email, role string) models.User {
	t.Helper()
	user := models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Phone:     "+254700000001",
		Role:      role,
		IsActive:  true,
	}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, gdb.Create(&user).Error)
	return user
}

func createService(t *testing.T, gdb *gorm.DB, name string, price float64) models.Service {
	t.Helper()
	service := models.Service{
		Name:     name,
		Price:    price,
		Duration: 60,
		Category: "hair",
		IsActive: true,
	}
	require.NoError(t, gdb.Create(&service).Error)
	return service
}

func createStaff(t *testing.T, gdb *gorm.DB, email string) models.Staff {
	t.Helper()
	staff := models.Staff{
		FirstName: "Sarah",
		LastName:  "Johnson",
		Email:     email,
		Specialty: "hair-stylist",
		IsActive:  true,
	}
	require.NoError(t, gdb.Create(&staff).Error)
	return staff
}

func tokenFor(t *testing.T, cfg *config.Config, user models.User) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)
	return signed
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}
