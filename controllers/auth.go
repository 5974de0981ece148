package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/salonhq/booking-api/config"
	"github.com/salonhq/booking-api/middleware"
	"github.com/salonhq/booking-api/models"
	"github.com/salonhq/booking-api/utils"
)

const (
	accessTokenTTL  = 24 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthController struct {
	DB    *gorm.DB
	Redis *redis.Client
	Cfg   *config.Config
}

func NewAuthController(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *AuthController {
	return &AuthController{DB: db, Redis: rdb, Cfg: cfg}
}

type SignupInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

// Signup creates a new customer account and logs it straight in.
func (h *AuthController) Signup(c *fiber.Ctx) error {
	input := new(SignupInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Cannot parse JSON"})
	}

	required := map[string]string{
		"firstName": input.FirstName,
		"lastName":  input.LastName,
		"email":     input.Email,
		"password":  input.Password,
	}
	for field, value := range required {
		if value == "" {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: field + " is required"})
		}
	}

	var existing models.User
	if h.DB.Where("email = ?", input.Email).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "User already exists with this email"})
	}

	user := models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      models.RoleUser,
		IsActive:  true,
	}
	if err := user.SetPassword(input.Password); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Failed to hash password", Error: err.Error()})
	}

	if err := h.DB.Create(&user).Error; err != nil {
		log.Printf("signup: failed to create user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Error creating user", Error: err.Error()})
	}

	token, err := h.issueToken(&user, accessTokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Failed to generate token", Error: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "User created successfully",
		"user":         user,
		"access_token": token,
	})
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthController) Login(c *fiber.Ctx) error {
	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Cannot parse JSON"})
	}
	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Email and password are required"})
	}

	var user models.User
	if h.DB.Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{Message: "Invalid email or password"})
	}

	if !user.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{Message: "Account is deactivated"})
	}

	if !user.CheckPassword(input.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{Message: "Invalid email or password"})
	}

	token, err := h.issueToken(&user, accessTokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Failed to generate token", Error: err.Error()})
	}
	refresh, err := h.issueToken(&user, refreshTokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Failed to generate refresh token", Error: err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":       "Login successful",
		"user":          user,
		"access_token":  token,
		"refresh_token": refresh,
	})
}

// Me returns the caller's user record as resolved by the auth middleware.
func (h *AuthController) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	return c.JSON(fiber.Map{"user": user})
}

// Logout revokes the presented token by blacklisting it for the remainder of
// its lifetime. Without redis the token simply expires on its own.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	if h.Redis != nil {
		if token, ok := c.Locals("user").(*jwt.Token); ok {
			ttl := accessTokenTTL
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if exp, ok := claims["exp"].(float64); ok {
					if remaining := time.Until(time.Unix(int64(exp), 0)); remaining > 0 {
						ttl = remaining
					}
				}
			}
			if err := h.Redis.Set(c.Context(), utils.TokenBlacklistKey(token.Raw), "1", ttl).Err(); err != nil {
				log.Printf("logout: failed to blacklist token: %v", err)
			}
		}
	}
	return c.JSON(fiber.Map{"message": "Successfully logged out"})
}

type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

// Refresh exchanges a valid refresh token for a new access token.
func (h *AuthController) Refresh(c *fiber.Ctx) error {
	input := new(RefreshInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{Message: "Cannot parse JSON"})
	}

	token, err := jwt.Parse(input.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{Message: "Invalid refresh token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{Message: "Invalid refresh token"})
	}
	id, ok := claims["id"].(float64)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{Message: "Invalid refresh token"})
	}

	var user models.User
	if err := h.DB.First(&user, uint(id)).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{Message: "User not found"})
	}
	if !user.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{Message: "Account is deactivated"})
	}

	newToken, err := h.issueToken(&user, accessTokenTTL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{Message: "Failed to generate token", Error: err.Error()})
	}

	return c.JSON(fiber.Map{"access_token": newToken})
}

// issueToken signs an HS256 token carrying only identity, never the role:
// authorization is re-resolved from the users table on every request.
func (h *AuthController) issueToken(user *models.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.Cfg.JWTSecret))
}
