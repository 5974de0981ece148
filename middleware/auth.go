package middleware

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/salonhq/booking-api/config"
	"github.com/salonhq/booking-api/models"
	"github.com/salonhq/booking-api/utils"
)

// CurrentUserKey is the locals key under which Protected stores the
// authenticated user's row.
const CurrentUserKey = "currentUser"

// Protected validates the bearer token and resolves the caller to a live
// users row. The role check always reads the database, never the token, so
// role edits and deactivations take effect on the next request. A nil redis
// client disables the logout blacklist.
func Protected(cfg *config.Config, gdb *gorm.DB, rdb *redis.Client) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(cfg.JWTSecret),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return unauthorized(c, "Invalid token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c, "Invalid token claims")
			}

			userID, err := extractUserID(claims)
			if err != nil {
				return unauthorized(c, "Invalid user ID in token")
			}

			if rdb != nil {
				// The blacklist check fails open: an unreachable redis must
				// not lock every caller out. Revoked tokens still age out at
				// their exp claim.
				revoked, err := rdb.Exists(c.Context(), utils.TokenBlacklistKey(token.Raw)).Result()
				if err != nil {
					log.Printf("auth: token blacklist check failed: %v", err)
				} else if revoked > 0 {
					return unauthorized(c, "Token has been revoked")
				}
			}

			var user models.User
			if err := gdb.First(&user, userID).Error; err != nil {
				return unauthorized(c, "User not found")
			}
			if !user.IsActive {
				return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
					Message: "Account is deactivated",
				})
			}

			c.Locals(CurrentUserKey, user)
			return c.Next()
		},
	})
}

// RequireAdmin must run after Protected.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
				Message: "Admin access required",
			})
		}
		return c.Next()
	}
}

// CurrentUser returns the user resolved by Protected.
func CurrentUser(c *fiber.Ctx) models.User {
	user, _ := c.Locals(CurrentUserKey).(models.User)
	return user
}

// extractUserID handles the formats the id claim shows up in after a
// marshal/unmarshal round trip.
func extractUserID(claims jwt.MapClaims) (uint, error) {
	switch v := claims["id"].(type) {
	case float64:
		return uint(v), nil
	case string:
		parsed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return 0, err
		}
		return uint(parsed), nil
	case nil:
		return 0, fmt.Errorf("no id found in claims")
	default:
		return 0, fmt.Errorf("unsupported id type: %T", v)
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{Message: message})
}

func jwtError(c *fiber.Ctx, _ error) error {
	return unauthorized(c, "Invalid or expired token")
}
