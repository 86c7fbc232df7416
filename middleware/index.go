package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"venue_booking/constants"
	"venue_booking/model"
	"venue_booking/utils"
)

// Protected verifies an HMAC-signed JWT from the access_token cookie or the
// Authorization header and stores its claims in c.Locals("user").
func Protected(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ERROR_UNAUTHORIZED, errors.New("no token"))
		}

		claims := jwt.MapClaims{}
		jwtToken, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.ERROR_INVALID_TOKEN, err)
		}

		c.Locals("user", claimFrom(claims))
		return c.Next()
	}
}

func claimFrom(claims jwt.MapClaims) model.TokenClaim {
	str := func(key string) string {
		v, _ := claims[key].(string)
		return v
	}
	sub, _ := claims.GetSubject()
	claim := model.TokenClaim{UserId: str("userId"), Username: str("username"), Role: str("role")}
	if claim.UserId == "" {
		claim.UserId = sub
	}
	return claim
}

// AdminOnly must run after Protected.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, ok := c.Locals("user").(model.TokenClaim)
		if !ok || claim.Role != constants.ROLE_ADMIN {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ERROR_NOT_ADMIN, errors.New("forbidden"))
		}
		return c.Next()
	}
}
