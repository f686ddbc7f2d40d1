package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"pv-leads-backend/config"
	"pv-leads-backend/models"
	apimodels "pv-leads-backend/models/api"
)

func AdminPanelAuthorizationRequired() fiber.Handler {
	return adminPanelJwt("header:Authorization")
}

// AdminPanelWsAuthorizationRequired also reads the token from the query, browsers cannot set headers on a websocket.
func AdminPanelWsAuthorizationRequired() fiber.Handler {
	return adminPanelJwt("header:Authorization,query:token")
}

func adminPanelJwt(tokenLookup string) fiber.Handler {
	return jwtware.New(jwtware.Config{
		Claims:      jwt.MapClaims{},
		TokenLookup: tokenLookup,
		AuthScheme:  "Bearer",
		SigningKey: jwtware.SigningKey{
			JWTAlg: "HS256",
			Key:    []byte(config.Conf.AdminPanelAuth.JWTSecret),
		},
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError("authentification requise"))
		},
	})
}

func SuperAdminRole() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		token, ok := ctx.Locals("user").(*jwt.Token)
		if !ok {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("opération non autorisée"))
		}
		claims, _ := token.Claims.(jwt.MapClaims)
		role, _ := claims["role"].(string)
		if role != string(models.UserRoleSuperAdmin) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("opération non autorisée"))
		}
		return ctx.Next()
	}
}
