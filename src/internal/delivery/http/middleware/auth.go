package middleware

import (
	"strings"

	httpError "ticketing-service/src/pkg/http-error"
	"ticketing-service/src/pkg/token"
	"ticketing-service/src/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

const userLocalsKey = "auth-user"

// VerifyBearer resolves the Authorization header to an authenticated user,
// failing closed on anything malformed, expired or unsigned.
func VerifyBearer(config *viper.Viper) fiber.Handler {
	secret := config.GetString("jwt.secret")

	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "missing bearer token"
			return utils.ResponseError(errObj, ctx)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid authorization header format"
			return utils.ResponseError(errObj, ctx)
		}

		claim, err := token.Verify(parts[1], secret)
		if err != nil {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "invalid or expired token"
			return utils.ResponseError(errObj, ctx)
		}

		ctx.Locals(userLocalsKey, claim.Metadata)
		return ctx.Next()
	}
}

func GetUser(ctx *fiber.Ctx) token.Metadata {
	if metadata, ok := ctx.Locals(userLocalsKey).(token.Metadata); ok {
		return metadata
	}
	return token.Metadata{}
}
