package serverutils

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CompletionChecker answers whether a candidate finished onboarding.
type CompletionChecker interface {
	IsOnboardingComplete(ctx context.Context, userId uuid.UUID) (bool, error)
}

// OnboardingGuard blocks dashboard surfaces until onboarding is done,
// pointing the client back at the flow. Runs after JwtMiddleware.
func OnboardingGuard(checker CompletionChecker) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId, err := UserIdFromCtx(ctx)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, err.Error()))
		}

		done, err := checker.IsOnboardingComplete(ctx.Context(), userId)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(500, err.Error()))
		}
		if !done {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success":  false,
				"code":     403,
				"message":  "Onboarding incomplete",
				"redirect": "/onboarding",
			})
		}
		return ctx.Next()
	}
}
