package controller

import (
	"strconv"

	"talentmatch-be/internal/pkg/serverutils"
	"talentmatch-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDashboardController interface {
	RegisterRoutes(r fiber.Router)
	Matches(ctx *fiber.Ctx) error
}

type dashboardController struct {
	matchService   service.IMatchService
	profileService service.IProfileService
}

func NewDashboardController(matchService service.IMatchService, profileService service.IProfileService) IDashboardController {
	return &dashboardController{
		matchService:   matchService,
		profileService: profileService,
	}
}

func (c *dashboardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/dashboard")
	h.Use(serverutils.JwtMiddleware)
	// The dashboard is gated: candidates land here only after onboarding.
	h.Use(serverutils.OnboardingGuard(c.profileService))
	h.Get("/matches", c.Matches)
}

func (c *dashboardController) Matches(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	limit, _ := strconv.Atoi(ctx.Query("limit", "20"))

	res, err := c.matchService.GetMatches(ctx.Context(), userId, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Job matches", res))
}
