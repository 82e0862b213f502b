package controller

import (
	"talentmatch-be/internal/dto"
	"talentmatch-be/internal/pkg/serverutils"
	"talentmatch-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	UploadResume(ctx *fiber.Ctx) error
}

type profileController struct {
	profileService service.IProfileService
	matchService   service.IMatchService
}

func NewProfileController(profileService service.IProfileService, matchService service.IMatchService) IProfileController {
	return &profileController{
		profileService: profileService,
		matchService:   matchService,
	}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profile")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.Show)
	h.Patch("", c.Update)
	h.Post("/save", c.Save)
	h.Post("/resume", c.UploadResume)
}

func (c *profileController) Show(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	res, err := c.profileService.GetAggregate(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile", res))
}

func (c *profileController) Update(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	var req dto.UpdateAggregateRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.profileService.UpdateAggregate(ctx.Context(), userId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile updated", res))
}

func (c *profileController) Save(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	report, err := c.profileService.Save(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	c.matchService.InvalidateMatches(ctx.Context(), userId)

	if !report.Ok {
		// Partial saves are reported, not rolled back.
		return ctx.Status(fiber.StatusMultiStatus).JSON(serverutils.SuccessResponse("Profile partially saved", report))
	}
	return ctx.JSON(serverutils.SuccessResponse("Profile saved", report))
}

func (c *profileController) UploadResume(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIdFromCtx(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}

	file, err := ctx.FormFile("resume")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Resume file is required"))
	}

	res, err := c.profileService.UploadResume(ctx.Context(), userId, file, func(dst string) error {
		return ctx.SaveFile(file, dst)
	})
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Resume uploaded", res))
}
