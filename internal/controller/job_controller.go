package controller

import (
	"strconv"
	"strings"

	"talentmatch-be/internal/dto"
	"talentmatch-be/internal/pkg/serverutils"
	"talentmatch-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IJobController interface {
	RegisterRoutes(r fiber.Router)
	CreateCompany(ctx *fiber.Ctx) error
	ShowCompany(ctx *fiber.Ctx) error
	CreateJob(ctx *fiber.Ctx) error
	ShowJob(ctx *fiber.Ctx) error
	ListJobs(ctx *fiber.Ctx) error
	ListCompanyJobs(ctx *fiber.Ctx) error
}

type jobController struct {
	service service.IJobService
}

func NewJobController(service service.IJobService) IJobController {
	return &jobController{service: service}
}

func (c *jobController) RegisterRoutes(r fiber.Router) {
	jobs := r.Group("/jobs")
	jobs.Use(serverutils.JwtMiddleware)
	jobs.Get("", c.ListJobs)
	jobs.Post("", c.CreateJob)
	jobs.Get(":id", c.ShowJob)

	companies := r.Group("/companies")
	companies.Use(serverutils.JwtMiddleware)
	companies.Post("", c.CreateCompany)
	companies.Get(":id", c.ShowCompany)
	companies.Get(":id/jobs", c.ListCompanyJobs)
}

func (c *jobController) CreateCompany(ctx *fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CreateCompany(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Company created", res))
}

func (c *jobController) ShowCompany(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid company ID"))
	}

	res, err := c.service.GetCompany(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Company", res))
}

func (c *jobController) CreateJob(ctx *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.service.CreateJob(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Job posted", res))
}

func (c *jobController) ShowJob(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid job ID"))
	}

	res, err := c.service.GetJob(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Job", res))
}

func (c *jobController) ListJobs(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "20"))
	offset, _ := strconv.Atoi(ctx.Query("offset", "0"))

	var roles []string
	if raw := ctx.Query("roles"); raw != "" {
		roles = strings.Split(raw, ",")
	}

	res, err := c.service.ListOpenJobs(ctx.Context(), roles, limit, offset)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Open jobs", res))
}

func (c *jobController) ListCompanyJobs(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid company ID"))
	}

	res, err := c.service.ListCompanyJobs(ctx.Context(), id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Company jobs", res))
}
