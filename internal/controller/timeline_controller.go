package controller

import (
	"strings"

	"traderhub-be/internal/dto"
	"traderhub-be/internal/entity"
	"traderhub-be/internal/pkg/serverutils"
	"traderhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITimelineController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Attachment(ctx *fiber.Ctx) error
	CreateEntry(ctx *fiber.Ctx) error
}

type timelineController struct {
	service service.ITimelineService
}

func NewTimelineController(service service.ITimelineService) ITimelineController {
	return &timelineController{service: service}
}

func (c *timelineController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/timeline")
	h.Use(serverutils.JwtMiddleware)
	h.Get(":planId", c.Show)
	h.Get("/attachment/:entryId", c.Attachment)
	h.Post("", serverutils.RequireRoles(string(entity.RoleAdmin), string(entity.RoleSuperAdmin)), c.CreateEntry)
}

func callerFromLocals(ctx *fiber.Ctx) (uuid.UUID, bool, error) {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, false, err
	}
	role, _ := ctx.Locals("role").(string)
	isAdmin := role == string(entity.RoleAdmin) || role == string(entity.RoleSuperAdmin)
	return userId, isAdmin, nil
}

func (c *timelineController) Show(ctx *fiber.Ctx) error {
	callerId, isAdmin, err := callerFromLocals(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	planId, err := uuid.Parse(ctx.Params("planId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid plan ID"))
	}

	res, err := c.service.GetTimeline(ctx.Context(), callerId, isAdmin, planId)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show timeline", res))
}

func (c *timelineController) Attachment(ctx *fiber.Ctx) error {
	callerId, isAdmin, err := callerFromLocals(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	entryId, err := uuid.Parse(ctx.Params("entryId"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid entry ID"))
	}

	res, err := c.service.GetAttachment(ctx.Context(), callerId, isAdmin, entryId)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		if err.Error() == "entry has no attachment" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success resolve attachment", res))
}

func (c *timelineController) CreateEntry(ctx *fiber.Ctx) error {
	var req dto.CreateTimelineEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateEntry(ctx.Context(), &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Timeline entry created", res))
}
