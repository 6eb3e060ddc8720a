package controller

import (
	"traderhub-be/internal/dto"
	"traderhub-be/internal/entity"
	"traderhub-be/internal/pkg/serverutils"
	"traderhub-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IConfigController interface {
	RegisterRoutes(r fiber.Router)
	ShowPublic(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Upsert(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type configController struct {
	service service.IConfigService
}

func NewConfigController(service service.IConfigService) IConfigController {
	return &configController{service: service}
}

func (c *configController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/config")
	h.Get("/public/:key", c.ShowPublic)

	admin := h.Group("", serverutils.JwtMiddleware, serverutils.RequireRoles(string(entity.RoleAdmin), string(entity.RoleSuperAdmin)))
	admin.Get("", c.List)
	admin.Put("", c.Upsert)
	admin.Delete(":key", c.Delete)
}

func (c *configController) ShowPublic(ctx *fiber.Ctx) error {
	res, err := c.service.GetPublicConfig(ctx.Context(), ctx.Params("key"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show config", res))
}

func (c *configController) List(ctx *fiber.Ctx) error {
	res, err := c.service.ListConfigs(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list configs", res))
}

func (c *configController) Upsert(ctx *fiber.Ctx) error {
	adminIdStr, _ := ctx.Locals("user_id").(string)
	adminId, err := uuid.Parse(adminIdStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	var req dto.UpsertConfigRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpsertConfig(ctx.Context(), adminId, &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Config saved", res))
}

func (c *configController) Delete(ctx *fiber.Ctx) error {
	adminIdStr, _ := ctx.Locals("user_id").(string)
	adminId, err := uuid.Parse(adminIdStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	if err := c.service.DeleteConfig(ctx.Context(), adminId, ctx.Params("key")); err != nil {
		if err.Error() == "config not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Config deleted", nil))
}
