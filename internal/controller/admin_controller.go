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

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	ListTraders(ctx *fiber.Ctx) error
	UpdateTrader(ctx *fiber.Ctx) error
	DeleteTrader(ctx *fiber.Ctx) error
	CreateAdmin(ctx *fiber.Ctx) error
	DashboardStats(ctx *fiber.Ctx) error
	SystemLogs(ctx *fiber.Ctx) error
	Backup(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Use(serverutils.JwtMiddleware)
	h.Use(serverutils.RequireRoles(string(entity.RoleAdmin), string(entity.RoleSuperAdmin)))
	h.Get("/traders", c.ListTraders)
	h.Put("/traders/:id", c.UpdateTrader)
	h.Delete("/traders/:id", c.DeleteTrader)
	h.Get("/dashboard", c.DashboardStats)
	h.Get("/logs", c.SystemLogs)
	h.Get("/backup", c.Backup)

	h.Post("/admins", c.CreateAdmin)
}

func (c *adminController) ListTraders(ctx *fiber.Ctx) error {
	var req dto.TraderListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid query parameters"))
	}

	res, err := c.service.ListTraders(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list traders", res))
}

func (c *adminController) UpdateTrader(ctx *fiber.Ctx) error {
	adminIdStr, _ := ctx.Locals("user_id").(string)
	adminId, err := uuid.Parse(adminIdStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid trader ID"))
	}

	var req dto.AdminUpdateTraderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateTrader(ctx.Context(), adminId, &req)
	if err != nil {
		if err.Error() == "trader not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Trader updated", res))
}

func (c *adminController) DeleteTrader(ctx *fiber.Ctx) error {
	adminIdStr, _ := ctx.Locals("user_id").(string)
	adminId, err := uuid.Parse(adminIdStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid trader ID"))
	}

	if err := c.service.DeleteTrader(ctx.Context(), adminId, id); err != nil {
		if err.Error() == "trader not found" {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Trader deleted", nil))
}

func (c *adminController) CreateAdmin(ctx *fiber.Ctx) error {
	creatorIdStr, _ := ctx.Locals("user_id").(string)
	creatorId, err := uuid.Parse(creatorIdStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	var req dto.AdminCreateAdminRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.CreateAdmin(ctx.Context(), creatorId, &req)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Admin created", res))
}

func (c *adminController) DashboardStats(ctx *fiber.Ctx) error {
	res, err := c.service.GetDashboardStats(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success dashboard stats", res))
}

func (c *adminController) Backup(ctx *fiber.Ctx) error {
	adminIdStr, _ := ctx.Locals("user_id").(string)
	adminId, err := uuid.Parse(adminIdStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "Unauthorized"))
	}

	res, err := c.service.ExportBackup(ctx.Context(), adminId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	filename := "backup_sistema_" + res.Timestamp.Format("2006-01-02") + ".json"
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.JSON(res)
}

func (c *adminController) SystemLogs(ctx *fiber.Ctx) error {
	var req dto.SystemLogListRequest
	if err := ctx.QueryParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid query parameters"))
	}

	res, err := c.service.GetSystemLogs(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list system logs", res))
}
