package controller

import (
	"errors"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"ai-csvchat-be/internal/constant"
	"ai-csvchat-be/internal/dto"
	"ai-csvchat-be/internal/pkg/serverutils"
	"ai-csvchat-be/internal/service"
	"ai-csvchat-be/pkg/llm"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Root(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	Chat(ctx *fiber.Ctx) error
	SessionData(ctx *fiber.Ctx) error
	ClearSession(ctx *fiber.Ctx) error
}

type sessionController struct {
	service service.ISessionService
}

func NewSessionController(service service.ISessionService) ISessionController {
	return &sessionController{service: service}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Root)
	r.Post("/upload", c.Upload)
	r.Post("/chat", c.Chat)
	r.Get("/session/:id/data", c.SessionData)
	r.Delete("/session/:id", c.ClearSession)
}

func (c *sessionController) Root(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"message": constant.WelcomeMessage})
}

func (c *sessionController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "file is required"))
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Only CSV files are allowed"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	res, err := c.service.Ingest(ctx.Context(), raw, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, service.ErrMalformedTable) {
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, "Error processing file: "+err.Error()))
	}

	return ctx.JSON(res)
}

func (c *sessionController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Answer(ctx.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Session not found. Please upload a file first."))
		case errors.Is(err, llm.ErrModelNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		case errors.Is(err, llm.ErrQuotaExceeded):
			return ctx.Status(fiber.StatusTooManyRequests).JSON(serverutils.ErrorResponse(429, "Quota exceeded. Please wait or switch models."))
		default:
			return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
		}
	}

	return ctx.JSON(res)
}

func (c *sessionController) SessionData(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("id")
	maxRows := ctx.QueryInt("max_rows", 20)

	res, err := c.service.SessionData(ctx.Context(), sessionId, maxRows)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Session not found"))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(res)
}

func (c *sessionController) ClearSession(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("id")

	if err := c.service.ClearSession(ctx.Context(), sessionId); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Session cleared", nil))
}
