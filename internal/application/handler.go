package application

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mortgage-api/pkg/cerror"
	"mortgage-api/pkg/jwt_generator"
	"mortgage-api/pkg/logger"
	"mortgage-api/pkg/middleware"
	"mortgage-api/pkg/server"
)

type handler struct {
	applicationService Service
	jwtGenerator       jwt_generator.JwtGenerator
}

func NewHandler(applicationService Service, jwtGenerator jwt_generator.JwtGenerator) server.Handler {
	return &handler{
		applicationService: applicationService,
		jwtGenerator:       jwtGenerator,
	}
}

func (h *handler) RegisterRoutes(app *fiber.App) {
	applications := app.Group("/api/applications", middleware.Auth(h.jwtGenerator))
	applications.Get("/me", h.GetMyApplication)
	applications.Put("/me", h.SaveMyApplication)
	applications.Post("/me/submit", h.SubmitMyApplication)

	admin := app.Group("/api/admin/applications", middleware.Auth(h.jwtGenerator), middleware.AdminOnly())
	admin.Get("/", h.ListApplications)
	admin.Get("/:applicationId", h.GetApplicationById)
	admin.Patch("/:applicationId/approval", h.UpdateApproval)
}

func (h *handler) GetMyApplication(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getMyApplication"))
	ctx.Locals(logger.ContextKey, log)

	userId, _ := ctx.Locals(middleware.ContextUserId).(string)
	document, err := h.applicationService.GetApplicationByUserId(ctx.Context(), userId)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"ok":          true,
			"application": document,
		})
}

func (h *handler) SaveMyApplication(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "saveMyApplication"))
	ctx.Locals(logger.ContextKey, log)

	var payload UpsertApplicationPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	userId, _ := ctx.Locals(middleware.ContextUserId).(string)
	document, err := h.applicationService.SaveApplication(ctx.Context(), userId, &payload)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"ok":          true,
			"application": document,
		})
}

func (h *handler) SubmitMyApplication(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "submitMyApplication"))
	ctx.Locals(logger.ContextKey, log)

	userId, _ := ctx.Locals(middleware.ContextUserId).(string)
	document, err := h.applicationService.SubmitApplication(ctx.Context(), userId)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"ok":          true,
			"application": document,
		})
}

func (h *handler) ListApplications(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "listApplications"))
	ctx.Locals(logger.ContextKey, log)

	documents, err := h.applicationService.ListApplications(ctx.Context())
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"ok":           true,
			"applications": documents,
		})
}

func (h *handler) GetApplicationById(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "getApplicationById"))
	ctx.Locals(logger.ContextKey, log)

	applicationId := ctx.Params("applicationId")
	document, err := h.applicationService.GetApplicationById(ctx.Context(), applicationId)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"ok":          true,
			"application": document,
		})
}

func (h *handler) UpdateApproval(ctx *fiber.Ctx) error {
	log := logger.FromContext(ctx.Context()).
		With(zap.String("eventName", "updateApproval"))
	ctx.Locals(logger.ContextKey, log)

	var payload UpdateApprovalPayload
	err := ctx.BodyParser(&payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	validate := validator.New()
	err = validate.Struct(payload)
	if err != nil {
		return cerror.ErrorBadRequest
	}

	applicationId := ctx.Params("applicationId")
	err = h.applicationService.UpdateApproval(ctx.Context(), applicationId, payload.Approval)
	if err != nil {
		return err
	}

	log.Info(logger.EventFinishedSuccessfully)
	return ctx.
		Status(fiber.StatusOK).
		JSON(fiber.Map{
			"ok":       true,
			"approval": payload.Approval,
		})
}
