package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"course-assist-be/internal/dto"
	"course-assist-be/internal/pkg/serverutils"
	"course-assist-be/internal/service"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	ListQueries(ctx *fiber.Ctx) error
	AnswerQuery(ctx *fiber.Ctx) error
	Reindex(ctx *fiber.Ctx) error
	IndexStats(ctx *fiber.Ctx) error
}

type adminController struct {
	escalationService service.IEscalationService
	ingestionService  service.IIngestionService
}

func NewAdminController(
	escalationService service.IEscalationService,
	ingestionService service.IIngestionService,
) IAdminController {
	return &adminController{
		escalationService: escalationService,
		ingestionService:  ingestionService,
	}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("queries", c.ListQueries)
	h.Post("queries/:id/answer", c.AnswerQuery)
	h.Post("reindex", c.Reindex)
	h.Get("index/stats", c.IndexStats)
}

func (c *adminController) ListQueries(ctx *fiber.Ctx) error {
	unansweredOnly := ctx.QueryBool("unanswered", false)

	res, err := c.escalationService.List(ctx.Context(), unansweredOnly)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list escalated queries", res))
}

func (c *adminController) AnswerQuery(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse("Invalid query id"))
	}

	var req dto.AnswerQueryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.escalationService.Answer(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success answer query", res))
}

func (c *adminController) Reindex(ctx *fiber.Ctx) error {
	res, err := c.ingestionService.Rebuild(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success rebuild index", res))
}

func (c *adminController) IndexStats(ctx *fiber.Ctx) error {
	namespace := ctx.Query("namespace")

	res, err := c.ingestionService.Stats(ctx.Context(), namespace)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show index stats", res))
}
