package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"course-assist-be/internal/dto"
	"course-assist-be/internal/pkg/serverutils"
	"course-assist-be/internal/service"
	"course-assist-be/pkg/rag"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("query", serverutils.OptionalJwtMiddleware, c.Ask)
	h.Get("history", serverutils.JwtMiddleware, c.History)
}

func (c *chatController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	requesterID, requesterEmail := optionalIdentity(ctx)

	res, err := c.chatService.Ask(ctx.Context(), requesterID, requesterEmail, &req)
	if err != nil {
		return err
	}

	// An escalated query has no answer yet; 404 tells the client to expect
	// one later.
	if res.Status == string(rag.StatusUnanswered) {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.SuccessResponse("Query escalated for manual review", res))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success answer query", res))
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse("Invalid user id"))
	}

	res, err := c.chatService.History(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show chat history", res))
}

// optionalIdentity reads locals set by OptionalJwtMiddleware; both are zero
// for anonymous callers.
func optionalIdentity(ctx *fiber.Ctx) (*uuid.UUID, string) {
	var requesterID *uuid.UUID
	if userIdStr, ok := ctx.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(userIdStr); err == nil {
			requesterID = &id
		}
	}

	email, _ := ctx.Locals("email").(string)
	return requesterID, email
}
