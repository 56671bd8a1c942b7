package handler

import (
	"github.com/gofiber/fiber/v2"

	"feedapi/internal/model"
	"feedapi/internal/service"
)

// CreateComment handles POST /comments.
func CreateComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var comment model.Comment
		if err := c.BodyParser(&comment); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		}
		comment.ID = ""

		created, err := svc.Create(c.UserContext(), &comment)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// ListComments handles GET /comments. The optional postId query
// parameter narrows the result to one post's thread.
func ListComments(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		comments, err := svc.List(c.UserContext(), c.Query("postId"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(comments)
	}
}

// GetComment handles GET /comments/:id.
func GetComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		comment, found, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		if !found {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "comment not found")
		}
		return c.JSON(comment)
	}
}

// UpdateComment handles PUT /comments/:id. Only the text changes.
func UpdateComment(svc service.CommentService) fiber.Handler {
	type updateRequest struct {
		Comment string `json:"comment"`
	}

	return func(c *fiber.Ctx) error {
		var in updateRequest
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		}

		updated, err := svc.Update(c.UserContext(), c.Params("id"), in.Comment)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(updated)
	}
}

// DeleteComment handles DELETE /comments/:id.
func DeleteComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
