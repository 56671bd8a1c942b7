package handler

import (
	"github.com/gofiber/fiber/v2"

	"feedapi/internal/model"
	"feedapi/internal/service"
)

// CreatePost handles POST /posts.
func CreatePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var post model.Post
		if err := c.BodyParser(&post); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		}
		post.ID = ""

		created, err := svc.Create(c.UserContext(), &post)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// ListPosts handles GET /posts and GET /posts/user/:userId. With the
// userId param bound it returns only that user's posts; otherwise the
// whole feed, newest first.
func ListPosts(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		posts, err := svc.List(c.UserContext(), c.Params("userId"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(posts)
	}
}

// GetPost handles GET /posts/:id.
func GetPost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		post, found, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		if !found {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "post not found")
		}
		return c.JSON(post)
	}
}

// UpdatePost handles PUT /posts/:id.
func UpdatePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpdatePostInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		}

		updated, err := svc.Update(c.UserContext(), c.Params("id"), in)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(updated)
	}
}

// DeletePost handles DELETE /posts/:id.
func DeletePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ToggleLike handles POST /posts/:id/like. The body names the acting
// user; the response is the post after the flip.
func ToggleLike(svc service.PostService) fiber.Handler {
	type likeRequest struct {
		UserID string `json:"userId"`
	}

	return func(c *fiber.Ctx) error {
		var in likeRequest
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		}
		if in.UserID == "" {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "userId is required")
		}

		post, err := svc.ToggleLike(c.UserContext(), c.Params("id"), in.UserID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(post)
	}
}
