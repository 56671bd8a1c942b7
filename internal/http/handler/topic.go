package handler

import (
	"github.com/gofiber/fiber/v2"

	"feedapi/internal/model"
	"feedapi/internal/service"
)

// CreateTopic handles POST /topics.
func CreateTopic(svc service.TopicService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var topic model.Topic
		if err := c.BodyParser(&topic); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		}
		topic.ID = ""

		created, err := svc.Create(c.UserContext(), &topic)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// ListTopics handles GET /topics with an optional userId query filter.
func ListTopics(svc service.TopicService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		topics, err := svc.List(c.UserContext(), c.Query("userId"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(topics)
	}
}

// GetTopic handles GET /topics/:id.
func GetTopic(svc service.TopicService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		topic, found, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		if !found {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "topic not found")
		}
		return c.JSON(topic)
	}
}

// UpdateTopic handles PUT /topics/:id.
func UpdateTopic(svc service.TopicService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpdateTopicInput
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

// DeleteTopic handles DELETE /topics/:id.
func DeleteTopic(svc service.TopicService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
