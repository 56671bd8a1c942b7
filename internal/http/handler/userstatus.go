package handler

import (
	"github.com/gofiber/fiber/v2"

	"feedapi/internal/model"
	"feedapi/internal/service"
)

// CreateUserStatus handles POST /statuses.
func CreateUserStatus(svc service.UserStatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var status model.UserStatus
		if err := c.BodyParser(&status); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON")
		}
		status.ID = ""

		created, err := svc.Create(c.UserContext(), &status)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// ListUserStatuses handles GET /statuses with an optional userId query
// filter.
func ListUserStatuses(svc service.UserStatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		statuses, err := svc.List(c.UserContext(), c.Query("userId"))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(statuses)
	}
}

// GetUserStatus handles GET /statuses/:id.
func GetUserStatus(svc service.UserStatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, found, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		if !found {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "status not found")
		}
		return c.JSON(status)
	}
}

// UpdateUserStatus handles PUT /statuses/:id.
func UpdateUserStatus(svc service.UserStatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.UpdateUserStatusInput
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

// DeleteUserStatus handles DELETE /statuses/:id.
func DeleteUserStatus(svc service.UserStatusService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
