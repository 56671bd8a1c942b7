package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"feedapi/internal/service"
)

// presignExpiry bounds how long a generated media URL stays valid.
const presignExpiry = 15 * time.Minute

// UploadMedia handles POST /media (multipart/form-data, field "file").
func UploadMedia(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		media, err := svc.Upload(c.UserContext(), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return serviceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(media)
	}
}

// ListMedia handles GET /media.
func ListMedia(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.List(c.UserContext())
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(items)
	}
}

// GetMedia handles GET /media/:id.
func GetMedia(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		media, found, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		if !found {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "media not found")
		}
		return c.JSON(media)
	}
}

// MediaURL handles GET /media/:id/url. The returned link downloads the
// object without credentials until it expires.
func MediaURL(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		media, found, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		if !found {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "media not found")
		}

		u, err := svc.URL(c.UserContext(), media, presignExpiry)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"url": u, "expires_in": int(presignExpiry.Seconds())})
	}
}

// DownloadMedia handles GET /media/:id/content, streaming the object
// through the API.
func DownloadMedia(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		media, found, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return serviceError(c, err)
		}
		if !found {
			return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "media not found")
		}

		rc, err := svc.Open(c.UserContext(), media)
		if err != nil {
			return serviceError(c, err)
		}

		c.Set(fiber.HeaderContentType, media.ContentType)
		if media.Size > 0 {
			return c.SendStream(rc, int(media.Size))
		}
		return c.SendStream(rc)
	}
}

// DeleteMedia handles DELETE /media/:id.
func DeleteMedia(svc service.MediaService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
