package handler

import (
	"github.com/gofiber/fiber/v2"

	"feedapi/internal/service"
)

// Services bundles everything the HTTP layer depends on.
type Services struct {
	Posts    service.PostService
	Comments service.CommentService
	Topics   service.TopicService
	Statuses service.UserStatusService
	Media    service.MediaService
}

// RegisterRoutes attaches all API routes to the app. Handlers stay
// thin; the services own the behavior.
func RegisterRoutes(app *fiber.App, db Pinger, svcs Services) {
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	app.Post("/posts", CreatePost(svcs.Posts))
	app.Get("/posts", ListPosts(svcs.Posts))
	app.Get("/posts/user/:userId", ListPosts(svcs.Posts))
	app.Get("/posts/:id", GetPost(svcs.Posts))
	app.Put("/posts/:id", UpdatePost(svcs.Posts))
	app.Delete("/posts/:id", DeletePost(svcs.Posts))
	app.Post("/posts/:id/like", ToggleLike(svcs.Posts))

	app.Post("/comments", CreateComment(svcs.Comments))
	app.Get("/comments", ListComments(svcs.Comments))
	app.Get("/comments/:id", GetComment(svcs.Comments))
	app.Put("/comments/:id", UpdateComment(svcs.Comments))
	app.Delete("/comments/:id", DeleteComment(svcs.Comments))

	app.Post("/topics", CreateTopic(svcs.Topics))
	app.Get("/topics", ListTopics(svcs.Topics))
	app.Get("/topics/:id", GetTopic(svcs.Topics))
	app.Put("/topics/:id", UpdateTopic(svcs.Topics))
	app.Delete("/topics/:id", DeleteTopic(svcs.Topics))

	app.Post("/statuses", CreateUserStatus(svcs.Statuses))
	app.Get("/statuses", ListUserStatuses(svcs.Statuses))
	app.Get("/statuses/:id", GetUserStatus(svcs.Statuses))
	app.Put("/statuses/:id", UpdateUserStatus(svcs.Statuses))
	app.Delete("/statuses/:id", DeleteUserStatus(svcs.Statuses))

	app.Post("/media", UploadMedia(svcs.Media))
	app.Get("/media", ListMedia(svcs.Media))
	app.Get("/media/:id", GetMedia(svcs.Media))
	app.Get("/media/:id/url", MediaURL(svcs.Media))
	app.Get("/media/:id/content", DownloadMedia(svcs.Media))
	app.Delete("/media/:id", DeleteMedia(svcs.Media))
}
