package main

import (
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"

	"github.com/goliatone/go-blog/client"
	"github.com/goliatone/go-blog/store"
)

const defaultFeedLimit = 6

// registerContentRoutes mounts the admin and public content surface. The
// handlers are thin: bind, dispatch to the store, render the slice state.
func registerContentRoutes(app *fiber.App, st *store.Store, logger stdLogger) {
	admin := app.Group("/admin/api")

	admin.Get("/categories", func(c *fiber.Ctx) error {
		if err := st.Categories.Fetch(c.Context()); err != nil {
			logger.Error("fetch categories: %v", err)
		}
		return renderSlice(c, st.Categories.Snapshot())
	})

	admin.Post("/categories", func(c *fiber.Ctx) error {
		var payload client.CategoryPayload
		if err := c.BodyParser(&payload); err != nil {
			return badRequest(c, err)
		}
		created, err := st.Categories.Create(c.Context(), bearerToken(c), payload)
		if err != nil {
			return renderError(c, err)
		}
		return c.Status(http.StatusCreated).JSON(created)
	})

	admin.Put("/categories/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return badRequest(c, err)
		}
		var payload client.CategoryPayload
		if err := c.BodyParser(&payload); err != nil {
			return badRequest(c, err)
		}
		updated, err := st.Categories.Update(c.Context(), bearerToken(c), int64(id), payload)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(updated)
	})

	admin.Delete("/categories/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return badRequest(c, err)
		}
		if err := st.Categories.Delete(c.Context(), bearerToken(c), int64(id)); err != nil {
			return renderError(c, err)
		}
		return c.SendStatus(http.StatusNoContent)
	})

	admin.Get("/posts", func(c *fiber.Ctx) error {
		if err := st.Posts.Fetch(c.Context(), bearerToken(c)); err != nil {
			logger.Error("fetch posts: %v", err)
		}
		return renderSlice(c, st.Posts.Snapshot())
	})

	admin.Post("/posts", func(c *fiber.Ctx) error {
		var payload client.PostPayload
		if err := c.BodyParser(&payload); err != nil {
			return badRequest(c, err)
		}
		created, err := st.Posts.Create(c.Context(), bearerToken(c), payload)
		if err != nil {
			return renderError(c, err)
		}
		return c.Status(http.StatusCreated).JSON(created)
	})

	admin.Put("/posts/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return badRequest(c, err)
		}
		var payload client.PostPayload
		if err := c.BodyParser(&payload); err != nil {
			return badRequest(c, err)
		}
		updated, err := st.Posts.Update(c.Context(), bearerToken(c), int64(id), payload)
		if err != nil {
			return renderError(c, err)
		}
		return c.JSON(updated)
	})

	admin.Delete("/posts/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return badRequest(c, err)
		}
		if err := st.Posts.Delete(c.Context(), bearerToken(c), int64(id)); err != nil {
			return renderError(c, err)
		}
		return c.SendStatus(http.StatusNoContent)
	})

	app.Get("/api/feed/featured", func(c *fiber.Ctx) error {
		if err := st.Home.FetchFeatured(c.Context(), c.QueryInt("limit", defaultFeedLimit)); err != nil {
			logger.Error("fetch featured: %v", err)
		}
		return renderSlice(c, st.Home.Featured())
	})

	app.Get("/api/feed/latest", func(c *fiber.Ctx) error {
		if err := st.Home.FetchLatest(c.Context(), c.QueryInt("limit", defaultFeedLimit)); err != nil {
			logger.Error("fetch latest: %v", err)
		}
		return renderSlice(c, st.Home.Latest())
	})

	app.Get("/api/feed/posts/:id", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return badRequest(c, err)
		}
		if err := st.Home.FetchSingle(c.Context(), int64(id)); err != nil {
			return renderError(c, err)
		}
		post, _, _ := st.Home.Single()
		return c.JSON(post)
	})

	app.Get("/api/feed/categories/:id/posts", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return badRequest(c, err)
		}
		if err := st.Home.FetchByCategory(c.Context(), int64(id)); err != nil {
			logger.Error("fetch by category: %v", err)
		}
		snap, _ := st.Home.ByCategory()
		return renderSlice(c, snap)
	})

	app.Get("/api/posts/:id/comments", func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return badRequest(c, err)
		}
		if err := st.Comments.FetchByPost(c.Context(), int64(id)); err != nil {
			logger.Error("fetch comments: %v", err)
		}
		return renderSlice(c, st.Comments.Snapshot())
	})

	app.Post("/api/comments", func(c *fiber.Ctx) error {
		var payload client.CommentPayload
		if err := c.BodyParser(&payload); err != nil {
			return badRequest(c, err)
		}
		if err := st.Comments.Submit(c.Context(), payload); err != nil {
			return renderError(c, err)
		}
		_, message := st.Comments.Submitting()
		return c.Status(http.StatusAccepted).JSON(fiber.Map{"message": message})
	})
}

// bearerToken pulls the mirrored token copy the browser sends on mutating
// calls. Absence is not rejected here; the upstream service is the one
// enforcing auth on its mutating endpoints.
func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func renderSlice[T any](c *fiber.Ctx, snap store.Snapshot[T]) error {
	return c.JSON(fiber.Map{
		"items": snap.Items,
		"phase": snap.Phase.String(),
		"error": snap.Err,
	})
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
}

// renderError maps the error taxonomy onto HTTP statuses. Validation
// failures never made it upstream; everything else is the upstream
// outcome passed through.
func renderError(c *fiber.Ctx, err error) error {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"message": verrs.Error()})
	}

	var richErr *errors.Error
	if errors.As(err, &richErr) {
		status := http.StatusInternalServerError
		switch richErr.Category {
		case errors.CategoryNotFound:
			status = http.StatusNotFound
		case errors.CategoryConflict:
			status = http.StatusConflict
		case errors.CategoryAuth:
			status = http.StatusUnauthorized
		case errors.CategoryBadInput, errors.CategoryValidation:
			status = http.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{"message": richErr.Message})
	}

	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
}
