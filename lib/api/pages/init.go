package pages

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	apiError "github.com/pagecraft/pages-go/lib/api/errors"
	"github.com/pagecraft/pages-go/lib/exception"
	page2 "github.com/pagecraft/pages-go/lib/models/page"
	"github.com/pagecraft/pages-go/lib/page"
)

type CreatePageRequest struct {
	Title  string        `json:"title" validate:"max=200"`
	Blocks []page2.Block `json:"blocks" validate:"omitempty,dive"`
}

type PageIdsResponse struct {
	PageIds []string `json:"pageIds"`
}

func Init(c *fiber.App, manager *page.Manager, validate *validator.Validate) {
	c.Post("/pages", func(ctx *fiber.Ctx) error {
		var req CreatePageRequest
		if err := ctx.BodyParser(&req); err != nil {
			return ctx.Status(400).JSON(apiError.InvalidRequestError)
		}
		if err := validate.Struct(req); err != nil {
			return ctx.Status(400).JSON(apiError.InvalidRequestError)
		}

		created, err := manager.CreatePage(req.Title, req.Blocks)
		if err != nil {
			return ctx.Status(500).JSON(apiError.InternalApiError)
		}
		return ctx.Status(201).JSON(created)
	})

	c.Get("/pages", func(ctx *fiber.Ctx) error {
		return ctx.JSON(PageIdsResponse{PageIds: manager.GetPageIds()})
	})

	c.Get("/pages/:pageId", func(ctx *fiber.Ctx) error {
		pageId := ctx.Params("pageId")
		if !manager.IsValidPageId(pageId) {
			return ctx.Status(400).JSON(apiError.InvalidPageIdError)
		}

		foundPage, err := manager.GetPage(pageId)
		if err != nil {
			return pageError(ctx, err)
		}
		return ctx.JSON(foundPage)
	})

	c.Delete("/pages/:pageId", func(ctx *fiber.Ctx) error {
		pageId := ctx.Params("pageId")
		if !manager.DoesPageExist(pageId) {
			return ctx.Status(404).JSON(apiError.PageNotFoundError)
		}

		if err := manager.RemovePage(pageId); err != nil {
			return ctx.Status(500).JSON(apiError.InternalApiError)
		}
		return ctx.SendStatus(204)
	})

	c.Get("/pages/:pageId/export/txt", func(ctx *fiber.Ctx) error {
		foundPage, err := manager.GetPage(ctx.Params("pageId"))
		if err != nil {
			return pageError(ctx, err)
		}

		ctx.Set("Content-Type", "text/plain; charset=utf-8")
		return ctx.SendString(page.GetTxtFromPage(foundPage))
	})
}

func pageError(ctx *fiber.Ctx, err error) error {
	var notFound *exception.PageNotFoundError
	if errors.As(err, &notFound) {
		return ctx.Status(404).JSON(apiError.PageNotFoundError)
	}
	return ctx.Status(500).JSON(apiError.InternalApiError)
}
