package tables

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	apiError "github.com/pagecraft/pages-go/lib/api/errors"
	"github.com/pagecraft/pages-go/lib/exception"
	"github.com/pagecraft/pages-go/lib/formula"
	page2 "github.com/pagecraft/pages-go/lib/models/page"
	"github.com/pagecraft/pages-go/lib/page"
	"github.com/pagecraft/pages-go/lib/table"
	"github.com/pagecraft/pages-go/lib/ws"
)

type SetCellValueRequest struct {
	Value string `json:"value" validate:"max=1000"`
}

type SetCellFormulaRequest struct {
	Formula string `json:"formula" validate:"max=1000"`
}

type UpdatesResponse struct {
	Updates []table.CellUpdate `json:"updates"`
}

func Init(c *fiber.App, manager *page.Manager, notifier *ws.Notifier, validate *validator.Validate) {
	c.Get("/pages/:pageId/tables/:blockIndex", func(ctx *fiber.Ctx) error {
		foundPage, blockIndex, apiErr := resolveTable(ctx, manager)
		if apiErr != nil {
			return ctx.Status(apiErr.Error).JSON(*apiErr)
		}

		tbl, _ := foundPage.TableAt(blockIndex)
		return ctx.JSON(tbl)
	})

	c.Put("/pages/:pageId/tables/:blockIndex/cells/:ref/value", func(ctx *fiber.Ctx) error {
		foundPage, blockIndex, apiErr := resolveTable(ctx, manager)
		if apiErr != nil {
			return ctx.Status(apiErr.Error).JSON(*apiErr)
		}

		col, row, err := formula.DecodeRef(ctx.Params("ref"))
		if err != nil {
			return ctx.Status(400).JSON(apiError.MalformedReferenceError)
		}

		var req SetCellValueRequest
		if err := ctx.BodyParser(&req); err != nil {
			return ctx.Status(400).JSON(apiError.InvalidRequestError)
		}
		if err := validate.Struct(req); err != nil {
			return ctx.Status(400).JSON(apiError.InvalidRequestError)
		}

		updates, err := manager.CommitCellValue(foundPage, blockIndex, col, row, req.Value)
		if err != nil {
			return commitError(ctx, err)
		}

		notifier.BroadcastUpdates(foundPage.Id, updates)
		return ctx.JSON(UpdatesResponse{Updates: updates})
	})

	c.Put("/pages/:pageId/tables/:blockIndex/cells/:ref/formula", func(ctx *fiber.Ctx) error {
		foundPage, blockIndex, apiErr := resolveTable(ctx, manager)
		if apiErr != nil {
			return ctx.Status(apiErr.Error).JSON(*apiErr)
		}

		col, row, err := formula.DecodeRef(ctx.Params("ref"))
		if err != nil {
			return ctx.Status(400).JSON(apiError.MalformedReferenceError)
		}

		var req SetCellFormulaRequest
		if err := ctx.BodyParser(&req); err != nil {
			return ctx.Status(400).JSON(apiError.InvalidRequestError)
		}
		if err := validate.Struct(req); err != nil {
			return ctx.Status(400).JSON(apiError.InvalidRequestError)
		}

		updates, err := manager.CommitCellFormula(foundPage, blockIndex, col, row, req.Formula)
		if err != nil {
			return commitError(ctx, err)
		}

		notifier.BroadcastUpdates(foundPage.Id, updates)
		return ctx.JSON(UpdatesResponse{Updates: updates})
	})

	c.Post("/pages/:pageId/tables/:blockIndex/recalculate", func(ctx *fiber.Ctx) error {
		foundPage, blockIndex, apiErr := resolveTable(ctx, manager)
		if apiErr != nil {
			return ctx.Status(apiErr.Error).JSON(*apiErr)
		}

		updates, err := manager.RecalculateTable(foundPage, blockIndex)
		if err != nil {
			return commitError(ctx, err)
		}
		if err := manager.SavePage(foundPage); err != nil {
			return ctx.Status(500).JSON(apiError.InternalApiError)
		}

		notifier.BroadcastUpdates(foundPage.Id, updates)
		return ctx.JSON(UpdatesResponse{Updates: updates})
	})
}

// resolveTable loads the page and checks the addressed block is a table.
func resolveTable(ctx *fiber.Ctx, manager *page.Manager) (*page2.Page, int, *apiError.Error) {
	blockIndex, err := strconv.Atoi(ctx.Params("blockIndex"))
	if err != nil || blockIndex < 0 {
		invalid := apiError.NewInvalidParamError("blockIndex")
		return nil, 0, &invalid
	}

	foundPage, err := manager.GetPage(ctx.Params("pageId"))
	if err != nil {
		var notFound *exception.PageNotFoundError
		if errors.As(err, &notFound) {
			return nil, 0, &apiError.PageNotFoundError
		}
		return nil, 0, &apiError.InternalApiError
	}

	if _, ok := foundPage.TableAt(blockIndex); !ok {
		return nil, 0, &apiError.TableNotFoundError
	}
	return foundPage, blockIndex, nil
}

func commitError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, page.ErrFormulaCell) {
		return ctx.Status(409).JSON(apiError.FormulaCellError)
	}
	var tableNotFound *exception.TableNotFoundError
	if errors.As(err, &tableNotFound) {
		return ctx.Status(404).JSON(apiError.CellNotFoundError)
	}
	return ctx.Status(500).JSON(apiError.InternalApiError)
}
