package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apiError "github.com/pagecraft/pages-go/lib/api/errors"
	"github.com/pagecraft/pages-go/lib/api/pages"
	"github.com/pagecraft/pages-go/lib/api/stats"
	"github.com/pagecraft/pages-go/lib/api/tables"
	"github.com/pagecraft/pages-go/lib/db"
	"github.com/pagecraft/pages-go/lib/page"
	"github.com/pagecraft/pages-go/lib/settings"
	"github.com/pagecraft/pages-go/lib/ws"
)

const Version = "0.1.0"

// Init registers every HTTP route of the service.
func Init(app *fiber.App, manager *page.Manager, hub *ws.Hub, notifier *ws.Notifier,
	store db.DataStore, retrievedSettings *settings.Settings,
	validate *validator.Validate, logger *zap.SugaredLogger) {
	pages.Init(app, manager, validate)
	tables.Init(app, manager, notifier, validate)

	app.Get("/health", stats.Handler(Version, []stats.Checker{
		stats.DBChecker{DB: store},
	}))

	app.Get("/ws/pages/:pageId", func(c *fiber.Ctx) error {
		pageId := c.Params("pageId")
		if !manager.DoesPageExist(pageId) {
			return c.Status(404).JSON(apiError.PageNotFoundError)
		}
		return adaptor.HTTPHandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ws.ServeWs(hub, writer, request, pageId, retrievedSettings, logger)
		})(c)
	})
}
