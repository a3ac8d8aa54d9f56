package stats

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pagecraft/pages-go/lib/db"
)

type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

type Check struct {
	Status     Status `json:"status"`
	Observed   any    `json:"observed,omitempty"`
	ObservedAt string `json:"observedAt,omitempty"`
	Output     string `json:"output,omitempty"`
}

type Checker interface {
	Name() string
	Check() Check
}

type HealthResponse struct {
	Status  Status             `json:"status"`
	Version string             `json:"version"`
	Checks  map[string][]Check `json:"checks"`
}

type DBChecker struct {
	DB db.DataStore
}

func (d DBChecker) Name() string {
	return "database"
}

func (d DBChecker) Check() Check {
	if err := d.DB.Ping(); err != nil {
		return Check{
			Status: StatusFail,
			Output: err.Error(),
		}
	}

	return Check{
		Status:     StatusPass,
		Observed:   "ok",
		ObservedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// Handler reports service health in the RFC Health Check draft shape.
func Handler(version string, checkers []Checker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp := HealthResponse{
			Status:  StatusPass,
			Version: version,
			Checks:  map[string][]Check{},
		}

		httpStatus := fiber.StatusOK

		for _, checker := range checkers {
			check := checker.Check()
			resp.Checks[checker.Name()] = []Check{check}

			if check.Status == StatusFail {
				resp.Status = StatusFail
				httpStatus = fiber.StatusServiceUnavailable
			}
		}

		return c.Status(httpStatus).JSON(resp)
	}
}
