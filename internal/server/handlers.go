package server

import (
	"encoding/json"

	charmlog "github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"

	"github.com/vastuhome/layoutengine/internal/engine"
	"github.com/vastuhome/layoutengine/internal/model"
)

// Handler serves the optimization endpoints. defaults holds the engine
// settings applied when a request does not supply its own.
type Handler struct {
	defaults model.Settings
	log      *charmlog.Logger
}

// Optimize runs one optimization session for the posted request.
//
// Invalid input returns 400 with a machine-readable error code. An
// infeasible result is not an error: it comes back 200 with the
// feasibility flag false and the violation report attached.
func (h *Handler) Optimize(c fiber.Ctx) error {
	var req model.OptimizeRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "malformed request body",
			"code":  "INVALID_JSON",
		})
	}

	session := engine.NewSession(h.defaults)
	result, err := session.Run(req)
	if err != nil {
		if ie, ok := engine.AsInputError(err); ok {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": ie.Detail,
				"code":  string(ie.Code),
			})
		}
		h.log.Error("optimization failed", "err", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal error",
		})
	}

	h.log.Info("optimization complete",
		"run_id", result.Diagnostics.RunID,
		"items", len(req.Items),
		"feasible", result.Feasible,
		"generations", result.Diagnostics.Generations,
		"stop", result.Diagnostics.StopReason,
		"elapsed", result.Diagnostics.Elapsed,
	)
	return c.JSON(result)
}
