// internal/handlers/community/handler.go
package community

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"plantscape-service/internal/common/logger"
	"plantscape-service/internal/models"
)

// narrator rewrites group descriptions and benefits with the model.
type narrator interface {
	NarrateMatches(ctx context.Context, groups []models.Match) ([]models.Match, error)
}

// userSaver records submitted users so GET /users reflects them.
type userSaver interface {
	SaveUsers(ctx context.Context, users []models.User) error
}

type Handler struct {
	config *Config
	nar    narrator
	store  userSaver
	logger logger.Logger
}

// NewHandler builds the community handler. Both narrator and store are
// optional; grouping works without either.
func NewHandler(cfg *Config, nar narrator, store userSaver, log logger.Logger) *Handler {
	return &Handler{
		config: cfg,
		nar:    nar,
		store:  store,
		logger: log.WithFields(map[string]interface{}{"handler": "community"}),
	}
}

// Handle implements POST /community: normalize plant data, group users
// by shared plants, and narrate each group. Narration failures fall
// back to the locally generated descriptions rather than failing the
// request.
func (h *Handler) Handle(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil || req.Users == nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid request data. 'users' field is required."})
		return
	}

	valid := make([]models.User, 0, len(req.Users))
	for _, u := range req.Users {
		if u.Name == "" {
			continue
		}
		valid = append(valid, u)
	}
	if len(valid) == 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "No valid user data provided."})
		return
	}

	h.logger.Info("processing community matching", map[string]interface{}{
		"user_count": len(valid),
	})

	if h.store != nil {
		if err := h.store.SaveUsers(c.Request.Context(), valid); err != nil {
			h.logger.Warn("failed to persist submitted users", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	groups := GroupUsers(valid, h.config.MinGroupSize)

	if h.config.Narrate && h.nar != nil && len(groups) > 0 {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.config.NarrationTimeout)
		defer cancel()

		narrated, err := h.nar.NarrateMatches(ctx, groups)
		if err != nil {
			h.logger.Warn("group narration failed, using local descriptions", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			groups = narrated
		}
	}

	h.logger.Info("community matching complete", map[string]interface{}{
		"group_count": len(groups),
	})

	c.JSON(http.StatusOK, models.Community{Match: groups})
}
