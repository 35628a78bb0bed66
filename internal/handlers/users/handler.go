// internal/handlers/users/handler.go
package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"plantscape-service/internal/common/logger"
)

type Handler struct {
	store  Store
	logger logger.Logger
}

func NewHandler(store Store, log logger.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: log.WithFields(map[string]interface{}{"handler": "users"}),
	}
}

// Handle implements GET /users: the roster as a bare JSON array, with
// plants serialized as plain name strings.
func (h *Handler) Handle(c *gin.Context) {
	userList, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list users", map[string]interface{}{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users."})
		return
	}

	c.JSON(http.StatusOK, userList)
}
