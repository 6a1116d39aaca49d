package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-management/internal/logger"
)

func addFlash(c *gin.Context, log *logger.Logger, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		log.Warnw("failed to save flash", "error", err)
	}
}

// popFlashes returns and clears pending flash messages.
func popFlashes(c *gin.Context, log *logger.Logger) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(); err != nil {
		log.Warnw("failed to clear flashes", "error", err)
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
