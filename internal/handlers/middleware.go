package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID    = "userId"
	bearerScheme = "Bearer"

	errHistoryNoToken    = "calculation history requires a bearer token"
	errHistoryBadScheme  = "authorization must use the Bearer scheme"
	errHistoryTokenStale = "history token is invalid or expired; sign in again"
)

// requireHistoryUser admits history requests carrying a valid JWT and stores
// the caller's user id under ctxUserID.
func (h *Handler) requireHistoryUser(c *gin.Context) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		h.rejectHistory(c, errHistoryNoToken, "missing_token")
		return
	}

	scheme, token, ok := strings.Cut(header, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, bearerScheme) || token == "" {
		h.rejectHistory(c, errHistoryBadScheme, "bad_scheme")
		return
	}

	userID, err := h.services.ParseToken(token)
	if err != nil {
		h.rejectHistory(c, errHistoryTokenStale, "bad_token", "err", err)
		return
	}

	c.Set(ctxUserID, userID)
	c.Next()
}

func (h *Handler) rejectHistory(c *gin.Context, msg, reason string, kv ...any) {
	if h.log != nil {
		h.log.Debugw("history_access_denied",
			append([]any{"reason", reason, "path", c.FullPath()}, kv...)...)
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
}
