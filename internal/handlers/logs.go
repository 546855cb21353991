package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// The four log endpoints share one shape: every row for the user, newest
// first, an empty array when there are none.
func (h HandlerSet) CallLogs(c *gin.Context) {
	listLogs(h, c, h.logs.CallLogsByUser)
}

func (h HandlerSet) ErrorLogs(c *gin.Context) {
	listLogs(h, c, h.logs.ErrorLogsByUser)
}

func (h HandlerSet) MessageLogs(c *gin.Context) {
	listLogs(h, c, h.logs.MessageLogsByUser)
}

func (h HandlerSet) CallRecordings(c *gin.Context) {
	listLogs(h, c, h.logs.CallRecordingsByUser)
}

func listLogs[T any](h HandlerSet, c *gin.Context, fetch func(context.Context, string) ([]T, error)) {
	rows, err := fetch(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error().Err(err).Str("user_id", c.Param("id")).Str("path", c.FullPath()).Msg("log query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if rows == nil {
		rows = []T{}
	}
	c.JSON(http.StatusOK, rows)
}
