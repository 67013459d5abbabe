package handler

import (
	"net/http"

	"kanban/internal/kanban"
	"kanban/internal/notify"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// MutationResponse is returned by every board-changing endpoint. Applied is false
// when the request was well formed but changed nothing, e.g. an index out of range.
type MutationResponse struct {
	Applied bool           `json:"applied"`
	Board   kanban.Board   `json:"board"`
	Notice  *notify.Notice `json:"notice,omitempty"`
}

type BoardHandler struct {
	store *kanban.Store
}

func NewBoardHandler(store *kanban.Store) *BoardHandler {
	return &BoardHandler{store: store}
}

func (h *BoardHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Board())
}

func (h *BoardHandler) Reset(c *gin.Context) {
	h.store.ResetBoard()
	log.WithField("op", "reset_board").Debug("board updated")

	notice := notify.BoardReset()
	c.JSON(http.StatusOK, MutationResponse{Applied: true, Board: h.store.Board(), Notice: &notice})
}

func mutationResult(c *gin.Context, store *kanban.Store, applied bool, op string, fields log.Fields) {
	entry := log.WithFields(fields).WithField("op", op)
	if applied {
		entry.Debug("board updated")
	} else {
		entry.Debug("mutation ignored")
	}
	c.JSON(http.StatusOK, MutationResponse{Applied: applied, Board: store.Board()})
}

func columnIDParam(c *gin.Context) (kanban.ColumnID, bool) {
	id, ok := kanban.ParseColumnID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid column ID format"})
	}
	return id, ok
}

func taskIDParam(c *gin.Context) (kanban.TaskID, bool) {
	id, ok := kanban.ParseTaskID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task ID format"})
	}
	return id, ok
}
