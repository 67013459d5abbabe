package handler

import (
	"net/http"

	"kanban/internal/dragdrop"
	"kanban/internal/kanban"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type DragHandler struct {
	coordinator *dragdrop.Coordinator
	store       *kanban.Store
}

func NewDragHandler(coordinator *dragdrop.Coordinator, store *kanban.Store) *DragHandler {
	return &DragHandler{coordinator: coordinator, store: store}
}

type DragStartRequest struct {
	Dragged dragdrop.WireRef `json:"dragged"`
}

// DragEndRequest leaves Over empty for a drop outside every target.
type DragEndRequest struct {
	Dragged dragdrop.WireRef  `json:"dragged"`
	Over    *dragdrop.WireRef `json:"over"`
}

type DragStateResponse struct {
	ActiveID   *dragdrop.WireRef `json:"activeId"`
	ActiveTask *kanban.Task      `json:"activeTask"`
}

type IntentResponse struct {
	Type    string          `json:"type"`
	Details dragdrop.Intent `json:"details"`
}

type DragEndResponse struct {
	Intent  IntentResponse `json:"intent"`
	Applied bool           `json:"applied"`
	Board   kanban.Board   `json:"board"`
}

func stateResponse(s dragdrop.State) DragStateResponse {
	return DragStateResponse{ActiveID: dragdrop.ToWire(s.ActiveID), ActiveTask: s.ActiveTask}
}

func (h *DragHandler) Start(c *gin.Context) {
	var req DragStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	dragged, err := req.Dragged.Ref()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.coordinator.Start(dragdrop.DragStart{Dragged: dragged})
	c.JSON(http.StatusOK, stateResponse(h.coordinator.State()))
}

func (h *DragHandler) End(c *gin.Context) {
	var req DragEndRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	ev := dragdrop.DragEnd{}
	var err error
	if ev.Dragged, err = req.Dragged.Ref(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Over != nil {
		if ev.Over, err = req.Over.Ref(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	res := h.coordinator.End(ev)
	log.WithFields(log.Fields{"op": res.Intent.Name(), "dragged": ev.Dragged, "applied": res.Applied}).Debug("drag finished")

	c.JSON(http.StatusOK, DragEndResponse{
		Intent:  IntentResponse{Type: res.Intent.Name(), Details: res.Intent},
		Applied: res.Applied,
		Board:   h.store.Board(),
	})
}

func (h *DragHandler) Cancel(c *gin.Context) {
	h.coordinator.Cancel()
	c.JSON(http.StatusOK, stateResponse(h.coordinator.State()))
}

func (h *DragHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, stateResponse(h.coordinator.State()))
}
