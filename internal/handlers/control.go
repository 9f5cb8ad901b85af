package handlers

import (
	"net/http"
	"strconv"

	"campus_energy"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidStatus   = "invalid status: must be ON, STANDBY, OFF or MAINTENANCE"
	errInvalidBodyPref = "invalid body: "
	errChangeRejected  = "status change rejected"

	defaultHistoryDays = 7
)

// Request DTO for changing equipment status.
type statusRequest struct {
	Status campus_energy.EquipmentStatus `json:"status" binding:"required"` // ON | STANDBY | OFF | MAINTENANCE
	Reason string                        `json:"reason,omitempty"`
}

func (h *Handler) getStates(c *gin.Context) {
	states := h.services.States()
	c.JSON(http.StatusOK, gin.H{
		"count":  len(states),
		"states": states,
	})
}

// checkStatusChange is the pure conflict query; it never mutates anything.
func (h *Handler) checkStatusChange(c *gin.Context) {
	target := campus_energy.EquipmentStatus(c.Query("status"))
	if !target.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidStatus})
		return
	}
	c.JSON(http.StatusOK, h.services.IsChangeAllowed(c.Param("id"), target))
}

// changeStatus requests a transition. A rejected request distinguishes
// unknown equipment (404) from conflicts or an in-flight change (409).
func (h *Handler) changeStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidStatus})
		return
	}

	id := c.Param("id")
	if _, ok := h.services.States()[id]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown equipment id"})
		return
	}

	if ok := h.services.ChangeStatus(c.Request.Context(), id, req.Status, req.Reason); !ok {
		if h.log != nil {
			h.log.Infow("status_change_rejected", "equipment_id", id, "target", req.Status)
		}
		c.JSON(http.StatusConflict, gin.H{
			"error":    errChangeRejected,
			"decision": h.services.IsChangeAllowed(id, req.Status),
		})
		return
	}

	st := h.services.States()[id]
	c.JSON(http.StatusOK, gin.H{
		"status": "changed",
		"state":  st,
	})
}

func (h *Handler) getHistory(c *gin.Context) {
	days := defaultHistoryDays
	if qs := c.Query("days"); qs != "" {
		v, err := strconv.Atoi(qs)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'days'; must be a positive integer"})
			return
		}
		days = v
	}
	changes := h.services.History(c.Param("id"), days)
	c.JSON(http.StatusOK, gin.H{
		"count":   len(changes),
		"changes": changes,
	})
}

func (h *Handler) getAlerts(c *gin.Context) {
	alerts := h.services.Alerts()
	c.JSON(http.StatusOK, gin.H{
		"count":  len(alerts),
		"alerts": alerts,
	})
}

func (h *Handler) acknowledgeAlert(c *gin.Context) {
	if !h.services.AcknowledgeAlert(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown alert id"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "acknowledged"})
}
