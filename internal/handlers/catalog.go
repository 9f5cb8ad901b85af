package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getCatalog returns the whole static equipment catalog for database pages.
func (h *Handler) getCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"locations":     h.cat.Locations,
		"solar_arrays":  h.cat.SolarArrays,
		"batteries":     h.cat.Batteries,
		"ev_chargers":   h.cat.EVChargers,
		"buildings":     h.cat.Buildings,
		"lab_equipment": h.cat.LabEquipment,
	})
}

// getEquipment looks one record up by id across every catalog section and
// returns it together with its location.
func (h *Handler) getEquipment(c *gin.Context) {
	id := c.Param("id")

	respond := func(locationID string, record any) {
		loc, _ := h.cat.LocationByID(locationID)
		c.JSON(http.StatusOK, gin.H{
			"equipment": record,
			"location":  loc,
		})
	}

	for _, s := range h.cat.SolarArrays {
		if s.ID == id {
			respond(s.LocationID, s)
			return
		}
	}
	for _, b := range h.cat.Batteries {
		if b.ID == id {
			respond(b.LocationID, b)
			return
		}
	}
	for _, e := range h.cat.EVChargers {
		if e.ID == id {
			respond(e.LocationID, e)
			return
		}
	}
	for _, b := range h.cat.Buildings {
		if b.ID == id {
			respond(b.LocationID, b)
			return
		}
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "unknown equipment id"})
}
