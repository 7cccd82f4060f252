package clusterreport

import (
	"errors"
	"net/http"
	"strconv"

	"sazon/internal/cluster"

	"github.com/gin-gonic/gin"
)

// Handler expone el endpoint de asignaciones de cluster.
type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("", h.Asignaciones)
}

func (h *Handler) Asignaciones(c *gin.Context) {
	metodo := c.DefaultQuery("metodo", "complete")
	k, err := strconv.Atoi(c.DefaultQuery("k", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "k inválido"})
		return
	}

	asignaciones, err := h.svc.Asignaciones(metodo, k)
	if err != nil {
		switch {
		case errors.Is(err, cluster.ErrMetodoInvalido), errors.Is(err, cluster.ErrKInvalido):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error al calcular clusters"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"metodo":       metodo,
		"k":            k,
		"asignaciones": asignaciones,
	})
}
