package recommend

import (
	"errors"
	"net/http"

	"sazon/internal/similarity"

	"github.com/gin-gonic/gin"
)

// Handler expone el endpoint de recomendaciones.
type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registra POST "" para que al montar el grupo /recomendar
// quede expuesto POST /recomendar
func (h *Handler) RegisterRoutes(g *gin.RouterGroup) {
	g.POST("", h.Recomendar)
}

type recomendarRequest struct {
	Titulo  string             `json:"titulo" binding:"required"`
	Filtros similarity.Filtros `json:"filtros"`
	TopN    int                `json:"top_n"`
}

func (h *Handler) Recomendar(c *gin.Context) {
	var req recomendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payload inválido"})
		return
	}
	if req.TopN <= 0 {
		req.TopN = 10
	}

	vecinos, cacheado, err := h.svc.Recomendar(c.Request.Context(), req.Titulo, req.Filtros, req.TopN)
	if err != nil {
		switch {
		case errors.Is(err, similarity.ErrRecetaNoEncontrada):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, similarity.ErrIngredienteDesconocido):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error al calcular recomendaciones"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"titulo":          req.Titulo,
		"recomendaciones": vecinos,
		"cache":           cacheado,
	})
}
