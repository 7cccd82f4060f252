package health

import (
	"context"
	"net/http"
	"time"

	"sazon/internal/plattform"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Status es la respuesta del healthcheck.
type Status struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Services  map[string]interface{} `json:"services"`
}

type Service interface {
	Check(ctx context.Context) Status
}

type healthService struct {
	mongoClient *plattform.MongoService // opcional
	rdb         *redis.Client           // opcional
	recetas     int
}

// NewService arma el healthcheck. Mongo y Redis son dependencias opcionales
// del servidor; cuando no están configuradas se reportan como deshabilitadas.
func NewService(mongoClient *plattform.MongoService, rdb *redis.Client, recetas int) Service {
	return &healthService{
		mongoClient: mongoClient,
		rdb:         rdb,
		recetas:     recetas,
	}
}

func (s *healthService) Check(ctx context.Context) Status {
	services := make(map[string]interface{})
	overallStatus := "ok"

	if s.mongoClient != nil {
		mongoStatus := "ok"
		if err := s.mongoClient.Ping(ctx); err != nil {
			mongoStatus = "down"
			overallStatus = "degraded"
		}
		services["mongodb"] = map[string]string{"status": mongoStatus}
	} else {
		services["mongodb"] = map[string]string{"status": "disabled"}
	}

	if s.rdb != nil {
		redisStatus := "ok"
		if err := s.rdb.Ping(ctx).Err(); err != nil {
			redisStatus = "down"
			overallStatus = "degraded"
		}
		services["redis"] = map[string]string{"status": redisStatus}
	} else {
		services["redis"] = map[string]string{"status": "disabled"}
	}

	services["motor"] = map[string]interface{}{
		"status":  "ok",
		"recetas": s.recetas,
	}

	return Status{
		Status:    overallStatus,
		Timestamp: time.Now(),
		Services:  services,
	}
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(g *gin.RouterGroup) {
	g.GET("/health", h.HealthCheck)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	status := h.svc.Check(c.Request.Context())
	httpStatus := http.StatusOK
	if status.Status != "ok" {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, status)
}
