package httpserver

import (
	"context"
	"log"
	"os"
	"time"

	"sazon/internal/auth"
	"sazon/internal/clusterreport"
	"sazon/internal/health"
	"sazon/internal/monitoring"
	"sazon/internal/plattform"
	"sazon/internal/recommend"
	"sazon/internal/similarity"
	"sazon/pkg/styles"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Deps son las dependencias del router. Mongo y Redis son opcionales:
// sin Mongo la API queda abierta (sin auth), sin Redis no hay cache.
type Deps struct {
	Motor      *similarity.Motor
	Cluster    clusterreport.Service
	Mongo      *plattform.MongoService
	Redis      *redis.Client
	CacheTTL   time.Duration
	Artefactos []monitoring.ArtifactInfo
}

// RequestID asigna un id único a cada request para correlacionar logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.New().String()
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// NewRouter arma el router de la API con todos los endpoints del análisis.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()

	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(RequestID())

	// Health y monitoreo quedan fuera del grupo protegido
	healthSvc := health.NewService(deps.Mongo, deps.Redis, len(deps.Motor.Dataset().Recetas))
	health.NewHandler(healthSvc).RegisterRoutes(r.Group("/"))

	api := r.Group("/api")

	monSvc := monitoring.NewService(deps.Artefactos)
	monitoring.NewHandler(monSvc).RegisterRoutes(api)

	// Auth solo si hay MongoDB configurado
	if deps.Mongo != nil {
		dbName := os.Getenv("MONGO_DB_NAME")
		if dbName == "" {
			dbName = "sazon"
		}
		repo := auth.NewMongoRepository(deps.Mongo.GetCollection(dbName, "users"))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Print(styles.SprintfS("warn", "[HTTP] No se pudo crear el índice de usuarios: %v", err))
		}
		cancel()

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "default-secret-key" // default
		}
		tokenManager := auth.NewJWTTokenManager(secret)
		authSvc := auth.NewService(repo, tokenManager)
		auth.NewHandler(authSvc).RegisterRoutes(r.Group("/"))

		api.Use(auth.AuthMiddleware(tokenManager))
	} else {
		log.Print(styles.SprintfS("warn", "[HTTP] MongoDB no configurado: API sin autenticación"))
	}

	recSvc := recommend.NewService(deps.Motor, deps.Redis, deps.CacheTTL)
	recommend.NewHandler(recSvc).RegisterRoutes(api.Group("/recomendar"))

	clusterreport.NewHandler(deps.Cluster).RegisterRoutes(api.Group("/cluster"))

	return r
}

// Run levanta el servidor en la dirección indicada.
func Run(r *gin.Engine, addr string) error {
	log.Print(styles.SprintfS("info", "[HTTP] Escuchando en %s", addr))
	return r.Run(addr)
}
