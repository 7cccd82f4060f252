package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"sazon/internal/artifacts"
	"sazon/internal/cache"
	"sazon/internal/clusterreport"
	"sazon/internal/config"
	"sazon/internal/dataset"
	"sazon/internal/monitoring"
	"sazon/internal/plattform"
	httpserver "sazon/internal/server/http"
	"sazon/internal/similarity"
	"sazon/pkg/styles"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

const (
	defaultMongoRetryInterval = 15 * time.Second
	defaultMongoMaxRetries    = 4
)

func main() {
	styles.Titulo("SAZÓN · API DE ANÁLISIS DE RECETAS")

	// .env es opcional; las variables ya exportadas tienen prioridad
	if err := godotenv.Load(); err == nil {
		log.Print(styles.SprintfS("info", "[API] Variables cargadas desde .env"))
	}

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		log.Fatal(styles.SprintfS("error", "[API] Error cargando configuración: %v", err))
	}

	// El dataset y la matriz se cargan una sola vez al arranque; después
	// son artefactos de solo lectura compartidos por todos los requests
	hash, err := artifacts.HashDataset(cfg.Rutas.DatasetCSV)
	if err != nil {
		log.Fatal(styles.SprintfS("error", "[API] Error calculando hash del dataset: %v", err))
	}

	ds, err := dataset.Cargar(cfg.Rutas.DatasetCSV)
	if err != nil {
		log.Fatal(styles.SprintfS("error", "[API] Error cargando dataset: %v", err))
	}
	log.Print(styles.SprintfS("success", "[API] Dataset limpio: %d recetas, %d atributos",
		len(ds.Recetas), len(ds.Atributos)))

	rutaMatriz := artifacts.RutaMatriz(cfg.Rutas.PersistenciaDir, hash)
	matriz, cacheada, err := artifacts.CargarOConstruir(rutaMatriz, func() (*similarity.Matriz, error) {
		return similarity.ConstruirMatriz(ds.Vectores(),
			cfg.Concurrency.MatrixWorkers, cfg.Concurrency.BufferSize)
	})
	if err != nil {
		log.Fatal(styles.SprintfS("error", "[API] Error obteniendo matriz: %v", err))
	}
	if cacheada {
		log.Print(styles.SprintfS("info", "[API] Matriz cargada desde el cache de artefactos"))
	}

	motor, err := similarity.NuevoMotor(ds, matriz)
	if err != nil {
		log.Fatal(styles.SprintfS("error", "[API] %v", err))
	}

	clusterSvc := clusterreport.NewService(ds, cfg.Rutas.PersistenciaDir, hash,
		cfg.Concurrency.MatrixWorkers, cfg.Concurrency.BufferSize)

	ctx := context.Background()
	mongoClient := connectMongoWithRetry(ctx)
	rdb := connectRedis(ctx)

	router := httpserver.NewRouter(httpserver.Deps{
		Motor:    motor,
		Cluster:  clusterSvc,
		Mongo:    mongoClient,
		Redis:    rdb,
		CacheTTL: time.Duration(cfg.API.CacheTTL) * time.Second,
		Artefactos: []monitoring.ArtifactInfo{
			{Nombre: "matriz_distancias", Cacheado: cacheada, Dimension: matriz.Dim()},
		},
	})

	if err := httpserver.Run(router, cfg.API.Addr); err != nil {
		log.Fatal(styles.SprintfS("error", "[API] Error: %v", err))
	}
}

// connectMongoWithRetry intenta conectar a MongoDB si hay URI configurada.
// La API puede arrancar sin Mongo (queda sin auth).
func connectMongoWithRetry(ctx context.Context) *plattform.MongoService {
	if os.Getenv("MONGODB_URI") == "" {
		return nil
	}

	interval := envDuration("MONGO_RETRY_INTERVAL_SECONDS", defaultMongoRetryInterval)
	maxRetries := envInt("MONGO_MAX_RETRIES", defaultMongoMaxRetries)

	for attempt := 1; ; attempt++ {
		cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		svc, err := plattform.NewClient(cctx)
		cancel()
		if err == nil {
			log.Print(styles.SprintfS("success", "[API] Conectado a MongoDB"))
			return svc
		}

		log.Print(styles.SprintfS("warn", "[API] MongoDB intento %d/%d: %v", attempt, maxRetries, err))
		if attempt >= maxRetries {
			log.Print(styles.SprintfS("warn", "[API] Continuando sin MongoDB"))
			return nil
		}
		time.Sleep(interval)
	}
}

// connectRedis crea el cliente si hay REDIS_ADDR; un ping fallido
// desactiva el cache sin tumbar la API.
func connectRedis(ctx context.Context) *redis.Client {
	if os.Getenv("REDIS_ADDR") == "" {
		return nil
	}

	rdb := cache.NewRedisClient()

	cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(cctx).Err(); err != nil {
		log.Print(styles.SprintfS("warn", "[API] Redis no disponible, cache desactivado: %v", err))
		return nil
	}

	log.Print(styles.SprintfS("success", "[API] Conectado a Redis"))
	return rdb
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func envDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return def
}
