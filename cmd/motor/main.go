package main

import (
	"fmt"
	"os"

	"sazon/internal/artifacts"
	"sazon/internal/config"
	"sazon/internal/dataset"
	"sazon/internal/similarity"

	"sazon/pkg/styles"
)

const configFile = "config.json"

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("Uso: go run ./cmd/motor <comando> [flags]\n")
		fmt.Printf("Comandos disponibles:\n")
		fmt.Printf("  cleaner    - Limpiar el dataset y mostrar el reporte\n")
		fmt.Printf("  matriz     - Precomputar la matriz de distancias\n")
		fmt.Printf("  recomendar - Buscar recetas similares a una consulta\n")
		fmt.Printf("  cluster    - Agrupar ingredientes (clustering jerárquico)\n")
		fmt.Printf("  arbol      - Entrenar y evaluar un clasificador CART\n")
		return
	}

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		styles.PrintFS("error", "❌ Error cargando configuración: %v", err)
		cfg = config.DefaultConfig()
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "cleaner":
		runCleaner(cfg)
	case "matriz":
		runMatriz(cfg)
	case "recomendar":
		runRecomendar(cfg, args)
	case "cluster":
		runCluster(cfg, args)
	case "arbol":
		runArbol(cfg, args)
	default:
		fmt.Printf("Comando desconocido: %s\n", command)
		fmt.Printf("Comandos disponibles: cleaner, matriz, recomendar, cluster, arbol\n")
		os.Exit(1)
	}
}

// cargarDataset carga y limpia el CSV configurado, y calcula su hash de
// contenido para los artefactos derivados.
func cargarDataset(cfg config.SystemConfig) (*dataset.Dataset, string, error) {
	hash, err := artifacts.HashDataset(cfg.Rutas.DatasetCSV)
	if err != nil {
		return nil, "", err
	}

	ds, err := dataset.Cargar(cfg.Rutas.DatasetCSV)
	if err != nil {
		return nil, "", err
	}
	return ds, hash, nil
}

// obtenerMatriz carga la matriz precomputada o la construye y persiste.
func obtenerMatriz(cfg config.SystemConfig, ds *dataset.Dataset, hash string) (*similarity.Matriz, bool, error) {
	ruta := artifacts.RutaMatriz(cfg.Rutas.PersistenciaDir, hash)
	return artifacts.CargarOConstruir(ruta, func() (*similarity.Matriz, error) {
		return similarity.ConstruirMatriz(ds.Vectores(),
			cfg.Concurrency.MatrixWorkers, cfg.Concurrency.BufferSize)
	})
}
