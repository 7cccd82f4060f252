package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"sazon/internal/config"
	"sazon/internal/similarity"
	"sazon/pkg/styles"
)

// runMatriz precomputa la matriz de distancias y la deja persistida
func runMatriz(cfg config.SystemConfig) {
	fmt.Printf("╔════════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║   MATRIZ DE DISTANCIAS EUCLIDIANAS                        ║\n")
	fmt.Printf("║   Precomputación batch sobre los vectores binarios        ║\n")
	fmt.Printf("╚════════════════════════════════════════════════════════════╝\n\n")

	ds, hash, err := cargarDataset(cfg)
	if err != nil {
		styles.PrintFS("error", "❌ Error cargando dataset: %v", err)
		os.Exit(1)
	}
	fmt.Printf("📊 Recetas: %d | Atributos: %d | Hash: %s\n", len(ds.Recetas), len(ds.Atributos), hash)
	fmt.Printf("🔧 Usando %d workers\n\n", cfg.Concurrency.MatrixWorkers)

	inicio := time.Now()
	_, cacheada, err := obtenerMatriz(cfg, ds, hash)
	if err != nil {
		styles.PrintFS("error", "❌ Error construyendo matriz: %v", err)
		os.Exit(1)
	}

	if cacheada {
		styles.PrintFS("info", "📁 Matriz ya existía en el cache de artefactos")
	} else {
		styles.PrintFS("success", "✅ Matriz construida y persistida en %.2f segundos",
			time.Since(inicio).Seconds())
	}
}

// runRecomendar resuelve una consulta de similitud con filtros opcionales
func runRecomendar(cfg config.SystemConfig, args []string) {
	fs := flag.NewFlagSet("recomendar", flag.ExitOnError)
	titulo := fs.String("titulo", "", "título exacto de la receta de consulta (requerido)")
	ingredientes := fs.String("ingredientes", "", "ingredientes requeridos separados por coma")
	ratingMin := fs.Float64("rating_min", cfg.Motor.RatingMin, "rating mínimo (inclusive)")
	calMin := fs.Float64("cal_min", cfg.Motor.CaloriasMin, "calorías mínimas")
	calMax := fs.Float64("cal_max", cfg.Motor.CaloriasMax, "calorías máximas (0 = sin tope)")
	topN := fs.Int("top", cfg.Motor.TopN, "cantidad de resultados")
	fs.Parse(args)

	if *titulo == "" {
		styles.PrintFS("error", "❌ Falta -titulo")
		fs.Usage()
		os.Exit(1)
	}

	ds, hash, err := cargarDataset(cfg)
	if err != nil {
		styles.PrintFS("error", "❌ Error cargando dataset: %v", err)
		os.Exit(1)
	}

	matriz, cacheada, err := obtenerMatriz(cfg, ds, hash)
	if err != nil {
		styles.PrintFS("error", "❌ Error obteniendo matriz: %v", err)
		os.Exit(1)
	}
	if cacheada {
		fmt.Printf("📁 Matriz cargada desde el cache de artefactos\n")
	}

	motor, err := similarity.NuevoMotor(ds, matriz)
	if err != nil {
		styles.PrintFS("error", "❌ %v", err)
		os.Exit(1)
	}

	filtros := similarity.Filtros{
		RatingMin:   *ratingMin,
		CaloriasMin: *calMin,
		CaloriasMax: *calMax,
	}
	if *ingredientes != "" {
		for _, ing := range strings.Split(*ingredientes, ",") {
			filtros.Ingredientes = append(filtros.Ingredientes, strings.TrimSpace(ing))
		}
	}

	vecinos, err := motor.Recomendar(*titulo, filtros, *topN)
	if err != nil {
		styles.PrintFS("error", "❌ %v", err)
		os.Exit(1)
	}

	fmt.Printf("\n============================================================\n")
	fmt.Printf("CONSULTA: %s\n", *titulo)
	fmt.Printf("============================================================\n")

	if len(vecinos) == 0 {
		styles.PrintFS("warn", "⚠️  Ningún resultado pasó los filtros")
		return
	}

	fmt.Printf("\n🍽️  RECETAS SIMILARES:\n")
	for i, v := range vecinos {
		fmt.Printf("  %2d. %-50s | Distancia: %.4f | Rating: %.2f | Calorías: %.0f\n",
			i+1, v.Titulo, v.Distancia, v.Rating, v.Calorias)
	}
}
