package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"sazon/internal/artifacts"
	"sazon/internal/config"
	"sazon/internal/tree"
	"sazon/pkg/styles"
)

// runArbol entrena (o carga) un clasificador CART y reporta sus métricas
func runArbol(cfg config.SystemConfig, args []string) {
	fs := flag.NewFlagSet("arbol", flag.ExitOnError)
	objetivo := fs.String("objetivo", "calorias", "objetivo del clasificador: calorias | verano")
	fs.Parse(args)

	fmt.Printf("╔════════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║   CLASIFICADOR CART                                       ║\n")
	fmt.Printf("║   Split estratificado 75/25 + métricas de confusión       ║\n")
	fmt.Printf("╚════════════════════════════════════════════════════════════╝\n\n")

	if *objetivo != "calorias" && *objetivo != "verano" {
		styles.PrintFS("error", "❌ Objetivo desconocido: %s (se espera calorias o verano)", *objetivo)
		os.Exit(1)
	}

	ds, hash, err := cargarDataset(cfg)
	if err != nil {
		styles.PrintFS("error", "❌ Error cargando dataset: %v", err)
		os.Exit(1)
	}

	treeCfg := tree.Config{
		ProfundidadMax: cfg.Arbol.ProfundidadMax,
		MinMuestras:    cfg.Arbol.MinMuestras,
	}

	ruta := artifacts.RutaArbol(cfg.Rutas.PersistenciaDir, hash, *objetivo)
	inicio := time.Now()
	reporte, cacheado, err := artifacts.CargarOConstruir(ruta, func() (*tree.Reporte, error) {
		if *objetivo == "calorias" {
			return tree.ReporteCalorias(ds, treeCfg, cfg.Arbol.ProporcionTrain, cfg.Arbol.Seed)
		}
		return tree.ReporteVerano(ds, treeCfg, cfg.Arbol.ProporcionTrain, cfg.Arbol.Seed)
	})
	if err != nil {
		styles.PrintFS("error", "❌ Error entrenando árbol: %v", err)
		os.Exit(1)
	}

	if cacheado {
		fmt.Printf("📁 Reporte cargado desde el cache de artefactos\n")
	} else {
		fmt.Printf("✅ Árbol entrenado en %.2f segundos\n", time.Since(inicio).Seconds())
	}

	fmt.Printf("\n============================================================\n")
	fmt.Printf("OBJETIVO: %s\n", reporte.Objetivo)
	fmt.Printf("============================================================\n")
	fmt.Printf("📊 Train: %d filas | Test: %d filas\n", reporte.TrainFilas, reporte.TestFilas)
	if reporte.ExcluidasCalorias > 0 {
		styles.PrintFS("warn", "⚠️  Nota de calidad: %d filas con calorías fuera de (0, 10000] excluidas",
			reporte.ExcluidasCalorias)
	}

	fmt.Printf("\n🎯 MÉTRICAS (hold-out):\n")
	fmt.Printf("   - Accuracy: %.4f\n", reporte.Eval.Accuracy)
	fmt.Printf("   - Kappa:    %.4f\n", reporte.Eval.Kappa)

	fmt.Printf("\n📋 MATRIZ DE CONFUSIÓN (filas = real, columnas = predicho):\n")
	fmt.Printf("   %14s", "")
	for _, c := range reporte.Arbol.Clases {
		fmt.Printf(" %10s", c)
	}
	fmt.Println()
	for i, fila := range reporte.Eval.Confusion {
		fmt.Printf("   %14s", reporte.Arbol.Clases[i])
		for _, v := range fila {
			fmt.Printf(" %10d", v)
		}
		fmt.Println()
	}

	importancias := reporte.Arbol.ImportanciasOrdenadas()
	fmt.Printf("\n🌳 IMPORTANCIA DE VARIABLES (top 15):\n")
	max := len(importancias)
	if max > 15 {
		max = 15
	}
	for i := 0; i < max; i++ {
		fmt.Printf("  %2d. %-30s %.5f\n", i+1, importancias[i].Columna, importancias[i].Valor)
	}
}
