package main

import (
	"fmt"
	"os"
	"time"

	"sazon/internal/config"
	"sazon/internal/dataset"
	"sazon/pkg/styles"
)

// runCleaner carga el CSV crudo, aplica la limpieza y muestra el reporte
func runCleaner(cfg config.SystemConfig) {
	fmt.Printf("╔════════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║   LIMPIADOR DEL DATASET DE RECETAS                        ║\n")
	fmt.Printf("║   Duplicados, faltantes, columnas y reescalado            ║\n")
	fmt.Printf("╚════════════════════════════════════════════════════════════╝\n\n")

	config.PrintConfig(cfg)

	fmt.Printf("\n🔄 Procesando archivo: %s\n", cfg.Rutas.DatasetCSV)

	inicio := time.Now()
	ds, err := dataset.Cargar(cfg.Rutas.DatasetCSV)
	if err != nil {
		styles.PrintFS("error", "❌ Error cargando dataset: %v", err)
		os.Exit(1)
	}

	fmt.Printf("\n✅ Limpieza completada en %.2f segundos\n\n", time.Since(inicio).Seconds())
	dataset.PrintStats(ds)
}
