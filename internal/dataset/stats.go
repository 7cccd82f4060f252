package dataset

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// DatasetStats resume el dataset limpio para los banners de consola
type DatasetStats struct {
	Recetas          int
	Atributos        int
	RatingPromedio   float64
	CaloriasPromedio float64
	FlagsPorReceta   float64
}

// GenerateStats calcula las estadísticas descriptivas del dataset limpio
func GenerateStats(d *Dataset) DatasetStats {
	ratings := make([]float64, len(d.Recetas))
	calorias := make([]float64, len(d.Recetas))
	totalFlags := 0.0
	for i := range d.Recetas {
		ratings[i] = d.Recetas[i].Rating
		calorias[i] = d.Recetas[i].Original.Calorias
		for _, f := range d.Recetas[i].Flags {
			totalFlags += f
		}
	}

	s := DatasetStats{
		Recetas:        len(d.Recetas),
		Atributos:      len(d.Atributos),
		RatingPromedio: stat.Mean(ratings, nil),
	}
	if len(calorias) > 0 {
		s.CaloriasPromedio = stat.Mean(calorias, nil)
		s.FlagsPorReceta = totalFlags / float64(len(d.Recetas))
	}
	return s
}

// PrintStats imprime el resumen del dataset y del reporte de limpieza
func PrintStats(d *Dataset) {
	s := GenerateStats(d)
	r := d.Limpieza

	fmt.Printf("📊 Filas originales: %d\n", r.FilasTotales)
	fmt.Printf("📊 Filas duplicadas descartadas: %d\n", r.FilasDuplicadas)
	fmt.Printf("📊 Filas incompletas descartadas: %d\n", r.FilasIncompletas)
	fmt.Printf("📊 Títulos repetidos descartados: %d\n", r.TitulosDuplicados)
	if len(r.ColumnasEliminadas) > 0 {
		fmt.Printf("📊 Columnas eliminadas: %v\n", r.ColumnasEliminadas)
	}
	fmt.Printf("📊 Recetas limpias: %d\n", s.Recetas)
	fmt.Printf("📊 Atributos binarios: %d\n", s.Atributos)
	fmt.Printf("📊 Rating promedio: %.2f\n", s.RatingPromedio)
	fmt.Printf("📊 Calorías promedio: %.1f\n", s.CaloriasPromedio)
	fmt.Printf("📊 Flags activos por receta: %.1f\n", s.FlagsPorReceta)
}
