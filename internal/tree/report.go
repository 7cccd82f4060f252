package tree

import (
	"sazon/internal/dataset"
)

// ReporteCalorias entrena y evalúa el clasificador de buckets de calorías.
// Las calorías fuera de (0, 10000] quedan fuera del entrenamiento y se
// reportan como nota de calidad de datos.
func ReporteCalorias(ds *dataset.Dataset, cfg Config, propTrain float64, seed int64) (*Reporte, error) {
	X, y, columnas, excluidas := PrepararCalorias(ds)
	rep, err := entrenarYEvaluar("calorias", X, y, columnas, ClasesCalorias, cfg, propTrain, seed)
	if err != nil {
		return nil, err
	}
	rep.ExcluidasCalorias = excluidas
	return rep, nil
}

// ReporteVerano entrena y evalúa el clasificador binario del tag summer
func ReporteVerano(ds *dataset.Dataset, cfg Config, propTrain float64, seed int64) (*Reporte, error) {
	X, y, columnas, err := PrepararVerano(ds)
	if err != nil {
		return nil, err
	}
	return entrenarYEvaluar("verano", X, y, columnas, ClasesVerano, cfg, propTrain, seed)
}
