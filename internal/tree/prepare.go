package tree

import (
	"fmt"

	"sazon/internal/dataset"
)

// Clases del bucket de calorías (escala original del dataset)
var ClasesCalorias = []string{"baja", "media", "alta"}

// ClasesVerano son las clases del clasificador binario del tag summer
var ClasesVerano = []string{"no_verano", "verano"}

// BucketCalorias asigna el bucket de calorías. Valores fuera de (0, 10000]
// se consideran errores de datos y quedan excluidos del entrenamiento
// (ok = false); no son fatales, solo se contabilizan.
func BucketCalorias(cal float64) (int, bool) {
	if cal <= 0 || cal > 10000 {
		return 0, false
	}
	switch {
	case cal < 250:
		return 0, true // baja
	case cal <= 500:
		return 1, true // media
	default:
		return 2, true // alta
	}
}

// PrepararCalorias arma la matriz de features y el target de buckets de
// calorías. Para evitar fuga de información se excluyen los demás campos
// nutricionales; quedan el rating y los atributos binarios.
func PrepararCalorias(ds *dataset.Dataset) (X [][]float64, y []int, columnas []string, excluidas int) {
	columnas = make([]string, 0, len(ds.Atributos)+1)
	columnas = append(columnas, dataset.ColRating)
	columnas = append(columnas, ds.Atributos...)

	for i := range ds.Recetas {
		r := &ds.Recetas[i]
		clase, ok := BucketCalorias(r.Original.Calorias)
		if !ok {
			excluidas++
			continue
		}
		fila := make([]float64, 0, len(columnas))
		fila = append(fila, r.Rating)
		fila = append(fila, r.Flags...)
		X = append(X, fila)
		y = append(y, clase)
	}
	return X, y, columnas, excluidas
}

// PrepararVerano arma la matriz de features y el target binario del tag
// summer. Los otros tags de estación se excluyen por nombre; la nutrición
// reescalada y el rating sí participan.
func PrepararVerano(ds *dataset.Dataset) (X [][]float64, y []int, columnas []string, err error) {
	idxVerano, ok := ds.IndiceAtributo("summer")
	if !ok {
		return nil, nil, nil, fmt.Errorf("el dataset no tiene el atributo summer")
	}

	estacion := make(map[string]bool, len(dataset.TagsEstacion))
	for _, t := range dataset.TagsEstacion {
		estacion[t] = true
	}

	var atributosIdx []int
	columnas = []string{dataset.ColRating, dataset.ColCalorias, dataset.ColProteina, dataset.ColGrasa, dataset.ColSodio}
	for j, a := range ds.Atributos {
		if estacion[a] {
			continue
		}
		columnas = append(columnas, a)
		atributosIdx = append(atributosIdx, j)
	}

	for i := range ds.Recetas {
		r := &ds.Recetas[i]
		fila := make([]float64, 0, len(columnas))
		fila = append(fila, r.Rating, r.Nutri.Calorias, r.Nutri.Proteina, r.Nutri.Grasa, r.Nutri.Sodio)
		for _, j := range atributosIdx {
			fila = append(fila, r.Flags[j])
		}
		X = append(X, fila)
		y = append(y, int(r.Flags[idxVerano]))
	}
	return X, y, columnas, nil
}
