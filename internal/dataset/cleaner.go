package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// esFaltante reconoce los marcadores de valor ausente del dataset crudo
func esFaltante(v string) bool {
	s := strings.TrimSpace(v)
	return s == "" || s == "NA" || s == "NaN"
}

// findColumnIndices arma el mapa nombre -> índice del header
func findColumnIndices(header []string) map[string]int {
	columnMap := make(map[string]int, len(header))
	for i, col := range header {
		columnMap[strings.TrimSpace(col)] = i
	}
	return columnMap
}

// Limpiar aplica la limpieza determinística sobre las filas crudas:
// elimina filas duplicadas, filas con valores faltantes, columnas sin valor
// informativo y títulos repetidos; luego reescala la nutrición a [0,1].
// Los descartes se contabilizan en el reporte, no son errores.
func Limpiar(header []string, filas [][]string) (*Dataset, error) {
	columnMap := findColumnIndices(header)

	fijas := []string{ColTitulo, ColRating, ColCalorias, ColProteina, ColGrasa, ColSodio}
	for _, col := range fijas {
		if _, ok := columnMap[col]; !ok {
			return nil, fmt.Errorf("columna requerida no encontrada: %s", col)
		}
	}

	descartadas := make(map[string]bool, len(ColumnasDescartadas))
	for _, col := range ColumnasDescartadas {
		descartadas[col] = true
	}
	esFija := make(map[string]bool, len(fijas))
	for _, col := range fijas {
		esFija[col] = true
	}

	// Atributos binarios: todo lo que no es columna fija ni descartada,
	// en el orden del header
	var atributos []string
	var atributosIdx []int
	var eliminadas []string
	for i, col := range header {
		nombre := strings.TrimSpace(col)
		if esFija[nombre] {
			continue
		}
		if descartadas[nombre] {
			eliminadas = append(eliminadas, nombre)
			continue
		}
		atributos = append(atributos, nombre)
		atributosIdx = append(atributosIdx, i)
	}

	reporte := ReporteLimpieza{
		FilasTotales:       len(filas),
		ColumnasEliminadas: eliminadas,
	}

	idxTitulo := columnMap[ColTitulo]
	idxRating := columnMap[ColRating]
	idxNutri := []int{
		columnMap[ColCalorias],
		columnMap[ColProteina],
		columnMap[ColGrasa],
		columnMap[ColSodio],
	}

	vistas := make(map[string]bool, len(filas))
	titulos := make(map[string]bool, len(filas))
	recetas := make([]Receta, 0, len(filas))

	for _, fila := range filas {
		if len(fila) != len(header) {
			reporte.FilasIncompletas++
			continue
		}

		// Filas idénticas se descartan antes de parsear
		clave := strings.Join(fila, "\x1f")
		if vistas[clave] {
			reporte.FilasDuplicadas++
			continue
		}
		vistas[clave] = true

		titulo := strings.TrimSpace(fila[idxTitulo])
		if titulo == "" {
			reporte.FilasIncompletas++
			continue
		}

		valida := true
		if esFaltante(fila[idxRating]) {
			valida = false
		}
		for _, idx := range idxNutri {
			if esFaltante(fila[idx]) {
				valida = false
				break
			}
		}
		for _, idx := range atributosIdx {
			if esFaltante(fila[idx]) {
				valida = false
				break
			}
		}
		if !valida {
			reporte.FilasIncompletas++
			continue
		}

		rating, err := strconv.ParseFloat(strings.TrimSpace(fila[idxRating]), 64)
		if err != nil {
			reporte.FilasIncompletas++
			continue
		}

		var nutri [4]float64
		ok := true
		for i, idx := range idxNutri {
			v, err := strconv.ParseFloat(strings.TrimSpace(fila[idx]), 64)
			if err != nil || math.IsNaN(v) {
				ok = false
				break
			}
			nutri[i] = v
		}
		if !ok {
			reporte.FilasIncompletas++
			continue
		}

		flags := make([]float64, len(atributosIdx))
		for i, idx := range atributosIdx {
			v, err := strconv.ParseFloat(strings.TrimSpace(fila[idx]), 64)
			if err != nil {
				ok = false
				break
			}
			if v != 0 {
				v = 1
			}
			flags[i] = v
		}
		if !ok {
			reporte.FilasIncompletas++
			continue
		}

		// Títulos repetidos: gana la primera aparición
		if titulos[titulo] {
			reporte.TitulosDuplicados++
			continue
		}
		titulos[titulo] = true

		original := Nutricion{
			Calorias: nutri[0],
			Proteina: nutri[1],
			Grasa:    nutri[2],
			Sodio:    nutri[3],
		}
		recetas = append(recetas, Receta{
			Titulo:   titulo,
			Rating:   rating,
			Original: original,
			Flags:    flags,
		})
	}

	if len(recetas) == 0 {
		return nil, fmt.Errorf("ninguna fila sobrevivió a la limpieza")
	}

	reescalarNutricion(recetas)

	indice := make(map[string]int, len(recetas))
	for i := range recetas {
		indice[recetas[i].Titulo] = i
	}

	return &Dataset{
		Recetas:   recetas,
		Atributos: atributos,
		Limpieza:  reporte,
		indice:    indice,
	}, nil
}

// reescalarNutricion aplica min-max por columna nutricional sobre las filas
// sobrevivientes. Si una columna es constante, queda en 0.
func reescalarNutricion(recetas []Receta) {
	get := []func(*Nutricion) *float64{
		func(n *Nutricion) *float64 { return &n.Calorias },
		func(n *Nutricion) *float64 { return &n.Proteina },
		func(n *Nutricion) *float64 { return &n.Grasa },
		func(n *Nutricion) *float64 { return &n.Sodio },
	}

	for _, campo := range get {
		lo := math.Inf(1)
		hi := math.Inf(-1)
		for i := range recetas {
			v := *campo(&recetas[i].Original)
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		rango := hi - lo
		for i := range recetas {
			v := *campo(&recetas[i].Original)
			if rango > 0 {
				*campo(&recetas[i].Nutri) = (v - lo) / rango
			} else {
				*campo(&recetas[i].Nutri) = 0
			}
		}
	}
}
