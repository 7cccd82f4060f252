package similarity

import (
	"errors"
	"fmt"
	"sort"

	"sazon/internal/dataset"
)

// ErrRecetaNoEncontrada indica que el título consultado no existe en el
// dataset limpio. La búsqueda es exacta y case-sensitive, sin fuzzy matching.
var ErrRecetaNoEncontrada = errors.New("receta no encontrada")

// ErrIngredienteDesconocido indica un ingrediente requerido que no existe
// entre los atributos del dataset.
var ErrIngredienteDesconocido = errors.New("ingrediente desconocido")

// Filtros son los filtros opcionales de una consulta de recomendación.
// El cero de cada campo desactiva el filtro correspondiente
// (CaloriasMax <= 0 significa sin tope de calorías).
type Filtros struct {
	Ingredientes []string `json:"ingredientes,omitempty"`
	RatingMin    float64  `json:"rating_min,omitempty"`
	CaloriasMin  float64  `json:"calorias_min,omitempty"`
	CaloriasMax  float64  `json:"calorias_max,omitempty"`
}

// Vecino es una receta recomendada con su distancia a la consulta
type Vecino struct {
	Titulo    string  `json:"titulo"`
	Distancia float64 `json:"distancia"`
	Rating    float64 `json:"rating"`
	Calorias  float64 `json:"calorias"`
}

// Motor resuelve consultas de recomendación sobre la matriz precomputada
type Motor struct {
	ds     *dataset.Dataset
	matriz *Matriz
}

// NuevoMotor valida que la matriz corresponda al dataset y arma el motor
func NuevoMotor(ds *dataset.Dataset, matriz *Matriz) (*Motor, error) {
	if matriz.Dim() != len(ds.Recetas) {
		return nil, fmt.Errorf("la matriz tiene %d filas pero el dataset %d recetas",
			matriz.Dim(), len(ds.Recetas))
	}
	return &Motor{ds: ds, matriz: matriz}, nil
}

// Dataset devuelve el dataset limpio compartido
func (m *Motor) Dataset() *dataset.Dataset {
	return m.ds
}

// Recomendar devuelve las recetas ordenadas por distancia ascendente a la
// consulta, aplicando todos los filtros entregados. Los empates conservan el
// orden original de filas. topN <= 0 devuelve todos los resultados.
func (m *Motor) Recomendar(titulo string, f Filtros, topN int) ([]Vecino, error) {
	idx, ok := m.ds.IndicePorTitulo(titulo)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRecetaNoEncontrada, titulo)
	}

	// Resolver ingredientes requeridos por nombre antes de recorrer filas
	var requeridos []int
	for _, ing := range f.Ingredientes {
		j, ok := m.ds.IndiceAtributo(ing)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrIngredienteDesconocido, ing)
		}
		requeridos = append(requeridos, j)
	}

	fila := m.matriz.Fila(idx)
	vecinos := make([]Vecino, 0, len(fila))

	for i, r := range m.ds.Recetas {
		if i == idx {
			continue
		}
		if r.Rating < f.RatingMin {
			continue
		}
		cal := r.Original.Calorias
		if cal < f.CaloriasMin {
			continue
		}
		if f.CaloriasMax > 0 && cal > f.CaloriasMax {
			continue
		}
		tiene := true
		for _, j := range requeridos {
			if r.Flags[j] == 0 {
				tiene = false
				break
			}
		}
		if !tiene {
			continue
		}

		vecinos = append(vecinos, Vecino{
			Titulo:    r.Titulo,
			Distancia: fila[i],
			Rating:    r.Rating,
			Calorias:  cal,
		})
	}

	// Orden estable: los empates de distancia respetan el orden de filas
	sort.SliceStable(vecinos, func(a, b int) bool {
		return vecinos[a].Distancia < vecinos[b].Distancia
	})

	if topN > 0 && len(vecinos) > topN {
		vecinos = vecinos[:topN]
	}
	return vecinos, nil
}
