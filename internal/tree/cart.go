package tree

import (
	"fmt"
	"sort"
)

// Config son los hiperparámetros del árbol CART
type Config struct {
	ProfundidadMax int
	MinMuestras    int
}

// Nodo es un nodo del árbol. Campos exportados para la persistencia gob.
type Nodo struct {
	Hoja    bool
	Columna int
	Umbral  float64
	Izq     *Nodo
	Der     *Nodo
	Probs   []float64 // distribución de clases del nodo
}

// Arbol es un clasificador CART entrenado. Inmutable después de Entrenar;
// solo se usa para predecir y reportar.
type Arbol struct {
	Raiz         *Nodo
	Clases       []string
	Columnas     []string
	Importancias []float64 // reducción de gini acumulada por columna
}

// gini calcula la impureza de un vector de conteos por clase
func gini(conteos []int, total int) float64 {
	if total == 0 {
		return 0
	}
	g := 1.0
	for _, c := range conteos {
		p := float64(c) / float64(total)
		g -= p * p
	}
	return g
}

// Entrenar ajusta un árbol CART con particiones binarias recursivas y
// criterio gini. Las importancias se acumulan durante la construcción.
func Entrenar(X [][]float64, y []int, columnas, clases []string, cfg Config) (*Arbol, error) {
	if len(X) == 0 || len(X) != len(y) {
		return nil, fmt.Errorf("datos de entrenamiento inconsistentes: %d filas, %d targets", len(X), len(y))
	}
	if len(X[0]) != len(columnas) {
		return nil, fmt.Errorf("se esperaban %d columnas, hay %d", len(columnas), len(X[0]))
	}
	if cfg.ProfundidadMax <= 0 {
		cfg.ProfundidadMax = 10
	}
	if cfg.MinMuestras <= 1 {
		cfg.MinMuestras = 2
	}

	a := &Arbol{
		Clases:       clases,
		Columnas:     columnas,
		Importancias: make([]float64, len(columnas)),
	}

	idx := make([]int, len(y))
	for i := range idx {
		idx[i] = i
	}
	a.Raiz = a.construir(X, y, idx, 0, cfg, len(y))
	return a, nil
}

func (a *Arbol) hoja(y []int, idx []int) *Nodo {
	conteos := make([]int, len(a.Clases))
	for _, i := range idx {
		conteos[y[i]]++
	}
	probs := make([]float64, len(a.Clases))
	for c, n := range conteos {
		probs[c] = float64(n) / float64(len(idx))
	}
	return &Nodo{Hoja: true, Probs: probs}
}

func (a *Arbol) construir(X [][]float64, y []int, idx []int, prof int, cfg Config, total int) *Nodo {
	conteos := make([]int, len(a.Clases))
	for _, i := range idx {
		conteos[y[i]]++
	}
	puro := false
	for _, c := range conteos {
		if c == len(idx) {
			puro = true
			break
		}
	}
	if puro || prof >= cfg.ProfundidadMax || len(idx) < cfg.MinMuestras {
		return a.hoja(y, idx)
	}

	giniPadre := gini(conteos, len(idx))
	mejorCol, mejorUmbral := -1, 0.0
	mejorGanancia := 0.0
	var mejorIzq, mejorDer []int

	for col := 0; col < len(a.Columnas); col++ {
		// Umbrales candidatos: puntos medios entre valores únicos
		valores := make([]float64, 0, len(idx))
		for _, i := range idx {
			valores = append(valores, X[i][col])
		}
		sort.Float64s(valores)
		unicos := valores[:0]
		for i, v := range valores {
			if i == 0 || v != unicos[len(unicos)-1] {
				unicos = append(unicos, v)
			}
		}
		if len(unicos) < 2 {
			continue
		}

		for u := 0; u < len(unicos)-1; u++ {
			umbral := (unicos[u] + unicos[u+1]) / 2

			var izq, der []int
			ci := make([]int, len(a.Clases))
			cd := make([]int, len(a.Clases))
			for _, i := range idx {
				if X[i][col] <= umbral {
					izq = append(izq, i)
					ci[y[i]]++
				} else {
					der = append(der, i)
					cd[y[i]]++
				}
			}
			if len(izq) == 0 || len(der) == 0 {
				continue
			}

			pi := float64(len(izq)) / float64(len(idx))
			pd := float64(len(der)) / float64(len(idx))
			ganancia := giniPadre - pi*gini(ci, len(izq)) - pd*gini(cd, len(der))
			if ganancia > mejorGanancia {
				mejorGanancia = ganancia
				mejorCol = col
				mejorUmbral = umbral
				mejorIzq, mejorDer = izq, der
			}
		}
	}

	if mejorCol < 0 || mejorGanancia <= 0 {
		return a.hoja(y, idx)
	}

	// Importancia ponderada por la fracción de muestras del nodo
	a.Importancias[mejorCol] += mejorGanancia * float64(len(idx)) / float64(total)

	return &Nodo{
		Columna: mejorCol,
		Umbral:  mejorUmbral,
		Izq:     a.construir(X, y, mejorIzq, prof+1, cfg, total),
		Der:     a.construir(X, y, mejorDer, prof+1, cfg, total),
	}
}

// Probabilidades devuelve la distribución de clases predicha para un ejemplo
func (a *Arbol) Probabilidades(x []float64) []float64 {
	n := a.Raiz
	for !n.Hoja {
		if x[n.Columna] <= n.Umbral {
			n = n.Izq
		} else {
			n = n.Der
		}
	}
	return n.Probs
}

// Predecir devuelve la clase más probable para un ejemplo
func (a *Arbol) Predecir(x []float64) int {
	probs := a.Probabilidades(x)
	mejor := 0
	for c := 1; c < len(probs); c++ {
		if probs[c] > probs[mejor] {
			mejor = c
		}
	}
	return mejor
}
