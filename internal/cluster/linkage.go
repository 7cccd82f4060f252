package cluster

import (
	"errors"
	"fmt"
	"math"

	"sazon/internal/similarity"
)

// Metodo es el criterio de enlace entre clusters
type Metodo string

const (
	MetodoComplete Metodo = "complete"
	MetodoAverage  Metodo = "average"
	MetodoWard     Metodo = "ward"
)

var (
	// ErrMetodoInvalido indica un método de enlace no soportado
	ErrMetodoInvalido = errors.New("método de enlace inválido")
	// ErrKInvalido indica un número de clusters fuera de rango
	ErrKInvalido = errors.New("número de clusters inválido")
)

// ParseMetodo valida el nombre del método de enlace
func ParseMetodo(s string) (Metodo, error) {
	switch Metodo(s) {
	case MetodoComplete, MetodoAverage, MetodoWard:
		return Metodo(s), nil
	}
	return "", fmt.Errorf("%w: %q (se espera complete, average o ward)", ErrMetodoInvalido, s)
}

// Fusion es un paso del clustering aglomerativo. A y B son ids de nodo:
// las hojas van de 0 a n-1 y el nodo creado en el paso t recibe el id n+t.
type Fusion struct {
	A         int
	B         int
	Distancia float64
}

// Dendrograma es el historial completo de fusiones para un método dado.
// Cortar con distintos k reutiliza el mismo dendrograma: cambiar k nunca
// obliga a recalcular distancias.
type Dendrograma struct {
	Metodo    Metodo
	Atributos []string
	Fusiones  []Fusion
}

// Construir corre el clustering aglomerativo sobre la matriz de distancias
// entre atributos (una fila por ingrediente/tag). La matriz se precomputa una
// sola vez fuera y se comparte entre los tres métodos de enlace: Construir
// nunca la recalcula ni la modifica, solo deriva el historial de fusiones con
// la actualización de Lance-Williams.
func Construir(atributos []string, matriz *similarity.Matriz, metodo Metodo) (*Dendrograma, error) {
	if _, err := ParseMetodo(string(metodo)); err != nil {
		return nil, err
	}
	n := len(atributos)
	if n == 0 || matriz == nil || matriz.Dim() != n {
		dim := 0
		if matriz != nil {
			dim = matriz.Dim()
		}
		return nil, fmt.Errorf("la matriz tiene %d filas pero hay %d atributos", dim, n)
	}

	// Copia de trabajo. Ward opera sobre distancias al cuadrado.
	w := make([][]float64, n)
	for i := 0; i < n; i++ {
		w[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			d := matriz.Dist(i, j)
			if metodo == MetodoWard {
				d = d * d
			}
			w[i][j] = d
		}
	}

	activo := make([]bool, n)
	id := make([]int, n)
	tam := make([]float64, n)
	for i := 0; i < n; i++ {
		activo[i] = true
		id[i] = i
		tam[i] = 1
	}

	fusiones := make([]Fusion, 0, n-1)

	for paso := 0; paso < n-1; paso++ {
		// Par activo más cercano
		bi, bj := -1, -1
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if !activo[i] {
				continue
			}
			for j := i + 1; j < n; j++ {
				if !activo[j] {
					continue
				}
				if w[i][j] < best {
					best = w[i][j]
					bi, bj = i, j
				}
			}
		}

		dist := best
		if metodo == MetodoWard {
			dist = math.Sqrt(best)
		}
		fusiones = append(fusiones, Fusion{A: id[bi], B: id[bj], Distancia: dist})

		// Actualización de Lance-Williams: el slot bi pasa a representar
		// el cluster fusionado, bj se desactiva
		na, nb := tam[bi], tam[bj]
		for h := 0; h < n; h++ {
			if !activo[h] || h == bi || h == bj {
				continue
			}
			var nuevo float64
			switch metodo {
			case MetodoComplete:
				nuevo = math.Max(w[bi][h], w[bj][h])
			case MetodoAverage:
				nuevo = (na*w[bi][h] + nb*w[bj][h]) / (na + nb)
			case MetodoWard:
				nh := tam[h]
				nuevo = ((na+nh)*w[bi][h] + (nb+nh)*w[bj][h] - nh*w[bi][bj]) / (na + nb + nh)
			}
			w[bi][h] = nuevo
			w[h][bi] = nuevo
		}

		activo[bj] = false
		tam[bi] = na + nb
		id[bi] = n + paso
	}

	return &Dendrograma{
		Metodo:    metodo,
		Atributos: atributos,
		Fusiones:  fusiones,
	}, nil
}

// Cortar asigna cada atributo a uno de k clusters (ids 1..k) aplicando las
// primeras n-k fusiones del dendrograma. Rechaza k fuera de [1, n] sin
// computar nada.
func (d *Dendrograma) Cortar(k int) (map[string]int, error) {
	n := len(d.Atributos)
	if k <= 0 || k > n {
		return nil, fmt.Errorf("%w: k=%d (debe estar en [1, %d])", ErrKInvalido, k, n)
	}

	// Union-find sobre los ids de nodo del dendrograma
	padre := make([]int, n+len(d.Fusiones))
	for i := range padre {
		padre[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for padre[x] != x {
			padre[x] = padre[padre[x]]
			x = padre[x]
		}
		return x
	}

	for t := 0; t < n-k; t++ {
		f := d.Fusiones[t]
		nodo := n + t
		padre[find(f.A)] = nodo
		padre[find(f.B)] = nodo
	}

	// Etiquetas 1..k en orden de primera aparición por atributo
	etiquetas := make(map[int]int, k)
	asignacion := make(map[string]int, n)
	siguiente := 1
	for i, attr := range d.Atributos {
		raiz := find(i)
		etiqueta, ok := etiquetas[raiz]
		if !ok {
			etiqueta = siguiente
			etiquetas[raiz] = etiqueta
			siguiente++
		}
		asignacion[attr] = etiqueta
	}

	return asignacion, nil
}
