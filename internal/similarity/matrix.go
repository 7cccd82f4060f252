package similarity

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matriz es la matriz simétrica de distancias euclidianas entre los vectores
// binarios de atributos. Se construye una sola vez y después es de solo
// lectura, por lo que es segura para lectores concurrentes.
type Matriz struct {
	n     int
	datos *mat.SymDense
}

// ConstruirMatriz calcula la matriz N×N de distancias con un pool de workers.
// Cada worker toma filas completas: los pares (i,j) con j>i de una fila no se
// solapan con los de otra, así que no hace falta sincronizar las escrituras.
// buffer dimensiona el canal de trabajos; con buffer < 1 se usa workers*4.
func ConstruirMatriz(vectores [][]float64, workers, buffer int) (*Matriz, error) {
	n := len(vectores)
	if n == 0 {
		return nil, fmt.Errorf("no hay vectores para construir la matriz")
	}
	dim := len(vectores[0])
	for i, v := range vectores {
		if len(v) != dim {
			return nil, fmt.Errorf("vector %d con dimensión %d, se esperaba %d", i, len(v), dim)
		}
	}
	if workers < 1 {
		workers = 1
	}
	if buffer < 1 {
		buffer = workers * 4
	}

	backing := make([]float64, n*n)

	jobs := make(chan int, buffer)
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				vi := vectores[i]
				for j := i + 1; j < n; j++ {
					d := floats.Distance(vi, vectores[j], 2)
					backing[i*n+j] = d
					backing[j*n+i] = d
				}
			}
		}()
	}

	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return &Matriz{n: n, datos: mat.NewSymDense(n, backing)}, nil
}

// Dim devuelve el número de recetas de la matriz
func (m *Matriz) Dim() int {
	return m.n
}

// Dist devuelve la distancia entre las recetas i y j
func (m *Matriz) Dist(i, j int) float64 {
	return m.datos.At(i, j)
}

// Fila devuelve una copia de la fila i (distancias de i a todas las recetas)
func (m *Matriz) Fila(i int) []float64 {
	out := make([]float64, m.n)
	for j := 0; j < m.n; j++ {
		out[j] = m.datos.At(i, j)
	}
	return out
}

type matrizGob struct {
	N     int
	Datos []float64
}

// GobEncode serializa la matriz para los artefactos de persistencia.
// mat.SymDense no es codificable por gob directamente, así que se vuelca
// el backing crudo.
func (m *Matriz) GobEncode() ([]byte, error) {
	raw := m.datos.RawSymmetric()
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(matrizGob{N: m.n, Datos: raw.Data}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode reconstruye la matriz desde un artefacto
func (m *Matriz) GobDecode(data []byte) error {
	var g matrizGob
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&g); err != nil {
		return err
	}
	if g.N <= 0 || len(g.Datos) != g.N*g.N {
		return fmt.Errorf("artefacto de matriz corrupto: n=%d datos=%d", g.N, len(g.Datos))
	}
	m.n = g.N
	m.datos = mat.NewSymDense(g.N, g.Datos)
	return nil
}
