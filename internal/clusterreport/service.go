package clusterreport

import (
	"fmt"
	"sync"

	"sazon/internal/artifacts"
	"sazon/internal/cluster"
	"sazon/internal/dataset"
	"sazon/internal/similarity"
)

// Service expone el corte del dendrograma de ingredientes. La matriz de
// distancias entre atributos se construye (o carga del cache de artefactos)
// una sola vez y se comparte entre los tres métodos de enlace; el dendrograma
// de cada método se deriva de ella una sola vez; cambiar k solo repite el
// corte.
type Service interface {
	Asignaciones(metodo string, k int) (map[string]int, error)
}

type service struct {
	ds      *dataset.Dataset
	dir     string
	hash    string
	workers int
	buffer  int

	mu           sync.Mutex
	matriz       *similarity.Matriz
	dendrogramas map[cluster.Metodo]*cluster.Dendrograma
}

// NewService construye el servicio de clustering sobre el dataset limpio.
func NewService(ds *dataset.Dataset, persistenciaDir, hash string, workers, buffer int) Service {
	return &service{
		ds:           ds,
		dir:          persistenciaDir,
		hash:         hash,
		workers:      workers,
		buffer:       buffer,
		dendrogramas: make(map[cluster.Metodo]*cluster.Dendrograma),
	}
}

// matrizAtributos devuelve la matriz compartida. El caller debe tener el lock.
func (s *service) matrizAtributos() (*similarity.Matriz, error) {
	if s.matriz != nil {
		return s.matriz, nil
	}

	ruta := artifacts.RutaMatrizAtributos(s.dir, s.hash)
	m, _, err := artifacts.CargarOConstruir(ruta, func() (*similarity.Matriz, error) {
		return similarity.ConstruirMatriz(s.ds.VectoresTranspuestos(), s.workers, s.buffer)
	})
	if err != nil {
		return nil, fmt.Errorf("construyendo matriz de atributos: %w", err)
	}

	s.matriz = m
	return m, nil
}

func (s *service) dendrograma(metodo cluster.Metodo) (*cluster.Dendrograma, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.dendrogramas[metodo]; ok {
		return d, nil
	}

	ruta := artifacts.RutaDendrograma(s.dir, s.hash, string(metodo))
	d, _, err := artifacts.CargarOConstruir(ruta, func() (*cluster.Dendrograma, error) {
		matriz, err := s.matrizAtributos()
		if err != nil {
			return nil, err
		}
		return cluster.Construir(s.ds.Atributos, matriz, metodo)
	})
	if err != nil {
		return nil, fmt.Errorf("construyendo dendrograma %s: %w", metodo, err)
	}

	s.dendrogramas[metodo] = d
	return d, nil
}

func (s *service) Asignaciones(metodo string, k int) (map[string]int, error) {
	m, err := cluster.ParseMetodo(metodo)
	if err != nil {
		return nil, err
	}

	d, err := s.dendrograma(m)
	if err != nil {
		return nil, err
	}
	return d.Cortar(k)
}
