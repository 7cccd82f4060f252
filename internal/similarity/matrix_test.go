package similarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstruirMatrizDistancias(t *testing.T) {
	vectores := [][]float64{
		{1, 0, 0},
		{1, 0, 0}, // idéntico al primero
		{0, 1, 0},
		{1, 1, 1},
	}

	m, err := ConstruirMatriz(vectores, 4, 0)
	require.NoError(t, err)
	require.Equal(t, 4, m.Dim())

	// Vectores idénticos: distancia 0
	assert.Equal(t, 0.0, m.Dist(0, 1))

	// Diagonal en cero
	for i := 0; i < m.Dim(); i++ {
		assert.Equal(t, 0.0, m.Dist(i, i))
	}

	// Simetría
	for i := 0; i < m.Dim(); i++ {
		for j := 0; j < m.Dim(); j++ {
			assert.Equal(t, m.Dist(i, j), m.Dist(j, i))
		}
	}

	// Distancia euclidiana conocida: {1,0,0} vs {0,1,0} = sqrt(2)
	assert.InDelta(t, math.Sqrt2, m.Dist(0, 2), 1e-12)
	// {1,0,0} vs {1,1,1} = sqrt(2)
	assert.InDelta(t, math.Sqrt2, m.Dist(0, 3), 1e-12)
}

func TestConstruirMatrizValidaDimensiones(t *testing.T) {
	_, err := ConstruirMatriz(nil, 4, 0)
	assert.Error(t, err)

	_, err = ConstruirMatriz([][]float64{{1, 0}, {1}}, 4, 0)
	assert.Error(t, err)
}

func TestConstruirMatrizUnSoloWorker(t *testing.T) {
	vectores := [][]float64{{0, 0}, {3, 4}}

	m, err := ConstruirMatriz(vectores, 0, 0) // se corrige a 1 worker
	require.NoError(t, err)
	assert.InDelta(t, 5.0, m.Dist(0, 1), 1e-12)
}

func TestConstruirMatrizBufferConfigurado(t *testing.T) {
	vectores := [][]float64{
		{1, 0}, {0, 1}, {1, 1}, {0, 0},
	}

	// El mismo resultado con el buffer mínimo y con uno holgado
	chico, err := ConstruirMatriz(vectores, 2, 1)
	require.NoError(t, err)
	grande, err := ConstruirMatriz(vectores, 2, 256)
	require.NoError(t, err)

	for i := 0; i < chico.Dim(); i++ {
		for j := 0; j < chico.Dim(); j++ {
			assert.Equal(t, grande.Dist(i, j), chico.Dist(i, j))
		}
	}
}

func TestMatrizGobRoundTrip(t *testing.T) {
	vectores := [][]float64{
		{1, 0, 1},
		{0, 1, 1},
		{1, 1, 0},
	}
	m, err := ConstruirMatriz(vectores, 2, 0)
	require.NoError(t, err)

	data, err := m.GobEncode()
	require.NoError(t, err)

	var m2 Matriz
	require.NoError(t, m2.GobDecode(data))
	require.Equal(t, m.Dim(), m2.Dim())
	for i := 0; i < m.Dim(); i++ {
		for j := 0; j < m.Dim(); j++ {
			assert.Equal(t, m.Dist(i, j), m2.Dist(i, j))
		}
	}
}

func TestMatrizGobDecodeCorrupto(t *testing.T) {
	var m Matriz
	assert.Error(t, m.GobDecode([]byte("basura")))
}
