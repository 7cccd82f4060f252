package clusterreport

import (
	"os"
	"testing"

	"sazon/internal/artifacts"
	"sazon/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datasetPrueba(t *testing.T) *dataset.Dataset {
	t.Helper()

	header := []string{
		"title", "rating", "calories", "protein", "fat", "sodium",
		"tomato", "onion", "sugar", "honey",
	}
	filas := [][]string{
		{"Sopa", "4.0", "300", "10", "5", "100", "1", "1", "0", "0"},
		{"Ensalada", "4.5", "150", "5", "2", "50", "1", "1", "0", "0"},
		{"Torta", "3.5", "450", "6", "20", "80", "0", "0", "1", "1"},
		{"Flan", "4.2", "380", "7", "15", "70", "0", "0", "1", "1"},
	}
	ds, err := dataset.Limpiar(header, filas)
	require.NoError(t, err)
	return ds
}

func TestAsignacionesParticionaAtributos(t *testing.T) {
	ds := datasetPrueba(t)
	svc := NewService(ds, t.TempDir(), "abc123", 2, 0)

	asignaciones, err := svc.Asignaciones("complete", 2)
	require.NoError(t, err)
	require.Equal(t, len(ds.Atributos), len(asignaciones))

	// Los pares que coocurren quedan juntos
	assert.Equal(t, asignaciones["tomato"], asignaciones["onion"])
	assert.Equal(t, asignaciones["sugar"], asignaciones["honey"])
	assert.NotEqual(t, asignaciones["tomato"], asignaciones["sugar"])
}

func TestAsignacionesCompartenMatrizEntreMetodos(t *testing.T) {
	ds := datasetPrueba(t)
	dir := t.TempDir()
	svc := NewService(ds, dir, "abc123", 2, 0)

	// Los tres métodos derivan de la misma matriz de atributos: un solo
	// artefacto de matriz, un dendrograma por método
	for _, metodo := range []string{"complete", "average", "ward"} {
		_, err := svc.Asignaciones(metodo, 2)
		require.NoError(t, err)
	}

	assert.True(t, artifacts.Existe(artifacts.RutaMatrizAtributos(dir, "abc123")))
	for _, metodo := range []string{"complete", "average", "ward"} {
		assert.True(t, artifacts.Existe(artifacts.RutaDendrograma(dir, "abc123", metodo)))
	}

	entradas, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 4, len(entradas)) // 1 matriz + 3 dendrogramas
}

func TestAsignacionesRechazaParametrosInvalidos(t *testing.T) {
	ds := datasetPrueba(t)
	svc := NewService(ds, t.TempDir(), "abc123", 1, 0)

	_, err := svc.Asignaciones("single", 2)
	assert.Error(t, err)

	_, err = svc.Asignaciones("complete", 0)
	assert.Error(t, err)

	_, err = svc.Asignaciones("complete", len(ds.Atributos)+1)
	assert.Error(t, err)
}
