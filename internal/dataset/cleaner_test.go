package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headerPrueba() []string {
	return []string{
		"title", "rating", "calories", "protein", "fat", "sodium",
		"#cakeweek", "#wasteless",
		"tomato", "onion", "lentil",
		"summer", "fall", "winter", "spring",
	}
}

func filaPrueba(titulo, rating, cal string, flags ...string) []string {
	fila := []string{titulo, rating, cal, "10", "5", "100", "0", "0"}
	fila = append(fila, flags...)
	return fila
}

func TestLimpiarDescartaDuplicadosYFaltantes(t *testing.T) {
	filas := [][]string{
		filaPrueba("Sopa de Tomate", "4.0", "300", "1", "1", "0", "1", "0", "0", "0"),
		filaPrueba("Sopa de Tomate", "4.0", "300", "1", "1", "0", "1", "0", "0", "0"), // duplicado exacto
		filaPrueba("Ensalada", "3.5", "150", "1", "0", "0", "1", "0", "0", "0"),
		filaPrueba("Guiso", "", "500", "0", "1", "1", "0", "1", "0", "0"),   // rating faltante
		filaPrueba("Lentejas", "4.5", "NA", "0", "0", "1", "0", "0", "1", "0"), // caloría faltante
		filaPrueba("Ensalada", "2.0", "900", "0", "1", "0", "0", "0", "0", "1"), // título repetido
	}

	ds, err := Limpiar(headerPrueba(), filas)
	require.NoError(t, err)

	assert.Equal(t, 2, len(ds.Recetas))
	assert.Equal(t, 1, ds.Limpieza.FilasDuplicadas)
	assert.Equal(t, 2, ds.Limpieza.FilasIncompletas)
	assert.Equal(t, 1, ds.Limpieza.TitulosDuplicados)

	// Gana la primera aparición del título
	i, ok := ds.IndicePorTitulo("Ensalada")
	require.True(t, ok)
	assert.Equal(t, 3.5, ds.Recetas[i].Rating)
}

func TestLimpiarEliminaColumnasPorNombre(t *testing.T) {
	filas := [][]string{
		filaPrueba("Sopa", "4.0", "300", "1", "1", "0", "1", "0", "0", "0"),
		filaPrueba("Ensalada", "3.5", "150", "1", "0", "0", "0", "1", "0", "0"),
	}

	ds, err := Limpiar(headerPrueba(), filas)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"#cakeweek", "#wasteless"}, ds.Limpieza.ColumnasEliminadas)
	assert.NotContains(t, ds.Atributos, "#cakeweek")
	assert.NotContains(t, ds.Atributos, "#wasteless")
	assert.Equal(t, []string{"tomato", "onion", "lentil", "summer", "fall", "winter", "spring"}, ds.Atributos)
}

func TestLimpiarReescalaNutricion(t *testing.T) {
	filas := [][]string{
		{"A", "4.0", "100", "0", "0", "0", "0", "0", "1", "0", "0", "0", "0", "0", "0"},
		{"B", "3.0", "300", "10", "20", "50", "0", "0", "0", "1", "0", "0", "0", "0", "0"},
		{"C", "2.0", "500", "20", "40", "100", "0", "0", "0", "0", "1", "0", "0", "0", "0"},
	}

	ds, err := Limpiar(headerPrueba(), filas)
	require.NoError(t, err)
	require.Equal(t, 3, len(ds.Recetas))

	// Min-max: extremos en 0 y 1, el medio proporcional
	assert.InDelta(t, 0.0, ds.Recetas[0].Nutri.Calorias, 1e-9)
	assert.InDelta(t, 0.5, ds.Recetas[1].Nutri.Calorias, 1e-9)
	assert.InDelta(t, 1.0, ds.Recetas[2].Nutri.Calorias, 1e-9)

	// La escala original se conserva para filtros y buckets
	assert.Equal(t, 300.0, ds.Recetas[1].Original.Calorias)
}

func TestLimpiarRequiereColumnasFijas(t *testing.T) {
	_, err := Limpiar([]string{"title", "rating"}, [][]string{{"A", "4.0"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "columna requerida")
}

func TestVectoresTranspuestos(t *testing.T) {
	filas := [][]string{
		filaPrueba("A", "4.0", "300", "1", "0", "1", "0", "0", "0", "0"),
		filaPrueba("B", "3.0", "200", "0", "1", "1", "0", "0", "0", "0"),
	}
	ds, err := Limpiar(headerPrueba(), filas)
	require.NoError(t, err)

	tr := ds.VectoresTranspuestos()
	require.Equal(t, len(ds.Atributos), len(tr))
	// tomato: presente en A, ausente en B
	assert.Equal(t, []float64{1, 0}, tr[0])
	// lentil: presente en ambas
	assert.Equal(t, []float64{1, 1}, tr[2])
}
