package similarity

import (
	"testing"

	"sazon/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// datasetPrueba arma un dataset limpio pequeño con atributos controlados:
// tomato, onion, lentil, summer.
func datasetPrueba(t *testing.T) *dataset.Dataset {
	t.Helper()

	header := []string{
		"title", "rating", "calories", "protein", "fat", "sodium",
		"tomato", "onion", "lentil", "summer",
	}
	filas := [][]string{
		{"Sopa de Tomate", "4.0", "300", "10", "5", "100", "1", "1", "0", "0"},
		{"Ensalada Fresca", "4.5", "150", "5", "2", "50", "1", "0", "0", "1"},
		{"Guiso de Lentejas", "3.0", "600", "20", "8", "200", "0", "1", "1", "0"},
		{"Crema de Tomate", "2.5", "450", "8", "6", "150", "1", "1", "0", "0"},
		{"Tomates Rellenos", "4.8", "280", "12", "7", "120", "1", "1", "0", "1"},
	}

	ds, err := dataset.Limpiar(header, filas)
	require.NoError(t, err)
	require.Equal(t, 5, len(ds.Recetas))
	return ds
}

func motorPrueba(t *testing.T) *Motor {
	t.Helper()
	ds := datasetPrueba(t)
	m, err := ConstruirMatriz(ds.Vectores(), 2, 0)
	require.NoError(t, err)
	motor, err := NuevoMotor(ds, m)
	require.NoError(t, err)
	return motor
}

func TestRecomendarOrdenYExclusionPropia(t *testing.T) {
	motor := motorPrueba(t)

	vecinos, err := motor.Recomendar("Sopa de Tomate", Filtros{}, 0)
	require.NoError(t, err)
	require.Equal(t, 4, len(vecinos))

	// La consulta nunca aparece en sus propios resultados
	for _, v := range vecinos {
		assert.NotEqual(t, "Sopa de Tomate", v.Titulo)
	}

	// Distancias no decrecientes
	for i := 1; i < len(vecinos); i++ {
		assert.LessOrEqual(t, vecinos[i-1].Distancia, vecinos[i].Distancia)
	}

	// Crema de Tomate comparte exactamente los flags de la consulta
	assert.Equal(t, "Crema de Tomate", vecinos[0].Titulo)
	assert.Equal(t, 0.0, vecinos[0].Distancia)
}

func TestRecomendarTopN(t *testing.T) {
	motor := motorPrueba(t)

	vecinos, err := motor.Recomendar("Sopa de Tomate", Filtros{}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, len(vecinos))
}

func TestRecomendarFiltroRating(t *testing.T) {
	motor := motorPrueba(t)

	vecinos, err := motor.Recomendar("Sopa de Tomate", Filtros{RatingMin: 4.0}, 0)
	require.NoError(t, err)
	require.NotEmpty(t, vecinos)
	for _, v := range vecinos {
		assert.GreaterOrEqual(t, v.Rating, 4.0)
	}
	// El umbral es inclusivo
	titulos := make([]string, 0, len(vecinos))
	for _, v := range vecinos {
		titulos = append(titulos, v.Titulo)
	}
	assert.NotContains(t, titulos, "Crema de Tomate")
	assert.NotContains(t, titulos, "Guiso de Lentejas")
}

func TestRecomendarFiltroCalorias(t *testing.T) {
	motor := motorPrueba(t)

	vecinos, err := motor.Recomendar("Sopa de Tomate", Filtros{CaloriasMin: 200, CaloriasMax: 500}, 0)
	require.NoError(t, err)
	require.NotEmpty(t, vecinos)
	for _, v := range vecinos {
		assert.GreaterOrEqual(t, v.Calorias, 200.0)
		assert.LessOrEqual(t, v.Calorias, 500.0)
	}

	// CaloriasMax <= 0 significa sin tope
	todos, err := motor.Recomendar("Sopa de Tomate", Filtros{CaloriasMax: 0}, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, len(todos))
}

func TestRecomendarFiltroIngredientes(t *testing.T) {
	motor := motorPrueba(t)

	vecinos, err := motor.Recomendar("Sopa de Tomate", Filtros{Ingredientes: []string{"lentil"}}, 0)
	require.NoError(t, err)
	require.Equal(t, 1, len(vecinos))
	assert.Equal(t, "Guiso de Lentejas", vecinos[0].Titulo)

	_, err = motor.Recomendar("Sopa de Tomate", Filtros{Ingredientes: []string{"quinoa"}}, 0)
	assert.ErrorIs(t, err, ErrIngredienteDesconocido)
}

func TestRecomendarRecetaInexistente(t *testing.T) {
	motor := motorPrueba(t)

	_, err := motor.Recomendar("No Existe", Filtros{}, 10)
	assert.ErrorIs(t, err, ErrRecetaNoEncontrada)

	// Búsqueda exacta, sensible a mayúsculas
	_, err = motor.Recomendar("sopa de tomate", Filtros{}, 10)
	assert.ErrorIs(t, err, ErrRecetaNoEncontrada)
}

func TestNuevoMotorValidaDimension(t *testing.T) {
	ds := datasetPrueba(t)
	m, err := ConstruirMatriz([][]float64{{1, 0}, {0, 1}}, 1, 0)
	require.NoError(t, err)

	_, err = NuevoMotor(ds, m)
	assert.Error(t, err)
}

func TestRecomendarEmpatesEstables(t *testing.T) {
	header := []string{
		"title", "rating", "calories", "protein", "fat", "sodium",
		"tomato", "onion",
	}
	// B y C quedan a la misma distancia de A; el orden de filas decide
	filas := [][]string{
		{"A", "4.0", "300", "1", "1", "1", "1", "1"},
		{"B", "3.0", "200", "1", "1", "1", "1", "0"},
		{"C", "3.5", "250", "1", "1", "1", "0", "1"},
	}
	ds, err := dataset.Limpiar(header, filas)
	require.NoError(t, err)

	m, err := ConstruirMatriz(ds.Vectores(), 1, 0)
	require.NoError(t, err)
	motor, err := NuevoMotor(ds, m)
	require.NoError(t, err)

	vecinos, err := motor.Recomendar("A", Filtros{}, 0)
	require.NoError(t, err)
	require.Equal(t, 2, len(vecinos))
	assert.Equal(t, vecinos[0].Distancia, vecinos[1].Distancia)
	assert.Equal(t, "B", vecinos[0].Titulo)
	assert.Equal(t, "C", vecinos[1].Titulo)
}
