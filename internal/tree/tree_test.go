package tree

import (
	"testing"

	"sazon/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketCalorias(t *testing.T) {
	casos := []struct {
		cal   float64
		clase int
		ok    bool
	}{
		{249.99, 0, true},
		{250, 1, true},
		{500, 1, true},
		{500.01, 2, true},
		{1, 0, true},
		{10000, 2, true},
		{0, 0, false},
		{-50, 0, false},
		{10000.01, 0, false},
	}
	for _, c := range casos {
		clase, ok := BucketCalorias(c.cal)
		assert.Equal(t, c.ok, ok, "cal=%v", c.cal)
		if c.ok {
			assert.Equal(t, c.clase, clase, "cal=%v", c.cal)
		}
	}
}

func TestSplitEstratificadoProporciones(t *testing.T) {
	// 80 de clase 0, 40 de clase 1
	y := make([]int, 120)
	for i := 80; i < 120; i++ {
		y[i] = 1
	}

	train, test, err := SplitEstratificado(y, 0.75, 42)
	require.NoError(t, err)
	assert.Equal(t, 120, len(train)+len(test))

	conteo := func(idx []int) (c0, c1 int) {
		for _, i := range idx {
			if y[i] == 0 {
				c0++
			} else {
				c1++
			}
		}
		return
	}
	tr0, tr1 := conteo(train)
	te0, te1 := conteo(test)

	// Cuotas por clase con redondeo
	assert.Equal(t, 60, tr0)
	assert.Equal(t, 30, tr1)
	assert.Equal(t, 20, te0)
	assert.Equal(t, 10, te1)

	// Sin solapamiento
	enTrain := make(map[int]bool, len(train))
	for _, i := range train {
		enTrain[i] = true
	}
	for _, i := range test {
		assert.False(t, enTrain[i])
	}
}

func TestSplitEstratificadoDeterminista(t *testing.T) {
	y := []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2}

	tr1, te1, err := SplitEstratificado(y, 0.75, 7)
	require.NoError(t, err)
	tr2, te2, err := SplitEstratificado(y, 0.75, 7)
	require.NoError(t, err)

	assert.Equal(t, tr1, tr2)
	assert.Equal(t, te1, te2)
}

func TestSplitEstratificadoValidaciones(t *testing.T) {
	_, _, err := SplitEstratificado(nil, 0.75, 1)
	assert.Error(t, err)

	_, _, err = SplitEstratificado([]int{0, 1}, 0, 1)
	assert.Error(t, err)

	_, _, err = SplitEstratificado([]int{0, 1}, 1.0, 1)
	assert.Error(t, err)
}

func TestEntrenarSeparaClasesSimples(t *testing.T) {
	// La columna 0 separa perfectamente; la columna 1 es ruido constante
	X := [][]float64{
		{0.1, 1}, {0.2, 1}, {0.3, 1}, {0.4, 1},
		{0.8, 1}, {0.9, 1}, {1.0, 1}, {1.1, 1},
	}
	y := []int{0, 0, 0, 0, 1, 1, 1, 1}

	a, err := Entrenar(X, y, []string{"valor", "ruido"}, []string{"bajo", "alto"}, Config{})
	require.NoError(t, err)

	for i := range X {
		assert.Equal(t, y[i], a.Predecir(X[i]), "fila %d", i)
	}

	// Toda la importancia cae en la columna informativa
	imp := a.ImportanciasOrdenadas()
	require.Equal(t, 1, len(imp))
	assert.Equal(t, "valor", imp[0].Columna)
	assert.Greater(t, imp[0].Valor, 0.0)
}

func TestEntrenarRespetaProfundidadMax(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}, {4}, {5}, {6}, {7}, {8}}
	y := []int{0, 1, 0, 1, 0, 1, 0, 1}

	a, err := Entrenar(X, y, []string{"x"}, []string{"a", "b"}, Config{ProfundidadMax: 1, MinMuestras: 2})
	require.NoError(t, err)

	// Con profundidad 1 la raíz parte una sola vez
	require.False(t, a.Raiz.Hoja)
	assert.True(t, a.Raiz.Izq.Hoja)
	assert.True(t, a.Raiz.Der.Hoja)
}

func TestEntrenarValidaEntradas(t *testing.T) {
	_, err := Entrenar(nil, nil, nil, nil, Config{})
	assert.Error(t, err)

	_, err = Entrenar([][]float64{{1, 2}}, []int{0}, []string{"solo_una"}, []string{"a"}, Config{})
	assert.Error(t, err)
}

func TestMetricasConfusionConocida(t *testing.T) {
	// 45 aciertos sobre 50
	conf := [][]int{
		{20, 2},
		{3, 25},
	}
	assert.InDelta(t, 0.9, Accuracy(conf), 1e-12)

	// Kappa calculado a mano: po=0.9, pe=(22*23+28*27)/2500=0.5048
	kappa := Kappa(conf)
	assert.InDelta(t, (0.9-0.5048)/(1-0.5048), kappa, 1e-9)
}

func TestKappaAcuerdoPerfectoYAzar(t *testing.T) {
	perfecto := [][]int{{10, 0}, {0, 10}}
	assert.InDelta(t, 1.0, Kappa(perfecto), 1e-12)

	// Predicción constante: po = pe, kappa = 0
	constante := [][]int{{10, 0}, {10, 0}}
	assert.InDelta(t, 0.0, Kappa(constante), 1e-12)
}

func datasetArbol(t *testing.T) *dataset.Dataset {
	t.Helper()

	header := []string{
		"title", "rating", "calories", "protein", "fat", "sodium",
		"tomato", "ice cream", "summer", "fall", "winter", "spring",
	}
	// Patrón aprendible: "ice cream" acompaña al tag summer
	filas := [][]string{
		{"Helado de Fresa", "4.5", "320", "4", "12", "60", "0", "1", "1", "0", "0", "0"},
		{"Helado de Mango", "4.2", "300", "3", "11", "55", "0", "1", "1", "0", "0", "0"},
		{"Paleta Tropical", "4.0", "180", "1", "2", "20", "0", "1", "1", "0", "0", "0"},
		{"Granizado", "3.8", "150", "0", "0", "10", "0", "1", "1", "0", "0", "0"},
		{"Sopa de Tomate", "4.0", "280", "8", "6", "300", "1", "0", "0", "0", "1", "0"},
		{"Guiso Invernal", "3.9", "650", "25", "20", "500", "1", "0", "0", "0", "1", "0"},
		{"Crema de Tomate", "3.5", "420", "9", "15", "350", "1", "0", "0", "1", "0", "0"},
		{"Estofado", "4.1", "700", "30", "22", "600", "1", "0", "0", "0", "1", "0"},
		{"Asado de Otoño", "4.3", "800", "35", "28", "450", "1", "0", "0", "1", "0", "0"},
		{"Caldo", "3.0", "120", "5", "3", "400", "1", "0", "0", "0", "0", "1"},
		{"Ensalada de Primavera", "4.4", "90", "2", "1", "30", "1", "0", "0", "0", "0", "1"},
		{"Sorbete", "4.6", "200", "1", "0", "15", "0", "1", "1", "0", "0", "0"},
	}

	ds, err := dataset.Limpiar(header, filas)
	require.NoError(t, err)
	return ds
}

func TestReporteVerano(t *testing.T) {
	ds := datasetArbol(t)

	rep, err := ReporteVerano(ds, Config{}, 0.75, 42)
	require.NoError(t, err)

	assert.Equal(t, "verano", rep.Objetivo)
	assert.Equal(t, len(ds.Recetas), rep.TrainFilas+rep.TestFilas)
	assert.Equal(t, ClasesVerano, rep.Arbol.Clases)

	// Los tags de estación no pueden ser features del clasificador
	for _, col := range rep.Arbol.Columnas {
		for _, tag := range dataset.TagsEstacion {
			assert.NotEqual(t, tag, col)
		}
	}

	// El patrón es separable: el hold-out debería clasificarse bien
	assert.GreaterOrEqual(t, rep.Eval.Accuracy, 0.5)
}

func TestReporteCalorias(t *testing.T) {
	ds := datasetArbol(t)

	rep, err := ReporteCalorias(ds, Config{}, 0.75, 42)
	require.NoError(t, err)

	assert.Equal(t, "calorias", rep.Objetivo)
	assert.Equal(t, ClasesCalorias, rep.Arbol.Clases)
	assert.Equal(t, 0, rep.ExcluidasCalorias)

	// La nutrición no participa como feature del target de calorías
	for _, col := range rep.Arbol.Columnas {
		for _, n := range dataset.ColumnasNutricion {
			assert.NotEqual(t, n, col)
		}
	}
	assert.Contains(t, rep.Arbol.Columnas, dataset.ColRating)
}

func TestPrepararCaloriasExcluyeFueraDeRango(t *testing.T) {
	header := []string{
		"title", "rating", "calories", "protein", "fat", "sodium",
		"tomato", "onion",
	}
	filas := [][]string{
		{"Normal", "4.0", "300", "1", "1", "1", "1", "0"},
		{"Cero", "4.0", "0", "1", "1", "1", "0", "1"},
		{"Absurda", "4.0", "25000", "1", "1", "1", "1", "1"},
		{"Otra", "3.0", "600", "1", "1", "1", "0", "0"},
	}
	ds, err := dataset.Limpiar(header, filas)
	require.NoError(t, err)

	X, y, _, excluidas := PrepararCalorias(ds)
	assert.Equal(t, 2, excluidas)
	assert.Equal(t, 2, len(X))
	assert.Equal(t, []int{1, 2}, y)
}
