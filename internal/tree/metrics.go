package tree

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Evaluacion agrupa las métricas derivadas de la matriz de confusión
type Evaluacion struct {
	Confusion [][]int
	Accuracy  float64
	Kappa     float64
}

// MatrizConfusion arma la matriz de confusión (filas: clase real,
// columnas: clase predicha)
func MatrizConfusion(yTrue, yPred []int, nClases int) [][]int {
	conf := make([][]int, nClases)
	for i := range conf {
		conf[i] = make([]int, nClases)
	}
	for k := range yTrue {
		conf[yTrue[k]][yPred[k]]++
	}
	return conf
}

// Accuracy es la fracción de aciertos de la matriz de confusión
func Accuracy(conf [][]int) float64 {
	total, aciertos := 0, 0
	for i := range conf {
		for j := range conf[i] {
			total += conf[i][j]
			if i == j {
				aciertos += conf[i][j]
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(aciertos) / float64(total)
}

// Kappa es el coeficiente kappa de Cohen: acuerdo observado corregido por
// el acuerdo esperado por azar
func Kappa(conf [][]int) float64 {
	n := len(conf)
	total := 0
	filas := make([]float64, n)
	cols := make([]float64, n)
	diag := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			total += conf[i][j]
			filas[i] += float64(conf[i][j])
			cols[j] += float64(conf[i][j])
		}
		diag += conf[i][i]
	}
	if total == 0 {
		return 0
	}
	po := float64(diag) / float64(total)
	pe := floats.Dot(filas, cols) / (float64(total) * float64(total))
	if pe == 1 {
		return 0
	}
	return (po - pe) / (1 - pe)
}

// Evaluar predice sobre el conjunto entregado y deriva las métricas
func Evaluar(a *Arbol, X [][]float64, y []int) Evaluacion {
	yPred := make([]int, len(y))
	for i := range X {
		yPred[i] = a.Predecir(X[i])
	}
	conf := MatrizConfusion(y, yPred, len(a.Clases))
	return Evaluacion{
		Confusion: conf,
		Accuracy:  Accuracy(conf),
		Kappa:     Kappa(conf),
	}
}

// Importancia es una columna con su reducción de gini acumulada
type Importancia struct {
	Columna string  `json:"columna"`
	Valor   float64 `json:"valor"`
}

// ImportanciasOrdenadas devuelve las columnas con importancia positiva,
// de mayor a menor
func (a *Arbol) ImportanciasOrdenadas() []Importancia {
	var out []Importancia
	for i, v := range a.Importancias {
		if v > 0 {
			out = append(out, Importancia{Columna: a.Columnas[i], Valor: v})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Valor > out[j].Valor
	})
	return out
}

// Reporte es el artefacto completo de un clasificador: árbol, métricas y
// notas de calidad de datos. Inmutable después del entrenamiento.
type Reporte struct {
	Objetivo          string
	Arbol             *Arbol
	Eval              Evaluacion
	TrainFilas        int
	TestFilas         int
	ExcluidasCalorias int
}

// entrenarYEvaluar corre el flujo estándar: split estratificado, ajuste y
// evaluación sobre el hold-out
func entrenarYEvaluar(objetivo string, X [][]float64, y []int, columnas, clases []string,
	cfg Config, propTrain float64, seed int64) (*Reporte, error) {

	trainIdx, testIdx, err := SplitEstratificado(y, propTrain, seed)
	if err != nil {
		return nil, fmt.Errorf("split estratificado: %w", err)
	}
	Xtr, ytr := seleccionar(X, y, trainIdx)
	Xte, yte := seleccionar(X, y, testIdx)

	arbol, err := Entrenar(Xtr, ytr, columnas, clases, cfg)
	if err != nil {
		return nil, fmt.Errorf("entrenando árbol de %s: %w", objetivo, err)
	}

	return &Reporte{
		Objetivo:   objetivo,
		Arbol:      arbol,
		Eval:       Evaluar(arbol, Xte, yte),
		TrainFilas: len(trainIdx),
		TestFilas:  len(testIdx),
	}, nil
}
