package tree

import (
	"fmt"
	"math/rand"
	"sort"
)

// SplitEstratificado particiona los índices en train/test preservando la
// proporción de clases del target. Determinístico para una misma semilla.
func SplitEstratificado(y []int, propTrain float64, seed int64) (train, test []int, err error) {
	if len(y) == 0 {
		return nil, nil, fmt.Errorf("target vacío")
	}
	if propTrain <= 0 || propTrain >= 1 {
		return nil, nil, fmt.Errorf("proporción de train inválida: %.2f", propTrain)
	}

	porClase := make(map[int][]int)
	for i, c := range y {
		porClase[c] = append(porClase[c], i)
	}

	clases := make([]int, 0, len(porClase))
	for c := range porClase {
		clases = append(clases, c)
	}
	sort.Ints(clases)

	rng := rand.New(rand.NewSource(seed))
	for _, c := range clases {
		idx := porClase[c]
		rng.Shuffle(len(idx), func(a, b int) {
			idx[a], idx[b] = idx[b], idx[a]
		})

		// Cuota por clase, dejando al menos un ejemplo en cada partición
		// cuando la clase lo permite
		corte := int(float64(len(idx))*propTrain + 0.5)
		if corte < 1 {
			corte = 1
		}
		if corte >= len(idx) && len(idx) > 1 {
			corte = len(idx) - 1
		}
		train = append(train, idx[:corte]...)
		test = append(test, idx[corte:]...)
	}

	sort.Ints(train)
	sort.Ints(test)
	return train, test, nil
}

// seleccionar arma las submatrices de un split
func seleccionar(X [][]float64, y []int, idx []int) ([][]float64, []int) {
	Xs := make([][]float64, len(idx))
	ys := make([]int, len(idx))
	for k, i := range idx {
		Xs[k] = X[i]
		ys[k] = y[i]
	}
	return Xs, ys
}
