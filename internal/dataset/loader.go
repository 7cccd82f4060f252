package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// leerCSV lee el archivo completo y devuelve el header y las filas crudas.
func leerCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error abriendo archivo: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(bufio.NewReaderSize(f, 1024*1024))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("error parseando header: %w", err)
	}

	var filas [][]string
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Saltar filas con errores de parseo
			continue
		}
		filas = append(filas, rec)
	}

	if len(filas) == 0 {
		return nil, nil, fmt.Errorf("archivo vacío o sin filas de datos: %s", path)
	}

	return header, filas, nil
}

// Cargar lee el CSV de recetas y devuelve el dataset ya limpio.
func Cargar(path string) (*Dataset, error) {
	header, filas, err := leerCSV(path)
	if err != nil {
		return nil, err
	}
	return Limpiar(header, filas)
}
