package artifacts

import (
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// HashDataset calcula el hash de contenido del CSV de entrada. Todos los
// artefactos derivados llevan este hash en el nombre: si el dataset cambia,
// los artefactos viejos dejan de ser elegibles sin borrarlos a mano.
func HashDataset(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("error abriendo dataset para hash: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("error calculando hash del dataset: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil))[:12], nil
}

// Existe verifica si un artefacto ya fue persistido
func Existe(ruta string) bool {
	_, err := os.Stat(ruta)
	return !os.IsNotExist(err)
}

// Guardar persiste una estructura como archivo .gob
func Guardar(ruta string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(ruta), 0755); err != nil {
		return fmt.Errorf("error creando directorio de persistencia: %w", err)
	}

	file, err := os.Create(ruta)
	if err != nil {
		return fmt.Errorf("error creando archivo %s: %w", ruta, err)
	}
	defer file.Close()

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("error codificando %s: %w", ruta, err)
	}
	return nil
}

// Cargar lee una estructura desde un archivo .gob
func Cargar(ruta string, data interface{}) error {
	file, err := os.Open(ruta)
	if err != nil {
		return fmt.Errorf("error abriendo archivo %s: %w", ruta, err)
	}
	defer file.Close()

	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("error decodificando datos de %s: %w", ruta, err)
	}
	return nil
}

// CargarOConstruir es el accesor explícito de los artefactos: carga el
// archivo si existe, y si no lo construye y lo persiste. Devuelve true si
// el artefacto vino del cache.
func CargarOConstruir[T any](ruta string, construir func() (T, error)) (T, bool, error) {
	var out T
	if Existe(ruta) {
		if err := Cargar(ruta, &out); err == nil {
			return out, true, nil
		}
		// Artefacto ilegible: se reconstruye y se sobreescribe
	}

	out, err := construir()
	if err != nil {
		return out, false, err
	}
	if err := Guardar(ruta, out); err != nil {
		return out, false, err
	}
	return out, false, nil
}

// RutaMatriz es la ruta del artefacto de la matriz de distancias de recetas
func RutaMatriz(dir, hash string) string {
	return filepath.Join(dir, fmt.Sprintf("matriz_%s.gob", hash))
}

// RutaMatrizAtributos es la ruta de la matriz de distancias entre atributos.
// Es un solo artefacto por dataset, compartido por los tres métodos de enlace.
func RutaMatrizAtributos(dir, hash string) string {
	return filepath.Join(dir, fmt.Sprintf("matriz_attrs_%s.gob", hash))
}

// RutaDendrograma es la ruta del historial de fusiones para un método de enlace
func RutaDendrograma(dir, hash, metodo string) string {
	return filepath.Join(dir, fmt.Sprintf("dendrograma_%s_%s.gob", hash, metodo))
}

// RutaArbol es la ruta del reporte de un clasificador entrenado
func RutaArbol(dir, hash, objetivo string) string {
	return filepath.Join(dir, fmt.Sprintf("arbol_%s_%s.gob", hash, objetivo))
}
