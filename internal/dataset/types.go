package dataset

// Columnas fijas del esquema de recetas. El resto de columnas del CSV se
// tratan como atributos binarios (ingredientes y tags one-hot).
const (
	ColTitulo   = "title"
	ColRating   = "rating"
	ColCalorias = "calories"
	ColProteina = "protein"
	ColGrasa    = "fat"
	ColSodio    = "sodium"
)

// ColumnasNutricion son las columnas numéricas que se reescalan a [0,1].
var ColumnasNutricion = []string{ColCalorias, ColProteina, ColGrasa, ColSodio}

// ColumnasDescartadas son columnas conocidas sin valor informativo.
// Se eliminan por NOMBRE para no depender del orden del esquema.
var ColumnasDescartadas = []string{"#cakeweek", "#wasteless"}

// TagsEstacion son los tags de estación; al predecir "summer" se excluyen
// los demás para evitar fuga de información.
var TagsEstacion = []string{"summer", "fall", "winter", "spring"}

// Nutricion agrupa los campos nutricionales de una receta
type Nutricion struct {
	Calorias float64
	Proteina float64
	Grasa    float64
	Sodio    float64
}

// Receta representa una fila limpia del dataset
type Receta struct {
	Titulo   string
	Rating   float64
	Nutri    Nutricion // reescalada a [0,1]
	Original Nutricion // escala original
	Flags    []float64 // vector binario de atributos, alineado con Dataset.Atributos
}

// ReporteLimpieza resume las filas descartadas durante la limpieza.
// Los descartes son silenciosos (no son errores), pero se contabilizan.
type ReporteLimpieza struct {
	FilasTotales       int
	FilasDuplicadas    int
	FilasIncompletas   int
	TitulosDuplicados  int
	ColumnasEliminadas []string
}

// Dataset es la tabla limpia compartida por todos los componentes
type Dataset struct {
	Recetas   []Receta
	Atributos []string
	Limpieza  ReporteLimpieza

	indice map[string]int // titulo -> fila
}

// IndicePorTitulo busca una receta por título exacto (case-sensitive).
func (d *Dataset) IndicePorTitulo(titulo string) (int, bool) {
	i, ok := d.indice[titulo]
	return i, ok
}

// IndiceAtributo busca la posición de un atributo por nombre.
func (d *Dataset) IndiceAtributo(nombre string) (int, bool) {
	for i, a := range d.Atributos {
		if a == nombre {
			return i, true
		}
	}
	return 0, false
}

// Vectores devuelve los vectores binarios de todas las recetas,
// en el orden original de filas.
func (d *Dataset) Vectores() [][]float64 {
	out := make([][]float64, len(d.Recetas))
	for i := range d.Recetas {
		out[i] = d.Recetas[i].Flags
	}
	return out
}

// VectoresTranspuestos devuelve la matriz binaria transpuesta:
// una fila por atributo, una columna por receta. Es la entrada del
// clustering de ingredientes.
func (d *Dataset) VectoresTranspuestos() [][]float64 {
	out := make([][]float64, len(d.Atributos))
	for j := range d.Atributos {
		fila := make([]float64, len(d.Recetas))
		for i := range d.Recetas {
			fila[i] = d.Recetas[i].Flags[j]
		}
		out[j] = fila
	}
	return out
}
