package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// RutasConfig define las rutas de entrada y persistencia del sistema
type RutasConfig struct {
	DatasetCSV      string `json:"dataset_csv"`
	PersistenciaDir string `json:"persistencia_dir"`
}

// ConcurrencyConfig define la configuración de concurrencia para la
// construcción de la matriz de distancias
type ConcurrencyConfig struct {
	MatrixWorkers int `json:"matrix_workers"`
	BufferSize    int `json:"buffer_size"`
}

// MotorConfig define los parámetros del motor de recomendaciones
type MotorConfig struct {
	TopN        int     `json:"top_n"`
	RatingMin   float64 `json:"rating_min"`
	CaloriasMin float64 `json:"calorias_min"`
	CaloriasMax float64 `json:"calorias_max"`
}

// ClusterConfig define los parámetros del clustering jerárquico
type ClusterConfig struct {
	Metodo string `json:"metodo"` // complete | average | ward
	K      int    `json:"k"`
}

// ArbolConfig define los parámetros de entrenamiento del árbol CART
type ArbolConfig struct {
	Seed            int64   `json:"seed"`
	ProporcionTrain float64 `json:"proporcion_train"`
	ProfundidadMax  int     `json:"profundidad_max"`
	MinMuestras     int     `json:"min_muestras"`
}

// APIConfig define la configuración del servidor HTTP
type APIConfig struct {
	Addr     string `json:"addr"`
	CacheTTL int    `json:"cache_ttl_seconds"`
}

// SystemConfig define la configuración completa del sistema
type SystemConfig struct {
	Rutas       RutasConfig       `json:"rutas"`
	Concurrency ConcurrencyConfig `json:"concurrencia"`
	Motor       MotorConfig       `json:"motor"`
	Cluster     ClusterConfig     `json:"cluster"`
	Arbol       ArbolConfig       `json:"arbol"`
	API         APIConfig         `json:"api"`
}

// DefaultConfig retorna la configuración por defecto
func DefaultConfig() SystemConfig {
	return SystemConfig{
		Rutas: RutasConfig{
			DatasetCSV:      "data/recetas.csv",
			PersistenciaDir: "data/persistence",
		},
		Concurrency: ConcurrencyConfig{
			MatrixWorkers: runtime.NumCPU(),
			BufferSize:    256,
		},
		Motor: MotorConfig{
			TopN: 10,
		},
		Cluster: ClusterConfig{
			Metodo: "complete",
			K:      10,
		},
		Arbol: ArbolConfig{
			Seed:            42,
			ProporcionTrain: 0.75,
			ProfundidadMax:  12,
			MinMuestras:     20,
		},
		API: APIConfig{
			Addr:     ":8080",
			CacheTTL: 600,
		},
	}
}

// LoadConfig carga la configuración desde un archivo JSON.
// Si el archivo no existe se usa la configuración por defecto.
func LoadConfig(configFile string) (SystemConfig, error) {
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		fmt.Printf("Archivo de configuración no encontrado: %s\n", configFile)
		fmt.Printf("Usando configuración por defecto\n")
		return DefaultConfig(), nil
	}

	file, err := os.Open(configFile)
	if err != nil {
		return SystemConfig{}, fmt.Errorf("error abriendo archivo de configuración: %w", err)
	}
	defer file.Close()

	var config SystemConfig
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return SystemConfig{}, fmt.Errorf("error decodificando configuración: %w", err)
	}

	// Backfill de secciones ausentes en el JSON
	def := DefaultConfig()
	if config.Rutas.DatasetCSV == "" {
		config.Rutas.DatasetCSV = def.Rutas.DatasetCSV
	}
	if config.Rutas.PersistenciaDir == "" {
		config.Rutas.PersistenciaDir = def.Rutas.PersistenciaDir
	}
	if config.Concurrency.MatrixWorkers <= 0 {
		config.Concurrency.MatrixWorkers = def.Concurrency.MatrixWorkers
	}
	if config.Concurrency.BufferSize <= 0 {
		config.Concurrency.BufferSize = def.Concurrency.BufferSize
	}
	if config.Motor.TopN <= 0 {
		config.Motor.TopN = def.Motor.TopN
	}
	if config.Cluster.Metodo == "" {
		config.Cluster.Metodo = def.Cluster.Metodo
	}
	if config.Cluster.K <= 0 {
		config.Cluster.K = def.Cluster.K
	}
	if config.Arbol.ProporcionTrain <= 0 || config.Arbol.ProporcionTrain >= 1 {
		config.Arbol.ProporcionTrain = def.Arbol.ProporcionTrain
	}
	if config.Arbol.ProfundidadMax <= 0 {
		config.Arbol.ProfundidadMax = def.Arbol.ProfundidadMax
	}
	if config.Arbol.MinMuestras <= 0 {
		config.Arbol.MinMuestras = def.Arbol.MinMuestras
	}
	if config.Arbol.Seed == 0 {
		config.Arbol.Seed = def.Arbol.Seed
	}
	if config.API.Addr == "" {
		config.API.Addr = def.API.Addr
	}
	if config.API.CacheTTL <= 0 {
		config.API.CacheTTL = def.API.CacheTTL
	}

	return config, nil
}

// SaveConfig guarda la configuración en un archivo JSON
func SaveConfig(config SystemConfig, configFile string) error {
	file, err := os.Create(configFile)
	if err != nil {
		return fmt.Errorf("error creando archivo de configuración: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error codificando configuración: %w", err)
	}

	return nil
}

// PrintConfig imprime la configuración actual
func PrintConfig(config SystemConfig) {
	fmt.Printf("╔════════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║                    CONFIGURACIÓN ACTUAL                    ║\n")
	fmt.Printf("╚════════════════════════════════════════════════════════════╝\n")

	fmt.Printf("📂 RUTAS:\n")
	fmt.Printf("   - Dataset CSV: %s\n", config.Rutas.DatasetCSV)
	fmt.Printf("   - Persistencia: %s\n", config.Rutas.PersistenciaDir)

	fmt.Printf("\n🔧 CONCURRENCIA:\n")
	fmt.Printf("   - Matrix Workers: %d\n", config.Concurrency.MatrixWorkers)
	fmt.Printf("   - Buffer Size: %d\n", config.Concurrency.BufferSize)

	fmt.Printf("\n🍽️  MOTOR:\n")
	fmt.Printf("   - Top N: %d\n", config.Motor.TopN)
	fmt.Printf("   - Rating Mínimo: %.2f\n", config.Motor.RatingMin)
	fmt.Printf("   - Calorías: [%.0f, %.0f]\n", config.Motor.CaloriasMin, config.Motor.CaloriasMax)

	fmt.Printf("\n🌿 CLUSTER:\n")
	fmt.Printf("   - Método: %s\n", config.Cluster.Metodo)
	fmt.Printf("   - K: %d\n", config.Cluster.K)

	fmt.Printf("\n🌳 ÁRBOL:\n")
	fmt.Printf("   - Seed: %d\n", config.Arbol.Seed)
	fmt.Printf("   - Proporción Train: %.2f\n", config.Arbol.ProporcionTrain)
	fmt.Printf("   - Profundidad Máx: %d\n", config.Arbol.ProfundidadMax)
	fmt.Printf("   - Min Muestras: %d\n", config.Arbol.MinMuestras)

	fmt.Printf("\n💻 SISTEMA:\n")
	fmt.Printf("   - CPU Cores: %d\n", runtime.NumCPU())
	fmt.Printf("   - GOMAXPROCS: %d\n", runtime.GOMAXPROCS(0))
}
