package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"sazon/internal/artifacts"
	"sazon/internal/cluster"
	"sazon/internal/config"
	"sazon/internal/similarity"
	"sazon/pkg/styles"
)

// runCluster agrupa los ingredientes/tags con clustering jerárquico.
// La matriz de distancias entre atributos es un solo artefacto compartido
// por los tres métodos de enlace; el dendrograma se persiste por método.
// Cambiar de método o de k nunca recalcula distancias.
func runCluster(cfg config.SystemConfig, args []string) {
	fs := flag.NewFlagSet("cluster", flag.ExitOnError)
	metodoFlag := fs.String("metodo", cfg.Cluster.Metodo, "método de enlace: complete | average | ward")
	k := fs.Int("k", cfg.Cluster.K, "número de clusters")
	fs.Parse(args)

	fmt.Printf("╔════════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║   CLUSTERING JERÁRQUICO DE INGREDIENTES                   ║\n")
	fmt.Printf("╚════════════════════════════════════════════════════════════╝\n\n")

	metodo, err := cluster.ParseMetodo(*metodoFlag)
	if err != nil {
		styles.PrintFS("error", "❌ %v", err)
		os.Exit(1)
	}

	ds, hash, err := cargarDataset(cfg)
	if err != nil {
		styles.PrintFS("error", "❌ Error cargando dataset: %v", err)
		os.Exit(1)
	}
	fmt.Printf("📊 Atributos a agrupar: %d | Método: %s | K: %d\n\n", len(ds.Atributos), metodo, *k)

	rutaMatriz := artifacts.RutaMatrizAtributos(cfg.Rutas.PersistenciaDir, hash)
	matriz, matrizCacheada, err := artifacts.CargarOConstruir(rutaMatriz, func() (*similarity.Matriz, error) {
		return similarity.ConstruirMatriz(ds.VectoresTranspuestos(),
			cfg.Concurrency.MatrixWorkers, cfg.Concurrency.BufferSize)
	})
	if err != nil {
		styles.PrintFS("error", "❌ Error construyendo matriz de atributos: %v", err)
		os.Exit(1)
	}
	if matrizCacheada {
		fmt.Printf("📁 Matriz de atributos cargada desde el cache de artefactos\n")
	}

	ruta := artifacts.RutaDendrograma(cfg.Rutas.PersistenciaDir, hash, string(metodo))
	inicio := time.Now()
	dendro, cacheado, err := artifacts.CargarOConstruir(ruta, func() (*cluster.Dendrograma, error) {
		return cluster.Construir(ds.Atributos, matriz, metodo)
	})
	if err != nil {
		styles.PrintFS("error", "❌ Error construyendo dendrograma: %v", err)
		os.Exit(1)
	}

	if cacheado {
		fmt.Printf("📁 Dendrograma cargado desde el cache de artefactos\n")
	} else {
		fmt.Printf("✅ Dendrograma construido en %.2f segundos\n", time.Since(inicio).Seconds())
	}

	asignaciones, err := dendro.Cortar(*k)
	if err != nil {
		styles.PrintFS("error", "❌ %v", err)
		os.Exit(1)
	}

	// Agrupar por cluster para el reporte
	grupos := make(map[int][]string)
	for attr, c := range asignaciones {
		grupos[c] = append(grupos[c], attr)
	}

	fmt.Printf("\n🌿 ASIGNACIONES (%d clusters):\n", *k)
	for c := 1; c <= *k; c++ {
		miembros := grupos[c]
		sort.Strings(miembros)
		fmt.Printf("\n  Cluster %d (%d atributos):\n", c, len(miembros))
		max := len(miembros)
		if max > 12 {
			max = 12
		}
		for _, m := range miembros[:max] {
			fmt.Printf("    - %s\n", m)
		}
		if len(miembros) > max {
			fmt.Printf("    … y %d más\n", len(miembros)-max)
		}
	}
}
