package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"sazon/internal/config"
	"sazon/internal/dataset"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// RecetaDocument representa una receta limpia en MongoDB
type RecetaDocument struct {
	Titulo       string   `bson:"titulo" json:"titulo"`
	Rating       float64  `bson:"rating" json:"rating"`
	Calorias     float64  `bson:"calorias" json:"calorias"`
	Proteina     float64  `bson:"proteina" json:"proteina"`
	Grasa        float64  `bson:"grasa" json:"grasa"`
	Sodio        float64  `bson:"sodio" json:"sodio"`
	Ingredientes []string `bson:"ingredientes" json:"ingredientes"`
}

// subirRecetas carga el dataset limpio a MongoDB evitando duplicados
func subirRecetas(ds *dataset.Dataset, mongoURI, dbName, collName string) error {
	fmt.Println("\n📡 Conectando a MongoDB...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	opt := options.Client().ApplyURI(mongoURI)
	// ServerAPI solo es necesario para Atlas, no para instancias locales
	if len(mongoURI) > 10 && mongoURI[:11] == "mongodb+srv" {
		opt.SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	}

	client, err := mongo.Connect(opt)
	if err != nil {
		return fmt.Errorf("error conectando a MongoDB: %w", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("error haciendo ping a MongoDB: %w", err)
	}
	fmt.Println("✅ Conexión exitosa")

	collection := client.Database(dbName).Collection(collName)

	// Verificar títulos existentes para evitar duplicados
	fmt.Println("\n🔍 Verificando documentos existentes...")
	existentes := make(map[string]bool)
	cursor, err := collection.Find(ctx, bson.M{}, options.Find().SetProjection(bson.M{"titulo": 1}))
	if err == nil {
		for cursor.Next(ctx) {
			var doc struct {
				Titulo string `bson:"titulo"`
			}
			if err := cursor.Decode(&doc); err == nil {
				existentes[doc.Titulo] = true
			}
		}
		cursor.Close(ctx)
	}
	if len(existentes) > 0 {
		fmt.Printf("   ✅ Encontradas %d recetas ya existentes\n", len(existentes))
	}

	// Armar documentos nuevos en lotes
	const batchSize = 1000
	var batch []interface{}
	subidas := 0

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if _, err := collection.InsertMany(ctx, batch); err != nil {
			return fmt.Errorf("error insertando lote: %w", err)
		}
		subidas += len(batch)
		fmt.Printf("📊 Subidas: %d recetas...\n", subidas)
		batch = batch[:0]
		return nil
	}

	for i := range ds.Recetas {
		r := &ds.Recetas[i]
		if existentes[r.Titulo] {
			continue
		}

		var ingredientes []string
		for j, f := range r.Flags {
			if f != 0 {
				ingredientes = append(ingredientes, ds.Atributos[j])
			}
		}

		batch = append(batch, RecetaDocument{
			Titulo:       r.Titulo,
			Rating:       r.Rating,
			Calorias:     r.Original.Calorias,
			Proteina:     r.Original.Proteina,
			Grasa:        r.Original.Grasa,
			Sodio:        r.Original.Sodio,
			Ingredientes: ingredientes,
		})
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}

	fmt.Printf("\n✅ Carga completada: %d recetas nuevas\n", subidas)
	return nil
}

func main() {
	uri := flag.String("uri", os.Getenv("MONGODB_URI"), "URI de MongoDB")
	dbName := flag.String("db", "sazon", "nombre de la base de datos")
	collName := flag.String("coll", "recetas", "nombre de la colección")
	flag.Parse()

	fmt.Printf("╔════════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║   CARGA DEL DATASET LIMPIO A MONGODB                      ║\n")
	fmt.Printf("╚════════════════════════════════════════════════════════════╝\n\n")

	if *uri == "" {
		fmt.Println("❌ Falta -uri o la variable MONGODB_URI")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig("config.json")
	if err != nil {
		fmt.Printf("❌ Error cargando configuración: %v\n", err)
		cfg = config.DefaultConfig()
	}

	fmt.Printf("🔄 Procesando archivo: %s\n", cfg.Rutas.DatasetCSV)
	ds, err := dataset.Cargar(cfg.Rutas.DatasetCSV)
	if err != nil {
		fmt.Printf("❌ Error cargando dataset: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Dataset limpio: %d recetas\n", len(ds.Recetas))

	if err := subirRecetas(ds, *uri, *dbName, *collName); err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}
