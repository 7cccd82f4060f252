package plattform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

var (
	// ErrMissingMongoURI indica que la variable de entorno esperada no está definida.
	ErrMissingMongoURI = errors.New("database: missing MONGODB_URI environment variable")
)

// NewClient establece un cliente de MongoDB y devuelve un MongoService.
// El caller es dueño del servicio y debe llamar Disconnect al terminar.
func NewClient(ctx context.Context) (*MongoService, error) {
	uri := strings.TrimSpace(os.Getenv("MONGODB_URI"))
	if uri == "" {
		return nil, fmt.Errorf("%w", ErrMissingMongoURI)
	}

	opt := options.Client().ApplyURI(uri)
	// ServerAPI solo es necesario para Atlas, no para instancias locales
	if strings.HasPrefix(uri, "mongodb+srv") {
		opt.SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	}

	client, err := mongo.Connect(opt)
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	return NewMongoService(client), nil
}

// MongoService envuelve el cliente de MongoDB con helpers de colección.
type MongoService struct {
	client *mongo.Client
}

// NewMongoService crea un MongoService con el cliente entregado.
func NewMongoService(client *mongo.Client) *MongoService {
	return &MongoService{client: client}
}

// GetCollection devuelve un handle a la colección pedida.
func (s *MongoService) GetCollection(dbName, collName string) *mongo.Collection {
	return s.client.Database(dbName).Collection(collName)
}

// Ping verifica la conexión.
func (s *MongoService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Disconnect cierra la conexión.
func (s *MongoService) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
