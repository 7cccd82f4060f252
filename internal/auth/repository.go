package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// mongoRepository persiste los usuarios de la API en una colección de MongoDB.
type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository crea el repositorio de usuarios sobre la colección dada.
func NewMongoRepository(coll *mongo.Collection) Repository {
	return &mongoRepository{coll: coll}
}

// EnsureIndexes crea el índice único por email. Idempotente: Mongo ignora
// la creación si el índice ya existe.
func (r *mongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("auth: creando índice de email: %w", err)
	}
	return nil
}

func (r *mongoRepository) CreateUser(ctx context.Context, u *User) error {
	u.Email = normalizeEmail(u.Email)

	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		// El índice único convierte la carrera register/register en un
		// duplicado detectable
		if mongo.IsDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("auth: insertando usuario: %w", err)
	}
	return nil
}

func (r *mongoRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := r.coll.FindOne(ctx, bson.M{"email": normalizeEmail(email)}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("auth: buscando usuario: %w", err)
	}
	return &u, nil
}

// normalizeEmail deja el email en una forma canónica para búsquedas e índice.
func normalizeEmail(e string) string {
	return strings.TrimSpace(strings.ToLower(e))
}
