package recommend

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"time"

	"sazon/internal/similarity"

	"github.com/redis/go-redis/v9"
)

// Service resuelve consultas de recomendación para la API.
type Service interface {
	Recomendar(ctx context.Context, titulo string, f similarity.Filtros, topN int) ([]similarity.Vecino, bool, error)
}

type service struct {
	motor *similarity.Motor
	rdb   *redis.Client // opcional: nil desactiva el cache
	ttl   time.Duration
}

// NewService construye el servicio sobre el motor de similitud. El cliente
// de Redis es opcional; si la conexión falla el servicio sigue funcionando
// sin cache.
func NewService(motor *similarity.Motor, rdb *redis.Client, ttl time.Duration) Service {
	return &service{motor: motor, rdb: rdb, ttl: ttl}
}

type cacheKeyPayload struct {
	Titulo  string             `json:"titulo"`
	Filtros similarity.Filtros `json:"filtros"`
	TopN    int                `json:"top_n"`
}

func cacheKey(titulo string, f similarity.Filtros, topN int) string {
	raw, _ := json.Marshal(cacheKeyPayload{Titulo: titulo, Filtros: f, TopN: topN})
	sum := sha256.Sum256(raw)
	return "sazon:recomendar:" + hex.EncodeToString(sum[:])[:16]
}

// Recomendar consulta primero el cache de Redis y solo recalcula en un miss.
// El segundo retorno indica si la respuesta vino del cache.
func (s *service) Recomendar(ctx context.Context, titulo string, f similarity.Filtros, topN int) ([]similarity.Vecino, bool, error) {
	key := cacheKey(titulo, f, topN)

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
			var vecinos []similarity.Vecino
			if err := json.Unmarshal(raw, &vecinos); err == nil {
				return vecinos, true, nil
			}
		}
	}

	vecinos, err := s.motor.Recomendar(titulo, f, topN)
	if err != nil {
		return nil, false, err
	}

	if s.rdb != nil {
		if raw, err := json.Marshal(vecinos); err == nil {
			if err := s.rdb.Set(ctx, key, raw, s.ttl).Err(); err != nil {
				// El cache es best-effort
				log.Printf("[CACHE] No se pudo guardar %s: %v", key, err)
			}
		}
	}

	return vecinos, false, nil
}
