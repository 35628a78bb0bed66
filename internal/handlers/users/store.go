// internal/handlers/users/store.go
package users

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"

	"plantscape-service/internal/common/database"
	"plantscape-service/internal/models"
)

// Store persists community participants. Users are listed in first
// insertion order; saving an existing name replaces its plant list.
type Store interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	SaveUsers(ctx context.Context, users []models.User) error
}

// ==========================================
// MEMORY STORE
// ==========================================

// MemoryStore is the default store when Redis is not configured.
type MemoryStore struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]models.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byName: make(map[string]models.User),
	}
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out, nil
}

func (s *MemoryStore) SaveUsers(ctx context.Context, users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range users {
		if u.Name == "" {
			continue
		}
		if _, exists := s.byName[u.Name]; !exists {
			s.order = append(s.order, u.Name)
		}
		s.byName[u.Name] = u
	}
	return nil
}

// ==========================================
// REDIS STORE
// ==========================================

const redisUsersKey = "plantscape:users"

// RedisStore keeps the user roster as a JSON document under a single
// key. The roster is small and always read whole, so one key beats a
// hash plus an ordering list.
type RedisStore struct {
	db *database.RedisClient
}

func NewRedisStore(db *database.RedisClient) *RedisStore {
	return &RedisStore{db: db}
}

func (s *RedisStore) ListUsers(ctx context.Context) ([]models.User, error) {
	raw, err := s.db.Get(ctx, redisUsersKey)
	if err == redis.Nil {
		return []models.User{}, nil
	}
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *RedisStore) SaveUsers(ctx context.Context, users []models.User) error {
	existing, err := s.ListUsers(ctx)
	if err != nil {
		return err
	}

	index := make(map[string]int, len(existing))
	for i, u := range existing {
		index[u.Name] = i
	}

	for _, u := range users {
		if u.Name == "" {
			continue
		}
		if i, ok := index[u.Name]; ok {
			existing[i] = u
		} else {
			index[u.Name] = len(existing)
			existing = append(existing, u)
		}
	}

	raw, err := json.Marshal(existing)
	if err != nil {
		return err
	}
	return s.db.Set(ctx, redisUsersKey, raw, 0)
}

// ==========================================
// SEED DATA
// ==========================================

// SeedSampleUsers loads the demo roster into an empty store. A store
// that already has users is left untouched.
func SeedSampleUsers(ctx context.Context, store Store) error {
	existing, err := store.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	return store.SaveUsers(ctx, SampleUsers())
}

// SampleUsers is the demo roster served before any community
// submissions arrive.
func SampleUsers() []models.User {
	mk := func(name string, plants ...string) models.User {
		refs := make([]models.PlantRef, len(plants))
		for i, p := range plants {
			refs[i] = models.PlantRef{Name: p}
		}
		return models.User{Name: name, Plants: refs}
	}

	return []models.User{
		mk("Raj", "Spider Plant", "Peace Lily", "Snake Plant", "Pothos", "Rubber Plant"),
		mk("Aisha", "Guava", "Lemon", "Papaya"),
		mk("John", "Oak", "Maple", "Pine", "Cedar"),
		mk("Maria", "Rose", "Jasmine", "Hibiscus", "Marigold"),
		mk("Liam", "Apple", "Cherry", "Peach"),
		mk("Sophia", "Coconut", "Banana", "Areca Palm"),
		mk("Ethan", "Teak", "Mahogany", "Sandalwood"),
		mk("Olivia", "Lavender", "Thyme", "Basil", "Mint"),
		mk("Noah", "Bamboo", "Fern", "Aloe Vera", "Cactus"),
	}
}
