// Package cache keeps hot repository reads in memory.
package cache

import (
	"alcyxob/fitness-recommender/internal/domain"
	"alcyxob/fitness-recommender/internal/logger"
	"alcyxob/fitness-recommender/internal/metrics"
	"alcyxob/fitness-recommender/internal/repository"
	"context"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	"go.mongodb.org/mongo-driver/bson"
)

const catalogKey = "exercises::ids"

// Exercises are cached one per key and the list keeps only their ids:
// freecache rejects entries above 1/1024 of its size, which a whole
// encoded catalog easily exceeds.
//
// Entries are BSON-encoded so MediaKey survives (its JSON form is hidden).
// BSON datetimes carry milliseconds, so cached CreatedAt and UpdatedAt are
// truncated the same way Mongo truncates them.
type catalogDoc struct {
	IDs []int `bson:"ids"`
}

func exerciseKey(id int) string {
	return fmt.Sprintf("exercise::%d", id)
}

type exerciseRepository struct {
	repository.ExerciseRepository
	cache   *freecache.Cache
	expire  int
	metrics *metrics.Manager
	log     *logger.Logger
}

// NewExerciseRepository caches List and GetByID of next for ttl. Writes
// through the returned repository clear the cache.
func NewExerciseRepository(next repository.ExerciseRepository, sizeBytes int, ttl time.Duration, m *metrics.Manager, log *logger.Logger) repository.ExerciseRepository {
	return &exerciseRepository{
		ExerciseRepository: next,
		cache:              freecache.NewCache(sizeBytes),
		expire:             int(ttl / time.Second),
		metrics:            m,
		log:                log,
	}
}

func (r *exerciseRepository) List(ctx context.Context) ([]domain.Exercise, error) {
	if exercises, ok := r.cachedList(); ok {
		r.hit()
		return exercises, nil
	}
	r.miss()

	exercises, err := r.ExerciseRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(exercises))
	for i := range exercises {
		r.store(exerciseKey(exercises[i].ID), &exercises[i])
		ids = append(ids, exercises[i].ID)
	}
	r.store(catalogKey, catalogDoc{IDs: ids})
	return exercises, nil
}

// cachedList rebuilds the list from the cache, or reports false when the
// id list or any of its exercises is missing.
func (r *exerciseRepository) cachedList() ([]domain.Exercise, bool) {
	var doc catalogDoc
	if !r.lookup(catalogKey, &doc) {
		return nil, false
	}
	exercises := make([]domain.Exercise, len(doc.IDs))
	for i, id := range doc.IDs {
		if !r.lookup(exerciseKey(id), &exercises[i]) {
			return nil, false
		}
	}
	return exercises, true
}

func (r *exerciseRepository) GetByID(ctx context.Context, id int) (*domain.Exercise, error) {
	var exercise domain.Exercise
	if r.lookup(exerciseKey(id), &exercise) {
		r.hit()
		return &exercise, nil
	}
	r.miss()

	found, err := r.ExerciseRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(exerciseKey(id), found)
	return found, nil
}

func (r *exerciseRepository) Upsert(ctx context.Context, exercise *domain.Exercise) error {
	defer r.cache.Clear()
	return r.ExerciseRepository.Upsert(ctx, exercise)
}

func (r *exerciseRepository) SetMediaKey(ctx context.Context, id int, key string) error {
	defer r.cache.Clear()
	return r.ExerciseRepository.SetMediaKey(ctx, id, key)
}

func (r *exerciseRepository) hit()  { r.metrics.CounterCatalogCache.WithLabelValues("hit").Inc() }
func (r *exerciseRepository) miss() { r.metrics.CounterCatalogCache.WithLabelValues("miss").Inc() }

func (r *exerciseRepository) lookup(key string, out interface{}) bool {
	raw, err := r.cache.Get([]byte(key))
	if err != nil {
		return false
	}
	if err := bson.Unmarshal(raw, out); err != nil {
		r.log.Warn("Dropping undecodable cache entry", "key", key, "error", err)
		r.cache.Del([]byte(key))
		return false
	}
	return true
}

func (r *exerciseRepository) store(key string, value interface{}) {
	raw, err := bson.Marshal(value)
	if err != nil {
		r.log.Warn("Failed to encode cache entry", "key", key, "error", err)
		return
	}
	if err := r.cache.Set([]byte(key), raw, r.expire); err != nil {
		r.log.Warn("Failed to write cache entry", "key", key, "error", err)
	}
}
