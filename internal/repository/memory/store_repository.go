package memory

import (
	"time"

	"talentmatch-be/pkg/profile"

	"github.com/patrickmn/go-cache"
)

// StoreRepository keeps one live profile store per signed-in user so that
// repeated requests reuse the merged aggregate instead of re-reading the
// three backing tables.
type StoreRepository struct {
	cache *cache.Cache
}

func NewStoreRepository() *StoreRepository {
	// Default expiration of 1 hour, purge expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &StoreRepository{
		cache: c,
	}
}

func (r *StoreRepository) Save(store *profile.Store) {
	r.cache.Set(store.UserId().String(), store, cache.DefaultExpiration)
}

func (r *StoreRepository) Get(userId string) (*profile.Store, bool) {
	if x, found := r.cache.Get(userId); found {
		return x.(*profile.Store), true
	}
	return nil, false
}

func (r *StoreRepository) Delete(userId string) {
	r.cache.Delete(userId)
}
