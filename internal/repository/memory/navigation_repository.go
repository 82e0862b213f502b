package memory

import (
	"time"

	"talentmatch-be/pkg/wizard"

	"github.com/patrickmn/go-cache"
)

// NavigationRepository holds the per-user onboarding orchestrator between
// requests. Sessions expire after an hour of inactivity, which forces a
// fresh fast-forward from persisted state on the next visit.
type NavigationRepository struct {
	cache *cache.Cache
}

func NewNavigationRepository() *NavigationRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &NavigationRepository{
		cache: c,
	}
}

func (r *NavigationRepository) Save(userId string, o *wizard.Orchestrator) {
	r.cache.Set(userId, o, cache.DefaultExpiration)
}

func (r *NavigationRepository) Get(userId string) (*wizard.Orchestrator, bool) {
	if x, found := r.cache.Get(userId); found {
		return x.(*wizard.Orchestrator), true
	}
	return nil, false
}

func (r *NavigationRepository) Delete(userId string) {
	r.cache.Delete(userId)
}
