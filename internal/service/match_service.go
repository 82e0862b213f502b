package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"talentmatch-be/internal/dto"
	"talentmatch-be/internal/pkg/logger"
	"talentmatch-be/internal/repository/specification"
	"talentmatch-be/internal/repository/unitofwork"
	"talentmatch-be/pkg/embedding"
	"talentmatch-be/pkg/match"
	"talentmatch-be/pkg/profile"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	matchCacheTTL   = 5 * time.Minute
	vectorRankLimit = 50
)

type IMatchService interface {
	// GetMatches ranks open postings for the candidate's dashboard.
	GetMatches(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.MatchResponse, error)
	// InvalidateMatches drops the cached ranking, e.g. after a profile save.
	InvalidateMatches(ctx context.Context, userId uuid.UUID)
}

type matchService struct {
	uowFactory        unitofwork.RepositoryFactory
	profileService    IProfileService
	embeddingProvider embedding.EmbeddingProvider
	redisClient       *redis.Client
	log               logger.ILogger
}

func NewMatchService(
	uowFactory unitofwork.RepositoryFactory,
	profileService IProfileService,
	embeddingProvider embedding.EmbeddingProvider,
	redisClient *redis.Client,
	log logger.ILogger,
) IMatchService {
	return &matchService{
		uowFactory:        uowFactory,
		profileService:    profileService,
		embeddingProvider: embeddingProvider,
		redisClient:       redisClient,
		log:               log,
	}
}

func matchCacheKey(userId uuid.UUID) string {
	return fmt.Sprintf("matches:%s", userId.String())
}

func (s *matchService) GetMatches(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.MatchResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	if cached := s.readCache(ctx, userId); cached != nil {
		if len(cached) > limit {
			cached = cached[:limit]
		}
		return cached, nil
	}

	st, err := s.profileService.StoreFor(ctx, userId)
	if err != nil {
		return nil, err
	}
	agg := st.Aggregate()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	jobs, err := uow.JobRepository().FindAllWithCompany(ctx,
		specification.OpenJobs{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	// Rule-based score for every open posting.
	responses := make([]*dto.MatchResponse, 0, len(jobs))
	byJobId := make(map[uuid.UUID]*dto.MatchResponse, len(jobs))
	for _, job := range jobs {
		score := match.Rate(agg, *job)
		res := &dto.MatchResponse{
			Job:     *jobToResponse(job),
			Score:   score.Value,
			Reasons: score.Reasons,
		}
		responses = append(responses, res)
		byJobId[job.Id] = res
	}

	// Semantic layer: embed the candidate's own description and blend
	// vector similarity into the rule score. Skipped when no provider is
	// configured or the query document is empty.
	s.applyVectorRank(ctx, uow, &agg, byJobId)

	sort.SliceStable(responses, func(i, j int) bool {
		return responses[i].Score > responses[j].Score
	})

	s.writeCache(ctx, userId, responses)

	if len(responses) > limit {
		responses = responses[:limit]
	}
	return responses, nil
}

func (s *matchService) applyVectorRank(ctx context.Context, uow unitofwork.UnitOfWork, agg *profile.Aggregate, byJobId map[uuid.UUID]*dto.MatchResponse) {
	if s.embeddingProvider == nil {
		return
	}
	query := queryDocument(agg)
	if query == "" {
		return
	}

	res, err := s.embeddingProvider.Generate(query, "RETRIEVAL_QUERY")
	if err != nil {
		s.log.Warn("match", "query embedding failed, serving rule scores only", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	scored, err := uow.JobEmbeddingRepository().SearchSimilar(ctx, res.Embedding.Values, vectorRankLimit)
	if err != nil {
		s.log.Warn("match", "vector search failed, serving rule scores only", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	for _, sc := range scored {
		row, ok := byJobId[sc.Embedding.JobId]
		if !ok {
			continue
		}
		similarity := sc.Similarity
		row.Similarity = &similarity
		// Blend up to 20 extra points of semantic signal on top of the
		// rule score.
		row.Score += int(similarity * 20)
		if row.Score > 100 {
			row.Score = 100
		}
		if similarity >= 0.75 {
			row.Reasons = append(row.Reasons, "strong semantic fit")
		}
	}
}

func (s *matchService) InvalidateMatches(ctx context.Context, userId uuid.UUID) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, matchCacheKey(userId)).Err(); err != nil {
		s.log.Debug("match", "cache invalidation failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}
}

func (s *matchService) readCache(ctx context.Context, userId uuid.UUID) []*dto.MatchResponse {
	if s.redisClient == nil {
		return nil
	}
	raw, err := s.redisClient.Get(ctx, matchCacheKey(userId)).Result()
	if err != nil {
		return nil
	}
	var cached []*dto.MatchResponse
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil
	}
	return cached
}

func (s *matchService) writeCache(ctx context.Context, userId uuid.UUID, responses []*dto.MatchResponse) {
	if s.redisClient == nil {
		return
	}
	raw, err := json.Marshal(responses)
	if err != nil {
		return
	}
	if err := s.redisClient.Set(ctx, matchCacheKey(userId), raw, matchCacheTTL).Err(); err != nil {
		s.log.Debug("match", "cache write failed", map[string]interface{}{
			"user_id": userId.String(),
			"error":   err.Error(),
		})
	}
}

// queryDocument renders the aggregate into the text that gets embedded for
// semantic ranking. Returns "" when the profile carries too little signal
// to be worth a provider round trip.
func queryDocument(agg *profile.Aggregate) string {
	var b strings.Builder
	if agg.Title != "" {
		fmt.Fprintf(&b, "Current Title: %s\n", agg.Title)
	}
	if len(agg.SelectedRoles) > 0 {
		fmt.Fprintf(&b, "Interested Roles: %s\n", strings.Join(agg.SelectedRoles, ", "))
	}
	if agg.Bio != "" {
		fmt.Fprintf(&b, "\n%s\n", agg.Bio)
	}
	if len(agg.PreferredLocations) > 0 {
		fmt.Fprintf(&b, "Preferred Locations: %s\n", strings.Join(agg.PreferredLocations, ", "))
	}
	if b.Len() < 16 {
		return ""
	}
	return b.String()
}
