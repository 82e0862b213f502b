package service

import (
	"context"
	"errors"

	"talentmatch-be/internal/dto"
	"talentmatch-be/internal/pkg/logger"
	"talentmatch-be/internal/repository/memory"
	"talentmatch-be/pkg/events"
	pktNats "talentmatch-be/pkg/nats"
	"talentmatch-be/pkg/profile"
	"talentmatch-be/pkg/wizard"

	"github.com/google/uuid"
)

type IOnboardingService interface {
	// Start opens a navigation session, reusing a live one unless Force is
	// set or the requested mode differs.
	Start(ctx context.Context, userId uuid.UUID, req *dto.StartOnboardingRequest) (*dto.NavigationStateResponse, error)
	State(ctx context.Context, userId uuid.UUID) (*dto.NavigationStateResponse, error)
	Forward(ctx context.Context, userId uuid.UUID) (*dto.ForwardResponse, error)
	Back(ctx context.Context, userId uuid.UUID) (*dto.NavigationStateResponse, error)
	Jump(ctx context.Context, userId uuid.UUID, section string) (*dto.NavigationStateResponse, error)
}

type onboardingService struct {
	sessions       *memory.NavigationRepository
	profileService IProfileService
	eventPublisher *pktNats.Publisher
	log            logger.ILogger
}

func NewOnboardingService(
	sessions *memory.NavigationRepository,
	profileService IProfileService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) IOnboardingService {
	return &onboardingService{
		sessions:       sessions,
		profileService: profileService,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *onboardingService) Start(ctx context.Context, userId uuid.UUID, req *dto.StartOnboardingRequest) (*dto.NavigationStateResponse, error) {
	st, err := s.profileService.StoreFor(ctx, userId)
	if err != nil {
		return nil, err
	}

	mode := wizard.ModeOnboarding
	force := req.Force
	switch {
	case req.Mode == string(wizard.ModeProfile):
		mode = wizard.ModeProfile
	case req.Mode == "" && !force:
		// Candidates who already finished land in profile mode by default.
		agg := st.Aggregate()
		if profile.IsOnboardingComplete(agg) {
			mode = wizard.ModeProfile
		}
	}

	if !force {
		if o, found := s.sessions.Get(userId.String()); found && o.Mode() == mode {
			return s.stateResponse(o), nil
		}
	}

	o := wizard.NewOrchestrator(st, mode, force)
	s.sessions.Save(userId.String(), o)
	return s.stateResponse(o), nil
}

func (s *onboardingService) session(userId uuid.UUID) (*wizard.Orchestrator, error) {
	o, found := s.sessions.Get(userId.String())
	if !found {
		return nil, errors.New("no active wizard session, start one first")
	}
	return o, nil
}

func (s *onboardingService) State(ctx context.Context, userId uuid.UUID) (*dto.NavigationStateResponse, error) {
	o, err := s.session(userId)
	if err != nil {
		return nil, err
	}
	return s.stateResponse(o), nil
}

func (s *onboardingService) Forward(ctx context.Context, userId uuid.UUID) (*dto.ForwardResponse, error) {
	o, err := s.session(userId)
	if err != nil {
		return nil, err
	}

	result, advanced := o.Forward(ctx)

	res := &dto.ForwardResponse{
		Advanced: advanced,
		Finished: result.Finished,
		Redirect: result.Redirect,
		State:    *s.stateResponse(o),
	}
	if advanced {
		res.Save = saveResultToReport(result.Save)
	}

	if result.Finished {
		if !result.Save.Ok() {
			s.log.Warn("onboarding", "completion save was partial", map[string]interface{}{
				"user_id": userId.String(),
			})
		}
		if s.eventPublisher != nil {
			if err := s.eventPublisher.Publish(ctx, events.NewOnboardingCompleted(userId)); err != nil {
				s.log.Warn("onboarding", "failed to publish ONBOARDING_COMPLETED event", map[string]interface{}{
					"user_id": userId.String(),
					"error":   err.Error(),
				})
			}
		}
	}

	return res, nil
}

func (s *onboardingService) Back(ctx context.Context, userId uuid.UUID) (*dto.NavigationStateResponse, error) {
	o, err := s.session(userId)
	if err != nil {
		return nil, err
	}
	o.Back()
	return s.stateResponse(o), nil
}

func (s *onboardingService) Jump(ctx context.Context, userId uuid.UUID, section string) (*dto.NavigationStateResponse, error) {
	o, err := s.session(userId)
	if err != nil {
		return nil, err
	}
	if !o.Jump(wizard.SectionID(section)) {
		return nil, errors.New("section is not reachable from the current state")
	}
	return s.stateResponse(o), nil
}

func (s *onboardingService) stateResponse(o *wizard.Orchestrator) *dto.NavigationStateResponse {
	state := o.State()
	agg := o.Store().Aggregate()

	order := make([]string, len(o.Order()))
	for i, id := range o.Order() {
		order[i] = string(id)
	}

	res := &dto.NavigationStateResponse{
		Mode:           string(state.Mode),
		CurrentStep:    state.CurrentStepIndex,
		ActiveSection:  string(state.ActiveSection),
		Order:          order,
		CompletedSteps: agg.CompletedSteps,
		CanAdvance:     o.CanAdvance(),
	}

	if sec, ok := wizard.Sections[state.ActiveSection]; ok {
		view := dto.SectionView{
			ID:       string(sec.ID),
			Title:    sec.Title,
			Required: sec.Required,
		}
		for _, f := range wizard.VisibleFields(sec, state.Mode) {
			view.Fields = append(view.Fields, dto.FieldView{
				ID:       f.ID,
				Tier:     string(f.Tier),
				Required: f.Required,
			})
		}
		res.Section = &view

		if v := wizard.ValidateSection(sec.ID, agg); !v.Valid {
			res.FieldErrors = v.FieldErrors
		}
	}

	return res
}
