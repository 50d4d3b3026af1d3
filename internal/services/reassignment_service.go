package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/db/repositories"
	"scoutline/backend/internal/logging"
	"scoutline/backend/internal/metrics"
	"scoutline/backend/internal/models/entities"

	"github.com/google/uuid"
)

// Cascade step names, also the journal vocabulary in cascade_runs
const (
	stepPurgeHistories     = "purge_histories"
	stepPurgeFavorites     = "purge_favorites"
	stepExpirePlayerAds    = "expire_player_ads"
	stepRejectClubOffers   = "reject_club_offers"
	stepExpireClubAds      = "expire_club_ads"
	stepRejectPlayerOffers = "reject_player_offers"
	stepDeleteChats        = "delete_chats"
	stepDeleteUser         = "delete_user"
)

// ReassignmentService runs the cascade shared by user deletion and role
// promotion/demotion: it repoints a departing user's advertisements and
// offers to the sentinel user, closes open advertisements, auto-rejects
// open offers and purges histories and favorites. The store has no
// multi-document transactions, so every run is journaled step by step
// and an interrupted run resumes where it stopped.
type ReassignmentService struct {
	users        repositories.UserStore
	userRoles    repositories.UserRoleStore
	histories    repositories.ClubHistoryStore
	achievements repositories.AchievementsStore
	playerFavs   repositories.FavoriteStore
	clubFavs     repositories.FavoriteStore
	playerAds    repositories.AdvertisementStore
	clubAds      repositories.AdvertisementStore
	playerOffers repositories.OfferStore
	clubOffers   repositories.OfferStore
	statuses     repositories.OfferStatusStore
	chats        repositories.ChatStore
	messages     repositories.MessageStore
	runs         repositories.CascadeRunStore
	metricsReg   *metrics.MetricsRegistry
	now          func() time.Time
}

func NewReassignmentService(
	users repositories.UserStore,
	userRoles repositories.UserRoleStore,
	histories repositories.ClubHistoryStore,
	achievements repositories.AchievementsStore,
	playerFavs, clubFavs repositories.FavoriteStore,
	playerAds, clubAds repositories.AdvertisementStore,
	playerOffers, clubOffers repositories.OfferStore,
	statuses repositories.OfferStatusStore,
	chats repositories.ChatStore,
	messages repositories.MessageStore,
	runs repositories.CascadeRunStore,
	metricsReg *metrics.MetricsRegistry,
	now func() time.Time,
) *ReassignmentService {
	if now == nil {
		now = time.Now
	}
	return &ReassignmentService{
		users:        users,
		userRoles:    userRoles,
		histories:    histories,
		achievements: achievements,
		playerFavs:   playerFavs,
		clubFavs:     clubFavs,
		playerAds:    playerAds,
		clubAds:      clubAds,
		playerOffers: playerOffers,
		clubOffers:   clubOffers,
		statuses:     statuses,
		chats:        chats,
		messages:     messages,
		runs:         runs,
		metricsReg:   metricsReg,
		now:          now,
	}
}

type cascadeStep struct {
	name  string
	apply func(ctx context.Context, env *cascadeEnv) error
}

// cascadeEnv carries the prerequisites every step may need, resolved
// once before the first step runs
type cascadeEnv struct {
	userID   string
	sentinel *entities.User
	rejected *entities.OfferStatus
}

// Reassign runs the cascade for userID. Mode picks the terminal steps
// (delete removes chats and the user row, role_swap keeps the user);
// finalize, when non-nil, runs after all steps and before the run is
// marked complete - role transitions pass their role swap here.
//
// Missing prerequisites (sentinel user, Rejected status) abort before
// any step is applied; callers never observe partial application
// reported as success.
func (s *ReassignmentService) Reassign(ctx context.Context, userID string, mode entities.CascadeMode, finalize func(context.Context) error) error {
	env, err := s.resolvePrerequisites(ctx, userID)
	if err != nil {
		s.countRun(mode, "aborted")
		return err
	}

	run, err := s.openRun(ctx, userID, mode)
	if err != nil {
		s.countRun(mode, "aborted")
		return err
	}

	steps := []cascadeStep{
		{stepPurgeHistories, s.purgeHistories},
		{stepPurgeFavorites, s.purgeFavorites},
		{stepExpirePlayerAds, s.expireAds(s.playerAds)},
		{stepRejectClubOffers, s.rejectOffers(s.clubOffers)},
		{stepExpireClubAds, s.expireAds(s.clubAds)},
		{stepRejectPlayerOffers, s.rejectOffers(s.playerOffers)},
	}
	if mode == entities.CascadeDelete {
		steps = append(steps,
			cascadeStep{stepDeleteChats, s.deleteChats},
			cascadeStep{stepDeleteUser, s.deleteUser},
		)
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			s.countRun(mode, "interrupted")
			return fmt.Errorf("cascade interrupted before %s: %w", step.name, err)
		}
		if run.StepDone(step.name) {
			continue
		}
		if err := step.apply(ctx, env); err != nil {
			s.countRun(mode, "failed")
			return fmt.Errorf("cascade step %s: %w", step.name, err)
		}
		run.StepsDone = append(run.StepsDone, step.name)
		if err := s.runs.Replace(ctx, run); err != nil {
			s.countRun(mode, "failed")
			return err
		}
		s.countStep(step.name)
	}

	if finalize != nil {
		if err := finalize(ctx); err != nil {
			s.countRun(mode, "failed")
			return fmt.Errorf("cascade finalize: %w", err)
		}
	}

	completed := s.now()
	run.CompletedAt = &completed
	if err := s.runs.Replace(ctx, run); err != nil {
		return err
	}

	logging.Info("Reassignment cascade completed",
		"user_id", userID,
		"mode", string(mode),
		"run_id", run.ID,
	)
	s.countRun(mode, "completed")
	return nil
}

func (s *ReassignmentService) resolvePrerequisites(ctx context.Context, userID string) (*cascadeEnv, error) {
	sentinel, err := s.users.FindByEmail(ctx, constants.SentinelEmail)
	if err != nil {
		return nil, err
	}
	if sentinel == nil {
		return nil, fmt.Errorf("%s: %w", constants.MsgSentinelMissing, apperrors.ErrConfigurationMissing)
	}
	if sentinel.ID == userID {
		return nil, fmt.Errorf("%s: %w", constants.MsgSentinelUndeletable, apperrors.ErrInvalidArgument)
	}

	rejected, err := s.statuses.FindByName(ctx, constants.StatusRejected.String())
	if err != nil {
		return nil, err
	}
	if rejected == nil {
		return nil, fmt.Errorf("%s (%s): %w", constants.MsgStatusSeedMissing, constants.StatusRejected, apperrors.ErrConfigurationMissing)
	}

	return &cascadeEnv{userID: userID, sentinel: sentinel, rejected: rejected}, nil
}

func (s *ReassignmentService) openRun(ctx context.Context, userID string, mode entities.CascadeMode) (*entities.CascadeRun, error) {
	run, err := s.runs.FindOpenByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if run != nil {
		logging.Warn("Resuming interrupted reassignment cascade",
			"user_id", userID,
			"run_id", run.ID,
			"steps_done", len(run.StepsDone),
		)
		return run, nil
	}

	run = &entities.CascadeRun{
		ID:        uuid.NewString(),
		UserID:    userID,
		Mode:      mode,
		StartedAt: s.now(),
	}
	if err := s.runs.Insert(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// purgeHistories deletes each club history's achievements row, then the
// history row. History is not reassignable; it is purged.
func (s *ReassignmentService) purgeHistories(ctx context.Context, env *cascadeEnv) error {
	histories, err := s.histories.ListByPlayer(ctx, env.userID)
	if err != nil {
		return err
	}
	for _, h := range histories {
		if err := s.achievements.Delete(ctx, h.AchievementsID); err != nil {
			return err
		}
		if err := s.histories.Delete(ctx, h.ID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
	}
	return nil
}

func (s *ReassignmentService) purgeFavorites(ctx context.Context, env *cascadeEnv) error {
	if err := s.playerFavs.DeleteByUser(ctx, env.userID); err != nil {
		return err
	}
	return s.clubFavs.DeleteByUser(ctx, env.userID)
}

// expireAds force-expires every advertisement the user published and
// repoints the publisher to the sentinel
func (s *ReassignmentService) expireAds(store repositories.AdvertisementStore) func(context.Context, *cascadeEnv) error {
	return func(ctx context.Context, env *cascadeEnv) error {
		ads, err := store.ListByUser(ctx, env.userID)
		if err != nil {
			return err
		}
		now := s.now()
		for i := range ads {
			ad := ads[i]
			ad.EndDate = now
			ad.UserID = env.sentinel.ID
			if err := store.Replace(ctx, &ad); err != nil {
				return err
			}
		}
		return nil
	}
}

// rejectOffers flips the user's open offers to Rejected and repoints
// every offer to the sentinel regardless of status
func (s *ReassignmentService) rejectOffers(store repositories.OfferStore) func(context.Context, *cascadeEnv) error {
	return func(ctx context.Context, env *cascadeEnv) error {
		offers, err := store.ListByUser(ctx, env.userID)
		if err != nil {
			return err
		}
		for i := range offers {
			offer := offers[i]
			if offer.StatusName == constants.StatusOffered.String() {
				offer.StatusID = env.rejected.ID
				offer.StatusName = env.rejected.Name
			}
			offer.UserID = env.sentinel.ID
			if err := store.Replace(ctx, &offer); err != nil {
				return err
			}
		}
		return nil
	}
}

func (s *ReassignmentService) deleteChats(ctx context.Context, env *cascadeEnv) error {
	chats, err := s.chats.ListByParticipant(ctx, env.userID)
	if err != nil {
		return err
	}
	for _, chat := range chats {
		if err := s.messages.DeleteByChat(ctx, chat.ID); err != nil {
			return err
		}
		if err := s.chats.Delete(ctx, chat.ID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
	}
	return nil
}

func (s *ReassignmentService) deleteUser(ctx context.Context, env *cascadeEnv) error {
	if err := s.userRoles.DeleteByUser(ctx, env.userID); err != nil {
		return err
	}
	err := s.users.Delete(ctx, env.userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return err
	}
	return nil
}

func (s *ReassignmentService) countRun(mode entities.CascadeMode, outcome string) {
	if s.metricsReg != nil {
		s.metricsReg.CascadeRunsTotal.WithLabelValues(string(mode), outcome).Inc()
	}
}

func (s *ReassignmentService) countStep(step string) {
	if s.metricsReg != nil {
		s.metricsReg.CascadeStepsTotal.WithLabelValues(step).Inc()
	}
}
