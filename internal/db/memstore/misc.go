package memstore

import (
	"context"
	"fmt"
	"sort"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/db/repositories"
	"scoutline/backend/internal/models/entities"
)

type Problems struct{ s *Store }

func (s *Store) Problems() *Problems { return &Problems{s: s} }

var _ repositories.ProblemStore = (*Problems)(nil)

func (p *Problems) FindByID(_ context.Context, id int64) (*entities.Problem, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if problem, ok := p.s.problems[id]; ok {
		return &problem, nil
	}
	return nil, nil
}

func (p *Problems) list(keep func(entities.Problem) bool) []entities.Problem {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	var out []entities.Problem
	for _, problem := range p.s.problems {
		if keep(problem) {
			out = append(out, problem)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreationDate.After(out[j].CreationDate)
	})
	return out
}

func (p *Problems) ListAll(_ context.Context) ([]entities.Problem, error) {
	return p.list(func(entities.Problem) bool { return true }), nil
}

func (p *Problems) ListUnresolved(_ context.Context) ([]entities.Problem, error) {
	return p.list(func(pr entities.Problem) bool { return !pr.IsResolved }), nil
}

func (p *Problems) Insert(_ context.Context, problem *entities.Problem) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	p.s.problems[problem.ID] = *problem
	return nil
}

func (p *Problems) Replace(_ context.Context, problem *entities.Problem) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if _, ok := p.s.problems[problem.ID]; !ok {
		return fmt.Errorf("problem %d: %w", problem.ID, apperrors.ErrNotFound)
	}
	p.s.problems[problem.ID] = *problem
	return nil
}

type ClubHistories struct{ s *Store }

func (s *Store) ClubHistories() *ClubHistories { return &ClubHistories{s: s} }

var _ repositories.ClubHistoryStore = (*ClubHistories)(nil)

func (h *ClubHistories) FindByID(_ context.Context, id int64) (*entities.ClubHistory, error) {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if history, ok := h.s.histories[id]; ok {
		history.Achievements = nil
		return &history, nil
	}
	return nil, nil
}

func (h *ClubHistories) ListByPlayer(_ context.Context, playerID string) ([]entities.ClubHistory, error) {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	var out []entities.ClubHistory
	for _, history := range h.s.histories {
		if history.PlayerID == playerID {
			history.Achievements = nil
			out = append(out, history)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartDate.After(out[j].StartDate)
	})
	return out, nil
}

func (h *ClubHistories) Insert(_ context.Context, history *entities.ClubHistory) error {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	stored := *history
	stored.Achievements = nil
	h.s.histories[history.ID] = stored
	return nil
}

func (h *ClubHistories) Replace(_ context.Context, history *entities.ClubHistory) error {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if _, ok := h.s.histories[history.ID]; !ok {
		return fmt.Errorf("club history %d: %w", history.ID, apperrors.ErrNotFound)
	}
	stored := *history
	stored.Achievements = nil
	h.s.histories[history.ID] = stored
	return nil
}

func (h *ClubHistories) Delete(_ context.Context, id int64) error {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if _, ok := h.s.histories[id]; !ok {
		return fmt.Errorf("club history %d: %w", id, apperrors.ErrNotFound)
	}
	delete(h.s.histories, id)
	return nil
}

type AchievementRows struct{ s *Store }

func (s *Store) Achievements() *AchievementRows { return &AchievementRows{s: s} }

var _ repositories.AchievementsStore = (*AchievementRows)(nil)

func (a *AchievementRows) FindByID(_ context.Context, id int64) (*entities.Achievements, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if row, ok := a.s.achievements[id]; ok {
		return &row, nil
	}
	return nil, nil
}

func (a *AchievementRows) Insert(_ context.Context, row *entities.Achievements) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	a.s.achievements[row.ID] = *row
	return nil
}

func (a *AchievementRows) Replace(_ context.Context, row *entities.Achievements) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if _, ok := a.s.achievements[row.ID]; !ok {
		return fmt.Errorf("achievements %d: %w", row.ID, apperrors.ErrNotFound)
	}
	a.s.achievements[row.ID] = *row
	return nil
}

func (a *AchievementRows) Delete(_ context.Context, id int64) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	delete(a.s.achievements, id)
	return nil
}

type Chats struct{ s *Store }

func (s *Store) Chats() *Chats { return &Chats{s: s} }

var _ repositories.ChatStore = (*Chats)(nil)

func (c *Chats) FindByID(_ context.Context, id int64) (*entities.Chat, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if chat, ok := c.s.chats[id]; ok {
		return &chat, nil
	}
	return nil, nil
}

func (c *Chats) FindByParticipants(_ context.Context, user1ID, user2ID string) (*entities.Chat, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for _, chat := range c.s.chats {
		same := chat.User1ID == user1ID && chat.User2ID == user2ID
		flipped := chat.User1ID == user2ID && chat.User2ID == user1ID
		if same || flipped {
			chat := chat
			return &chat, nil
		}
	}
	return nil, nil
}

func (c *Chats) ListByParticipant(_ context.Context, userID string) ([]entities.Chat, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	var out []entities.Chat
	for _, chat := range c.s.chats {
		if chat.HasParticipant(userID) {
			out = append(out, chat)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (c *Chats) Insert(_ context.Context, chat *entities.Chat) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.chats[chat.ID] = *chat
	return nil
}

func (c *Chats) Delete(_ context.Context, id int64) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.chats[id]; !ok {
		return fmt.Errorf("chat %d: %w", id, apperrors.ErrNotFound)
	}
	delete(c.s.chats, id)
	return nil
}

type Messages struct{ s *Store }

func (s *Store) Messages() *Messages { return &Messages{s: s} }

var _ repositories.MessageStore = (*Messages)(nil)

func (m *Messages) ListByChat(_ context.Context, chatID int64) ([]entities.Message, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []entities.Message
	for _, msg := range m.s.messages {
		if msg.ChatID == chatID {
			out = append(out, msg)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (m *Messages) Insert(_ context.Context, msg *entities.Message) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.messages[msg.ID] = *msg
	return nil
}

func (m *Messages) DeleteByChat(_ context.Context, chatID int64) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for id, msg := range m.s.messages {
		if msg.ChatID == chatID {
			delete(m.s.messages, id)
		}
	}
	return nil
}

type CascadeRuns struct{ s *Store }

func (s *Store) CascadeRuns() *CascadeRuns { return &CascadeRuns{s: s} }

var _ repositories.CascadeRunStore = (*CascadeRuns)(nil)

func (c *CascadeRuns) FindOpenByUser(_ context.Context, userID string) (*entities.CascadeRun, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	for _, run := range c.s.cascadeRuns {
		if run.UserID == userID && run.CompletedAt == nil {
			run := run
			run.StepsDone = append([]string(nil), run.StepsDone...)
			return &run, nil
		}
	}
	return nil, nil
}

func (c *CascadeRuns) Insert(_ context.Context, run *entities.CascadeRun) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	stored := *run
	stored.StepsDone = append([]string(nil), run.StepsDone...)
	c.s.cascadeRuns[run.ID] = stored
	return nil
}

func (c *CascadeRuns) Replace(_ context.Context, run *entities.CascadeRun) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	if _, ok := c.s.cascadeRuns[run.ID]; !ok {
		return fmt.Errorf("cascade run %s: %w", run.ID, apperrors.ErrNotFound)
	}
	stored := *run
	stored.StepsDone = append([]string(nil), run.StepsDone...)
	c.s.cascadeRuns[run.ID] = stored
	return nil
}
