package memstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/db/repositories"
	"scoutline/backend/internal/models/entities"
)

type Positions struct{ s *Store }

func (s *Store) Positions() *Positions { return &Positions{s: s} }

var _ repositories.PositionStore = (*Positions)(nil)

func (p *Positions) FindByID(_ context.Context, id int64) (*entities.PlayerPosition, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	if pos, ok := p.s.positions[id]; ok {
		return &pos, nil
	}
	return nil, nil
}

func (p *Positions) FindByName(_ context.Context, name string) (*entities.PlayerPosition, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	for _, pos := range p.s.positions {
		if pos.Name == name {
			pos := pos
			return &pos, nil
		}
	}
	return nil, nil
}

func (p *Positions) ListAll(_ context.Context) ([]entities.PlayerPosition, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	out := make([]entities.PlayerPosition, 0, len(p.s.positions))
	for _, pos := range p.s.positions {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (p *Positions) Insert(_ context.Context, position *entities.PlayerPosition) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()
	p.s.positions[position.ID] = *position
	return nil
}

type SalaryRanges struct{ s *Store }

func (s *Store) SalaryRanges() *SalaryRanges { return &SalaryRanges{s: s} }

var _ repositories.SalaryRangeStore = (*SalaryRanges)(nil)

func (r *SalaryRanges) FindByID(_ context.Context, id int64) (*entities.SalaryRange, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if sr, ok := r.s.salaryRanges[id]; ok {
		return &sr, nil
	}
	return nil, nil
}

func (r *SalaryRanges) Insert(_ context.Context, sr *entities.SalaryRange) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.salaryRanges[sr.ID] = *sr
	return nil
}

func (r *SalaryRanges) Replace(_ context.Context, sr *entities.SalaryRange) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.salaryRanges[sr.ID]; !ok {
		return fmt.Errorf("salary range %d: %w", sr.ID, apperrors.ErrNotFound)
	}
	r.s.salaryRanges[sr.ID] = *sr
	return nil
}

// Delete is a no-op when the row is already gone, matching the repository
func (r *SalaryRanges) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.salaryRanges, id)
	return nil
}

type Advertisements struct {
	s    *Store
	side constants.Side
}

func (s *Store) Advertisements(side constants.Side) *Advertisements {
	return &Advertisements{s: s, side: side}
}

var _ repositories.AdvertisementStore = (*Advertisements)(nil)

func (a *Advertisements) Side() constants.Side { return a.side }

func (a *Advertisements) FindByID(_ context.Context, id int64) (*entities.Advertisement, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if ad, ok := a.s.ads[a.side][id]; ok {
		return &ad, nil
	}
	return nil, nil
}

func (a *Advertisements) list(keep func(entities.Advertisement) bool, ascending bool) []entities.Advertisement {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	var out []entities.Advertisement
	for _, ad := range a.s.ads[a.side] {
		if keep(ad) {
			out = append(out, ad)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if ascending {
			return out[i].EndDate.Before(out[j].EndDate)
		}
		return out[i].EndDate.After(out[j].EndDate)
	})
	return out
}

func (a *Advertisements) ListAll(_ context.Context) ([]entities.Advertisement, error) {
	return a.list(func(entities.Advertisement) bool { return true }, false), nil
}

func (a *Advertisements) ListActive(_ context.Context, now time.Time) ([]entities.Advertisement, error) {
	return a.list(func(ad entities.Advertisement) bool { return ad.IsActive(now) }, true), nil
}

func (a *Advertisements) ListInactive(_ context.Context, now time.Time) ([]entities.Advertisement, error) {
	return a.list(func(ad entities.Advertisement) bool { return !ad.IsActive(now) }, false), nil
}

func (a *Advertisements) CountActive(_ context.Context, now time.Time) (int64, error) {
	active := a.list(func(ad entities.Advertisement) bool { return ad.IsActive(now) }, true)
	return int64(len(active)), nil
}

func (a *Advertisements) ListByUser(_ context.Context, userID string) ([]entities.Advertisement, error) {
	return a.list(func(ad entities.Advertisement) bool { return ad.UserID == userID }, false), nil
}

func (a *Advertisements) ListByIDs(_ context.Context, ids []int64) ([]entities.Advertisement, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	return a.list(func(ad entities.Advertisement) bool { return want[ad.ID] }, false), nil
}

func (a *Advertisements) Insert(_ context.Context, ad *entities.Advertisement) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	stored := *ad
	stored.SalaryRange, stored.Position, stored.Publisher = nil, nil, nil
	a.s.ads[a.side][ad.ID] = stored
	return nil
}

func (a *Advertisements) Replace(_ context.Context, ad *entities.Advertisement) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if _, ok := a.s.ads[a.side][ad.ID]; !ok {
		return fmt.Errorf("%s advertisement %d: %w", a.side, ad.ID, apperrors.ErrNotFound)
	}
	stored := *ad
	stored.SalaryRange, stored.Position, stored.Publisher = nil, nil, nil
	a.s.ads[a.side][ad.ID] = stored
	return nil
}

func (a *Advertisements) Delete(_ context.Context, id int64) error {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()
	if _, ok := a.s.ads[a.side][id]; !ok {
		return fmt.Errorf("%s advertisement %d: %w", a.side, id, apperrors.ErrNotFound)
	}
	delete(a.s.ads[a.side], id)
	return nil
}
