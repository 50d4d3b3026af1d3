package memstore

import (
	"context"
	"fmt"
	"sort"

	"scoutline/backend/internal/apperrors"
	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/db/repositories"
	"scoutline/backend/internal/models/entities"
)

type OfferStatuses struct{ s *Store }

func (s *Store) OfferStatuses() *OfferStatuses { return &OfferStatuses{s: s} }

var _ repositories.OfferStatusStore = (*OfferStatuses)(nil)

func (o *OfferStatuses) FindByID(_ context.Context, id int64) (*entities.OfferStatus, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	if st, ok := o.s.statuses[id]; ok {
		return &st, nil
	}
	return nil, nil
}

func (o *OfferStatuses) FindByName(_ context.Context, name string) (*entities.OfferStatus, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	for _, st := range o.s.statuses {
		if st.Name == name {
			st := st
			return &st, nil
		}
	}
	return nil, nil
}

func (o *OfferStatuses) ListAll(_ context.Context) ([]entities.OfferStatus, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	out := make([]entities.OfferStatus, 0, len(o.s.statuses))
	for _, st := range o.s.statuses {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (o *OfferStatuses) Insert(_ context.Context, status *entities.OfferStatus) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	o.s.statuses[status.ID] = *status
	return nil
}

type Offers struct {
	s    *Store
	side constants.Side
}

func (s *Store) Offers(side constants.Side) *Offers { return &Offers{s: s, side: side} }

var _ repositories.OfferStore = (*Offers)(nil)

func (o *Offers) Side() constants.Side { return o.side }

func (o *Offers) FindByID(_ context.Context, id int64) (*entities.Offer, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	if offer, ok := o.s.offers[o.side][id]; ok {
		return &offer, nil
	}
	return nil, nil
}

func (o *Offers) list(keep func(entities.Offer) bool) []entities.Offer {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	var out []entities.Offer
	for _, offer := range o.s.offers[o.side] {
		if keep(offer) {
			out = append(out, offer)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreationDate.After(out[j].CreationDate)
	})
	return out
}

func (o *Offers) ListAll(_ context.Context) ([]entities.Offer, error) {
	return o.list(func(entities.Offer) bool { return true }), nil
}

func (o *Offers) ListByUser(_ context.Context, userID string) ([]entities.Offer, error) {
	return o.list(func(of entities.Offer) bool { return of.UserID == userID }), nil
}

func (o *Offers) ListByAdvertisement(_ context.Context, advertisementID int64) ([]entities.Offer, error) {
	return o.list(func(of entities.Offer) bool { return of.AdvertisementID == advertisementID }), nil
}

func (o *Offers) FindByAdvertisementAndUser(_ context.Context, advertisementID int64, userID string) (*entities.Offer, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	for _, offer := range o.s.offers[o.side] {
		if offer.AdvertisementID == advertisementID && offer.UserID == userID {
			offer := offer
			return &offer, nil
		}
	}
	return nil, nil
}

func (o *Offers) Insert(_ context.Context, offer *entities.Offer) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	stored := *offer
	stored.Advertisement, stored.Offerer = nil, nil
	o.s.offers[o.side][offer.ID] = stored
	return nil
}

func (o *Offers) Replace(_ context.Context, offer *entities.Offer) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	if _, ok := o.s.offers[o.side][offer.ID]; !ok {
		return fmt.Errorf("%s offer %d: %w", o.side, offer.ID, apperrors.ErrNotFound)
	}
	stored := *offer
	stored.Advertisement, stored.Offerer = nil, nil
	o.s.offers[o.side][offer.ID] = stored
	return nil
}

func (o *Offers) UpdateStatus(_ context.Context, id int64, statusID int64, statusName string) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	offer, ok := o.s.offers[o.side][id]
	if !ok {
		return fmt.Errorf("%s offer %d: %w", o.side, id, apperrors.ErrNotFound)
	}
	offer.StatusID = statusID
	offer.StatusName = statusName
	o.s.offers[o.side][id] = offer
	return nil
}

func (o *Offers) Delete(_ context.Context, id int64) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	if _, ok := o.s.offers[o.side][id]; !ok {
		return fmt.Errorf("%s offer %d: %w", o.side, id, apperrors.ErrNotFound)
	}
	delete(o.s.offers[o.side], id)
	return nil
}

func (o *Offers) DeleteByAdvertisement(_ context.Context, advertisementID int64) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	for id, offer := range o.s.offers[o.side] {
		if offer.AdvertisementID == advertisementID {
			delete(o.s.offers[o.side], id)
		}
	}
	return nil
}

type Favorites struct {
	s    *Store
	side constants.Side
}

func (s *Store) Favorites(side constants.Side) *Favorites { return &Favorites{s: s, side: side} }

var _ repositories.FavoriteStore = (*Favorites)(nil)

func (f *Favorites) Side() constants.Side { return f.side }

func (f *Favorites) FindByID(_ context.Context, id int64) (*entities.Favorite, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if fav, ok := f.s.favorites[f.side][id]; ok {
		return &fav, nil
	}
	return nil, nil
}

func (f *Favorites) FindByPair(_ context.Context, advertisementID int64, userID string) (*entities.Favorite, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, fav := range f.s.favorites[f.side] {
		if fav.AdvertisementID == advertisementID && fav.UserID == userID {
			fav := fav
			return &fav, nil
		}
	}
	return nil, nil
}

func (f *Favorites) ListByUser(_ context.Context, userID string) ([]entities.Favorite, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var out []entities.Favorite
	for _, fav := range f.s.favorites[f.side] {
		if fav.UserID == userID {
			out = append(out, fav)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *Favorites) Insert(_ context.Context, fav *entities.Favorite) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.favorites[f.side][fav.ID] = *fav
	return nil
}

func (f *Favorites) Delete(_ context.Context, id int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.favorites[f.side][id]; !ok {
		return fmt.Errorf("%s favorite %d: %w", f.side, id, apperrors.ErrNotFound)
	}
	delete(f.s.favorites[f.side], id)
	return nil
}

func (f *Favorites) DeleteByAdvertisement(_ context.Context, advertisementID int64) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for id, fav := range f.s.favorites[f.side] {
		if fav.AdvertisementID == advertisementID {
			delete(f.s.favorites[f.side], id)
		}
	}
	return nil
}

func (f *Favorites) DeleteByUser(_ context.Context, userID string) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for id, fav := range f.s.favorites[f.side] {
		if fav.UserID == userID {
			delete(f.s.favorites[f.side], id)
		}
	}
	return nil
}
