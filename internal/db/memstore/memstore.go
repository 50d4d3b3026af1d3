// Package memstore is an in-memory implementation of every store
// interface, used by service tests in place of a running database. It
// mirrors the repository contracts exactly: Find misses return
// (nil, nil), deletes of absent rows fail or no-op the same way the
// backing collections do, and list orderings match the repository sorts.
package memstore

import (
	"context"
	"sync"

	"scoutline/backend/internal/constants"
	"scoutline/backend/internal/models/entities"
)

type Store struct {
	mu sync.Mutex

	seq map[string]int64

	users        map[string]entities.User
	roles        map[int64]entities.Role
	userRoles    map[int64]entities.UserRole
	positions    map[int64]entities.PlayerPosition
	salaryRanges map[int64]entities.SalaryRange
	statuses     map[int64]entities.OfferStatus

	ads       map[constants.Side]map[int64]entities.Advertisement
	offers    map[constants.Side]map[int64]entities.Offer
	favorites map[constants.Side]map[int64]entities.Favorite

	problems     map[int64]entities.Problem
	histories    map[int64]entities.ClubHistory
	achievements map[int64]entities.Achievements
	chats        map[int64]entities.Chat
	messages     map[int64]entities.Message
	cascadeRuns  map[string]entities.CascadeRun
}

func New() *Store {
	return &Store{
		seq:          make(map[string]int64),
		users:        make(map[string]entities.User),
		roles:        make(map[int64]entities.Role),
		userRoles:    make(map[int64]entities.UserRole),
		positions:    make(map[int64]entities.PlayerPosition),
		salaryRanges: make(map[int64]entities.SalaryRange),
		statuses:     make(map[int64]entities.OfferStatus),
		ads: map[constants.Side]map[int64]entities.Advertisement{
			constants.SidePlayer: {},
			constants.SideClub:   {},
		},
		offers: map[constants.Side]map[int64]entities.Offer{
			constants.SidePlayer: {},
			constants.SideClub:   {},
		},
		favorites: map[constants.Side]map[int64]entities.Favorite{
			constants.SidePlayer: {},
			constants.SideClub:   {},
		},
		problems:     make(map[int64]entities.Problem),
		histories:    make(map[int64]entities.ClubHistory),
		achievements: make(map[int64]entities.Achievements),
		chats:        make(map[int64]entities.Chat),
		messages:     make(map[int64]entities.Message),
		cascadeRuns:  make(map[string]entities.CascadeRun),
	}
}

// NextID implements db.SequenceAllocator
func (s *Store) NextID(_ context.Context, collection string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[collection]++
	return s.seq[collection], nil
}
