// Package memory keeps every record in process memory. It backs the tests and
// STORE_DRIVER=memory; data is lost on restart.
package memory

import (
	"sort"
	"sync"
	"time"

	"tourist-safety/apperrors"
	"tourist-safety/models"
)

// Store holds all tables behind one lock so paired writes stay atomic.
type Store struct {
	mu sync.RWMutex

	accounts    map[int]models.Account
	tourists    map[int]models.TouristProfile
	contacts    map[int]models.EmergencyContact
	authorities map[int]models.AuthorityProfile
	places      map[int]models.Place
	incidents   map[int]models.Incident

	seq map[string]int
	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		accounts:    make(map[int]models.Account),
		tourists:    make(map[int]models.TouristProfile),
		contacts:    make(map[int]models.EmergencyContact),
		authorities: make(map[int]models.AuthorityProfile),
		places:      make(map[int]models.Place),
		incidents:   make(map[int]models.Incident),
		seq:         make(map[string]int),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Accounts() *AccountStore { return &AccountStore{s} }
func (s *Store) Tourists() *TouristStore { return &TouristStore{s} }
func (s *Store) Contacts() *ContactStore { return &ContactStore{s} }
func (s *Store) Authorities() *AuthorityStore { return &AuthorityStore{s} }
func (s *Store) Places() *PlaceStore { return &PlaceStore{s} }
func (s *Store) Incidents() *IncidentStore { return &IncidentStore{s} }

// next must be called with the write lock held.
func (s *Store) next(table string) int {
	s.seq[table]++
	return s.seq[table]
}

func (s *Store) accountEmailTaken(email string) bool {
	for _, a := range s.accounts {
		if a.Email == email {
			return true
		}
	}
	return false
}

func (s *Store) insertAccount(account *models.Account) {
	now := s.now()
	account.ID = s.next("accounts")
	account.CreatedAt = now
	account.UpdatedAt = now
	s.accounts[account.ID] = *account
}

func (s *Store) setPassword(accountID int, hash string) {
	if hash == "" {
		return
	}
	if a, ok := s.accounts[accountID]; ok {
		a.Password = hash
		a.UpdatedAt = s.now()
		s.accounts[accountID] = a
	}
}

func duplicateAccountEmail() error {
	return apperrors.Duplicate("account", "email", "Email already registered")
}

func sortedValues[T any](m map[int]T) []T {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}
