package db

import (
	"database/sql"
	"sync"
	"time"

	"github.com/OpenHoursHQ/openhours/internal/hours"
	"github.com/OpenHoursHQ/openhours/internal/model"
)

// MemStore is an in-memory Store used by handler tests and local
// experiments. It mirrors pgStore semantics, including sql.ErrNoRows
// on missing rows.
type MemStore struct {
	mu             sync.Mutex
	users          map[int]model.User
	businesses     map[int]model.Business
	hours          map[int]hours.IntervalSet
	nextUserID     int
	nextBusinessID int
}

var _ Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{
		users:          make(map[int]model.User),
		businesses:     make(map[int]model.Business),
		hours:          make(map[int]hours.IntervalSet),
		nextUserID:     1,
		nextBusinessID: 1,
	}
}

func (s *MemStore) CreateUser(email, hashedPassword string, name *string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextUserID
	s.nextUserID++
	s.users[id] = model.User{
		ID:             id,
		Email:          email,
		HashedPassword: hashedPassword,
		Name:           name,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	return id, nil
}

func (s *MemStore) GetUserByEmail(email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *MemStore) GetUserByID(id int) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &user, nil
}

func (s *MemStore) CreateBusiness(name string, location model.BusinessLocation, createdBy int) (model.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextBusinessID
	s.nextBusinessID++
	business := model.Business{
		ID:        id,
		Name:      name,
		Address:   location.Address,
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		CreatedBy: createdBy,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.businesses[id] = business
	return business, nil
}

func (s *MemStore) GetBusinessByID(id int) (*model.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	business, ok := s.businesses[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &business, nil
}

func (s *MemStore) ListBusinesses(ownerID int) ([]model.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Business
	for id := 1; id < s.nextBusinessID; id++ {
		if business, ok := s.businesses[id]; ok && business.CreatedBy == ownerID {
			out = append(out, business)
		}
	}
	return out, nil
}

func (s *MemStore) UpdateBusiness(id int, name, address *string, latitude, longitude *float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	business, ok := s.businesses[id]
	if !ok {
		return errNoSuchBusiness
	}
	if name != nil {
		business.Name = *name
	}
	if address != nil {
		business.Address = *address
	}
	if latitude != nil {
		business.Latitude = latitude
	}
	if longitude != nil {
		business.Longitude = longitude
	}
	business.UpdatedAt = time.Now()
	s.businesses[id] = business
	return nil
}

func (s *MemStore) GetWorkingHours(businessID int) (hours.WorkingHours, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	business, ok := s.businesses[businessID]
	if !ok {
		return hours.WorkingHours{}, sql.ErrNoRows
	}
	return hours.WorkingHours{
		Intervals:  append(hours.IntervalSet(nil), s.hours[businessID]...),
		TimezoneID: business.TimezoneID,
	}, nil
}

func (s *MemStore) SetWorkingHours(businessID int, working hours.WorkingHours) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	business, ok := s.businesses[businessID]
	if !ok {
		return errNoSuchBusiness
	}
	normalized := working.Normalized()
	business.TimezoneID = normalized.TimezoneID
	business.UpdatedAt = time.Now()
	s.businesses[businessID] = business
	s.hours[businessID] = normalized.Intervals
	return nil
}

func (s *MemStore) ClearWorkingHours(businessID int) error {
	return s.SetWorkingHours(businessID, hours.WorkingHours{})
}
