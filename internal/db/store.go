// exposes a Store interface that is passed to API controllers
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/OpenHoursHQ/openhours/internal/hours"
	"github.com/OpenHoursHQ/openhours/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)

	// business functions
	CreateBusiness(name string, location model.BusinessLocation, createdBy int) (model.Business, error)
	GetBusinessByID(id int) (*model.Business, error)
	ListBusinesses(ownerID int) ([]model.Business, error)
	UpdateBusiness(id int, name, address *string, latitude, longitude *float64) error

	// working-hours functions
	GetWorkingHours(businessID int) (hours.WorkingHours, error)
	SetWorkingHours(businessID int, working hours.WorkingHours) error
	ClearWorkingHours(businessID int) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore() Store {
	return &pgStore{db: DB}
}
