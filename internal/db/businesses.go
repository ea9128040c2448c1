package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/OpenHoursHQ/openhours/internal/model"
)

// returned when a write targets a business id that does not exist.
var errNoSuchBusiness = errors.New("no such business")

func (s *pgStore) CreateBusiness(name string, location model.BusinessLocation, createdBy int) (model.Business, error) {
	var b model.Business
	const q = `
	INSERT INTO businesses (name, address, latitude, longitude, timezone_id, created_by, created_at, updated_at)
	VALUES ($1, $2, $3, $4, '', $5, now(), now())
	RETURNING id, name, address, latitude, longitude, timezone_id, created_by, created_at, updated_at;`
	if err := s.db.Get(&b, q, name, location.Address, location.Latitude, location.Longitude, createdBy); err != nil {
		log.Error().Err(err).Msg("CreateBusiness failed")
		return model.Business{}, err
	}
	return b, nil
}

func (s *pgStore) GetBusinessByID(id int) (*model.Business, error) {
	var b model.Business
	const q = `
	SELECT id, name, address, latitude, longitude, timezone_id, created_by, created_at, updated_at
	  FROM businesses
	 WHERE id = $1;`
	if err := s.db.Get(&b, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Int("business_id", id).Msg("GetBusinessByID failed")
		return nil, err
	}
	return &b, nil
}

func (s *pgStore) ListBusinesses(ownerID int) ([]model.Business, error) {
	var out []model.Business
	const q = `
	SELECT id, name, address, latitude, longitude, timezone_id, created_by, created_at, updated_at
	  FROM businesses
	 WHERE created_by = $1
	 ORDER BY id;`
	if err := s.db.Select(&out, q, ownerID); err != nil {
		log.Error().Err(err).Msg("ListBusinesses failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdateBusiness(id int, name, address *string, latitude, longitude *float64) error {
	const q = `
	UPDATE businesses
	   SET name       = COALESCE($2, name),
	       address    = COALESCE($3, address),
	       latitude   = COALESCE($4, latitude),
	       longitude  = COALESCE($5, longitude),
	       updated_at = now()
	 WHERE id = $1;`
	res, err := s.db.Exec(q, id, name, address, latitude, longitude)
	if err != nil {
		log.Error().Err(err).Int("business_id", id).Msg("UpdateBusiness failed")
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return errNoSuchBusiness
	}
	return nil
}
