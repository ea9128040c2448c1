package db

import (
	"github.com/rs/zerolog/log"

	"github.com/OpenHoursHQ/openhours/internal/hours"
)

// GetWorkingHours loads a business's schedule: the timezone id lives
// on the businesses row, the intervals in business_hours.
func (s *pgStore) GetWorkingHours(businessID int) (hours.WorkingHours, error) {
	var timezoneID string
	if err := s.db.Get(&timezoneID, `SELECT timezone_id FROM businesses WHERE id = $1;`, businessID); err != nil {
		log.Error().Err(err).Int("business_id", businessID).Msg("GetWorkingHours failed")
		return hours.WorkingHours{}, err
	}

	type row struct {
		StartSec int `db:"start_sec"`
		EndSec   int `db:"end_sec"`
	}
	var rows []row
	const q = `
	SELECT start_sec, end_sec
	  FROM business_hours
	 WHERE business_id = $1
	 ORDER BY start_sec, end_sec;`
	if err := s.db.Select(&rows, q, businessID); err != nil {
		log.Error().Err(err).Int("business_id", businessID).Msg("GetWorkingHours intervals failed")
		return hours.WorkingHours{}, err
	}

	working := hours.WorkingHours{TimezoneID: timezoneID}
	for _, r := range rows {
		working.Intervals = append(working.Intervals, hours.Interval{Start: r.StartSec, End: r.EndSec})
	}
	return working, nil
}

// SetWorkingHours rewrites the schedule wholesale inside one
// transaction. Intervals are stored normalized.
func (s *pgStore) SetWorkingHours(businessID int, working hours.WorkingHours) error {
	normalized := working.Normalized()

	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE businesses SET timezone_id = $2, updated_at = now() WHERE id = $1;`,
		businessID, normalized.TimezoneID)
	if err != nil {
		log.Error().Err(err).Int("business_id", businessID).Msg("SetWorkingHours update failed")
		return err
	}
	if rows, err := res.RowsAffected(); err != nil {
		return err
	} else if rows == 0 {
		return errNoSuchBusiness
	}

	if _, err := tx.Exec(`DELETE FROM business_hours WHERE business_id = $1;`, businessID); err != nil {
		log.Error().Err(err).Int("business_id", businessID).Msg("SetWorkingHours delete failed")
		return err
	}
	for _, interval := range normalized.Intervals {
		if _, err := tx.Exec(`
		INSERT INTO business_hours (business_id, start_sec, end_sec)
		VALUES ($1, $2, $3);`, businessID, interval.Start, interval.End); err != nil {
			log.Error().Err(err).Int("business_id", businessID).Msg("SetWorkingHours insert failed")
			return err
		}
	}
	return tx.Commit()
}

// ClearWorkingHours drops the schedule and blanks the timezone id,
// returning the business to the "no hours set" state.
func (s *pgStore) ClearWorkingHours(businessID int) error {
	return s.SetWorkingHours(businessID, hours.WorkingHours{})
}
