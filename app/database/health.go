package database

import (
	"database/sql"
	"time"

	"github.com/nhatthien88/website-truong-mam-non/app/models"
)

// GetHealthRecordsByDate returns all records for a class roster on one day,
// keyed by student id.
func GetHealthRecordsByDate(db *sql.DB, classID string, date time.Time) (map[string]*models.HealthRecord, error) {
	query := `SELECT h.id, h.student_id, h.record_date, h.weight_kg, h.temperature_c, h.note
			  FROM health_records h
			  JOIN students s ON s.id = h.student_id
			  WHERE s.class_id = $1 AND h.record_date = $2`

	rows, err := db.Query(query, classID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make(map[string]*models.HealthRecord)
	for rows.Next() {
		r := &models.HealthRecord{}
		if err := rows.Scan(&r.ID, &r.StudentID, &r.RecordDate, &r.WeightKg,
			&r.TemperatureC, &r.Note); err != nil {
			return nil, err
		}
		records[r.StudentID] = r
	}
	return records, rows.Err()
}

func GetHealthRecord(db *sql.DB, studentID string, date time.Time) (*models.HealthRecord, error) {
	r := &models.HealthRecord{}
	query := `SELECT id, student_id, record_date, weight_kg, temperature_c, note
			  FROM health_records WHERE student_id = $1 AND record_date = $2`

	err := db.QueryRow(query, studentID, date).Scan(&r.ID, &r.StudentID, &r.RecordDate,
		&r.WeightKg, &r.TemperatureC, &r.Note)
	if err != nil {
		return nil, MapError(err)
	}
	return r, nil
}

// UpsertHealthRecord writes the single record for (student, date). The unique
// constraint carries the one-per-day invariant.
func UpsertHealthRecord(db *sql.DB, record *models.HealthRecord) error {
	query := `INSERT INTO health_records (student_id, record_date, weight_kg, temperature_c, note)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT ON CONSTRAINT uq_health_student_date
			  DO UPDATE SET weight_kg = EXCLUDED.weight_kg,
			                temperature_c = EXCLUDED.temperature_c,
			                note = EXCLUDED.note
			  RETURNING id`
	err := db.QueryRow(query, record.StudentID, record.RecordDate, record.WeightKg,
		record.TemperatureC, record.Note).Scan(&record.ID)
	if err != nil {
		return MapError(err)
	}
	return nil
}
