package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"tourist-safety/models"
)

const incidentColumns = `id, profile_id, title, description, created_at, lat, lng, evidence, resolved`

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) *IncidentRepository {
	return &IncidentRepository{db: db}
}

func scanIncident(row rowScanner) (*models.Incident, error) {
	i := &models.Incident{}
	err := row.Scan(&i.ID, &i.ProfileID, &i.Title, &i.Description, &i.CreatedAt, &i.Lat, &i.Lng, &i.Evidence, &i.Resolved)
	if err != nil {
		return nil, err
	}
	return i, nil
}

func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (profile_id, title, description, created_at, lat, lng, evidence, resolved)
		SELECT id, $2::text, $3::text, $4::timestamptz, $5::float8, $6::float8, $7::text, $8::boolean
		FROM tourist_profiles WHERE id = $1
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		incident.ProfileID,
		incident.Title,
		incident.Description,
		time.Now(),
		incident.Lat,
		incident.Lng,
		incident.Evidence,
		incident.Resolved,
	).Scan(&incident.ID, &incident.CreatedAt)
	return translate(err, "Tourist profile")
}

func (r *IncidentRepository) FindByID(ctx context.Context, id int) (*models.Incident, error) {
	i, err := scanIncident(r.db.QueryRow(ctx, `SELECT `+incidentColumns+` FROM incidents WHERE id = $1`, id))
	if err != nil {
		return nil, translate(err, "Incident")
	}
	return i, nil
}

func (r *IncidentRepository) List(ctx context.Context, resolved *bool) ([]models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents`
	args := []any{}
	if resolved != nil {
		query += ` WHERE resolved = $1`
		args = append(args, *resolved)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translate(err, "Incident")
	}
	defer rows.Close()

	incidents := []models.Incident{}
	for rows.Next() {
		i, err := scanIncident(rows)
		if err != nil {
			return nil, translate(err, "Incident")
		}
		incidents = append(incidents, *i)
	}
	return incidents, rows.Err()
}

func (r *IncidentRepository) ListAlerts(ctx context.Context) ([]models.SOSAlert, error) {
	query := `
		SELECT
			i.id, i.profile_id, i.title, i.description, i.created_at,
			i.lat, i.lng, i.evidence, i.resolved,
			t.name, t.email, t.phone
		FROM incidents i
		JOIN tourist_profiles t ON t.id = i.profile_id
		WHERE i.resolved = false
		ORDER BY i.created_at DESC, i.id DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, translate(err, "Incident")
	}
	defer rows.Close()

	alerts := []models.SOSAlert{}
	for rows.Next() {
		var a models.SOSAlert
		err := rows.Scan(
			&a.ID, &a.ProfileID, &a.Title, &a.Description, &a.CreatedAt,
			&a.Lat, &a.Lng, &a.Evidence, &a.Resolved,
			&a.TouristName, &a.TouristEmail, &a.TouristPhone,
		)
		if err != nil {
			return nil, translate(err, "Incident")
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (r *IncidentRepository) Resolve(ctx context.Context, id int) (*models.Incident, error) {
	query := `UPDATE incidents SET resolved = true WHERE id = $1 RETURNING ` + incidentColumns
	i, err := scanIncident(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translate(err, "Incident")
	}
	return i, nil
}
