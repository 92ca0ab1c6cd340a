package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"tourist-safety/apperrors"
	"tourist-safety/models"
)

type ContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) ListByProfile(ctx context.Context, profileID int) ([]models.EmergencyContact, error) {
	query := `SELECT id, profile_id, name, relation, phone FROM emergency_contacts WHERE profile_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, translate(err, "Emergency contact")
	}
	defer rows.Close()

	contacts := []models.EmergencyContact{}
	for rows.Next() {
		var c models.EmergencyContact
		if err := rows.Scan(&c.ID, &c.ProfileID, &c.Name, &c.Relation, &c.Phone); err != nil {
			return nil, translate(err, "Emergency contact")
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *ContactRepository) Create(ctx context.Context, contact *models.EmergencyContact) error {
	query := `
		INSERT INTO emergency_contacts (profile_id, name, relation, phone)
		SELECT id, $2::text, $3::text, $4::text FROM tourist_profiles WHERE id = $1
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, contact.ProfileID, contact.Name, contact.Relation, contact.Phone).Scan(&contact.ID)
	return translate(err, "Tourist profile")
}

func (r *ContactRepository) FindByID(ctx context.Context, id int) (*models.EmergencyContact, error) {
	query := `SELECT id, profile_id, name, relation, phone FROM emergency_contacts WHERE id = $1`

	c := &models.EmergencyContact{}
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.ProfileID, &c.Name, &c.Relation, &c.Phone)
	if err != nil {
		return nil, translate(err, "Emergency contact")
	}
	return c, nil
}

func (r *ContactRepository) Update(ctx context.Context, contact *models.EmergencyContact) error {
	query := `
		UPDATE emergency_contacts SET name = $1, relation = $2, phone = $3
		WHERE id = $4
		RETURNING profile_id
	`
	err := r.db.QueryRow(ctx, query, contact.Name, contact.Relation, contact.Phone, contact.ID).Scan(&contact.ProfileID)
	return translate(err, "Emergency contact")
}

func (r *ContactRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM emergency_contacts WHERE id = $1`, id)
	if err != nil {
		return translate(err, "Emergency contact")
	}
	if result.RowsAffected() == 0 {
		return apperrors.NotFound("Emergency contact not found")
	}
	return nil
}
