package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"tourist-safety/apperrors"
	"tourist-safety/geofence"
	"tourist-safety/models"
)

const placeColumns = `id, name, place_type, description, lat, lng, address`

type PlaceRepository struct {
	db *pgxpool.Pool
}

func NewPlaceRepository(db *pgxpool.Pool) *PlaceRepository {
	return &PlaceRepository{db: db}
}

func (r *PlaceRepository) queryPlaces(ctx context.Context, query string, args ...any) ([]models.Place, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, translate(err, "Place")
	}
	defer rows.Close()

	places := []models.Place{}
	for rows.Next() {
		var p models.Place
		if err := rows.Scan(&p.ID, &p.Name, &p.PlaceType, &p.Description, &p.Lat, &p.Lng, &p.Address); err != nil {
			return nil, translate(err, "Place")
		}
		places = append(places, p)
	}
	return places, rows.Err()
}

func (r *PlaceRepository) List(ctx context.Context, placeType models.PlaceType) ([]models.Place, error) {
	if placeType == "" {
		return r.queryPlaces(ctx, `SELECT `+placeColumns+` FROM places ORDER BY id`)
	}
	return r.queryPlaces(ctx, `SELECT `+placeColumns+` FROM places WHERE place_type = $1 ORDER BY id`, placeType)
}

func (r *PlaceRepository) FindInBox(ctx context.Context, box geofence.Box) ([]models.Place, error) {
	query := `
		SELECT ` + placeColumns + ` FROM places
		WHERE lat BETWEEN $1 AND $2 AND lng BETWEEN $3 AND $4
		ORDER BY id
	`
	return r.queryPlaces(ctx, query, box.MinLat, box.MaxLat, box.MinLng, box.MaxLng)
}

func (r *PlaceRepository) FindByID(ctx context.Context, id int) (*models.Place, error) {
	var p models.Place
	err := r.db.QueryRow(ctx, `SELECT `+placeColumns+` FROM places WHERE id = $1`, id).Scan(
		&p.ID, &p.Name, &p.PlaceType, &p.Description, &p.Lat, &p.Lng, &p.Address,
	)
	if err != nil {
		return nil, translate(err, "Place")
	}
	return &p, nil
}

func (r *PlaceRepository) Create(ctx context.Context, place *models.Place) error {
	query := `
		INSERT INTO places (name, place_type, description, lat, lng, address)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		place.Name, place.PlaceType, place.Description, place.Lat, place.Lng, place.Address,
	).Scan(&place.ID)
	return translate(err, "Place")
}

func (r *PlaceRepository) Update(ctx context.Context, place *models.Place) error {
	query := `
		UPDATE places
		SET name = $1, place_type = $2, description = $3, lat = $4, lng = $5, address = $6
		WHERE id = $7
	`
	result, err := r.db.Exec(ctx, query,
		place.Name, place.PlaceType, place.Description, place.Lat, place.Lng, place.Address, place.ID,
	)
	if err != nil {
		return translate(err, "Place")
	}
	if result.RowsAffected() == 0 {
		return apperrors.NotFound("Place not found")
	}
	return nil
}

func (r *PlaceRepository) Delete(ctx context.Context, id int) error {
	result, err := r.db.Exec(ctx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		return translate(err, "Place")
	}
	if result.RowsAffected() == 0 {
		return apperrors.NotFound("Place not found")
	}
	return nil
}
