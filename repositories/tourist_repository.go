package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"tourist-safety/apperrors"
	"tourist-safety/models"
)

const touristColumns = `
	id, account_id, name, email, phone, country, nationality, current_location,
	photo_url, photo_key, blockchain_id, from_address, to_address,
	arrival_date, departure_date, hotel_name, hotel_address, created_at, updated_at`

type TouristRepository struct {
	db *pgxpool.Pool
}

func NewTouristRepository(db *pgxpool.Pool) *TouristRepository {
	return &TouristRepository{db: db}
}

func scanTourist(row rowScanner) (*models.TouristProfile, error) {
	p := &models.TouristProfile{}
	var arrival, departure *time.Time
	err := row.Scan(
		&p.ID,
		&p.AccountID,
		&p.Name,
		&p.Email,
		&p.Phone,
		&p.Country,
		&p.Nationality,
		&p.CurrentLocation,
		&p.PhotoURL,
		&p.PhotoKey,
		&p.BlockchainID,
		&p.FromAddress,
		&p.ToAddress,
		&arrival,
		&departure,
		&p.HotelName,
		&p.HotelAddress,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ArrivalDate = toDate(arrival)
	p.DepartureDate = toDate(departure)
	return p, nil
}

func (r *TouristRepository) EmailExists(ctx context.Context, email string, excludeID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM tourist_profiles WHERE email = $1 AND id <> $2)`
	if err := r.db.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, translate(err, "Tourist profile")
	}
	return exists, nil
}

func (r *TouristRepository) CreateWithAccount(ctx context.Context, account *models.Account, profile *models.TouristProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := insertAccount(ctx, tx, account); err != nil {
		return translate(err, "Account")
	}

	query := `
		INSERT INTO tourist_profiles (
			account_id, name, email, phone, country, nationality, current_location,
			photo_url, photo_key, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRow(ctx, query,
		account.ID,
		profile.Name,
		profile.Email,
		profile.Phone,
		profile.Country,
		profile.Nationality,
		profile.CurrentLocation,
		profile.PhotoURL,
		profile.PhotoKey,
		time.Now(),
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return translate(err, "Tourist profile")
	}
	profile.AccountID = account.ID

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *TouristRepository) FindByAccountID(ctx context.Context, accountID int) (*models.TouristProfile, error) {
	query := `SELECT ` + touristColumns + ` FROM tourist_profiles WHERE account_id = $1`
	p, err := scanTourist(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		return nil, translate(err, "Tourist profile")
	}
	return p, nil
}

func (r *TouristRepository) FindByID(ctx context.Context, id int) (*models.TouristProfile, error) {
	query := `SELECT ` + touristColumns + ` FROM tourist_profiles WHERE id = $1`
	p, err := scanTourist(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translate(err, "Tourist profile")
	}
	return p, nil
}

func (r *TouristRepository) List(ctx context.Context) ([]models.TouristProfile, error) {
	query := `SELECT ` + touristColumns + ` FROM tourist_profiles ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, translate(err, "Tourist profile")
	}
	defer rows.Close()

	profiles := []models.TouristProfile{}
	for rows.Next() {
		p, err := scanTourist(rows)
		if err != nil {
			return nil, translate(err, "Tourist profile")
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

func (r *TouristRepository) Update(ctx context.Context, profile *models.TouristProfile, passwordHash string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE tourist_profiles
		SET name = $1, email = $2, phone = $3, country = $4, nationality = $5,
			current_location = $6, photo_url = $7, photo_key = $8, blockchain_id = $9,
			from_address = $10, to_address = $11, arrival_date = $12, departure_date = $13,
			hotel_name = $14, hotel_address = $15, updated_at = $16
		WHERE id = $17
		RETURNING account_id, updated_at
	`
	err = tx.QueryRow(ctx, query,
		profile.Name,
		profile.Email,
		profile.Phone,
		profile.Country,
		profile.Nationality,
		profile.CurrentLocation,
		profile.PhotoURL,
		profile.PhotoKey,
		profile.BlockchainID,
		profile.FromAddress,
		profile.ToAddress,
		dateArg(profile.ArrivalDate),
		dateArg(profile.DepartureDate),
		profile.HotelName,
		profile.HotelAddress,
		time.Now(),
		profile.ID,
	).Scan(&profile.AccountID, &profile.UpdatedAt)
	if err != nil {
		return translate(err, "Tourist profile")
	}

	if err := updatePassword(ctx, tx, profile.AccountID, passwordHash); err != nil {
		return translate(err, "Account")
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Delete drops the owning account; contacts and incidents follow through
// ON DELETE CASCADE.
func (r *TouristRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM accounts WHERE id = (SELECT account_id FROM tourist_profiles WHERE id = $1)`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return translate(err, "Tourist profile")
	}
	if result.RowsAffected() == 0 {
		return apperrors.NotFound("Tourist profile not found")
	}
	return nil
}
