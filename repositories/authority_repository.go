package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"tourist-safety/apperrors"
	"tourist-safety/models"
)

const authorityColumns = `
	id, account_id, full_name, official_email, phone, agency_type, agency_name,
	authority_id, is_verified, created_at, updated_at`

type AuthorityRepository struct {
	db *pgxpool.Pool
}

func NewAuthorityRepository(db *pgxpool.Pool) *AuthorityRepository {
	return &AuthorityRepository{db: db}
}

func scanAuthority(row rowScanner) (*models.AuthorityProfile, error) {
	p := &models.AuthorityProfile{}
	err := row.Scan(
		&p.ID,
		&p.AccountID,
		&p.FullName,
		&p.OfficialEmail,
		&p.Phone,
		&p.AgencyType,
		&p.AgencyName,
		&p.AuthorityID,
		&p.IsVerified,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *AuthorityRepository) EmailExists(ctx context.Context, email string, excludeID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM authority_profiles WHERE official_email = $1 AND id <> $2)`
	if err := r.db.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, translate(err, "Authority profile")
	}
	return exists, nil
}

func (r *AuthorityRepository) AuthorityIDExists(ctx context.Context, authorityID string, excludeID int) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM authority_profiles WHERE authority_id = $1 AND id <> $2)`
	if err := r.db.QueryRow(ctx, query, authorityID, excludeID).Scan(&exists); err != nil {
		return false, translate(err, "Authority profile")
	}
	return exists, nil
}

func (r *AuthorityRepository) CreateWithAccount(ctx context.Context, account *models.Account, profile *models.AuthorityProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := insertAccount(ctx, tx, account); err != nil {
		return translate(err, "Account")
	}

	query := `
		INSERT INTO authority_profiles (
			account_id, full_name, official_email, phone, agency_type, agency_name,
			authority_id, is_verified, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, false, $8, $8)
		RETURNING id, is_verified, created_at, updated_at
	`
	err = tx.QueryRow(ctx, query,
		account.ID,
		profile.FullName,
		profile.OfficialEmail,
		profile.Phone,
		profile.AgencyType,
		profile.AgencyName,
		profile.AuthorityID,
		time.Now(),
	).Scan(&profile.ID, &profile.IsVerified, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return translate(err, "Authority profile")
	}
	profile.AccountID = account.ID

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *AuthorityRepository) FindByAccountID(ctx context.Context, accountID int) (*models.AuthorityProfile, error) {
	query := `SELECT ` + authorityColumns + ` FROM authority_profiles WHERE account_id = $1`
	p, err := scanAuthority(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		return nil, translate(err, "Authority profile")
	}
	return p, nil
}

func (r *AuthorityRepository) FindByID(ctx context.Context, id int) (*models.AuthorityProfile, error) {
	query := `SELECT ` + authorityColumns + ` FROM authority_profiles WHERE id = $1`
	p, err := scanAuthority(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translate(err, "Authority profile")
	}
	return p, nil
}

func (r *AuthorityRepository) List(ctx context.Context, filter models.VerificationFilter) ([]models.AuthorityProfile, error) {
	query := `SELECT ` + authorityColumns + ` FROM authority_profiles`
	switch filter {
	case models.VerificationPending:
		query += ` WHERE is_verified = false`
	case models.VerificationVerified:
		query += ` WHERE is_verified = true`
	}
	query += ` ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, translate(err, "Authority profile")
	}
	defer rows.Close()

	profiles := []models.AuthorityProfile{}
	for rows.Next() {
		p, err := scanAuthority(rows)
		if err != nil {
			return nil, translate(err, "Authority profile")
		}
		profiles = append(profiles, *p)
	}
	return profiles, rows.Err()
}

// Update never touches is_verified.
func (r *AuthorityRepository) Update(ctx context.Context, profile *models.AuthorityProfile, passwordHash string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE authority_profiles
		SET full_name = $1, official_email = $2, phone = $3, agency_name = $4,
			authority_id = $5, updated_at = $6
		WHERE id = $7
		RETURNING account_id, is_verified, updated_at
	`
	err = tx.QueryRow(ctx, query,
		profile.FullName,
		profile.OfficialEmail,
		profile.Phone,
		profile.AgencyName,
		profile.AuthorityID,
		time.Now(),
		profile.ID,
	).Scan(&profile.AccountID, &profile.IsVerified, &profile.UpdatedAt)
	if err != nil {
		return translate(err, "Authority profile")
	}

	if err := updatePassword(ctx, tx, profile.AccountID, passwordHash); err != nil {
		return translate(err, "Account")
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (r *AuthorityRepository) Verify(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	var accountID int
	err = tx.QueryRow(ctx,
		`UPDATE authority_profiles SET is_verified = true, updated_at = $1 WHERE id = $2 RETURNING account_id`,
		now, id,
	).Scan(&accountID)
	if err != nil {
		return translate(err, "Authority profile")
	}

	result, err := tx.Exec(ctx, `UPDATE accounts SET is_active = true, updated_at = $1 WHERE id = $2`, now, accountID)
	if err != nil {
		return translate(err, "Account")
	}
	if result.RowsAffected() == 0 {
		return apperrors.NotFound("Account not found")
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
