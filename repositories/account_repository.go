package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tourist-safety/models"
)

const accountColumns = `id, email, password, is_active, is_staff, created_at, updated_at`

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	a := &models.Account{}
	err := row.Scan(&a.ID, &a.Email, &a.Password, &a.IsActive, &a.IsStaff, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertAccount(ctx context.Context, q querier, account *models.Account) error {
	query := `
		INSERT INTO accounts (email, password, is_active, is_staff, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return q.QueryRow(ctx, query,
		account.Email,
		account.Password,
		account.IsActive,
		account.IsStaff,
		now,
	).Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
}

func (r *AccountRepository) Create(ctx context.Context, account *models.Account) error {
	return translate(insertAccount(ctx, r.db, account), "Account")
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	a, err := scanAccount(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, translate(err, "Account")
	}
	return a, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id int) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	a, err := scanAccount(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, translate(err, "Account")
	}
	return a, nil
}

func (r *AccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, translate(err, "Account")
	}
	return exists, nil
}

func updatePassword(ctx context.Context, tx pgx.Tx, accountID int, hash string) error {
	if hash == "" {
		return nil
	}
	_, err := tx.Exec(ctx, `UPDATE accounts SET password = $1, updated_at = $2 WHERE id = $3`, hash, time.Now(), accountID)
	return err
}
