package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"tourist-safety/apperrors"
	"tourist-safety/models"
)

const uniqueViolation = "23505"

type uniqueRule struct {
	namespace string
	field     string
	message   string
}

var uniqueConstraints = map[string]uniqueRule{
	"accounts_email_key":                    {"account", "email", "Email already registered"},
	"tourist_profiles_email_key":            {"tourist", "email", "Tourist with this email already exists"},
	"tourist_profiles_account_id_key":       {"tourist", "user_id", "Account already has a tourist profile"},
	"authority_profiles_official_email_key": {"authority", "official_email", "Authority with this official email already exists"},
	"authority_profiles_authority_id_key":   {"authority", "authority_id", "Authority ID already registered"},
	"authority_profiles_account_id_key":     {"authority", "user_id", "Account already has an authority profile"},
}

// translate maps driver errors onto the application taxonomy. entity names
// the record in the not-found message.
func translate(err error, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NotFound(entity + " not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		if rule, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
			return apperrors.Duplicate(rule.namespace, rule.field, rule.message)
		}
		return apperrors.Duplicate("", "", "Record already exists")
	}
	return fmt.Errorf("%s query: %w", strings.ToLower(entity), err)
}

func dateArg(d *models.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func toDate(t *time.Time) *models.Date {
	if t == nil {
		return nil
	}
	return &models.Date{Time: *t}
}
