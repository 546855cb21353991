package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/supportclint/call-logs-backend/internal/models"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

const uniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `
	id, name, email, password_hash, role, company_name, contact_number,
	account_sid, auth_token, created_at
`

func (r *UserRepository) Create(ctx context.Context, user models.User) error {
	const query = `
		INSERT INTO users (
			id, name, email, password_hash, role, company_name, contact_number, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CompanyName,
		user.ContactNumber,
		user.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users WHERE email = $1
	`

	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.CompanyName,
			&user.ContactNumber,
			&user.AccountSID,
			&user.AuthToken,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// Update merges the non-nil patch fields into the stored row. Only the
// whitelisted columns can change; email, role and password are untouchable
// through this path.
func (r *UserRepository) Update(ctx context.Context, id string, patch models.UserPatch) (models.User, error) {
	const query = `
		UPDATE users SET
			name = COALESCE($2, name),
			company_name = COALESCE($3, company_name),
			contact_number = COALESCE($4, contact_number),
			account_sid = COALESCE($5, account_sid),
			auth_token = COALESCE($6, auth_token)
		WHERE id = $1
		RETURNING ` + userColumns + `
	`

	row := r.pool.QueryRow(ctx, query,
		id,
		patch.Name,
		patch.CompanyName,
		patch.ContactNumber,
		patch.AccountSID,
		patch.AuthToken,
	)
	return r.scanOne(row)
}

func (r *UserRepository) scanOne(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CompanyName,
		&user.ContactNumber,
		&user.AccountSID,
		&user.AuthToken,
		&user.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}
