package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"edudash/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is surfaced when the unique constraint on email fires.
	// Uniqueness is enforced by the database, not by a check-then-write.
	ErrEmailTaken = errors.New("email already registered")
)

type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	UpdateLastActive(id string, at time.Time) error
}

type userRepository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewUserRepository(db *sqlx.DB, log *zap.Logger) UserRepository {
	return &userRepository{db: db, log: log}
}

func (r *userRepository) CreateUser(user *models.User) error {
	query := `INSERT INTO users (id, name, email, password_hash, role, bio, avatar, is_active, last_active)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	          RETURNING created_at`
	err := r.db.QueryRowx(query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Role,
		user.Bio, user.Avatar, user.IsActive, user.LastActive,
	).Scan(&user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	query := `SELECT id, name, email, password_hash, role, bio, avatar, is_active, last_active, created_at
	          FROM users WHERE email = $1`
	err := r.db.Get(&user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(id string) (*models.User, error) {
	var user models.User
	query := `SELECT id, name, email, password_hash, role, bio, avatar, is_active, last_active, created_at
	          FROM users WHERE id = $1`
	err := r.db.Get(&user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateLastActive(id string, at time.Time) error {
	query := `UPDATE users SET last_active = $2 WHERE id = $1`
	_, err := r.db.Exec(query, id, at)
	return err
}
