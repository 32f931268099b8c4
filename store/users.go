package store

import (
	"database/sql"
	"errors"

	"daily-planner/db"
	"daily-planner/models"

	"github.com/go-sql-driver/mysql"
)

var ErrDuplicateEmail = errors.New("email already registered")

// mysqlDuplicateEntry is the server error number for unique key violations.
const mysqlDuplicateEntry = 1062

func isDuplicate(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// FindUserByEmail returns (nil, nil) when no user has the email.
func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := db.DB.QueryRow(
		"SELECT id, email, password_hash, created_at FROM users WHERE email = ?", email,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(id int) (*models.User, error) {
	var user models.User
	err := db.DB.QueryRow(
		"SELECT id, email, password_hash, created_at FROM users WHERE id = ?", id,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user. The unique index on email closes the race
// a prior FindUserByEmail check leaves open; a violation surfaces as
// ErrDuplicateEmail.
func CreateUser(email, passwordHash string) (*models.User, error) {
	res, err := db.DB.Exec(
		"INSERT INTO users (email, password_hash) VALUES (?, ?)", email, passwordHash,
	)
	if isDuplicate(err) {
		return nil, ErrDuplicateEmail
	}
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return FindUserByID(int(id))
}
