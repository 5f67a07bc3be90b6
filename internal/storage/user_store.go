package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/10Draken01/Docker-Front/internal/model"
)

// ErrUserNotFound is returned when no adventurer has the requested id.
var ErrUserNotFound = errors.New("user not found")

// UserStore defines the interface for user-related storage operations.
type UserStore interface {
	UserAdd(ctx context.Context, data model.UserCreationData) (model.User, error)
	UserGet(ctx context.Context, id string) (model.User, error)
	UserList(ctx context.Context) ([]model.User, error)
	UserUpdate(ctx context.Context, id string, patch model.UserPatch) (model.User, error)
	UserDelete(ctx context.Context, id string) error
	UserImport(ctx context.Context, users []model.User) (int, error)
}

// UserStorage implements the UserStore interface.
type UserStorage struct {
	storage *Storage
	now     func() time.Time
}

// NewUserStorage creates a new UserStorage instance.
func NewUserStorage(storage *Storage) *UserStorage {
	return &UserStorage{
		storage: storage,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

const userColumns = "id, username, class, level, element, avatar_index, created, updated"

// UserAdd stores a new adventurer with a fresh id and timestamps.
func (s *UserStorage) UserAdd(ctx context.Context, data model.UserCreationData) (model.User, error) {
	now := s.now()
	user := model.User{
		ID:          uuid.NewString(),
		Username:    data.Username,
		Class:       data.Class,
		Level:       data.Level,
		Element:     data.Element,
		AvatarIndex: data.AvatarIndex,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.insert(ctx, user); err != nil {
		return model.User{}, fmt.Errorf("failed to add user: %w", err)
	}
	return user, nil
}

func (s *UserStorage) insert(ctx context.Context, u model.User) error {
	_, err := s.storage.GetDatabase().Exec(ctx,
		`INSERT INTO users (`+userColumns+`, position)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM users))`,
		u.ID, u.Username, string(u.Class), u.Level, string(u.Element), u.AvatarIndex, u.CreatedAt, u.UpdatedAt,
	)
	return err
}

// UserGet retrieves one adventurer by id.
func (s *UserStorage) UserGet(ctx context.Context, id string) (model.User, error) {
	row := s.storage.GetDatabase().QueryRow(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// UserList returns every adventurer in insertion order.
func (s *UserStorage) UserList(ctx context.Context) ([]model.User, error) {
	rows, err := s.storage.GetDatabase().Query(ctx, "SELECT "+userColumns+" FROM users ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}

// UserUpdate applies patch to the stored adventurer and returns the result.
func (s *UserStorage) UserUpdate(ctx context.Context, id string, patch model.UserPatch) (model.User, error) {
	tx, err := s.storage.GetDatabase().BeginTx(ctx)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := scanUser(tx.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	data := patch.Apply(current.CreationData())
	current.Username = data.Username
	current.Class = data.Class
	current.Level = data.Level
	current.Element = data.Element
	current.AvatarIndex = data.AvatarIndex
	current.UpdatedAt = s.now()

	_, err = tx.ExecContext(ctx,
		"UPDATE users SET username = ?, class = ?, level = ?, element = ?, avatar_index = ?, updated = ? WHERE id = ?",
		current.Username, string(current.Class), current.Level, string(current.Element), current.AvatarIndex, current.UpdatedAt, id,
	)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return model.User{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return current, nil
}

// UserDelete removes an adventurer.
func (s *UserStorage) UserDelete(ctx context.Context, id string) error {
	result, err := s.storage.GetDatabase().Exec(ctx, "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UserImport stores previously exported adventurers, keeping their ids and
// timestamps. Adventurers whose id already exists are skipped.
func (s *UserStorage) UserImport(ctx context.Context, users []model.User) (int, error) {
	imported := 0
	for _, u := range users {
		if u.ID == "" {
			u.ID = uuid.NewString()
		}
		if u.CreatedAt.IsZero() {
			u.CreatedAt = s.now()
		}
		if u.UpdatedAt.IsZero() {
			u.UpdatedAt = u.CreatedAt
		}
		if _, err := s.UserGet(ctx, u.ID); err == nil {
			continue
		} else if !errors.Is(err, ErrUserNotFound) {
			return imported, err
		}
		if err := s.insert(ctx, u); err != nil {
			return imported, fmt.Errorf("failed to import user %s: %w", u.ID, err)
		}
		imported++
	}
	return imported, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (model.User, error) {
	var u model.User
	var class, element string
	err := row.Scan(&u.ID, &u.Username, &class, &u.Level, &element, &u.AvatarIndex, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return model.User{}, err
	}
	u.Class = model.CharacterClass(class)
	u.Element = model.Element(element)
	return u, nil
}
