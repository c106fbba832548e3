package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/bloglist/bloglist/internal/logger"
	"github.com/bloglist/bloglist/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (ID, CreatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	scanErr := r.db.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.Username, &created.Name, &created.PasswordHash, &created.CreatedAt)
	if scanErr != nil {
		if postgresError(scanErr) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUsernameTaken
		}

		log.Err(scanErr).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("failed to insert user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", scanErr)
	}

	return created, nil
}

// ListUsers retrieves every user account, in id order.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListUsersQuery()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.db.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).Str("func", "*userRepository.ListUsers").Msg("failed to execute user list query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	users := make([]models.User, 0, 50)

	for rows.Next() {
		var user models.User

		scanErr := rows.Scan(&user.ID, &user.Username, &user.Name, &user.PasswordHash, &user.CreatedAt)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// FindUserByUsername retrieves a user record whose Username exactly
// matches the given value. The comparison is case-sensitive.
//
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUsernameQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanUser(ctx, query, args...)
}

// FindUserByID retrieves a user record by its primary key.
//
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIDQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("failed to build query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanUser(ctx, query, args...)
}

func (r *userRepository) scanUser(ctx context.Context, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	scanErr := r.db.QueryRowContext(ctx, query, args...).
		Scan(&found.ID, &found.Username, &found.Name, &found.PasswordHash, &found.CreatedAt)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(scanErr).Str("func", "*userRepository.scanUser").Msg("failed to scan user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", scanErr)
	}

	return found, nil
}
