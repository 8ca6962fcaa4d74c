// Package session keeps the authenticated session of the terminal client.
//
// Store persists the bearer token and the user profile in the local SQLite
// database so a session survives restarts. Manager is the in-memory view of
// that state shared by the REPL and the API client.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/cardkeeper/internal/client/models"
	"github.com/dmitrijs2005/cardkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/cardkeeper/internal/dbx"
	"github.com/dmitrijs2005/cardkeeper/internal/logging"
)

const (
	keyToken = "authToken"
	keyUser  = "userInfo"
)

type Store struct {
	db     *sql.DB
	repo   metadata.Repository
	logger logging.Logger
}

func NewStore(db *sql.DB, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{db: db, repo: metadata.NewSQLiteRepository(db), logger: logger}
}

// Read returns the persisted session. It never fails: a missing token, a
// missing or malformed profile, or a storage error all mean "no session".
func (s *Store) Read(ctx context.Context) (models.Session, bool) {
	token, ok := s.Token(ctx)
	if !ok {
		return models.Session{}, false
	}

	raw, err := s.repo.Get(ctx, keyUser)
	if err != nil {
		s.logger.Warn(ctx, "read session profile", "error", err)
		return models.Session{}, false
	}
	if raw == nil {
		return models.Session{}, false
	}

	var user *models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.logger.Warn(ctx, "stored session profile is malformed", "error", err)
		return models.Session{}, false
	}
	if user == nil {
		return models.Session{}, false
	}

	return models.Session{Token: token, User: *user}, true
}

// Token returns the stored bearer token. It satisfies api.TokenSource.
func (s *Store) Token(ctx context.Context) (string, bool) {
	raw, err := s.repo.Get(ctx, keyToken)
	if err != nil {
		s.logger.Warn(ctx, "read session token", "error", err)
		return "", false
	}
	if len(raw) == 0 {
		return "", false
	}
	return string(raw), true
}

// Write persists token and user atomically.
func (s *Store) Write(ctx context.Context, token string, user models.User) error {
	profile, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, profile)
	})
}

// Clear removes the token and the profile. Clearing an empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, keyToken, keyUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
