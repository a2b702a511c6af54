package repositories

import (
	"time"

	"github.com/dgraph-io/badger/v4"
)

type sessionRecord struct {
	UserID    int
	ExpiresAt time.Time
}

// BadgerSessionRepository implements SessionRepository using BadgerDB.
// Tokens additionally carry a badger TTL so expired sessions are
// reclaimed without a sweeper.
type BadgerSessionRepository struct {
	db *badger.DB
}

// NewBadgerSessionRepository creates a new BadgerSessionRepository
func NewBadgerSessionRepository(db *badger.DB) *BadgerSessionRepository {
	return &BadgerSessionRepository{db: db}
}

func sessionKey(token string) []byte {
	return []byte(SessionKeyPrefix + token)
}

// Create stores a session token for a user
func (r *BadgerSessionRepository) Create(token string, userID int, expiresAt time.Time) error {
	return r.db.Update(func(txn *badger.Txn) error {
		record := sessionRecord{UserID: userID, ExpiresAt: expiresAt}
		data, err := marshalEntity(&record)
		if err != nil {
			return err
		}
		entry := badger.NewEntry(sessionKey(token), data).
			WithTTL(time.Until(expiresAt))
		return txn.SetEntry(entry)
	})
}

// Get resolves a session token to a user ID. Expired or unknown
// tokens yield ErrNotFound.
func (r *BadgerSessionRepository) Get(token string) (int, error) {
	var record sessionRecord

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(token))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &record)
		})
	})

	if err != nil {
		return 0, err
	}
	if time.Now().After(record.ExpiresAt) {
		return 0, ErrNotFound
	}
	return record.UserID, nil
}

// Delete removes a session token
func (r *BadgerSessionRepository) Delete(token string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(sessionKey(token))
	})
}
