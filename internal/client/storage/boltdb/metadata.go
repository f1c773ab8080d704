package boltdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/akodina/shopfront/internal/client/storage"
)

var clientIDKey = []byte("client_id")

// Compile-time check that Storage implements MetadataStorage
var _ storage.MetadataStorage = (*Storage)(nil)

// ClientID returns the persistent identifier of this client install,
// generating and storing a new one on first use.
func (s *Storage) ClientID(ctx context.Context) (string, error) {
	var clientID string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if data := bucket.Get(clientIDKey); data != nil {
			clientID = string(data)
			return nil
		}

		clientID = uuid.NewString()
		if err := bucket.Put(clientIDKey, []byte(clientID)); err != nil {
			return fmt.Errorf("failed to save client id: %w", err)
		}

		return nil
	})

	if err != nil {
		return "", fmt.Errorf("failed to get client id: %w", err)
	}

	return clientID, nil
}
