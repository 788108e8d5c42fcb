//go:generate go run go.uber.org/mock/mockgen -source=grant.go -destination=../mocks/mock_grant_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"auction-lab/domain"
	"auction-lab/errors"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
)

const grantPrefix = "grant:"

type IGrantRepository interface {
	Put(grant domain.Grant) error
	Get(id string) (domain.Grant, error)
	Delete(id string) error
	List() ([]domain.Grant, error)
}

// GrantRepository persists entitlement grants in BadgerDB, one record per
// key under the grant: prefix. Every mutation commits its own transaction,
// so a grant operation is durable before the caller sees success.
//
// Values are JSON so every grant field round-trips exactly and the store
// stays inspectable with the operator tooling.
type GrantRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewGrantRepository(db *badger.DB, log *slog.Logger) *GrantRepository {
	return &GrantRepository{db: db, log: log}
}

func grantKey(id string) []byte {
	return []byte(grantPrefix + id)
}

// Put writes the full grant record, creating or replacing it.
func (r *GrantRepository) Put(grant domain.Grant) error {
	data, err := json.Marshal(grant)
	if err != nil {
		return fmt.Errorf("marshal grant %s: %w", grant.ID, err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(grantKey(grant.ID), data)
	})
}

func (r *GrantRepository) Get(id string) (domain.Grant, error) {
	var grant domain.Grant
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(grantKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &grant)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Grant{}, errors.ErrGrantNotFound
	}
	if err != nil {
		return domain.Grant{}, err
	}
	return grant, nil
}

// Delete removes the record permanently. Unknown ids surface as not found
// so administrative tooling can distinguish a typo from a deletion.
func (r *GrantRepository) Delete(id string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(grantKey(id)); err != nil {
			return err
		}
		return txn.Delete(grantKey(id))
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrGrantNotFound
	}
	return err
}

// List scans every grant record under the prefix.
func (r *GrantRepository) List() ([]domain.Grant, error) {
	var grants []domain.Grant
	prefix := []byte(grantPrefix)

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var grant domain.Grant
				if err := json.Unmarshal(val, &grant); err != nil {
					return fmt.Errorf("unmarshal grant %s: %w", it.Item().Key(), err)
				}
				grants = append(grants, grant)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error during grant scan: %w", err)
	}
	return grants, nil
}
