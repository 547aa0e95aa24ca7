package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/pagekeeper/internal/client/storage"
)

// openTimeout ожидание блокировки файла кэша
const openTimeout = time.Second

// bucketLocal хранит все значения плоско, как localStorage: строковый ключ -> строковое значение
var bucketLocal = []byte("local")

// Storage represents BoltDB implementation of the Local Cache
type Storage struct {
	db        *bbolt.DB
	namespace string
}

// Compile-time checks
var (
	_ storage.ContentCache   = (*Storage)(nil)
	_ storage.SessionStorage = (*Storage)(nil)
	_ storage.TokenStorage   = (*Storage)(nil)
)

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file, namespace prefixes every key
func New(ctx context.Context, dbPath, namespace string) (*Storage, error) {
	if namespace == "" {
		namespace = storage.DefaultNamespace
	}

	// Файл занят другим процессом: ждем не дольше openTimeout
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db, namespace: namespace}

	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Namespace returns the key prefix of this storage
func (s *Storage) Namespace() string {
	return s.namespace
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets создает bucket если он не существует
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketLocal); err != nil {
			return fmt.Errorf("failed to create local bucket: %w", err)
		}
		return nil
	})
}

// getItem читает значение по ключу; ok=false если ключа нет
func (s *Storage) getItem(key string) (value string, ok bool, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLocal)
		if bucket == nil {
			return fmt.Errorf("local bucket not found")
		}
		data := bucket.Get([]byte(key))
		if data == nil {
			return nil
		}
		// bbolt отдает срез, валидный только внутри транзакции
		value = string(data)
		ok = true
		return nil
	})
	return value, ok, err
}

// setItems записывает несколько значений в одной транзакции
func (s *Storage) setItems(items map[string]string) error {
	return s.update(items)
}

// removeItems удаляет значения; отсутствующие ключи игнорируются
func (s *Storage) removeItems(keys ...string) error {
	return s.update(nil, keys...)
}

// update записывает items и удаляет remove в одной транзакции
func (s *Storage) update(items map[string]string, remove ...string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLocal)
		if bucket == nil {
			return fmt.Errorf("local bucket not found")
		}
		for key, value := range items {
			if err := bucket.Put([]byte(key), []byte(value)); err != nil {
				return fmt.Errorf("failed to save %s: %w", key, err)
			}
		}
		for _, key := range remove {
			if err := bucket.Delete([]byte(key)); err != nil {
				return fmt.Errorf("failed to delete %s: %w", key, err)
			}
		}
		return nil
	})
}
