package blob

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/taskdeck/backend/domain"
)

// Store wraps BoltDB to persist small binary objects (profile photos). Each
// object is stored with its content type so it can be served back verbatim.
type Store struct {
	db     *bolt.DB
	bucket []byte
}

// Object is a stored blob plus the metadata needed to serve it over HTTP.
type Object struct {
	ContentType string
	Data        []byte
	StoredAt    time.Time
}

// Open initializes the BoltDB file and ensures the bucket exists.
func Open(path string, bucket string) (*Store, error) {
	if bucket == "" {
		bucket = "photos"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		bucket: []byte(bucket),
	}, nil
}

// Put stores the object under key, replacing any previous value.
func (s *Store) Put(key string, obj Object) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if key == "" || len(obj.Data) == 0 {
		return domain.ErrInvalidPayload
	}
	if obj.StoredAt.IsZero() {
		obj.StoredAt = time.Now()
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), encodeObject(obj))
	})
}

// Get returns the object stored under key.
func (s *Store) Get(key string) (*Object, error) {
	if s == nil || s.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	var obj *Object
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(s.bucket).Get([]byte(key))
		if raw == nil {
			return domain.ErrPhotoNotFound
		}
		decoded, err := decodeObject(raw)
		if err != nil {
			return err
		}
		obj = decoded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// Delete removes the object stored under key. Deleting a missing key is a
// no-op.
func (s *Store) Delete(key string) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(key))
	})
}

// Count returns the number of stored objects.
func (s *Store) Count() (int, error) {
	if s == nil || s.db == nil {
		return 0, bolt.ErrDatabaseNotOpen
	}
	var count int
	err := s.db.View(func(tx *bolt.Tx) error {
		count = tx.Bucket(s.bucket).Stats().KeyN
		return nil
	})
	return count, err
}

// Close closes the Bolt database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Encoding: uint16 content-type length, content type, int64 unix seconds,
// then the raw payload. Avoids base64 inflation of image bytes.
func encodeObject(obj Object) []byte {
	ct := []byte(obj.ContentType)
	buf := make([]byte, 0, 2+len(ct)+8+len(obj.Data))
	buf = binary.BigEndian.AppendUint16(buf, uint16(len(ct)))
	buf = append(buf, ct...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(obj.StoredAt.Unix()))
	buf = append(buf, obj.Data...)
	return buf
}

func decodeObject(raw []byte) (*Object, error) {
	if len(raw) < 10 {
		return nil, domain.ErrInvalidPayload
	}
	ctLen := int(binary.BigEndian.Uint16(raw[:2]))
	if len(raw) < 2+ctLen+8 {
		return nil, domain.ErrInvalidPayload
	}
	ct := string(raw[2 : 2+ctLen])
	ts := int64(binary.BigEndian.Uint64(raw[2+ctLen : 2+ctLen+8]))
	data := append([]byte(nil), raw[2+ctLen+8:]...)
	return &Object{
		ContentType: ct,
		Data:        data,
		StoredAt:    time.Unix(ts, 0),
	}, nil
}
