// Package store persists serialized snapshots of the platform's collections
// to a string-keyed blob store. The in-memory state owned by the services is
// authoritative; the store is a mirror that is written through on mutation
// and read back only at startup.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Vivek9939947227/Asprints-Aada/internal/models"
)

// ErrNotFound is returned when a key holds no blob.
var ErrNotFound = errors.New("store: key not found")

// Fixed keys, one per collection. Each key is fully overwritten on save.
const (
	KeyProperties = "properties"
	KeyUser       = "user"
	KeyInquiries  = "inquiries"
)

// Store is the persistence boundary for the state manager. Load methods
// return ErrNotFound for absent keys and a decode error for corrupt blobs;
// the caller decides the fallback (seed dataset or empty collection).
type Store interface {
	LoadProperties(ctx context.Context) ([]models.Property, error)
	SaveProperties(ctx context.Context, properties []models.Property) error
	LoadInquiries(ctx context.Context) ([]models.Inquiry, error)
	SaveInquiries(ctx context.Context, inquiries []models.Inquiry) error
	LoadUser(ctx context.Context) (*models.User, error)
	SaveUser(ctx context.Context, user *models.User) error
	ClearUser(ctx context.Context) error
}

// kv is the minimal blob transport the typed layer sits on.
type kv interface {
	get(ctx context.Context, key string) ([]byte, error)
	set(ctx context.Context, key string, value []byte) error
	del(ctx context.Context, key string) error
}

// blobStore implements Store on top of any kv transport.
type blobStore struct {
	kv kv
}

func (s *blobStore) LoadProperties(ctx context.Context) ([]models.Property, error) {
	data, err := s.kv.get(ctx, KeyProperties)
	if err != nil {
		return nil, err
	}
	var properties []models.Property
	if err := json.Unmarshal(data, &properties); err != nil {
		return nil, fmt.Errorf("corrupt property collection: %w", err)
	}
	return properties, nil
}

func (s *blobStore) SaveProperties(ctx context.Context, properties []models.Property) error {
	return s.save(ctx, KeyProperties, properties)
}

func (s *blobStore) LoadInquiries(ctx context.Context) ([]models.Inquiry, error) {
	data, err := s.kv.get(ctx, KeyInquiries)
	if err != nil {
		return nil, err
	}
	var inquiries []models.Inquiry
	if err := json.Unmarshal(data, &inquiries); err != nil {
		return nil, fmt.Errorf("corrupt inquiry collection: %w", err)
	}
	return inquiries, nil
}

func (s *blobStore) SaveInquiries(ctx context.Context, inquiries []models.Inquiry) error {
	return s.save(ctx, KeyInquiries, inquiries)
}

func (s *blobStore) LoadUser(ctx context.Context) (*models.User, error) {
	data, err := s.kv.get(ctx, KeyUser)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("corrupt user record: %w", err)
	}
	return &user, nil
}

func (s *blobStore) SaveUser(ctx context.Context, user *models.User) error {
	return s.save(ctx, KeyUser, user)
}

func (s *blobStore) ClearUser(ctx context.Context) error {
	return s.kv.del(ctx, KeyUser)
}

func (s *blobStore) save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := s.kv.set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
