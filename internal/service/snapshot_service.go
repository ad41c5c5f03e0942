package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fakeuser/internal/repository"
	"fakeuser/internal/storage"
)

// SnapshotService exports the user table to object storage.
type SnapshotService interface {
	Export(ctx context.Context) (string, error)
	List(ctx context.Context) ([]storage.ObjectInfo, error)
}

type snapshotRecord struct {
	ID    int64  `json:"id"`
	UUID  string `json:"uuid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
	Age   int    `json:"age"`
}

type snapshotService struct {
	users     repository.UserRepository
	store     storage.Service
	bucket    string
	keyPrefix string
	now       func() time.Time
}

func NewSnapshotService(users repository.UserRepository, store storage.Service, bucket, keyPrefix string) SnapshotService {
	return &snapshotService{
		users:     users,
		store:     store,
		bucket:    bucket,
		keyPrefix: strings.Trim(keyPrefix, "/"),
		now:       time.Now,
	}
}

func (s *snapshotService) Export(ctx context.Context) (string, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return "", err
	}

	records := make([]snapshotRecord, len(users))
	for i, u := range users {
		records[i] = snapshotRecord{
			ID:    u.ID,
			UUID:  u.UUID,
			Name:  u.Name,
			Email: u.Email,
			Phone: u.Phone,
			City:  u.City,
			Age:   u.Age,
		}
	}
	body, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	key := fmt.Sprintf("users-%s.json", s.now().UTC().Format("20060102T150405Z"))
	if s.keyPrefix != "" {
		key = s.keyPrefix + "/" + key
	}
	return s.store.PutObject(ctx, storage.PutOptions{
		Bucket:      s.bucket,
		Key:         key,
		ContentType: "application/json",
		Body:        body,
	})
}

func (s *snapshotService) List(ctx context.Context) ([]storage.ObjectInfo, error) {
	prefix := s.keyPrefix
	if prefix != "" {
		prefix += "/"
	}
	return s.store.ListObjects(ctx, s.bucket, prefix)
}
