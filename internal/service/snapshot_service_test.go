package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakeuser/internal/storage"
)

type memoryStorage struct {
	puts       []storage.PutOptions
	listBucket string
	listPrefix string
	objects    []storage.ObjectInfo
}

func (m *memoryStorage) PutObject(_ context.Context, opts storage.PutOptions) (string, error) {
	m.puts = append(m.puts, opts)
	return "s3://" + opts.Bucket + "/" + opts.Key, nil
}

func (m *memoryStorage) ListObjects(_ context.Context, bucket, prefix string) ([]storage.ObjectInfo, error) {
	m.listBucket = bucket
	m.listPrefix = prefix
	return m.objects, nil
}

func TestSnapshotExportUploadsAllUsers(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)
	users := NewUserService(repo, &sequenceGenerator{}, quietLogger())
	for i := 0; i < 3; i++ {
		_, err := users.CreateUser(ctx)
		require.NoError(t, err)
	}

	store := &memoryStorage{}
	svc := NewSnapshotService(repo, store, "snapshots", "/exports/").(*snapshotService)
	svc.now = func() time.Time { return time.Date(2026, time.October, 19, 8, 30, 0, 0, time.UTC) }

	loc, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Equal(t, "s3://snapshots/exports/users-20261019T083000Z.json", loc)

	require.Len(t, store.puts, 1)
	assert.Equal(t, "application/json", store.puts[0].ContentType)

	var records []map[string]any
	require.NoError(t, json.Unmarshal(store.puts[0].Body, &records))
	require.Len(t, records, 3)
	assert.Equal(t, "user1@example.com", records[0]["email"])
	assert.ElementsMatch(t, []string{"id", "uuid", "name", "email", "phone", "city", "age"}, keys(records[0]))
}

func TestSnapshotListUsesPrefix(t *testing.T) {
	store := &memoryStorage{objects: []storage.ObjectInfo{{Key: "exports/users-1.json", Size: 2}}}
	svc := NewSnapshotService(newSQLiteRepo(t), store, "snapshots", "exports")

	objects, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, objects, 1)
	assert.Equal(t, "snapshots", store.listBucket)
	assert.Equal(t, "exports/", store.listPrefix)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
