package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"vdpcza/internal/models/db_models"
	"vdpcza/internal/models/request_models"
	"vdpcza/pkg/utils"
)

func jpeg(body string) request_models.UploadFile {
	return request_models.UploadFile{Filename: "Playa.JPG", ContentType: "image/jpeg", Size: int64(len(body)), Body: strings.NewReader(body)}
}

func TestValidateImage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file request_models.UploadFile
		ok   bool
	}{
		{name: "jpeg", file: jpeg("abc"), ok: true},
		{name: "empty", file: request_models.UploadFile{Filename: "a.png", ContentType: "image/png", Body: strings.NewReader("")}},
		{name: "too large", file: jpeg(strings.Repeat("x", 11))},
		{name: "not an image", file: request_models.UploadFile{Filename: "a.pdf", ContentType: "application/pdf", Size: 3, Body: strings.NewReader("pdf")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateImage(tt.file, 10)
			if tt.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, utils.ErrInvalidInput)
			}
		})
	}
}

func TestMemoryService_Upload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	album := db_models.Album{BaseModel: db_models.BaseModel{ID: uuid.New()}, Name: "Verano"}
	repo := &fakeMemoryRepo{albums: []db_models.Album{album}}
	store := &fakeStorage{}
	svc := NewMemoryService(repo, store, 1<<20, time.UTC, zap.NewNop())
	user := uuid.New()

	m, err := svc.Upload(ctx, user, request_models.UploadMemoryRequest{Description: "Atardecer", Date: "2025-08-10", AlbumID: album.ID.String()}, jpeg("img"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(m.StorageKey, "memories/"))
	assert.True(t, strings.HasSuffix(m.StorageKey, ".jpg"))
	assert.Equal(t, "https://cdn.test/"+m.StorageKey, m.ImageURL)
	assert.Equal(t, []byte("img"), store.uploaded[m.StorageKey])
	assert.Equal(t, 10, m.Date.Day())
	require.NotNil(t, m.AlbumID)
	assert.Equal(t, album.ID, *m.AlbumID)
	assert.Equal(t, user, *m.UploadedBy)

	inAlbum, err := svc.ListMemories(ctx, &album.ID)
	require.NoError(t, err)
	assert.Len(t, inAlbum, 1)
}

func TestMemoryService_UploadErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewMemoryService(&fakeMemoryRepo{}, &fakeStorage{}, 1<<20, time.UTC, zap.NewNop())
	_, err := svc.Upload(ctx, uuid.New(), request_models.UploadMemoryRequest{AlbumID: uuid.NewString()}, jpeg("img"))
	require.ErrorIs(t, err, utils.ErrAlbumNotFound)

	_, err = svc.Upload(ctx, uuid.New(), request_models.UploadMemoryRequest{Date: "ayer"}, jpeg("img"))
	require.ErrorIs(t, err, utils.ErrInvalidInput)

	failing := NewMemoryService(&fakeMemoryRepo{}, &fakeStorage{err: errStore}, 1<<20, time.UTC, zap.NewNop())
	_, err = failing.Upload(ctx, uuid.New(), request_models.UploadMemoryRequest{}, jpeg("img"))
	require.ErrorIs(t, err, utils.ErrUploadFailed)

	store := &fakeStorage{}
	noRow := NewMemoryService(&fakeMemoryRepo{createErr: errStore}, store, 1<<20, time.UTC, zap.NewNop())
	_, err = noRow.Upload(ctx, uuid.New(), request_models.UploadMemoryRequest{}, jpeg("img"))
	require.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Len(t, store.uploaded, 1, "object is left in the bucket")
}

func TestProfileService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newFakeProfileRepo()
	session := &utils.Session{UserID: uuid.New(), Email: "vale@example.com"}
	require.NoError(t, repo.Create(ctx, &db_models.Profile{ID: session.UserID, Role: db_models.RoleUser}))
	store := &fakeStorage{}
	svc := NewProfileService(repo, store, 1<<20)

	me, err := svc.GetMe(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, "vale", me.DisplayName)

	name := "Valeria"
	me, err = svc.UpdateMe(ctx, session, request_models.UpdateProfileRequest{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Valeria", me.DisplayName)

	me, err = svc.UploadAvatar(ctx, session, jpeg("face"))
	require.NoError(t, err)
	assert.Contains(t, me.AvatarURL, "avatars/"+session.UserID.String()+"-")

	_, err = svc.GetMe(ctx, &utils.Session{UserID: uuid.New()})
	require.ErrorIs(t, err, utils.ErrProfileNotFound)
}
