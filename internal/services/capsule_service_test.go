package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vdpcza/internal/models/db_models"
	"vdpcza/internal/models/request_models"
	"vdpcza/pkg/utils"
)

func TestCapsuleService_LockedContentStaysHidden(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	past := db_models.Capsule{BaseModel: db_models.BaseModel{ID: uuid.New()}, Title: "Ayer", Content: "Te quiero", UnlockDate: now.Add(-time.Hour)}
	future := db_models.Capsule{BaseModel: db_models.BaseModel{ID: uuid.New()}, Title: "Mañana", Content: "Secreto", UnlockDate: now.Add(49 * time.Hour)}

	svc := NewCapsuleService(&fakeCapsuleRepo{capsules: []db_models.Capsule{past, future}}, time.UTC)
	svc.now = func() time.Time { return now }

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.False(t, list[0].Locked)
	assert.Equal(t, "Te quiero", list[0].Content)
	assert.Empty(t, list[0].Remaining)

	assert.True(t, list[1].Locked)
	assert.Empty(t, list[1].Content)
	assert.NotEmpty(t, list[1].Remaining)

	_, err = svc.Get(context.Background(), future.ID)
	require.ErrorIs(t, err, utils.ErrCapsuleLocked)

	got, err := svc.Get(context.Background(), past.ID)
	require.NoError(t, err)
	assert.Equal(t, "Te quiero", got.Content)

	_, err = svc.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, utils.ErrCapsuleNotFound)
}

func TestCapsuleService_CreateDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewCapsuleService(&fakeCapsuleRepo{}, time.UTC)
	svc.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	created, err := svc.Create(ctx, request_models.CreateCapsuleRequest{Title: "Aniversario", Content: "Abre esto", UnlockDate: "2027-01-01"})
	require.NoError(t, err)
	assert.True(t, created.Locked)
	assert.Empty(t, created.Content)

	_, err = svc.Create(ctx, request_models.CreateCapsuleRequest{Title: "X", UnlockDate: "pronto"})
	require.ErrorIs(t, err, utils.ErrInvalidInput)

	id := uuid.MustParse(created.ID)
	require.NoError(t, svc.Delete(ctx, id))
	require.ErrorIs(t, svc.Delete(ctx, id), utils.ErrCapsuleNotFound)
}
