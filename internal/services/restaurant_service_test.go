package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vdpcza/internal/models/request_models"
	"vdpcza/pkg/utils"
)

func TestRestaurantService_ReviewsAndStats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewRestaurantService(&fakeRestaurantRepo{})
	user := uuid.New()

	r, err := svc.Create(ctx, request_models.RestaurantRequest{Name: "La Tasquita", Cuisine: "Tapas"})
	require.NoError(t, err)

	for _, rating := range []int{5, 4, 4} {
		_, err := svc.AddReview(ctx, user, r.ID, request_models.CreateReviewRequest{Rating: rating, Comment: "rico"})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 3, list[0].ReviewCount)
	assert.Equal(t, 4.3, list[0].AvgRating)

	reviews, err := svc.ListReviews(ctx, r.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	assert.Equal(t, user, *reviews[0].UserID)

	require.NoError(t, svc.DeleteReview(ctx, reviews[0].ID))
	require.ErrorIs(t, svc.DeleteReview(ctx, reviews[0].ID), utils.ErrReviewNotFound)
}

func TestRestaurantService_AddReviewValidation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewRestaurantService(&fakeRestaurantRepo{})

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.AddReview(ctx, uuid.New(), uuid.New(), request_models.CreateReviewRequest{Rating: rating})
		require.ErrorIs(t, err, utils.ErrInvalidRating)
	}

	_, err := svc.AddReview(ctx, uuid.New(), uuid.New(), request_models.CreateReviewRequest{Rating: 3})
	require.ErrorIs(t, err, utils.ErrRestaurantNotFound)
}

func TestRestaurantService_UpdateDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewRestaurantService(&fakeRestaurantRepo{})

	r, err := svc.Create(ctx, request_models.RestaurantRequest{Name: "Casa Lucio"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, r.ID, request_models.RestaurantRequest{Name: "Casa Lucio", Location: "Madrid"})
	require.NoError(t, err)
	assert.Equal(t, "Madrid", updated.Location)

	require.NoError(t, svc.Delete(ctx, r.ID))
	_, err = svc.Update(ctx, r.ID, request_models.RestaurantRequest{Name: "x"})
	require.ErrorIs(t, err, utils.ErrRestaurantNotFound)
	require.ErrorIs(t, svc.Delete(ctx, r.ID), utils.ErrRestaurantNotFound)
}
