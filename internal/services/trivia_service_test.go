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

func triviaQuestions() []db_models.TriviaQuestion {
	return []db_models.TriviaQuestion{
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, Question: "¿Dónde nos conocimos?", Options: []string{"Madrid", "Lima"}, CorrectAnswer: "Lima"},
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, Question: "¿Primera película?", Options: []string{"Up", "Coco", "Amélie"}, CorrectAnswer: "Amélie"},
		{BaseModel: db_models.BaseModel{ID: uuid.New()}, Question: "¿Color favorito?", Options: []string{"Rojo", "Azul"}, CorrectAnswer: "Rojo"},
	}
}

func TestTriviaService_TodayIsStable(t *testing.T) {
	t.Parallel()
	qs := triviaQuestions()
	svc := NewTriviaService(&fakeTriviaRepo{questions: qs}, time.UTC)
	day := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day }

	first, err := svc.Today(context.Background())
	require.NoError(t, err)
	require.NotNil(t, first)

	svc.now = func() time.Time { return day.Add(12 * time.Hour) }
	second, err := svc.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	want := qs[utils.DailyIndex("Mon Jan 01 2024", len(qs))]
	assert.Equal(t, want.ID.String(), first.ID)
	assert.Equal(t, "Mon Jan 01 2024", first.Day)
}

func TestTriviaService_TodayEmpty(t *testing.T) {
	t.Parallel()
	svc := NewTriviaService(&fakeTriviaRepo{}, time.UTC)

	q, err := svc.Today(context.Background())
	require.NoError(t, err)
	assert.Nil(t, q)
}

func TestTriviaService_Answer(t *testing.T) {
	t.Parallel()
	qs := triviaQuestions()
	svc := NewTriviaService(&fakeTriviaRepo{questions: qs}, time.UTC)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     request_models.TriviaAnswerRequest
		correct bool
		wantErr error
	}{
		{name: "right", req: request_models.TriviaAnswerRequest{QuestionID: qs[0].ID.String(), Answer: "Lima"}, correct: true},
		{name: "wrong", req: request_models.TriviaAnswerRequest{QuestionID: qs[0].ID.String(), Answer: "Madrid"}},
		{name: "unknown question", req: request_models.TriviaAnswerRequest{QuestionID: uuid.NewString(), Answer: "x"}, wantErr: utils.ErrTriviaNotFound},
		{name: "bad id", req: request_models.TriviaAnswerRequest{QuestionID: "nope", Answer: "x"}, wantErr: utils.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Answer(ctx, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.correct, resp.Correct)
			assert.Equal(t, "Lima", resp.CorrectAnswer)
		})
	}
}

func TestTriviaService_Create(t *testing.T) {
	t.Parallel()
	svc := NewTriviaService(&fakeTriviaRepo{}, time.UTC)
	ctx := context.Background()

	_, err := svc.Create(ctx, request_models.CreateTriviaRequest{Question: "¿?", Options: []string{"a", "b"}, CorrectAnswer: "c"})
	require.ErrorIs(t, err, utils.ErrInvalidInput)

	q, err := svc.Create(ctx, request_models.CreateTriviaRequest{Question: "  ¿Mes favorito? ", Options: []string{"Mayo", "Junio"}, CorrectAnswer: "Junio"})
	require.NoError(t, err)
	assert.Equal(t, "¿Mes favorito?", q.Question)

	require.NoError(t, svc.Delete(ctx, q.ID))
	require.ErrorIs(t, svc.Delete(ctx, q.ID), utils.ErrTriviaNotFound)
}
