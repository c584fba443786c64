package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSeed(t *testing.T) {
	doc := `
quotes:
  - text: "Every love story is beautiful, but ours is my favorite."
    author: Unknown
trivia:
  - question: Where was our first date?
    options: [Cafe, Beach, Cinema]
    correct_answer: Beach
bucket_list:
  - title: See the northern lights
    completed: false
`
	seed, err := loadSeed(strings.NewReader(doc))
	require.NoError(t, err)

	require.Len(t, seed.Quotes, 1)
	assert.Equal(t, "Unknown", seed.Quotes[0].Author)
	require.Len(t, seed.Trivia, 1)
	assert.Equal(t, []string{"Cafe", "Beach", "Cinema"}, seed.Trivia[0].Options)
	require.Len(t, seed.BucketList, 1)
	assert.Equal(t, "See the northern lights", seed.BucketList[0].Title)
}

func TestLoadSeed_Empty(t *testing.T) {
	seed, err := loadSeed(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, seed.Quotes)
}

func TestLoadSeed_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"blank quote", "quotes:\n  - text: '  '\n", "quotes[0]"},
		{"one option", "trivia:\n  - question: Q\n    options: [A]\n    correct_answer: A\n", "at least two options"},
		{"answer not an option", "trivia:\n  - question: Q\n    options: [A, B]\n    correct_answer: C\n", "correct_answer"},
		{"untitled item", "bucket_list:\n  - description: x\n", "bucket_list[0]"},
		{"unknown field", "movies:\n  - title: x\n", "decode seed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadSeed(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
