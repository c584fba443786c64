package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/lib/pq"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"vdpcza/internal/infra"
	"vdpcza/internal/models/db_models"
)

type seedQuote struct {
	Text   string `yaml:"text"`
	Author string `yaml:"author"`
}

type seedTrivia struct {
	Question      string   `yaml:"question"`
	Options       []string `yaml:"options"`
	CorrectAnswer string   `yaml:"correct_answer"`
}

type seedBucketItem struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Completed   bool   `yaml:"completed"`
}

type seedData struct {
	Quotes     []seedQuote      `yaml:"quotes"`
	Trivia     []seedTrivia     `yaml:"trivia"`
	BucketList []seedBucketItem `yaml:"bucket_list"`
}

type seedCounts struct {
	Quotes     int
	Trivia     int
	BucketList int
}

func loadSeed(r io.Reader) (*seedData, error) {
	var seed seedData
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return &seed, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	for i, q := range seed.Quotes {
		if strings.TrimSpace(q.Text) == "" {
			return nil, fmt.Errorf("quotes[%d]: text is required", i)
		}
	}
	for i, t := range seed.Trivia {
		if strings.TrimSpace(t.Question) == "" {
			return nil, fmt.Errorf("trivia[%d]: question is required", i)
		}
		if len(t.Options) < 2 {
			return nil, fmt.Errorf("trivia[%d]: at least two options are required", i)
		}
		if !slices.Contains(t.Options, t.CorrectAnswer) {
			return nil, fmt.Errorf("trivia[%d]: correct_answer must be one of the options", i)
		}
	}
	for i, b := range seed.BucketList {
		if strings.TrimSpace(b.Title) == "" {
			return nil, fmt.Errorf("bucket_list[%d]: title is required", i)
		}
	}
	return &seed, nil
}

// applySeed inserts everything in one transaction so a bad row leaves the tables untouched.
func applySeed(ctx context.Context, db *gorm.DB, seed *seedData) (seedCounts, error) {
	var counts seedCounts
	err := infra.WithTransaction(ctx, db, func(tx *gorm.DB) error {
		for _, q := range seed.Quotes {
			if err := tx.Create(&db_models.Quote{Text: q.Text, Author: q.Author}).Error; err != nil {
				return fmt.Errorf("insert quote: %w", err)
			}
			counts.Quotes++
		}
		for _, t := range seed.Trivia {
			row := &db_models.TriviaQuestion{
				Question:      t.Question,
				Options:       pq.StringArray(t.Options),
				CorrectAnswer: t.CorrectAnswer,
			}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("insert trivia: %w", err)
			}
			counts.Trivia++
		}
		for _, b := range seed.BucketList {
			row := &db_models.BucketListItem{Title: b.Title, Description: b.Description, IsCompleted: b.Completed}
			if err := tx.Create(row).Error; err != nil {
				return fmt.Errorf("insert bucket list item: %w", err)
			}
			counts.BucketList++
		}
		return nil
	})
	if err != nil {
		return seedCounts{}, err
	}
	return counts, nil
}
