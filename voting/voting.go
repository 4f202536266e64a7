// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/zap-roadmap/guard"
	"github.com/danielhkuo/zap-roadmap/models"
	"github.com/danielhkuo/zap-roadmap/store"
)

var (
	ErrAlreadyVoted   = errors.New("already voted for this feature")
	ErrUnknownFeature = errors.New("unknown feature")
	ErrVoteFailed     = errors.New("vote failed")
)

// VoteSource is the ledger's voting API.
type VoteSource interface {
	Votes(ctx context.Context) (map[int64]int64, error)
	Vote(ctx context.Context, featureID int64) (int64, error)
}

// Outcome is what the visitor is told after a vote attempt.
type Outcome struct {
	Notice  models.Notice
	Upvotes int64
}

type Service struct {
	store *store.Store
	api   VoteSource
}

func NewService(st *store.Store, api VoteSource) *Service {
	return &Service{store: st, api: api}
}

// Sync merges the ledger's vote counts into the store and re-sorts by
// upvotes. Features missing from the response keep their count. On error
// the store is not touched.
func (s *Service) Sync(ctx context.Context) error {
	votes, err := s.api.Votes(ctx)
	if err != nil {
		slog.Error("vote sync failed", "error", err)
		return fmt.Errorf("sync votes: %w", err)
	}

	s.store.Update(func(features []models.Feature) ([]models.Feature, bool) {
		for i := range features {
			if count, ok := votes[features[i].ID]; ok && count > 0 {
				features[i].Upvotes = count
			}
		}
		store.SortByUpvotes(features)
		return features, true
	})

	slog.Info("votes synced", "entries", len(votes))
	return nil
}

// Run is Sync shaped as a background task.
func (s *Service) Run(ctx context.Context) {
	_ = s.Sync(ctx)
}

// Vote records one upvote for featureID unless g already holds a marker for
// it. On success the ledger's count replaces the local one and the marker
// is set. On failure nothing changes so the visitor can retry.
func (s *Service) Vote(ctx context.Context, g guard.Guard, featureID int64) (Outcome, error) {
	current, ok := s.store.Get(featureID)
	if !ok {
		return Outcome{Notice: models.Notice{
			Kind:        models.NoticeDestructive,
			Title:       "Unknown feature",
			Description: "This feature does not exist.",
		}}, ErrUnknownFeature
	}

	if g.Voted(featureID) {
		return Outcome{
			Notice: models.Notice{
				Kind:        models.NoticeDestructive,
				Title:       "Already voted",
				Description: "You have already voted for this feature!",
			},
			Upvotes: current.Upvotes,
		}, ErrAlreadyVoted
	}

	upvotes, err := s.api.Vote(ctx, featureID)
	if err != nil {
		slog.Error("vote failed", "feature_id", featureID, "error", err)
		return Outcome{
			Notice: models.Notice{
				Kind:        models.NoticeDestructive,
				Title:       "Vote failed",
				Description: "Something went wrong. Please try again later.",
			},
			Upvotes: current.Upvotes,
		}, fmt.Errorf("%w: %w", ErrVoteFailed, err)
	}

	s.store.Update(func(features []models.Feature) ([]models.Feature, bool) {
		for i := range features {
			if features[i].ID == featureID {
				features[i].Upvotes = upvotes
			}
		}
		store.SortByUpvotes(features)
		return features, true
	})
	g.Mark(featureID)

	slog.Info("vote recorded", "feature_id", featureID, "upvotes", upvotes)
	return Outcome{
		Notice: models.Notice{
			Kind:        models.NoticeSuccess,
			Title:       "Vote recorded",
			Description: fmt.Sprintf("This feature now has %d upvotes!", upvotes),
		},
		Upvotes: upvotes,
	}, nil
}
