package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oakpress/storefront/internal/metrics"
	"github.com/oakpress/storefront/internal/model"
	"github.com/oakpress/storefront/internal/repository"
	"github.com/oakpress/storefront/internal/sqs"
)

// ErrMissingPreorderFields is returned when a preorder submission omits a
// required field.
var ErrMissingPreorderFields = errors.New("name and email are required")

// PreorderService captures preorder submissions and derives the admin
// projections and stats from the ledger.
type PreorderService struct {
	ledger    repository.PreorderLedger
	publisher *sqs.Publisher
	seedSize  int
}

// NewPreorderService creates a preorder service. publisher may be nil, in
// which case no events are published. seedSize is the size of the seed
// catalog reported by Stats.
func NewPreorderService(ledger repository.PreorderLedger, publisher *sqs.Publisher, seedSize int) *PreorderService {
	return &PreorderService{
		ledger:    ledger,
		publisher: publisher,
		seedSize:  seedSize,
	}
}

// CreatePreorderInput carries a preorder submission.
type CreatePreorderInput struct {
	Name        string
	Email       string
	Message     *string
	ProductID   *string
	ProductName *string
}

// Create appends a preorder to the ledger and returns its id.
func (ps *PreorderService) Create(ctx context.Context, input CreatePreorderInput) (int64, error) {
	if input.Name == "" || input.Email == "" {
		return 0, ErrMissingPreorderFields
	}

	preorder := &model.Preorder{
		Name:        input.Name,
		Email:       input.Email,
		Message:     input.Message,
		ProductID:   input.ProductID,
		ProductName: input.ProductName,
	}
	preorder.InitMeta()

	if err := ps.ledger.Create(ctx, preorder); err != nil {
		return 0, fmt.Errorf("failed to create preorder: %w", err)
	}

	metrics.PreordersCreated.Inc()

	if ps.publisher != nil {
		msg := sqs.PreorderMessage{
			Action:     "created",
			PreorderID: int64(preorder.ID),
			Name:       preorder.Name,
			Email:      preorder.Email,
		}
		if preorder.ProductID != nil {
			msg.ProductID = *preorder.ProductID
		}
		if preorder.ProductName != nil {
			msg.ProductName = *preorder.ProductName
		}
		if err := ps.publisher.PublishPreorderMessage(ctx, msg); err != nil {
			// Log error but don't fail the request
			slog.Error("Failed to send SQS message", slog.Any("err", err), slog.String("action", "created"), slog.Int64("preorder_id", int64(preorder.ID)))
		}
	}

	return int64(preorder.ID), nil
}

// AdminView reads the ledger once and derives both admin projections from
// that single read.
func (ps *PreorderService) AdminView(ctx context.Context) (*AdminPreorderView, error) {
	preorders, err := ps.ledger.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list preorders: %w", err)
	}
	view := BuildAdminPreorderView(preorders)
	return &view, nil
}

// Visitors reports preorder-derived visitor counts.
type Visitors struct {
	Total int `json:"total"`
	Today int `json:"today"`
}

// Stats is the admin dashboard summary. TotalProducts counts the seed
// catalog, not the persisted one.
type Stats struct {
	TotalProducts  int      `json:"totalProducts"`
	TotalPreorders int      `json:"totalPreorders"`
	Visitors       Visitors `json:"visitors"`
}

// Stats computes ledger totals. The same-day count matches created_at
// against the current UTC date by string prefix, so the day boundary is
// UTC, not local time.
func (ps *PreorderService) Stats(ctx context.Context) (*Stats, error) {
	preorders, err := ps.ledger.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list preorders: %w", err)
	}

	today := time.Now().UTC().Format("2006-01-02")
	todayCount := 0
	for _, p := range preorders {
		if strings.HasPrefix(p.CreatedAt, today) {
			todayCount++
		}
	}

	return &Stats{
		TotalProducts:  ps.seedSize,
		TotalPreorders: len(preorders),
		Visitors: Visitors{
			Total: len(preorders),
			Today: todayCount,
		},
	}, nil
}
