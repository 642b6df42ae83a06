package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/weeztools/weezimport/internal/weezevent"
	"github.com/weeztools/weezimport/pkg/logger"
	"github.com/weeztools/weezimport/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// DefaultBatchSize is the platform's bulk submission cap.
const DefaultBatchSize = 500

// Summary aggregates the outcome of one submission run.
type Summary struct {
	// Total is the number of records handed to the submitter.
	Total int
	// Added is the accepted count accumulated across batch responses.
	Added int
	// Batches is the number of remote submission calls made.
	Batches int
	// Elapsed is the wall-clock time spent in the submission loop.
	Elapsed time.Duration
}

// String renders the run outcome as the CLI reports it.
func (s *Summary) String() string {
	return fmt.Sprintf("pushed %d/%d participants in %g seconds",
		s.Added, s.Total, s.Elapsed.Seconds())
}

// SubmitterConfig holds batching settings.
type SubmitterConfig struct {
	// BatchSize caps records per call; defaults to DefaultBatchSize.
	BatchSize int
}

// Submitter pushes participant records in fixed-size batches, strictly in
// sequence. A failed batch aborts the run; earlier batches stay committed
// remotely.
type Submitter struct {
	gw        weezevent.Gateway
	batchSize int
	log       *logger.Logger
}

// NewSubmitter creates a Submitter.
func NewSubmitter(gw weezevent.Gateway, cfg *SubmitterConfig) *Submitter {
	batchSize := DefaultBatchSize
	if cfg != nil && cfg.BatchSize > 0 {
		batchSize = cfg.BatchSize
	}
	return &Submitter{
		gw:        gw,
		batchSize: batchSize,
		log:       logger.Get(),
	}
}

// Submit partitions the records into contiguous batches and submits them one
// by one with unsafe_form enabled. An empty input makes no remote call.
func (s *Submitter) Submit(ctx context.Context, participants []weezevent.Participant) (*Summary, error) {
	summary := &Summary{Total: len(participants)}

	start := time.Now()
	for begin := 0; begin < len(participants); begin += s.batchSize {
		end := begin + s.batchSize
		if end > len(participants) {
			end = len(participants)
		}
		batch := participants[begin:end]

		res, err := s.gw.SubmitParticipants(ctx, batch, true)
		if err != nil {
			return nil, fmt.Errorf("batch %d (%d records) failed: %w", summary.Batches+1, len(batch), err)
		}

		summary.Batches++
		summary.Added += res.TotalAdded
		s.log.Info("submitted batch",
			zap.Int("batch", summary.Batches),
			zap.Int("records", len(batch)),
			zap.Int("added", res.TotalAdded))
	}
	summary.Elapsed = time.Since(start)

	telemetry.SetSpanAttributes(ctx,
		attribute.Int("import.total", summary.Total),
		attribute.Int("import.added", summary.Added),
		attribute.Int("import.batches", summary.Batches),
	)
	return summary, nil
}
