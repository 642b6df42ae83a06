package importer

import (
	"context"

	"github.com/google/uuid"
	"github.com/weeztools/weezimport/internal/domain"
	"github.com/weeztools/weezimport/pkg/logger"
	"github.com/weeztools/weezimport/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Importer runs the full mapping and submission pipeline for one spreadsheet.
type Importer struct {
	mapper    *Mapper
	submitter *Submitter
	runID     string
	log       *logger.Logger
}

// NewImporter creates an Importer with a fresh run id.
func NewImporter(mapper *Mapper, submitter *Submitter) *Importer {
	return &Importer{
		mapper:    mapper,
		submitter: submitter,
		runID:     uuid.NewString(),
		log:       logger.Get(),
	}
}

// RunID identifies this import run in logs and traces.
func (i *Importer) RunID() string {
	return i.runID
}

// Run maps the rows and submits the resulting records, returning the run
// summary. The first remote failure aborts the run.
func (i *Importer) Run(ctx context.Context, rows []*domain.Row) (*Summary, error) {
	ctx, span := telemetry.StartSpan(ctx, "import.run")
	defer span.End()
	span.SetAttributes(attribute.String("import.run_id", i.runID))

	log := i.log.With(zap.String("run_id", i.runID))
	log.Info("mapping rows", zap.Int("rows", len(rows)))

	participants, err := i.mapper.MapRows(ctx, rows)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		return nil, err
	}

	summary, err := i.submitter.Submit(ctx, participants)
	if err != nil {
		telemetry.SetSpanError(ctx, err)
		return nil, err
	}

	log.Info("import finished",
		zap.Int("total", summary.Total),
		zap.Int("added", summary.Added),
		zap.Int("batches", summary.Batches),
		zap.Duration("elapsed", summary.Elapsed))
	return summary, nil
}
