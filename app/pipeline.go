package app

import (
	"context"
	"io"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/amanshaikhx1/Auto-Dashboard/adapters/tabular"
	"github.com/amanshaikhx1/Auto-Dashboard/domain/catalog"
	"github.com/amanshaikhx1/Auto-Dashboard/domain/core"
	"github.com/amanshaikhx1/Auto-Dashboard/domain/table"
	"github.com/amanshaikhx1/Auto-Dashboard/internal"
	"github.com/amanshaikhx1/Auto-Dashboard/internal/aggregate"
	"github.com/amanshaikhx1/Auto-Dashboard/internal/classify"
	apperrors "github.com/amanshaikhx1/Auto-Dashboard/internal/errors"
	"github.com/amanshaikhx1/Auto-Dashboard/internal/resolve"
	"github.com/amanshaikhx1/Auto-Dashboard/internal/session"
)

// Pipeline wires decoding, classification, resolution and aggregation into
// the dataset lifecycle: ingest once, then read or override mappings, with
// metrics recomputed on every mapping change.
type Pipeline struct {
	catalog    *catalog.Registry
	classifier *classify.Classifier
	resolver   *resolve.Resolver
	aggregator *aggregate.Aggregator
	reader     *tabular.Reader
	store      *session.Store
	sampleSize int
	logger     *internal.Logger
}

// Options bundles the tunables the pipeline needs.
type Options struct {
	SampleSize      int
	AcceptThreshold float64
	MaxUploadBytes  int64
}

// NewPipeline assembles the full pipeline over a catalog and normalizer.
func NewPipeline(reg *catalog.Registry, norm table.Normalizer, opts Options, logger *internal.Logger) *Pipeline {
	return &Pipeline{
		catalog:    reg,
		classifier: classify.New(reg, classify.Config{SampleSize: opts.SampleSize}),
		resolver:   resolve.New(opts.AcceptThreshold),
		aggregator: aggregate.New(reg, norm),
		reader:     tabular.NewReader(opts.MaxUploadBytes),
		store:      session.NewStore(),
		sampleSize: opts.SampleSize,
		logger:     logger.With("Pipeline"),
	}
}

// Ingest decodes an upload, classifies and resolves its columns, aggregates
// metrics and stores the result. A dataset with a header but no data rows is
// stored with zero metrics and reported via an EMPTY_DATASET error alongside
// the valid entry.
func (p *Pipeline) Ingest(ctx context.Context, fileName string, src io.Reader) (session.Entry, error) {
	start := time.Now()

	decoded, err := p.reader.Decode(fileName, src)
	if err != nil {
		return session.Entry{}, err
	}

	ds := &table.ProcessedDataset{
		ID:       core.NewDatasetID(),
		FileName: decoded.FileName,
		RowCount: len(decoded.Rows),
		Columns:  decoded.Columns,
		Data:     decoded.Rows,
	}

	candidates, err := p.classifyAll(ctx, decoded)
	if err != nil {
		return session.Entry{}, err
	}
	ds.Mappings = p.resolver.Resolve(decoded.Columns, candidates)

	metrics := p.aggregator.Aggregate(ds)
	p.store.Put(ds, metrics)

	mapped := 0
	for _, m := range ds.Mappings {
		if m.Mapped {
			mapped++
		}
	}
	p.logger.Info("ingested %s: %d rows, %d/%d columns mapped in %.2fms",
		fileName, ds.RowCount, mapped, len(ds.Columns),
		float64(time.Since(start).Nanoseconds())/1e6)

	entry := session.Entry{Dataset: ds, Metrics: metrics}
	if ds.RowCount == 0 {
		return entry, apperrors.EmptyDataset("dataset has no data rows")
	}
	return entry, nil
}

// classifyAll scores every column concurrently. Results land in an
// index-addressed slice so output order never depends on scheduling.
func (p *Pipeline) classifyAll(ctx context.Context, decoded *tabular.Decoded) ([][]table.CandidateMatch, error) {
	columns := tabular.SampleColumns(decoded, p.sampleSize)
	candidates := make([][]table.CandidateMatch, len(columns))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, col := range columns {
		i, col := i, col
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			candidates[i] = p.classifier.Classify(col)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperrors.Wrapf(err, "classification of %d columns aborted", len(columns))
	}
	return candidates, nil
}

// Get returns the stored entry for a dataset.
func (p *Pipeline) Get(id core.DatasetID) (session.Entry, error) {
	return p.store.Get(id)
}

// Override forces one column onto a business field (or unmaps it when
// fieldID is empty), then recomputes and stores metrics.
func (p *Pipeline) Override(id core.DatasetID, column string, fieldID core.FieldID) (session.Entry, error) {
	entry, err := p.store.Get(id)
	if err != nil {
		return session.Entry{}, err
	}

	ds := entry.Dataset
	found := false
	for _, c := range ds.Columns {
		if c == column {
			found = true
			break
		}
	}
	if !found {
		return session.Entry{}, apperrors.NotFound("column " + column)
	}
	if fieldID != "" {
		if _, ok := p.catalog.Lookup(fieldID); !ok {
			return session.Entry{}, apperrors.InvalidInput("unknown business field: " + string(fieldID))
		}
	}

	updated := *ds
	updated.Mappings = p.resolver.Override(ds.Mappings, column, fieldID)
	metrics := p.aggregator.Aggregate(&updated)
	p.store.Put(&updated, metrics)

	p.logger.Info("override on dataset %s: column %q -> %q", id, column, fieldID)
	return session.Entry{Dataset: &updated, Metrics: metrics}, nil
}

// Delete removes a dataset from the store.
func (p *Pipeline) Delete(id core.DatasetID) {
	p.store.Delete(id)
}
