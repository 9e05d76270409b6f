// Package app wires the classify → build → view pipeline behind one
// service used by the HTTP layer and the CLI.
package app

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"mitoviz/domain/abundance"
	"mitoviz/domain/chart"
	"mitoviz/internal"
	"mitoviz/internal/classify"
	"mitoviz/internal/errors"
	"mitoviz/internal/matrix"
	"mitoviz/internal/views"
	"mitoviz/ports"
)

// VisualizerService runs the upload-to-chart pipeline. Every call
// derives fresh entities from the input; nothing is shared or mutated
// across requests.
type VisualizerService struct {
	reader     ports.TableReader
	classifier *classify.Classifier
	builder    *matrix.Builder
	log        *internal.Logger
}

// NewVisualizerService creates the pipeline service
func NewVisualizerService(reader ports.TableReader, logger *internal.Logger) *VisualizerService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &VisualizerService{
		reader:     reader,
		classifier: classify.NewClassifier(),
		builder:    matrix.NewBuilder(),
		log:        logger.WithComponent("Visualizer"),
	}
}

// ProcessUpload parses an uploaded file and derives the cleaned
// abundance table. Classification and decode failures keep their
// codes; anything else is reported as a generic parse failure.
func (s *VisualizerService) ProcessUpload(src io.Reader, filename string) (*abundance.Table, error) {
	raw, err := s.reader.Read(src, filename)
	if err != nil {
		s.log.Warn("failed to read %s: %v", filename, err)
		return nil, err
	}

	cls, err := s.classifier.Classify(raw)
	if err != nil {
		s.log.Warn("classification failed for %s: %v", filename, err)
		return nil, err
	}
	s.log.Debug("classified %s: rule=%s samples=%d", filename, cls.RuleApplied, len(cls.SampleColumns))

	tbl := s.builder.Build(raw, cls)
	s.log.Info("processed %s: %d species × %d samples", filename, tbl.SpeciesCount(), tbl.SampleCount())
	return tbl, nil
}

// Render produces the chart payload selected by the options
func (s *VisualizerService) Render(tbl *abundance.Table, opts views.Options) (interface{}, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	switch opts.ChartType {
	case chart.TypeComposition:
		return views.Composition(tbl, opts), nil
	case chart.TypeHeatmap:
		return views.Heatmap(tbl, opts), nil
	case chart.TypeDiversity:
		return views.Diversity(tbl), nil
	default:
		return nil, errors.InvalidInput("unknown chart type: " + string(opts.ChartType))
	}
}

// Dashboard bundles the summary and all three views for one table
type Dashboard struct {
	Summary     abundance.Summary `json:"summary"`
	Composition *chart.StackedBar `json:"composition"`
	Heatmap     *chart.Heatmap    `json:"heatmap"`
	Diversity   *chart.Diversity  `json:"diversity"`
}

// RenderDashboard computes the summary and the three views. The views
// only read the freshly derived table, so they can run in parallel.
func (s *VisualizerService) RenderDashboard(ctx context.Context, tbl *abundance.Table, opts views.Options) (*Dashboard, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	dash := &Dashboard{Summary: abundance.Summarize(tbl)}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		dash.Composition = views.Composition(tbl, opts)
		return nil
	})
	g.Go(func() error {
		dash.Heatmap = views.Heatmap(tbl, opts)
		return nil
	})
	g.Go(func() error {
		dash.Diversity = views.Diversity(tbl)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dash, nil
}
