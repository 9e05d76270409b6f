package app

import (
	"context"
	"strings"
	"testing"

	"mitoviz/adapters/tabfile"
	"mitoviz/domain/chart"
	"mitoviz/internal/errors"
	"mitoviz/internal/testkit"
	"mitoviz/internal/views"
)

func newTestService() *VisualizerService {
	return NewVisualizerService(tabfile.NewReader(nil), nil)
}

// TestProcessUpload_Pipeline runs a results file through read,
// classify and build
func TestProcessUpload_Pipeline(t *testing.T) {
	svc := newTestService()

	tbl, err := svc.ProcessUpload(strings.NewReader(testkit.PipelineCSV()), "tax-results.csv")
	if err != nil {
		t.Fatalf("ProcessUpload failed: %v", err)
	}

	if tbl.SpeciesCount() != 3 {
		t.Errorf("SpeciesCount = %d, want 3", tbl.SpeciesCount())
	}
	wantSamples := []string{"tamagawa-1", "tamagawa-1_2", "nikaryo-2"}
	for i, want := range wantSamples {
		if tbl.Samples[i] != want {
			t.Errorf("Samples[%d] = %q, want %q", i, tbl.Samples[i], want)
		}
	}
	if tbl.Matrix[1][1] != 20 {
		t.Errorf("Matrix[1][1] = %v, want 20", tbl.Matrix[1][1])
	}
}

// TestProcessUpload_NoSampleColumns keeps the classification code on
// the way out
func TestProcessUpload_NoSampleColumns(t *testing.T) {
	svc := newTestService()

	_, err := svc.ProcessUpload(strings.NewReader("Species,Comment\nCarp,ok\n"), "bad.csv")
	if err == nil {
		t.Fatal("Expected classification failure")
	}
	if !errors.HasCode(err, errors.CodeNoSampleColumns) {
		t.Errorf("Expected code %s, got %s", errors.CodeNoSampleColumns, errors.GetCode(err))
	}
}

// TestRender_SelectsView verifies the chart-type dispatch
func TestRender_SelectsView(t *testing.T) {
	svc := newTestService()
	tbl := testkit.DemoTable()

	for _, chartType := range []chart.Type{chart.TypeComposition, chart.TypeHeatmap, chart.TypeDiversity} {
		opts := views.DefaultOptions()
		opts.ChartType = chartType
		payload, err := svc.Render(tbl, opts)
		if err != nil {
			t.Errorf("Render(%s) failed: %v", chartType, err)
		}
		if payload == nil {
			t.Errorf("Render(%s) returned no payload", chartType)
		}
	}
}

// TestRender_UnknownChartType rejects unrecognized types before any
// view runs
func TestRender_UnknownChartType(t *testing.T) {
	svc := newTestService()

	opts := views.DefaultOptions()
	opts.ChartType = "sunburst"
	_, err := svc.Render(testkit.DemoTable(), opts)
	if err == nil {
		t.Fatal("Expected render to fail")
	}
	if !errors.HasCode(err, errors.CodeInvalidInput) {
		t.Errorf("Expected code %s, got %s", errors.CodeInvalidInput, errors.GetCode(err))
	}
}

// TestRenderDashboard_AllViews verifies the bundled payload carries
// the summary and every view
func TestRenderDashboard_AllViews(t *testing.T) {
	svc := newTestService()

	dash, err := svc.RenderDashboard(context.Background(), testkit.DemoTable(), views.DefaultOptions())
	if err != nil {
		t.Fatalf("RenderDashboard failed: %v", err)
	}

	if dash.Summary.SpeciesCount != 10 || dash.Summary.SampleCount != 5 {
		t.Errorf("Summary = %+v", dash.Summary)
	}
	if dash.Composition == nil || dash.Heatmap == nil || dash.Diversity == nil {
		t.Fatal("Dashboard is missing a view")
	}
	if len(dash.Diversity.Records) != 5 {
		t.Errorf("Expected 5 diversity records, got %d", len(dash.Diversity.Records))
	}
}

// TestRenderDashboard_InvalidOptions fails fast on bad options
func TestRenderDashboard_InvalidOptions(t *testing.T) {
	svc := newTestService()

	opts := views.DefaultOptions()
	opts.TopN = 3
	_, err := svc.RenderDashboard(context.Background(), testkit.DemoTable(), opts)
	if err == nil {
		t.Fatal("Expected validation failure")
	}
	if !errors.HasCode(err, errors.CodeInvalidInput) {
		t.Errorf("Expected code %s, got %s", errors.CodeInvalidInput, errors.GetCode(err))
	}
}
