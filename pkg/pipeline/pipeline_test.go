package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/masonry/pkg/cache"
	"github.com/matzehuels/masonry/pkg/column"
	"github.com/matzehuels/masonry/pkg/errors"
	"github.com/matzehuels/masonry/pkg/export"
	"github.com/matzehuels/masonry/pkg/scenario"
)

func testScenario(t *testing.T) *scenario.Scenario {
	t.Helper()
	s, err := scenario.Parse([]byte(`
name = "grid"

[viewport]
width = 216
height = 400

[[sections]]
items = 4
`), scenario.FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return s
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png", "json"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	err := ValidateFormats([]string{"svg", "pdf"})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("pdf should fail with %v, got %v", errors.ErrCodeInvalidFormat, err)
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"zero", Options{}, false},
		{"full", Options{Overrides: Overrides{Width: 320, Columns: 3, Direction: "shortest-first", Sticky: true}, Formats: []string{"png"}}, false},
		{"bad direction", Options{Overrides: Overrides{Direction: "up"}}, true},
		{"negative width", Options{Overrides: Overrides{Width: -1}}, true},
		{"negative columns", Options{Overrides: Overrides{Columns: -2}}, true},
		{"bad format", Options{Formats: []string{"gif"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSetDefaults(t *testing.T) {
	opts := Options{}
	opts.SetDefaults()

	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("Formats should be [svg], got %v", opts.Formats)
	}
	if opts.Scale != DefaultScale {
		t.Errorf("Scale should be %v, got %v", DefaultScale, opts.Scale)
	}
	if opts.Logger == nil {
		t.Error("Logger should be set")
	}
}

func TestApplyOverrides(t *testing.T) {
	s := testScenario(t)

	got, err := ApplyOverrides(s, Overrides{Width: 320, Columns: 3, Direction: "right-to-left", Sticky: true})
	if err != nil {
		t.Fatalf("ApplyOverrides() error: %v", err)
	}
	if got.Viewport.Width != 320 || got.Options.ColumnCount != 3 ||
		got.Options.RenderDirection != column.RightToLeft || !got.Options.PinHeaders {
		t.Errorf("overrides not applied: %+v", got)
	}
	if s.Viewport.Width != 216 || s.Options.ColumnCount != 2 {
		t.Error("ApplyOverrides modified its input")
	}

	same, _ := ApplyOverrides(s, Overrides{})
	if same.Hash() != s.Hash() {
		t.Error("empty overrides should not change the scenario")
	}
}

func TestGenerateLayout(t *testing.T) {
	d := GenerateLayout(testScenario(t))
	if d.Name != "grid" || d.ItemCount() != 4 || d.ContentSize.Height != 124 {
		t.Errorf("GenerateLayout() = %+v", d)
	}
}

func TestRender(t *testing.T) {
	d := GenerateLayout(testScenario(t))
	opts := Options{Formats: []string{FormatSVG, FormatPNG, FormatJSON}}
	opts.SetDefaults()

	out, err := Render(d, opts)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.HasPrefix(out[FormatSVG], []byte("<svg")) {
		t.Error("svg artifact is not svg")
	}
	if !bytes.HasPrefix(out[FormatPNG], []byte("\x89PNG")) {
		t.Error("png artifact is not png")
	}
	back, err := export.Unmarshal(out[FormatJSON])
	if err != nil || back.ItemCount() != 4 {
		t.Errorf("json artifact round trip = %+v, %v", back, err)
	}

	if _, err := Render(d, Options{Formats: []string{"pdf"}}); err == nil {
		t.Error("Render(pdf) should fail")
	}
}

func TestRunnerExecuteCaches(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()
	s := testScenario(t)
	opts := Options{Formats: []string{FormatSVG, FormatJSON}}

	first, err := r.Execute(ctx, s, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if first.CacheInfo.LayoutHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss: %+v", first.CacheInfo)
	}
	if first.RunID == "" || first.Document.RunID != first.RunID {
		t.Errorf("run id not set: %q / %q", first.RunID, first.Document.RunID)
	}
	if first.Stats.Sections != 1 || first.Stats.Items != 4 {
		t.Errorf("Stats = %+v", first.Stats)
	}

	second, err := r.Execute(ctx, s, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !second.CacheInfo.LayoutHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit: %+v", second.CacheInfo)
	}
	if second.RunID == first.RunID {
		t.Error("each run should get a new id")
	}
	if !bytes.Equal(first.Artifacts[FormatSVG], second.Artifacts[FormatSVG]) {
		t.Error("cached svg differs from rendered svg")
	}

	refreshed, err := r.Execute(ctx, s, Options{Formats: opts.Formats, Refresh: true})
	if err != nil {
		t.Fatalf("Execute(refresh) error: %v", err)
	}
	if refreshed.CacheInfo.LayoutHit || refreshed.CacheInfo.RenderHit {
		t.Errorf("refresh should bypass the cache: %+v", refreshed.CacheInfo)
	}
}

func TestRunnerOverridesChangeKey(t *testing.T) {
	ctx := context.Background()
	c, _ := cache.NewFileCache(t.TempDir())
	r := NewRunner(c, nil, nil)
	s := testScenario(t)

	if _, err := r.Layout(ctx, s, Options{}); err != nil {
		t.Fatal(err)
	}
	res, err := r.Layout(ctx, s, Options{Overrides: Overrides{Columns: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheInfo.LayoutHit {
		t.Error("different overrides should not share a cached layout")
	}
	if res.Document.Sections[0].Columns != 1 {
		t.Errorf("Columns = %d, want 1", res.Document.Sections[0].Columns)
	}
}

func TestRunnerRejectsInvalidInput(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	s := testScenario(t)

	_, err := r.Execute(context.Background(), s, Options{Overrides: Overrides{Direction: "sideways"}})
	if err == nil || !strings.Contains(err.Error(), "invalid options") {
		t.Errorf("Execute() error = %v, want invalid options", err)
	}
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidInput)
	}
}
