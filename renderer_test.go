package siteprint

// Notes:
// - buildPrintToPDF: tests the mapping from PrintOptions to Chrome's
//   print parameters, including the px-to-inch conversion and the rule
//   that CSS-preferred sizing omits explicit paper dimensions.

import (
	"testing"
)

// ---------------------------------------------------------------------------
// TestBuildPrintToPDF - Chrome print parameter mapping
// ---------------------------------------------------------------------------

func TestBuildPrintToPDF_CSSPageSize(t *testing.T) {
	t.Parallel()

	req := buildPrintToPDF(PrintOptions{
		PreferCSSPageSize: true,
		PrintBackground:   true,
		Margin:            Margins{Top: 0, Left: 10, Right: 10, Bottom: 0},
	})

	if !req.PreferCSSPageSize {
		t.Error("PreferCSSPageSize not set")
	}
	if !req.PrintBackground {
		t.Error("PrintBackground not set")
	}

	// With CSS-driven sizing, no paper dimensions may be forced or the
	// page's @page rule would be overridden.
	if req.PaperWidth != nil || req.PaperHeight != nil {
		t.Error("paper dimensions must be nil when PreferCSSPageSize is set")
	}
}

func TestBuildPrintToPDF_DefaultPaperSize(t *testing.T) {
	t.Parallel()

	req := buildPrintToPDF(PrintOptions{PreferCSSPageSize: false})

	if req.PaperWidth == nil || *req.PaperWidth != paperWidthInches {
		t.Errorf("PaperWidth = %v, want %v", req.PaperWidth, paperWidthInches)
	}
	if req.PaperHeight == nil || *req.PaperHeight != paperHeightInches {
		t.Errorf("PaperHeight = %v, want %v", req.PaperHeight, paperHeightInches)
	}
}

func TestBuildPrintToPDF_MarginConversion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		margins    Margins
		wantTop    float64
		wantLeft   float64
		wantRight  float64
		wantBottom float64
	}{
		{
			name:    "zero margins",
			margins: Margins{},
		},
		{
			name:      "default side margins",
			margins:   Margins{Left: 10, Right: 10},
			wantLeft:  10.0 / 96.0,
			wantRight: 10.0 / 96.0,
		},
		{
			name:       "one inch everywhere",
			margins:    Margins{Top: 96, Left: 96, Right: 96, Bottom: 96},
			wantTop:    1,
			wantLeft:   1,
			wantRight:  1,
			wantBottom: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := buildPrintToPDF(PrintOptions{Margin: tt.margins})

			checks := []struct {
				side string
				got  *float64
				want float64
			}{
				{"top", req.MarginTop, tt.wantTop},
				{"left", req.MarginLeft, tt.wantLeft},
				{"right", req.MarginRight, tt.wantRight},
				{"bottom", req.MarginBottom, tt.wantBottom},
			}
			for _, c := range checks {
				if c.got == nil {
					t.Fatalf("margin %s is nil", c.side)
				}
				if *c.got != c.want {
					t.Errorf("margin %s = %v inches, want %v", c.side, *c.got, c.want)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestNewRodRenderer - Construction
// ---------------------------------------------------------------------------

func TestNewRodRenderer_NoEagerLaunch(t *testing.T) {
	t.Parallel()

	r := newRodRenderer(exporterConfig{timeout: defaultTimeout})
	if r.browser != nil {
		t.Error("browser must not launch before first render")
	}

	// Close before any launch must be a no-op.
	if err := r.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
}
