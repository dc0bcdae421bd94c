package wrap

import "testing"

func TestNewOptionsDefaults(t *testing.T) {
	o := NewOptions(42)
	if o.Width != 42 || o.LineEnding != LF || !o.BreakWords {
		t.Fatalf("unexpected defaults: %+v", o)
	}
	if o.WordSeparator != UnicodeBreakProperties {
		t.Fatalf("separator = %v", o.WordSeparator)
	}
	if o.WordSplitter.String() != "hyphen" {
		t.Fatalf("splitter = %v", o.WordSplitter)
	}
	if o.WrapAlgorithm != DefaultAlgorithm {
		t.Fatalf("algorithm = %v", o.WrapAlgorithm)
	}
	if o.Penalties != DefaultPenalties() {
		t.Fatalf("penalties = %+v", o.Penalties)
	}
}

func TestOptionsBuilderCopies(t *testing.T) {
	base := NewOptions(10)
	o := base.WithIndent("> ").WithBreakWords(false).WithWidth(20)
	if base.InitialIndent != "" || !base.BreakWords || base.Width != 10 {
		t.Fatalf("builder mutated its receiver: %+v", base)
	}
	if o.InitialIndent != "> " || o.SubsequentIndent != "> " || o.BreakWords || o.Width != 20 {
		t.Fatalf("unexpected options: %+v", o)
	}
}

func TestOptimalFitBuildFlag(t *testing.T) {
	old := optimalFit
	t.Cleanup(func() { optimalFit = old })

	if !OptimalFitAvailable() || defaultAlgorithm() != OptimalFit {
		t.Fatalf("expected optimal fit by default")
	}
	optimalFit = "off"
	if OptimalFitAvailable() || defaultAlgorithm() != FirstFit {
		t.Fatalf("expected first fit when optimal fit is off")
	}
}

func TestParseNames(t *testing.T) {
	if a, ok := ParseAlgorithm("Optimal-Fit"); !ok || a != OptimalFit {
		t.Fatalf("ParseAlgorithm optimal = %v %v", a, ok)
	}
	if a, ok := ParseAlgorithm("first-fit"); !ok || a != FirstFit {
		t.Fatalf("ParseAlgorithm first = %v %v", a, ok)
	}
	if _, ok := ParseAlgorithm("best"); ok {
		t.Fatalf("expected unknown algorithm to fail")
	}
	if e, ok := ParseLineEnding("CRLF"); !ok || e != CRLF || e.String() != "\r\n" {
		t.Fatalf("ParseLineEnding = %v %v", e, ok)
	}
	if s, ok := ParseSeparator("ascii"); !ok || s != AsciiSpace {
		t.Fatalf("ParseSeparator = %v %v", s, ok)
	}
	if _, ok := ParseSeparator("tabs"); ok {
		t.Fatalf("expected unknown separator to fail")
	}
}
