package wrap

import "strings"

// LineEnding is the terminator Wrap splits on and Fill joins with.
type LineEnding uint8

const (
	LF LineEnding = iota
	CRLF
)

// String returns the terminator itself.
func (e LineEnding) String() string {
	if e == CRLF {
		return "\r\n"
	}
	return "\n"
}

// Name returns "lf" or "crlf".
func (e LineEnding) Name() string {
	if e == CRLF {
		return "crlf"
	}
	return "lf"
}

func ParseLineEnding(name string) (LineEnding, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lf", `\n`, "unix":
		return LF, true
	case "crlf", `\r\n`, "dos", "windows":
		return CRLF, true
	default:
		return 0, false
	}
}

// Algorithm selects the line-breaking algorithm.
type Algorithm uint8

const (
	FirstFit Algorithm = iota
	OptimalFit
)

func (a Algorithm) String() string {
	switch a {
	case FirstFit:
		return "first-fit"
	case OptimalFit:
		return "optimal-fit"
	default:
		return "unknown"
	}
}

func ParseAlgorithm(name string) (Algorithm, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "first-fit", "firstfit", "first", "greedy":
		return FirstFit, true
	case "optimal-fit", "optimalfit", "optimal":
		return OptimalFit, true
	default:
		return 0, false
	}
}

// optimalFit is set at link time:
//
//	go build -ldflags "-X github.com/unkn0wn-root/textwrap/internal/wrap.optimalFit=off"
var optimalFit = "on"

// DefaultAlgorithm is OptimalFit unless the binary was built with
// optimal-fit turned off.
var DefaultAlgorithm = defaultAlgorithm()

func defaultAlgorithm() Algorithm {
	if OptimalFitAvailable() {
		return OptimalFit
	}
	return FirstFit
}

// OptimalFitAvailable reports whether optimal-fit was left enabled at
// build time.
func OptimalFitAvailable() bool {
	switch strings.ToLower(strings.TrimSpace(optimalFit)) {
	case "0", "off", "false", "no", "disabled":
		return false
	default:
		return true
	}
}

/*
Options controls Wrap and Fill. It is a plain value: the With methods
return modified copies, and nothing in the package mutates an Options
it was handed.

Width is measured in display columns and includes the indent of each
line. A negative Width behaves as 0; math.MaxInt never wraps.
*/
type Options struct {
	Width            int
	LineEnding       LineEnding
	InitialIndent    string
	SubsequentIndent string
	BreakWords       bool
	WordSeparator    Separator
	WordSplitter     WordSplitter
	WrapAlgorithm    Algorithm
	Penalties        Penalties
}

// NewOptions returns the defaults for width: LF, no indent, words
// broken when too long, Unicode word boundaries, hyphen splitting and
// DefaultAlgorithm.
func NewOptions(width int) Options {
	return Options{
		Width:         width,
		LineEnding:    LF,
		BreakWords:    true,
		WordSeparator: UnicodeBreakProperties,
		WordSplitter:  HyphenSplitter,
		WrapAlgorithm: DefaultAlgorithm,
		Penalties:     DefaultPenalties(),
	}
}

func (o Options) WithWidth(w int) Options {
	o.Width = w
	return o
}

func (o Options) WithLineEnding(e LineEnding) Options {
	o.LineEnding = e
	return o
}

func (o Options) WithInitialIndent(s string) Options {
	o.InitialIndent = s
	return o
}

func (o Options) WithSubsequentIndent(s string) Options {
	o.SubsequentIndent = s
	return o
}

// WithIndent sets both indents.
func (o Options) WithIndent(s string) Options {
	o.InitialIndent = s
	o.SubsequentIndent = s
	return o
}

func (o Options) WithBreakWords(b bool) Options {
	o.BreakWords = b
	return o
}

func (o Options) WithWordSeparator(s Separator) Options {
	o.WordSeparator = s
	return o
}

func (o Options) WithWordSplitter(s WordSplitter) Options {
	o.WordSplitter = s
	return o
}

func (o Options) WithWrapAlgorithm(a Algorithm) Options {
	o.WrapAlgorithm = a
	return o
}

func (o Options) WithPenalties(p Penalties) Options {
	o.Penalties = p
	return o
}
