package settings

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/unkn0wn-root/textwrap/internal/errdef"
	"github.com/unkn0wn-root/textwrap/internal/wrap"
)

const (
	KeyWidth            = "width"
	KeyLineEnding       = "line-ending"
	KeyInitialIndent    = "initial-indent"
	KeySubsequentIndent = "subsequent-indent"
	KeyIndent           = "indent"
	KeyBreakWords       = "break-words"
	KeyWordSeparator    = "word-separator"
	KeyWrapAlgorithm    = "wrap-algorithm"
	KeyWordSplitter     = "word-splitter"
	KeyPatterns         = "hyphenation-patterns"
	KeyLanguage         = "hyphenation-language"

	penaltyPrefix = "penalties."
)

var penaltyKeys = []string{
	"penalties.nline",
	"penalties.overflow",
	"penalties.short-last-line-fraction",
	"penalties.short-last-line",
	"penalties.hyphen",
}

// Keys returns every key the handlers in this package understand.
func Keys() []string {
	keys := []string{
		KeyWidth, KeyLineEnding, KeyInitialIndent, KeySubsequentIndent,
		KeyIndent, KeyBreakWords, KeyWordSeparator, KeyWrapAlgorithm,
		KeyWordSplitter, KeyPatterns, KeyLanguage,
	}
	keys = append(keys, penaltyKeys...)
	slices.Sort(keys)
	return keys
}

// LayoutHandler applies width, indentation, line ending, word
// separation and algorithm keys to opts.
func LayoutHandler(opts *wrap.Options) Handler {
	return Handler{
		Match: ExactMatcher(KeyWidth, KeyLineEnding, KeyInitialIndent, KeySubsequentIndent,
			KeyIndent, KeyBreakWords, KeyWordSeparator, KeyWrapAlgorithm),
		Apply: func(key, val string) error {
			return applyLayout(opts, key, val)
		},
	}
}

func applyLayout(opts *wrap.Options, key, val string) error {
	switch key {
	case KeyWidth:
		w, err := ParseWidth(val)
		if err != nil {
			return err
		}
		opts.Width = w
	case KeyLineEnding:
		e, ok := wrap.ParseLineEnding(val)
		if !ok {
			return configErr("%s: unknown line ending %q", key, val)
		}
		opts.LineEnding = e
	case KeyInitialIndent:
		opts.InitialIndent = val
	case KeySubsequentIndent:
		opts.SubsequentIndent = val
	case KeyIndent:
		opts.InitialIndent = val
		opts.SubsequentIndent = val
	case KeyBreakWords:
		b, ok := parseBool(val)
		if !ok {
			return configErr("%s: invalid boolean %q", key, val)
		}
		opts.BreakWords = b
	case KeyWordSeparator:
		s, ok := wrap.ParseSeparator(val)
		if !ok {
			return configErr("%s: unknown separator %q", key, val)
		}
		opts.WordSeparator = s
	case KeyWrapAlgorithm:
		a, err := ParseAlgorithm(val)
		if err != nil {
			return err
		}
		opts.WrapAlgorithm = a
	}
	return nil
}

// PenaltyHandler applies "penalties.*" keys to p.
func PenaltyHandler(p *wrap.Penalties) Handler {
	return Handler{
		Match: PrefixMatcher(penaltyPrefix),
		Apply: func(key, val string) error {
			f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
				return configErr("%s: expected a non-negative number, got %q", key, val)
			}
			switch strings.TrimPrefix(key, penaltyPrefix) {
			case "nline":
				p.NLinePenalty = f
			case "overflow":
				p.OverflowPenalty = f
			case "short-last-line-fraction":
				if f == 0 {
					return configErr("%s: must be positive", key)
				}
				p.ShortLastLineFraction = f
			case "short-last-line":
				p.ShortLastLinePenalty = f
			case "hyphen":
				p.HyphenPenalty = f
			default:
				return configErr("unknown penalty %q", key)
			}
			return nil
		},
	}
}

// Hyphenation collects the word-splitter keys until the dictionary can
// be loaded.
type Hyphenation struct {
	Splitter string
	Patterns string
	Language string
}

func HyphenationHandler(h *Hyphenation) Handler {
	return Handler{
		Match: ExactMatcher(KeyWordSplitter, KeyPatterns, KeyLanguage),
		Apply: func(key, val string) error {
			val = strings.TrimSpace(val)
			switch key {
			case KeyWordSplitter:
				switch strings.ToLower(val) {
				case "none", "hyphen", "dictionary":
					h.Splitter = strings.ToLower(val)
				default:
					return configErr("%s: unknown splitter %q", key, val)
				}
			case KeyPatterns:
				h.Patterns = val
			case KeyLanguage:
				h.Language = val
			}
			return nil
		},
	}
}

// DictionaryLoader loads hyphenation patterns for a language.
type DictionaryLoader func(path, lang string) (wrap.Dictionary, error)

// Resolve returns the splitter h describes. Setting patterns or a
// language without naming a splitter selects "dictionary"; locate maps
// a language to a pattern file when no file was given.
func (h Hyphenation) Resolve(load DictionaryLoader, locate func(lang string) string) (wrap.WordSplitter, error) {
	kind := h.Splitter
	if kind == "" {
		kind = "hyphen"
		if h.Patterns != "" || h.Language != "" {
			kind = "dictionary"
		}
	}
	switch kind {
	case "none":
		return wrap.NoHyphenation, nil
	case "hyphen":
		return wrap.HyphenSplitter, nil
	}

	path := h.Patterns
	if path == "" && h.Language != "" && locate != nil {
		path = locate(h.Language)
	}
	if path == "" {
		return wrap.WordSplitter{}, usageErr("dictionary splitting needs %s or %s", KeyPatterns, KeyLanguage)
	}
	d, err := load(path, h.Language)
	if err != nil {
		return wrap.WordSplitter{}, err
	}
	return wrap.Hyphenation(d), nil
}

// ParseWidth accepts a column count or one of "max", "none",
// "unlimited" for no wrapping.
func ParseWidth(val string) (int, error) {
	v := strings.ToLower(strings.TrimSpace(val))
	switch v {
	case "max", "none", "unlimited", "inf":
		return math.MaxInt, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, configErr("width: expected a non-negative integer, got %q", val)
	}
	return n, nil
}

// ParseAlgorithm is wrap.ParseAlgorithm with errors, refusing
// optimal-fit in builds that turned it off.
func ParseAlgorithm(val string) (wrap.Algorithm, error) {
	a, ok := wrap.ParseAlgorithm(val)
	if !ok {
		return 0, configErr("%s: unknown algorithm %q", KeyWrapAlgorithm, val)
	}
	if a == wrap.OptimalFit && !wrap.OptimalFitAvailable() {
		return 0, usageErr("optimal-fit is disabled in this build")
	}
	return a, nil
}

func parseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

func configErr(format string, args ...any) error {
	return errdef.New(errdef.CodeConfig, format, args...)
}

func usageErr(format string, args ...any) error {
	return errdef.New(errdef.CodeUsage, format, args...)
}
