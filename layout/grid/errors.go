package grid

import "github.com/olekukonko/errors"

// Span is a lightweight stand-in for a source location: an opaque index
// into the caller's original input sequence, assigned by the caller and
// echoed back in diagnostics. It is not a file/line/column location —
// that belongs to a parser, which this package does not have.
type Span int

// NoSpan indicates no particular offending item.
const NoSpan Span = -1

// Kind classifies a layout error for callers that want to branch on
// failure category without string-matching messages (§7).
type Kind int

const (
	// KindPlacementConflict covers overlapping cells, spans that exceed
	// the column count, and spans too large to represent.
	KindPlacementConflict Kind = iota
	// KindOutOfRangeLine covers hlines/vlines outside the grid, or an
	// end index before the start index.
	KindOutOfRangeLine
	// KindInvalidFixedHeight covers an infinite height requested for a
	// single, unbreakable row.
	KindInvalidFixedHeight
	// KindEvaluationFailure covers a celled function returning an error
	// (it raised, or produced a value of the wrong type).
	KindEvaluationFailure
	// KindRowCannotFit covers an unbreakable row that still does not fit
	// once the region stream is exhausted.
	KindRowCannotFit
)

func (k Kind) String() string {
	switch k {
	case KindPlacementConflict:
		return "placement conflict"
	case KindOutOfRangeLine:
		return "out-of-range line"
	case KindInvalidFixedHeight:
		return "invalid fixed height"
	case KindEvaluationFailure:
		return "evaluation failure"
	case KindRowCannotFit:
		return "row cannot fit"
	default:
		return "grid error"
	}
}

// Error is the error type returned by every fallible operation in this
// package: a kind, a message, the offending span (if any), and an
// optional hint suggesting a fix.
type Error struct {
	Kind Kind
	Span Span
	Hint string
	err  error
}

func (e *Error) Error() string {
	msg := e.err.Error()
	if e.Hint != "" {
		msg += " (hint: " + e.Hint + ")"
	}
	return msg
}

// Unwrap exposes the underlying *errors.Error for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.err
}

func newError(kind Kind, span Span, format string, args ...any) *Error {
	return &Error{Kind: kind, Span: span, err: errors.Newf(format, args...)}
}

// WithHint attaches a human-readable hint to an error, returning it for
// chaining at the call site.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

func placementConflictError(span Span, format string, args ...any) *Error {
	return newError(KindPlacementConflict, span, format, args...)
}

func outOfRangeLineError(span Span, format string, args ...any) *Error {
	return newError(KindOutOfRangeLine, span, format, args...)
}

func invalidFixedHeightError(span Span, format string, args ...any) *Error {
	return newError(KindInvalidFixedHeight, span, format, args...)
}

func evaluationFailureError(span Span, format string, args ...any) *Error {
	return newError(KindEvaluationFailure, span, format, args...)
}

func rowCannotFitError(span Span, format string, args ...any) *Error {
	return newError(KindRowCannotFit, span, format, args...)
}
