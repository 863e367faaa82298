package materiality

// Completion is the four-state result of combining "active" with "required".
type Completion string

const (
	CompletionComplete      Completion = "COMPLETE"
	CompletionOptionalDone  Completion = "OPTIONAL_DONE"
	CompletionMissing       Completion = "MISSING"
	CompletionNotApplicable Completion = "NOT_APPLICABLE"
)

// Evaluate maps the (active, required) pair to its completion state.
// Every combination resolves to exactly one state.
func Evaluate(active, required bool) Completion {
	switch {
	case active && required:
		return CompletionComplete
	case active:
		return CompletionOptionalDone
	case required:
		return CompletionMissing
	default:
		return CompletionNotApplicable
	}
}

// Done reports whether the state counts as satisfied, i.e. nothing is
// outstanding for the sub-process.
func (c Completion) Done() bool {
	return c == CompletionComplete || c == CompletionOptionalDone
}
