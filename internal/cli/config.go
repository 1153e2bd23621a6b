package cli

// Config stores CLI options for a single translation run.
type Config struct {
	// Input is the mapping document path; "" reads stdin.
	Input string
	// Output is the data-set document path; "" writes stdout.
	Output string
	// Operator is an optional scoped operator name overriding the
	// document's root option.
	Operator string
	// AllDataSets emits every known data-set instead of only the ones
	// reachable from the resolved operator.
	AllDataSets bool
	// NumericTypes emits numeric primitive codes instead of names.
	NumericTypes bool
	// Verbosity raises the log level.
	Verbosity   int
	ShowVersion bool
}
