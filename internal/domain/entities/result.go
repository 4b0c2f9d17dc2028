package entities

// Result summarizes what normalization did, or would do, to one file.
type Result struct {
	Path string
	// Locale is the @@locale value of the output, empty if none.
	Locale string
	// LocaleDerived is true when Locale came from the file name.
	LocaleDerived bool
	Messages      int
	// Synthesized counts descriptions filled with AutoDescription.
	Synthesized int
	// Coerced counts metadata values replaced because they were not objects.
	Coerced int
	// Orphans counts metadata keys dropped because no message owns them.
	Orphans int
	Changed bool
}
