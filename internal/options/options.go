// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string // input .asm file
	Output string // output listing file, stdout if empty
	Batch  string // file pattern for batch processing
}

// Flags contains behavior options.
type Flags struct {
	Debug bool
	Quiet bool
}

// Program options of the parser tool.
type Program struct {
	Parameters
	Flags
}

// Listing contains output formatting options.
type Listing struct {
	LineNumbers bool // prefix instructions with their sequence number
	Indent      bool // indent instructions, keep labels at column 0
}
