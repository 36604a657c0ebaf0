package domain

// System identifies a numeral system.
type System string

const (
	SystemArabic System = "arabic"
	SystemRoman  System = "roman"
)

// Result is the outcome of a successful evaluation.
type Result struct {
	// Input is the expression text as received.
	Input string `json:"input"`

	// Output is the computed value rendered in System.
	Output string `json:"output"`

	// System is the numeral system shared by the operands and the output.
	System System `json:"system"`

	// Value is the raw integer result.
	Value int64 `json:"value"`
}
