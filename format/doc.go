// Package format selects and produces the output encodings of reports.
//
// # Usage
//
//	err := format.Encode(w, report, format.YAMLFormat)
//
// Text output has no generic encoding; callers render it themselves and
// use Encode for the structured formats.
package format
