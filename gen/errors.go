package gen

import "github.com/hysios/etrace"

// Kind classifies generator failures.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindExists
	KindFilename
	KindTemplate
	KindWrite
)

// Error is the wrapped error type returned by the generator.
type Error = etrace.Error[Kind]

func (k Kind) GoString() string {
	switch k {
	case KindExists:
		return "gen.KindExists"
	case KindFilename:
		return "gen.KindFilename"
	case KindTemplate:
		return "gen.KindTemplate"
	case KindWrite:
		return "gen.KindWrite"
	default:
		return "gen.KindUnknown"
	}
}

func (k Kind) Error() string {
	switch k {
	case KindExists:
		return "target file already exists"
	case KindFilename:
		return "invalid filename pattern"
	case KindTemplate:
		return "template execution failed"
	case KindWrite:
		return "writing target file failed"
	default:
		return "unknown generator failure"
	}
}
