// Package template holds the file sets emitted by the etrace gen
// command. Each exported FileSystem produces one flavor of named
// wrapper type boilerplate.
package template

import (
	"embed"

	"github.com/hysios/etrace/gen"
	icli "github.com/hysios/etrace/internal/cli"
	"github.com/hysios/etrace/utils"
)

//go:embed wrapper
var wrapperFs embed.FS

var (
	// Alias emits a generic type alias plus named constructors.
	// The generated code needs Go 1.24 or newer.
	Alias = &gen.FileSystem{Contents: wrapperFs}

	// Struct emits a defined struct type with the full forwarding
	// boilerplate.
	Struct = &gen.FileSystem{Contents: wrapperFs}
)

func init() {
	Alias.AddFile("{{.FileName}}.go", Alias.MustParse("wrapper/alias.go.tmpl"))
	Struct.AddFile("{{.FileName}}.go", Struct.MustParse("wrapper/struct.go.tmpl"))
}

// WrapperContext is the template context for a generated wrapper type.
type WrapperContext struct {
	TypeName string
	PkgName  string
	FileName string
	Receiver string
}

func NewWrapperContext(spec *icli.TypeSpec) *WrapperContext {
	return &WrapperContext{
		TypeName: spec.TypeName,
		PkgName:  spec.PkgName,
		FileName: utils.Snake(spec.TypeName),
		Receiver: utils.Lower(spec.TypeName[:1]),
	}
}
