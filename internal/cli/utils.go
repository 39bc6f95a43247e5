package cli

import (
	"errors"
	"regexp"
	"strings"

	"github.com/hysios/etrace/utils"
)

type TypeSpec struct {
	TypeName string
	PkgName  string
}

// ParseTypeSpec parses the wrapper type spec string to a TypeSpec.
// The spec string format is:
//
//	<name>[:<package>]
//
//	name    - wrapper type name, must be an exported Go identifier
//	package - target package name, must be a lower-case identifier;
//	          defaults to the lower-cased type name
//
// Example:
//
//	HTTPError           -> type HTTPError in package httperror
//	HTTPError:httperr   -> type HTTPError in package httperr
func ParseTypeSpec(s string) (*TypeSpec, error) {
	sections := strings.SplitN(s, ":", 2)

	name := sections[0]
	if name == "" {
		return nil, errors.New("missing type name")
	}

	if !validIdent(name) {
		return nil, errors.New("type name must be ident format")
	}

	if !exported(name) {
		return nil, errors.New("type name must be exported")
	}

	pkg := utils.Lower(name)
	if len(sections) == 2 {
		pkg = sections[1]
	}

	if !validPkg(pkg) {
		return nil, errors.New("package name must be a lower-case ident")
	}

	return &TypeSpec{
		TypeName: name,
		PkgName:  pkg,
	}, nil
}

var (
	identRegexp = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
	pkgRegexp   = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// validIdent checks if the name is ident format.
// only contains [a-zA-Z0-9_] and start with [a-zA-Z_]
func validIdent(s string) bool {
	return identRegexp.MatchString(s)
}

func validPkg(s string) bool {
	return pkgRegexp.MatchString(s)
}

func exported(s string) bool {
	return s[0] >= 'A' && s[0] <= 'Z'
}
