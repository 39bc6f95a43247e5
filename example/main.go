// Package main demonstrates usage of the etrace package.
//
// The httperr package next to it was produced with
//
//	etrace gen --name HTTPError:httperr --kind struct -o example/httperr
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/hysios/etrace"
	"github.com/hysios/etrace/backtrace"
	"github.com/hysios/etrace/example/httperr"
)

// ErrorKind is the demo error kind.
type ErrorKind uint8

const (
	ErrConnect ErrorKind = iota
	ErrTestolope
)

func (k ErrorKind) GoString() string {
	switch k {
	case ErrConnect:
		return "Connect"
	default:
		return "Testolope"
	}
}

func (k ErrorKind) Error() string {
	switch k {
	case ErrConnect:
		return "connect failure"
	default:
		return "testolope failure"
	}
}

// willFail always fails, propagating its kind as a wrapped error.
func willFail() *etrace.Error[ErrorKind] {
	return etrace.New(ErrTestolope)
}

func main() {
	os.Setenv(backtrace.EnvVar, "1")

	err := willFail().WithDescription("operation X failed")
	fmt.Printf("Error: %+v\n\n", err)

	resp := httperr.DescribeHTTPError(http.StatusBadGateway, "upstream hiccup")
	fmt.Printf("HTTP error: %v (status %d)\n", resp, resp.Err())
}
