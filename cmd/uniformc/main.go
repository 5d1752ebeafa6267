package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/jessevdk/go-flags"

	"uniform"
)

type options struct {
	Attr string `short:"a" long:"attr" description:"attribute arguments passed alongside the annotation"`
	JSON bool   `long:"json" description:"print diagnostics as JSON"`
	Args struct {
		Source string `positional-arg-name:"source" description:"file with one record declaration, or - for stdin"`
	} `positional-args:"yes" required:"yes"`
}

type jsonDiagnostic struct {
	Pos      string `json:"pos"`
	Struct   string `json:"struct"`
	Expected string `json:"expected"`
	Found    string `json:"found"`
	Field    string `json:"field"`
	Message  string `json:"message"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(2)
	}
	filename := opts.Args.Source
	var source []byte
	var err error
	if filename == "-" {
		filename = "<stdin>"
		source, err = io.ReadAll(os.Stdin)
	} else {
		source, err = os.ReadFile(filename)
	}
	check(err)
	out, err := uniform.Expand(filename, source, opts.Attr)
	if err != nil {
		var diag *uniform.Diagnostic
		if errors.As(err, &diag) {
			if opts.JSON {
				encoded, err := json.Marshal(jsonDiagnostic{
					Pos:      diag.Pos().String(),
					Struct:   diag.StructName,
					Expected: diag.Expected,
					Found:    diag.Found,
					Field:    diag.Field,
					Message:  diag.Message(),
				})
				check(err)
				fmt.Fprintln(os.Stderr, string(encoded))
			} else {
				fmt.Fprintln(os.Stderr, diag.Error())
			}
			os.Exit(1)
		}
		check(err)
	}
	fmt.Print(out)
}

func check(err error) {
	if err != nil {
		panic(err)
	}
}
