// The httperror-generator command generates converters from error sum types
// to HTTP responses.
//
// A sum type is an interface, sealed with an unexported method, whose cases
// are the named types of the same package implementing it. Each case carries
// a status code and a message template:
//
//	//httperror:sumtype
//	type APIError interface {
//		isAPIError()
//	}
//
//	//httperror:status 404
//	//httperror:message not found: {}
//	type NotFound struct {
//		ID string
//	}
//
//	func (NotFound) isAPIError() {}
//
// For every sum type a file "<snake_case name>_response.go" is written with
// a function
//
//	func APIErrorResponse(v APIError) response.Response
//
// returning the status code and a body of the form {"error": "<message>"}.
// Each "{}" in a message is replaced by the next payload field, in field
// order.
//
// Instead of directives, sum types can be declared in a YAML file passed
// with -config. The command is meant to be run by go generate:
//
//	//go:generate go run httperror-generator/cmd/httperror-generator -type APIError
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// options holds the parsed command line.
type options struct {
	config   string
	types    []string
	output   string
	pkg      string
	response string
	strict   bool
	stdout   bool
	dump     bool
	export   string
	verbose  bool
	patterns []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	log := newLogger(stderr, opts.verbose)
	defer func() { _ = log.Sync() }()

	if err := generate(opts, stdout, stderr, log); err != nil {
		log.Error("generation failed", zap.Error(err))
		return 1
	}

	return 0
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("httperror-generator", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: httperror-generator [flags] [packages]")
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.config, "config", "", "read sum type declarations from a YAML `file` instead of Go sources")
	fs.Func("type", "generate only the sum type `name` (repeatable, comma separated)", func(v string) error {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				opts.types = append(opts.types, name)
			}
		}

		return nil
	})
	fs.StringVar(&opts.output, "o", "", "output `dir` (default: package directory)")
	fs.StringVar(&opts.pkg, "package", "", "override package `name` (default: $GOPACKAGE)")
	fs.StringVar(&opts.response, "response", "", "import `path` of the response package")
	fs.BoolVar(&opts.strict, "strict", false, "fail when placeholders and payload fields do not pair up")
	fs.BoolVar(&opts.stdout, "stdout", false, "print generated files instead of writing them")
	fs.BoolVar(&opts.dump, "dump", false, "dump parsed sum types to stderr")
	fs.StringVar(&opts.export, "export", "", "write parsed sum types as a YAML declaration `file`")
	fs.BoolVar(&opts.verbose, "v", false, "enable debug logs")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	opts.patterns = fs.Args()

	if opts.pkg == "" {
		// Environment variable is set by `go generate`.
		opts.pkg = os.Getenv("GOPACKAGE")
	}

	return opts, nil
}
