// randprobe prints sample values from the library's generators.
//
//	$ randprobe -secure           # report the entropy source in use
//	$ randprobe -seed abc -n 10   # replay a seeded stream
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/antithesishq/antithesis-random-go/engine"
	"github.com/antithesishq/antithesis-random-go/generator"
	"github.com/antithesishq/antithesis-random-go/random"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "randprobe: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("randprobe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seedPtr := fs.String("seed", "", "seed for a reproducible stream (base-10 integers are integer seeds)")
	countPtr := fs.Int("n", 5, "number of values to print")
	securePtr := fs.Bool("secure", false, "draw from the cryptographic generator")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *securePtr && *seedPtr != "" {
		return errors.New("-seed and -secure are mutually exclusive")
	}

	var gen generator.Generator
	switch {
	case *securePtr:
		secure, err := generator.NewSecure()
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "entropy source: %s\n", secure.SourceName())
		gen = secure
	case *seedPtr != "":
		gen = random.Config{Seed: *seedPtr}.Generator()
	default:
		gen = generator.Standard()
	}

	values, err := engine.New(gen).Range().Float(*countPtr, 0, 1)
	if err != nil {
		return err
	}
	for _, v := range values {
		fmt.Fprintf(stdout, "%v\n", v)
	}
	return nil
}
