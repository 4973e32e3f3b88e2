package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/soapkit/xsd"
	xsderrors "github.com/soapkit/xsd/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("xsdlex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	typeName := fs.String("type", "", "datatype local name, e.g. dateTime")
	namespace := fs.String("ns", xsd.Namespace, "datatype namespace")
	encoding := fs.String("encoding", "", "charset string values must be valid in (default UTF-8)")
	listTypes := fs.Bool("list", false, "list registered datatypes and exit")
	verbose := fs.Bool("v", false, "log rejected literals to stderr")
	cpuProfilePath := fs.String("cpuprofile", "", "write CPU profile to file")
	memProfilePath := fs.String("memprofile", "", "write memory profile to file")
	var usageErr error
	fs.Usage = func() {
		usageErr = errors.Join(
			usageErr,
			writef(stderr, "Usage: %s -type <name> <literal>...\n\n", os.Args[0]),
			writeln(stderr, "Parses each literal as an XML Schema datatype and prints its canonical form."),
			writeln(stderr),
			writeln(stderr, "Options:"),
		)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *listTypes {
		for _, info := range xsd.Types() {
			if err := writef(stdout, "%s\t%s\n", info.Name.Local, info.Base.Local); err != nil {
				return 1
			}
		}
		return 0
	}

	if *typeName == "" {
		if err := writeln(stderr, "error: -type is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}

	literals := fs.Args()
	if len(literals) == 0 {
		if err := writeln(stderr, "error: at least one literal argument is required"); err != nil {
			return 1
		}
		fs.Usage()
		if usageErr != nil {
			return 1
		}
		return 2
	}

	typ := xsd.QName{Namespace: *namespace, Local: *typeName}
	if !xsd.IsBuiltin(typ) {
		if err := writef(stderr, "error: unknown datatype %s\n", typ); err != nil {
			return 1
		}
		return 2
	}

	if *cpuProfilePath != "" {
		stopCPUProfile, err := startCPUProfile(*cpuProfilePath)
		if err != nil {
			if writeErr := writef(stderr, "error starting CPU profile: %v\n", err); writeErr != nil {
				return 1
			}
			return 1
		}
		defer func() {
			if err := stopCPUProfile(); err != nil {
				_ = writef(stderr, "error stopping CPU profile: %v\n", err)
			}
		}()
	}

	if *memProfilePath != "" {
		defer func() {
			if err := writeMemProfile(*memProfilePath); err != nil {
				_ = writef(stderr, "error writing memory profile: %v\n", err)
			}
		}()
	}

	opts := xsd.NewOptions().WithEncoding(*encoding)
	if *verbose {
		opts = opts.WithLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	codec, err := xsd.NewCodec(opts)
	if err != nil {
		if writeErr := writef(stderr, "error: %v\n", err); writeErr != nil {
			return 1
		}
		return 2
	}

	status := 0
	for _, literal := range literals {
		v, err := codec.Parse(typ, literal)
		if err != nil {
			msg := err.Error()
			if vse, ok := xsderrors.AsValueSpace(err); ok && vse.Err != nil {
				msg = fmt.Sprintf("%s: cannot accept '%s' (%v)", vse.Type.Local, vse.Literal, vse.Err)
			}
			if writeErr := writeln(stderr, msg); writeErr != nil {
				return 1
			}
			status = 1
			continue
		}
		if err := writeln(stdout, v.String()); err != nil {
			return 1
		}
	}
	return status
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func writeln(w io.Writer, args ...any) error {
	_, err := fmt.Fprintln(w, args...)
	return err
}

func startCPUProfile(path string) (func() error, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create cpu profile %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return nil, fmt.Errorf("start cpu profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return nil, fmt.Errorf("start cpu profile %s: %w", path, err)
	}
	return func() error {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			return fmt.Errorf("close cpu profile %s: %w", path, err)
		}
		return nil
	}, nil
}

func writeMemProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create mem profile %s: %w", path, err)
	}
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			return fmt.Errorf("write mem profile %s: %w (close failed: %w)", path, err, closeErr)
		}
		return fmt.Errorf("write mem profile %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close mem profile %s: %w", path, err)
	}
	return nil
}
