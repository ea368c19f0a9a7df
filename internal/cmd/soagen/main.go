// Command soagen writes the fixed arity container types of package soa.
//
//	go run ./internal/cmd/soagen -o vec.gen.go -min 1 -max 12
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
)

func main() {
	var (
		out  = flag.String("o", "vec.gen.go", "output file, - for stdout")
		pkg  = flag.String("pkg", "soa", "package name")
		from = flag.Int("min", 1, "smallest arity")
		to   = flag.Int("max", 12, "largest arity")
	)
	flag.Parse()

	if err := run(*out, *pkg, *from, *to); err != nil {
		fmt.Fprintln(os.Stderr, "soagen:", err)
		os.Exit(1)
	}
}

func run(out, pkg string, from, to int) error {
	src, err := generate(pkg, from, to)
	if err != nil {
		return err
	}

	if out == "-" {
		_, err = os.Stdout.Write(src)
		return err
	}

	return os.WriteFile(out, src, 0o644)
}

func generate(pkg string, from, to int) ([]byte, error) {
	if from < 1 || to < from {
		return nil, fmt.Errorf("invalid arity range %d..%d", from, to)
	}

	data := fileData{Package: pkg}
	for n := from; n <= to; n++ {
		data.Arities = append(data.Arities, newArity(n))
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}

	return src, nil
}
