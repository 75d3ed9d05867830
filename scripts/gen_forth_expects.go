package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"os/exec"
	"regexp"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

// gen_forth_expects reads a test file declaring forthTestCase builder methods,
// and writes a package-level wrapper function for each with* and expect*
// method, so that test tables can carry builder steps as values:
//
//	func (ft forthTestCase) expectStack(values ...int32) forthTestCase
//
// becomes
//
//	func expectForthStack(values ...int32) func(forthTestCase) forthTestCase
//
// Output is piped through goimports.

func main() {
	flag.Parse()
	if flag.NArg() != 2 {
		log.Fatalf("usage: gen_forth_expects forth_test.go forth_expects_test.go")
	}
	inName, outName := flag.Arg(0), flag.Arg(1)

	src, err := ioutil.ReadFile(inName)
	if err != nil {
		log.Fatalln(err)
	}
	code := generate(src, inName, outName)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := goimports(ctx, code, outName); err != nil {
		log.Fatalln(err)
	}
}

var builderMethod = regexp.MustCompile(`func \(ft forthTestCase\) (expect|with)(.+?)\((.+?)\) forthTestCase`)

// generate returns a wrapper function for every builder method declared in
// src, along with the go:generate directive that regenerates them.
func generate(src []byte, inName, outName string) []byte {
	var buf bytes.Buffer
	buf.WriteString("package forth\n\n")
	fmt.Fprintf(&buf, "// @generated from %v\n\n", inName)
	fmt.Fprintf(&buf, "//go:generate go run scripts/gen_forth_expects.go -- %v %v\n\n", inName, outName)
	for _, match := range builderMethod.FindAllSubmatch(src, -1) {
		writeWrapper(&buf, match[1], match[2], match[3])
	}
	return buf.Bytes()
}

// goimports formats code into the named file, feeding it to goimports from
// one goroutine while goimports runs in another.
func goimports(ctx context.Context, code []byte, outName string) error {
	out, err := os.Create(outName)
	if err != nil {
		return err
	}
	defer out.Close()

	eg, ctx := errgroup.WithContext(ctx)
	cmd := exec.CommandContext(ctx, "goimports")
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	eg.Go(func() error {
		defer stdin.Close()
		_, err := stdin.Write(code)
		return err
	})
	eg.Go(func() error {
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("goimports run failed: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}
	return out.Close()
}

func writeWrapper(buf *bytes.Buffer, baseName, whatName, params []byte) {
	buf.WriteString("func ")
	buf.Write(baseName)
	buf.WriteString("Forth")
	buf.Write(whatName)
	buf.WriteString("(")
	buf.Write(params)
	buf.WriteString(") func(forthTestCase) forthTestCase {\n")
	buf.WriteString("  return func(ft forthTestCase) forthTestCase {\n")
	buf.WriteString("    return ft.")
	buf.Write(baseName)
	buf.Write(whatName)
	buf.WriteString("(")

	for i, part := range bytes.Split(params, []byte(",")) {
		if i > 0 {
			buf.WriteString(", ")
		}
		fields := bytes.Fields(bytes.Trim(part, " "))
		buf.Write(fields[0])
		if len(fields) > 1 && bytes.HasPrefix(fields[1], []byte("...")) {
			buf.WriteString("...")
		}
	}

	buf.WriteString(")\n")
	buf.WriteString("  }\n")
	buf.WriteString("}\n\n")
}
