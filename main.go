// Copyright © 2026 The pest-typed Authors under an MIT-style license.

// Pest-typed compiles a grammar file into a typed Go parser.
//
//	pest-typed [-o out.go] [-p pkgname] [-dump] [-v] grammar.pest
//
// The generated file defines, for every rule of the grammar,
// a result struct, a matching routine, and Parse entry points.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/eaburns/peggy/peg"
	"github.com/eaburns/pretty"
	"github.com/szabgab/pest-typed/check"
	"github.com/szabgab/pest-typed/gen"
	"github.com/szabgab/pest-typed/meta"
)

var (
	output  = flag.String("o", "", "output file; stdout if empty")
	pkg     = flag.String("p", "", "package name; the grammar file's base name if empty")
	dump    = flag.Bool("dump", false, "pretty-print the parsed grammar and exit")
	verbose = flag.Bool("v", false, "enable verbose output")
)

func main() {
	pretty.Indent = "    "
	flag.Usage = usage
	flag.Parse()
	if len(flag.Args()) != 1 {
		usage()
		os.Exit(1)
	}
	srcPath := flag.Args()[0]

	vprintf("parsing %s\n", srcPath)
	g, err := meta.ParseFile(srcPath)
	if err != nil {
		die("", err)
	}
	if *dump {
		for _, r := range g.Rules {
			pretty.Print(r)
			fmt.Println("")
		}
		return
	}

	vprintf("checking %d rules\n", len(g.Rules))
	info, errs := check.Check(g)
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(flag.CommandLine.Output(), err)
		}
		os.Exit(1)
	}
	for _, note := range info.Notes {
		vprintf("note: %s\n", note)
	}

	pkgName := *pkg
	if pkgName == "" {
		pkgName = pkgOf(srcPath)
	}
	vprintf("generating package %s\n", pkgName)
	src, err := gen.Generate(g, info, gen.Config{
		Package: pkgName,
		Source:  filepath.Base(srcPath),
	})
	if err != nil {
		die("failed to generate parser", err)
	}

	if *output == "" {
		os.Stdout.Write(src)
		return
	}
	vprintf("writing %s\n", *output)
	if err := ioutil.WriteFile(*output, src, 0666); err != nil {
		die("failed to write output file", err)
	}
}

// pkgOf derives a package name from the grammar file name.
func pkgOf(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	var b strings.Builder
	for _, r := range strings.ToLower(base) {
		if r == '_' || 'a' <= r && r <= 'z' || '0' <= r && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "parser"
	}
	return b.String()
}

func vprintf(f string, vs ...interface{}) {
	if *verbose {
		fmt.Printf(f, vs...)
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage of %s:\n", os.Args[0])
	fmt.Fprintf(out, "%s [flags] <grammar file>\n", os.Args[0])
	flag.PrintDefaults()
}

func die(s string, err error) {
	if pe, ok := err.(interface{ Tree() *peg.Fail }); ok && *verbose {
		peg.PrettyWrite(os.Stdout, pe.Tree())
		fmt.Println("")
	}
	if s == "" {
		fmt.Fprintln(flag.CommandLine.Output(), err)
	} else {
		fmt.Fprintf(flag.CommandLine.Output(), "%s: %s\n", s, err)
	}
	os.Exit(1)
}
