// Command dom reads an XML document and writes it back out, either
// reserialized through the DOM XML serializer or canonicalized with
// Exclusive Canonical XML.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/xmldom/dom/builder"
	"github.com/xmldom/dom/c14n"
	"github.com/xmldom/dom/dom"
)

func main() {
	canonical := flag.Bool("c14n", false, "canonicalize the document instead of reserializing it")
	legacyCharset := flag.Bool("legacy-charset", false, "transcode non-UTF-8 encodings declared in the XML prolog")
	verbose := flag.Bool("v", false, "log parse progress and malformed input recovery to stderr")
	flag.Parse()

	var r io.Reader = os.Stdin
	if path := flag.Arg(0); path != "" {
		f, err := os.Open(path)
		if err != nil {
			die(err)
		}
		defer f.Close()
		r = f
	}

	opts := []builder.Option{builder.WithLegacyCharset(*legacyCharset)}
	if *verbose {
		opts = append(opts, builder.WithLogger(log.New(os.Stderr, "dom: ", 0)))
	}
	doc, err := builder.ReadXML(r, opts...)
	if err != nil {
		die(err)
	}

	if *canonical {
		if err := c14n.Canonicalize(os.Stdout, doc.AsNode()); err != nil {
			die(err)
		}
		return
	}

	out, err := dom.SerializeToXML(doc.AsNode())
	if err != nil {
		die(err)
	}
	fmt.Print(out)
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "dom: %v\n", err)
	os.Exit(1)
}
