// Command tuplegen writes the fixed-arity product codecs of package codec.
//
// Usage:
//
//	go run ./internal/gen/tuplegen -max 12 -o codec/product_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

var words = []string{
	"zero", "one", "two", "three", "four", "five", "six",
	"seven", "eight", "nine", "ten", "eleven", "twelve",
	"thirteen", "fourteen", "fifteen", "sixteen",
}

type arity struct {
	N      int
	Word   string
	Idx    []int
	Params string // T1, T2, T3
}

var tmpl = template.Must(template.New("products").Parse(`// Code generated by tuplegen. DO NOT EDIT.

package codec

import "github.com/wippyai/bridge/layout"
{{range .}}
// Tuple{{.N}} holds the values of a {{.Word}}-component product.
type Tuple{{.N}}[{{.Params}} any] struct {
{{- range .Idx}}
	V{{.}} T{{.}}
{{- end}}
}

// Pack{{.N}} builds a Tuple{{.N}} with inferred component types.
func Pack{{.N}}[{{.Params}} any]({{range $i, $k := .Idx}}{{if $i}}, {{end}}v{{$k}} T{{$k}}{{end}}) Tuple{{.N}}[{{.Params}}] {
	return Tuple{{.N}}[{{.Params}}]{ {{- range $i, $k := .Idx}}{{if $i}}, {{end}}v{{$k}}{{end -}} }
}

// Product{{.N}} encodes a Tuple{{.N}} by visiting C1{{if gt .N 1}} through C{{.N}} in order{{end}}.
type Product{{.N}}[{{.Params}} any] struct {
{{- range .Idx}}
	C{{.}} Codec[T{{.}}]
{{- end}}
}

// NewProduct{{.N}} returns a product over the given codecs.
func NewProduct{{.N}}[{{.Params}} any]({{range $i, $k := .Idx}}{{if $i}}, {{end}}c{{$k}} Codec[T{{$k}}]{{end}}) Product{{.N}}[{{.Params}}] {
	return Product{{.N}}[{{.Params}}]{ {{- range $i, $k := .Idx}}{{if $i}}, {{end}}c{{$k}}{{end -}} }
}

func (p Product{{.N}}[{{.Params}}]) Size() int {
	return {{range $i, $k := .Idx}}{{if $i}} + {{end}}p.C{{$k}}.Size(){{end}}
}

func (p Product{{.N}}[{{.Params}}]) Encode(e *Encoder, v Tuple{{.N}}[{{.Params}}]) {
{{- range .Idx}}
	p.C{{.}}.Encode(e, v.V{{.}})
{{- end}}
}

func (p Product{{.N}}[{{.Params}}]) Decode(d *Decoder) Tuple{{.N}}[{{.Params}}] {
	var v Tuple{{.N}}[{{.Params}}]
{{- range .Idx}}
	v.V{{.}} = p.C{{.}}.Decode(d)
{{- end}}
	return v
}

func (p Product{{.N}}[{{.Params}}]) Describe() layout.Node {
	return layout.Product({{range $i, $k := .Idx}}{{if $i}}, {{end}}layout.Of(p.C{{$k}}){{end}})
}
{{end}}`))

func main() {
	max := flag.Int("max", 12, "largest arity to generate")
	out := flag.String("o", "product_gen.go", "output file")
	flag.Parse()

	if *max < 1 || *max >= len(words) {
		fmt.Fprintf(os.Stderr, "tuplegen: -max must be in [1, %d]\n", len(words)-1)
		os.Exit(1)
	}

	var arities []arity
	for n := 1; n <= *max; n++ {
		a := arity{N: n, Word: words[n]}
		params := make([]string, n)
		for i := 1; i <= n; i++ {
			a.Idx = append(a.Idx, i)
			params[i-1] = fmt.Sprintf("T%d", i)
		}
		a.Params = strings.Join(params, ", ")
		arities = append(arities, a)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		fmt.Fprintf(os.Stderr, "tuplegen: %v\n", err)
		os.Exit(1)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "tuplegen: format: %v\n%s", err, buf.Bytes())
		os.Exit(1)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "tuplegen: %v\n", err)
		os.Exit(1)
	}
}
