package codec

import "github.com/wippyai/bridge/layout"

//go:generate go run ../internal/gen/tuplegen -max 12 -o product_gen.go

// MaxArity is the largest product with a dedicated codec. Wider aggregates
// nest products inside products.
const MaxArity = 12

// Unit is the value of the empty product.
type Unit struct{}

// Product0 is the empty product. It occupies no bytes.
type Product0 struct{}

func (Product0) Size() int { return 0 }

func (Product0) Encode(*Encoder, Unit) {}

func (Product0) Decode(*Decoder) Unit { return Unit{} }

func (Product0) Describe() layout.Node { return layout.Product() }
