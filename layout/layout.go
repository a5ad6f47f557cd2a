package layout

import (
	"strconv"
	"strings"
	"unsafe"
)

// PointerSize is the wire width of an ownership handle.
const PointerSize = int(unsafe.Sizeof(uintptr(0)))

// Kind identifies the role of a Node in a composition.
type Kind uint8

const (
	KindLeaf     Kind = iota // raw byte copy
	KindHandle               // pointer-sized ownership handle
	KindProduct              // fixed-arity aggregate
	KindOptional             // presence flag plus reserved payload
	KindOpaque               // codec that does not describe its parts
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindHandle:
		return "handle"
	case KindProduct:
		return "product"
	case KindOptional:
		return "optional"
	case KindOpaque:
		return "opaque"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Node is one element of a static layout tree.
type Node struct {
	Name     string // scalar name for leaves, e.g. "u8"
	Label    string // field label within the parent product
	Children []Node
	Size     int
	Kind     Kind
}

// Sizer is satisfied by every codec.
type Sizer interface {
	Size() int
}

// Describer is implemented by codecs that expose their static composition.
type Describer interface {
	Describe() Node
}

// Of returns the layout of c, or an opaque node of c's size when c does not
// describe itself.
func Of(c Sizer) Node {
	if d, ok := c.(Describer); ok {
		return d.Describe()
	}
	return Opaque(c.Size())
}

// Leaf returns a raw byte-copy node.
func Leaf(name string, size int) Node {
	return Node{Kind: KindLeaf, Name: name, Size: size}
}

// Handle returns a pointer-sized ownership handle node.
func Handle(name string) Node {
	if name == "" {
		name = "handle"
	}
	return Node{Kind: KindHandle, Name: name, Size: PointerSize}
}

// Opaque returns a node for a codec of known size but unknown composition.
func Opaque(size int) Node {
	return Node{Kind: KindOpaque, Name: "opaque", Size: size}
}

// Product returns an aggregate whose size is the sum of its children.
func Product(children ...Node) Node {
	n := Node{Kind: KindProduct, Children: children}
	for _, c := range children {
		n.Size += c.Size
	}
	return n
}

// Optional returns a presence-flagged node. The payload region is reserved
// whether or not a value is present.
func Optional(inner Node) Node {
	return Node{Kind: KindOptional, Children: []Node{inner}, Size: 1 + inner.Size}
}

// WithLabel returns a copy of n labelled for use as a named product field.
func (n Node) WithLabel(label string) Node {
	n.Label = label
	return n
}

// String renders n in the composition expression grammar.
func (n Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n Node) write(b *strings.Builder) {
	switch n.Kind {
	case KindProduct:
		b.WriteByte('(')
		for i, c := range n.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			c.write(b)
		}
		b.WriteByte(')')
	case KindOptional:
		b.WriteString("option<")
		n.Children[0].write(b)
		b.WriteByte('>')
	case KindOpaque:
		b.WriteString("opaque[")
		b.WriteString(strconv.Itoa(n.Size))
		b.WriteByte(']')
	default:
		b.WriteString(n.Name)
	}
}

// Slot is one contiguous byte range written by a single leaf codec.
type Slot struct {
	Path   string
	Name   string
	Offset int
	Size   int
	Kind   Kind
}

// End returns the first offset past the slot.
func (s Slot) End() int {
	return s.Offset + s.Size
}

// Slots lists the byte ranges of every leaf of n in visiting order, placed
// by counting the remaining capacity down from n.Size.
func Slots(n Node) []Slot {
	w := slotWalker{remaining: n.Size}
	w.visit(n, "$")
	return w.slots
}

type slotWalker struct {
	slots     []Slot
	remaining int
}

func (w *slotWalker) visit(n Node, path string) {
	switch n.Kind {
	case KindProduct:
		for i, c := range n.Children {
			label := c.Label
			if label == "" {
				label = strconv.Itoa(i)
			}
			w.visit(c, path+"."+label)
		}
	case KindOptional:
		w.leaf(Leaf("bool", 1), path+".tag")
		w.visit(n.Children[0], path+".some")
	default:
		w.leaf(n, path)
	}
}

func (w *slotWalker) leaf(n Node, path string) {
	w.remaining -= n.Size
	w.slots = append(w.slots, Slot{
		Path:   path,
		Name:   n.Name,
		Offset: w.remaining,
		Size:   n.Size,
		Kind:   n.Kind,
	})
}
