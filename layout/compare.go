package layout

import (
	"strconv"

	"github.com/wippyai/bridge/errors"
)

// Compare reports the first structural difference between two layouts, or
// nil if they place every byte identically. Scalar names are ignored: a
// u64 and an f64 leaf occupy the same slot. Opaque nodes match any node of
// the same size.
func Compare(a, b Node) error {
	return compare(a, b, []string{"$"})
}

func compare(a, b Node, path []string) error {
	if a.Size != b.Size {
		return errors.LayoutMismatch(path, "size %d != %d (%s vs %s)", a.Size, b.Size, a, b)
	}
	if a.Kind == KindOpaque || b.Kind == KindOpaque {
		return nil
	}
	if a.Kind != b.Kind {
		return errors.LayoutMismatch(path, "kind %s != %s", a.Kind, b.Kind)
	}
	if len(a.Children) != len(b.Children) {
		return errors.LayoutMismatch(path, "arity %d != %d", len(a.Children), len(b.Children))
	}
	for i := range a.Children {
		label := strconv.Itoa(i)
		if a.Kind == KindOptional {
			label = "some"
		}
		if err := compare(a.Children[i], b.Children[i], append(path[:len(path):len(path)], label)); err != nil {
			return err
		}
	}
	return nil
}
