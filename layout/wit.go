package layout

import (
	"fmt"

	"github.com/wippyai/bridge/errors"
	"go.bytecodealliance.org/wit"
)

// FromWIT derives the bridge layout of a type declared in WIT by the
// counterpart. Records and tuples become products in declaration order,
// option becomes an optional, own and borrow become handles. Variable-size
// and tagged-union kinds have no fixed bridge layout and are rejected.
func FromWIT(t wit.Type) (Node, error) {
	return fromWIT(t, []string{"$"})
}

func fromWIT(t wit.Type, path []string) (Node, error) {
	switch typ := t.(type) {
	case wit.Bool:
		return Leaf("bool", 1), nil
	case wit.U8:
		return Leaf("u8", 1), nil
	case wit.S8:
		return Leaf("i8", 1), nil
	case wit.U16:
		return Leaf("u16", 2), nil
	case wit.S16:
		return Leaf("i16", 2), nil
	case wit.U32:
		return Leaf("u32", 4), nil
	case wit.S32:
		return Leaf("i32", 4), nil
	case wit.F32:
		return Leaf("f32", 4), nil
	case wit.Char:
		return Leaf("char", 4), nil
	case wit.U64:
		return Leaf("u64", 8), nil
	case wit.S64:
		return Leaf("i64", 8), nil
	case wit.F64:
		return Leaf("f64", 8), nil
	case *wit.TypeDef:
		return fromTypeDef(typ, path)
	default:
		return Node{}, unsupported(path, t)
	}
}

func fromTypeDef(td *wit.TypeDef, path []string) (Node, error) {
	switch kind := td.Kind.(type) {
	case *wit.Record:
		children := make([]Node, 0, len(kind.Fields))
		for _, f := range kind.Fields {
			child, err := fromWIT(f.Type, append(path[:len(path):len(path)], f.Name))
			if err != nil {
				return Node{}, err
			}
			children = append(children, child.WithLabel(f.Name))
		}
		return Product(children...), nil

	case *wit.Tuple:
		children := make([]Node, 0, len(kind.Types))
		for i, et := range kind.Types {
			child, err := fromWIT(et, append(path[:len(path):len(path)], fmt.Sprint(i)))
			if err != nil {
				return Node{}, err
			}
			children = append(children, child)
		}
		return Product(children...), nil

	case *wit.Option:
		inner, err := fromWIT(kind.Type, append(path[:len(path):len(path)], "some"))
		if err != nil {
			return Node{}, err
		}
		return Optional(inner), nil

	case *wit.Own:
		return Handle("own"), nil

	case *wit.Borrow:
		return Handle("borrow"), nil

	case wit.Type:
		// type alias
		return fromWIT(kind, path)

	default:
		return Node{}, unsupported(path, td.Kind)
	}
}

func unsupported(path []string, v any) error {
	return errors.New(errors.PhaseLayout, errors.KindUnsupported).
		Path(path...).
		GoType(fmt.Sprintf("%T", v)).
		Detail("no fixed-size bridge layout").
		Build()
}
