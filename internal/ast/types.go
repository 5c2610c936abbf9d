package ast

import "strconv"

// TypeKind tags the builtin types.
type TypeKind int

const (
	TypeBool TypeKind = iota
	TypeString
	TypeBytes      // dynamically sized bytes
	TypeInt        // intN
	TypeUint       // uintN
	TypeFixedBytes // bytesN
)

// Type is a builtin type. Size is the declared width for the sized kinds and
// zero otherwise.
type Type struct {
	Kind TypeKind
	Size int
}

func (t Type) String() string {
	switch t.Kind {
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeBytes:
		return "bytes"
	case TypeInt:
		return "int" + strconv.Itoa(t.Size)
	case TypeUint:
		return "uint" + strconv.Itoa(t.Size)
	case TypeFixedBytes:
		return "bytes" + strconv.Itoa(t.Size)
	default:
		return "TypeKind(" + strconv.Itoa(int(t.Kind)) + ")"
	}
}
