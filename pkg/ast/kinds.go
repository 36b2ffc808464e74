package ast

// Kind tags every node in the tree. The set is closed: the parser and the
// fixture decoder only ever produce these values.
type Kind int

const (
	KindNone Kind = iota

	// Literals.
	KindInt
	KindFloat
	KindString
	KindBool
	KindID

	// References.
	KindReference
	KindThis

	// Declarations.
	KindModule
	KindPackage
	KindUse
	KindTypeDecl
	KindTrait
	KindClass
	KindActor
	KindFieldVar
	KindFieldLet
	KindParam
	KindParams
	KindTypeParam
	KindTypeParams
	KindLocalVar
	KindLocalLet
	KindIDSeq

	// Methods.
	KindNew
	KindBe
	KindFun

	// Operators.
	KindPlus
	KindMinus
	KindMultiply
	KindDivide
	KindMod
	KindLShift
	KindRShift
	KindLT
	KindLE
	KindGE
	KindGT
	KindEq
	KindNE
	KindIs
	KindIsnt
	KindAnd
	KindOr
	KindXor
	KindNot
	KindAssign

	// Postfix.
	KindDot
	KindQualify
	KindCall
	KindArgs
	KindTuple

	// Control flow.
	KindSeq
	KindIf
	KindWhile
	KindRepeat
	KindFor
	KindTry
	KindContinue
	KindBreak
	KindReturn
	KindError
	KindConsume
	KindArray
	KindObject

	// Type expressions. These share the node representation with syntax but
	// only ever appear in type position or as computed types.
	KindNominalType
	KindTupleType
	KindUnionType
	KindIsectType
	KindStructuralType
	KindArrowType
	KindTypeArgs
	KindTypes
	KindCap
	KindHat
	KindQuestion
)

var kindNames = map[Kind]string{
	KindNone:           "none",
	KindInt:            "int",
	KindFloat:          "float",
	KindString:         "string",
	KindBool:           "bool",
	KindID:             "id",
	KindReference:      "reference",
	KindThis:           "this",
	KindModule:         "module",
	KindPackage:        "package",
	KindUse:            "use",
	KindTypeDecl:       "type",
	KindTrait:          "trait",
	KindClass:          "class",
	KindActor:          "actor",
	KindFieldVar:       "fvar",
	KindFieldLet:       "flet",
	KindParam:          "param",
	KindParams:         "params",
	KindTypeParam:      "typeparam",
	KindTypeParams:     "typeparams",
	KindLocalVar:       "var",
	KindLocalLet:       "let",
	KindIDSeq:          "idseq",
	KindNew:            "new",
	KindBe:             "be",
	KindFun:            "fun",
	KindPlus:           "+",
	KindMinus:          "-",
	KindMultiply:       "*",
	KindDivide:         "/",
	KindMod:            "%",
	KindLShift:         "<<",
	KindRShift:         ">>",
	KindLT:             "<",
	KindLE:             "<=",
	KindGE:             ">=",
	KindGT:             ">",
	KindEq:             "==",
	KindNE:             "!=",
	KindIs:             "is",
	KindIsnt:           "isnt",
	KindAnd:            "and",
	KindOr:             "or",
	KindXor:            "xor",
	KindNot:            "not",
	KindAssign:         "=",
	KindDot:            ".",
	KindQualify:        "qualify",
	KindCall:           "call",
	KindArgs:           "args",
	KindTuple:          "tuple",
	KindSeq:            "seq",
	KindIf:             "if",
	KindWhile:          "while",
	KindRepeat:         "repeat",
	KindFor:            "for",
	KindTry:            "try",
	KindContinue:       "continue",
	KindBreak:          "break",
	KindReturn:         "return",
	KindError:          "error",
	KindConsume:        "consume",
	KindArray:          "array",
	KindObject:         "object",
	KindNominalType:    "nominal",
	KindTupleType:      "tupletype",
	KindUnionType:      "uniontype",
	KindIsectType:      "isecttype",
	KindStructuralType: "structural",
	KindArrowType:      "arrow",
	KindTypeArgs:       "typeargs",
	KindTypes:          "types",
	KindCap:            "cap",
	KindHat:            "hat",
	KindQuestion:       "question",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// KindFromName maps a fixture tag back to a Kind. Unknown tags map to
// KindNone with ok=false so decoders can reject them.
func KindFromName(name string) (Kind, bool) {
	k, ok := kindFromName[name]
	return k, ok
}

var kindFromName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()
