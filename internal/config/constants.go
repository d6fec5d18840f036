package config

// ScriptFileExt is the extension of generator scripts.
const ScriptFileExt = ".gen"

// DeclFileExt is the extension of declaration files (both loaded and emitted).
const DeclFileExt = ".decl"

// ConfigFileNames are the recognized config file names, checked in order.
var ConfigFileNames = []string{"declgen.yaml", "declgen.yml"}

// CacheDirName is the per-project directory holding the generation cache.
const CacheDirName = ".declgen"

// ToolVersion participates in cache keys so a new binary never reuses
// output produced by an older one.
const ToolVersion = "0.3.1"

// Built-in function names available inside example expressions
const (
	DefaultFuncName    = "default"
	GetTypeFuncName    = "getType"
	SelectFromFuncName = "selectFrom"
)

// AnyMarkerName is the reserved keyword for the single-variable
// polymorphism marker.
const AnyMarkerName = "any"

// PendingVarName is the internal name carried by type variables filling
// the element positions of empty containers before the resolver assigns
// them their positional symbol.
const PendingVarName = "_pending"

// AnyVarName is the internal name carried by type variables produced by
// the explicit `any` marker. The resolver collapses every occurrence to
// the same variable, regardless of where the marker appears.
const AnyVarName = "_any"

// Built-in type names
const (
	IntTypeName    = "Int"
	FloatTypeName  = "Float"
	BoolTypeName   = "Bool"
	CharTypeName   = "Char"
	StringTypeName = "String"
	ListTypeName   = "List"
	MapTypeName    = "Map"
	TupleTypeName  = "Tuple"
)

// VarAlphabet supplies type-variable symbols by constructor argument
// position: first argument `a`, second `b`, and so on.
const VarAlphabet = "abcdefghijklmnopqrstuvwxyz"
