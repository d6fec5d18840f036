package token

type TokenType string

// Token carries the lexeme as written plus the decoded literal value
// (int64 for INT, float64 for FLOAT, string for STRING/CHAR/identifiers).
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"
	NEWLINE = "NEWLINE"

	// Identifiers and literals
	IDENT_LOWER = "IDENT_LOWER" // foo, bar
	IDENT_UPPER = "IDENT_UPPER" // Foo, Player
	INT         = "INT"
	FLOAT       = "FLOAT"
	CHAR        = "CHAR"
	STRING      = "STRING"

	// Operators
	ASSIGN    = "="
	PLUS      = "+"
	MINUS     = "-"
	ASTERISK  = "*"
	SLASH     = "/"
	BANG      = "!"
	AMP       = "&"
	CONCAT    = "++"
	EQ        = "=="
	NOT_EQ    = "!="
	LT        = "<"
	GT        = ">"
	ARROW     = "->"
	FAT_ARROW = "=>"

	// Delimiters
	COMMA         = ","
	COLON         = ":"
	PIPE          = "|"
	LPAREN        = "("
	RPAREN        = ")"
	LBRACE        = "{"
	RBRACE        = "}"
	LBRACKET      = "["
	RBRACKET      = "]"
	PERCENT_BRACE = "%{"

	// Keywords
	PRODUCT   = "PRODUCT"
	SUM       = "SUM"
	SIGNATURE = "SIGNATURE"
	INTERFACE = "INTERFACE"
	EXTERNAL  = "EXTERNAL"
	TYPE      = "TYPE"
	SIG       = "SIG"
	OPAQUE    = "OPAQUE"
	ANY       = "ANY"
	TRUE      = "TRUE"
	FALSE     = "FALSE"
)

var keywords = map[string]TokenType{
	"product":   PRODUCT,
	"sum":       SUM,
	"signature": SIGNATURE,
	"interface": INTERFACE,
	"external":  EXTERNAL,
	"type":      TYPE,
	"sig":       SIG,
	"opaque":    OPAQUE,
	"any":       ANY,
	"true":      TRUE,
	"false":     FALSE,
}

// LookupIdent distinguishes keywords from plain identifiers.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	if ident[0] >= 'A' && ident[0] <= 'Z' {
		return IDENT_UPPER
	}
	return IDENT_LOWER
}
