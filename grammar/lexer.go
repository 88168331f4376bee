package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var CircuitLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Integer", `[0-9]+`, nil},
		{"String", `"[^"]*"`, nil},
		{"Operator", `(===|\*\*|==|!=|<=|>=|&&|\|\||[-+*/%!<>=@?])`, nil},
		{"Punctuation", `[{}[\]:;,.()]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
