package lexer

var keywords = map[string]TokenType{
	"function":  FUNCTION,
	"template":  TEMPLATE,
	"var":       VAR,
	"signal":    SIGNAL,
	"component": COMPONENT,
	"tag":       TAG,
	"const":     CONST,
	"if":        IF,
	"else":      ELSE,
	"while":     WHILE,
	"return":    RETURN,
	"log":       LOG,
	"assert":    ASSERT,
}

func lookupIdentifier(text string) TokenType {
	if t, ok := keywords[text]; ok {
		return t
	}
	return IDENTIFIER
}
