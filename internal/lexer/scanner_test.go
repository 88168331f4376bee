package lexer

import "testing"

func TestKeywordsAndIdentifiers(t *testing.T) {
	input := "function template var signal component tag const if else while return log assert customIdent"
	expected := []TokenType{
		FUNCTION, TEMPLATE, VAR, SIGNAL, COMPONENT, TAG, CONST,
		IF, ELSE, WHILE, RETURN, LOG, ASSERT, IDENTIFIER,
	}

	tokens, errs := NewScanner(input).ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "0 42 12345"
	tokens, errs := NewScanner(input).ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	for i, want := range []string{"0", "42", "12345"} {
		if tokens[i].Type != NUMBER || tokens[i].Lexeme != want {
			t.Errorf("token %d: expected NUMBER %q, got %s %q", i, want, tokens[i].Type, tokens[i].Lexeme)
		}
	}
}

func TestStrings(t *testing.T) {
	input := `"hello" "world"`
	tokens, errs := NewScanner(input).ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if tokens[0].Type != STRING || tokens[0].Lexeme != "hello" {
		t.Errorf("expected STRING 'hello', got %s %q", tokens[0].Type, tokens[0].Lexeme)
	}
	if tokens[1].Type != STRING || tokens[1].Lexeme != "world" {
		t.Errorf("expected STRING 'world', got %s %q", tokens[1].Type, tokens[1].Lexeme)
	}
}

func TestUnterminatedString(t *testing.T) {
	_, errs := NewScanner(`"never closed`).ScanTokens()
	if len(errs) != 1 {
		t.Fatalf("expected one scan error, got %d", len(errs))
	}
}

func TestOperatorsAndBrackets(t *testing.T) {
	input := `(){}[],.;: + - * ** / % ! != = == === < <= > >= && || @ ?`
	expected := []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE, LEFT_BRACKET, RIGHT_BRACKET,
		COMMA, DOT, SEMICOLON, COLON,
		PLUS, MINUS, STAR, STAR_STAR, SLASH, PERCENT,
		BANG, BANG_EQUAL, EQUAL, EQUAL_EQUAL, EQUAL_EQUAL_EQUAL,
		LESS, LESS_EQUAL, GREATER, GREATER_EQUAL, AND, OR, AT, QUESTION,
	}

	tokens, errs := NewScanner(input).ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if len(tokens) < len(expected) {
		t.Fatalf("expected at least %d tokens, got %d", len(expected), len(tokens))
	}
	for i, exp := range expected {
		if tokens[i].Type != exp {
			t.Errorf("token %d: expected %s, got %s", i, exp, tokens[i].Type)
		}
	}
}

func TestBareAmpersandAndPipeAreErrors(t *testing.T) {
	_, errs := NewScanner("a & b").ScanTokens()
	if len(errs) != 1 {
		t.Fatalf("expected one scan error for bare '&', got %d", len(errs))
	}
	_, errs = NewScanner("a | b").ScanTokens()
	if len(errs) != 1 {
		t.Fatalf("expected one scan error for bare '|', got %d", len(errs))
	}
}

func TestSingleLineCommentsAreDiscarded(t *testing.T) {
	input := "var x; // this should vanish\nvar y;"
	tokens, errs := NewScanner(input).ScanTokens()
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	for _, tok := range tokens {
		if tok.Lexeme == "//" || tok.Type == ILLEGAL {
			t.Fatalf("comment text leaked into token stream: %+v", tok)
		}
	}
	// var x ; var y ; EOF
	if len(tokens) != 7 {
		t.Fatalf("expected 7 tokens around the stripped comment, got %d: %+v", len(tokens), tokens)
	}
}

func TestPositionsTrackLineAndColumn(t *testing.T) {
	input := "var\nx;"
	tokens, _ := NewScanner(input).ScanTokens()
	if tokens[0].Position.Line != 1 || tokens[0].Position.Column != 1 {
		t.Errorf("expected 'var' at line 1 col 1, got %+v", tokens[0].Position)
	}
	if tokens[1].Position.Line != 2 || tokens[1].Position.Column != 1 {
		t.Errorf("expected 'x' at line 2 col 1, got %+v", tokens[1].Position)
	}
}
