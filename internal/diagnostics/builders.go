package diagnostics

import (
	"fmt"

	"dart2figma/internal/source"
)

// Common diagnostic builders for the lexer

// UnexpectedCharacter creates a diagnostic for an unscannable character
func UnexpectedCharacter(filepath string, loc *source.Location, char rune) *Diagnostic {
	return NewError(Syntax, fmt.Sprintf("unexpected character %q", char)).
		WithCode(CodeUnexpectedCharacter).
		WithPrimaryLabel(filepath, loc, "unexpected character").
		WithHelp("remove this character or check if it's a typo")
}

// UnterminatedString creates a diagnostic for an unterminated string literal
func UnterminatedString(filepath string, loc *source.Location) *Diagnostic {
	return NewError(Syntax, "unterminated string literal").
		WithCode(CodeUnterminatedString).
		WithPrimaryLabel(filepath, loc, "string starts here").
		WithHelp("add a closing quote to terminate the string")
}

// UnterminatedComment creates a diagnostic for an unterminated block comment
func UnterminatedComment(filepath string, loc *source.Location) *Diagnostic {
	return NewError(Syntax, "unterminated block comment").
		WithCode(CodeUnterminatedComment).
		WithPrimaryLabel(filepath, loc, "comment starts here").
		WithHelp("close the comment with */")
}

// InvalidNumberLiteral creates a diagnostic for a malformed number
func InvalidNumberLiteral(filepath string, loc *source.Location, reason string) *Diagnostic {
	return NewError(Syntax, "invalid number literal").
		WithCode(CodeInvalidNumber).
		WithPrimaryLabel(filepath, loc, reason).
		WithHelp("check the number format")
}

// InvalidEscapeSequence creates a diagnostic for an invalid escape sequence
func InvalidEscapeSequence(filepath string, loc *source.Location, sequence string) *Diagnostic {
	return NewWarning(Syntax, "invalid escape sequence "+sequence).
		WithCode(CodeInvalidEscape).
		WithPrimaryLabel(filepath, loc, "unknown escape sequence").
		WithNote("valid escape sequences are: \\n, \\t, \\r, \\\\, \\\", \\'")
}

// Common diagnostic builders for the parser

// UnexpectedToken creates a diagnostic for an unexpected token
func UnexpectedToken(filepath string, loc *source.Location, found, expected string) *Diagnostic {
	msg := "unexpected token " + found
	if expected != "" {
		msg = "expected " + expected + ", found " + found
	}

	return NewError(Syntax, msg).
		WithCode(CodeUnexpectedToken).
		WithPrimaryLabel(filepath, loc, "unexpected token here")
}

// ExpectedToken creates a diagnostic for a missing expected token
func ExpectedToken(filepath string, loc *source.Location, expected string) *Diagnostic {
	return NewError(Syntax, "expected "+expected).
		WithCode(CodeExpectedToken).
		WithPrimaryLabel(filepath, loc, "expected "+expected+" here")
}

// MissingArgumentValue creates a diagnostic for a named argument with no value
func MissingArgumentValue(filepath string, loc *source.Location, name string) *Diagnostic {
	return NewError(Syntax, "missing value for argument '"+name+"'").
		WithCode(CodeMissingArgumentValue).
		WithPrimaryLabel(filepath, loc, "expected a value after ':'").
		WithHelp("supply a value or remove the argument")
}

// MismatchedDelimiter creates a diagnostic for an unbalanced delimiter
func MismatchedDelimiter(filepath string, loc *source.Location, open string) *Diagnostic {
	return NewError(Syntax, "mismatched delimiter; unclosed '"+open+"'").
		WithCode(CodeMismatchedDelimiter).
		WithPrimaryLabel(filepath, loc, "opened here, never closed")
}

// NestingTooDeep creates a diagnostic for input exceeding the nesting bound
func NestingTooDeep(filepath string, loc *source.Location, limit int) *Diagnostic {
	return NewError(Validation, fmt.Sprintf("expression nesting exceeds the limit of %d levels", limit)).
		WithCode(CodeNestingTooDeep).
		WithPrimaryLabel(filepath, loc, "nesting too deep").
		WithHelp("flatten the widget tree or split it across variables")
}

// Common diagnostic builders for the widget extractor

// UnknownWidget creates a diagnostic for an unclassifiable constructor
func UnknownWidget(filepath string, loc *source.Location, callee string) *Diagnostic {
	return NewWarning(Widget, "unknown widget constructor '"+callee+"'").
		WithCode(CodeUnknownWidget).
		WithPrimaryLabel(filepath, loc, "not a recognized widget type").
		WithNote("the subtree is kept as an Unknown placeholder; nested widgets are still extracted")
}

// UnmappedPositionalArgument creates a diagnostic for a positional argument
// with no slot in the widget's positional table
func UnmappedPositionalArgument(filepath string, loc *source.Location, widget string, index int) *Diagnostic {
	return NewWarning(Validation, fmt.Sprintf("positional argument %d has no mapping for widget '%s'", index, widget)).
		WithCode(CodeUnmappedPositionalArg).
		WithPrimaryLabel(filepath, loc, "no positional slot for this argument").
		WithNote(fmt.Sprintf("the value is retained under the synthetic key 'arg%d'", index))
}

// MalformedArgument creates a diagnostic for an argument the extractor
// cannot interpret at all
func MalformedArgument(filepath string, loc *source.Location, widget string) *Diagnostic {
	return NewWarning(Widget, "malformed argument for widget '"+widget+"'").
		WithCode(CodeMalformedArgument).
		WithPrimaryLabel(filepath, loc, "argument could not be interpreted")
}

// OpaqueExpression creates a diagnostic for a constant expression preserved
// as an opaque reference for best-effort downstream interpretation
func OpaqueExpression(filepath string, loc *source.Location, text string) *Diagnostic {
	return NewWarning(Conversion, "expression '"+text+"' kept as an opaque reference").
		WithCode(CodeOpaqueExpression).
		WithPrimaryLabel(filepath, loc, "not resolvable to a literal")
}
