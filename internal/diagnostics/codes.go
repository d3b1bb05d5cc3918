package diagnostics

// Diagnostic codes, one block per category. The code plus category is the
// single source of truth for a diagnostic's meaning; builders.go attaches
// the user-facing message for each.
const (
	// Lexer (SYNTAX)
	CodeUnexpectedCharacter = "SYN001"
	CodeUnterminatedString  = "SYN002"
	CodeUnterminatedComment = "SYN003"
	CodeInvalidNumber       = "SYN004"
	CodeInvalidEscape       = "SYN005"

	// Parser (SYNTAX / VALIDATION)
	CodeUnexpectedToken      = "SYN010"
	CodeExpectedToken        = "SYN011"
	CodeMissingArgumentValue = "SYN012"
	CodeMismatchedDelimiter  = "SYN013"
	CodeNestingTooDeep       = "VAL001"

	// Extractor (WIDGET / VALIDATION / CONVERSION)
	CodeUnknownWidget         = "WID001"
	CodeUnmappedPositionalArg = "VAL002"
	CodeMalformedArgument     = "WID002"
	CodeOpaqueExpression      = "CNV001"
)
