package filter

import "strings"

// semanticVocabulary marks diagnostics about name resolution, conversions,
// overloads, accessibility, inheritance, modifiers, nullability, and
// member/namespace lookup. Matched as case-folded substrings.
var semanticVocabulary = []string{
	"ambiguous",
	"ambiguity",
	"cannot convert",
	"cannot implicitly convert",
	"conversion",
	"overload",
	"inaccessible",
	"accessibility",
	"protection level",
	"does not contain a definition",
	"does not exist in the namespace",
	"type or namespace",
	"could not be found",
	"already contains a definition",
	"already defined",
	"duplicate",
	"override",
	"overridden",
	"inherit",
	"abstract",
	"sealed",
	"virtual",
	"static member",
	"readonly",
	"modifier",
	"nullable",
	"null",
	"is not a member of",
	"namespace",
	"type parameter",
	"constraint",
	"assembly reference",
	"must implement",
	"interface member",
}

// syntaxVocabulary marks parse-level diagnostics: token expectations,
// malformed literals, preprocessor issues, and named lexical conditions.
// Any hit rejects the entry regardless of semantic hits.
var syntaxVocabulary = []string{
	"expected",
	"unexpected",
	"syntax error",
	"invalid token",
	"invalid expression term",
	"newline in constant",
	"unterminated",
	"unrecognized escape",
	"preprocessor directive",
	"end-of-file found",
	"too many characters",
	"empty character literal",
	"stackoverflowexception",
	"badimageformatexception",
}

// IsSemantic classifies a diagnostic message: it must contain at least one
// semantic keyword and no syntax-like keyword.
func IsSemantic(meaning string) bool {
	folded := strings.ToLower(meaning)

	for _, keyword := range syntaxVocabulary {
		if strings.Contains(folded, keyword) {
			return false
		}
	}
	for _, keyword := range semanticVocabulary {
		if strings.Contains(folded, keyword) {
			return true
		}
	}
	return false
}
