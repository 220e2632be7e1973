// Package rules implements the field normaliser: a pipeline of independent
// field corrections applied to exhibit documents.
//
// Every rule tokenizes the text it receives with domain.ParseFields and
// rewrites only the spans of the fields it matched, so fields a rule does
// not understand are never touched. Rules run in stage order (category,
// title, when, language) and each sees the text as left by the previous one.
//
// Rule sets are assembled by name through a Registry. Variants are named
// rule sets that reproduce the historical clean-up passes; all of them share
// the configured category table.
package rules
