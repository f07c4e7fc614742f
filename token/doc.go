// Package token provides tokenization for the project file dialect.
//
// [Tokenize] splits input into punctuation (`{ } ( ) = ; ,`), bare literals,
// quoted strings and, optionally, comments. Both `//` line comments and
// `/* */` block comments are recognized; they are dropped unless
// [TokenComments] is given.
//
// Every token carries a [Pos] which can report its line and column, and
// tokenization failures are returned as [*TokenizeErr].
package token
