/*
Package predict is a table-driven LL(1) toolbox.

It pairs a priority-ordered, regex-based scanner for a small C/Kotlin-like
language with a predictive parser. The parser is generated on the fly from a
textual grammar: FIRST and FOLLOW sets are computed, an LL(1) parsing table is
derived from them, and a stack machine consumes the scanned terminals, producing
a leftmost-derivation trace. Package structure is as follows:

■ scanner: Package scanner turns source lines into typed lexemes.

■ ll: Package ll models grammars, computes FIRST/FOLLOW sets and builds
LL(1) parsing tables. Sub-packages contain the grammar loader and the
predictive parser.

■ cmd/llparse: A command line tool to parse source files with a grammar file,
either in batch mode or interactively.

The base package contains data types which are used throughout all the other packages.
*/
package predict
