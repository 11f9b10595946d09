// Package lexer turns FadeBasic source text into tokens.
//
// Package: lexer
// Title: FadeBasic Lexer
// Description: The lexer scans source line by line against a lexeme table. The
//              base table of keywords, operators, literals and identifiers is
//              built once and never mutated; each call derives its own table
//              with one lexeme per registered command. At every column the
//              longest match wins and equal-length matches go to the lexeme with
//              the lowest priority. Command lexemes get a priority of -10 per
//              character so longer command names beat shorter ones and beat the
//              identifier and keyword lexemes they overlap.
//
//              Besides plain token production the lexer:
//                - skips whitespace and collects ` / REM line comments and
//                  REMSTART..REMEND block comments
//                - records #constant NAME VALUE directives and substitutes later
//                  identifiers that name a constant, keeping source columns
//                - inserts a virtual end-of-statement token at a line break
//                  unless the line ended with ':' or ','
//
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
package lexer
