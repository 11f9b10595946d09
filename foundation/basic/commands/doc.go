// Package commands models the host command vocabulary of FadeBasic.
//
// Package: commands
// Title: FadeBasic Command Vocabulary
// Description: Host programs expose callable commands to BASIC scripts. A
//              CommandDescriptor names a command and its typed parameter list;
//              a Collection indexes descriptors by their whitespace-normalized,
//              case-insensitive name in a btree so that lookups, prefix listings
//              and the lexer's per-call lexeme synthesis all see a stable order.
//              Vocabularies are loaded from TOML or YAML files:
//
//                [[command]]
//                name = "wait key"
//
//                [[command]]
//                name = "print"
//                  [[command.args]]
//                  name = "values"
//                  type = "any"
//                  params = true
//
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
package commands
