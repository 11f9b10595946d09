// File: types.go
// Title: Command Descriptors
// Description: LiteralType bitset, argument and command descriptors, and
//              descriptor validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package commands

import (
	"fmt"
	"strings"

	mdwerror "github.com/cdhanna/fadebasic-sub000/foundation/core/error"
	mdwstringx "github.com/cdhanna/fadebasic-sub000/foundation/utils/stringx"
)

// LiteralType is a bitset of the value kinds an argument accepts
type LiteralType int

const (
	LiteralInteger LiteralType = 1 << iota
	LiteralReal
	LiteralString

	LiteralNumeric = LiteralInteger | LiteralReal
	LiteralAny     = LiteralInteger | LiteralReal | LiteralString
)

// String returns the loader name of the type
func (t LiteralType) String() string {
	switch t {
	case 0:
		return "none"
	case LiteralInteger:
		return "integer"
	case LiteralReal:
		return "real"
	case LiteralString:
		return "string"
	case LiteralNumeric:
		return "numeric"
	case LiteralAny:
		return "any"
	default:
		return fmt.Sprintf("literal(%d)", int(t))
	}
}

// ParseLiteralType parses a loader type name. The empty string means none.
func ParseLiteralType(s string) (LiteralType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "void":
		return 0, nil
	case "int", "integer":
		return LiteralInteger, nil
	case "real", "float":
		return LiteralReal, nil
	case "string", "str":
		return LiteralString, nil
	case "numeric", "number":
		return LiteralNumeric, nil
	case "any":
		return LiteralAny, nil
	default:
		return 0, mdwerror.Newf("unknown literal type %q", s).
			WithCode(mdwerror.CodeInvalidCommand).
			WithOperation("commands.ParseLiteralType")
	}
}

// ArgDescriptor describes one parameter of a command
type ArgDescriptor struct {
	Name     string
	Type     LiteralType
	Ref      bool // argument is passed by address and must be a variable
	Optional bool // argument may be omitted together with all that follow it
	VmArg    bool // injected by the host runtime, never written in source
	Params   bool // variadic tail, accepts any number of values
}

// CommandDescriptor is a host command name with its typed parameter list
type CommandDescriptor struct {
	Name        string
	Args        []ArgDescriptor
	Returns     LiteralType
	Description string
}

// Key returns the lookup key of the command
func (c CommandDescriptor) Key() string {
	return mdwstringx.NormalizeSpace(c.Name)
}

// SourceArgs returns the arguments written in source, skipping VM-injected ones
func (c CommandDescriptor) SourceArgs() []ArgDescriptor {
	args := make([]ArgDescriptor, 0, len(c.Args))
	for _, a := range c.Args {
		if !a.VmArg {
			args = append(args, a)
		}
	}
	return args
}

// Signature renders the command like "rnd(max integer) integer"
func (c CommandDescriptor) Signature() string {
	var b strings.Builder
	b.WriteString(c.Key())
	b.WriteByte('(')
	first := true
	for _, a := range c.SourceArgs() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		if a.Ref {
			b.WriteString("ref ")
		}
		b.WriteString(a.Name)
		b.WriteByte(' ')
		b.WriteString(a.Type.String())
		switch {
		case a.Params:
			b.WriteString("...")
		case a.Optional:
			b.WriteByte('?')
		}
	}
	b.WriteByte(')')
	if c.Returns != 0 {
		b.WriteByte(' ')
		b.WriteString(c.Returns.String())
	}
	return b.String()
}

// Validate checks that the descriptor can be recognized and parsed
func (c CommandDescriptor) Validate() error {
	if mdwstringx.IsBlank(c.Name) {
		return mdwerror.New("command name cannot be empty").
			WithCode(mdwerror.CodeInvalidCommand).
			WithOperation("commands.Validate")
	}

	args := c.SourceArgs()
	optionalSeen := false
	for i, a := range args {
		fail := func(msg string) error {
			return mdwerror.Newf("command %q argument %d: %s", c.Key(), i+1, msg).
				WithCode(mdwerror.CodeInvalidCommand).
				WithOperation("commands.Validate")
		}
		if a.Type == 0 {
			return fail("type is required")
		}
		if a.Params && i != len(args)-1 {
			return fail("params must be the last argument")
		}
		if a.Ref && a.Params {
			return fail("params cannot be passed by reference")
		}
		if optionalSeen && !a.Optional && !a.Params {
			return fail("required argument follows an optional one")
		}
		optionalSeen = optionalSeen || a.Optional
	}
	return nil
}
