// File: validate.go
// Title: Post-Parse Validation
// Description: Checks a parsed program for duplicate declarations, jumps to
//              undeclared labels and references to undeclared types.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

import (
	"fmt"

	"github.com/cdhanna/fadebasic-sub000/foundation/basic/diag"
)

// Validate reports the post-parse diagnostics of a program, sorted by
// position. A nil list means the program is consistent.
func Validate(p *Program) diag.ErrorList {
	if p == nil {
		return nil
	}

	var errs diag.ErrorList

	labels := make(map[string]bool, len(p.Labels))
	for _, l := range p.Labels {
		if labels[l.Name] {
			errs.Add(nodeError(diag.DuplicateLabel, l.Node, fmt.Sprintf("label %q is declared more than once", l.Name)))
			continue
		}
		labels[l.Name] = true
	}

	types := make(map[string]bool, len(p.TypeDefinitions))
	for _, t := range p.TypeDefinitions {
		if types[t.Name] {
			errs.Add(nodeError(diag.DuplicateTypeDefinition, t, fmt.Sprintf("type %q is declared more than once", t.Name)))
		}
		types[t.Name] = true

		members := make(map[string]bool, len(t.Fields))
		for _, f := range t.Fields {
			if members[f.Name] {
				errs.Add(nodeError(diag.DuplicateTypeMember, f, fmt.Sprintf("type %q declares %q more than once", t.Name, f.Name)))
			}
			members[f.Name] = true
		}
	}

	functions := make(map[string]bool, len(p.Functions))
	for _, fn := range p.Functions {
		if functions[fn.Name] {
			errs.Add(nodeError(diag.DuplicateFunction, fn, fmt.Sprintf("function %q is declared more than once", fn.Name)))
		}
		functions[fn.Name] = true

		params := make(map[string]bool, len(fn.Parameters))
		for _, param := range fn.Parameters {
			if params[param.Name] {
				errs.Add(nodeError(diag.DuplicateParameter, param, fmt.Sprintf("function %q declares parameter %q more than once", fn.Name, param.Name)))
			}
			params[param.Name] = true
		}
	}

	Inspect(p, func(n Node) bool {
		switch n := n.(type) {
		case *GotoStatement:
			if !labels[n.Label] {
				errs.Add(nodeError(diag.UnknownLabel, n, fmt.Sprintf("label %q is not declared", n.Label)))
			}
		case *GoSubStatement:
			if !labels[n.Label] {
				errs.Add(nodeError(diag.UnknownLabel, n, fmt.Sprintf("label %q is not declared", n.Label)))
			}
		case *TypeReference:
			if n.Kind == TypeStruct && !types[n.Name] {
				errs.Add(nodeError(diag.UnknownType, n, fmt.Sprintf("type %q is not declared", n.Name)))
			}
		}
		return true
	})

	errs.Sort()
	return errs
}

func nodeError(code diag.ErrorCode, n Node, detail string) *diag.ParseError {
	r := n.Range()
	return diag.New(code, r.Start, r.End, detail)
}
