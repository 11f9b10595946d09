// Package: basic
// Title: FadeBasic Front End Engine
// Description: Ties the lexer, parser and post-parse validation together.
//              An Engine owns the command vocabulary and the component
//              options; every run gets its own correlation id for logging.
//              Failures are returned as coded errors from
//              foundation/core/error that still unwrap to the underlying
//              diag.ParseError values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	engine, err := basic.New(basic.Options{})
//	if err != nil {
//	    return err
//	}
//	res, err := engine.Parse(source)
//	if err != nil {
//	    for _, d := range diag.Collect(err) {
//	        fmt.Println(d)
//	    }
//	}
package basic
