// Package filex provides the file helpers the command line tools share.
//
// Package: filex
// Title: File Utilities
// Description: Reading program text with size and binary checks, and
//              expanding directory arguments into sorted source file lists.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-19 v0.2.0: Reduced to text reading and source discovery, coded errors
package filex
