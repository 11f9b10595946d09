// File: filex.go
// Title: Core File Utilities
// Description: Implements text file reading and file discovery with errors
//              classified by foundation/core/error codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive file utilities
// - 2026-10-19 v0.2.0: ReadText, FindFiles over WalkDir, Expand

package filex

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	mdwerror "github.com/cdhanna/fadebasic-sub000/foundation/core/error"
)

// binarySniffLen is how many leading bytes are checked for NUL
const binarySniffLen = 8000

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadText reads a text file. A leading UTF-8 byte order mark is removed.
// maxSize limits the file size in bytes, zero means unlimited.
func ReadText(path string, maxSize int64) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", statError(err, path)
	}
	if info.IsDir() {
		return "", mdwerror.Newf("%s is a directory", path).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("filex.ReadText").
			WithDetail("path", path)
	}
	if maxSize > 0 && info.Size() > maxSize {
		return "", mdwerror.Newf("%s is %d bytes, limit is %d", path, info.Size(), maxSize).
			WithCode(mdwerror.CodeInvalidLength).
			WithOperation("filex.ReadText").
			WithDetail("path", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", statError(err, path)
	}
	if IsBinary(content) {
		return "", mdwerror.Newf("%s is not a text file", path).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("filex.ReadText").
			WithDetail("path", path)
	}
	return string(bytes.TrimPrefix(content, utf8BOM)), nil
}

// IsBinary reports whether content contains a NUL byte near its start
func IsBinary(content []byte) bool {
	if len(content) > binarySniffLen {
		content = content[:binarySniffLen]
	}
	return bytes.IndexByte(content, 0) >= 0
}

// FindFiles walks root and returns the files whose base name matches any
// pattern, sorted by path. Hidden directories are skipped.
func FindFiles(root string, patterns ...string) ([]string, error) {
	var matches []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && len(d.Name()) > 1 && d.Name()[0] == '.' {
				return filepath.SkipDir
			}
			return nil
		}

		for _, pattern := range patterns {
			matched, err := filepath.Match(pattern, d.Name())
			if err != nil {
				return err
			}
			if matched {
				matches = append(matches, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, "error during file search").
			WithCode(mdwerror.CodeIO).
			WithOperation("filex.FindFiles").
			WithDetail("root", root)
	}

	sort.Strings(matches)
	return matches, nil
}

// Expand replaces every directory in paths with the matching files below
// it. Plain file paths are kept in place, even when they do not match.
func Expand(paths []string, patterns ...string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, statError(err, p)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		found, err := FindFiles(p, patterns...)
		if err != nil {
			return nil, err
		}
		out = append(out, found...)
	}
	return out, nil
}

func statError(err error, path string) error {
	code := mdwerror.CodeIO
	if os.IsNotExist(err) {
		code = mdwerror.CodeNotFound
	}
	return mdwerror.Wrap(err, "cannot read "+path).
		WithCode(code).
		WithOperation("filex").
		WithDetail("path", path)
}
