// File: loader.go
// Title: Command Vocabulary Loader
// Description: Loads command descriptors from TOML or YAML documents and files.
//              The format is chosen by file extension; documents share one schema.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package commands

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/cdhanna/fadebasic-sub000/foundation/core/error"
	mdwlog "github.com/cdhanna/fadebasic-sub000/foundation/core/log"
)

// Format identifies a vocabulary document encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

//go:embed standard.toml
var standardVocabulary []byte

type argDocument struct {
	Name     string `toml:"name" yaml:"name"`
	Type     string `toml:"type" yaml:"type"`
	Ref      bool   `toml:"ref" yaml:"ref"`
	Optional bool   `toml:"optional" yaml:"optional"`
	VmArg    bool   `toml:"vm_arg" yaml:"vm_arg"`
	Params   bool   `toml:"params" yaml:"params"`
}

type commandDocument struct {
	Name        string        `toml:"name" yaml:"name"`
	Returns     string        `toml:"returns" yaml:"returns"`
	Description string        `toml:"description" yaml:"description"`
	Args        []argDocument `toml:"args" yaml:"args"`
}

type vocabularyDocument struct {
	Commands []commandDocument `toml:"command" yaml:"commands"`
}

// FormatFromPath picks the document format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", mdwerror.Newf("unsupported command file %q, expected .toml, .yaml or .yml", path).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("commands.FormatFromPath")
	}
}

// Parse decodes a vocabulary document into a new collection
func Parse(data []byte, format Format, opts Options) (*Collection, error) {
	var doc vocabularyDocument
	var err error
	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, mdwerror.Newf("unknown vocabulary format %q", format).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("commands.Parse")
	}
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to decode command vocabulary").
			WithCode(mdwerror.CodeInvalidCommand).
			WithOperation("commands.Parse").
			WithDetail("format", string(format))
	}

	c := New(opts)
	for i, cd := range doc.Commands {
		cmd, err := cd.descriptor()
		if err != nil {
			return nil, mdwerror.Wrap(err, "invalid command entry").
				WithOperation("commands.Parse").
				WithDetail("index", i)
		}
		if err := c.Add(cmd); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadFile reads a TOML or YAML vocabulary file
func LoadFile(path string, opts Options) (*Collection, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to read command file").
			WithCode(mdwerror.CodeIO).
			WithOperation("commands.LoadFile").
			WithDetail("path", path)
	}

	c, err := Parse(data, format, opts)
	if err != nil {
		return nil, mdwerror.Wrap(err, path).WithOperation("commands.LoadFile")
	}

	c.logger.Debug("command file loaded", mdwlog.Fields{
		"path":     path,
		"commands": c.Len(),
	})
	return c, nil
}

// LoadFiles loads and merges several vocabulary files into one collection.
// A command defined in two files is a duplicate.
func LoadFiles(paths []string, opts Options) (*Collection, error) {
	merged := New(opts)
	for _, path := range paths {
		c, err := LoadFile(path, opts)
		if err != nil {
			return nil, err
		}
		if err := merged.Merge(c); err != nil {
			return nil, mdwerror.Wrap(err, path).WithOperation("commands.LoadFiles")
		}
	}
	return merged, nil
}

// Standard returns the built-in vocabulary shipped with the toolchain
func Standard(opts Options) (*Collection, error) {
	return Parse(standardVocabulary, FormatTOML, opts)
}

func (cd commandDocument) descriptor() (CommandDescriptor, error) {
	returns, err := ParseLiteralType(cd.Returns)
	if err != nil {
		return CommandDescriptor{}, err
	}
	cmd := CommandDescriptor{
		Name:        cd.Name,
		Returns:     returns,
		Description: cd.Description,
		Args:        make([]ArgDescriptor, 0, len(cd.Args)),
	}
	for _, ad := range cd.Args {
		t, err := ParseLiteralType(ad.Type)
		if err != nil {
			return CommandDescriptor{}, err
		}
		cmd.Args = append(cmd.Args, ArgDescriptor{
			Name:     ad.Name,
			Type:     t,
			Ref:      ad.Ref,
			Optional: ad.Optional,
			VmArg:    ad.VmArg,
			Params:   ad.Params,
		})
	}
	return cmd, nil
}
