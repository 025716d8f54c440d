// Package emitter renders a decode table as a C header and source pair for the execution engine.
package emitter

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Manu343726/isagen/pkg/isa/decoder"
	"github.com/Manu343726/isagen/pkg/utils"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

//go:embed templates
var Templates embed.FS

// Name the source file uses to include the header when none is given
const DefaultHeaderName = "isa_decoder.h"

type Settings struct {
	// File name the generated source includes the header with
	HeaderName string
	// If nil, slog.Default() is used
	Logger *slog.Logger
}

func DefaultSettings() Settings {
	return Settings{
		HeaderName: DefaultHeaderName,
	}
}

type Generator struct {
	template *template.Template
	settings Settings
	logger   *slog.Logger
}

func NewGenerator(settings Settings) (*Generator, error) {
	funcs := template.FuncMap{
		"ToUpper": strings.ToUpper,
		"ToLower": strings.ToLower,
		"Add": func(a, b int) int {
			return a + b
		},
		"Join": func(separator string, items []string) string {
			return strings.Join(items, separator)
		},
		"Strings": func(items []int) []string {
			return utils.Map(items, func(item int) string { return fmt.Sprint(item) })
		},
	}

	t, err := template.New("isa_decoder").Funcs(funcs).ParseFS(Templates, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}

	if settings.HeaderName == "" {
		settings.HeaderName = DefaultHeaderName
	}

	logger := settings.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Generator{
		template: t,
		settings: settings,
		logger:   logger.With(slog.String("component", "emitter")),
	}, nil
}

func (g *Generator) render(table *decoder.Table, headerName string, header io.Writer, source io.Writer) error {
	model := newModel(table, headerName)

	if err := g.template.ExecuteTemplate(header, "header", model); err != nil {
		return fmt.Errorf("failed to render header: %w", err)
	}

	if err := g.template.ExecuteTemplate(source, "source", model); err != nil {
		return fmt.Errorf("failed to render source: %w", err)
	}

	return nil
}

// Renders the header and source files of the decode table
func (g *Generator) Render(table *decoder.Table, header io.Writer, source io.Writer) error {
	return g.render(table, g.settings.HeaderName, header, source)
}

// Mode of the written files
const OutputFileMode os.FileMode = 0o644

type pendingFile struct {
	path    string
	tmpPath string
}

type installedFile struct {
	path string
	// Previous contents of path moved aside, empty if path did not exist
	backup string
}

// Renders the decode table and writes it to the given paths. Both files are written to
// temporary files first and moved into place only if both were written. If moving the second
// file fails the first one is restored, so the targets are left untouched on failure. The source
// includes the header by its base name
func (g *Generator) Write(fs afero.Fs, table *decoder.Table, headerPath string, sourcePath string) error {
	var header, source bytes.Buffer

	if err := g.render(table, filepath.Base(headerPath), &header, &source); err != nil {
		return err
	}

	var pending []pendingFile
	var installed []installedFile

	cleanup := func() {
		for _, file := range pending {
			if err := fs.Remove(file.tmpPath); err != nil {
				g.logger.Warn("could not remove temporary file", slog.String("path", file.tmpPath), slog.Any("error", err))
			}
		}
	}

	rollback := func() {
		for i := len(installed) - 1; i >= 0; i-- {
			if err := restore(fs, installed[i]); err != nil {
				g.logger.Error("could not restore file", slog.String("path", installed[i].path), slog.Any("error", err))
			}
		}
	}

	for _, output := range []struct {
		path     string
		contents []byte
	}{
		{path: headerPath, contents: header.Bytes()},
		{path: sourcePath, contents: source.Bytes()},
	} {
		tmpPath, err := writeTemp(fs, output.path, output.contents)
		if err != nil {
			cleanup()
			return utils.MakeError(ErrOutputWriteFailure, "%v: %w", output.path, err)
		}

		pending = append(pending, pendingFile{path: output.path, tmpPath: tmpPath})
	}

	for len(pending) > 0 {
		file := pending[0]

		backup, err := moveAside(fs, file.path)
		if err != nil {
			cleanup()
			rollback()
			return utils.MakeError(ErrOutputWriteFailure, "%v: %w", file.path, err)
		}

		if err := fs.Rename(file.tmpPath, file.path); err != nil {
			if backup != "" {
				multierr.AppendInto(&err, fs.Rename(backup, file.path))
			}

			cleanup()
			rollback()
			return utils.MakeError(ErrOutputWriteFailure, "%v: %w", file.path, err)
		}

		installed = append(installed, installedFile{path: file.path, backup: backup})
		pending = pending[1:]
	}

	for _, file := range installed {
		if file.backup != "" {
			if err := fs.Remove(file.backup); err != nil {
				g.logger.Warn("could not remove backup file", slog.String("path", file.backup), slog.Any("error", err))
			}
		}

		g.logger.Info("file written", slog.String("path", file.path))
	}

	return nil
}

// Renames an existing file next to itself, returning the new path or an empty string if the file does not exist
func moveAside(fs afero.Fs, path string) (string, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil || !exists {
		return "", err
	}

	backup := path + ".orig"
	if err := fs.Rename(path, backup); err != nil {
		return "", err
	}

	return backup, nil
}

func restore(fs afero.Fs, file installedFile) error {
	if file.backup == "" {
		return fs.Remove(file.path)
	}

	return fs.Rename(file.backup, file.path)
}

func writeTemp(fs afero.Fs, path string, contents []byte) (tmpPath string, err error) {
	file, err := afero.TempFile(fs, filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return "", err
	}

	defer func() {
		err = multierr.Append(err, file.Close())
		if err != nil {
			multierr.AppendInto(&err, fs.Remove(file.Name()))
		}
	}()

	if _, err := file.Write(contents); err != nil {
		return "", err
	}

	// Temporary files are created user-only
	if err := fs.Chmod(file.Name(), OutputFileMode); err != nil {
		return "", err
	}

	return file.Name(), nil
}
