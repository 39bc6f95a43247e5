package gen

import (
	"bytes"
	"embed"
	"os"
	"path"
	"path/filepath"
	"text/template"

	"github.com/hysios/etrace"
	"github.com/hysios/etrace/logger"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// FileSystem renders a set of registered file templates into an output
// directory. Filenames are themselves template patterns, so a single
// FileSystem can lay out files named after the generated type.
type FileSystem struct {
	Contents embed.FS
	Files    map[string]*template.Template
	Funcs    template.FuncMap

	patterns []string
	logger   *zap.Logger
}

type Output struct {
	Directory string
	Verbose   bool
	Overwrite bool
}

func (fs *FileSystem) init() {
	if fs.logger == nil {
		fs.logger = logger.Cli
	}
}

func (fs *FileSystem) SetLogger(logger *zap.Logger) {
	fs.logger = logger
}

// MustParse parses a template from the embedded contents.
func (fs *FileSystem) MustParse(name string) *template.Template {
	tmpl, err := template.New(path.Base(name)).Funcs(fs.Funcs).ParseFS(fs.Contents, name)
	if err != nil {
		panic(err)
	}
	return tmpl
}

// AddFile registers a filename pattern rendered from tmpl.
func (fs *FileSystem) AddFile(pattern string, tmpl *template.Template) {
	if fs.Files == nil {
		fs.Files = make(map[string]*template.Template)
	}
	fs.Files[pattern] = tmpl
	fs.patterns = append(fs.patterns, pattern)
}

// Gen renders every registered file with data into the output
// directory. It keeps going after individual failures and returns them
// combined.
func (fs *FileSystem) Gen(output *Output, data any) error {
	fs.init()

	oldlogger := fs.logger
	defer func() {
		fs.logger = oldlogger
	}()
	if output.Verbose {
		fs.logger, _ = zap.NewDevelopment(zap.IncreaseLevel(zap.DebugLevel))
	}

	var errs error
	for _, pattern := range fs.patterns {
		name, err := fs.buildFilename(pattern, data)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}

		fs.logger.Debug("generate file", zap.String("name", name))
		if err := fs.executeTo(output, name, fs.Files[pattern], data); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	return errs
}

// buildFilename expands a filename pattern like "{{.FileName}}.go"
// against data.
func (fs *FileSystem) buildFilename(pattern string, data any) (string, error) {
	tmpl, err := template.New("filename").Parse(pattern)
	if err != nil {
		return "", etrace.Describe(KindFilename, pattern)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", etrace.Describe(KindFilename, pattern)
	}

	return buf.String(), nil
}

func (fs *FileSystem) executeTo(output *Output, name string, tmpl *template.Template, data any) error {
	target := filepath.Join(output.Directory, name)
	if !output.Overwrite {
		if _, err := os.Stat(target); err == nil {
			return etrace.Describe(KindExists, target)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return etrace.Describe(KindTemplate, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return etrace.Describe(KindWrite, err.Error())
	}

	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return etrace.Describe(KindWrite, err.Error())
	}

	fs.logger.Info("wrote file", zap.String("path", target))
	return nil
}
