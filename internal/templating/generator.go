package templating

import (
	"bytes"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/torrust/tracker-deploy/internal/errkind"
)

// Generator implements the Project Generator pattern for one external
// tool's project directory: mkdir -p the output dir (idempotent), copy
// static assets verbatim, render each dynamic template against a typed
// context, and write every output atomically (.tmp + rename).
type Generator struct {
	// sourceDir is the embedded template subtree's root, using forward
	// slashes regardless of host OS (embed.FS path convention), e.g.
	// "templates/compose".
	sourceDir string
	// dynamicTemplates names the files under sourceDir (relative, forward
	// slashes) to render with text/template instead of copying verbatim.
	dynamicTemplates map[string]bool
}

func newGenerator(sourceDir string, dynamicTemplates ...string) Generator {
	set := make(map[string]bool, len(dynamicTemplates))
	for _, d := range dynamicTemplates {
		set[d] = true
	}
	return Generator{sourceDir: sourceDir, dynamicTemplates: set}
}

// Render writes the generator's project directory under outputDir: static
// assets are copied verbatim, dynamic templates are executed against data.
// Returns outputDir on success.
func (g Generator) Render(outputDir string, data any) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", errkind.Wrap(errkind.TemplateRendering, "create output directory "+outputDir, err)
	}

	err := fs.WalkDir(templateFS, g.sourceDir, func(srcPath string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		rel, relErr := path.Rel(g.sourceDir, srcPath)
		if relErr != nil {
			return relErr
		}
		destRel := strings.TrimSuffix(rel, ".tmpl")
		dest := filepath.Join(outputDir, filepath.FromSlash(destRel))

		if g.dynamicTemplates[rel] {
			return g.renderOne(srcPath, dest, data)
		}
		return copyStatic(srcPath, dest)
	})
	if err != nil {
		return "", errkind.Wrap(errkind.TemplateRendering, "render "+g.sourceDir, err)
	}
	return outputDir, nil
}

func (g Generator) renderOne(templatePath, dest string, data any) error {
	contents, err := templateFS.ReadFile(templatePath)
	if err != nil {
		return err
	}
	tmpl, err := template.New(path.Base(templatePath)).Option("missingkey=error").Parse(string(contents))
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return err
	}
	return writeAtomic(dest, buf.Bytes())
}

func copyStatic(src, dest string) error {
	contents, err := templateFS.ReadFile(src)
	if err != nil {
		return err
	}
	return writeAtomic(dest, contents)
}

func writeAtomic(dest string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	tmp := dest + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
