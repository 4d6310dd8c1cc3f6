package translations

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"

	"github.com/dmitrymomot/collection/pkg/arr"
	"github.com/dmitrymomot/collection/pkg/sanitizer"
)

type format struct {
	exts   []string
	decode func([]byte) (any, error)
}

var (
	jsonFormat = format{exts: []string{".json"}, decode: arr.DecodeJSON}
	yamlFormat = format{exts: []string{".yaml", ".yml"}, decode: arr.DecodeYAML}
)

func loadDir(t *Translations, fsys fs.FS, f format) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(filePath)
		if !slices.Contains(f.exts, strings.ToLower(ext)) {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return fmt.Errorf("reading %q: %w", filePath, err)
		}

		v, err := f.decode(data)
		if err != nil {
			return fmt.Errorf("%w: parsing %q: %w", ErrInvalidFile, filePath, err)
		}
		m, ok := v.(*arr.Map)
		if !ok || (m.Len() > 0 && arr.IsList(m)) {
			return fmt.Errorf("%w: %q must contain a mapping", ErrInvalidFile, filePath)
		}

		// "de/mail/signup" => locale "de", group "mail.signup"
		locale, group, _ := strings.Cut(strings.TrimSuffix(filePath, ext), "/")
		if locale == "" {
			return fmt.Errorf("%w: %q has no locale", ErrInvalidFile, filePath)
		}

		if t.content != nil {
			m = sanitizer.Tree(m, t.content)
		}

		key := groupKey(locale, group)
		t.items = t.items.ReplaceRecursive(arr.Set(arr.NewMap(), key, m))

		t.logger.Debug("translations loaded",
			slog.String("file", filePath),
			slog.String("locale", locale),
			slog.Int("keys", m.Len()),
		)
		return nil
	})
}

// groupKey places a file under its locale, nested by the directories below
// it. A file at the locale root has no group.
func groupKey(locale, group string) string {
	if group == "" {
		return locale
	}
	return join(locale, strings.ReplaceAll(group, "/", arr.DefaultSeparator))
}
