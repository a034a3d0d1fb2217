package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
)

const fileTemplate = `-- {{.Direction}} migration {{.Version}}: {{.Name}}

`

// versionWidth matches the zero padded prefixes of the files in migrations/.
const versionWidth = 6

var versionPrefix = regexp.MustCompile(`^(\d+)_.+\.(up|down)\.sql$`)

// MigrationFile describes a created up/down pair.
type MigrationFile struct {
	Version  string
	Name     string
	UpPath   string
	DownPath string
}

// CreateMigration writes an empty up/down pair numbered after the highest
// version already present in dir.
func CreateMigration(dir, name string) (*MigrationFile, error) {
	name = sanitizeName(name)
	if name == "" {
		return nil, fmt.Errorf("migration name must contain letters or digits")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create migrations directory: %w", err)
	}

	next, err := nextVersion(dir)
	if err != nil {
		return nil, err
	}
	version := fmt.Sprintf("%0*d", versionWidth, next)
	base := filepath.Join(dir, version+"_"+name)

	mf := &MigrationFile{
		Version:  version,
		Name:     name,
		UpPath:   base + ".up.sql",
		DownPath: base + ".down.sql",
	}
	tmpl := template.Must(template.New("migration").Parse(fileTemplate))
	for direction, path := range map[string]string{"Up": mf.UpPath, "Down": mf.DownPath} {
		if err := writeTemplate(tmpl, path, direction, mf); err != nil {
			_ = os.Remove(mf.UpPath)
			_ = os.Remove(mf.DownPath)
			return nil, err
		}
	}
	return mf, nil
}

func writeTemplate(tmpl *template.Template, path, direction string, mf *MigrationFile) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	return tmpl.Execute(f, struct {
		Direction string
		*MigrationFile
	}{direction, mf})
}

// nextVersion returns one past the highest numbered migration in dir.
func nextVersion(dir string) (int, error) {
	versions, err := ListVersions(dir)
	if err != nil {
		return 0, err
	}
	return lo.Max(versions) + 1, nil
}

// ListVersions returns the distinct version numbers of the migration files in dir.
func ListVersions(dir string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	versions := lo.FilterMap(entries, func(e os.DirEntry, _ int) (int, bool) {
		match := versionPrefix.FindStringSubmatch(e.Name())
		if e.IsDir() || match == nil {
			return 0, false
		}
		v, err := strconv.Atoi(match[1])
		return v, err == nil
	})
	return lo.Uniq(versions), nil
}

// sanitizeName lower-cases name and collapses every run of other characters
// into a single underscore.
func sanitizeName(name string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}
