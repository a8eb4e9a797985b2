package migrate_test

import (
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/corscheck/pkg/config"
	"github.com/suzuki-shunsuke/corscheck/pkg/controller/migrate"
)

func newLogE() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func TestController_Migrate(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name     string
		content  string
		exp      *config.Config
		comments []string
		isErr    bool
	}{
		{
			name: "legacy",
			content: `# suffixes of target files
extensions:
  - .js
  - .jsx
exclude_dirs:
  - name: node_modules
    name_format: fixed_string
`,
			exp: &config.Config{
				Version:  1,
				Root:     "src",
				Suffixes: []string{".js", ".jsx"},
				ExcludeDirs: []*config.ExcludeDir{
					{Name: "node_modules", NameFormat: "fixed_string"},
				},
			},
			comments: []string{"# suffixes of target files"},
		},
		{
			name: "no version",
			content: `root: app
suffixes:
  - .ts
`,
			exp: &config.Config{
				Version:  1,
				Root:     "app",
				Suffixes: []string{".ts"},
			},
		},
		{
			name: "both extensions and suffixes",
			content: `extensions:
  - .js
suffixes:
  - .ts
`,
			isErr: true,
		},
		{
			name:    "unsupported version",
			content: "version: 5\n",
			isErr:   true,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, ".corscheck.yaml", []byte(d.content), 0o644); err != nil {
				t.Fatal(err)
			}
			ctrl := migrate.New(fs, config.NewFinder(fs), &migrate.Param{})
			if err := ctrl.Migrate(newLogE()); err != nil {
				if d.isErr {
					return
				}
				t.Fatal(err)
			}
			if d.isErr {
				t.Fatal("error must be returned")
			}
			cfg := &config.Config{}
			if err := config.NewReader(fs).Read(cfg, ".corscheck.yaml"); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(d.exp, cfg, cmpopts.IgnoreUnexported(config.ExcludeDir{})); diff != "" {
				t.Fatal(diff)
			}
			b, err := afero.ReadFile(fs, ".corscheck.yaml")
			if err != nil {
				t.Fatal(err)
			}
			for _, comment := range d.comments {
				if !strings.Contains(string(b), comment) {
					t.Fatalf("the comment %q is lost:\n%s", comment, string(b))
				}
			}
		})
	}
}

func TestController_Migrate_latest(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	content := "# comment\nversion: 1\nroot:   app\n"
	if err := afero.WriteFile(fs, ".corscheck.yaml", []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	ctrl := migrate.New(fs, config.NewFinder(fs), &migrate.Param{})
	if err := ctrl.Migrate(newLogE()); err != nil {
		t.Fatal(err)
	}
	b, err := afero.ReadFile(fs, ".corscheck.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != content {
		t.Fatalf("the file must not be changed: %s", string(b))
	}
}

func TestController_Migrate_noConfig(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	ctrl := migrate.New(fs, config.NewFinder(fs), &migrate.Param{})
	if err := ctrl.Migrate(newLogE()); err != nil {
		t.Fatal(err)
	}
}
