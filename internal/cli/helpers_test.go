package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/diazbsofia/homesolution/internal/app"
)

const sampleScenario = `
employees:
  - {name: Luis, kind: hourly, rate: 10}
  - {name: Ana, kind: salaried, category: expert, rate: 100}
projects:
  - address: Calle 123
    client: {name: Marta, email: marta@mail.com, phone: "555"}
    start: 01/03/2025
    estimate: 10/03/2025
    tasks:
      - {title: Paint, days: 5}
      - {title: Plumbing, days: 5}
  - address: Av. Siempre Viva 742
    start: 02/03/2025
    estimate: 04/03/2025
    tasks:
      - {title: Roof, days: 2}
steps:
  - {op: assign, project: 1, task: Paint, employee: 1}
  - {op: delay, project: 1, task: Paint, days: 1}
  - {op: assign, project: 1, task: Plumbing}
  - {op: finalize, project: 1, date: 12/03/2025}
`

// testCLI runs root commands against a temporary working directory.
type testCLI struct {
	dir    string
	stdout bytes.Buffer
	stderr bytes.Buffer
	logs   bytes.Buffer
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	return &testCLI{dir: t.TempDir()}
}

func (tc *testCLI) factory(opts app.Options) (*app.Container, error) {
	opts.WorkDir = tc.dir
	opts.GlobalConfigDir = filepath.Join(tc.dir, "global")
	opts.LogOutput = &tc.logs
	return app.New(opts)
}

func (tc *testCLI) root() *cobra.Command {
	root := NewRootCommand(tc.factory, "test-version")
	root.SetOut(&tc.stdout)
	root.SetErr(&tc.stderr)
	return root
}

// write creates name under the working directory and returns its path.
func (tc *testCLI) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(tc.dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (tc *testCLI) execute(args ...string) error {
	tc.stdout.Reset()
	tc.stderr.Reset()
	root := tc.root()
	root.SetArgs(args)
	return root.Execute()
}
