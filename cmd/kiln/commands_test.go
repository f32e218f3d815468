package kiln

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/kiln/internal/version"
	"github.com/arthur-debert/kiln/pkg/config"
	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/logging"
	"github.com/arthur-debert/kiln/pkg/scaffold"
	"github.com/arthur-debert/kiln/pkg/testutil"
	"github.com/arthur-debert/kiln/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type execResult struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, env *testutil.TestEnvironment, args ...string) execResult {
	t.Helper()
	t.Setenv(logging.EnvLogFile, "off")

	deps := Deps{}
	if env != nil {
		deps = Deps{FS: env.FS, Backend: env.Backend, Ambient: &env.Ambient}
	}
	rootCmd := NewRootCmdWithDeps(deps)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	// nil args make cobra fall back to os.Args
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return execResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// packageName parses a written manifest and returns package.name
func packageName(t *testing.T, env *testutil.TestEnvironment, rel string) string {
	t.Helper()
	var doc struct {
		Package struct {
			Name string `toml:"name"`
		} `toml:"package"`
	}
	require.NoError(t, toml.Unmarshal([]byte(env.ReadFile(rel)), &doc))
	return doc.Package.Name
}

func TestNewCommand_CreatesLibrary(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	res := execute(t, env, "new", env.Path("foo"))
	require.NoError(t, res.err)

	assert.Empty(t, res.stdout)
	assert.Empty(t, res.stderr)
	assert.Equal(t, scaffold.LibraryStub, env.ReadFile("foo/src/lib.rs"))
	assert.NotContains(t, env.ReadFile("foo/Cargo.toml"), "[lib]")
	assert.Equal(t, scaffold.IgnoreEntries, env.ReadFile("foo/.gitignore"))
	require.Len(t, env.Backend.Inits, 1)
	assert.Equal(t, types.VcsGit, env.Backend.Inits[0].Kind)
}

func TestNewCommand_BinaryWithoutVcs(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	res := execute(t, env, "new", env.Path("hello"), "--bin", "--vcs", "none")
	require.NoError(t, res.err)

	assert.Equal(t, scaffold.BinaryStub, env.ReadFile("hello/src/main.rs"))
	assert.False(t, env.Exists("hello/.gitignore"))
	assert.Empty(t, env.Backend.Inits)
}

func TestNewCommand_NoticeGoesToStderr(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	res := execute(t, env, "new", env.Path("rust-foo"))
	require.NoError(t, res.err)

	assert.Empty(t, res.stdout)
	assert.Equal(t, "note: package will be named `foo`; use --name to override\n", res.stderr)
	assert.Equal(t, "foo", packageName(t, env, "rust-foo/Cargo.toml"))
}

func TestNewCommand_ExplicitName(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	res := execute(t, env, "new", env.Path("rust-foo"), "--name", "rust-foo")
	require.NoError(t, res.err)

	assert.Empty(t, res.stderr)
	assert.Equal(t, "rust-foo", packageName(t, env, "rust-foo/Cargo.toml"))
}

func TestNewCommand_DestinationExists(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	testutil.CreateDirT(t, env.FS, env.Path("foo"))

	res := execute(t, env, "new", env.Path("foo"))
	require.Error(t, res.err)

	assert.True(t, errors.IsErrorCode(res.err, errors.ErrDestinationExists))
	causes := errors.Causes(res.err)
	require.Len(t, causes, 1)
	assert.Contains(t, causes[0], "kiln init")
	assert.False(t, env.Exists("foo/Cargo.toml"))
}

func TestNewCommand_InvalidExplicitName(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	res := execute(t, env, "new", env.Path("foo"), "--name", "not valid")
	require.Error(t, res.err)

	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidName))
	assert.Equal(t, []string{"Invalid character ` ` in crate name: `not valid`"}, errors.Causes(res.err))
	assert.False(t, env.Exists("foo"))
}

func TestNewCommand_WriteFailureNamesResolvedPackage(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Backend.InitFunc = func(types.VersionControl, string) error {
		return errors.New(errors.ErrVcsInit, "git init failed")
	}

	res := execute(t, env, "new", env.Path("rust-foo"))
	require.Error(t, res.err)

	assert.Equal(t, errors.ErrVcsInit, errors.GetErrorCode(res.err))
	assert.Equal(t, "Failed to create project `foo` at `"+env.Path("rust-foo")+"`", errors.Causes(res.err)[0])
}

func TestNewCommand_FlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{name: "bin and lib", args: []string{"--bin", "--lib"}, code: errors.ErrUnknown},
		{name: "unknown vcs", args: []string{"--vcs", "svn"}, code: errors.ErrInvalidInput},
		{name: "unknown format", args: []string{"--format", "html"}, code: errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

			args := append([]string{"new", env.Path("foo")}, tt.args...)
			res := execute(t, env, args...)
			require.Error(t, res.err)

			assert.Equal(t, tt.code, errors.GetErrorCode(res.err))
			assert.False(t, env.Exists("foo"))
		})
	}
}

func TestNewCommand_RequiresPath(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	res := execute(t, env, "new")
	assert.Error(t, res.err)
}

func TestNewCommand_DryRun(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)

	res := execute(t, env, "--dry-run", "new", env.Path("foo"), "--bin")
	require.NoError(t, res.err)

	assert.Contains(t, res.stdout, "# dry run: nothing was written\n")
	assert.Contains(t, res.stdout, "command: new")
	assert.Contains(t, res.stdout, "path: src/main.rs")
	assert.NotContains(t, res.stdout, "[[bin]]")
	assert.False(t, env.Exists("foo"))
	assert.Empty(t, env.Backend.Inits)
}

func TestInitCommand_UsesExistingSources(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WithFiles(map[string]string{
		"proj/src/main.rs": "fn main() { println!(\"existing\"); }\n",
	})

	res := execute(t, env, "init", env.Path("proj"), "--lib")
	require.NoError(t, res.err)

	assert.Equal(t, "note: ignoring --lib, the targets are taken from the existing source files\n", res.stderr)
	assert.Equal(t, "fn main() { println!(\"existing\"); }\n", env.ReadFile("proj/src/main.rs"))
	assert.False(t, env.Exists("proj/src/lib.rs"))
	assert.NotContains(t, env.ReadFile("proj/Cargo.toml"), "[[bin]]")
}

func TestInitCommand_NonDefaultSourceGetsSection(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WithFiles(map[string]string{"proj/main.rs": "fn main() {}\n"})

	res := execute(t, env, "init", env.Path("proj"))
	require.NoError(t, res.err)

	var doc struct {
		Bin []struct {
			Name string `toml:"name"`
			Path string `toml:"path"`
		} `toml:"bin"`
	}
	require.NoError(t, toml.Unmarshal([]byte(env.ReadFile("proj/Cargo.toml")), &doc))
	require.Len(t, doc.Bin, 1)
	assert.Equal(t, "proj", doc.Bin[0].Name)
	assert.Equal(t, "main.rs", doc.Bin[0].Path)
	assert.False(t, env.Exists("proj/src"))
}

func TestInitCommand_NoticeSurvivesLaterFailure(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WithFiles(map[string]string{
		"rust-foo/src/main.rs": "fn main() {}\n",
		"rust-foo/main.rs":     "fn main() {}\n",
	})

	res := execute(t, env, "init", env.Path("rust-foo"))
	require.Error(t, res.err)

	assert.True(t, errors.IsErrorCode(res.err, errors.ErrAmbiguousBinary))
	assert.Equal(t, "note: package will be named `foo`; use --name to override\n", res.stderr)
	assert.False(t, env.Exists("rust-foo/Cargo.toml"))
}

func TestInitCommand_ExistingManifest(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.WithFiles(map[string]string{"proj/Cargo.toml": "[package]\n"})

	res := execute(t, env, "init", env.Path("proj"))
	require.Error(t, res.err)

	assert.True(t, errors.IsErrorCode(res.err, errors.ErrDestinationExists))
	assert.Equal(t, "[package]\n", env.ReadFile("proj/Cargo.toml"))
}

func TestInitCommand_AmbiguousVcs(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	testutil.CreateDirT(t, env.FS, env.Path("proj/.git"))
	testutil.CreateDirT(t, env.FS, env.Path("proj/.hg"))

	res := execute(t, env, "init", env.Path("proj"))
	require.Error(t, res.err)

	assert.True(t, errors.IsErrorCode(res.err, errors.ErrAmbiguousVcs))
	assert.False(t, env.Exists("proj/Cargo.toml"))
}

func TestRootCommand_NoSubcommand(t *testing.T) {
	res := execute(t, nil)
	require.Error(t, res.err)
	assert.Equal(t, MsgErrNoCommand, res.err.Error())
	assert.Contains(t, res.stdout, "kiln")
}

func TestVersionCommand(t *testing.T) {
	res := execute(t, nil, "version")
	require.NoError(t, res.err)
	assert.Equal(t, "kiln "+version.String()+"\n", res.stdout)
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			res := execute(t, nil, "completion", shell)
			require.NoError(t, res.err)
			assert.Contains(t, res.stdout, "kiln")
		})
	}

	res := execute(t, nil, "completion", "tcsh")
	assert.Error(t, res.err)
}

func TestTopicsCommand(t *testing.T) {
	res := execute(t, nil, "topics")
	require.NoError(t, res.err)

	for _, topic := range []string{"authors", "configuration", "layout", "vcs"} {
		assert.Contains(t, res.stdout, topic)
	}

	res = execute(t, nil, "topics", "no-such-topic")
	assert.Error(t, res.err)
}

func TestConfigCommand_EffectivePreferences(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Ambient.Preferences = types.GlobalPreferences{
		Name: types.StringPtr("Jane Doe"),
		VCS:  types.VcsPtr(types.VcsHg),
	}

	res := execute(t, env, "config")
	require.NoError(t, res.err)

	var doc struct {
		CargoNew map[string]string `toml:"cargo-new"`
	}
	require.NoError(t, toml.Unmarshal([]byte(res.stdout), &doc))
	assert.Equal(t, map[string]string{"name": "Jane Doe", "vcs": "hg"}, doc.CargoNew)
}

func TestConfigCommand_Template(t *testing.T) {
	res := execute(t, nil, "config", "--template")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "[cargo-new]")
}

func TestConfigCommand_Sources(t *testing.T) {
	base := t.TempDir()
	cargoHome := filepath.Join(base, "cargo-home")
	require.NoError(t, os.MkdirAll(cargoHome, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cargoHome, "config.toml"), []byte("[cargo-new]\n"), 0644))
	t.Setenv(config.EnvCargoHome, cargoHome)
	t.Setenv(config.EnvKilnConfig, filepath.Join(base, "kiln.toml"))

	res := execute(t, nil, "config", "--sources")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Equal(t, filepath.Join(cargoHome, "config.toml")+" (found)", lines[0])
	assert.Equal(t, filepath.Join(base, "kiln.toml")+" (missing)", lines[1])
}
