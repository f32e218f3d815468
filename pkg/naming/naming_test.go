package naming

import (
	"testing"

	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripAffixes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"rust-foo", "foo"},
		{"foo-rs", "foo"},
		{"rs_foo", "foo"},
		{"rust_foo", "foo"},
		{"foo_rust", "foo"},
		// Only one affix is stripped
		{"rs-foo-rs", "foo-rs"},
		{"foo-rs-rs", "foo-rs"},
		// It shouldn't touch the middle
		{"some-rust-crate", "some-rust-crate"},
		{"foo", "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripAffixes(tt.in))
		})
	}
}

func TestStripAffixesSinglePass(t *testing.T) {
	for _, in := range []string{"rust-foo", "foo-rs", "some-rust-crate", "plain"} {
		once := StripAffixes(in)
		assert.Equal(t, once, StripAffixes(once), "stripping %q twice should equal stripping once", in)
	}
}

func TestCheckName(t *testing.T) {
	valid := []string{"foo", "foo_bar", "foo-bar", "Foo123", "crème", "日本", "हिंदी"}
	for _, name := range valid {
		assert.NoError(t, CheckName(name), name)
	}

	tests := []struct {
		name string
		char string
	}{
		{"foo.bar", "."},
		{"foo bar", " "},
		{"foo/bar", "/"},
		{"a+b", "+"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckName(tt.name)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidName))
			details := errors.GetErrorDetails(err)
			assert.Equal(t, tt.char, details["char"])
			assert.Equal(t, tt.name, details["name"])
		})
	}

	assert.True(t, errors.IsErrorCode(CheckName(""), errors.ErrInvalidName))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		root       string
		explicit   string
		kind       types.TargetKind
		want       types.ProjectName
		wantNotice bool
		wantCode   errors.ErrorCode
	}{
		{name: "directory name for binary", root: "/tmp/rust-foo", kind: types.Binary, want: "rust-foo"},
		{name: "library strips affix", root: "/tmp/rust-foo", kind: types.Library, want: "foo", wantNotice: true},
		{name: "library without affix", root: "/tmp/foo", kind: types.Library, want: "foo"},
		{name: "explicit wins verbatim", root: "/tmp/rust-foo", explicit: "rs-bar", kind: types.Library, want: "rs-bar"},
		{name: "trailing separator", root: "/tmp/foo/", kind: types.Binary, want: "foo"},
		{name: "filesystem root", root: "/", kind: types.Library, wantCode: errors.ErrNameResolution},
		{name: "invalid directory name", root: "/tmp/foo.bar", kind: types.Binary, wantCode: errors.ErrInvalidName},
		{name: "invalid explicit name", root: "/tmp/foo", explicit: "a b", kind: types.Binary, wantCode: errors.ErrInvalidName},
		{name: "non unicode directory", root: "/tmp/\xff\xfe", kind: types.Binary, wantCode: errors.ErrNameResolution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, notice, err := Resolve(tt.root, tt.explicit, tt.kind)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.wantNotice {
				assert.Equal(t, "note: package will be named `foo`; use --name to override", notice)
			} else {
				assert.Empty(t, notice)
			}
		})
	}
}

func TestResolveRootMessage(t *testing.T) {
	_, _, err := Resolve("/", "", types.Library)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `cannot auto-detect project name from path "/" ; use --name to override`)
}
