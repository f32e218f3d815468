package manifest

import (
	"runtime"
	"strings"

	"github.com/arthur-debert/kiln/pkg/errors"
	"github.com/arthur-debert/kiln/pkg/types"
)

// ResolveAuthor builds the authors entry from the first non-empty source
// for each field. Name: configured name, VCS identity, $USER, $USERNAME.
// Email: configured email, VCS identity, $EMAIL. The email is optional.
func ResolveAuthor(ambient types.Ambient) (string, error) {
	name := firstSet(
		deref(ambient.Preferences.Name),
		ambient.Identity.Name,
		ambient.Env.User,
		ambient.Env.Username,
	)
	if name == "" {
		return "", errors.Newf(errors.ErrAuthorResolution,
			"could not determine the current user, please set %s", userVariable()).
			WithDetail("variable", userVariable())
	}

	email := firstSet(
		deref(ambient.Preferences.Email),
		ambient.Identity.Email,
		ambient.Env.Email,
	)
	if email == "" {
		return name, nil
	}
	return name + " <" + email + ">", nil
}

func userVariable() string {
	if runtime.GOOS == "windows" {
		return "$USERNAME"
	}
	return "$USER"
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
