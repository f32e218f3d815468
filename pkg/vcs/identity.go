package vcs

import (
	"strings"

	"github.com/arthur-debert/kiln/pkg/logging"
	"github.com/arthur-debert/kiln/pkg/types"
	"github.com/go-git/go-git/v5/config"
)

// LoadIdentity reads user.name and user.email from the global git
// configuration. Missing or unreadable configuration yields an empty identity.
func LoadIdentity() types.Identity {
	cfg, err := config.LoadConfig(config.GlobalScope)
	if err != nil {
		log := logging.GetLogger("vcs")
		log.Debug().Err(err).Msg("No global git configuration")
		return types.Identity{}
	}
	return types.Identity{
		Name:  strings.TrimSpace(cfg.User.Name),
		Email: strings.TrimSpace(cfg.User.Email),
	}
}
