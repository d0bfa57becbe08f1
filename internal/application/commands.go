package application

import "github.com/bnema/nickserv-gender/internal/ports"

const (
	GenderModuleName  = "nickserv/gender"
	GenderCommandName = "GENDER"

	NickServService    = "nickserv"
	NickServMainModule = "nickserv/main"

	bannedWordKillReason = "User attempted to set a gender containing a word on the disallow list."
)

func (m *GenderModule) command() ports.Command {
	return ports.Command{
		Name:        GenderCommandName,
		Description: "Set gender identity info.",
		Access:      ports.AccessAuthenticated,
		MaxParams:   1,
		HelpPath:    "nickserv/gender",
		Handler:     m.HandleGender,
	}
}
