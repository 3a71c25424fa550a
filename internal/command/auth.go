package command

// overrideUserID is always treated as privileged, with or without the
// administrator permission. There is exactly one such identity.
const overrideUserID = "1146934522249617509"

// Authorized reports whether a caller may run a privileged command. This is
// the only privilege rule in the bot and it is shared by the prefix and slash
// surfaces; neither surface carries its own check.
func Authorized(c Caller) bool {
	return c.IsAdmin || c.ID == overrideUserID
}
