package gourl

import "github.com/ghettovoice/gourl/internal/util"

// UserInfo is a container for the username and optional password of a URL.
type UserInfo struct {
	username, password string
	hasPassword        bool
}

// User returns a [UserInfo] containing the provided username and no password.
func User(username string) UserInfo {
	return UserInfo{username: username}
}

// UserPassword returns a [UserInfo] containing the provided username and password.
func UserPassword(username, password string) UserInfo {
	return UserInfo{username: username, password: password, hasPassword: true}
}

// Username returns the username from the UserInfo.
func (ui UserInfo) Username() string { return ui.username }

// Password returns the password, in case it is set, and a bool flag indicating whether it is set.
func (ui UserInfo) Password() (string, bool) { return ui.password, ui.hasPassword }

// String returns the "username[:password]" form of the UserInfo. Values are
// emitted as-is: percent-encoding is a separate explicit stage.
func (ui UserInfo) String() string {
	if ui.password == "" {
		return ui.username
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(ui.username)
	sb.WriteString(":")
	sb.WriteString(ui.password)
	return sb.String()
}

// Equal compares this UserInfo with another for equality.
func (ui UserInfo) Equal(val any) bool {
	var other UserInfo
	switch v := val.(type) {
	case UserInfo:
		other = v
	case *UserInfo:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return ui.username == other.username && ui.password == other.password
}

// IsZero checks whether the UserInfo is empty.
func (ui UserInfo) IsZero() bool {
	return ui.username == "" && ui.password == "" && !ui.hasPassword
}
