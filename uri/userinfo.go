package uri

import (
	"strings"

	"github.com/ghettovoice/gourl/internal/grammar"
	"github.com/ghettovoice/gourl/internal/util"
)

// UserInfo is the userinfo subcomponent of an authority.
// Username and password are kept percent-encoded as they appear in the URI text.
type UserInfo struct {
	usrname, passwd string
	hasPasswd       bool
}

// User returns a [UserInfo] containing the provided username and no password.
// Existing percent triplets are kept, bytes not allowed in a username are escaped.
func User(usrname string) UserInfo {
	return UserInfo{usrname: grammar.Escape(usrname, shouldEscapeUserChar)}
}

// UserPassword returns a [UserInfo] containing the provided username and password.
func UserPassword(usrname, passwd string) UserInfo {
	return UserInfo{
		usrname:   grammar.Escape(usrname, shouldEscapeUserChar),
		passwd:    grammar.Escape(passwd, shouldEscapePasswdChar),
		hasPasswd: true,
	}
}

func parseUserInfo(s string) UserInfo {
	usr, pwd, ok := strings.Cut(s, ":")
	return UserInfo{usrname: usr, passwd: pwd, hasPasswd: ok}
}

// Username returns the decoded username.
func (ui UserInfo) Username() string { return grammar.Unescape(ui.usrname) }

// Password returns the decoded password, in case it is set, and a bool flag indicating whether it is set.
func (ui UserInfo) Password() (string, bool) { return grammar.Unescape(ui.passwd), ui.hasPasswd }

func shouldEscapeUserChar(c byte) bool {
	return grammar.IsUnsafe(c) || strings.IndexByte(":@/?#[]", c) >= 0
}

func shouldEscapePasswdChar(c byte) bool {
	return grammar.IsUnsafe(c) || strings.IndexByte("@/?#[]", c) >= 0
}

func (ui UserInfo) normalize() UserInfo {
	ui.usrname = grammar.NormalizeEscapes(ui.usrname, shouldEscapeUserChar)
	ui.passwd = grammar.NormalizeEscapes(ui.passwd, shouldEscapePasswdChar)
	return ui
}

// String returns the encoded "user[:password]" form.
func (ui UserInfo) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	sb.WriteString(ui.usrname)
	if ui.hasPasswd {
		sb.WriteString(":")
		sb.WriteString(ui.passwd)
	}
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
	return ui.usrname == other.usrname && ui.passwd == other.passwd && ui.hasPasswd == other.hasPasswd
}

// IsZero checks whether the UserInfo is empty.
func (ui UserInfo) IsZero() bool { return ui.usrname == "" && ui.passwd == "" && !ui.hasPasswd }
