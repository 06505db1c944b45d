package domain

// User is a directory entry for a message author or DM counterpart.
type User struct {
	ID          string
	DisplayName string
	RealName    string
}

// Label picks the name shown for the user: display name when set, else real
// name, else the raw id.
func (u User) Label() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.RealName != "" {
		return u.RealName
	}
	return u.ID
}
