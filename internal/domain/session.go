package domain

// SessionUID is the network-wide identifier of a connected client.
type SessionUID string

type Session struct {
	UID       SessionUID
	Nick      string
	AccountID AccountID
}

func (s Session) Identified() bool {
	return s.AccountID != ""
}

// Source describes who invoked a service command.
type Source struct {
	AccountID   AccountID
	AccountName string
	// Session is nil when the caller has no live connection.
	Session *Session
}

func (s Source) Authenticated() bool {
	return s.AccountID != ""
}
