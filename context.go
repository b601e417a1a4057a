package mfm

// User identifies note author or viewer.
type User struct {
	Username string
	Host     string // empty for local users
}

// CustomEmoji is an instance-defined emoji addressed as :name:.
type CustomEmoji struct {
	Name string
	URL  string
}

// Context controls rendering mode. It is passed down unchanged through the whole walk.
type Context struct {
	Plain        bool // no decorative markup, text collapses into a single line
	NoWrap       bool // quotes render inline
	Author       *User
	Viewer       *User
	CustomEmojis []CustomEmoji
	IsNote       bool
}

func DefaultContext() Context {
	return Context{IsNote: true}
}

func (c Context) emoji(name string) (CustomEmoji, bool) {
	for _, e := range c.CustomEmojis {
		if e.Name == name {
			return e, true
		}
	}

	return CustomEmoji{}, false
}

func (c Context) isViewer(username, host string) bool {
	return c.Viewer != nil && c.Viewer.Username == username && c.Viewer.Host == host
}
