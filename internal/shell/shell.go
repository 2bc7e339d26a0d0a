// Package shell holds the portal chrome's state: which tab is showing, the
// colour theme, the sidebar and the chat panel. Each slice is owned by its
// caller; nothing here is global.
package shell

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrUnknownTab   = errors.New("unknown tab")
	ErrUnknownTheme = errors.New("unknown theme")
)

type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabCourses   Tab = "courses"
	TabPaths     Tab = "paths"
	TabProgress  Tab = "progress"
	TabAdmin     Tab = "admin"
)

var tabs = []struct {
	tab   Tab
	label string
}{
	{TabDashboard, "Dashboard"},
	{TabCourses, "My Courses"},
	{TabPaths, "Learning Paths"},
	{TabProgress, "My Progress"},
	{TabAdmin, "Admin"},
}

// Tabs returns the navigation entries in sidebar order.
func Tabs() []Tab {
	out := make([]Tab, len(tabs))
	for i, t := range tabs {
		out[i] = t.tab
	}
	return out
}

func (t Tab) Label() string {
	for _, e := range tabs {
		if e.tab == t {
			return e.label
		}
	}
	return string(t)
}

func ParseTab(s string) (Tab, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	for _, e := range tabs {
		if n == string(e.tab) || n == strings.ToLower(e.label) {
			return e.tab, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// Nav tracks the active tab. Exactly one tab is active at a time.
type Nav struct {
	active Tab
}

func NewNav() *Nav {
	return &Nav{active: TabDashboard}
}

func (n *Nav) Active() Tab { return n.active }

func (n *Nav) Select(t Tab) error {
	tab, err := ParseTab(string(t))
	if err != nil {
		return err
	}
	n.active = tab
	return nil
}

func (n *Nav) IsActive(t Tab) bool { return n.active == t }

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ParseTheme resolves "auto" using prefersDark, standing in for the
// prefers-color-scheme media query.
func ParseTheme(s string, prefersDark bool) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		if prefersDark {
			return ThemeDark, nil
		}
		return ThemeLight, nil
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type Sidebar struct {
	Open bool
}

func (s *Sidebar) Toggle() { s.Open = !s.Open }

// Chat is the slide-over panel hosting the third-party chatbot page.
type Chat struct {
	BaseURL string
	open    bool
}

func (c *Chat) Open()        { c.open = true }
func (c *Chat) Close()       { c.open = false }
func (c *Chat) IsOpen() bool { return c.open }

// EmbedURL is the address loaded into the chat frame: the base URL with
// embed=1 added to whatever query it already has.
func (c *Chat) EmbedURL() (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid chat url %q: %w", c.BaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid chat url %q: must be absolute", c.BaseURL)
	}
	q := u.Query()
	q.Set("embed", "1")
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// State bundles the independent slices a rendered page reads.
type State struct {
	Nav     *Nav
	Theme   Theme
	Sidebar Sidebar
	Chat    Chat
}

func NewState(theme Theme, chatURL string) *State {
	return &State{
		Nav:   NewNav(),
		Theme: theme,
		Chat:  Chat{BaseURL: chatURL},
	}
}
