package domain

import "errors"

var ErrConfigurationMissing = errors.New("configuration file missing")
var ErrGroupNotFound = errors.New("group not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// Participant is a member of a group's roster. Rosters come from the
// configuration file and are immutable at runtime.
type Participant struct {
	Username string `json:"username" yaml:"username"`
	Name     string `json:"name" yaml:"name"`
	// Password is either plaintext or a bcrypt hash ($2a$/$2b$/$2y$ prefix).
	Password string `json:"-" yaml:"password"`
	// Exclusions lists usernames this participant must not be matched to.
	Exclusions []string `json:"-" yaml:"exclude"`
}

// Group is an independent pool of participants with its own assignment
// and gift budget. Identity is ID; membership can change across restarts.
type Group struct {
	ID           string        `json:"id" yaml:"id"`
	Name         string        `json:"name" yaml:"name"`
	Budget       float64       `json:"budget" yaml:"budget"`
	Currency     string        `json:"currency" yaml:"currency"`
	Participants []Participant `json:"participants" yaml:"participants"`
}

// Participant returns the roster entry for username, or nil.
func (g *Group) Participant(username string) *Participant {
	for i := range g.Participants {
		if g.Participants[i].Username == username {
			return &g.Participants[i]
		}
	}
	return nil
}

// Usernames returns the roster usernames in configuration order.
func (g *Group) Usernames() []string {
	names := make([]string, len(g.Participants))
	for i, p := range g.Participants {
		names[i] = p.Username
	}
	return names
}

// ExclusionMap collects each participant's forbidden receivers.
func (g *Group) ExclusionMap() map[string][]string {
	m := make(map[string][]string)
	for _, p := range g.Participants {
		if len(p.Exclusions) > 0 {
			m[p.Username] = p.Exclusions
		}
	}
	return m
}
