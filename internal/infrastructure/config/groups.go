package config

import (
	"fmt"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/famgift/exchange-system/internal/core/domain"
)

// Group ids become part of collection names, so keep them to a safe charset.
var groupIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

type rosterFile struct {
	Groups []groupEntry `yaml:"groups" validate:"required,min=1,dive"`
}

type groupEntry struct {
	ID           string             `yaml:"id" validate:"required"`
	Name         string             `yaml:"name" validate:"required"`
	Budget       float64            `yaml:"budget" validate:"gte=0"`
	Currency     string             `yaml:"currency"`
	Participants []participantEntry `yaml:"participants" validate:"required,dive"`
}

type participantEntry struct {
	Username string   `yaml:"username" validate:"required"`
	Name     string   `yaml:"name" validate:"required"`
	Password string   `yaml:"password" validate:"required"`
	Exclude  []string `yaml:"exclude"`
}

// GroupLoader reads the roster file and caches the parsed groups keyed by
// the file's mod-time. A changed mod-time invalidates the cache on the next
// read; nothing is watched in the background.
type GroupLoader struct {
	path     string
	validate *validator.Validate
	logger   zerolog.Logger

	mu      sync.Mutex
	cached  []domain.Group
	modTime time.Time
}

func NewGroupLoader(path string, logger zerolog.Logger) *GroupLoader {
	return &GroupLoader{path: path, validate: validator.New(), logger: logger}
}

// Groups returns the configured groups, re-reading the file when its
// mod-time changed. Once a roster has loaded successfully, a transient stat
// failure falls back to the cached value with a warning.
func (l *GroupLoader) Groups() ([]domain.Group, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	info, err := os.Stat(l.path)
	if err != nil {
		if os.IsNotExist(err) && l.cached == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigurationMissing, l.path)
		}
		if l.cached != nil {
			l.logger.Warn().Err(err).Str("path", l.path).Msg("roster stat failed, serving cached groups")
			return l.cached, nil
		}
		return nil, fmt.Errorf("stat roster: %w", err)
	}

	if l.cached != nil && info.ModTime().Equal(l.modTime) {
		return l.cached, nil
	}

	groups, err := l.load()
	if err != nil {
		return nil, err
	}

	l.cached = groups
	l.modTime = info.ModTime()
	l.logger.Info().Str("path", l.path).Int("groups", len(groups)).Msg("roster loaded")
	return groups, nil
}

// GroupByID resolves a single group from the current roster.
func (l *GroupLoader) GroupByID(id string) (*domain.Group, error) {
	groups, err := l.Groups()
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == id {
			return &groups[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrGroupNotFound, id)
}

func (l *GroupLoader) load() ([]domain.Group, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrConfigurationMissing, l.path)
		}
		return nil, fmt.Errorf("read roster: %w", err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}
	if err := l.validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("invalid roster: %w", err)
	}
	if err := checkConsistency(file); err != nil {
		return nil, fmt.Errorf("invalid roster: %w", err)
	}

	groups := make([]domain.Group, 0, len(file.Groups))
	for _, g := range file.Groups {
		participants := make([]domain.Participant, 0, len(g.Participants))
		for _, p := range g.Participants {
			participants = append(participants, domain.Participant{
				Username:   p.Username,
				Name:       p.Name,
				Password:   p.Password,
				Exclusions: p.Exclude,
			})
		}
		groups = append(groups, domain.Group{
			ID:           g.ID,
			Name:         g.Name,
			Budget:       g.Budget,
			Currency:     g.Currency,
			Participants: participants,
		})
	}
	return groups, nil
}

// checkConsistency enforces the cross-field rules struct tags cannot
// express: unique group ids, a collection-safe id charset, unique usernames
// within a group, and exclusions that reference roster members.
func checkConsistency(file rosterFile) error {
	ids := make(map[string]struct{}, len(file.Groups))
	for _, g := range file.Groups {
		if !groupIDPattern.MatchString(g.ID) {
			return fmt.Errorf("group id %q: only letters, digits, '-' and '_' allowed", g.ID)
		}
		if _, dup := ids[g.ID]; dup {
			return fmt.Errorf("duplicate group id %q", g.ID)
		}
		ids[g.ID] = struct{}{}

		usernames := make(map[string]struct{}, len(g.Participants))
		for _, p := range g.Participants {
			if _, dup := usernames[p.Username]; dup {
				return fmt.Errorf("group %s: duplicate username %q", g.ID, p.Username)
			}
			usernames[p.Username] = struct{}{}
		}
		for _, p := range g.Participants {
			for _, excluded := range p.Exclude {
				if _, ok := usernames[excluded]; !ok {
					return fmt.Errorf("group %s: %s excludes unknown username %q", g.ID, p.Username, excluded)
				}
			}
		}
	}
	return nil
}
