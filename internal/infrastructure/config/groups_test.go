package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/famgift/exchange-system/internal/core/domain"
)

const validRoster = `
groups:
  - id: family-2026
    name: The Family
    budget: 50
    currency: USD
    participants:
      - username: alice
        name: Alice
        password: pw1
        exclude: [bob]
      - username: bob
        name: Bob
        password: pw2
      - username: carol
        name: Carol
        password: pw3
`

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	return path
}

func TestGroupLoader_ParsesRoster(t *testing.T) {
	loader := NewGroupLoader(writeRoster(t, validRoster), zerolog.Nop())

	groups, err := loader.Groups()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}

	g := groups[0]
	if g.ID != "family-2026" || g.Name != "The Family" || g.Budget != 50 || g.Currency != "USD" {
		t.Errorf("unexpected group fields: %+v", g)
	}
	if len(g.Participants) != 3 {
		t.Fatalf("expected 3 participants, got %d", len(g.Participants))
	}
	alice := g.Participant("alice")
	if alice == nil || alice.Name != "Alice" || alice.Password != "pw1" {
		t.Errorf("unexpected alice: %+v", alice)
	}
	if len(alice.Exclusions) != 1 || alice.Exclusions[0] != "bob" {
		t.Errorf("unexpected exclusions: %v", alice.Exclusions)
	}
}

func TestGroupLoader_GroupByID(t *testing.T) {
	loader := NewGroupLoader(writeRoster(t, validRoster), zerolog.Nop())

	if _, err := loader.GroupByID("family-2026"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := loader.GroupByID("strangers"); !errors.Is(err, domain.ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestGroupLoader_MissingFileIsFatal(t *testing.T) {
	loader := NewGroupLoader(filepath.Join(t.TempDir(), "absent.yaml"), zerolog.Nop())

	if _, err := loader.Groups(); !errors.Is(err, domain.ErrConfigurationMissing) {
		t.Fatalf("expected ErrConfigurationMissing, got %v", err)
	}
}

func TestGroupLoader_RejectsInvalidRosters(t *testing.T) {
	cases := []struct {
		name   string
		roster string
	}{
		{"not yaml", "groups: [::"},
		{"no groups", "groups: []"},
		{"missing password", `
groups:
  - id: g
    name: G
    participants:
      - username: a
        name: A
`},
		{"duplicate group id", `
groups:
  - id: g
    name: G
    participants: [{username: a, name: A, password: p}]
  - id: g
    name: G2
    participants: [{username: b, name: B, password: p}]
`},
		{"duplicate username", `
groups:
  - id: g
    name: G
    participants:
      - {username: a, name: A, password: p}
      - {username: a, name: A2, password: p}
`},
		{"unknown exclusion target", `
groups:
  - id: g
    name: G
    participants:
      - {username: a, name: A, password: p, exclude: [ghost]}
      - {username: b, name: B, password: p}
`},
		{"unsafe group id", `
groups:
  - id: "bad id!"
    name: G
    participants: [{username: a, name: A, password: p}]
`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loader := NewGroupLoader(writeRoster(t, tc.roster), zerolog.Nop())
			if _, err := loader.Groups(); err == nil {
				t.Errorf("expected error for %s roster", tc.name)
			}
		})
	}
}

func TestGroupLoader_ReloadsOnModTimeChange(t *testing.T) {
	path := writeRoster(t, validRoster)
	loader := NewGroupLoader(path, zerolog.Nop())

	groups, err := loader.Groups()
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}

	updated := validRoster + `
  - id: friends
    name: Friends
    participants:
      - {username: xavier, name: Xavier, password: p}
      - {username: yara, name: Yara, password: p}
`
	if err := os.WriteFile(path, []byte(updated), 0o600); err != nil {
		t.Fatalf("rewrite roster: %v", err)
	}
	// Force a distinct mod-time; coarse filesystem clocks would otherwise
	// make this flaky.
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	groups, err = loader.Groups()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(groups) != 2 {
		t.Errorf("expected reload to pick up 2 groups, got %d", len(groups))
	}
}

func TestGroupLoader_ServesCacheWhenFileVanishes(t *testing.T) {
	path := writeRoster(t, validRoster)
	loader := NewGroupLoader(path, zerolog.Nop())

	if _, err := loader.Groups(); err != nil {
		t.Fatalf("first load: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove roster: %v", err)
	}

	groups, err := loader.Groups()
	if err != nil {
		t.Fatalf("expected cached groups after file removal, got %v", err)
	}
	if len(groups) != 1 {
		t.Errorf("expected cached roster, got %d groups", len(groups))
	}
}
