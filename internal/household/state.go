package household

import (
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Role is an authorization principal for resolving attention items.
type Role string

const (
	RoleOwner Role = "Owner"
	RoleAdult Role = "Adult"
	RoleTeen  Role = "Teen"
	RoleGuest Role = "Guest"
	RoleAgent Role = "Agent"
)

var roles = []Role{RoleOwner, RoleAdult, RoleTeen, RoleGuest, RoleAgent}

// ParseRole canonicalizes a household role identifier. Matching is
// case-insensitive. Returns ErrRoleRequired for an empty value and
// ErrInvalidRole for anything outside the five known roles.
func ParseRole(s string) (Role, error) {
	if strings.TrimSpace(s) == "" {
		return "", ErrRoleRequired
	}
	for _, r := range roles {
		if strings.EqualFold(s, string(r)) {
			return r, nil
		}
	}
	return "", ErrInvalidRole
}

// State holds all weave entities for one process. It is constructed
// explicitly and passed by reference into handlers, never kept as a package
// global, so tests get isolated instances and a persistence layer can be
// swapped in later.
//
// Everything lives in memory for the process lifetime; nothing is evicted.
// That includes idempotency records, whose unbounded retention is a known,
// deliberately unfixed limitation at the current scale.
//
// A single mutex guards every read-modify-write sequence so each store
// operation is atomic with respect to concurrent requests.
type State struct {
	mu sync.Mutex

	rituals     map[string]*Ritual
	ritualOrder []string
	runs        map[string]*Run
	attention   map[string]*AttentionItem
	automations map[string]*Automation
	ledger      map[string]ledgerRecord

	seq int

	now func() time.Time
	log *slog.Logger
}

// NewState returns an empty State. A nil logger disables logging.
func NewState(log *slog.Logger) *State {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &State{
		rituals:     make(map[string]*Ritual),
		runs:        make(map[string]*Run),
		attention:   make(map[string]*AttentionItem),
		automations: make(map[string]*Automation),
		ledger:      make(map[string]ledgerRecord),
		now:         time.Now,
		log:         log,
	}
}

// timestamp reads the injected clock. Callers must hold s.mu.
func (s *State) timestamp() Timestamp {
	return NewTimestamp(s.now())
}

// nextSeq returns a monotonically increasing ordinal. Callers must hold s.mu.
func (s *State) nextSeq() int {
	s.seq++
	return s.seq
}
