package skinvault

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"skinvault/savefile"
)

var (
	// ErrRosterInvalid means the built-in character table is malformed.
	// Nothing may run past a failed roster load.
	ErrRosterInvalid = errors.New("skinvault: invalid character roster")

	// ErrCharacterNotFound means no present character has the given name
	ErrCharacterNotFound = errors.New("skinvault: character not found")
)

// Character is one validated roster entry.
type Character struct {
	ID      int
	Name    string
	Offset  int64
	Present bool
}

// rosterEntry mirrors the table as shipped: offsets are carried as hex
// strings and parsed at load time.
type rosterEntry struct {
	id      int
	name    string
	offset  string
	present bool
}

var rosterTable = []rosterEntry{
	{1, "ember", "0x0040", true},
	{2, "gale", "0x0080", true},
	{3, "torrent", "0x00c0", true},
	{4, "boulder", "0x0100", true},
	{5, "volt", "0x0140", true},
	{6, "frost", "0x0180", true},
	{7, "fang", "0x01c0", true},
	{8, "viper", "0x0200", true},
	{9, "", "0x0240", false}, // reserved roster slot, region still present in the save
	{10, "nova", "0x0280", true},
}

// Roster is the validated character table.
type Roster struct {
	characters []Character
	byName     map[string]Character
}

// LoadRoster validates the built-in character table in full and
// returns it. Any malformed entry anywhere in the table fails the
// load, not just uses of that entry.
func LoadRoster() (*Roster, error) {
	return newRoster(rosterTable)
}

func newRoster(entries []rosterEntry) (*Roster, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrRosterInvalid)
	}

	r := &Roster{
		byName: make(map[string]Character, len(entries)),
	}

	ids := make([]int64, 0, len(entries))
	offsets := make([]int64, 0, len(entries))

	for _, e := range entries {
		if e.present && e.name == "" {
			return nil, fmt.Errorf("%w: entry %d is present but unnamed", ErrRosterInvalid, e.id)
		}

		offset, err := strconv.ParseInt(e.offset, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d offset %q is not a number", ErrRosterInvalid, e.id, e.offset)
		}

		c := Character{ID: e.id, Name: e.name, Offset: offset, Present: e.present}
		r.characters = append(r.characters, c)
		ids = append(ids, int64(e.id))
		offsets = append(offsets, offset)

		if e.present {
			r.byName[strings.ToLower(e.name)] = c
		}
	}

	if err := contiguous(ids, 1); err != nil {
		return nil, fmt.Errorf("%w: character ids: %v", ErrRosterInvalid, err)
	}
	if err := contiguous(offsets, savefile.CharacterStride); err != nil {
		return nil, fmt.Errorf("%w: base offsets: %v", ErrRosterInvalid, err)
	}

	return r, nil
}

// contiguous checks that values, sorted ascending, step uniformly by
// distance. Duplicates show up as a step of zero.
func contiguous(values []int64, distance int64) error {
	sorted := append([]int64(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for i := 1; i < len(sorted); i++ {
		if gap := sorted[i] - sorted[i-1]; gap != distance {
			return fmt.Errorf("values %d and %d are %d apart, expected %d", sorted[i-1], sorted[i], gap, distance)
		}
	}

	return nil
}

// Lookup finds a present character by name. Names are matched exactly
// against the lowercase roster; callers normalize input first.
func (r *Roster) Lookup(name string) (Character, error) {
	c, ok := r.byName[name]
	if !ok {
		return Character{}, fmt.Errorf("%w: %q", ErrCharacterNotFound, name)
	}
	return c, nil
}

// Offsets returns every character's base offset in table order,
// reserved entries included, for whole-file validation.
func (r *Roster) Offsets() []int64 {
	offsets := make([]int64, len(r.characters))
	for i, c := range r.characters {
		offsets[i] = c.Offset
	}
	return offsets
}

// Characters returns the roster entries in table order.
func (r *Roster) Characters() []Character {
	return append([]Character(nil), r.characters...)
}
