// Package staging implements the staging area (spec §4.4): an ordered
// additions map and a removals set, persisted as a single YAML record at
// .gitlet/index. YAML (via gopkg.in/yaml.v3, as used for layered
// configuration in the reference corpus's gitsemver program) is a natural
// fit for this: it is the one on-disk record in this repository that is a
// small, human-diffable, ordered structure rather than something whose
// exact byte layout must feed a hash function.
package staging

import (
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mvargas/gitlet-go/internal/constants"
)

// Entry is one staged addition.
type Entry struct {
	Path string `yaml:"path"`
	OID  string `yaml:"oid"`
}

// record is the YAML-serializable shape of the staging area.
type record struct {
	Additions []Entry  `yaml:"additions"`
	Removals  []string `yaml:"removals"`
}

// Staging is the in-memory staging area for one repository.
type Staging struct {
	path      string
	additions map[string]string
	removals  map[string]bool
}

// Load reads the staging area from indexPath, returning an empty one if
// the file does not yet exist (fresh repositories, right after init).
func Load(indexPath string) (*Staging, error) {
	s := &Staging{
		path:      indexPath,
		additions: make(map[string]string),
		removals:  make(map[string]bool),
	}

	data, err := os.ReadFile(indexPath)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}

	var rec record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	for _, a := range rec.Additions {
		s.additions[a.Path] = a.OID
	}
	for _, p := range rec.Removals {
		s.removals[p] = true
	}
	return s, nil
}

// Save persists the staging area as a single YAML record.
func (s *Staging) Save() error {
	rec := record{
		Additions: s.Additions(),
		Removals:  s.Removals(),
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, constants.FilePerms)
}

// StageAdd stages path for addition. If path was staged for removal, the
// removal is dropped instead (spec §4.4 stage_add).
func (s *Staging) StageAdd(path, oid string) {
	if s.removals[path] {
		delete(s.removals, path)
		return
	}
	s.additions[path] = oid
}

// StageRm stages path for removal, dropping any pending addition.
func (s *Staging) StageRm(path string) {
	delete(s.additions, path)
	s.removals[path] = true
}

func (s *Staging) UnstageAdd(path string) { delete(s.additions, path) }
func (s *Staging) UnstageRm(path string)  { delete(s.removals, path) }

func (s *Staging) Clear() {
	s.additions = make(map[string]string)
	s.removals = make(map[string]bool)
}

func (s *Staging) IsEmpty() bool {
	return len(s.additions) == 0 && len(s.removals) == 0
}

func (s *Staging) ContainsAdd(path string) (string, bool) {
	oid, ok := s.additions[path]
	return oid, ok
}

func (s *Staging) ContainsRm(path string) bool {
	return s.removals[path]
}

// Additions returns staged additions in lexicographic path order.
func (s *Staging) Additions() []Entry {
	paths := make([]string, 0, len(s.additions))
	for p := range s.additions {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	out := make([]Entry, 0, len(paths))
	for _, p := range paths {
		out = append(out, Entry{Path: p, OID: s.additions[p]})
	}
	return out
}

// Removals returns staged removal paths in lexicographic order.
func (s *Staging) Removals() []string {
	paths := make([]string, 0, len(s.removals))
	for p := range s.removals {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
