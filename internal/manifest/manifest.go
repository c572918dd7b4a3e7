// Package manifest tracks the files pyinit deploys into a project so that
// re-initialization can tell template-managed files apart from files the
// user created or modified afterwards.
package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pyforge/pyinit/internal/defs"
)

// Provenance describes who owns a tracked file.
type Provenance string

const (
	// TemplateManaged files were written from templates and are safe to overwrite.
	TemplateManaged Provenance = "template_managed"
	// UserCreated files existed before deployment and are never touched.
	UserCreated Provenance = "user_created"
	// UserModified files were template-managed but changed by the user.
	UserModified Provenance = "user_modified"
)

// Entry records a single deployed file.
type Entry struct {
	Provenance Provenance `json:"provenance"`
	Hash       string     `json:"hash"`
	TrackedAt  string     `json:"tracked_at"`
}

// Manifest is the on-disk manifest document.
type Manifest struct {
	Version    string           `json:"version"`
	DeployedAt string           `json:"deployed_at"`
	Entries    map[string]Entry `json:"entries"`
}

// Manager loads, mutates, and persists the project manifest.
type Manager interface {
	// Load reads the manifest from root, creating an empty one when absent.
	Load(root string) (*Manifest, error)
	// Manifest returns the manifest loaded by Load, or nil.
	Manifest() *Manifest
	// Track records a file with its provenance and content hash.
	Track(relPath string, p Provenance, hash string) error
	// GetEntry looks up a tracked file by relative path.
	GetEntry(relPath string) (Entry, bool)
	// Save writes the manifest back to disk.
	Save() error
}

// manager is the concrete Manager implementation.
type manager struct {
	root     string
	manifest *Manifest
}

// NewManager creates an empty Manager. Call Load before any other method.
func NewManager() Manager {
	return &manager{}
}

// Load reads .pyinit/manifest.json under root. A missing file yields a
// fresh manifest; a corrupt file is an error.
func (m *manager) Load(root string) (*Manifest, error) {
	m.root = filepath.Clean(root)

	path := m.path()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		m.manifest = &Manifest{Entries: make(map[string]Entry)}
		return m.manifest, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var mf Manifest
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if mf.Entries == nil {
		mf.Entries = make(map[string]Entry)
	}
	m.manifest = &mf
	return m.manifest, nil
}

// Manifest returns the loaded manifest, or nil when Load has not run.
func (m *manager) Manifest() *Manifest {
	return m.manifest
}

// Track records relPath with the given provenance and hash.
func (m *manager) Track(relPath string, p Provenance, hash string) error {
	if m.manifest == nil {
		return fmt.Errorf("manifest not loaded")
	}
	m.manifest.Entries[filepath.ToSlash(relPath)] = Entry{
		Provenance: p,
		Hash:       hash,
		TrackedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	return nil
}

// GetEntry looks up a tracked file.
func (m *manager) GetEntry(relPath string) (Entry, bool) {
	if m.manifest == nil {
		return Entry{}, false
	}
	e, ok := m.manifest.Entries[filepath.ToSlash(relPath)]
	return e, ok
}

// Save writes the manifest to .pyinit/manifest.json with stable key order.
func (m *manager) Save() error {
	if m.manifest == nil {
		return fmt.Errorf("manifest not loaded")
	}

	dir := filepath.Dir(m.path())
	if err := os.MkdirAll(dir, defs.DirPerm); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}

	data, err := json.MarshalIndent(m.manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(m.path(), append(data, '\n'), defs.FilePerm); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

func (m *manager) path() string {
	return filepath.Join(m.root, defs.PyinitDir, defs.ManifestJSON)
}

// HashBytes returns the hex-encoded sha256 of content.
func HashBytes(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
