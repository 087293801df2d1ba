// Package userdata persists the mutable user state, favorites and
// usage statistics, as versioned JSON documents in a per-user
// application-data directory. It isolates all user-state I/O from the
// rest of the engine.
//
// A missing state file is not an error: the user simply has no saved
// state yet. A file that exists but fails to parse is an error, and the
// engine proceeds with empty state. Names unknown to the catalog are
// silently dropped on load, since the catalog may have changed between
// saves.
package userdata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/AstroAir/lucide-gallery/pkg/constants"
	"github.com/AstroAir/lucide-gallery/pkg/errors"
	"github.com/AstroAir/lucide-gallery/pkg/logging"
)

// favoritesDocument is the wire shape of the favorites file.
type favoritesDocument struct {
	Favorites []string `json:"favorites"`
	Version   string   `json:"version"`
	Timestamp string   `json:"timestamp"`
}

// usageDocument is the wire shape of the usage file.
type usageDocument struct {
	Usage     map[string]int `json:"usage"`
	Recent    []string       `json:"recent"`
	Version   string         `json:"version"`
	Timestamp string         `json:"timestamp"`
}

// Gateway reads and writes the user-state files.
type Gateway struct {
	dir   string
	known func(name string) bool
	now   func() time.Time
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithDir overrides the data directory used for default paths.
func WithDir(dir string) GatewayOption {
	return func(g *Gateway) {
		g.dir = dir
	}
}

// WithKnownFilter sets the catalog membership predicate used to drop
// stale names on load.
func WithKnownFilter(known func(name string) bool) GatewayOption {
	return func(g *Gateway) {
		g.known = known
	}
}

// WithClock overrides the timestamp source. Used in tests.
func WithClock(now func() time.Time) GatewayOption {
	return func(g *Gateway) {
		g.now = now
	}
}

// NewGateway creates a gateway with the given options.
func NewGateway(opts ...GatewayOption) *Gateway {
	g := &Gateway{now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// DataDir returns the directory holding the default state files.
func (g *Gateway) DataDir() (string, error) {
	if g.dir != "" {
		return g.dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", errors.NewConfigError("userdata", "cannot resolve user config directory", err)
	}
	return filepath.Join(base, constants.AppDirName), nil
}

// FavoritesPath returns the default favorites file path.
func (g *Gateway) FavoritesPath() (string, error) {
	dir, err := g.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.FavoritesFileName), nil
}

// UsagePath returns the default usage file path.
func (g *Gateway) UsagePath() (string, error) {
	dir, err := g.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, constants.UsageFileName), nil
}

// LoadFavorites reads the ordered favorites list from path, or from the
// default location when path is empty. A missing file yields an empty
// list and no error.
func (g *Gateway) LoadFavorites(path string) ([]string, error) {
	path, err := g.resolve(path, g.FavoritesPath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var doc favoritesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}

	return g.keepKnown(doc.Favorites), nil
}

// SaveFavorites writes the ordered favorites list to path, or to the
// default location when path is empty. The file is overwritten
// unconditionally; the document is fully serialized before any write is
// attempted.
func (g *Gateway) SaveFavorites(path string, favorites []string) error {
	path, err := g.resolve(path, g.FavoritesPath)
	if err != nil {
		return err
	}

	doc := favoritesDocument{
		Favorites: favorites,
		Version:   constants.StateVersion,
		Timestamp: g.now().Format(time.RFC3339),
	}
	if doc.Favorites == nil {
		doc.Favorites = []string{}
	}

	return g.write(path, doc)
}

// LoadUsage reads the usage-count map and recent list from path, or the
// default location when path is empty. A missing file yields empty
// state and no error.
func (g *Gateway) LoadUsage(path string) (map[string]int, []string, error) {
	path, err := g.resolve(path, g.UsagePath)
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return map[string]int{}, nil, nil
	}
	if err != nil {
		return nil, nil, errors.WrapIO("read", path, err)
	}

	var doc usageDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, errors.WrapParse("json", path, err)
	}

	counts := make(map[string]int, len(doc.Usage))
	for name, count := range doc.Usage {
		if g.known != nil && !g.known(name) {
			continue
		}
		counts[name] = count
	}

	return counts, g.keepKnown(doc.Recent), nil
}

// SaveUsage writes the usage-count map and recent list to path, or to
// the default location when path is empty.
func (g *Gateway) SaveUsage(path string, counts map[string]int, recent []string) error {
	path, err := g.resolve(path, g.UsagePath)
	if err != nil {
		return err
	}

	doc := usageDocument{
		Usage:     counts,
		Recent:    recent,
		Version:   constants.StateVersion,
		Timestamp: g.now().Format(time.RFC3339),
	}
	if doc.Usage == nil {
		doc.Usage = map[string]int{}
	}
	if doc.Recent == nil {
		doc.Recent = []string{}
	}

	return g.write(path, doc)
}

// resolve substitutes the default path when the caller gave none.
func (g *Gateway) resolve(path string, fallback func() (string, error)) (string, error) {
	if path != "" {
		return path, nil
	}
	return fallback()
}

// write serializes doc and overwrites path, creating parent directories
// as needed.
func (g *Gateway) write(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.WrapParse("json", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}

	logging.Debug().Str("path", path).Msg("user state saved")
	return nil
}

// keepKnown drops names the catalog no longer knows, preserving order.
func (g *Gateway) keepKnown(names []string) []string {
	if g.known == nil {
		out := make([]string, len(names))
		copy(out, names)
		return out
	}
	var out []string
	for _, name := range names {
		if g.known(name) {
			out = append(out, name)
		}
	}
	return out
}
