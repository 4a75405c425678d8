package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/osckit/oscaddr/pkg/address"
	"github.com/osckit/oscaddr/pkg/errors"
	"github.com/osckit/oscaddr/pkg/logging"
	"github.com/osckit/oscaddr/pkg/pattern"
)

var log = logging.GetLogger("manifest")

// Manifest names the concrete endpoints and glob-style routes of a
// control surface. Endpoints must satisfy the strict address grammar,
// routes the pattern grammar.
type Manifest struct {
	Endpoints map[string]string `toml:"endpoints" yaml:"endpoints" json:"endpoints"`
	Routes    map[string]string `toml:"routes" yaml:"routes" json:"routes"`
}

// Issue describes one manifest entry whose value failed to parse.
type Issue struct {
	Name  string
	Kind  string // "endpoint" or "route"
	Value string
	Err   error
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %q (%s): %v", i.Kind, i.Name, i.Value, i.Err)
}

// Load reads and parses a manifest file. The format is chosen by
// extension: .toml, .yaml or .yml.
func Load(path string) (*Manifest, error) {
	logger := log.With().Str("path", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestLoad, "failed to read manifest")
	}

	var m Manifest
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrap(err, errors.ErrManifestParse, "failed to parse TOML").
				WithDetail("path", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, errors.Wrap(err, errors.ErrManifestParse, "failed to parse YAML").
				WithDetail("path", path)
		}
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported manifest format %q", ext).
			WithDetail("path", path)
	}

	logger.Debug().
		Int("endpoints", len(m.Endpoints)).
		Int("routes", len(m.Routes)).
		Msg("manifest loaded")

	return &m, nil
}

// Validate runs every endpoint through the address grammar and every
// route through the pattern grammar, and reports each entry that was
// rejected. Issues are ordered by kind then name.
func (m *Manifest) Validate() []Issue {
	var issues []Issue

	for _, name := range sortedKeys(m.Endpoints) {
		value := m.Endpoints[name]
		if _, err := address.Parse(value); err != nil {
			issues = append(issues, Issue{Name: name, Kind: "endpoint", Value: value, Err: err})
		}
	}

	for _, name := range sortedKeys(m.Routes) {
		value := m.Routes[name]
		if _, err := pattern.Parse(value); err != nil {
			issues = append(issues, Issue{Name: name, Kind: "route", Value: value, Err: err})
		}
	}

	return issues
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
