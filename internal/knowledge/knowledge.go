// Package knowledge loads the curated clinical knowledge base: per-parameter
// descriptions, cause lists, and status-specific recommendation text. The
// base is loaded once at startup and read-only afterwards.
package knowledge

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/medalizer/blood-report-analyzer/constants"
)

// FileName is the knowledge-base file looked up inside the configured
// knowledge directory.
const FileName = "blood_tests_knowledge.json"

// Entry is the curated text for one parameter, keyed by normalized name.
type Entry struct {
	Description     string              `json:"description"`
	LowCauses       []string            `json:"low_causes,omitempty"`
	HighCauses      []string            `json:"high_causes,omitempty"`
	Recommendations map[string][]string `json:"recommendations"`
}

// RecommendationsFor returns the recommendation lines for a metric status, in
// curated order. Unknown statuses yield nil.
func (e Entry) RecommendationsFor(status constants.MetricStatus) []string {
	return e.Recommendations[string(status)]
}

// Base is an immutable knowledge-base mapping.
type Base struct {
	entries map[string]Entry
	logger  *slog.Logger
}

// NormalizeKey turns a display name into a lookup key: lower-case with spaces
// replaced by underscores.
func NormalizeKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// Lookup returns the entry for a parameter name. Absence is an expected
// outcome, not an error.
func (b *Base) Lookup(name string) (Entry, bool) {
	e, ok := b.entries[NormalizeKey(name)]
	return e, ok
}

// Len returns the number of entries.
func (b *Base) Len() int {
	return len(b.entries)
}

// Load reads and validates a knowledge-base JSON file.
func Load(path string, logger *slog.Logger) (*Base, error) {
	if logger == nil {
		logger = slog.Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base: %w", err)
	}
	if err := validate(raw); err != nil {
		return nil, fmt.Errorf("knowledge base %s: %w", path, err)
	}
	var entries map[string]Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("decode knowledge base: %w", err)
	}
	normalized := make(map[string]Entry, len(entries))
	for k, v := range entries {
		normalized[NormalizeKey(k)] = v
	}
	logger.Info("knowledge base loaded", "path", path, "entries", len(normalized))
	return &Base{entries: normalized, logger: logger}, nil
}

// LoadOrCreate loads the knowledge base from dir, generating and persisting
// the built-in default set when no file exists yet.
func LoadOrCreate(dir string, logger *slog.Logger) (*Base, error) {
	if logger == nil {
		logger = slog.Default()
	}
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat knowledge base: %w", err)
		}
		if err := writeDefault(path); err != nil {
			return nil, err
		}
		logger.Info("knowledge base missing, wrote defaults", "path", path)
	}
	return Load(path, logger)
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create knowledge dir: %w", err)
	}
	buf, err := json.MarshalIndent(defaultEntries(), "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write default knowledge base: %w", err)
	}
	return nil
}

// validate checks the raw file against the knowledge-base schema before
// decoding, so a hand-edited file fails loudly at startup instead of
// producing half-empty advice.
func validate(raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("knowledge.schema.json", strings.NewReader(schemaJSON)); err != nil {
		panic(err)
	}
	return c.MustCompile("knowledge.schema.json")
}

const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "required": ["description", "recommendations"],
    "properties": {
      "description": {"type": "string", "minLength": 1},
      "low_causes": {"type": "array", "items": {"type": "string"}},
      "high_causes": {"type": "array", "items": {"type": "string"}},
      "recommendations": {
        "type": "object",
        "properties": {
          "low": {"type": "array", "items": {"type": "string"}},
          "high": {"type": "array", "items": {"type": "string"}}
        },
        "additionalProperties": false
      }
    },
    "additionalProperties": false
  }
}`
