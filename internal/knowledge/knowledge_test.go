package knowledge

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	b, err := LoadOrCreate(dir, nil)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if b.Len() != 3 {
		t.Errorf("default base has %d entries, want 3", b.Len())
	}
	for _, key := range []string{"hemoglobin", "wbc", "glucose"} {
		if _, ok := b.Lookup(key); !ok {
			t.Errorf("default base missing %q", key)
		}
	}
	// the generated file must be reloadable as-is
	if _, err := Load(filepath.Join(dir, FileName), nil); err != nil {
		t.Errorf("reloading generated file: %v", err)
	}
}

func TestLoadOrCreateKeepsExistingFile(t *testing.T) {
	dir := t.TempDir()
	custom := `{
	  "creatinine": {
	    "description": "Creatinine reflects kidney filtration.",
	    "high_causes": ["Kidney disease"],
	    "recommendations": {"high": ["Consult a doctor"]}
	  }
	}`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}
	b, err := LoadOrCreate(dir, nil)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if b.Len() != 1 {
		t.Errorf("base has %d entries, want the 1 custom entry", b.Len())
	}
	if _, ok := b.Lookup("hemoglobin"); ok {
		t.Error("defaults overwrote an existing knowledge file")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{"hemoglobin": `},
		{"missing description", `{"hemoglobin": {"recommendations": {}}}`},
		{"wrong recommendation shape", `{"hemoglobin": {"description": "x", "recommendations": {"low": "not a list"}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".json")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path, nil); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLookupNormalizesKeys(t *testing.T) {
	dir := t.TempDir()
	b, err := LoadOrCreate(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"Hemoglobin", "HEMOGLOBIN", " hemoglobin "} {
		if _, ok := b.Lookup(name); !ok {
			t.Errorf("Lookup(%q): no match", name)
		}
	}
	if _, ok := b.Lookup("unknown parameter"); ok {
		t.Error("Lookup of unknown parameter succeeded")
	}
}
