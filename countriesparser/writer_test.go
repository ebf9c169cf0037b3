package countriesparser

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arun664/government-spending-explorer/countriesparser/entities"
)

func TestWriteMappingJSON(t *testing.T) {
	entries := []entities.Country{
		{Code: "FR", Name: "France"},
		{Code: "US", Name: "United States of America"},
	}

	path := filepath.Join(t.TempDir(), "country-mapping.json")
	if err := WriteMappingJSON(path, BuildMapping(entries)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	var decoded struct {
		NameToCode map[string]string `json:"nameToCode"`
		CodeToName map[string]string `json:"codeToName"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if decoded.NameToCode["France"] != "FR" {
		t.Errorf("Expected nameToCode France→FR, got %q", decoded.NameToCode["France"])
	}
	if decoded.NameToCode["United States of America"] != "US" {
		t.Errorf("Expected nameToCode United States of America→US, got %q", decoded.NameToCode["United States of America"])
	}
	if decoded.CodeToName["FR"] != "France" {
		t.Errorf("Expected codeToName FR→France, got %q", decoded.CodeToName["FR"])
	}
	if decoded.CodeToName["US"] != "United States of America" {
		t.Errorf("Expected codeToName US→United States of America, got %q", decoded.CodeToName["US"])
	}

	// 2-space indentation
	if !strings.Contains(string(raw), "\n  \"nameToCode\"") {
		t.Error("Expected 2-space indented nameToCode key")
	}
}

func TestWriteMappingJSONInverseProperty(t *testing.T) {
	entries := []entities.Country{
		{Code: "AL", Name: "Albania"},
		{Code: "CI", Name: "Côte d'Ivoire"},
		{Code: "FR", Name: "France"},
		{Code: "ZA", Name: "South Africa"},
	}

	path := filepath.Join(t.TempDir(), "country-mapping.json")
	if err := WriteMappingJSON(path, BuildMapping(entries)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	var decoded struct {
		NameToCode map[string]string `json:"nameToCode"`
		CodeToName map[string]string `json:"codeToName"`
	}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if len(decoded.NameToCode) != len(decoded.CodeToName) {
		t.Fatalf("Expected tables of equal size, got %d and %d", len(decoded.NameToCode), len(decoded.CodeToName))
	}
	for code, name := range decoded.CodeToName {
		if decoded.NameToCode[name] != code {
			t.Errorf("Expected nameToCode[%q] = %q, got %q", name, code, decoded.NameToCode[name])
		}
	}
}

func TestWriteMappingJSONKeyOrder(t *testing.T) {
	// Both tables must be emitted ascending by code, so nameToCode keys
	// follow code order, not label order
	entries := []entities.Country{
		{Code: "AL", Name: "Zebra Republic"},
		{Code: "ZA", Name: "Aardvark Kingdom"},
	}

	path := filepath.Join(t.TempDir(), "country-mapping.json")
	if err := WriteMappingJSON(path, BuildMapping(entries)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	content := string(raw)

	zebraIdx := strings.Index(content, "Zebra Republic")
	aardvarkIdx := strings.Index(content, "Aardvark Kingdom")
	if zebraIdx < 0 || aardvarkIdx < 0 {
		t.Fatal("Expected both labels in output")
	}
	if zebraIdx > aardvarkIdx {
		t.Error("Expected nameToCode emitted in code order (AL before ZA)")
	}
}

func TestWriteMappingJSONPreservesNonASCII(t *testing.T) {
	entries := []entities.Country{
		{Code: "CI", Name: "Côte d'Ivoire"},
		{Code: "TR", Name: "Türkiye"},
	}

	path := filepath.Join(t.TempDir(), "country-mapping.json")
	if err := WriteMappingJSON(path, BuildMapping(entries)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	content := string(raw)

	if !strings.Contains(content, "Côte d'Ivoire") {
		t.Error("Expected literal Côte d'Ivoire in output")
	}
	if !strings.Contains(content, "Türkiye") {
		t.Error("Expected literal Türkiye in output")
	}
	if strings.Contains(content, "\\u") {
		t.Errorf("Expected no unicode escapes in output, got: %s", content)
	}
}

func TestWriteMappingJSONOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "country-mapping.json")
	if err := os.WriteFile(path, []byte("stale artifact"), 0644); err != nil {
		t.Fatalf("Failed to seed stale file: %v", err)
	}

	entries := []entities.Country{{Code: "FR", Name: "France"}}
	if err := WriteMappingJSON(path, BuildMapping(entries)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if strings.Contains(string(raw), "stale artifact") {
		t.Error("Expected previous artifact to be fully replaced")
	}
}
