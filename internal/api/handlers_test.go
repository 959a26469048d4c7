package api

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
)

func definitionHandler(t *testing.T, fileContent string) *Handler {
	t.Helper()
	path := filepath.Join(t.TempDir(), "definitions.json")
	if fileContent != "" {
		if err := os.WriteFile(path, []byte(fileContent), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return &Handler{definitionsPath: path}
}

func getDefinition(t *testing.T, h *Handler, word string) (string, *string) {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/definition/{word}", h.Definition)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/definition/"+word, nil))

	var resp struct {
		OK         bool    `json:"ok"`
		Word       string  `json:"word"`
		Definition *string `json:"definition"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v (%s)", err, rec.Body.String())
	}
	if !resp.OK {
		t.Fatalf("expected ok:true, got %s", rec.Body.String())
	}
	return resp.Word, resp.Definition
}

func TestDefinitionLoadsFileOnFirstCall(t *testing.T) {
	h := definitionHandler(t, `{"cat":"a small domesticated carnivorous mammal"}`)
	if h.definitions != nil {
		t.Fatal("definitions should not be loaded before the first request")
	}
	_, def := getDefinition(t, h, "cat")
	if def == nil || *def != "a small domesticated carnivorous mammal" {
		t.Fatalf("expected cat's definition, got %v", def)
	}
	if h.definitions == nil {
		t.Error("definitions should be cached after the first request")
	}
}

func TestDefinitionEmptyStringTreatedAsMissing(t *testing.T) {
	h := definitionHandler(t, `{"cat":"a small cat","dog":""}`)
	if _, def := getDefinition(t, h, "dog"); def != nil {
		t.Errorf("an empty-string entry must render definition:null, got %q", *def)
	}
	if _, def := getDefinition(t, h, "missing"); def != nil {
		t.Errorf("an absent entry must render definition:null, got %q", *def)
	}
}

func TestDefinitionMissingFileYieldsNullDefinitions(t *testing.T) {
	h := definitionHandler(t, "")
	word, def := getDefinition(t, h, "cat")
	if word != "cat" || def != nil {
		t.Errorf("expected {word:cat, definition:null}, got word=%q def=%v", word, def)
	}
}
