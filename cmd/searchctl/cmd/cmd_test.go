package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestStrategyCommand(t *testing.T) {
	out := run(t, "strategy", "tablet")
	assert.Contains(t, out, "search type: keyword-category")
	assert.Contains(t, out, "primary:     electronics")
	assert.Contains(t, out, "fallback:    tablets, smartphones, laptops-computers, audio")
	assert.Contains(t, out, "banner:      Showing related products in electronics")
}

func TestStrategyCommandJSON(t *testing.T) {
	out := run(t, "strategy", "xyzzy", "--json")
	assert.JSONEq(t, `{"primaryCategory":null,"fallbackCategories":[],"searchType":"broad"}`, out)
}

func TestStrategyCommandCategory(t *testing.T) {
	out := run(t, "strategy", "anything", "-c", "electronics")
	assert.Contains(t, out, "search type: category")
	assert.Contains(t, out, "fallback:    smartphones, laptops-computers, audio")
}

func TestKeywordsCommand(t *testing.T) {
	out := run(t, "keywords", "a big laptop", "--json")

	var got map[string][]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"big", "laptop"}, got["keywords"])
	assert.Equal(t, []string{"laptops-computers", "electronics", "computers"}, got["categories"])
}

func TestRelatedCommand(t *testing.T) {
	assert.Equal(t, "smartphones\nlaptops-computers\naudio\n", run(t, "related", "electronics"))
	assert.Equal(t, "", run(t, "related", "unknown"))
}

func TestSearchCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("category") == "smartphones" {
			w.Write([]byte(`{"count":1,"next":null,"previous":null,"results":[{"id":1,"product_name":"Phone X","product_category":{"id":2,"category_name":"Smartphones","slug":"smartphones"}}]}`))
			return
		}
		w.Write([]byte(`{"count":0,"next":null,"previous":null,"results":[]}`))
	}))
	defer srv.Close()

	out := run(t, "search", "phone", "--catalog-url", srv.URL)
	assert.Contains(t, out, "category: smartphones")
	assert.Contains(t, out, "Phone X (smartphones)")
}

func TestCommandRequiresArgument(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"strategy"})
	assert.Error(t, root.Execute())
}
