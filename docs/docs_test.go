package docs

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	descriptionRe = regexp.MustCompile(`^//\s*@Description\s+(.+)$`)
	routerRe      = regexp.MustCompile(`^//\s*@Router\s+(\S+)\s+\[(\w+)\]$`)
)

type operation struct {
	Description string `json:"description"`
}

// annotatedOperations collects the @Description of every @Router found in the handler files
func annotatedOperations(t *testing.T) map[string]string {
	t.Helper()

	files, err := filepath.Glob(filepath.Join("..", "internal", "*", "handler.go"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	ops := make(map[string]string)
	for _, name := range files {
		f, err := os.Open(name)
		require.NoError(t, err)

		var description string
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if m := descriptionRe.FindStringSubmatch(line); m != nil {
				description = strings.TrimSpace(m[1])
				continue
			}
			if m := routerRe.FindStringSubmatch(line); m != nil {
				ops[m[1]+" "+m[2]] = description
				description = ""
			}
		}
		require.NoError(t, scanner.Err())
		f.Close()
	}
	return ops
}

func TestSwaggerDocument_IsValidJSON(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))
	assert.Equal(t, "/api/v1", doc["basePath"])
}

func TestSwaggerDocument_MatchesHandlerAnnotations(t *testing.T) {
	var doc struct {
		Paths map[string]map[string]operation `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	documented := make(map[string]string)
	for path, methods := range doc.Paths {
		for method, op := range methods {
			documented[path+" "+method] = op.Description
		}
	}

	assert.Equal(t, annotatedOperations(t), documented)
}
