package textextract

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLBackend(t *testing.T) {
	page := `<!DOCTYPE html>
<html>
  <head><title>Careers</title><style>body { color: red }</style></head>
  <body>
    <h1>Senior   Go Engineer</h1>
    <script>track("view")</script>
    <p>We are looking for a <b>Go</b> developer
       with Docker experience.</p>
    <ul><li>Kubernetes</li><li>PostgreSQL</li></ul>
  </body>
</html>`

	e := New(nil)
	text, err := e.Extract(context.Background(), []byte(page), KindHTML)
	require.NoError(t, err)

	assert.Equal(t, "Senior Go Engineer\n\nWe are looking for a Go developer with Docker experience.\n\nKubernetes\n\nPostgreSQL", text)
	assert.NotContains(t, text, "track")
	assert.NotContains(t, text, "Careers")
}
