package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/spigell/resumesense/internal/matcher"
	"github.com/spigell/resumesense/internal/resume"
)

func TestRenderFormats(t *testing.T) {
	result := matcher.New().Match(
		"Experienced Python developer with Django.",
		"We need a Python developer with Django and Docker experience.",
	)
	text := func(w io.Writer) error { return writeMatch(w, result) }

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, OutputJSON, result, text))

		var got matcher.Result
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, []string{"docker"}, got.MissingSkills)
		assert.Contains(t, buf.String(), `"overall_score": 0.75`)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, OutputYAML, result, text))

		var got map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.InDelta(t, 0.75, got["skill_score"], 1e-9)
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, render(&buf, OutputText, result, text))

		out := buf.String()
		assert.Contains(t, out, "75.0%")
		assert.Contains(t, out, "docker")
		assert.Contains(t, out, "  - "+matcher.RecommendStrong)
	})
}

func TestWriteRecordUsesPlaceholders(t *testing.T) {
	var buf bytes.Buffer
	r := resume.NewExtractor(resume.DefaultVocabulary()).Extract("")

	require.NoError(t, writeRecord(&buf, "empty.txt", r))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "Resume Analysis: empty.txt"))
	assert.Contains(t, out, notAvailable)
	assert.Contains(t, out, resume.NoSummary)
}
