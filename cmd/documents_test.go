package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/resumesense/internal/textextract"
)

func TestRequireSucceeded(t *testing.T) {
	t.Run("keeps the successful documents", func(t *testing.T) {
		docs := []document{
			{Path: "a.pdf", Err: errors.New("broken")},
			{Path: "b.txt"},
		}

		ok, failed, err := requireSucceeded(docs)
		require.NoError(t, err)
		assert.Equal(t, 1, failed)
		require.Len(t, ok, 1)
		assert.Equal(t, "b.txt", ok[0].Path)
	})

	t.Run("fails when every document failed", func(t *testing.T) {
		docs := []document{
			{Path: "a.pdf", Err: fmt.Errorf("a.pdf: %w", textextract.ErrNotFound)},
			{Path: "b.pdf", Err: errors.New("broken")},
		}

		ok, failed, err := requireSucceeded(docs)
		assert.Empty(t, ok)
		assert.Equal(t, 2, failed)
		assert.ErrorIs(t, err, errNothingProcessed)
		assert.ErrorIs(t, err, textextract.ErrNotFound)
		assert.Equal(t, "check the file path", errorHint(err))
	})

	t.Run("fails without documents", func(t *testing.T) {
		_, _, err := requireSucceeded(nil)
		assert.ErrorIs(t, err, errNothingProcessed)
	})
}
