package dictionary_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ladder/internal/adapters/dictionary"
	"go.trai.ch/ladder/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "one word per line",
			input: "hit\nhot\ndot\n",
			want:  []string{"hit", "hot", "dot"},
		},
		{
			name:  "trims whitespace and skips blank lines",
			input: "  hit \n\n\t\nhot\r\n   \n",
			want:  []string{"hit", "hot"},
		},
		{
			name:  "lowercases and keeps first occurrence",
			input: "Hot\nhit\nHOT\nhot\n",
			want:  []string{"hot", "hit"},
		},
		{
			name:  "mixed lengths are kept",
			input: "a\nab\nabc\n",
			want:  []string{"a", "ab", "abc"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dictionary.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_LongLine(t *testing.T) {
	long := strings.Repeat("a", 100_000)
	got, err := dictionary.Parse(strings.NewReader("ab\n" + long + "\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", long}, got)
}

func TestLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("hit\nhot\n"), 0o600))

	words, err := dictionary.NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"hit", "hot"}, words)
}

func TestLoader_Load_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	_, err := dictionary.NewLoader().Load(path)
	require.ErrorContains(t, err, domain.ErrDictionaryRead.Error())
	assert.True(t, errors.Is(err, os.ErrNotExist))

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, path, zErr.Metadata()["path"])
}

func TestLoader_Load_Directory(t *testing.T) {
	_, err := dictionary.NewLoader().Load(t.TempDir())
	require.ErrorContains(t, err, domain.ErrDictionaryRead.Error())
}
