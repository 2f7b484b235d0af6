package symbols

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ekaraca/vakif-ledger/internal/logging"
)

func newTestStore(t *testing.T, file string) *Store {
	t.Helper()
	store, err := NewStore(file, &logging.MockLogger{})
	require.NoError(t, err)
	return store
}

func TestFallbackSetWhenFileMissing(t *testing.T) {
	store := newTestStore(t, filepath.Join(t.TempDir(), "nope.yaml"))

	assert.True(t, store.Known("THYAO"))
	assert.True(t, store.Known("sise"), "lookup should be case-insensitive")
	assert.False(t, store.Known("ZZZZZ"))
}

func TestLoadFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symbols.yaml")
	content := "symbols:\n  - THYAO\n  - custom\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := newTestStore(t, path)

	assert.True(t, store.Known("THYAO"))
	assert.True(t, store.Known("CUSTOM"), "file entries should be upcased")
	assert.False(t, store.Known("SISE"), "file replaces the built-in set")
}

func TestFind(t *testing.T) {
	store := newTestStore(t, "")

	tests := []struct {
		name string
		text string
		want string
		ok   bool
	}{
		{
			name: "symbol in trade line",
			text: "14:23:01 THYAO 10 ADET",
			want: "THYAO",
			ok:   true,
		},
		{
			name: "punctuation stripped",
			text: "islem: SISE, 5 adet",
			want: "SISE",
			ok:   true,
		},
		{
			name: "lowercase input",
			text: "garan alis emri",
			want: "GARAN",
			ok:   true,
		},
		{
			name: "unknown word of right length",
			text: "QQQQQ 10 ADET",
			ok:   false,
		},
		{
			name: "too short to be a ticker",
			text: "GZ TL ADET",
			ok:   false,
		},
		{
			name: "no symbol at all",
			text: "2025.07.14 valörlü GZ: -100,00 TL",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := store.Find(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddAndSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symbols.yaml")
	require.NoError(t, os.WriteFile(path, []byte("symbols:\n  - THYAO\n"), 0o644))

	store := newTestStore(t, path)
	store.Add("yeni")
	require.NoError(t, store.Save())

	reloaded := newTestStore(t, path)
	assert.True(t, reloaded.Known("YENI"))
	assert.True(t, reloaded.Known("THYAO"))
}

func TestAllSorted(t *testing.T) {
	store := newTestStore(t, "")
	all := store.All()
	require.NotEmpty(t, all)
	assert.IsType(t, []string{}, all)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1], all[i], "All() should be sorted")
	}
}
