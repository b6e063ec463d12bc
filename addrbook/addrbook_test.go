package addrbook

import (
	"errors"
	"testing"

	"github.com/mkohlhaas/base58addr/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openBook(t *testing.T) *Book {
	t.Helper()
	book, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { book.Close() })
	return book
}

func mustAddress(t *testing.T, s string) wallet.Address {
	t.Helper()
	addr, err := wallet.DecodeAddress(s)
	require.NoError(t, err)
	return addr
}

func TestPutGet(t *testing.T) {
	book := openBook(t)
	addr := mustAddress(t, "132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM")

	require.NoError(t, book.Put("alice", addr))
	got, err := book.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, addr, got)

	other := mustAddress(t, "33iFwdLuRpW1uK1RTRqsoi8rR4NpDzk66k")
	require.NoError(t, book.Put("alice", other))
	got, err = book.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, other, got)
}

func TestGetMissing(t *testing.T) {
	book := openBook(t)
	_, err := book.Get("nobody")
	assert.True(t, errors.Is(err, ErrNotFound), "%v", err)
	assert.True(t, errors.Is(book.Delete("nobody"), ErrNotFound))
}

func TestEmptyLabel(t *testing.T) {
	book := openBook(t)
	assert.Error(t, book.Put(" ", mustAddress(t, "132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM")))
}

func TestListAndDelete(t *testing.T) {
	book := openBook(t)
	entries, err := book.List()
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, book.Put("carol", mustAddress(t, "mqkhEMH6NCeYjFybv7pvFC22MFeaNT9AQC")))
	require.NoError(t, book.Put("alice", mustAddress(t, "132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM")))
	require.NoError(t, book.Put("bob", mustAddress(t, "33iFwdLuRpW1uK1RTRqsoi8rR4NpDzk66k")))

	entries, err = book.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "alice", entries[0].Label)
	assert.Equal(t, "bob", entries[1].Label)
	assert.Equal(t, "carol", entries[2].Label)
	assert.Equal(t, "mqkhEMH6NCeYjFybv7pvFC22MFeaNT9AQC", entries[2].Address.String())

	require.NoError(t, book.Delete("bob"))
	entries, err = book.List()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	_, err = book.Get("bob")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestReopen(t *testing.T) {
	dir := t.TempDir()
	book, err := Open(dir)
	require.NoError(t, err)
	addr := mustAddress(t, "1QJVDzdqb1VpbDK7uDeyVXy9mR27CJiyhY")
	require.NoError(t, book.Put("miner", addr))
	require.NoError(t, book.Close())

	book, err = Open(dir)
	require.NoError(t, err)
	defer book.Close()
	got, err := book.Get("miner")
	require.NoError(t, err)
	assert.Equal(t, addr, got)
}

func TestOpenHeldDirectory(t *testing.T) {
	dir := t.TempDir()
	book, err := Open(dir)
	require.NoError(t, err)
	defer book.Close()
	addr := mustAddress(t, "132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM")
	require.NoError(t, book.Put("alice", addr))

	_, err = Open(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening address book")

	got, err := book.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, addr, got)
}
