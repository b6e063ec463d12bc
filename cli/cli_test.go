package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mkohlhaas/base58addr/addrbook"
	"github.com/mkohlhaas/base58addr/bcerror"
	"github.com/mkohlhaas/base58addr/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	err := New().Run(args, &out)
	return out.String(), err
}

func TestAddressEncode(t *testing.T) {
	out, err := run(t, "address", "encode", "162c5ea71c0b23f5b9022ef047c4a86470a5b070")
	require.NoError(t, err)
	assert.Equal(t, "132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM\n", out)

	out, err = run(t, "address", "encode", "--kind", "p2sh", "162c5ea71c0b23f5b9022ef047c4a86470a5b070")
	require.NoError(t, err)
	assert.Equal(t, "33iFwdLuRpW1uK1RTRqsoi8rR4NpDzk66k\n", out)

	_, err = run(t, "address", "encode", "162c5e")
	var lerr *bcerror.InvalidLengthError
	assert.True(t, errors.As(err, &lerr), "%v", err)

	_, err = run(t, "address", "encode", "--kind", "p2wpkh", "162c5ea71c0b23f5b9022ef047c4a86470a5b070")
	assert.Error(t, err)
}

func TestAddressDecode(t *testing.T) {
	out, err := run(t, "address", "decode", "33iFwdLuRpW1uK1RTRqsoi8rR4NpDzk66k")
	require.NoError(t, err)
	assert.Equal(t, "address: 33iFwdLuRpW1uK1RTRqsoi8rR4NpDzk66k\n"+
		"kind:    p2sh\n"+
		"network: main\n"+
		"hash:    162c5ea71c0b23f5b9022ef047c4a86470a5b070\n"+
		"script:  a914162c5ea71c0b23f5b9022ef047c4a86470a5b07087\n", out)

	_, err = run(t, "address", "decode", "132F25rTsvBdp9JzLLBHP5mvGY66i1xdiN")
	assert.True(t, errors.Is(err, bcerror.ErrInvalidChecksum), "%v", err)
}

func TestAddressFromKey(t *testing.T) {
	out, err := run(t, "--network", "test", "address", "fromkey", "03df154ebfcf29d29cc10d5c2565018bce2d9edbab267c31d2caf44a63056cf99f")
	require.NoError(t, err)
	assert.Equal(t, "mqkhEMH6NCeYjFybv7pvFC22MFeaNT9AQC\n", out)

	out, err = run(t, "address", "fromkey", "--uncompressed", "048d5141948c1702e8c95f438815794b87f706a8d4cd2bffad1dc1570971032c9b6042a0431ded2478b5c9cf2d81c124a5e57347a3c63ef0e7716cf54d613ba183")
	require.NoError(t, err)
	assert.Equal(t, "1QJVDzdqb1VpbDK7uDeyVXy9mR27CJiyhY\n", out)

	_, err = run(t, "address", "fromkey", "zz")
	assert.Error(t, err)
}

func TestAddressFromScript(t *testing.T) {
	out, err := run(t, "address", "fromscript", "51")
	require.NoError(t, err)
	assert.Equal(t, "3MaB7QVq3k4pQx3BhsvEADgzQonLSBwMdj\n", out)
}

func TestNetworkFromEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ADDRTOOL_NETWORK", "test")
	var out bytes.Buffer
	require.NoError(t, New().Run([]string{"address", "fromkey", "03df154ebfcf29d29cc10d5c2565018bce2d9edbab267c31d2caf44a63056cf99f"}, &out))
	assert.Equal(t, "mqkhEMH6NCeYjFybv7pvFC22MFeaNT9AQC\n", out.String())
}

func TestUnknownNetwork(t *testing.T) {
	_, err := run(t, "--network", "regtest", "address", "decode", "132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM")
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	out, err := run(t, "key", "decode", "cVt4o7BGAig1UXywgGSmARhxMdzP5qvQsxKkSsc1XEkw3tDTQFpy")
	require.NoError(t, err)
	assert.Equal(t, "network:    test\ncompressed: true\naddress:    mqwpxxvfv3QbM8PU8uBx2jaNt9btQqvQNx\n", out)

	out, err = run(t, "--network", "test", "key", "encode", "f7a1d6cd23bc345dd57abe045d6026f4acf69a637c9e5840e232832bcf4ce58d")
	require.NoError(t, err)
	assert.Equal(t, "cVt4o7BGAig1UXywgGSmARhxMdzP5qvQsxKkSsc1XEkw3tDTQFpy\n", out)

	out, err = run(t, "key", "encode", "--uncompressed", "606c29f8b7fa2ae4192dffde5129852a60021b4e891225a6a9d8e84efd5aa607")
	require.NoError(t, err)
	assert.Equal(t, "5JYkZjmN7PVMjJUfJWfRFwtuXTGB439XV6faajeHPAM9Z2PT2R3\n", out)

	_, err = run(t, "key", "encode", "00")
	assert.True(t, errors.Is(err, bcerror.ErrSecretKeyInvalid), "%v", err)

	_, err = run(t, "key", "decode", "5HpHagT65TZzG1PH3CSu63k8DbpvD8s5ip4nEB3kEsreAbuatmU")
	assert.True(t, errors.Is(err, bcerror.ErrSecretKeyInvalid), "%v", err)
}

func TestScript(t *testing.T) {
	out, err := run(t, "script", "132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM")
	require.NoError(t, err)
	assert.Equal(t, "76a914162c5ea71c0b23f5b9022ef047c4a86470a5b07088ac\n"+
		"OP_DUP OP_HASH160 162c5ea71c0b23f5b9022ef047c4a86470a5b070 OP_EQUALVERIFY OP_CHECKSIG\n", out)
}

func TestBook(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "--book", dir, "book", "add", "alice", "132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM")
	require.NoError(t, err)
	_, err = run(t, "--book", dir, "book", "add", "bob", "mqkhEMH6NCeYjFybv7pvFC22MFeaNT9AQC")
	require.NoError(t, err)

	out, err := run(t, "--book", dir, "book", "list")
	require.NoError(t, err)
	assert.Equal(t, "alice\t132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM\nbob\tmqkhEMH6NCeYjFybv7pvFC22MFeaNT9AQC\n", out)

	out, err = run(t, "--book", dir, "book", "get", "bob")
	require.NoError(t, err)
	assert.Contains(t, out, "network: test\n")

	_, err = run(t, "--book", dir, "book", "rm", "alice")
	require.NoError(t, err)
	_, err = run(t, "--book", dir, "book", "get", "alice")
	assert.True(t, errors.Is(err, addrbook.ErrNotFound), "%v", err)

	_, err = run(t, "--book", dir, "book", "add", "carol", "not-an-address")
	assert.Error(t, err)
}

func TestWithBookClosesBook(t *testing.T) {
	dir := t.TempDir()
	cli := New()
	cli.cfg.BookPath = dir
	addr, err := wallet.DecodeAddress("132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM")
	require.NoError(t, err)

	require.NoError(t, cli.withBook(func(book *addrbook.Book) error {
		return book.Put("alice", addr)
	}))
	err = cli.withBook(func(book *addrbook.Book) error {
		_, err := book.Get("nobody")
		return err
	})
	assert.True(t, errors.Is(err, addrbook.ErrNotFound), "%v", err)

	book, err := addrbook.Open(dir)
	require.NoError(t, err)
	defer book.Close()
	got, err := book.Get("alice")
	require.NoError(t, err)
	assert.Equal(t, addr, got)
}
