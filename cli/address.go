package cli

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/mkohlhaas/base58addr/curve/secp256k1"
	"github.com/mkohlhaas/base58addr/network"
	"github.com/mkohlhaas/base58addr/script"
	"github.com/mkohlhaas/base58addr/wallet"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func decodeHex(what, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(err, "%s is not hex", what)
	}
	return b, nil
}

func printAddress(w io.Writer, addr wallet.Address) {
	fmt.Fprintf(w, "address: %s\n", addr)
	fmt.Fprintf(w, "kind:    %s\n", addr.Kind)
	fmt.Fprintf(w, "network: %s\n", addr.Network)
	fmt.Fprintf(w, "hash:    %x\n", addr.Hash)
	fmt.Fprintf(w, "script:  %s\n", addr.ScriptPubkey())
}

func (cli *CommandLine) addressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Encode and decode addresses",
	}

	var kindName string
	encode := &cobra.Command{
		Use:   "encode HASH160_HEX",
		Short: "Encode a 20 byte hash as an address on --network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := network.ParseAddressKind(kindName)
			if err != nil {
				return err
			}
			hash, err := decodeHex("hash", args[0])
			if err != nil {
				return err
			}
			addr, err := wallet.AddressFromHash(kind, cli.cfg.Network, hash)
			if err != nil {
				return errors.Wrap(err, "hash")
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr)
			return nil
		},
	}
	encode.Flags().StringVar(&kindName, "kind", network.PubkeyHash.String(), "address kind: p2pkh or p2sh")

	decode := &cobra.Command{
		Use:   "decode ADDRESS",
		Short: "Show what an address is made of",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := wallet.DecodeAddress(args[0])
			if err != nil {
				return errors.Wrapf(err, "decoding %s", args[0])
			}
			printAddress(cmd.OutOrStdout(), addr)
			return nil
		},
	}

	var uncompressed bool
	fromKey := &cobra.Command{
		Use:   "fromkey PUBKEY_HEX",
		Short: "P2PKH address of a SEC encoded public key on --network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := decodeHex("public key", args[0])
			if err != nil {
				return err
			}
			pk, err := secp256k1.ParsePublicKey(raw)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), wallet.AddressFromKey(cli.cfg.Network, pk, !uncompressed))
			return nil
		},
	}
	fromKey.Flags().BoolVar(&uncompressed, "uncompressed", false, "hash the uncompressed serialization")

	fromScript := &cobra.Command{
		Use:   "fromscript SCRIPT_HEX",
		Short: "P2SH address of a redeem script on --network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := decodeHex("script", args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), wallet.AddressFromScript(cli.cfg.Network, script.Script(raw)))
			return nil
		},
	}

	cmd.AddCommand(encode, decode, fromKey, fromScript)
	return cmd
}

func (cli *CommandLine) scriptCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "script ADDRESS",
		Short: "Print the output script paying to an address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := wallet.DecodeAddress(args[0])
			if err != nil {
				return errors.Wrapf(err, "decoding %s", args[0])
			}
			s := addr.ScriptPubkey()
			fmt.Fprintln(cmd.OutOrStdout(), s)
			fmt.Fprintln(cmd.OutOrStdout(), s.Disasm())
			return nil
		},
	}
}
