package cli

import (
	"fmt"

	"github.com/mkohlhaas/base58addr/curve"
	"github.com/mkohlhaas/base58addr/wallet"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func (cli *CommandLine) keyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Encode and decode WIF private keys",
	}

	var uncompressed bool
	encode := &cobra.Command{
		Use:   "encode SECRET_HEX",
		Short: "Encode a 32 byte secret as a WIF key on --network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := decodeHex("secret", args[0])
			if err != nil {
				return err
			}
			if err := cli.curve.CheckSecret(raw); err != nil {
				return err
			}
			var secret [curve.SecretSize]byte
			copy(secret[:], raw)
			k := wallet.NewPrivkey(cli.cfg.Network, secret, !uncompressed)
			logrus.WithField("key", k).Debug("encoding private key")
			fmt.Fprintln(cmd.OutOrStdout(), k.Encode())
			return nil
		},
	}
	encode.Flags().BoolVar(&uncompressed, "uncompressed", false, "mark the key as using an uncompressed public key")

	decode := &cobra.Command{
		Use:   "decode WIF",
		Short: "Show the network, compression and address of a WIF key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := wallet.DecodePrivkey(args[0], cli.curve)
			if err != nil {
				return errors.Wrap(err, "decoding private key")
			}
			addr, err := k.ToAddress(cli.curve)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "network:    %s\n", k.Network)
			fmt.Fprintf(w, "compressed: %t\n", k.Compressed)
			fmt.Fprintf(w, "address:    %s\n", addr)
			return nil
		},
	}

	cmd.AddCommand(encode, decode)
	return cmd
}
