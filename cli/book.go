package cli

import (
	"fmt"
	"syscall"

	"github.com/mkohlhaas/base58addr/addrbook"
	"github.com/mkohlhaas/base58addr/wallet"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vrecan/death/v3"
)

// withBook opens the address book for fn and closes it afterwards, or
// earlier on SIGINT/SIGTERM so badger is never left with a stale LOCK.
// death offers no way to stop its signal.Notify, so every call leaves one
// idle signal channel registered. addrtool runs a single book command per
// process, which keeps that to one.
func (cli *CommandLine) withBook(fn func(*addrbook.Book) error) error {
	book, err := addrbook.Open(cli.cfg.BookPath)
	if err != nil {
		return err
	}
	d := death.NewDeath(syscall.SIGINT, syscall.SIGTERM)
	d.SetLogger(logrus.WithField("component", "death"))
	closed := make(chan error, 1)
	go func() {
		closed <- d.WaitForDeath(book)
	}()

	err = fn(book)
	d.FallOnSword()
	if cerr := <-closed; cerr != nil && err == nil {
		err = errors.Wrap(cerr, "closing address book")
	}
	return err
}

func (cli *CommandLine) bookCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "Keep named addresses in the address book",
	}

	add := &cobra.Command{
		Use:   "add LABEL ADDRESS",
		Short: "Store an address under a label",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := wallet.DecodeAddress(args[1])
			if err != nil {
				return errors.Wrapf(err, "decoding %s", args[1])
			}
			return cli.withBook(func(book *addrbook.Book) error {
				return book.Put(args[0], addr)
			})
		},
	}

	get := &cobra.Command{
		Use:   "get LABEL",
		Short: "Show the address stored under a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.withBook(func(book *addrbook.Book) error {
				addr, err := book.Get(args[0])
				if err != nil {
					return err
				}
				printAddress(cmd.OutOrStdout(), addr)
				return nil
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List all labelled addresses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.withBook(func(book *addrbook.Book) error {
				entries, err := book.List()
				if err != nil {
					return err
				}
				for _, e := range entries {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.Label, e.Address)
				}
				return nil
			})
		},
	}

	rm := &cobra.Command{
		Use:   "rm LABEL",
		Short: "Remove a label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.withBook(func(book *addrbook.Book) error {
				return book.Delete(args[0])
			})
		},
	}

	cmd.AddCommand(add, get, list, rm)
	return cmd
}
