// Package cli is the addrtool command line.
package cli

import (
	"io"

	"github.com/mkohlhaas/base58addr/config"
	"github.com/mkohlhaas/base58addr/curve"
	"github.com/mkohlhaas/base58addr/curve/secp256k1"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommandLine holds the command tree and the settings resolved before any
// sub command runs.
type CommandLine struct {
	root  *cobra.Command
	v     *viper.Viper
	cfg   config.Config
	curve curve.Provider
}

func New() *CommandLine {
	cli := &CommandLine{
		v:     config.New(),
		curve: secp256k1.Provider{},
	}
	cli.root = &cobra.Command{
		Use:   "addrtool",
		Short: "Encode, decode and inspect Base58Check addresses and private keys",
		Example: `  addrtool address decode 132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM
  addrtool --network test address fromkey 03df154ebfcf29d29cc10d5c2565018bce2d9edbab267c31d2caf44a63056cf99f
  addrtool key decode cVt4o7BGAig1UXywgGSmARhxMdzP5qvQsxKkSsc1XEkw3tDTQFpy
  addrtool book add alice 132F25rTsvBdp9JzLLBHP5mvGY66i1xdiM`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.loadConfig,
	}

	flags := cli.root.PersistentFlags()
	flags.String("network", "main", "network used when encoding: main or test")
	flags.String("book", "./tmp/addrbook", "address book directory")
	flags.String("log-level", "warn", "log level")
	flags.String("config", "", "config file (default ./addrtool.yaml or $HOME/.addrtool/addrtool.yaml)")
	for key, flag := range map[string]string{
		config.KeyNetwork:  "network",
		config.KeyBook:     "book",
		config.KeyLogLevel: "log-level",
		config.KeyConfig:   "config",
	} {
		// Lookup cannot return nil for the flags defined above.
		_ = cli.v.BindPFlag(key, flags.Lookup(flag))
	}

	cli.root.AddCommand(
		cli.addressCommand(),
		cli.keyCommand(),
		cli.scriptCommand(),
		cli.bookCommand(),
	)
	return cli
}

func (cli *CommandLine) loadConfig(*cobra.Command, []string) error {
	cfg, err := config.Load(cli.v)
	if err != nil {
		return err
	}
	cli.cfg = cfg
	logrus.SetLevel(cfg.LogLevel)
	logrus.WithFields(logrus.Fields{"network": cfg.Network, "book": cfg.BookPath}).Debug("config loaded")
	return nil
}

// Run executes the command given by args, writing results to out.
func (cli *CommandLine) Run(args []string, out io.Writer) error {
	cli.root.SetArgs(args)
	cli.root.SetOut(out)
	return cli.root.Execute()
}
