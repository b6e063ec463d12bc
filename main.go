// Package main is the entry point of addrtool.
package main

import (
	"os"

	"github.com/mkohlhaas/base58addr/cli"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := cli.New().Run(os.Args[1:], os.Stdout); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
