package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/app"
	"github.com/iov-one/nftswap/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome = "home"
	varHome  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".nftswapd")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")
}

func helpMessage() {
	fmt.Println("nftswapd")
	fmt.Println("         NFT for payment escrow ABCI Application")
	fmt.Println("")
	fmt.Println("help     Print this message")
	fmt.Println("init     Initialize app options in genesis file")
	fmt.Println("validate Load genesis files into a scratch store")
	fmt.Println("start    Run the abci server")
	fmt.Println("version  Print the app version")
	fmt.Println("")
	flag.PrintDefaults()
}

func main() {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", app.Name)

	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	var err error
	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(app.GenInitOptions, logger, *varHome, rest)
	case "validate":
		paths := rest
		if len(paths) == 0 {
			paths = []string{server.GenesisPath(*varHome)}
		}
		err = server.ValidateGenesis(app.Initializers(), paths)
	case "start":
		err = server.StartCmd(app.GenerateApp, logger, *varHome, rest)
	case "version":
		fmt.Println(nftswap.Version())
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		helpMessage()
		os.Exit(1)
	}
	if err != nil {
		logger.Error("Command failed", "cmd", cmd, "err", err)
		os.Exit(1)
	}
}
