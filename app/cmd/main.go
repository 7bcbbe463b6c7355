package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/securecodex/cityquest/app"
)

var (
	version string = "dev"
	commit  string = "none"
)

func main() {
	appConf, err := app.LoadConfigOrDefault(app.ConfigFile)
	switch err {
	case app.ErrDefaultConfigGenerated:
		fmt.Fprintf(os.Stderr, "Config file (%v) does not exist. Use default config and write it to file.\n", app.ConfigFile)
		fallthrough
	case nil:
		// no errors. do nothing.
	default:
		// fatal error for loading config. quits
		panic(err)
	}

	if showVersion := parseFlags(appConf); showVersion {
		fmt.Println(version + "-" + commit)
		return
	}

	if err := app.Main(appConf); err != nil {
		os.Exit(1)
	}
}

func parseFlags(c *app.Config) (showVersion bool) {
	flag.StringVar(&c.LogFile, "logfile", c.LogFile, "`output-file` to write log. { stdout | stderr } is OK.")
	flag.StringVar(&c.LogLevel, "loglevel", c.LogLevel, "`level` = { info | debug }.\n\t"+
		"info outputs information level log only, and debug also outputs debug level log.")
	flag.StringVar(&c.Game.ContentScript, "content", c.Game.ContentScript,
		"`lua-file` overriding the built-in dialogue texts and credentials.")
	flag.BoolVar(&c.Game.WatchContent, "watch", c.Game.WatchContent,
		"reload the content script when it changes on disk.")

	flag.BoolVar(&showVersion, "version", false, "show version info and quit.")
	flag.Parse()
	return showVersion
}
