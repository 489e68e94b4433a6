// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the word game solver server and CLI [DBG] application.

wordsolve answers anagram, word-builder, affix, containment and bingo queries
over a plain text word list, with up to three blank tiles per query. It runs
as a MessagePack IPC server for game front ends, or as a CLI for testing.

# Usage

Start the server with the word list from the config file:

	wordsolve

Use a specific word list and enable debug mode:

	wordsolve -words /usr/share/dict/enable.txt -d

Run in CLI mode for interactive testing:

	wordsolve -c -words enable.txt

# Word Lists

A word list is a text file with one word per line. Lines are trimmed and
uppercased; anything that is not A to Z, or longer than 15 letters, is skipped.
Relative paths are looked up next to the executable, in the working directory
and in the data/ dirs next to the executable and in the config dir.

The raw list is cached under the config dir so later starts skip the source
read. Use -no-cache to bypass it.

# Configuration

Runtime configuration is a TOML file, created with defaults when missing:

	[server]
	max_input = 32
	log_timing = false

	[dict]
	word_list = "enable.txt"
	cache_enabled = true

	[solver]
	memo_size = 50000
	max_blanks = 3
	sort_results = true

	[cli]
	default_search_type = "anagram"
	show_blanks = true

# IPC Protocol

The server reads MessagePack maps from stdin and writes one map per request to
stdout. See package server for the message shapes.

	{"id": "r1", "type": "SOLVE_ANAGRAM", "letters": "AC?", "searchType": "anagram"}

# Command Line Flags

	-words string
	    Word list to load (default from config)
	-config string
	    Config file path
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-no-cache
	    Read the word list source directly
	-version
	    Show current version
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordsolve/internal/cli"
	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/config"
	"github.com/bastiangx/wordsolve/pkg/dictionary"
	"github.com/bastiangx/wordsolve/pkg/engine"
	"github.com/bastiangx/wordsolve/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version         = "0.3.0-beta"
	AppName         = "wordsolve"
	defaultWordList = "words.txt"
	gh              = "https://github.com/bastiangx/wordsolve"
)

// sigHandler cancels the returned context on SIGINT/SIGTERM and exits on a
// second signal.
func sigHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		cancel()
		<-c
		os.Exit(0)
	}()
	return ctx
}

// main wires config, the word list source and the engine, then hands over to
// the server or the CLI.
func main() {
	ctx := sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	wordList := flag.String("words", "", "Word list to load, one word per line (default from config)")
	configFile := flag.String("config", "", "Path to a custom config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	noCache := flag.Bool("no-cache", false, "Skip the word list cache")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Errorf("Failed to initialize path resolver: %v", err)
		log.Print("Either env is not set or system is not supported")
		os.Exit(1)
	}

	log.Debugf("Config dir: %s", pathResolver.GetConfigDir())

	appConfig, configPath, err := config.LoadConfigWithPriority(*configFile, pathResolver)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config: (%s)", config.GetActiveConfigPath(configPath))

	listPath := *wordList
	if listPath == "" {
		listPath = appConfig.Dict.WordList
	}
	if listPath == "" {
		listPath = defaultWordList
	}
	resolvedList := pathResolver.GetWordListPath(listPath)
	log.Debugf("Using word list at: %s", resolvedList)

	var src dictionary.Source = dictionary.NewFileSource(resolvedList)
	if appConfig.Dict.CacheEnabled && !*noCache {
		cacheDir := pathResolver.GetCacheDir(appConfig.Dict.CacheDir)
		cached := dictionary.NewCachedSource(src, dictionary.NewDirCache(cacheDir))
		cached.Key = dictionary.KeyFor(resolvedList)
		log.Debugf("Caching word list in %s as %s", cacheDir, cached.Key)
		src = cached
	}

	eng := engine.New(src, engine.WithSolverOptions(appConfig.SolverOptions()))

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		log.SetReportTimestamp(false)
		if err := eng.Initialize(ctx); err != nil {
			log.Errorf("Lexicon not ready, queries will retry: %v", err)
		}
		inputHandler := cli.NewInputHandler(eng, appConfig.CLI.DefaultSearchType, appConfig.CLI.ShowBlanks)
		if err := inputHandler.Start(ctx); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(eng, appConfig)
	showStartupInfo(resolvedList)

	if err := srv.Start(ctx); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wordsolve ] Anagrams, bingos and blanks for word games")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info on stderr; stdout carries IPC.
func showStartupInfo(wordList string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, " wordsolve ")
	fmt.Fprintln(os.Stderr, "===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("word list: ( %s )", wordList)
	log.Info("status: listening")
	fmt.Fprintln(os.Stderr, "===========")

	log.SetLevel(currentLevel)
}
