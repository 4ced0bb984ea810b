package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/wayfarerboy/lintstock-cli/internal/config"
	"github.com/wayfarerboy/lintstock-cli/internal/importer"
	"github.com/wayfarerboy/lintstock-cli/internal/server"
	"github.com/wayfarerboy/lintstock-cli/internal/store"
	"github.com/wayfarerboy/lintstock-cli/internal/util"
)

var (
	port      = flag.Int("port", 0, "server port (config.toml wins unless port is unset there)")
	devMode   = flag.Bool("dev", false, "development mode")
	dataDir   = flag.String("dataDir", "", "data directory (overrides config file)")
	importDir = flag.String("import", "", "one-shot: import every .xlsx in this directory and exit")
	openUI    = flag.Bool("open", false, "open the browser after the server starts")
)

func main() {
	flag.Parse()

	fmt.Println("==========================================")
	fmt.Println("  Lintstock - board review survey parser")
	fmt.Println("==========================================")

	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// Flags override the config file.
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	if *importDir != "" {
		os.Exit(runImport(cfg, *importDir))
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	fmt.Printf("serving on %s\n", url)

	if *openUI {
		go func() {
			time.Sleep(500 * time.Millisecond)
			if err := util.OpenBrowserWithFallback(url); err != nil {
				log.Printf("failed to open browser: %v", err)
			}
		}()
	}

	go handleSignals()

	if err := srv.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// runImport performs a one-shot batch import and prints one line per file.
// Exit code is non-zero only when nothing imported.
func runImport(cfg *config.AppConfig, dir string) int {
	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("failed to create data directory: %v", err)
		dataDir = cfg.Data.DataDir
	}

	sqliteStore, err := store.New(filepath.Join(dataDir, "lintstock.db"))
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer sqliteStore.Close()

	coordinator := importer.NewCoordinator(sqliteStore, filepath.Join(dataDir, "json"))

	var report importer.Report
	for event := range coordinator.ImportDir(dir) {
		switch event.Type {
		case "file_done", "file_error":
			fmt.Println(event.Message)
		case "done":
			fmt.Println(event.Message)
			if r, ok := event.Data.(importer.Report); ok {
				report = r
			}
		}
	}

	if report.Imported == 0 {
		return 1
	}
	return 0
}

func handleSignals() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	fmt.Println("\nshutting down")
	os.Exit(0)
}
