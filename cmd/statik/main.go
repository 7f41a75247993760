package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/indigo-web/statik"
	"github.com/indigo-web/statik/config"
)

// staticRoot prefers the www directory shipped next to the binary, falling back to
// the one in the working directory.
func staticRoot() string {
	exe, err := os.Executable()
	if err == nil {
		dir := filepath.Join(filepath.Dir(exe), "www")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}

	return "www"
}

func main() {
	args, err := statik.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("usage: statik [address [port]]: %s", err)
	}

	cfg := config.Default()
	cfg.Static.Root = staticRoot()

	app := statik.New(args.String()).
		Tune(cfg).
		NotifyOnStart(func() {
			log.Printf("Running statik at http://%s/ serving %s", args, cfg.Static.Root)
		})

	log.Fatal(app.Serve())
}
