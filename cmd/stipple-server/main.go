package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/stipple-server/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("stipple-server %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("stipple-server - HTTP service converting images to stippled black-and-white art")
			fmt.Println()
			fmt.Println("Usage: stipple-server [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  STIPPLE_ADDR=:10000         Listen address")
			fmt.Println("  STIPPLE_MAX_UPLOAD_MB=20    Upload size limit in MiB")
			fmt.Println("  STIPPLE_MAX_DIMENSION=0     Scale images down to this many pixels per side (0 = off)")
			fmt.Println()
			fmt.Println("Endpoints: GET /, GET /health, POST /stipple (multipart field \"file\").")
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Printf("Stipple Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)

	cfg := server.Config{
		Addr: os.Getenv("STIPPLE_ADDR"),
	}
	if mb := envInt("STIPPLE_MAX_UPLOAD_MB"); mb > 0 {
		cfg.MaxUploadBytes = int64(mb) << 20
	}
	cfg.MaxDimension = envInt("STIPPLE_MAX_DIMENSION")

	srv := server.New(cfg)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// envInt reads an integer environment variable, treating unset or
// unparsable values as zero.
func envInt(name string) int {
	v := os.Getenv(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring %s=%q: %v", name, v, err)
		return 0
	}
	return n
}
