// Command yahaha is the host front door for the D ("yahaha") core: a
// REPL, file-mode execution, and a line-oriented REPL server, wired
// around the reusable yahaha package the same way go-mix's main.go wires
// the lexer/parser/eval packages together, plus config-driven banner/
// prompt/version text instead of hardcoded constants.
package main

import (
	"net"
	"os"

	"github.com/fatih/color"

	"github.com/yahaha-lang/yahaha/config"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		arg := os.Args[1]
		switch arg {
		case "--help", "-h":
			showHelp(cfg)
			return
		case "--version", "-v":
			showVersion(cfg)
			return
		case "server":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port. Usage: yahaha server <port>\n")
				os.Exit(1)
			}
			startServer(cfg, os.Args[2])
			return
		default:
			runFile(cfg, arg)
			return
		}
	}

	repl := NewRepl(cfg)
	repl.Start(os.Stdin, os.Stdout)
}

// configPath honors YAHAHA_CONFIG if set, else looks for ./yahaha.yaml;
// config.Load tolerates a missing file by falling back to defaults.
func configPath() string {
	if p := os.Getenv("YAHAHA_CONFIG"); p != "" {
		return p
	}
	return "yahaha.yaml"
}

func showHelp(cfg *config.Config) {
	cyanColor.Println("yahaha - the D language interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  yahaha                     Start interactive REPL mode")
	yellowColor.Println("  yahaha <path-to-file>      Execute a .yahaha file")
	yellowColor.Println("  yahaha server <port>       Start a REPL server on the given port")
	yellowColor.Println("  yahaha --help              Display this help message")
	yellowColor.Println("  yahaha --version           Display version information")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  yahaha")
	for _, dir := range cfg.Samples {
		yellowColor.Printf("  yahaha %s/factorial.yahaha\n", dir)
	}
	yellowColor.Println("  yahaha server 8080")
}

func showVersion(cfg *config.Config) {
	cyanColor.Println("yahaha - the D language interpreter")
	cyanColor.Printf("Version: %s\n", cfg.Version)
	cyanColor.Printf("License: %s\n", cfg.License)
	cyanColor.Printf("Author : %s\n", cfg.Author)
}

func runFile(cfg *config.Config, fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}
	if !execute(os.Stdout, os.Stdin, string(source)) {
		os.Exit(1)
	}
}

func startServer(cfg *config.Config, port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to listen on :%s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("yahaha REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] accept failed: %v\n", err)
			continue
		}
		go handleClient(cfg, conn)
	}
}

func handleClient(cfg *config.Config, conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repl := NewRepl(cfg)
	repl.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}

