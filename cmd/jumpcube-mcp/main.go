package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	jcmcp "jumpcube/internal/mcp"
)

func main() {
	cards := flag.String("cards", "cards.yaml", "path to the card pool YAML file")
	themes := flag.String("themes", "", "path to the themes YAML file (default: stock registry)")
	constraints := flag.String("constraints", "", "path to the constraints YAML file (default: built-in)")
	flag.Parse()

	jcmcp.SetCardsFile(*cards)
	jcmcp.SetThemesFile(*themes)
	jcmcp.SetConstraintsFile(*constraints)

	s := server.NewMCPServer("jumpcube", "1.0.0")
	jcmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
