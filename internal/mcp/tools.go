package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	buildlog "jumpcube/internal/log"
)

// activeBuild is the singleton build session (one per stdio process).
var activeBuild *BuildSession

// cardsFile is the path to the card pool YAML file, set by main.
var cardsFile string

// themesFile is the path to the themes YAML file, set by main. Empty
// means the stock registry.
var themesFile string

// constraintsFile is the path to the constraints YAML file, set by
// main. Empty means defaults.
var constraintsFile string

// SetCardsFile sets the path to the card pool YAML file.
func SetCardsFile(path string) {
	cardsFile = path
}

// SetThemesFile sets the path to the themes YAML file.
func SetThemesFile(path string) {
	themesFile = path
}

// SetConstraintsFile sets the path to the constraints YAML file.
func SetConstraintsFile(path string) {
	constraintsFile = path
}

// RegisterTools adds all deck-building tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(buildDecksTool(), handleBuildDecks)
	s.AddTool(getDeckTool(), handleGetDeck)
	s.AddTool(listThemesTool(), handleListThemes)
	s.AddTool(getLeftoverTool(), handleGetLeftover)
	s.AddTool(getBuildLogTool(), handleGetBuildLog)
}

// --- Tool definitions ---

func buildDecksTool() mcp.Tool {
	return mcp.NewTool("build_decks",
		mcp.WithDescription("Partition the configured card pool into themed decks and return a build summary. "+
			"The build is deterministic: the same inputs always produce the same decks. "+
			"Subsequent calls return the existing build unless rebuild is true."),
		mcp.WithBoolean("rebuild", mcp.Description("Discard the current build and run again from the input files")),
	)
}

func getDeckTool() mcp.Tool {
	return mcp.NewTool("get_deck",
		mcp.WithDescription("Get the full card list and diagnostics for one deck by theme name. Run build_decks first."),
		mcp.WithString("theme", mcp.Required(), mcp.Description("Theme name exactly as listed by list_themes (e.g. 'White Soldiers')")),
	)
}

func listThemesTool() mcp.Tool {
	return mcp.NewTool("list_themes",
		mcp.WithDescription("List the themes the builder targets: name, colors, archetype, keywords, and core reservation cap. Read-only."),
	)
}

func getLeftoverTool() mcp.Tool {
	return mcp.NewTool("get_leftover",
		mcp.WithDescription("List the cards left unassigned after the build, in catalog order. Run build_decks first."),
	)
}

func getBuildLogTool() mcp.Tool {
	return mcp.NewTool("get_build_log",
		mcp.WithDescription("Get the build event log as human-readable lines, optionally filtered. Run build_decks first."),
		mcp.WithString("theme", mcp.Description("Only events for this theme")),
		mcp.WithString("phase", mcp.Description("Only events from this phase: reservation, color, general, completion, repair, or final")),
	)
}

// --- Tool handlers ---

func handleBuildDecks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rebuild := request.GetBool("rebuild", false)

	if activeBuild != nil && !rebuild {
		return mcp.NewToolResultText(respondJSON(activeBuild.summary())), nil
	}

	sess, err := NewBuildSession(cardsFile, themesFile, constraintsFile)
	if err != nil {
		return mcp.NewToolResultErrorf("Build failed: %v", err), nil
	}
	activeBuild = sess

	return mcp.NewToolResultText(respondJSON(sess.summary())), nil
}

func handleGetDeck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeBuild == nil {
		return mcp.NewToolResultError("No build exists. Use build_decks first."), nil
	}

	name := strings.TrimSpace(request.GetString("theme", ""))
	if name == "" {
		return mcp.NewToolResultError("theme must not be empty"), nil
	}

	rep := activeBuild.result.Deck(name)
	if rep == nil {
		return mcp.NewToolResultErrorf("No deck for theme '%s'. Use list_themes for valid names.", name), nil
	}

	return mcp.NewToolResultText(respondJSON(rep)), nil
}

func handleListThemes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	registry := themeRegistry()

	views := make([]ThemeView, 0, registry.Len())
	for _, t := range registry.Themes() {
		views = append(views, ThemeView{
			Name:        t.Name,
			Colors:      t.Colors.String(),
			Archetype:   t.Archetype.String(),
			Keywords:    t.Keywords,
			CoreReserve: t.CoreReserve,
		})
	}

	return mcp.NewToolResultText(respondJSON(views)), nil
}

func handleGetLeftover(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeBuild == nil {
		return mcp.NewToolResultError("No build exists. Use build_decks first."), nil
	}

	leftover := activeBuild.result.Leftover
	if leftover == nil {
		leftover = []string{}
	}

	return mcp.NewToolResultText(respondJSON(leftover)), nil
}

func handleGetBuildLog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeBuild == nil {
		return mcp.NewToolResultError("No build exists. Use build_decks first."), nil
	}

	themeFilter := strings.TrimSpace(request.GetString("theme", ""))
	phaseFilter := strings.TrimSpace(request.GetString("phase", ""))

	var events []buildlog.BuildEvent
	for _, e := range activeBuild.logger.Events() {
		if themeFilter != "" && e.Theme != themeFilter {
			continue
		}
		if phaseFilter != "" && e.Phase != phaseFilter {
			continue
		}
		events = append(events, e)
	}
	if len(events) == 0 {
		return mcp.NewToolResultText("No events match the filter."), nil
	}

	return mcp.NewToolResultText(buildlog.FormatAll(events)), nil
}
