package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"memento/internal/api"
	"memento/internal/config"
	"memento/internal/debug"
	"memento/internal/session"
	"memento/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	apiURLDefault := config.GetString(config.KeyAPIBaseURL)
	apiTimeoutDefault := config.GetInt(config.KeyAPITimeoutSeconds)
	outputFormatDefault := config.GetString(config.KeyOutputFormat)
	debugDefault := config.GetBool(config.KeyDebug)

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	apiURLFlag := flag.String("api-url", apiURLDefault, "Base URL of the Memento backend")
	apiTimeoutFlag := flag.Int("api-timeout-seconds", apiTimeoutDefault, "Per-request timeout in seconds")
	outputFormatFlag := flag.String("output-format", outputFormatDefault, "Detail panel markdown style (rich, light, plain)")
	debugFlag := flag.Bool("debug", debugDefault, "Write a debug log to ~/.memento/debug.log")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	runtime := computeRuntimeOptions(runtimeFlags{
		apiURL:            apiURLFlag,
		apiTimeoutSeconds: apiTimeoutFlag,
		outputFormat:      outputFormatFlag,
		debugEnabled:      debugFlag,
	}, visited)

	if err := debug.Init(runtime.debugEnabled); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug logging unavailable: %v\n", err)
	}
	defer debug.Close()

	client := api.NewHTTPClient(runtime.apiURL, api.WithTimeout(runtime.apiTimeout))

	credPath, err := config.CredentialsPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	store, err := session.NewStore(credPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCfg := ui.Config{
		Client:            client,
		Store:             store,
		ConversationLimit: config.GetInt(config.KeyConversationsFetchLimit),
		PeopleLimit:       config.GetInt(config.KeyPeopleDisplayLimit),
		OutputFormat:      runtime.outputFormat,
		Version:           Version,
	}

	if err := runProgram(appCfg, ui.NewApp, func(app *ui.App) programRunner {
		return tea.NewProgram(app, tea.WithAltScreen())
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func runProgram(cfg ui.Config, builder func(ui.Config) *ui.App, factory programFactory) error {
	if builder == nil {
		return fmt.Errorf("app builder is nil")
	}
	app := builder(cfg)
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

type runtimeFlags struct {
	apiURL            *string
	apiTimeoutSeconds *int
	outputFormat      *string
	debugEnabled      *bool
}

type runtimeOptions struct {
	apiURL       string
	apiTimeout   time.Duration
	outputFormat string
	debugEnabled bool
}

func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) runtimeOptions {
	apiURL := strings.TrimSpace(config.GetString(config.KeyAPIBaseURL))
	if flagWasExplicitlySet("api-url", visited) {
		apiURL = strings.TrimSpace(*flags.apiURL)
	}

	seconds := sanitizeTimeoutSeconds(config.GetInt(config.KeyAPITimeoutSeconds))
	if flagWasExplicitlySet("api-timeout-seconds", visited) {
		seconds = sanitizeTimeoutSeconds(*flags.apiTimeoutSeconds)
	}
	apiTimeout := time.Duration(seconds) * time.Second

	outputFormat := strings.TrimSpace(config.GetString(config.KeyOutputFormat))
	if flagWasExplicitlySet("output-format", visited) {
		outputFormat = strings.TrimSpace(*flags.outputFormat)
	}

	debugEnabled := config.GetBool(config.KeyDebug)
	if flagWasExplicitlySet("debug", visited) {
		debugEnabled = *flags.debugEnabled
	}

	return runtimeOptions{
		apiURL:       apiURL,
		apiTimeout:   apiTimeout,
		outputFormat: outputFormat,
		debugEnabled: debugEnabled,
	}
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}

func sanitizeTimeoutSeconds(seconds int) int {
	if seconds <= 0 {
		return config.DefaultAPITimeoutSeconds
	}
	return seconds
}
