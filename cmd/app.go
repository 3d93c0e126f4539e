// Package cmd implements the CLI application to evaluate real-estate deals.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rdodkins/realestate"
	"github.com/rdodkins/realestate/logger"
	"github.com/rs/zerolog/log"
)

// Commands lists every subcommand with its group.
var Commands = []struct {
	Command subcommands.Command
	Group   string
}{
	{&projectCmd{}, "simulation"},
	{&compareCmd{}, "simulation"},
	{&amortizeCmd{}, "simulation"},
	{&exportCmd{}, "output"},
	{&plotCmd{}, "output"},
	{&queryCmd{}, "output"},
	{&defaultsCmd{}, "configuration"},
	{&topicCmd{}, "help"},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	for _, cmd := range Commands {
		c.Register(cmd.Command, cmd.Group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var scenarioFile = flag.String("scenario", "", "Path to the JSON scenario file, overlaid on the defaults. Defaults to $REI_SCENARIO")
var logLevel = flag.String("log-level", "", "Log level: debug, info, warn or error. Defaults to $REI_LOG_LEVEL or warn")
var plain = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")

// stdout receives the command outputs.
var stdout io.Writer = os.Stdout

// getEnv returns the environment variable key, or def when it is not set.
func getEnv(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}

// Setup loads the .env file if any and installs the global logger. It must be
// called after the flags are parsed.
func Setup() {
	// Load .env file if it exists
	_ = godotenv.Load()

	level := *logLevel
	if level == "" {
		level = getEnv("REI_LOG_LEVEL", "warn")
	}
	logger.SetGlobalLogger(logger.New(logger.Config{Level: level, Pretty: true}))
}

// loadScenario returns the scenario selected by the -scenario flag or the
// REI_SCENARIO variable, or the default scenario.
func loadScenario() (realestate.Scenario, error) {
	path := *scenarioFile
	if path == "" {
		path = os.Getenv("REI_SCENARIO")
	}
	if path == "" {
		log.Debug().Msg("no scenario file, using the default scenario")
		return realestate.DefaultScenario(), nil
	}
	s, err := realestate.LoadScenario(path)
	if err != nil {
		return s, err
	}
	log.Info().Str("scenario", path).Int("years", s.Years).Msg("scenario loaded")
	return s, nil
}

// runScenario loads the scenario, overrides its horizon when years > 0, and runs it.
func runScenario(years int) (*realestate.Result, error) {
	s, err := loadScenario()
	if err != nil {
		return nil, err
	}
	if years > 0 {
		s.Years = years
	}
	r, err := s.Run()
	if err != nil {
		return nil, err
	}
	log.Debug().Int("years", s.Years).Bool("alternative", r.Alternative != nil).Msg("scenario projected")
	return r, nil
}

// printMarkdown renders md for the terminal, or prints it raw with -plain.
func printMarkdown(md string) {
	if *plain {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(160))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	log.Warn().Err(err).Msg("cannot render markdown, printing it raw")
	fmt.Fprint(stdout, md)
}

// splitList splits a comma separated flag value, dropping empty items.
func splitList(s string) []string {
	var items []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
