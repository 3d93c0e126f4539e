package docs

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	bashSetup    = "bash setup"
	bashRun      = "bash run"
	consoleCheck = "console check"
	bashCheck    = "bash check"
)

// readmeTopics returns the topic names listed in readme.md, in order.
func readmeTopics(t *testing.T) []string {
	t.Helper()
	f, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("opening readme.md: %v", err)
	}
	defer f.Close()

	var topics []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if m := topicLine.FindStringSubmatch(sc.Text()); m != nil {
			topics = append(topics, strings.TrimSpace(m[1]))
		}
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("reading readme.md: %v", err)
	}
	return topics
}

// topicFiles returns the names of the topic files next to readme.md.
func topicFiles(t *testing.T) []string {
	t.Helper()
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, f := range files {
		if name := strings.TrimSuffix(filepath.Base(f), ".md"); name != "readme" {
			names = append(names, name)
		}
	}
	return names
}

func TestTopics(t *testing.T) {
	listed := readmeTopics(t)
	for _, topic := range listed {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("readme lists %q: %v", topic, err)
		}
	}
	for _, name := range topicFiles(t) {
		if !slices.Contains(listed, name) {
			t.Errorf("%s.md is not listed in readme.md", name)
		}
	}
}

func TestTopicIndex(t *testing.T) {
	desc, err := Descriptions()
	if err != nil {
		t.Fatalf("Descriptions() unexpected error: %v", err)
	}
	if got, want := len(desc), len(readmeTopics(t)); got != want {
		t.Errorf("Descriptions() has %d topics, want %d", got, want)
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error: %v", err)
	}
	files := topicFiles(t)
	slices.Sort(all)
	slices.Sort(files)
	if !slices.Equal(all, files) {
		t.Errorf("GetAllTopics() = %v, want %v", all, files)
	}
}

func TestGetTopics(t *testing.T) {
	everything, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) unexpected error: %v", err)
	}
	for _, title := range []string{"# Amortization", "# Scenario", "# Metrics"} {
		if !strings.Contains(everything, title) {
			t.Errorf("GetTopics(*) is missing %q", title)
		}
	}
	if _, err := GetTopics("readme", "nope"); err == nil {
		t.Errorf("GetTopics() of an unknown topic: want an error")
	}
}

func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}
	files = append(files, "../README.md")

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			runBlocks(t, file)
		})
	}
}

// HELPER

// Block represents a fenced code block in the markdown file.
type Block struct {
	Type    string
	Content string
	File    string
	Line    int
}

// buildRei builds the `rei` command-line executable and returns the absolute
// path to the compiled binary. It uses a temporary directory for the build
// output.
func buildRei(t *testing.T, tmp string) string {
	t.Helper()

	output := filepath.Join(tmp, "rei")

	buildCmd := exec.Command("go", "build", "-o", output, "../rei/")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build rei command: %v\n%s", err, out)
	}

	return output
}

// parseMarkdown parses a markdown file and returns a list of Blocks.
func parseMarkdown(t *testing.T, file string) []*Block {
	t.Helper()

	content, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read %s: %v", file, err)
	}

	mdParser := goldmark.DefaultParser()
	root := mdParser.Parse(text.NewReader(content))

	// Read all blocks.

	var blocks []*Block

	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		if fcb, ok := n.(*ast.FencedCodeBlock); ok {
			if fcb.Info == nil {
				return ast.WalkContinue, nil
			}
			lang := string(fcb.Info.Segment.Value(content))

			// lang := string(fcb.Language(content))
			var blockContent strings.Builder
			for i := 0; i < fcb.Lines().Len(); i++ {
				line := fcb.Lines().At(i)
				blockContent.WriteString(string(line.Value(content)))
			}

			// Get the line number of the block
			startOffset := fcb.Info.Segment.Start

			switch lang {
			case bashCheck, bashSetup, bashRun, consoleCheck:
				blocks = append(blocks, &Block{
					Type:    lang,
					Content: blockContent.String(),
					File:    file,
					Line:    lineNumber(content, startOffset),
				})
			}
		}
		return ast.WalkContinue, nil
	})

	return blocks
}

// lineNumber computes the lineNumber for a given offset AST offset.
// the markdown parser we use does not support that feature so we
// have to implement it.
func lineNumber(source []byte, offset int) (lineNumber int) {
	newline := []byte{'\n'}
	// Create a slice of the source from the beginning to the node's offset.
	sourceToNode := source[:offset]

	// Count the number of newlines in that slice.
	lineCount := bytes.Count(sourceToNode, newline)

	// The line number is the number of newlines + 1.
	return lineCount + 1
}

// blockRunner defines all that is need to run a test for a block
type blockRunner struct {
	env            []string // env use to execute commands
	previousOutput string
	tmpFolder      string
}

func (r *blockRunner) runBlock(t *testing.T, block *Block) {
	t.Helper()

	// Check don't need execution.
	if block.Type == consoleCheck {
		want := strings.TrimSpace(block.Content)
		got := strings.TrimSpace(r.previousOutput)
		// replace tabs with spaces for consistent comparison
		got = strings.ReplaceAll(got, "\t", "        ")
		if want != got {
			// Print out the diffs in full text first, and in escaped text later.
			t.Errorf("%s:%d: output mismatch:\ngot:\n\n%s\n\nwant:\n\n%s\n\ngot :%q\nwant:%q\n", block.File, block.Line, got, want, got, want)
		}
		return
	}
	// Create a new execution folder on a new setup.
	if block.Type == bashSetup {
		r.tmpFolder = t.TempDir() // new scenario temp folder
	}

	// Execute bash.
	cmd := exec.Command("bash", "-c", "set -e; "+block.Content)
	cmd.Dir = r.tmpFolder
	cmd.Env = r.env
	output, err := cmd.CombinedOutput()

	// Record last run output.
	if block.Type == bashRun {
		r.previousOutput = string(output)
	}

	// Handling bash errors.
	if err != nil {
		switch block.Type {
		case bashSetup, bashRun:
			t.Fatalf("%s:%d: %s failed: %v with output:\n%s\n", block.File, block.Line, block.Type, err, output)
		case bashCheck:
			t.Errorf("%s:%d: %s failed: %v with output:\n%s\n", block.File, block.Line, block.Type, err, output)
			return
		default:
			t.Fatalf("%s:%d: unknown block type: %s", block.File, block.Line, block.Type)
		}
	}
}

// runBlocks executes a series of scenarios extracted from a
// markdown file.
func runBlocks(t *testing.T, file string) {
	t.Helper()
	blocks := parseMarkdown(t, file)
	if len(blocks) == 0 {
		return
	}

	bin := filepath.Dir(buildRei(t, t.TempDir()))
	r := blockRunner{
		env:       reiEnv(bin),
		tmpFolder: t.TempDir(),
	}
	for _, block := range blocks {
		r.runBlock(t, block)
	}
}

// reiEnv returns the environment the blocks run in: rei from dir first on the
// PATH, no scenario file and quiet logs.
func reiEnv(dir string) []string {
	path := fmt.Sprintf("PATH=%s%c%s", dir, os.PathListSeparator, os.Getenv("PATH"))
	return append(os.Environ(), path, "REI_SCENARIO=", "REI_LOG_LEVEL=warn")
}

func TestReiEnv(t *testing.T) {
	t.Setenv("REI_SCENARIO", "deal.json")
	cmd := exec.Command("bash", "-c", `echo "${PATH%%:*}|$REI_SCENARIO|$REI_LOG_LEVEL"`)
	cmd.Env = reiEnv("/opt/rei")
	out, err := cmd.Output()
	if err != nil {
		t.Skipf("bash unavailable: %v", err)
	}
	if got, want := strings.TrimSpace(string(out)), "/opt/rei||warn"; got != want {
		t.Errorf("environment = %q, want %q", got, want)
	}
}
