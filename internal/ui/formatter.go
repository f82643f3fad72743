package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"

	"tlr/internal/config"
	"tlr/internal/discovery"
	"tlr/internal/domain"
	"tlr/internal/parser"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
	white  = color.New(color.FgWhite)
)

// Formatter prints run statistics and file listings to the console
type Formatter struct {
	config *config.Config
	parser parser.Parser
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter(cfg *config.Config, p parser.Parser) *Formatter {
	return &Formatter{
		config: cfg,
		parser: p,
		out:    os.Stdout,
	}
}

// SetOutput redirects console output
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

// PrintRunStats displays the statistics of a stored run
func (f *Formatter) PrintRunStats(output *domain.RunOutput) {
	meta := output.Meta
	w := f.out

	fmt.Fprint(w, "\n")
	cyan.Fprintln(w, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(w, "║                      Test Log Statistics                      ║")
	cyan.Fprintln(w, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "┌─────────────────────────────────┬─────────────────────────────┐")
	row := func(label string, c *color.Color, value string, last bool) {
		fmt.Fprintf(w, "│ %-31s │ ", label)
		c.Fprintf(w, "%-27s", value)
		fmt.Fprintln(w, " │")
		if !last {
			fmt.Fprintln(w, "├─────────────────────────────────┼─────────────────────────────┤")
		}
	}
	row("Suites", white, fmt.Sprint(meta.TotalSuites), false)
	row("Test Cases", white, fmt.Sprint(meta.TotalCases), false)
	row("Passed", green, fmt.Sprint(meta.Counts.Pass), false)
	row("Failed", red, fmt.Sprint(meta.Counts.Fail), false)
	row("Skipped", yellow, fmt.Sprint(meta.Counts.Skip), false)
	if meta.Counts.Unknown > 0 {
		row("Unrecognized (not counted)", yellow, fmt.Sprint(meta.Counts.Unknown), false)
	}
	row("Success Rate", rateColor(meta.SuccessRate), fmt.Sprintf("%.2f", meta.SuccessRate), false)
	row("Duration", white, fmt.Sprintf("%.2fs", meta.DurationSeconds), false)
	row("Report", white, meta.ReportPath, false)
	row("Timestamp", white, meta.Timestamp, true)
	fmt.Fprintln(w, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(w)
	if meta.Counts.Fail == 0 {
		green.Fprintln(w, "✓ No failed test cases")
		return
	}
	red.Fprintf(w, "✗ %d test case(s) failed\n\n", meta.Counts.Fail)
	f.printFailedTree(output.Suites)
}

func rateColor(rate float64) *color.Color {
	switch {
	case rate >= 1:
		return green
	case rate >= 0.8:
		return yellow
	default:
		return red
	}
}

// TreeNode represents a node in the log file tree
type TreeNode struct {
	Name     string
	Children map[string]*TreeNode
	Failures []domain.TestCaseResult
	IsFile   bool
}

// printFailedTree prints failed cases grouped under the log files they came from
func (f *Formatter) printFailedTree(suites []domain.SuiteResult) {
	root := &TreeNode{Children: make(map[string]*TreeNode)}

	for _, suite := range suites {
		var failures []domain.TestCaseResult
		for _, tc := range suite.Record.Cases {
			if tc.Outcome() == domain.OutcomeFail {
				failures = append(failures, tc)
			}
		}
		if len(failures) == 0 {
			continue
		}

		path := f.relPath(suite.Record.Path)
		parts := strings.Split(filepath.ToSlash(path), "/")
		current := root
		for i, part := range parts {
			if part == "" || part == "." {
				continue
			}
			if current.Children[part] == nil {
				current.Children[part] = &TreeNode{
					Name:     part,
					Children: make(map[string]*TreeNode),
					IsFile:   i == len(parts)-1,
				}
			}
			current = current.Children[part]
		}
		current.Failures = append(current.Failures, failures...)
	}

	f.printTreeNode(root, "")
}

func (f *Formatter) printTreeNode(node *TreeNode, prefix string) {
	var keys []string
	for key := range node.Children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for i, key := range keys {
		child := node.Children[key]
		last := i == len(keys)-1

		connector, childPrefix := "├── ", prefix+"│   "
		if last {
			connector, childPrefix = "└── ", prefix+"    "
		}

		if child.IsFile {
			yellow.Fprintf(f.out, "%s%s%s\n", prefix, connector, child.Name)
			for j, tc := range child.Failures {
				caseConnector := "├── "
				if j == len(child.Failures)-1 {
					caseConnector = "└── "
				}
				red.Fprintf(f.out, "%s%s%s %s\n", childPrefix, caseConnector, tc.ID, domain.OrPlaceholder(tc.Reason))
			}
		} else {
			cyan.Fprintf(f.out, "%s%s%s\n", prefix, connector, child.Name)
		}
		f.printTreeNode(child, childPrefix)
	}
}

func (f *Formatter) relPath(path string) string {
	root, err := discovery.ExpandHome(f.config.RootDir)
	if err != nil {
		return path
	}
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(root, abs); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

// PrintFileList prints the discovered log files, optionally with the
// number of cases and the suite name each one holds
func (f *Formatter) PrintFileList(files []string, showCases bool) error {
	green.Fprintf(f.out, "Found %d log file(s):\n\n", len(files))

	for i, file := range files {
		connector := "├── "
		if i == len(files)-1 {
			connector = "└── "
		}

		line := f.relPath(file)
		if showCases {
			record, err := f.parser.ParseFile(file)
			if err != nil {
				return err
			}
			line = fmt.Sprintf("%s %s", line, yellow.Sprintf("[%s: %d case(s)]", record.Suite, len(record.Cases)))
		}
		cyan.Fprintf(f.out, "%s%s\n", connector, line)
	}
	return nil
}
