package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/endorses/lippycat/internal/pkg/cmdutil"
	"github.com/endorses/lippycat/internal/pkg/logger"
	"github.com/endorses/lippycat/internal/pkg/output"
	"github.com/endorses/lippycat/pkg/corasick"
)

var (
	searchKeywords      []string
	searchKeywordFile   string
	searchInputFile     string
	searchAllowOverlaps bool
	searchOnlyTokens    bool
	searchJSON          bool
)

// SearchMatch is the JSON-serializable shape of a single OutputResult.
type SearchMatch struct {
	Output     string `json:"output"`
	StartIndex int    `json:"start_index"`
	EndIndex   int    `json:"end_index"`
}

// searchCmd builds an automaton from the given keywords and runs it once
// over a single input, printing every match. It exists to exercise the
// corasick package end to end from the command line; long-lived,
// repeatedly-updated keyword sets belong in corasick.BufferedAutomaton, not
// in this one-shot command.
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search an input for occurrences of a set of keywords",
	Long: `search builds an Aho-Corasick automaton from a keyword set and reports
every occurrence of every keyword in the given input.

Keywords may be given with repeated --keyword flags, a --keyword-file (one
keyword per line), or both. The input is read from --input, or from stdin if
omitted.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringArrayVar(&searchKeywords, "keyword", nil, "keyword to search for (repeatable)")
	searchCmd.Flags().StringVar(&searchKeywordFile, "keyword-file", "", "path to a file of newline-separated keywords")
	searchCmd.Flags().StringVar(&searchInputFile, "input", "", "path to the input file to search (default: stdin)")
	searchCmd.Flags().BoolVar(&searchAllowOverlaps, "allow-overlapping", false, "report every match, including overlapping ones")
	searchCmd.Flags().BoolVar(&searchOnlyTokens, "only-tokens", false, "restrict matches to whitespace-token-aligned spans")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "emit matches as JSON instead of text")
}

func runSearch(cmd *cobra.Command, args []string) error {
	keywords, err := loadKeywords()
	if err != nil {
		return err
	}
	if len(keywords) == 0 {
		return fmt.Errorf("no keywords given: pass --keyword and/or --keyword-file")
	}

	input, err := loadInput()
	if err != nil {
		return err
	}

	buildID := uuid.NewString()
	start := time.Now()

	a := corasick.NewAutomaton()
	for _, k := range keywords {
		if err := a.Add(k); err != nil {
			return fmt.Errorf("adding keyword %q: %w", k, err)
		}
	}
	if err := a.Prepare(); err != nil {
		return fmt.Errorf("preparing automaton: %w", err)
	}

	logger.Info("automaton built",
		"build_id", buildID,
		"keyword_count", len(keywords),
		"build_duration", time.Since(start))

	allowOverlapping := cmdutil.GetBoolConfig("search.allow_overlapping", searchAllowOverlaps)
	onlyTokens := cmdutil.GetBoolConfig("search.only_tokens", searchOnlyTokens)

	results, err := a.CompleteSearch(input, allowOverlapping, onlyTokens, nil)
	if err != nil {
		return fmt.Errorf("searching input: %w", err)
	}

	logger.Info("search complete", "build_id", buildID, "match_count", len(results))

	return printResults(cmd.OutOrStdout(), results)
}

func loadKeywords() ([]string, error) {
	keywords := cmdutil.GetStringSliceConfig("search.keywords", searchKeywords)

	path := cmdutil.GetStringConfig("search.keyword_file", searchKeywordFile)
	if path == "" {
		return keywords, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keyword file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		keywords = append(keywords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading keyword file: %w", err)
	}
	return keywords, nil
}

func loadInput() (string, error) {
	path := cmdutil.GetStringConfig("search.input", searchInputFile)
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input file: %w", err)
	}
	return string(data), nil
}

func printResults(w io.Writer, results []corasick.OutputResult) error {
	matches := make([]SearchMatch, len(results))
	for i, r := range results {
		out, _ := r.Output.(string)
		matches[i] = SearchMatch{Output: out, StartIndex: r.StartIndex, EndIndex: r.EndIndex}
	}

	if searchJSON || viper.GetBool("search.json") {
		data, err := output.MarshalJSON(matches)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	for _, m := range matches {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\n", m.Output, m.StartIndex, m.EndIndex); err != nil {
			return err
		}
	}
	return nil
}
