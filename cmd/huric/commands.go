package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/agenthands/huric/internal/config"
	"github.com/agenthands/huric/internal/core/graph"
	"github.com/agenthands/huric/internal/core/language"
	"github.com/agenthands/huric/internal/core/model"
	"github.com/agenthands/huric/internal/core/vocabulary"
)

type options struct {
	configPath string
	envFile    string
	verbose    bool
	localNames bool
	format     string
	normalize  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "huric",
		Short:         "Semantic head, lemma, vocabulary and graph helpers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.loadEnv(log.New(cmd.ErrOrStderr(), "", 0))
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "config/config.toml", "config file (toml or yaml)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "environment file loaded before the config")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "report setup details on stderr")

	root.AddCommand(
		newGraphCmd(opts),
		newRootsCmd(opts),
		newNormalizeCmd(opts),
		newVocabCmd(opts),
		newHeadCmd(opts),
		newLemmaCmd(opts),
	)
	return root
}

// loadEnv loads the env file; a missing file is only reported with --verbose.
func (o *options) loadEnv(logger *log.Logger) {
	if err := godotenv.Load(o.envFile); err != nil && o.verbose {
		logger.Println("No .env file found, using defaults")
	}
}

// loadConfig falls back to defaults when the config file does not exist.
func (o *options) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

func (o *options) cleaner() graph.CleanFunc {
	if o.localNames {
		return graph.LocalName
	}
	return graph.Identity
}

func newGraphCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph [edges.json]",
		Short: "Render an edge list as a coloured graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := readEdges(cmd, args)
			if err != nil {
				return err
			}
			if opts.normalize {
				edges = graph.Normalize(edges, nil)
			}
			g := graph.Build(edges, opts.cleaner())

			switch opts.format {
			case "json":
				return writeJSON(cmd.OutOrStdout(), g)
			case "dot":
				return g.WriteDOT(cmd.OutOrStdout())
			default:
				return fmt.Errorf("unsupported format: %s", opts.format)
			}
		},
	}
	cmd.Flags().BoolVar(&opts.localNames, "local-names", false, "use the last URI segment as node name")
	cmd.Flags().StringVar(&opts.format, "format", "dot", "output format: dot or json")
	cmd.Flags().BoolVar(&opts.normalize, "dedupe", false, "drop duplicate edges before building")
	return cmd
}

func newRootsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "roots [edges.json]",
		Short: "List identifiers that are never the target of an edge",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := readEdges(cmd, args)
			if err != nil {
				return err
			}
			for _, r := range graph.Roots(edges) {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
}

func newNormalizeCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize [edges.json]",
		Short: "Clean identifiers and drop duplicate edges",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := readEdges(cmd, args)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), graph.Normalize(edges, opts.cleaner()))
		},
	}
	cmd.Flags().BoolVar(&opts.localNames, "local-names", false, "use the last URI segment as node name")
	return cmd
}

func newVocabCmd(opts *options) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "vocab [category]",
		Short: "List frame-element categories, or the values of one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				cfg, err := opts.loadConfig()
				if err != nil {
					return err
				}
				path = cfg.Vocabulary.Path
			}
			v, err := vocabulary.Load(path)
			if err != nil {
				return err
			}

			lines := v.Categories()
			if len(args) == 1 {
				if lines, err = v.Values(args[0]); err != nil {
					return err
				}
			}
			for _, l := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), l)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "file", "", "interaction model JSON (default from config)")
	return cmd
}

func newHeadCmd(opts *options) *cobra.Command {
	var lemma bool
	cmd := &cobra.Command{
		Use:   "head <text>",
		Short: "Print the semantic head of the first sentence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			u, err := language.FromConfig(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			var out string
			if lemma {
				out, err = u.SemanticHeadLemmatize(cmd.Context(), text)
			} else {
				out, err = u.SemanticHead(cmd.Context(), text)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&lemma, "lemma", false, "print the head's lemma, pronouns mapped to person/thing")
	return cmd
}

func newLemmaCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lemma <word>...",
		Short: "Print the noun lemma of each word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			l, err := language.NewLemmatizer(cfg.Lemmatizer)
			if err != nil {
				return err
			}
			for _, w := range args {
				fmt.Fprintln(cmd.OutOrStdout(), l.Lemmatize(w, model.POSNoun))
			}
			return nil
		},
	}
}

// readEdges reads a JSON edge list from the file argument or stdin. Both
// [{"source":..,"target":..,"label":..}] and [["a","b","label"]] are accepted.
func readEdges(cmd *cobra.Command, args []string) ([]model.Edge, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return decodeEdges(data)
}

func decodeEdges(data []byte) ([]model.Edge, error) {
	var edges []model.Edge
	if err := json.Unmarshal(data, &edges); err == nil {
		return edges, nil
	}

	var triples [][3]string
	if err := json.Unmarshal(data, &triples); err != nil {
		return nil, fmt.Errorf("failed to decode edges: %w", err)
	}
	edges = make([]model.Edge, 0, len(triples))
	for _, t := range triples {
		edges = append(edges, model.NewEdge(t[0], t[1], t[2]))
	}
	return edges, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
