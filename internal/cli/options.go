package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"asmkit/internal/asmstore"
	"asmkit/internal/config"
	"asmkit/internal/pretty"
	"asmkit/internal/writers"
)

// Options are the resolved settings of one invocation: config file values
// overridden by explicitly set flags.
type Options struct {
	ConfigPath  string
	Output      string
	Reads       []string
	CacheSize   int
	NoSidecar   bool
	IndexSuffix string
	Kind        string
	NoHeader    bool
	Width       int
	Dots        bool
	Force       bool
	Quiet       bool
	Verbose     bool
}

func bindGlobal(cmd *cobra.Command, o *Options) {
	fs := cmd.PersistentFlags()
	fs.StringVar(&o.ConfigPath, "config", "", "YAML config file")
	fs.StringVarP(&o.Output, "output", "o", config.DefaultOutput, "output format: text | tsv | json | jsonl | fasta")
	fs.StringSliceVarP(&o.Reads, "reads", "r", nil, "FASTA file(s) of full-length reads (gzip ok, - for stdin)")
	fs.IntVar(&o.CacheSize, "cache-size", config.DefaultCacheSize, "rebuilt records kept in memory (0 disables)")
	fs.BoolVar(&o.NoSidecar, "no-sidecar", false, "do not read or write the persisted index")
	fs.StringVar(&o.IndexSuffix, "index-suffix", config.DefaultIndexSuffix, "sidecar file name suffix")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "suppress warnings")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "print progress to stderr")
}

func bindKind(cmd *cobra.Command, o *Options) {
	fs := cmd.Flags()
	fs.StringVarP(&o.Kind, "kind", "k", "contig", "record kind: contig | unitig")
}

func bindLayout(cmd *cobra.Command, o *Options) {
	fs := cmd.Flags()
	fs.BoolVar(&o.NoHeader, "no-header", false, "omit the tsv header row")
	fs.IntVar(&o.Width, "width", pretty.DefaultOptions.Width, "text tiling window width (<=0: one window)")
	fs.BoolVar(&o.Dots, "dots", false, "text tiling: print '.' where a read matches the consensus")
}

// resolve merges the config file under the flags the user actually set.
func (o *Options) resolve(cmd *cobra.Command) error {
	fs := cmd.Flags()
	cfg := config.Default()
	if o.ConfigPath != "" {
		var err error
		if cfg, err = config.Load(o.ConfigPath); err != nil {
			return err
		}
	}
	if !fs.Changed("output") {
		o.Output = cfg.Output
	}
	if !fs.Changed("reads") && len(cfg.Reads.FASTA) > 0 {
		o.Reads = cfg.Reads.FASTA
	}
	if !fs.Changed("cache-size") {
		o.CacheSize = cfg.CacheSize
	}
	if !fs.Changed("no-sidecar") {
		o.NoSidecar = !cfg.UseSidecar()
	}
	if !fs.Changed("index-suffix") {
		o.IndexSuffix = cfg.Index.Suffix
	}
	if !fs.Changed("quiet") {
		o.Quiet = cfg.Quiet
	}
	if !fs.Changed("verbose") {
		o.Verbose = cfg.Verbose
	}

	check := config.Config{Output: o.Output, CacheSize: o.CacheSize, Quiet: o.Quiet, Verbose: o.Verbose}
	if err := check.Validate(); err != nil {
		return err
	}
	if o.Kind != "" {
		if _, err := asmstore.ParseKind(o.Kind); err != nil {
			return err
		}
	}
	return nil
}

func (o *Options) kind() asmstore.Kind {
	k, _ := asmstore.ParseKind(o.Kind)
	return k
}

func (o *Options) writerOptions() writers.Options {
	p := pretty.DefaultOptions
	p.Width = o.Width
	p.DotMatches = o.Dots
	return writers.Options{Header: !o.NoHeader, Pretty: p}
}

func (o *Options) String() string {
	return fmt.Sprintf("output=%s kind=%s cache=%d sidecar=%t", o.Output, o.Kind, o.CacheSize, !o.NoSidecar)
}
