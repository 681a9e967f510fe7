package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"asmkit/internal/asm"
	"asmkit/internal/asmstore"
	"asmkit/internal/assembly"
	"asmkit/internal/cmdutil"
	"asmkit/internal/fasta"
	"asmkit/internal/indexdb"
	"asmkit/internal/output"
	"asmkit/internal/writers"
)

func newStatsCommand(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <file.asm>",
		Short: "Count the messages of an ASM file",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			if o.Output == "fasta" {
				return usagef("stats cannot be written as fasta")
			}
			p, err := asm.Open(a[0])
			if err != nil {
				return err
			}
			s, err := asmstore.Summarize(cmd.Context(), p)
			if err != nil {
				return err
			}
			return writers.WriteSummary(cmd.OutOrStdout(), o.Output, output.ToAPISummary(a[0], s))
		},
	}
}

func newValidateCommand(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file.asm>",
		Short: "Parse every field of an ASM file and report the first error",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			p, err := asm.Open(a[0])
			if err != nil {
				return err
			}
			s, err := asmstore.Validate(cmd.Context(), p)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok\t%s\treads=%d unitigs=%d contigs=%d scaffolds=%d placements=%d\n",
				a[0], s.Reads, s.Unitigs, s.Contigs, s.Scaffolds, s.ReadPlacements+s.UnitigPlacements)
			return err
		},
	}
}

func newIDsCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ids <file.asm>",
		Short: "List contig or unitig ids, sorted",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			p, err := asm.Open(a[0])
			if err != nil {
				return err
			}
			ids, err := asmstore.ListIDs(cmd.Context(), p, o.kind())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, id := range ids {
				if _, err := fmt.Fprintln(w, id); err != nil {
					return err
				}
			}
			return nil
		},
	}
	bindKind(cmd, o)
	return cmd
}

func newIndexCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index <file.asm>",
		Short: "Build (or refresh) the bookmark sidecar of an ASM file",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			if o.NoSidecar {
				return usagef("index writes the sidecar; drop --no-sidecar")
			}
			p, err := asm.Open(a[0])
			if err != nil {
				return err
			}
			if !p.CanCreateBookmarks() {
				return usagef("index needs a file, not stdin")
			}
			sidecar := indexdb.SidecarPath(p.Path(), o.IndexSuffix)
			if o.Force {
				if err := indexdb.Remove(sidecar); err != nil {
					return err
				}
			}
			w := cmd.OutOrStdout()
			for _, k := range []asmstore.Kind{asmstore.Contigs, asmstore.Unitigs} {
				ix, built, err := indexdb.LoadOrBuild(cmd.Context(), sidecar, p, k)
				if err != nil {
					return err
				}
				state := "current"
				if built {
					state = "built"
				}
				if _, err := fmt.Fprintf(w, "%ss\t%d\t%s\t%s\n", k, ix.Len(), state, sidecar); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&o.Force, "force", "f", false, "rebuild even if the sidecar is current")
	return cmd
}

func newGetCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file.asm> <id>...",
		Short: "Rebuild contigs or unitigs by id through the bookmark index",
		Args:  args(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, a []string) error {
			return runGet(cmd.Context(), o, cmd.OutOrStdout(), cmd.ErrOrStderr(), a[0], a[1:])
		},
	}
	bindKind(cmd, o)
	bindLayout(cmd, o)
	return cmd
}

func newDumpCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file.asm>",
		Short: "Rebuild every contig or unitig of an ASM file",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			return runDump(cmd.Context(), o, cmd.OutOrStdout(), cmd.ErrOrStderr(), a[0])
		},
	}
	bindKind(cmd, o)
	bindLayout(cmd, o)
	return cmd
}

func loadReads(ctx context.Context, o *Options, stderr io.Writer) (fasta.Sequences, error) {
	if len(o.Reads) == 0 {
		return nil, usagef("rebuilding reads needs --reads <fasta> (or reads.fasta in the config)")
	}
	seqs, err := fasta.Load(ctx, o.Reads, nil)
	if err != nil {
		return nil, err
	}
	cmdutil.Infof(stderr, o.Verbose, "loaded %d read sequences from %d file(s)", len(seqs), len(o.Reads))
	return seqs, nil
}

// openIndex returns the sidecar index when enabled, building it once.
func openIndex(ctx context.Context, o *Options, stderr io.Writer, p *asm.Parser) (*asmstore.Index, error) {
	kind := o.kind()
	if o.NoSidecar {
		return asmstore.BuildIndex(ctx, p, kind, nil)
	}
	sidecar := indexdb.SidecarPath(p.Path(), o.IndexSuffix)
	ix, built, err := indexdb.LoadOrBuild(ctx, sidecar, p, kind)
	if err != nil {
		return nil, err
	}
	if built {
		cmdutil.Infof(stderr, o.Verbose, "indexed %d %ss into %s", ix.Len(), kind, sidecar)
	} else {
		cmdutil.Infof(stderr, o.Verbose, "using %s (%d %ss)", sidecar, ix.Len(), kind)
	}
	return ix, nil
}

type getter func(ctx context.Context, id string) (assembly.Layout, error)

func openGetter(ctx context.Context, o *Options, p *asm.Parser, reads fasta.Sequences, ix *asmstore.Index) (getter, func() error, error) {
	opt := asmstore.Options{Index: ix, CacheSize: o.CacheSize}
	switch o.kind() {
	case asmstore.Unitigs:
		s, err := asmstore.OpenUnitigs(ctx, p, reads, opt)
		if err != nil {
			return nil, nil, err
		}
		return func(ctx context.Context, id string) (assembly.Layout, error) {
			u, err := s.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return u, nil
		}, s.Close, nil
	default:
		s, err := asmstore.OpenContigs(ctx, p, reads, opt)
		if err != nil {
			return nil, nil, err
		}
		return func(ctx context.Context, id string) (assembly.Layout, error) {
			c, err := s.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			return c, nil
		}, s.Close, nil
	}
}

func runGet(ctx context.Context, o *Options, stdout, stderr io.Writer, path string, ids []string) error {
	p, err := asm.Open(path)
	if err != nil {
		return err
	}
	if !p.CanCreateBookmarks() {
		return fmt.Errorf("get needs random access; use dump for stdin: %w", asm.ErrBookmarkUnsupported)
	}
	reads, err := loadReads(ctx, o, stderr)
	if err != nil {
		return err
	}
	ix, err := openIndex(ctx, o, stderr, p)
	if err != nil {
		return err
	}
	get, closeStore, err := openGetter(ctx, o, p, reads, ix)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()
	cmdutil.Infof(stderr, o.Verbose, "get %d id(s): %s", len(ids), o)

	in, done := writers.StartLayoutWriter(stdout, o.Output, o.writerOptions(), 0)
	missing := 0
	var getErr error
	for _, id := range ids {
		l, err := get(ctx, id)
		if errors.Is(err, asmstore.ErrNotFound) {
			cmdutil.Warnf(stderr, o.Quiet, "%s %q not found in %s", o.kind(), id, path)
			missing++
			continue
		}
		if err != nil {
			getErr = err
			break
		}
		in <- l
	}
	close(in)
	if werr := <-done; getErr == nil {
		getErr = werr
	}
	if getErr == nil && missing > 0 {
		getErr = fmt.Errorf("%d of %d %s id(s) not found", missing, len(ids), o.kind())
	}
	return getErr
}

func runDump(ctx context.Context, o *Options, stdout, stderr io.Writer, path string) error {
	p, err := asm.Open(path)
	if err != nil {
		return err
	}
	reads, err := loadReads(ctx, o, stderr)
	if err != nil {
		return err
	}

	var list []assembly.Layout
	switch o.kind() {
	case asmstore.Unitigs:
		all, err := asmstore.LoadUnitigs(ctx, p, reads, nil)
		if err != nil {
			return err
		}
		for _, u := range all {
			list = append(list, u)
		}
	default:
		all, err := asmstore.LoadContigs(ctx, p, reads, nil)
		if err != nil {
			return err
		}
		for _, c := range all {
			list = append(list, c)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID() < list[j].ID() })
	cmdutil.Infof(stderr, o.Verbose, "rebuilt %d %ss", len(list), o.kind())

	in, done := writers.StartLayoutWriter(stdout, o.Output, o.writerOptions(), 0)
	for _, l := range list {
		in <- l
	}
	close(in)
	return <-done
}
