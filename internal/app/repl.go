package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"go.trai.ch/ladder/internal/adapters/watcher" //nolint:depguard // Debouncer is shared with the watcher adapter
	"go.trai.ch/ladder/internal/core/domain"
	"go.trai.ch/ladder/internal/engine/provider"
	"go.trai.ch/ladder/internal/ui/style"
	"golang.org/x/sync/errgroup"
)

// Shell commands that end a Repl session.
const (
	CommandQuit      = ":quit"
	CommandQuitShort = ":q"
)

// ReplOptions configures the interactive shell.
type ReplOptions struct {
	// Watch reloads the graph when the dictionary file changes.
	Watch bool
	// Styled renders a prompt and colored paths for terminals.
	Styled bool
}

// Repl answers "start end" queries read from in until in ends, a quit
// command is read, or ctx is done.
func (a *App) Repl(ctx context.Context, opts Options, repl ReplOptions, in io.Reader, out io.Writer) error {
	cfg, err := a.configure(opts)
	if err != nil {
		return err
	}

	req := request(cfg, opts.Rebuild)
	g, err := a.provider.Graph(ctx, req)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("loaded %d words from %s", g.NodeCount(), cfg.DictionaryPath))

	var current atomic.Pointer[domain.Graph]
	current.Store(g)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)

	if repl.Watch {
		// Reloads never force a rebuild. A changed file has a new fingerprint.
		req.Rebuild = false
		if err := a.watch(ctx, eg, req, &current); err != nil {
			return err
		}
	}

	eg.Go(func() error {
		defer cancel()
		return a.serve(ctx, in, out, repl.Styled, &current)
	})

	return eg.Wait()
}

// watch reloads the graph into current after bursts of dictionary changes.
func (a *App) watch(ctx context.Context, eg *errgroup.Group, req provider.Request, current *atomic.Pointer[domain.Graph]) error {
	if err := a.watcher.Start(ctx, req.DictionaryPath); err != nil {
		return err
	}

	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func([]string) {
		if ctx.Err() != nil {
			return
		}
		g, err := a.provider.Graph(ctx, req)
		if err != nil {
			a.logger.Warn(fmt.Sprintf("keeping previous graph, reload failed: %v", err))
			return
		}
		if current.Swap(g) != g {
			a.logger.Info(fmt.Sprintf("dictionary changed, reloaded %d words", g.NodeCount()))
		}
	})

	eg.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		return a.watcher.Stop()
	})
	return nil
}

func (a *App) serve(ctx context.Context, in io.Reader, out io.Writer, styled bool, current *atomic.Pointer[domain.Graph]) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			a.logger.Warn(fmt.Sprintf("stopped reading input: %v", err))
		}
	}()

	for {
		if styled {
			if _, err := fmt.Fprint(out, style.PromptStyle.Render(style.Prompt)+" "); err != nil {
				return err
			}
		}

		var line string
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				return nil
			}
			line = l
		}

		fields := strings.Fields(line)
		switch {
		case len(fields) == 0:
			continue
		case fields[0] == CommandQuit || fields[0] == CommandQuitShort:
			return nil
		case len(fields) != 2:
			if _, err := fmt.Fprintln(out, "usage: <start> <end>"); err != nil {
				return err
			}
			continue
		}

		paths, _, err := a.query(ctx, current.Load(), fields[0], fields[1], ModeShortest, domain.PathLimits{})
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			a.logger.Error(err)
			continue
		}
		if _, err := fmt.Fprintln(out, render(paths, fields[0], fields[1], styled)); err != nil {
			return err
		}
	}
}

func render(paths []domain.Path, start, end string, styled bool) string {
	if len(paths) == 0 {
		msg := fmt.Sprintf("no path from %s to %s", start, end)
		if styled {
			return style.MissStyle.Render(msg)
		}
		return msg
	}
	if !styled {
		return paths[0].String()
	}

	words := make([]string, len(paths[0]))
	for i, w := range paths[0] {
		words[i] = style.WordStyle.Render(w)
	}
	return strings.Join(words, style.ArrowStyle.Render(domain.PathSeparator))
}
