// Package collect builds and refreshes the jazzdb dataset from public
// song databases. A Pipeline walks a list of titles, asks each enabled
// Source what it knows, merges the answers in source priority order,
// and writes the result back to the JSON dataset. Fetches are cached in
// SQLite so interrupted runs resume without re-hitting the network.
//
// Sources return song metadata only. Chord structures (the Sections
// field) are curated by hand and never touched by the collector.
package collect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/jazzdb/pkg/types"
)

// ErrNotFound reports that a source answered but knows nothing about
// the title. Transport and decode failures are returned as ordinary
// errors and are not cached.
var ErrNotFound = errors.New("song not found")

// Finding is what one source knows about a song. Nil fields mean the
// source had nothing for that field.
type Finding struct {
	Composer      *string `json:"composer,omitempty"`
	Key           *string `json:"key,omitempty"`
	Rhythm        *string `json:"rhythm,omitempty"`
	TimeSignature *string `json:"time_signature,omitempty"`
}

// Empty reports whether the finding carries no data at all.
func (f *Finding) Empty() bool {
	return f == nil ||
		(f.Composer == nil && f.Key == nil && f.Rhythm == nil && f.TimeSignature == nil)
}

func (f *Finding) complete() bool {
	return f.Composer != nil && f.Key != nil && f.Rhythm != nil && f.TimeSignature != nil
}

// merge copies fields from other that f does not have yet. Calling it
// in source priority order makes the first source to answer win.
func (f *Finding) merge(other *Finding) {
	if other == nil {
		return
	}
	if f.Composer == nil {
		f.Composer = other.Composer
	}
	if f.Key == nil {
		f.Key = other.Key
	}
	if f.Rhythm == nil {
		f.Rhythm = other.Rhythm
	}
	if f.TimeSignature == nil {
		f.TimeSignature = other.TimeSignature
	}
}

// Source looks up one song title in a remote database.
type Source interface {
	// Name identifies the source in logs, the cache, and the report.
	Name() string

	// Delay is the politeness pause after each network lookup.
	Delay() time.Duration

	// Lookup fetches what the source knows about title. It returns
	// ErrNotFound when the source has no entry for the song.
	Lookup(ctx context.Context, title string) (*Finding, error)
}

// Summary holds the outcome counts of one collect run.
type Summary struct {
	// Processed is how many titles the run looked at.
	Processed int `yaml:"processed"`

	// Updated is how many songs gained at least one field.
	Updated int `yaml:"updated"`

	// Skipped is how many titles already had complete entries.
	Skipped int `yaml:"skipped"`

	// NotFound is how many titles no source knew.
	NotFound int `yaml:"not_found"`

	// SourceErrors counts individual source failures. A title can
	// still be updated when another source answered.
	SourceErrors int `yaml:"source_errors"`
}

// Pipeline drives one collect run. Sources are queried in slice order;
// Cache and Log may be nil.
type Pipeline struct {
	Sources []Source
	Cache   *Cache
	Log     *zap.Logger
	Out     io.Writer

	cfg types.CollectConfig
}

// NewPipeline wires a pipeline from its parts, substituting no-op
// defaults for a nil logger or output writer.
func NewPipeline(cfg types.CollectConfig, sources []Source, cache *Cache, log *zap.Logger, out io.Writer) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	return &Pipeline{Sources: sources, Cache: cache, Log: log, Out: out, cfg: cfg}
}

// Run processes titles against the dataset. Titles whose entries are
// already complete are skipped unless Refresh is set. The dataset is
// saved every SaveEvery titles and once more at the end, so a failed or
// cancelled run keeps the work done so far.
func (p *Pipeline) Run(ctx context.Context, titles []string, ds *Dataset) (Summary, error) {
	var sum Summary

	for _, raw := range titles {
		title := CleanTitle(raw)
		if title == "" {
			continue
		}
		if p.cfg.Limit > 0 && sum.Processed >= p.cfg.Limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return sum, p.finish(ds, err)
		}
		sum.Processed++

		existing := ds.Find(title)
		if existing != nil && songComplete(existing) && !p.cfg.Refresh {
			sum.Skipped++
			p.Log.Debug("skipping complete entry", zap.String("title", title))
			fmt.Fprintf(p.Out, "Skipping %q (already complete)\n", title)
			continue
		}

		finding, err := p.lookup(ctx, title, &sum)
		if err != nil {
			return sum, p.finish(ds, err)
		}
		if finding.Empty() {
			sum.NotFound++
			p.Log.Warn("no source had song", zap.String("title", title))
			fmt.Fprintf(p.Out, "Warning: no source had %q\n", title)
			continue
		}

		song := existing
		if song == nil {
			song = &types.Song{Title: title}
		}
		filled := applyFinding(song, finding, p.cfg.Refresh)
		ds.Upsert(*song)
		if len(filled) == 0 {
			sum.Skipped++
			fmt.Fprintf(p.Out, "Skipping %q (nothing new)\n", title)
			continue
		}
		sum.Updated++
		p.Log.Info("updated song",
			zap.String("title", title),
			zap.Strings("fields", filled))
		fmt.Fprintf(p.Out, "Updated %q (%s)\n", title, strings.Join(filled, ", "))

		if p.cfg.SaveEvery > 0 && sum.Processed%p.cfg.SaveEvery == 0 {
			if err := ds.Save(); err != nil {
				return sum, err
			}
			p.Log.Debug("saved dataset checkpoint", zap.Int("songs", ds.Len()))
		}
	}

	if err := ds.Save(); err != nil {
		return sum, err
	}
	fmt.Fprintf(p.Out, "\nCollect summary: %d processed, %d updated, %d skipped, %d not found\n",
		sum.Processed, sum.Updated, sum.Skipped, sum.NotFound)
	return sum, nil
}

// lookup queries sources in priority order, consulting and feeding the
// fetch cache, until the merged finding is complete or sources run out.
func (p *Pipeline) lookup(ctx context.Context, title string, sum *Summary) (*Finding, error) {
	merged := &Finding{}
	for _, src := range p.Sources {
		if !p.cfg.Refresh {
			if f, hit := p.cacheGet(ctx, src.Name(), title); hit {
				merged.merge(f)
				if merged.complete() {
					break
				}
				continue
			}
		}

		f, err := src.Lookup(ctx, title)
		switch {
		case errors.Is(err, ErrNotFound):
			p.cachePut(ctx, src.Name(), title, nil)
		case err != nil:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			sum.SourceErrors++
			p.Log.Warn("source lookup failed",
				zap.String("source", src.Name()),
				zap.String("title", title),
				zap.Error(err))
		default:
			p.cachePut(ctx, src.Name(), title, f)
			merged.merge(f)
		}

		if err := sleep(ctx, src.Delay()); err != nil {
			return nil, err
		}
		if merged.complete() {
			break
		}
	}
	return merged, nil
}

func (p *Pipeline) cacheGet(ctx context.Context, source, title string) (*Finding, bool) {
	if p.Cache == nil {
		return nil, false
	}
	f, hit, err := p.Cache.Get(ctx, source, title)
	if err != nil {
		p.Log.Warn("cache read failed", zap.String("title", title), zap.Error(err))
		return nil, false
	}
	if hit {
		p.Log.Debug("cache hit",
			zap.String("source", source),
			zap.String("title", title),
			zap.Bool("found", f != nil))
	}
	return f, hit
}

func (p *Pipeline) cachePut(ctx context.Context, source, title string, f *Finding) {
	if p.Cache == nil {
		return
	}
	if err := p.Cache.Put(ctx, source, title, f); err != nil {
		p.Log.Warn("cache write failed", zap.String("title", title), zap.Error(err))
	}
}

// finish saves the dataset before surfacing err, keeping partial work.
func (p *Pipeline) finish(ds *Dataset, err error) error {
	if saveErr := ds.Save(); saveErr != nil {
		return fmt.Errorf("%w (dataset save also failed: %v)", err, saveErr)
	}
	return err
}

// applyFinding copies finding fields into the song and returns the
// names of the fields it changed. Existing values are kept unless
// overwrite is set; either way the finding must have the field.
func applyFinding(s *types.Song, f *Finding, overwrite bool) []string {
	var filled []string
	if f.Composer != nil && (s.Composer == nil || overwrite) {
		if s.Composer == nil || *s.Composer != *f.Composer {
			filled = append(filled, "composer")
		}
		s.Composer = f.Composer
	}
	if f.Key != nil && (s.Key == nil || overwrite) {
		if s.Key == nil || *s.Key != *f.Key {
			filled = append(filled, "key")
		}
		s.Key = f.Key
	}
	if f.Rhythm != nil && (s.Rhythm == nil || overwrite) {
		if s.Rhythm == nil || *s.Rhythm != *f.Rhythm {
			filled = append(filled, "rhythm")
		}
		s.Rhythm = f.Rhythm
	}
	if f.TimeSignature != nil && (s.TimeSignature == nil || overwrite) {
		if s.TimeSignature == nil || *s.TimeSignature != *f.TimeSignature {
			filled = append(filled, "time")
		}
		s.TimeSignature = f.TimeSignature
	}
	return filled
}

func songComplete(s *types.Song) bool {
	return s.Composer != nil && s.Key != nil && s.Rhythm != nil && s.TimeSignature != nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
