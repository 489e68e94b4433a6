/*
Package engine is the message boundary of the solver.

An Engine starts NotReady. The first Initialize, or the first query when
Initialize was skipped, fetches the word list and builds the lexicon; on
success the engine is Ready for the rest of its life. Concurrent callers that
arrive while a build is in flight wait for that same build.

Queries never fail. While the lexicon cannot be built every query answers with
an empty result set or isValid=false and the build is tried again on the next
query.
*/
package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/bastiangx/wordsolve/internal/logger"
	"github.com/bastiangx/wordsolve/pkg/dictionary"
	"github.com/bastiangx/wordsolve/pkg/lexicon"
	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"
)

// ErrUnknownRequest is returned by Handle for a request type it does not know.
var ErrUnknownRequest = errors.New("engine: unknown request type")

// State is the readiness of an Engine.
type State int

const (
	NotReady State = iota
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "not ready"
}

// Engine owns the lexicon and routes requests to the solver.
type Engine struct {
	source  dictionary.Source
	opts    solver.Options
	log     *log.Logger
	solver  atomic.Pointer[solver.Solver]
	builds  singleflight.Group
	attempt atomic.Int64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSolverOptions sets the options the solver is created with.
func WithSolverOptions(opts solver.Options) Option {
	return func(e *Engine) { e.opts = opts }
}

// WithLogger replaces the engine's logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an engine that builds its lexicon from src.
func New(src dictionary.Source, opts ...Option) *Engine {
	e := &Engine{
		source: src,
		opts:   solver.Options{SortResults: true},
		log:    logger.New("engine"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State reports whether the lexicon is built.
func (e *Engine) State() State {
	if e.solver.Load() != nil {
		return Ready
	}
	return NotReady
}

// Ready is shorthand for State() == Ready.
func (e *Engine) Ready() bool {
	return e.State() == Ready
}

// Initialize builds the lexicon unless it is built already. Calls made while a
// build is running share it. The build error is returned so callers can retry.
func (e *Engine) Initialize(ctx context.Context) error {
	_, err := e.ensure(ctx)
	return err
}

func (e *Engine) ensure(ctx context.Context) (*solver.Solver, error) {
	if s := e.solver.Load(); s != nil {
		return s, nil
	}
	// The build outlives any single caller's cancellation: others share it.
	buildCtx := context.WithoutCancel(ctx)
	ch := e.builds.DoChan("build", func() (any, error) {
		if s := e.solver.Load(); s != nil {
			return s, nil
		}
		return e.build(buildCtx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*solver.Solver), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (e *Engine) build(ctx context.Context) (*solver.Solver, error) {
	n := e.attempt.Add(1)
	start := time.Now()
	e.log.Debug("Building lexicon", "attempt", n)

	raw, err := e.source.Fetch(ctx)
	if err != nil {
		e.log.Error("Word list unavailable", "attempt", n, "err", err)
		return nil, fmt.Errorf("fetch word list: %w", err)
	}
	lex, err := lexicon.Build(string(raw))
	if err != nil {
		e.log.Error("Lexicon build failed", "attempt", n, "err", err)
		return nil, err
	}

	s := solver.New(lex, e.opts)
	e.solver.Store(s)
	e.log.Info("Lexicon ready", "words", lex.Len(), "took", time.Since(start))
	return s, nil
}

// CheckWord reports whether word, blanks allowed, is in the lexicon.
func (e *Engine) CheckWord(ctx context.Context, word string) CheckWordResult {
	res := CheckWordResult{Word: word}
	s, err := e.ensure(ctx)
	if err != nil {
		return res
	}
	res.IsValid = s.IsValid(word)
	return res
}

// SolveAnagram runs the search named by searchType on letters. Unknown search
// types run the anagram search.
func (e *Engine) SolveAnagram(ctx context.Context, letters, searchType, originalLetters string) SolveResult {
	st, known := solver.ParseSearchType(searchType)
	if !known && searchType != "" {
		e.log.Debug("Unknown search type, using anagram", "searchType", searchType)
	}
	if originalLetters == "" {
		originalLetters = letters
	}
	res := SolveResult{
		Letters:         letters,
		Results:         solver.Grouped{},
		OriginalLetters: originalLetters,
		SearchType:      st,
	}

	s, err := e.ensure(ctx)
	if err != nil {
		return res
	}
	res.Results = s.Solve(letters, st)
	return res
}

// Handle answers one request message. The only error is ErrUnknownRequest;
// engine failures surface as empty results.
func (e *Engine) Handle(ctx context.Context, req Request) (Response, error) {
	switch req.Type {
	case RequestInit:
		if err := e.Initialize(ctx); err != nil {
			e.log.Warn("Initialize failed, queries will retry", "err", err)
		}
		return Response{ID: req.ID, Type: ResponseInitComplete, Ready: e.Ready()}, nil

	case RequestCheckWord:
		res := e.CheckWord(ctx, req.Word)
		return Response{ID: req.ID, Type: ResponseCheckWord, Word: res.Word, IsValid: res.IsValid}, nil

	case RequestSolveAnagram:
		res := e.SolveAnagram(ctx, req.Letters, req.SearchType, req.OriginalLetters)
		return Response{
			ID:              req.ID,
			Type:            ResponseSolveAnagram,
			Letters:         res.Letters,
			Results:         res.Results,
			OriginalLetters: res.OriginalLetters,
			SearchType:      res.SearchType.String(),
		}, nil
	}
	return Response{ID: req.ID}, fmt.Errorf("%w: %q", ErrUnknownRequest, req.Type)
}

// Stats returns solver counters, or just the state when not ready.
func (e *Engine) Stats() map[string]int {
	stats := map[string]int{"ready": 0, "buildAttempts": int(e.attempt.Load())}
	if s := e.solver.Load(); s != nil {
		stats["ready"] = 1
		for k, v := range s.Stats() {
			stats[k] = v
		}
	}
	return stats
}
