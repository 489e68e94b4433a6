// Package cli is an interactive prompt over the engine, for debugging and
// trying search types by hand.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/bastiangx/wordsolve/internal/utils"
	"github.com/bastiangx/wordsolve/pkg/engine"
	"github.com/bastiangx/wordsolve/pkg/solver"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// maxPerGroup caps how many words of one length are printed.
const maxPerGroup = 40

var (
	wordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	blankStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	headerStyle = lipgloss.NewStyle().Bold(true)
)

// Solver is the part of the engine the prompt needs.
type Solver interface {
	CheckWord(ctx context.Context, word string) engine.CheckWordResult
	SolveAnagram(ctx context.Context, letters, searchType, originalLetters string) engine.SolveResult
	Stats() map[string]int
}

// InputHandler reads commands line by line and prints the answers.
//
//	check C?T         validate a word
//	wordbuilder CATS  run a named search type
//	AC?               run the default search type
//	stats             print engine counters
type InputHandler struct {
	solver        Solver
	defaultSearch string
	showBlanks    bool
	requestCount  int
	in            io.Reader
	log           *log.Logger
}

// NewInputHandler creates a prompt reading stdin.
func NewInputHandler(s Solver, defaultSearch string, showBlanks bool) *InputHandler {
	return &InputHandler{
		solver:        s,
		defaultSearch: defaultSearch,
		showBlanks:    showBlanks,
		in:            os.Stdin,
		log:           log.Default(),
	}
}

// WithIO swaps the input and the logger output, mainly for tests.
func (h *InputHandler) WithIO(in io.Reader, out *log.Logger) *InputHandler {
	h.in = in
	h.log = out
	return h
}

// Start runs the prompt until the input ends or ctx is done.
func (h *InputHandler) Start(ctx context.Context) error {
	h.log.Print("wordsolve CLI")
	h.log.Print("type letters (? for blanks) or 'check WORD', 'help' for more (Ctrl+C to exit):")
	reader := bufio.NewReader(h.in)

	for ctx.Err() == nil {
		h.log.Print("> ")
		line, err := reader.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" {
			h.handleInput(ctx, line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (h *InputHandler) handleInput(ctx context.Context, line string) {
	h.requestCount++
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(cmd) {
	case "help":
		h.printHelp()
		return
	case "stats":
		h.printStats()
		return
	case "check":
		if arg == "" {
			h.log.Error("Usage: check WORD")
			return
		}
		h.check(ctx, arg)
		return
	}

	if st, ok := solver.ParseSearchType(cmd); ok && (arg != "" || !st.TakesLetters()) {
		h.solve(ctx, arg, st)
		return
	}
	st, _ := solver.ParseSearchType(h.defaultSearch)
	h.solve(ctx, line, st)
}

func (h *InputHandler) check(ctx context.Context, word string) {
	start := time.Now()
	res := h.solver.CheckWord(ctx, word)
	log.Debugf("Took [ %v ] to check '%s'", time.Since(start), word)
	if res.IsValid {
		h.log.Printf("%s is valid", wordStyle.Render(strings.ToUpper(word)))
		return
	}
	h.log.Warnf("%s is not a word", strings.ToUpper(word))
}

func (h *InputHandler) solve(ctx context.Context, letters string, st solver.SearchType) {
	if st.TakesLetters() && !utils.IsValidRack(letters) {
		h.log.Errorf("Not a rack: '%s'", letters)
		return
	}
	start := time.Now()
	res := h.solver.SolveAnagram(ctx, letters, string(st), letters)
	log.Debugf("Took [ %v ] for %s '%s'", time.Since(start), res.SearchType, letters)

	query := ""
	if st.TakesLetters() {
		query = fmt.Sprintf(" for '%s'", letters)
	}
	total := res.Results.Count()
	if total == 0 {
		h.log.Warnf("No %s results%s", res.SearchType, query)
		return
	}
	h.log.Printf("Found %s %s results%s:", utils.FormatWithCommas(total), res.SearchType, query)

	lengths := res.Results.Lengths()
	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))
	for _, n := range lengths {
		group := res.Results[n]
		h.log.Print(headerStyle.Render(fmt.Sprintf("%d letters (%d)", n, len(group))))
		for i, m := range group {
			if i == maxPerGroup {
				h.log.Printf("   ... and %d more", len(group)-maxPerGroup)
				break
			}
			h.log.Printf("   %s", h.formatMatch(m))
		}
	}
}

func (h *InputHandler) formatMatch(m solver.Match) string {
	word := wordStyle.Render(m.Word)
	if !h.showBlanks || len(m.BlankSubstitutions) == 0 {
		return word
	}
	return fmt.Sprintf("%s %s", word, blankStyle.Render("?="+strings.Join(m.BlankSubstitutions, ",")))
}

func (h *InputHandler) printStats() {
	stats := h.solver.Stats()
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		h.log.Printf("%-16s %s", k, utils.FormatWithCommas(stats[k]))
	}
	h.log.Printf("%-16s %d", "cliRequests", h.requestCount)
}

func (h *InputHandler) printHelp() {
	names := make([]string, len(solver.SearchTypes))
	for i, st := range solver.SearchTypes {
		names[i] = string(st)
	}
	h.log.Print("check WORD          validate a word, ? _ * . are blanks")
	h.log.Print("<type> LETTERS      run a search: " + strings.Join(names, ", "))
	h.log.Print("<type>              qwithoutu and the fixed-length lists need no letters")
	h.log.Printf("LETTERS             run the default search (%s)", h.defaultSearch)
	h.log.Print("stats               engine counters")
}
