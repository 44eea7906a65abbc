// sudokusolver - a Sudoku puzzle solver library and web service.
// Copyright (C) 2024 Wendell Smith.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.

// Command-line solver and web service for Sudoku grids
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wackywendell/sudokusolver/puzzle"
	"github.com/wackywendell/sudokusolver/storage"
)

var log = logrus.New()

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sudokusolver",
		Short:         "Solve 9x9 Sudoku grids",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// a missing .env is not an error
			if err := godotenv.Load(); err == nil {
				log.Debug("loaded environment from .env")
			}
		},
	}
	root.AddCommand(newSolveCommand())
	root.AddCommand(newServeCommand())
	root.AddCommand(newPuzzlesCommand())
	return root
}

/*

solve command

*/

func newSolveCommand() *cobra.Command {
	var all bool
	var candidates bool
	var store bool
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve a grid read from a file or standard input",
		Long: "Solve reads a grid as nine lines of nine marks (digits for " +
			"clues; 0, -, or space for open cells) and prints its solution.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readBoard(args)
			if err != nil {
				return err
			}
			if all {
				return solveAll(b)
			}
			if store {
				return solveStored(cmd.Context(), b)
			}
			return solveFirst(b, candidates)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "print every solution")
	cmd.Flags().BoolVarP(&candidates, "candidates", "c", false,
		"on failure, print the candidate grid")
	cmd.Flags().BoolVar(&store, "store", false,
		"cache solutions in Redis and Postgres")
	return cmd
}

// readBoard reads the puzzle from the named file, or from stdin
// when no file is given.
func readBoard(args []string) (*puzzle.Board, error) {
	if len(args) == 0 {
		return puzzle.Read(os.Stdin)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return puzzle.Read(f)
}

// solveFirst prints the first solution of the board, or reports
// failure.
func solveFirst(b *puzzle.Board, candidates bool) error {
	s, err := b.FirstSolution()
	if err != nil {
		if candidates {
			fmt.Println(b.String())
		}
		return err
	}
	printSolution(s)
	return nil
}

// solveAll prints every solution of the board.
func solveAll(b *puzzle.Board) error {
	solutions := b.Solutions()
	if len(solutions) == 0 {
		return fmt.Errorf("no solutions")
	}
	for i, s := range solutions {
		if i > 0 {
			fmt.Println()
		}
		printSolution(s)
	}
	log.WithField("count", len(solutions)).Info("solutions found")
	return nil
}

// solveStored solves through the storage layer, so repeated
// requests for the same grid hit the cache.
func solveStored(ctx context.Context, b *puzzle.Board) error {
	if _, _, err := storage.Connect(ctx); err != nil {
		return err
	}
	defer storage.Close(ctx)
	s, ok, err := storage.SolveGrid(ctx, b.Grid())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no solutions")
	}
	printSolution(s)
	return nil
}

func printSolution(s puzzle.Solution) {
	b, err := puzzle.New(s.Values)
	if err != nil {
		log.WithError(err).Fatal("solver produced a malformed solution")
	}
	fmt.Println(b.Grid().String())
	if len(s.Choices) > 0 {
		log.WithField("guesses", len(s.Choices)).Info("solved by search")
	}
}

/*

puzzles command

*/

func newPuzzlesCommand() *cobra.Command {
	var save string
	var recent bool
	cmd := &cobra.Command{
		Use:   "puzzles [signature]",
		Short: "List, show, or save stored puzzles",
		Long: "Without arguments, puzzles lists every stored puzzle by name. " +
			"With a signature, it prints that puzzle's grid. With --save, it " +
			"stores a grid read from a file or standard input.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, _, err := storage.Connect(ctx); err != nil {
				return err
			}
			defer storage.Close(ctx)
			if save != "" {
				return savePuzzle(ctx, save, args)
			}
			if len(args) == 1 {
				return showPuzzle(ctx, args[0])
			}
			return listPuzzles(ctx, recent)
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "store a grid under the given name")
	cmd.Flags().BoolVar(&recent, "recent", false, "list newest puzzles first")
	return cmd
}

func savePuzzle(ctx context.Context, name string, args []string) error {
	b, err := readBoard(args)
	if err != nil {
		return err
	}
	sig, err := storage.SavePuzzle(ctx, name, b.Grid())
	if err != nil {
		return err
	}
	fmt.Println(sig)
	return nil
}

func showPuzzle(ctx context.Context, signature string) error {
	g, name, err := storage.LoadPuzzle(ctx, signature)
	if err != nil {
		return err
	}
	log.WithField("name", name).Info("loaded puzzle")
	fmt.Println(g.String())
	return nil
}

func listPuzzles(ctx context.Context, recent bool) error {
	infos, err := storage.ListPuzzles(ctx)
	if err != nil {
		return err
	}
	if recent {
		sort.Sort(storage.ByLatestCreated(infos))
	} else {
		sort.Sort(storage.ByName(infos))
	}
	for _, pi := range infos {
		fmt.Printf("%-12s %s (%d open)\n", pi.Name, pi.Signature, pi.Remaining)
	}
	return nil
}

/*

serve command

*/

func newServeCommand() *cobra.Command {
	var store bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), store)
		},
	}
	cmd.Flags().BoolVar(&store, "store", false,
		"cache solutions in Redis and Postgres")
	return cmd
}

func serve(ctx context.Context, store bool) error {
	mux := http.NewServeMux()
	solve := puzzle.SolveHandler
	if store {
		if _, _, err := storage.Connect(ctx); err != nil {
			return err
		}
		defer storage.Close(ctx)
		solve = storedSolveHandler
	}
	mux.HandleFunc("/api/solve", logged(solve))
	mux.HandleFunc("/api/solutions", logged(puzzle.SolutionsHandler))
	mux.HandleFunc("/api/propagate", logged(puzzle.PropagateHandler))
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Heroku-style port sensing
	port := os.Getenv("PORT")
	if port == "" {
		// running locally in dev mode
		port = "localhost:8080"
	} else {
		// running as a true server
		port = ":" + port
	}

	log.WithField("address", port).Info("listening")
	return http.ListenAndServe(port, mux)
}

// logged adapts an error-returning handler to http.HandleFunc,
// logging the request and any failure.  The handler has already
// responded to the client by the time it returns an error.
func logged(h func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(logrus.Fields{"method": r.Method, "path": r.URL.Path}).
			Info("handling request")
		if err := h(w, r); err != nil {
			log.WithError(err).Warn("request failed")
		}
	}
}

// storedSolveHandler is the storage-backed variant of
// puzzle.SolveHandler: solutions come from the cache when the
// grid has been seen before.
func storedSolveHandler(w http.ResponseWriter, r *http.Request) error {
	var req puzzle.GridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("%q", err.Error()), http.StatusBadRequest)
		return err
	}
	b, err := puzzle.New(req.Values)
	if err != nil {
		if perr, ok := err.(puzzle.Error); ok {
			perr.Message = perr.Error()
			writeHandlerJSON(w, http.StatusBadRequest, perr)
		} else {
			http.Error(w, fmt.Sprintf("%q", err.Error()), http.StatusBadRequest)
		}
		return err
	}
	s, ok, err := storage.SolveGrid(r.Context(), b.Grid())
	if err != nil {
		http.Error(w, fmt.Sprintf("%q", err.Error()), http.StatusInternalServerError)
		return err
	}
	if !ok {
		writeHandlerJSON(w, http.StatusBadRequest, map[string]string{"error": "unsolvable"})
		return fmt.Errorf("grid is unsolvable")
	}
	writeHandlerJSON(w, http.StatusOK, s)
	return nil
}

func writeHandlerJSON(w http.ResponseWriter, status int, obj interface{}) {
	bytes, err := json.Marshal(obj)
	if err != nil {
		status = http.StatusInternalServerError
		bytes = []byte(fmt.Sprintf("%q", err.Error()))
	}
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}
