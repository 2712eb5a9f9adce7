// Command chego is a line-oriented driver for the engine: set up a
// position, ask it to search, run perft, and print the board. It is
// deliberately not a UCI protocol adapter — spec §1 scopes GUI/protocol
// collaborators out of this repo.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/chego-engine/chego/internal/board"
	"github.com/chego-engine/chego/internal/config"
	"github.com/chego-engine/chego/internal/perft"
	"github.com/chego-engine/chego/internal/search"
	"github.com/chego-engine/chego/internal/store"
	"github.com/chego-engine/chego/internal/tt"
)

var configPath = flag.String("config", "", "path to a TOML config file")

func main() {
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not start logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Fatal("loading config", zap.String("path", *configPath), zap.Error(err))
		}
	}

	table := tt.New(cfg.TranspositionTableMB)
	d := &driver{
		pos:    board.NewPosition(),
		table:  table,
		engine: search.New(table),
		cfg:    cfg,
		log:    logger,
	}

	persistPath := cfg.PersistPath
	if persistPath == "" {
		if dir, err := store.DefaultDir(); err == nil {
			persistPath = dir
		} else {
			logger.Warn("resolving default persistence directory", zap.Error(err))
		}
	}
	if persistPath != "" {
		if s, err := store.Open(persistPath); err == nil {
			if err := s.LoadTable(d.table); err != nil {
				logger.Warn("loading persisted transposition table", zap.Error(err))
			}
			d.persist = s
		} else {
			logger.Warn("opening persistence store", zap.Error(err))
		}
	}
	if d.persist != nil {
		defer d.persist.Close()
	}

	d.run()
}

// driver holds the REPL's live state across commands.
type driver struct {
	pos     *board.Position
	table   *tt.Table
	engine  *search.Searcher
	persist *store.Store
	cfg     config.Config
	log     *zap.Logger
}

func (d *driver) run() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		cmd := fields[0]
		args := fields[1:]

		switch cmd {
		case "position":
			d.handlePosition(args)
		case "go":
			d.handleGo(args)
		case "perft":
			d.handlePerft(args)
		case "print", "d":
			d.printBoard()
		case "quit", "exit":
			if d.persist != nil {
				if err := d.persist.SaveTable(d.table); err != nil {
					d.log.Warn("persisting transposition table", zap.Error(err))
				}
			}
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		}
	}
}

// handlePosition sets up the working position from "startpos" or "fen
// <fen>", optionally followed by "moves <m1> <m2> ...".
func (d *driver) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var moveStart int
	switch args[0] {
	case "startpos":
		d.pos = board.NewPosition()
		moveStart = 1
	case "fen":
		end := len(args)
		for i := 1; i < len(args); i++ {
			if args[i] == "moves" {
				end = i
				break
			}
		}
		pos, err := board.ParseFEN(strings.Join(args[1:end], " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid fen: %v\n", err)
			return
		}
		d.pos = pos
		moveStart = end
	default:
		fmt.Fprintf(os.Stderr, "unknown position subcommand: %s\n", args[0])
		return
	}

	for i, arg := range args {
		if arg == "moves" {
			moveStart = i + 1
			break
		}
	}

	for _, s := range args[min(moveStart, len(args)):] {
		m, err := board.ParseMove(s, d.pos)
		if err != nil {
			// Not long algebraic — try SAN before giving up.
			m, err = board.ParseSAN(s, d.pos)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid move %q: %v\n", s, err)
				return
			}
		}
		if legal := d.pos.GenerateLegalMoves(); !legal.Contains(m) {
			fmt.Fprintf(os.Stderr, "invalid move %q: illegal move\n", s)
			return
		}
		d.pos.MakeMove(m)
	}
}

func (d *driver) handleGo(args []string) {
	depth := d.cfg.DefaultDepth
	for i := 0; i < len(args)-1; i++ {
		if args[i] == "depth" {
			if n, err := strconv.Atoi(args[i+1]); err == nil {
				depth = n
			}
		}
	}

	start := time.Now()
	m, score := d.engine.Search(d.pos, depth)
	d.log.Info("search complete",
		zap.Int("depth", depth),
		zap.Uint64("nodes", d.engine.Nodes()),
		zap.Int("score", score),
		zap.Duration("elapsed", time.Since(start)),
	)
	if m == board.NoMove {
		fmt.Println("bestmove (none)")
		return
	}
	fmt.Printf("bestmove %s (%s) score %d\n", m, m.ToSAN(d.pos), score)
}

func (d *driver) handlePerft(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: perft <depth>")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid depth: %v\n", err)
		return
	}
	nodes := perft.Perft(d.pos, depth)
	fmt.Printf("nodes %d\n", nodes)
}

// printBoard renders the board with white pieces in cyan and black
// pieces in yellow, for quick visual distinction on a terminal.
func (d *driver) printBoard() {
	white := color.New(color.FgCyan, color.Bold)
	black := color.New(color.FgYellow, color.Bold)

	fmt.Println()
	for rank := 7; rank >= 0; rank-- {
		fmt.Printf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			piece := d.pos.PieceAt(sq)
			if piece == board.NoPiece {
				fmt.Print(". ")
				continue
			}
			if piece.Color() == board.White {
				white.Print(piece.String())
			} else {
				black.Print(piece.String())
			}
			fmt.Print(" ")
		}
		fmt.Println()
	}
	fmt.Println("\n   a b c d e f g h")
	fmt.Printf("side to move: %s   hash: %016x\n", d.pos.SideToMove, d.pos.Hash)
}
