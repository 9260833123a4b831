// Package day8 solves "Handheld Halting". Part 2 avoids brute force: the
// program is split into basic blocks and the single jmp/nop flip that links
// the entry block to the exit block is found from graph connectivity.
package day8

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/phlip9/aoc20/internal/input"
	"github.com/phlip9/aoc20/internal/puzzle"
)

// Op is an instruction opcode.
type Op uint8

const (
	Acc Op = iota
	Jmp
	Nop
)

var opNames = [...]string{Acc: "acc", Jmp: "jmp", Nop: "nop"}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", o)
}

// Instr is one instruction with its signed argument.
type Instr struct {
	Op  Op
	Arg int
}

func (in Instr) String() string {
	return fmt.Sprintf("%s %+d", in.Op, in.Arg)
}

// Repaired swaps jmp and nop. Repairing acc is a bug in the caller.
func (in Instr) Repaired() Instr {
	switch in.Op {
	case Jmp:
		return Instr{Nop, in.Arg}
	case Nop:
		return Instr{Jmp, in.Arg}
	}
	panic("day8: can't repair " + in.String())
}

// Program is a list of instructions.
type Program []Instr

// ParseInstr reads "acc +1", "jmp -3" and "nop +0".
func ParseInstr(s string) (Instr, error) {
	name, arg, ok := strings.Cut(s, " ")
	if !ok {
		return Instr{}, puzzle.Malformed("instruction %q", s)
	}
	var in Instr
	switch name {
	case "acc":
		in.Op = Acc
	case "jmp":
		in.Op = Jmp
	case "nop":
		in.Op = Nop
	default:
		return Instr{}, puzzle.Malformed("unknown opcode %q", name)
	}
	n, err := strconv.ParseInt(arg, 10, 16)
	if err != nil {
		return Instr{}, puzzle.Malformed("argument %q: %v", arg, err)
	}
	in.Arg = int(n)
	return in, nil
}

// Parse reads one instruction per line.
func Parse(in []byte) (Program, error) {
	var prog Program
	for i, line := range input.StringLines(string(in)) {
		instr, err := ParseInstr(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		prog = append(prog, instr)
	}
	return prog, nil
}

// Eval runs the program. It returns the accumulator and whether the program
// terminated; otherwise it stopped right before executing an instruction for
// the second time.
func Eval(prog Program) (acc int64, terminated bool) {
	visited := bitset.New(uint(len(prog)))
	ip := 0
	for {
		if ip < 0 || ip >= len(prog) {
			return acc, true
		}
		if visited.Test(uint(ip)) {
			return acc, false
		}
		visited.Set(uint(ip))

		switch in := prog[ip]; in.Op {
		case Acc:
			acc += int64(in.Arg)
		case Jmp:
			ip += in.Arg - 1
		}
		ip++
	}
}

func (prog Program) isJump(i int, includeNop bool) bool {
	op := prog[i].Op
	return op == Jmp || (includeNop && op == Nop)
}

func (prog Program) inRange(i int) bool {
	return i >= 0 && i < len(prog)
}

// Leaders marks the first instruction of every basic block: the program
// entry, every in-range jump target, and every instruction that follows a
// jump. With includeNop, nops count as jumps.
func Leaders(prog Program, includeNop bool) *bitset.BitSet {
	leaders := bitset.New(uint(len(prog)))
	if len(prog) == 0 {
		return leaders
	}
	leaders.Set(0)
	for i := range prog {
		if i > 0 && prog.isJump(i-1, includeNop) {
			leaders.Set(uint(i))
		}
		if prog.isJump(i, includeNop) {
			if t := i + prog[i].Arg; prog.inRange(t) {
				leaders.Set(uint(t))
			}
		}
	}
	return leaders
}

// Block is the half-open instruction range [Start, End).
type Block struct {
	Start, End int
}

func (b Block) String() string { return fmt.Sprintf("[%d,%d)", b.Start, b.End) }

// Ones lists the set bits in ascending order.
func Ones(b *bitset.BitSet) []int {
	out := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// BasicBlocks cuts [0, end) at each leader.
func BasicBlocks(leaders []int, end int) []Block {
	blocks := make([]Block, 0, len(leaders))
	for i, start := range leaders {
		stop := end
		if i+1 < len(leaders) {
			stop = leaders[i+1]
		}
		blocks = append(blocks, Block{start, stop})
	}
	return blocks
}

// BlockMap maps each instruction index to the index of its block.
func BlockMap(blocks []Block) []int {
	var m []int
	for bi, b := range blocks {
		for i := b.Start; i < b.End; i++ {
			m = append(m, bi)
		}
	}
	return m
}

// BlockGraph is the control flow graph over basic blocks.
type BlockGraph struct {
	out [][]int
	in  [][]int
}

func (g *BlockGraph) addEdge(from, to int) {
	g.out[from] = append(g.out[from], to)
	g.in[to] = append(g.in[to], from)
}

// Len returns the number of blocks.
func (g *BlockGraph) Len() int { return len(g.out) }

// Edges returns every (from, to) pair, sorted.
func (g *BlockGraph) Edges() [][2]int {
	var edges [][2]int
	for from, tos := range g.out {
		for _, to := range tos {
			edges = append(edges, [2]int{from, to})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}

// NewBlockGraph links blocks with fallthrough edges (the instruction before a
// leader is not a jmp) and jmp edges (a block ending in an in-range jmp).
func NewBlockGraph(prog Program, blocks []Block, blockMap []int) *BlockGraph {
	g := &BlockGraph{
		out: make([][]int, len(blocks)),
		in:  make([][]int, len(blocks)),
	}
	for bi, b := range blocks {
		if b.Start != 0 && prog[b.Start-1].Op != Jmp {
			g.addEdge(bi-1, bi)
		}
		last := b.End - 1
		if prog[last].Op == Jmp {
			if t := last + prog[last].Arg; prog.inRange(t) {
				g.addEdge(bi, blockMap[t])
			}
		}
	}
	return g
}

func reach(adj [][]int, from int) *bitset.BitSet {
	seen := bitset.New(uint(len(adj)))
	seen.Set(uint(from))
	stack := []int{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, m := range adj[n] {
			if !seen.Test(uint(m)) {
				seen.Set(uint(m))
				stack = append(stack, m)
			}
		}
	}
	return seen
}

// SourceConnectivity marks the blocks reachable from the entry block.
func (g *BlockGraph) SourceConnectivity() *bitset.BitSet {
	return reach(g.out, 0)
}

// TerminalConnectivity marks the blocks from which the exit block is reachable.
func (g *BlockGraph) TerminalConnectivity() *bitset.BitSet {
	return reach(g.in, g.Len()-1)
}

// Connected reports whether execution from the entry can reach the exit block.
func (g *BlockGraph) Connected() bool {
	return g.SourceConnectivity().Test(uint(g.Len() - 1))
}

// FindRepair returns the index of the jmp or nop whose flip connects the entry
// to the exit. ok is false when the program already terminates as written.
// Removing an edge never improves connectivity, so only the edge a flip adds
// is considered: the fallthrough of a jmp turned nop, or the jump of a nop
// turned jmp.
func FindRepair(prog Program) (idx int, ok bool) {
	if len(prog) == 0 {
		return 0, false
	}
	blocks := BasicBlocks(Ones(Leaders(prog, true)), len(prog))
	blockMap := BlockMap(blocks)
	g := NewBlockGraph(prog, blocks, blockMap)
	if g.Connected() {
		return 0, false
	}

	source := g.SourceConnectivity()
	terminal := g.TerminalConnectivity()
	slog.Debug("block graph", "blocks", len(blocks), "source", source.Count(), "terminal", terminal.Count())

	for _, bi := range Ones(source) {
		b := blocks[bi]
		candidates := []int{b.Start}
		if b.End-1 != b.Start {
			candidates = append(candidates, b.End-1)
		}
		for _, i := range candidates {
			switch in := prog[i]; in.Op {
			case Jmp:
				if bi+1 < len(blocks) && terminal.Test(uint(bi+1)) {
					return i, true
				}
			case Nop:
				if t := i + in.Arg; prog.inRange(t) && terminal.Test(uint(blockMap[t])) {
					return i, true
				}
			}
		}
	}
	return 0, true
}

// Solve reports the accumulator at the loop and after the repair.
func Solve(_ context.Context, in []byte) (puzzle.Answer, error) {
	prog, err := Parse(in)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if len(prog) == 0 {
		return puzzle.Answer{}, puzzle.Malformed("empty program")
	}

	loopAcc, terminated := Eval(prog)
	if terminated {
		return puzzle.Answer{}, puzzle.NoSolution("program terminates without repair")
	}

	idx, ok := FindRepair(prog)
	if !ok {
		return puzzle.Answer{}, puzzle.NoSolution("no repair needed")
	}
	if prog[idx].Op == Acc {
		return puzzle.Answer{}, puzzle.NoSolution("no jmp or nop repair connects the program")
	}
	repaired := make(Program, len(prog))
	copy(repaired, prog)
	repaired[idx] = repaired[idx].Repaired()
	slog.Debug("repair", "index", idx, "from", prog[idx], "to", repaired[idx])

	acc, terminated := Eval(repaired)
	if !terminated {
		return puzzle.Answer{}, puzzle.NoSolution("repair at %d still loops", idx)
	}
	return puzzle.Answer{Part1: loopAcc, Part2: acc}, nil
}
