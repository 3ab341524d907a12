package ltsa

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/oprepair/oprepair/automaton"
)

// Parse reads r as an LTSA-format automaton description (see doc.go) and
// returns the corresponding Automaton. Finals are always empty: this
// format does not represent them.
func Parse(r io.Reader) (*automaton.Automaton, error) {
	scanner := bufio.NewScanner(r)

	if err := skipLines(scanner, 3); err != nil {
		return nil, ErrMalformed
	}
	if !scanner.Scan() {
		return nil, ErrMalformed
	}
	numStates, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || numStates <= 0 {
		return nil, ErrMalformed
	}
	if err := skipLines(scanner, 3); err != nil {
		return nil, ErrMalformed
	}

	p := &parseState{
		numStates:   numStates,
		symbolIndex: make(map[string]int),
		transitions: make([]map[int]int, numStates),
		sinks:       make(map[int]bool),
	}
	for i := range p.transitions {
		p.transitions[i] = make(map[int]int)
	}

	for scanner.Scan() {
		if err := p.consumeLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return p.build()
}

type parseState struct {
	numStates   int
	symbols     []string
	symbolIndex map[string]int
	transitions []map[int]int // per state: symbolIndex -> target state
	sinks       map[int]bool
	current     int
}

func skipLines(scanner *bufio.Scanner, count int) error {
	for i := 0; i < count; i++ {
		if !scanner.Scan() {
			return ErrMalformed
		}
	}
	return nil
}

func (p *parseState) symbolID(name string) int {
	if idx, ok := p.symbolIndex[name]; ok {
		return idx
	}
	idx := len(p.symbols)
	p.symbols = append(p.symbols, name)
	p.symbolIndex[name] = idx
	return idx
}

// consumeLine parses one body line, mirroring original_source/ltsa_parser.cpp.
func (p *parseState) consumeLine(line string) error {
	if line == "" {
		return nil
	}
	if p.current >= p.numStates {
		return ErrMalformed
	}

	if strings.Contains(line, "STOP") {
		p.sinks[p.current] = true
		p.current++
		return nil
	}

	open, close := strings.IndexByte(line, '{'), strings.IndexByte(line, '}')
	isGroup := open >= 0 && close > open

	start := strings.IndexByte(line, '(')
	if start >= 0 {
		start++
	} else if start = strings.IndexByte(line, '|'); start >= 0 {
		start++
	} else if !isGroup {
		return ErrMalformed
	}

	target, err := targetState(line)
	if err != nil {
		return err
	}

	if isGroup {
		group := line[open+1 : close]
		for _, tok := range strings.Split(group, ",") {
			name := strings.Join(strings.Fields(tok), "")
			if name == "" {
				continue
			}
			p.transitions[p.current][p.symbolID(name)] = target
		}
	} else {
		arrow := strings.Index(line, "->")
		if arrow < 0 || arrow < start {
			return ErrMalformed
		}
		name := strings.Join(strings.Fields(line[start:arrow]), "")
		if name == "" {
			return ErrMalformed
		}
		p.transitions[p.current][p.symbolID(name)] = target
	}

	if strings.HasSuffix(strings.TrimRight(line, "\r"), ",") {
		p.current++
	}
	return nil
}

// targetState extracts the "Qn" target after the last 'Q' in the line.
func targetState(line string) (int, error) {
	idx := strings.LastIndexByte(line, 'Q')
	if idx < 0 {
		return 0, ErrMalformed
	}
	rest := line[idx+1:]
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, ErrMalformed
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, ErrMalformed
	}
	return n, nil
}

func (p *parseState) build() (*automaton.Automaton, error) {
	trans := make([]int, p.numStates*len(p.symbols))
	for i := range trans {
		trans[i] = automaton.Dummy
	}
	for q := 0; q < p.numStates; q++ {
		if p.sinks[q] {
			for s := range p.symbols {
				trans[q*len(p.symbols)+s] = q
			}
			continue
		}
		for s, target := range p.transitions[q] {
			trans[q*len(p.symbols)+s] = target
		}
	}
	return automaton.New(p.numStates, p.symbols, 0, nil, trans)
}
