//
// main.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/markkurossi/gmw/circuit"
	"github.com/markkurossi/gmw/env"
	"github.com/markkurossi/gmw/gmw"
	"github.com/markkurossi/gmw/ot"
)

func main() {
	parties := flag.Int("parties", 2, "Number of simulated parties")
	oracleName := flag.String("ot", "ideal", "Oblivious transfer oracle: ideal or co")
	stats := flag.Bool("stats", false, "Print gate statistics before evaluating")
	seed := flag.String("seed", "", "Fix the randomness source to a deterministic seed")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Printf("usage: gmw [flags] CIRCUIT.json BIT...\n")
		os.Exit(1)
	}

	circ, err := loadCircuit(args[0])
	if err != nil {
		log.Fatal(err)
	}

	inputs, err := parseBits(args[1:])
	if err != nil {
		log.Fatal(err)
	}

	oracle, err := selectOracle(*oracleName)
	if err != nil {
		log.Fatal(err)
	}

	if *stats {
		circ.PrintStats(os.Stdout)
	}

	config := &env.Config{}
	if *seed != "" {
		config.Rand = env.SeededRand([]byte(*seed))
	}

	outputs, err := gmw.Evaluate(circ, inputs, *parties, oracle, config)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Circuit: %v\n", circ)
	fmt.Printf("Outputs:")
	for _, bit := range outputs {
		fmt.Printf(" %s", bitString(bit))
	}
	fmt.Println()
}

func loadCircuit(file string) (*circuit.Circuit, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return circuit.Parse(f)
}

func parseBits(args []string) ([]bool, error) {
	bits := make([]bool, len(args))
	for i, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 1)
		if err != nil {
			return nil, fmt.Errorf("invalid input bit %q: %w", arg, err)
		}
		bits[i] = v == 1
	}
	return bits, nil
}

func selectOracle(name string) (ot.Oracle, error) {
	switch name {
	case "ideal":
		return ot.Ideal{}, nil
	case "co":
		return ot.NewChouOrlandi(), nil
	default:
		return nil, fmt.Errorf("unknown OT oracle %q, want ideal or co", name)
	}
}

func bitString(bit bool) string {
	if bit {
		return "1"
	}
	return "0"
}
