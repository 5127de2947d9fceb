package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kbolino/crt64"
	"gopkg.in/yaml.v3"
)

// systemFile is the YAML form of a system. Either or both of the parallel
// lists and the congruences list may be given; the lists come first.
//
//	remainders: [2, 3, 2]
//	moduli: [3, 5, 7]
//	congruences:
//	  - {remainder: 1, modulus: 11}
type systemFile struct {
	Remainders  []int64      `yaml:"remainders"`
	Moduli      []int64      `yaml:"moduli"`
	Congruences []congruence `yaml:"congruences"`
}

type congruence struct {
	Remainder int64 `yaml:"remainder"`
	Modulus   int64 `yaml:"modulus"`
}

func loadSystemFile(path string) (crt64.System, error) {
	f, err := os.Open(path)
	if err != nil {
		return crt64.System{}, err
	}
	defer f.Close()
	sys, err := decodeSystem(f)
	if err != nil {
		return crt64.System{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return sys, nil
}

func decodeSystem(r io.Reader) (crt64.System, error) {
	var sf systemFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil && !errors.Is(err, io.EOF) {
		return crt64.System{}, err
	}
	if len(sf.Remainders) != len(sf.Moduli) {
		return crt64.System{}, fmt.Errorf("%w: %d remainders, %d moduli", crt64.ErrLenMismatch, len(sf.Remainders), len(sf.Moduli))
	}
	var sys crt64.System
	for i := range sf.Moduli {
		sys.Add(sf.Remainders[i], sf.Moduli[i])
	}
	for _, c := range sf.Congruences {
		sys.Add(c.Remainder, c.Modulus)
	}
	return sys, nil
}
