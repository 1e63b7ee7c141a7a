// SPDX-License-Identifier: MIT

package methods

import (
	"fmt"
	"sort"
)

var constructors = map[string]func(...Option) Method{
	"aras":   func(o ...Option) Method { return NewARAS(o...) },
	"codas":  func(o ...Option) Method { return NewCODAS(o...) },
	"copras": func(o ...Option) Method { return NewCOPRAS(o...) },
	"edas":   func(o ...Option) Method { return NewEDAS(o...) },
	"mabac":  func(o ...Option) Method { return NewMABAC(o...) },
	"mairca": func(o ...Option) Method { return NewMAIRCA(o...) },
	"marcos": func(o ...Option) Method { return NewMARCOS(o...) },
	"moora":  func(o ...Option) Method { return NewMOORA(o...) },
	"ocra":   func(o ...Option) Method { return NewOCRA(o...) },
	"topsis": func(o ...Option) Method { return NewTOPSIS(o...) },
	"vikor":  func(o ...Option) Method { return NewVIKOR(o...) },
	"waspas": func(o ...Option) Method { return NewWASPAS(o...) },
	"wpm":    func(o ...Option) Method { return NewWPM(o...) },
	"wsm":    func(o ...Option) Method { return NewWSM(o...) },
}

// New builds a method by registry name with its defaults overridden by opts.
func New(name string, opts ...Option) (Method, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("New(%q): %w", name, ErrUnknown)
	}

	return ctor(opts...), nil
}

// Names lists the registered method names in lexical order.
func Names() []string {
	out := make([]string, 0, len(constructors))
	for name := range constructors {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
