// Command rangelex tokenizes an input file against a YAML rule file
// and prints the annotated tokens it finds.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/coregx/rangelex/rules"
	"github.com/coregx/rangelex/symbol"
	"github.com/coregx/rangelex/tokenizer"
)

type options struct {
	RuleFile string
	Input    string
	JSON     bool
	Verbose  bool
	Silent   bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Tokenize an input stream against a YAML rule file of regular patterns.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.RuleFile, "rules", "r", "", "YAML rule file declaring token patterns"),
		flagSet.StringVarP(&opts.Input, "input", "i", "", "input file to tokenize (stdin if omitted)"),
	)
	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVar(&opts.JSON, "json", false, "emit tokens as JSON lines"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	return opts
}

type jsonToken struct {
	Token string `json:"token"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text"`
}

func main() {
	opts := parseFlags()

	if opts.RuleFile == "" {
		gologger.Fatal().Msgf("no rule file given, use -rules")
	}

	ruleset, err := rules.Load(opts.RuleFile)
	if err != nil {
		gologger.Fatal().Msgf("%s", err)
	}
	matcher, names, err := ruleset.Compile()
	if err != nil {
		gologger.Fatal().Msgf("%s", err)
	}
	d, err := matcher.Prepare()
	if err != nil {
		gologger.Fatal().Msgf("could not prepare tokenizer: %s", err)
	}
	gologger.Verbose().Msgf("prepared %d rules into a %d-state DFA", len(ruleset.Rules), d.CountStates())

	input := os.Stdin
	if opts.Input != "" {
		f, err := os.Open(opts.Input)
		if err != nil {
			gologger.Fatal().Msgf("could not open input: %s", err)
		}
		defer f.Close()
		input = f
	}
	raw, err := io.ReadAll(input)
	if err != nil {
		gologger.Fatal().Msgf("could not read input: %s", err)
	}

	stream := tokenizer.FromReader(d, symbol.Runes(string(raw)))
	gologger.Verbose().Msgf("tokenized %d symbols into %d tokens", stream.InputLen(), stream.OutputLen())

	enc := json.NewEncoder(os.Stdout)
	for _, tok := range stream.Tokens() {
		name := names[tok.Output]
		text := string(charsToRunes(stream.InputForToken(tok)))
		if opts.JSON {
			if err := enc.Encode(jsonToken{Token: name, Start: tok.Location.Start, End: tok.Location.End, Text: text}); err != nil {
				gologger.Fatal().Msgf("could not write output: %s", err)
			}
			continue
		}
		fmt.Printf("%s\t%s\t%q\n", name, tok.Location, text)
	}
}

func charsToRunes(chars []symbol.Char) []rune {
	out := make([]rune, len(chars))
	for i, c := range chars {
		out[i] = rune(c)
	}
	return out
}
