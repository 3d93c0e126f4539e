package cmd

import (
	"flag"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rdodkins/realestate/docs"
)

// flagPredictors holds the predictors of flags whose values are known ahead.
var flagPredictors = map[string]complete.Predictor{
	"scenario":  predict.Files("*.json"),
	"o":         predict.Files("*"),
	"dir":       predict.Dirs("*"),
	"format":    predict.Set{"jsonl", "csv"},
	"table":     predict.Set{"realestate", "stocks"},
	"loan":      predict.Set(loans),
	"log-level": predict.Set{"debug", "info", "warn", "error"},
}

// flagsOf returns the completion of every flag in fs.
func flagsOf(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := flagPredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}

// Completion returns the shell completion of the whole command line, global flags included.
// Calling Complete on it exits when the shell requests a completion.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{"help": {}, "flags": {}},
		Flags: flagsOf(flag.CommandLine),
	}
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Command.Name(), flag.ContinueOnError)
		c.Command.SetFlags(fs)
		root.Sub[c.Command.Name()] = &complete.Command{Flags: flagsOf(fs)}
	}
	if topics, err := docs.GetAllTopics(); err == nil {
		root.Sub["topic"].Args = predict.Set(append(topics, "*"))
	}
	return root
}
