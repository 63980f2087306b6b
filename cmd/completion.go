package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/thirteenf/docs"
)

// Completion describes the f13 command line for shell completion.
func Completion() *complete.Command {
	output := map[string]complete.Predictor{
		"o":      predict.Files("*"),
		"format": predict.Set(Formats),
		"firm":   predict.Something,
		"style":  predict.Set{"auto", "dark", "light", "notty", "pink", "dracula"},
		"width":  predict.Something,
	}
	with := func(extra map[string]complete.Predictor) map[string]complete.Predictor {
		flags := make(map[string]complete.Predictor, len(output)+len(extra))
		for k, v := range output {
			flags[k] = v
		}
		for k, v := range extra {
			flags[k] = v
		}
		return flags
	}

	topics, _ := docs.GetAllTopics()
	filings := predict.Files("*.xml")
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"report":  {Flags: with(map[string]complete.Predictor{"n": predict.Something}), Args: filings},
			"stats":   {Flags: with(nil), Args: filings},
			"holding": {Flags: with(map[string]complete.Predictor{"cusip": predict.Something}), Args: filings},
			"topic":   {Args: predict.Set(append(topics, "*"))},
			"help":    {},
			"flags":   {},
		},
		Flags: map[string]complete.Predictor{
			"v": predict.Nothing,
		},
	}
}
