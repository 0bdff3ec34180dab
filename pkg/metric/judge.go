package metric

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"modelscore/pkg/core"
	"modelscore/pkg/model"
)

const rampupInstruction = `Given the following readme, give a number from 0 to 1.0, with 1 being the best, on what the 'ramp-up' time of this model would be for a brand new engineer. Take into account things like the descriptions and examples given in the readme to make the score. ONLY PROVIDE A SINGLE NUMBER, NO OTHER TEXT SHOULD BE IN THE RESPONSE. IT SHOULD BE DIRECTLY CONVERTABLE TO A FLOAT.`

const performanceInstruction = `Given the following readme, give a number from 0 to 1.0, with 1 being the best, on the performance claims of this model. Take into account things like verifiable claims and evidence provided within the readme to make the score. ONLY PROVIDE A SINGLE NUMBER, NO OTHER TEXT SHOULD BE IN THE RESPONSE. IT SHOULD BE DIRECTLY CONVERTABLE TO A FLOAT.`

// RampupTime asks an LLM judge to rate, from the README alone, how quickly a
// new engineer could get productive with the model.
// Parameters: filename, verbosity, log_queue.
type RampupTime struct {
	Judge model.Client
}

func (m RampupTime) Func(ctx context.Context, args []any) (core.Score, time.Duration, error) {
	return judgeReadme(ctx, m.Judge, "ramp-up time", rampupInstruction, args)
}

// PerformanceClaims asks an LLM judge to rate how well the README's
// performance claims are evidenced.
// Parameters: filename, verbosity, log_queue.
type PerformanceClaims struct {
	Judge model.Client
}

func (m PerformanceClaims) Func(ctx context.Context, args []any) (core.Score, time.Duration, error) {
	return judgeReadme(ctx, m.Judge, "performance claims", performanceInstruction, args)
}

func judgeReadme(ctx context.Context, judge model.Client, what, instruction string, args []any) (core.Score, time.Duration, error) {
	filename, err := stringArg(args, 0, "filename")
	if err != nil {
		return core.Score{}, 0, err
	}
	verbosity, err := intArg(args, 1, "verbosity")
	if err != nil {
		return core.Score{}, 0, err
	}
	log, err := logArg(args, 2, "log_queue")
	if err != nil {
		return core.Score{}, 0, err
	}

	start := time.Now()
	if verbosity >= Info {
		log.Postf("[INFO] Calling LLM for %s on %q...", what, filepath.Base(filename))
	}

	text, err := os.ReadFile(filename)
	if err != nil {
		log.Postf("[CRITICAL ERROR] in %s metric: %v", what, err)
		return core.Score{}, time.Since(start), err
	}

	response, err := judge.Generate(ctx, instruction+"\n\n"+string(text), model.Options{
		MaxTokens: 16,
	})
	if err != nil {
		log.Postf("[CRITICAL ERROR] in %s metric: %v", what, err)
		return core.Score{}, time.Since(start), err
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(response), 64)
	if err != nil {
		if verbosity >= Info {
			log.Postf("[WARNING] Could not convert LLM response %q to a float", response)
		}
		return core.Score{}, time.Since(start), fmt.Errorf("metric: %s judge response %q is not a number", what, response)
	}
	if score < 0 || score > 1 {
		return core.Score{}, time.Since(start), fmt.Errorf("metric: %s judge score %.2f outside [0,1]", what, score)
	}

	if verbosity >= Debug {
		log.Postf("[DEBUG] Successfully converted LLM response to score: %.2f", score)
	}
	return core.Score{Value: score}, time.Since(start), nil
}
