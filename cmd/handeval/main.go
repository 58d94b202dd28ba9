package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"handstrength-server/pkg/deck"
	"handstrength-server/pkg/poker"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

var wheelRank = flag.String("wheel", "five", "how the wheel is scored (five, ace-high)")
var jsonOutput = flag.Bool("json", false, "print one JSON object per hand")

// errInvalidHands is returned when at least one hand could not be evaluated
var errInvalidHands = errors.New("one or more hands were invalid")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] HAND...\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Each HAND is a comma separated list of five cards, i.e., As,Ks,Qs,Js,Ts")
		fmt.Fprintln(flag.CommandLine.Output(), "With no HAND arguments, hands are read from stdin one per line.")
		flag.PrintDefaults()
	}
	flag.Parse()

	wheel, err := poker.ParseWheelRank(*wheelRank)
	if err != nil {
		logrus.WithError(err).Fatal("invalid -wheel")
	}

	hands := flag.Args()
	if len(hands) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			flag.Usage()
			os.Exit(2)
		}

		hands, err = readHands(os.Stdin)
		if err != nil {
			logrus.WithError(err).Fatal("could not read hands")
		}
	}

	p := printer{
		evaluator: poker.NewEvaluator(poker.WithWheelRank(wheel)),
		json:      *jsonOutput,
	}

	if err := p.run(hands, os.Stdout); err != nil {
		os.Exit(1)
	}
}

// readHands returns every non-empty line that isn't a # comment
func readHands(r io.Reader) ([]string, error) {
	hands := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		hands = append(hands, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return hands, nil
}

type printer struct {
	evaluator *poker.Evaluator
	json      bool
}

type result struct {
	Cards       string      `json:"cards"`
	Category    string      `json:"category"`
	Score       poker.Score `json:"score"`
	Description string      `json:"description"`
}

// run evaluates every hand, printing the valid ones and logging the invalid ones
func (p printer) run(hands []string, w io.Writer) error {
	enc := json.NewEncoder(w)
	failed := false

	for _, hand := range hands {
		res, err := p.evaluate(hand)
		if err != nil {
			logrus.WithField("hand", hand).WithError(err).Error("could not evaluate hand")
			failed = true
			continue
		}

		if p.json {
			if err := enc.Encode(res); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", res.Cards, res.Category, res.Score, res.Description); err != nil {
			return err
		}
	}

	if failed {
		return errInvalidHands
	}

	return nil
}

func (p printer) evaluate(hand string) (result, error) {
	cards, err := deck.ParseCards(hand)
	if err != nil {
		return result{}, err
	}

	h, err := p.evaluator.Analyze(cards)
	if err != nil {
		return result{}, err
	}

	return result{
		Cards:       deck.CardsToString(cards),
		Category:    h.GetCategory().String(),
		Score:       h.GetScore(),
		Description: h.Describe(),
	}, nil
}
