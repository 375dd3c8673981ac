// Command quizplay runs an interactive terminal quiz over a question
// bank produced by quizextract.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/quizextract/internal/export"
	"github.com/hyperifyio/quizextract/internal/question"
	"github.com/hyperifyio/quizextract/internal/quiz"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	var (
		bankPath  string
		roundSize int
		scorePath string
		seed      int64
	)
	flag.StringVar(&bankPath, "bank", "questions.json", "Path to the question bank")
	flag.IntVar(&roundSize, "round", 10, "Questions per round")
	flag.StringVar(&scorePath, "scores", "quiz-scores.json", "Score history file")
	flag.Int64Var(&seed, "seed", 0, "Sampling seed (0 = time-based)")
	flag.Parse()

	if err := run(bankPath, scorePath, roundSize, seed); err != nil {
		log.Error().Err(err).Msg("quiz failed")
		os.Exit(1)
	}
}

func run(bankPath, scorePath string, roundSize int, seed int64) error {
	pool, err := export.ReadPoolJSON(bankPath, question.LastWins)
	if err != nil {
		return err
	}
	if pool.Len() == 0 {
		return fmt.Errorf("question bank %s is empty", bankPath)
	}
	var rnd *rand.Rand
	if seed != 0 {
		rnd = rand.New(rand.NewSource(seed))
	}
	session := quiz.NewSession(pool, question.NewSampler(rnd))
	in := bufio.NewScanner(os.Stdin)

	fmt.Printf("Loaded %d questions from %s. Enter A-D, or q to stop.\n\n", pool.Len(), bankPath)
	for session.Remaining() > 0 {
		round, err := session.NextRound(min(roundSize, session.Remaining()))
		if err != nil {
			if errors.Is(err, quiz.ErrPoolExhausted) {
				break
			}
			return err
		}
		for _, rec := range round {
			fmt.Printf("%s\n", rec.Question)
			for _, l := range []string{"A", "B", "C", "D"} {
				fmt.Printf("  %s) %s\n", l, rec.OptionText(l))
			}
			fmt.Print("> ")
			if !in.Scan() {
				return finish(session, scorePath)
			}
			answer := strings.TrimSpace(in.Text())
			if strings.EqualFold(answer, "q") {
				return finish(session, scorePath)
			}
			if session.Answer(rec, answer) {
				fmt.Println("Correct.")
			} else {
				fmt.Printf("Wrong: the answer is %s.\n", rec.Answer)
			}
			fmt.Println()
		}
	}
	return finish(session, scorePath)
}

func finish(session *quiz.Session, scorePath string) error {
	sc := session.Score()
	fmt.Printf("\nScore: %d/%d (%.0f%%)\n", sc.Correct, sc.Asked, sc.Percent())
	if sc.Asked == 0 {
		return nil
	}
	hist, err := quiz.LoadHistory(scorePath)
	if err != nil {
		return err
	}
	if err := hist.Append(scorePath, sc); err != nil {
		return err
	}
	fmt.Printf("Saved to %s (%d sessions recorded).\n", scorePath, len(hist.Scores))
	return nil
}
