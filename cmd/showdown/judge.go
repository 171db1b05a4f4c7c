package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/showdown/internal/deck"
	"github.com/lox/showdown/internal/ranking"
)

var (
	winnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))
)

// JudgeCmd ranks hands given as arguments or read from a file
type JudgeCmd struct {
	Hands []string `arg:"" optional:"" help:"Hands as quoted card codes, e.g. \"4D 5D 6D 7D 8D\""`
	File  string   `short:"f" help:"Read hands from a file, one per line (- for stdin)"`
	Quiet bool     `short:"q" help:"Print winning hands only"`
}

func (c *JudgeCmd) Run() error {
	hands := c.Hands
	if c.File != "" {
		fromFile, err := readHands(c.File)
		if err != nil {
			return err
		}
		hands = append(hands, fromFile...)
	}
	if len(hands) == 0 {
		return errors.New("no hands to judge; pass hands as arguments or use --file")
	}

	winners, err := ranking.WinningHands(hands)
	if err != nil {
		return err
	}

	if c.Quiet {
		for _, h := range winners {
			fmt.Println(h)
		}
		return nil
	}

	won := make(map[string]bool, len(winners))
	for _, h := range winners {
		won[h] = true
	}

	for _, h := range hands {
		cards, err := deck.ParseHand(h)
		if err != nil {
			return err
		}
		classification, err := ranking.Classify(cards)
		if err != nil {
			return err
		}

		line := fmt.Sprintf("%-16s %s", h, categoryStyle.Render(classification.Category.String()))
		if won[h] {
			line += "  " + winnerStyle.Render("WINNER")
		}
		fmt.Println(line)
	}

	return nil
}

// readHands reads one hand per line, skipping blanks
func readHands(path string) ([]string, error) {
	var r *os.File
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open hands file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var hands []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			hands = append(hands, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hands: %w", err)
	}
	return hands, nil
}
