package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/keywright/keywright/keycode/catalog"
)

// Search queries the keycode catalog and prints ranked matches.
type Search struct {
	Query string `arg:"" help:"Text matched against keycode names and aliases"`
	All   bool   `help:"Include entries hidden from default results"`
	Limit int    `help:"Maximum number of results to print" default:"20"`
}

func (s *Search) Run(logger *slog.Logger) error {
	cat := catalog.Default()

	var results []*catalog.Entry
	if s.All {
		results = cat.SearchAll(s.Query)
	} else {
		results = cat.Search(s.Query)
	}
	logger.Debug("catalog search", "query", s.Query, "matches", len(results))

	if len(results) == 0 {
		fmt.Println("no matches")
		return nil
	}
	if s.Limit > 0 && len(results) > s.Limit {
		results = results[:s.Limit]
	}

	aligned := term.IsTerminal(int(os.Stdout.Fd()))
	for _, e := range results {
		label := strings.ReplaceAll(e.Label, "\n", " ")
		if aligned {
			fmt.Printf("%-16s %-12s %s\n", e.ID, label, e.Tooltip)
		} else {
			fmt.Printf("%s\t%s\t%s\n", e.ID, label, e.Tooltip)
		}
	}
	return nil
}
