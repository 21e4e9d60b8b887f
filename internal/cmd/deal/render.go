package deal

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	coredeal "github.com/louisbranch/swampdeck/internal/core/deal"
)

// Result is the JSON document the command prints.
type Result struct {
	Seed            int64             `json:"seed"`
	PoolSize        int               `json:"pool_size"`
	InitialHandSize int               `json:"initial_hand_size"`
	HandSize        int               `json:"hand_size"`
	Attempts        int               `json:"attempts"`
	Players         []coredeal.Player `json:"players"`
}

func render(out io.Writer, format string, result Result) error {
	if format == FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if _, err := fmt.Fprintf(out, "seed: %d\nhand size: %d of %d (pool %d, attempts %d)\n\n",
		result.Seed, result.HandSize, result.InitialHandSize, result.PoolSize, result.Attempts); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PLAYER\tGAS MASK\tSWAMP\tHAND")
	for _, p := range result.Players {
		cards := make([]string, len(p.Hand))
		for i, c := range p.Hand {
			cards[i] = c.String()
		}
		mask := "no"
		if p.HasGasMask {
			mask = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", p.Name, mask, p.Status.SwampChargesLeft, strings.Join(cards, " "))
	}
	return tw.Flush()
}
