package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/cli"
	"github.com/julianstephens/habitual/internal/quotes"
)

type QuoteCmd struct{}

func (c *QuoteCmd) Run(ctx *cli.Context) error {
	loc, err := ctx.Location()
	if err != nil {
		return err
	}

	q := quotes.OfDay(time.Now().In(loc))
	fmt.Printf("%q\n    - %s\n", q.Text, q.Author)
	return nil
}
