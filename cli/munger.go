package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/senatestv/count-service/core"
	"github.com/senatestv/count-service/munge"
)

// buildMungers resolves the --munger flag values into concrete
// core.Munger instances, in the order given: truncate:<n> and
// group-recolor are the two mungers this repository ships.
func (c *CLI) buildMungers() ([]core.Munger, error) {
	var out []core.Munger
	for _, spec := range c.Mungers {
		name, arg, _ := strings.Cut(spec, ":")
		switch name {
		case "truncate":
			n, err := strconv.Atoi(arg)
			if err != nil || n <= 0 {
				return nil, fmt.Errorf("cli: munger %q needs a positive integer depth, e.g. truncate:8", spec)
			}
			out = append(out, munge.TruncateMunger{MaxPrefs: n})
		case "group-recolor":
			m, err := munge.NewGroupRecolorMunger(c.State)
			if err != nil {
				return nil, err
			}
			out = append(out, m)
		default:
			return nil, fmt.Errorf("cli: unknown munger %q", spec)
		}
	}
	return out, nil
}
