package materialize

import (
	"github.com/Nixie-Tech-LLC/marquee/internal/model"
)

// PickActive chooses the one slide a playlist player should run from an
// already visible pool. When any slide is random-eligible one of those is
// drawn with intn; otherwise the first slide in manual order wins.
func PickActive(pool []model.Slide, intn func(n int) int) (model.Slide, bool) {
	if len(pool) == 0 {
		return model.Slide{}, false
	}

	var random []model.Slide
	for _, s := range pool {
		if s.RandomEligible {
			random = append(random, s)
		}
	}
	if len(random) > 0 {
		return random[intn(len(random))], true
	}

	return ManualOrder(pool)[0], true
}
