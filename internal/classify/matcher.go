package classify

import "github.com/AdamBeresnev/federation-brackets/internal/federation"

// Match finds the classification for a registration. A registration that
// carries a weight category is matched on it first; otherwise, or when that
// finds nothing, its weight is checked against each classification's
// inclusive weight range. The first hit in slice order wins. Inactive
// classifications are skipped. Returns nil when nothing matches.
func Match(reg federation.Registration, classifications []federation.Classification) *federation.Classification {
	ageGroup := AgeGroupOf(reg.Age)
	beltGroup := BeltGroupOf(reg.BeltLevel)

	sameGroup := func(c *federation.Classification) bool {
		return c.Active && c.AgeCategory == ageGroup && c.Gender == reg.Gender && c.BeltGroup == beltGroup
	}

	if reg.WeightCategoryID != nil {
		for i := range classifications {
			c := &classifications[i]
			if sameGroup(c) && c.WeightCategoryID == *reg.WeightCategoryID {
				return c
			}
		}
	}

	if reg.Weight != nil {
		w := *reg.Weight
		for i := range classifications {
			c := &classifications[i]
			if sameGroup(c) && w >= c.MinWeight && w <= c.MaxWeight {
				return c
			}
		}
	}

	return nil
}
