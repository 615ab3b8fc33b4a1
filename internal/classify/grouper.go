package classify

import (
	"fmt"

	"github.com/AdamBeresnev/federation-brackets/internal/bracket"
	"github.com/AdamBeresnev/federation-brackets/internal/federation"
	"github.com/google/uuid"
)

// Bucket is one competition category of a championship together with the
// athletes that fall into it and the bracket persisted for it, if any.
type Bucket struct {
	Key              string                    `json:"key"`
	ClassificationID *uuid.UUID                `json:"classification_id"`
	Code             string                    `json:"code"`
	Name             string                    `json:"name"`
	AgeLabel         string                    `json:"age_label"`
	GenderLabel      string                    `json:"gender_label"`
	BeltGroupLabel   string                    `json:"belt_group_label"`
	ModalityName     string                    `json:"modality_name"`
	WeightCategory   string                    `json:"weight_category"`
	Params           federation.CategoryParams `json:"category_params"`
	Athletes         []federation.Registration `json:"athletes"`
	Bracket          bracket.Rounds            `json:"bracket"`
	BracketID        *uuid.UUID                `json:"db_id"`
}

func (b *Bucket) matches(row bracket.Row) bool {
	if b.ClassificationID != nil {
		return row.ClassificationID != nil && *row.ClassificationID == *b.ClassificationID
	}
	return row.ClassificationID == nil && b.Params.Equal(row.CategoryParams)
}

// Superseded is a bracket row that matched a bucket already holding another row.
type Superseded struct {
	BucketKey string
	RowID     uuid.UUID
	ByRowID   uuid.UUID
}

type Grouping struct {
	// Buckets in order of their first registration
	Buckets      []*Bucket
	Unclassified []federation.Registration
	Superseded   []Superseded

	index map[string]*Bucket
}

func (g *Grouping) Bucket(key string) (*Bucket, bool) {
	b, ok := g.index[key]
	return b, ok
}

type Options struct {
	// Bucket unclassified registrations by their raw category references
	// instead of leaving them out.
	GroupUnclassified bool
}

// Group partitions registrations into category buckets and attaches the
// existing bracket rows. Inputs are not modified. When several rows match one
// bucket the last one wins and the others are reported in Superseded.
func Group(registrations []federation.Registration, classifications []federation.Classification, existing []bracket.Row, opts Options) *Grouping {
	g := &Grouping{index: make(map[string]*Bucket)}

	for _, reg := range registrations {
		c := Match(reg, classifications)

		var key string
		switch {
		case c != nil:
			key = "classification_" + c.ID.String()
		case opts.GroupUnclassified && reg.Params().Complete():
			p := reg.Params()
			key = fmt.Sprintf("category_%s_%s_%s_%s", p.ModalityID, p.AgeCategoryID, p.WeightCategoryID, p.BeltCategoryID)
		default:
			g.Unclassified = append(g.Unclassified, reg)
			continue
		}

		b, ok := g.index[key]
		if !ok {
			b = newBucket(key, reg, c)
			g.index[key] = b
			g.Buckets = append(g.Buckets, b)
		}
		b.Athletes = append(b.Athletes, reg)
	}

	for _, row := range existing {
		for _, b := range g.Buckets {
			if !b.matches(row) {
				continue
			}
			if b.BracketID != nil {
				g.Superseded = append(g.Superseded, Superseded{BucketKey: b.Key, RowID: *b.BracketID, ByRowID: row.ID})
			}
			id := row.ID
			b.BracketID = &id
			b.Bracket = row.BracketData
			break
		}
	}

	return g
}

func newBucket(key string, reg federation.Registration, c *federation.Classification) *Bucket {
	b := &Bucket{
		Key:         key,
		GenderLabel: reg.Gender.Label(),
		Params:      reg.Params(),
	}
	if reg.ModalityName != nil {
		b.ModalityName = *reg.ModalityName
	}

	if c == nil {
		b.AgeLabel = AgeGroupOf(reg.Age)
		b.BeltGroupLabel = BeltGroupLabel(BeltGroupOf(reg.BeltLevel))
		b.Name = fmt.Sprintf("%s %s %s", b.AgeLabel, b.GenderLabel, b.BeltGroupLabel)
		return b
	}

	id := c.ID
	b.ClassificationID = &id
	b.Code = c.Code
	b.Name = c.Name
	b.AgeLabel = c.AgeCategory
	b.GenderLabel = c.Gender.Label()
	b.BeltGroupLabel = BeltGroupLabel(c.BeltGroup)
	if c.WeightCategoryName != nil {
		b.WeightCategory = *c.WeightCategoryName
	}
	return b
}
