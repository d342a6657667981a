package view

import (
	"strings"

	apperrors "github.com/umalmyha/crm-console/internal/errors"
	"github.com/umalmyha/crm-console/internal/model"
)

// Cascade drives subcategory choice from primary value using server taxonomy
type Cascade struct {
	Taxonomy model.Taxonomy
	Primary  string
	Sub      string
}

// SelectPrimary sets primary value. Subcategory is always cleared on change.
func (c *Cascade) SelectPrimary(primary string) {
	if primary == c.Primary {
		return
	}
	c.Primary = primary
	c.Sub = ""
}

// SelectSub sets subcategory of current primary value
func (c *Cascade) SelectSub(sub string) {
	c.Sub = sub
}

// Names returns primary values to choose from
func (c *Cascade) Names() []string {
	return c.Taxonomy.Names()
}

// Choices returns allowed subcategories of current primary value
func (c *Cascade) Choices() []string {
	if c.Primary == "" {
		return nil
	}
	return c.Taxonomy.Subcategories(c.Primary)
}

// FreeText reports whether subcategory is entered as free text
func (c *Cascade) FreeText() bool {
	return c.Primary != "" && len(c.Choices()) == 0
}

// Pair validates selection and returns (primary, subcategory) ready to be submitted
func (c *Cascade) Pair() (string, string, error) {
	if c.Primary == "" || !c.Taxonomy.Has(c.Primary) {
		return "", "", apperrors.NewBusinessErr("primary", "Select a value from the list")
	}

	choices := c.Choices()
	if len(choices) == 0 {
		sub := strings.TrimSpace(c.Sub)
		if sub == "" {
			return "", "", apperrors.NewBusinessErr("subCategory", "Enter your own subcategory")
		}
		return c.Primary, sub, nil
	}

	for _, choice := range choices {
		if choice == c.Sub {
			return c.Primary, c.Sub, nil
		}
	}
	return "", "", apperrors.NewBusinessErr("subCategory", "Select a subcategory from the list")
}

// Reset clears selection but keeps fetched taxonomy
func (c *Cascade) Reset() {
	c.Primary = ""
	c.Sub = ""
}
