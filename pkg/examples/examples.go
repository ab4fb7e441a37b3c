// Package examples builds sample pattern libraries and documents used
// by the demo TUI, the show command, and tests.
package examples

import "github.com/01DesignX/alva/pkg/models"

// Pattern IDs of the standard library.
const (
	PatternPage   = "pattern-page"
	PatternBox    = "pattern-box"
	PatternCard   = "pattern-card"
	PatternText   = "pattern-text"
	PatternImage  = "pattern-image"
	PatternButton = "pattern-button"
)

// StandardPatterns returns the built-in pattern library: containers
// with a children slot, a card with named header/footer slots, and a
// few leaf patterns.
func StandardPatterns() []*models.Pattern {
	return []*models.Pattern{
		{
			ID:   PatternPage,
			Name: "Page",
			Slots: []models.Slot{
				{ID: "page-children", Name: "Children", Type: models.SlotTypeChildren},
			},
		},
		{
			ID:   PatternBox,
			Name: "Box",
			Slots: []models.Slot{
				{ID: "box-children", Name: "Children", Type: models.SlotTypeChildren},
			},
		},
		{
			ID:   PatternCard,
			Name: "Card",
			Slots: []models.Slot{
				{ID: "card-children", Name: "Children", Type: models.SlotTypeChildren},
				{ID: "card-header", Name: "Header", Type: models.SlotTypeNamed},
				{ID: "card-footer", Name: "Footer", Type: models.SlotTypeNamed},
			},
		},
		{ID: PatternText, Name: "Text"},
		{ID: PatternImage, Name: "Image"},
		{ID: PatternButton, Name: "Button"},
	}
}

// SampleProject builds a small landing-page document over the standard
// pattern library, rooted at an open page element.
func SampleProject() *models.Project {
	p := models.NewProject()
	for _, pat := range StandardPatterns() {
		p.AddPattern(pat)
	}

	page := models.NewElement(p, PatternPage, "Landing Page")
	page.SetOpen(true)
	p.SetRoot(page)

	hero := models.NewElement(p, PatternBox, "Hero")
	hero.SetOpen(true)
	appendChild(page, hero)
	appendChild(hero, models.NewElement(p, PatternText, "Welcome Headline"))
	appendChild(hero, models.NewElement(p, PatternImage, "Hero Image"))
	appendChild(hero, models.NewElement(p, PatternButton, "Get Started"))

	feature := models.NewElement(p, PatternCard, "Feature Card")
	appendChild(page, feature)
	if header, ok := feature.ContentBySlot("card-header"); ok {
		header.Append(models.NewElement(p, PatternText, "Feature Title"))
	}
	if footer, ok := feature.ContentBySlot("card-footer"); ok {
		footer.Append(models.NewElement(p, PatternButton, "Learn More"))
	}
	appendChild(feature, models.NewElement(p, PatternText, "Feature Copy"))

	footer := models.NewElement(p, PatternBox, "Footer")
	appendChild(page, footer)
	appendChild(footer, models.NewElement(p, PatternText, "Copyright"))

	return p
}

func appendChild(parent, child *models.Element) {
	if content, ok := parent.ChildrenContent(); ok {
		content.Append(child)
	}
}
