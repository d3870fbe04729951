package scraper

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/IbrahimAyad/menuscraper/helpers"
	"github.com/IbrahimAyad/menuscraper/internal/menu"
)

// runStatic performs the cheapest extraction stage: a plain HTTP GET with
// browser-like headers, parsed with goquery and fed through the generic
// adapter. Whole-page text is mined for global customizations so choice
// axes listed outside any item container still surface.
func (s *Scraper) runStatic(url string) (*Extraction, *goquery.Document, error) {
	body, err := helpers.FetchWithRandomHeaders(url)
	if err != nil {
		return nil, nil, err
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	ext := PlatformFor(platformGeneric).Extract(doc, url, s.cfg.MaxContainers)
	ext.Global = minePageCustomizations(doc)

	return ext, doc, nil
}

// minePageCustomizations runs the customization miner over the flattened
// body text and keeps only the structured groups.
func minePageCustomizations(doc *goquery.Document) []menu.Customization {
	text := doc.Find("body").Text()
	mined := MineText(text)
	return mined.Customizations
}
