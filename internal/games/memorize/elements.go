package memorize

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-memorize/internal/assets"
)

// Element is a figure type taking part in a session, with its color spec.
type Element struct {
	Figure FigureType
	Color  ColorSpec
}

// selectFigures samples amount distinct figures from catalog and colors them
// under policy.
func selectFigures(rng *rand.Rand, sel *ColorSelector, catalog []FigureType, policy ColorPolicy, amount int) []Element {
	if amount > len(catalog) {
		panic(fmt.Sprintf("memorize: %d figures requested, catalog has %d", amount, len(catalog)))
	}
	if amount <= 0 {
		return nil
	}

	colors := sel.Pick(policy, amount)
	out := make([]Element, amount)
	for i, idx := range rng.Perm(len(catalog))[:amount] {
		out[i] = Element{Figure: catalog[idx], Color: colors[i]}
	}
	return out
}

// SelectElements2D picks the static-mode figures. With fewer images than
// amount every image is used and the remaining slots get distinct 2D shapes;
// otherwise amount distinct images are sampled and no shapes are used. Images
// sharing a name count once.
func SelectElements2D(rng *rand.Rand, sel *ColorSelector, images []*assets.Image, policy ColorPolicy, amount int) []Element {
	images = uniqueImages(images)
	if len(images) >= amount {
		out := make([]Element, amount)
		for i, idx := range rng.Perm(len(images))[:amount] {
			img := images[idx]
			out[i] = Element{Figure: FigureType(img.Name), Color: ImageColor(img)}
		}
		return out
	}

	out := make([]Element, 0, amount)
	used := make(map[FigureType]bool, len(images))
	for _, img := range images {
		out = append(out, Element{Figure: FigureType(img.Name), Color: ImageColor(img)})
		used[FigureType(img.Name)] = true
	}

	var pool []FigureType
	for _, s := range Shapes() {
		if !used[s] {
			pool = append(pool, s)
		}
	}
	return append(out, selectFigures(rng, sel, pool, policy, amount-len(images))...)
}

// uniqueImages drops images whose name was already seen, keeping order.
func uniqueImages(images []*assets.Image) []*assets.Image {
	seen := make(map[string]bool, len(images))
	out := make([]*assets.Image, 0, len(images))
	for _, img := range images {
		if seen[img.Name] {
			continue
		}
		seen[img.Name] = true
		out = append(out, img)
	}
	return out
}

// SelectElements3D picks the dynamic-mode solids.
func SelectElements3D(rng *rand.Rand, sel *ColorSelector, policy ColorPolicy, amount int) []Element {
	return selectFigures(rng, sel, Solids(), policy, amount)
}
