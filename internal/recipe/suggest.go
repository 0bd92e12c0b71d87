package recipe

import (
	"math/rand"
	"strings"

	"github.com/VougishTiger/MealSmith/internal/model"
)

// DefaultSampleSize is the number of recipes suggested per request.
const DefaultSampleSize = 5

// Sampler picks n distinct indexes from [0, population) without replacement.
// It is an injected dependency so tests can supply a deterministic pick.
type Sampler interface {
	Sample(n, population int) []int
}

type randSampler struct{}

// NewSampler returns a Sampler backed by the shared math/rand source.
func NewSampler() Sampler {
	return randSampler{}
}

func (randSampler) Sample(n, population int) []int {
	if n > population {
		n = population
	}
	return rand.Perm(population)[:n]
}

// Suggest samples up to sampleSize recipes from the library and partitions
// each template's ingredients into have/missing against the pantry. Both
// partitions keep the template's ingredient order. An empty library yields
// an empty result; an empty pantry marks every ingredient missing.
func Suggest(items []model.PantryItem, library []model.RecipeTemplate, sampleSize int, sampler Sampler) []model.SuggestedRecipe {
	if len(library) == 0 || sampleSize <= 0 {
		return nil
	}

	names := pantryNames(items)

	var suggestions []model.SuggestedRecipe
	for _, idx := range sampler.Sample(sampleSize, len(library)) {
		tmpl := library[idx]
		sug := model.SuggestedRecipe{RecipeTemplate: tmpl}
		for _, ing := range tmpl.Ingredients {
			if matchesPantry(ing, names) {
				sug.Have = append(sug.Have, ing)
			} else {
				sug.Missing = append(sug.Missing, ing)
			}
		}
		suggestions = append(suggestions, sug)
	}
	return suggestions
}

// pantryNames returns the lower-cased non-empty pantry item names.
func pantryNames(items []model.PantryItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		name := strings.ToLower(strings.TrimSpace(item.Name))
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// matchesPantry reports whether the ingredient description matches any
// pantry name by symmetric substring containment: "chicken" in the pantry
// covers "2 chicken breasts", and "2 cups cooked rice" in the pantry covers
// "rice". The first match wins.
func matchesPantry(ingredient string, names []string) bool {
	ing := strings.ToLower(ingredient)
	for _, name := range names {
		if strings.Contains(ing, name) || strings.Contains(name, ing) {
			return true
		}
	}
	return false
}
