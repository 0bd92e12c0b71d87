package recipe

import "github.com/VougishTiger/MealSmith/internal/model"

// Library returns the static recipe catalog in declaration order. The
// returned slice is shared and must be treated as read-only.
func Library() []model.RecipeTemplate {
	return library
}

var library = []model.RecipeTemplate{
	{
		Title:       "Garlic Butter Chicken with Rice",
		Description: "Seared chicken breasts in a garlic butter pan sauce over rice.",
		Ingredients: []string{
			"2 chicken breasts",
			"1 cup cooked rice",
			"3 tbsp butter",
			"4 cloves garlic, minced",
			"salt",
			"black pepper",
		},
		Steps: []string{
			"Season the chicken with salt and pepper.",
			"Sear the chicken in butter until golden, about 5 minutes per side.",
			"Add the garlic and cook until fragrant.",
			"Spoon the pan sauce over the chicken and serve with rice.",
		},
	},
	{
		Title:       "Tomato Basil Pasta",
		Description: "Quick weeknight pasta with a fresh tomato and basil sauce.",
		Ingredients: []string{
			"8 oz spaghetti",
			"2 cups diced tomatoes",
			"a handful of fresh basil",
			"2 tbsp olive oil",
			"2 cloves garlic",
			"parmesan cheese",
		},
		Steps: []string{
			"Cook the spaghetti until al dente.",
			"Soften the garlic in olive oil, then add the tomatoes.",
			"Simmer until the sauce thickens, about 10 minutes.",
			"Toss with the pasta, basil, and grated parmesan.",
		},
	},
	{
		Title:       "Veggie Stir Fry",
		Description: "Crisp vegetables tossed in a soy-ginger sauce.",
		Ingredients: []string{
			"2 cups broccoli florets",
			"1 red bell pepper, sliced",
			"1 carrot, julienned",
			"3 tbsp soy sauce",
			"1 tsp grated ginger",
			"1 cup cooked rice",
		},
		Steps: []string{
			"Heat a wok over high heat.",
			"Stir fry the broccoli, pepper, and carrot for 4 minutes.",
			"Add the soy sauce and ginger and toss to coat.",
			"Serve over rice.",
		},
	},
	{
		Title:       "Classic Pancakes",
		Description: "Fluffy breakfast pancakes from scratch.",
		Ingredients: []string{
			"1 1/2 cups flour",
			"2 eggs",
			"1 1/4 cups milk",
			"2 tbsp sugar",
			"1 tsp baking powder",
			"butter for the pan",
		},
		Steps: []string{
			"Whisk the dry ingredients together.",
			"Beat in the eggs and milk until just combined.",
			"Ladle onto a buttered griddle and cook until bubbles form.",
			"Flip and cook until golden.",
		},
	},
	{
		Title:       "Hearty Lentil Soup",
		Description: "A warming one-pot soup of lentils and vegetables.",
		Ingredients: []string{
			"1 cup dried lentils",
			"1 onion, diced",
			"2 carrots, chopped",
			"4 cups vegetable broth",
			"1 tsp cumin",
			"salt",
		},
		Steps: []string{
			"Sweat the onion and carrots until soft.",
			"Add the lentils, broth, and cumin.",
			"Simmer until the lentils are tender, about 30 minutes.",
			"Season with salt and serve.",
		},
	},
	{
		Title:       "Cheese Omelette",
		Description: "A three-egg omelette with melted cheese.",
		Ingredients: []string{
			"3 eggs",
			"1/2 cup shredded cheese",
			"1 tbsp butter",
			"salt",
			"chives",
		},
		Steps: []string{
			"Beat the eggs with a pinch of salt.",
			"Melt the butter in a nonstick pan over medium heat.",
			"Pour in the eggs and scatter the cheese over the top.",
			"Fold, garnish with chives, and serve.",
		},
	},
}
