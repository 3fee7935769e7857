package main

import "github.com/pageza/recipefinder/backend/internal/types"

func ing(name, amount, unit string) types.Ingredient {
	return types.Ingredient{Name: name, Amount: amount, Unit: unit}
}

var demoRecipes = []types.Recipe{
	{
		ID:             "demo-1",
		Title:          "Spaghetti Carbonara",
		Image:          "https://images.unsplash.com/photo-1612874742237-6526221588e3?auto=format&fit=crop&w=1771&q=80",
		ReadyInMinutes: 30,
		Servings:       4,
		Cuisines:       []string{"Italian"},
		Summary:        "A classic Italian pasta dish with eggs, cheese, pancetta, and black pepper.",
		Instructions: "Cook spaghetti according to package directions. Cook pancetta until crispy. Whisk eggs, grated cheese " +
			"and black pepper. Toss the hot pasta with the pancetta, then quickly stir in the egg mixture, adding pasta " +
			"water as needed. Serve immediately with extra cheese and black pepper.",
		Ingredients: []types.Ingredient{
			ing("Spaghetti", "1", "pound"),
			ing("Pancetta", "8", "ounces"),
			ing("Eggs", "4", "large"),
			ing("Parmesan cheese", "1", "cup"),
			ing("Black pepper", "1", "teaspoon"),
			ing("Salt", "", "to taste"),
		},
	},
	{
		ID:             "demo-2",
		Title:          "Chicken Tikka Masala",
		Image:          "https://images.unsplash.com/photo-1565557623262-b51c2513a641?auto=format&fit=crop&w=1771&q=80",
		ReadyInMinutes: 45,
		Servings:       6,
		Cuisines:       []string{"Indian"},
		Summary:        "A flavorful Indian curry dish with marinated chicken in a creamy tomato sauce.",
		Instructions: "Marinate chicken in yogurt, lemon juice and spices for at least 1 hour, then grill until cooked " +
			"through. Soften onions, add garlic and ginger, then tomato sauce and spices and simmer 10 minutes. Add cream, " +
			"then the chicken, and simmer 10 more minutes. Garnish with cilantro.",
		Ingredients: []types.Ingredient{
			ing("Chicken breast", "2", "pounds"),
			ing("Yogurt", "1", "cup"),
			ing("Lemon juice", "2", "tablespoons"),
			ing("Garam masala", "2", "tablespoons"),
			ing("Onion", "1", "large"),
			ing("Garlic", "4", "cloves"),
			ing("Ginger", "1", "tablespoon"),
			ing("Tomato sauce", "15", "ounces"),
			ing("Heavy cream", "1", "cup"),
			ing("Cilantro", "1/4", "cup"),
		},
	},
	{
		ID:             "demo-3",
		Title:          "Beef Tacos",
		Image:          "https://images.unsplash.com/photo-1551504734-5ee1c4a1479b?auto=format&fit=crop&w=1770&q=80",
		ReadyInMinutes: 25,
		Servings:       4,
		Cuisines:       []string{"Mexican"},
		Summary:        "Classic Mexican tacos with seasoned ground beef and all the toppings.",
		Instructions: "Brown ground beef and drain the fat. Add taco seasoning and water and simmer 5 minutes. Warm the " +
			"shells, fill with beef and top with lettuce, tomato, cheese, sour cream and salsa.",
		Ingredients: []types.Ingredient{
			ing("Ground beef", "1", "pound"),
			ing("Taco seasoning", "1", "packet"),
			ing("Water", "2/3", "cup"),
			ing("Taco shells", "8", "count"),
			ing("Lettuce", "2", "cups"),
			ing("Tomato", "1", "large"),
			ing("Cheddar cheese", "1", "cup"),
			ing("Sour cream", "1/2", "cup"),
			ing("Salsa", "1/2", "cup"),
		},
	},
	{
		ID:             "demo-4",
		Title:          "Vegetable Stir Fry",
		Image:          "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?auto=format&fit=crop&w=1770&q=80",
		ReadyInMinutes: 20,
		Servings:       2,
		Cuisines:       []string{"Asian", "Chinese"},
		Summary:        "A quick and healthy vegetable stir fry with a flavorful sauce.",
		Instructions: "Heat oil in a wok over high heat. Add garlic and ginger for 30 seconds, then the vegetables, " +
			"hardest first, until crisp-tender. Mix soy sauce, broth, cornstarch and honey, pour over and cook until " +
			"thickened. Serve over rice or noodles.",
		Ingredients: []types.Ingredient{
			ing("Vegetable oil", "2", "tablespoons"),
			ing("Garlic", "2", "cloves"),
			ing("Ginger", "1", "tablespoon"),
			ing("Broccoli", "1", "cup"),
			ing("Carrots", "2", "medium"),
			ing("Bell pepper", "1", "large"),
			ing("Snow peas", "1", "cup"),
			ing("Soy sauce", "3", "tablespoons"),
			ing("Vegetable broth", "1/4", "cup"),
			ing("Cornstarch", "1", "tablespoon"),
			ing("Honey", "1", "tablespoon"),
		},
	},
}
