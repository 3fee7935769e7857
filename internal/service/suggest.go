package service

import "strings"

const maxSuggestions = 5

var commonIngredients = []string{
	"Apple", "Avocado", "Bacon", "Baking powder", "Banana", "Basil",
	"Bay leaf", "Beef", "Bell pepper", "Black beans", "Black pepper",
	"Bread", "Broccoli", "Brown sugar", "Butter", "Cabbage", "Carrot",
	"Cauliflower", "Celery", "Cheddar cheese", "Chicken", "Chicken breast",
	"Chicken stock", "Chickpeas", "Chili powder", "Chocolate", "Cinnamon",
	"Coconut milk", "Cod", "Coriander", "Corn", "Cream", "Cucumber", "Cumin",
	"Eggs", "Eggplant", "Feta cheese", "Flour", "Garam masala", "Garlic",
	"Ginger", "Green beans", "Ground beef", "Ham", "Heavy cream", "Honey",
	"Kale", "Lamb", "Leek", "Lemon", "Lentils", "Lettuce", "Lime",
	"Mozzarella", "Mushrooms", "Mustard", "Noodles", "Oats", "Olive oil",
	"Onion", "Oregano", "Paprika", "Parmesan cheese", "Parsley", "Pasta",
	"Peanut butter", "Peas", "Pork", "Potato", "Prawns", "Rice", "Rosemary",
	"Salmon", "Salt", "Sausage", "Shrimp", "Soy sauce", "Spaghetti",
	"Spinach", "Sugar", "Sweet potato", "Thyme", "Tofu", "Tomato",
	"Tomato sauce", "Tuna", "Turkey", "Vanilla", "Vegetable oil", "Vinegar",
	"Yogurt", "Zucchini",
}

// IngredientSuggester completes partially typed ingredient names.
type IngredientSuggester struct {
	ingredients []string
}

// NewIngredientSuggester creates a suggester over the built-in ingredient
// list.
func NewIngredientSuggester() *IngredientSuggester {
	return &IngredientSuggester{ingredients: commonIngredients}
}

// Suggest returns up to five ingredients containing input, ignoring case,
// in list order.
func (s *IngredientSuggester) Suggest(input string) []string {
	input = strings.ToLower(strings.TrimSpace(input))
	suggestions := []string{}
	if input == "" {
		return suggestions
	}
	for _, ing := range s.ingredients {
		if strings.Contains(strings.ToLower(ing), input) {
			suggestions = append(suggestions, ing)
			if len(suggestions) == maxSuggestions {
				break
			}
		}
	}
	return suggestions
}
