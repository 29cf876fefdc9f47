package domain

// Staging holds the data of a recipe while its description block is running.
// It is owned by a single builder and discarded once the block completes.
type Staging struct {
	Name        string
	Ingredients []string
	MethodSteps []string
}

// NewStaging returns an empty staging record for the named recipe.
func NewStaging(name string) *Staging {
	return &Staging{
		Name:        name,
		Ingredients: []string{},
		MethodSteps: []string{},
	}
}

// AddIngredient appends an ingredient.
func (s *Staging) AddIngredient(text string) {
	s.Ingredients = append(s.Ingredients, text)
}

// AddStep appends a method step.
func (s *Staging) AddStep(text string) {
	s.MethodSteps = append(s.MethodSteps, text)
}

// Recipe materializes the staging record into an immutable Recipe.
// Later writes to the staging record do not affect the returned value.
func (s *Staging) Recipe() Recipe {
	return NewRecipe(s.Name, s.Ingredients, s.MethodSteps)
}
