package ports

// Confirmer asks the user a yes/no question
type Confirmer interface {
	// Confirm returns true when the user agreed to prompt
	Confirm(prompt string) (bool, error)
}
