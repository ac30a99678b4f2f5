package models

// Review is one anonymous submission for a movie. There is deliberately no
// id, author, or timestamp: position in the stored collection is the only
// temporal signal.
type Review struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
