package request

// SelectionRequest carries the quantities picked on the order screen, keyed by product name
type SelectionRequest struct {
	Selection map[string]int `json:"selection" binding:"required"`
}
