package snapshot

import (
	"testing"
)

func TestValidate(t *testing.T) {
	Validate(t, struct {
		Name  string `json:"name"`
		Ranks []int  `json:"ranks"`
	}{
		Name:  "wheel",
		Ranks: []int{5, 4, 3, 2, 1},
	}, 0)
}
