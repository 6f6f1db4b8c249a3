package domain

// WishList is a participant's ordered list of free-text gift ideas. It is
// keyed by username, not group, so a returning username keeps its wishes
// even after its group was retired and re-created.
type WishList struct {
	Username string   `json:"username" bson:"username"`
	Items    []string `json:"items" bson:"items"`
}
