package handler

type loginRequest struct {
	GroupID  string `json:"group_id" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Language string `json:"language"`
}

type participantView struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

type groupView struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Budget   float64 `json:"budget"`
	Currency string  `json:"currency"`
}

type loginResponse struct {
	Token       string          `json:"token"`
	Participant participantView `json:"participant"`
	Group       groupView       `json:"group"`
}

// assignmentResponse is the giver's view: who they give to, that person's
// wish list, and the group's budget. It never reveals other pairs.
type assignmentResponse struct {
	Receiver participantView `json:"receiver"`
	WishList []string        `json:"wish_list"`
	Budget   float64         `json:"budget"`
	Currency string          `json:"currency"`
}

type wishListRequest struct {
	// Items must be present but may be empty: clearing the list is a
	// legitimate full-replace write.
	Items []string `json:"items" validate:"required,max=100,dive,max=500"`
}

type wishListResponse struct {
	Items []string `json:"items"`
}
