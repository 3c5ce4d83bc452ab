package res

type ChatResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type MemberResponse struct {
	MembershipID string `json:"membershipId"`
	MemberID     string `json:"memberId"`
	MemberName   string `json:"memberName"`
}
