package req

type AddMemberRequest struct {
	MemberID string `json:"member_id" validate:"required"`
}
