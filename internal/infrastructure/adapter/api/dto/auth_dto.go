package dto

// AuthRequest is the action-dispatched body of the /auth endpoint.
// All fields are flat scalars; which ones matter depends on the action.
type AuthRequest struct {
	Action      string `json:"action"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PointsDelta int64  `json:"points_delta"`
}

// PointsResponse carries the balance after an update_points action
type PointsResponse struct {
	BloodPoints int64 `json:"blood_points"`
}
