package response

import (
	"restro-api/internal/usecase/queries"
)

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user,omitempty"`
}

type MeResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}
