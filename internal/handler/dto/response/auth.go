package response

import "bonojuntos/internal/usecase/queries"

type LoginResponse struct {
	AccessToken  string                    `json:"access_token"`
	Collaborator *queries.CollaboratorView `json:"collaborator"`
}
