package dto

import (
	"strings"

	"ajira_backend/internal/models"

	"github.com/lib/pq"
)

type ClientProfileResponse struct {
	CompanyName string          `json:"company_name"`
	Industry    string          `json:"industry"`
	CompanySize string          `json:"company_size"`
	Website     string          `json:"website"`
	Description string          `json:"description"`
	Currency    models.Currency `json:"currency"`
}

func NewClientProfileResponse(p *models.ClientProfile) *ClientProfileResponse {
	return &ClientProfileResponse{
		CompanyName: p.CompanyName,
		Industry:    p.Industry,
		CompanySize: p.CompanySize,
		Website:     p.Website,
		Description: p.Description,
		Currency:    p.Currency,
	}
}

// JobSeekerProfileResponse carries download URLs in place of the stored file keys.
type JobSeekerProfileResponse struct {
	FirstName            string   `json:"first_name"`
	LastName             string   `json:"last_name"`
	Profession           string   `json:"profession"`
	Experience           string   `json:"experience"`
	Skills               []string `json:"skills"`
	Bio                  string   `json:"bio"`
	GithubLink           string   `json:"github_link"`
	LinkedinLink         string   `json:"linkedin_link"`
	PersonalWebsite      string   `json:"personal_website"`
	PortfolioDescription string   `json:"portfolio_description"`
	Resume               string   `json:"resume,omitempty"`
	Portfolio            string   `json:"portfolio,omitempty"`
	ProfilePicture       string   `json:"profile_picture,omitempty"`
}

func NewJobSeekerProfileResponse(p *models.JobSeekerProfile) *JobSeekerProfileResponse {
	skills := []string(p.Skills)
	if skills == nil {
		skills = []string{}
	}
	return &JobSeekerProfileResponse{
		FirstName:            p.FirstName,
		LastName:             p.LastName,
		Profession:           p.Profession,
		Experience:           p.Experience,
		Skills:               skills,
		Bio:                  p.Bio,
		GithubLink:           p.GithubLink,
		LinkedinLink:         p.LinkedinLink,
		PersonalWebsite:      p.PersonalWebsite,
		PortfolioDescription: p.PortfolioDescription,
	}
}

// UpdateClientProfileRequest is a partial update: nil fields are left untouched.
type UpdateClientProfileRequest struct {
	CompanyName *string          `json:"company_name" validate:"omitnil,notblank,trimmed-min2,max=255"`
	Industry    *string          `json:"industry" validate:"omitnil,notblank,trimmed-min2,max=100"`
	CompanySize *string          `json:"company_size" validate:"omitempty,max=50"`
	Website     *string          `json:"website" validate:"omitempty,url,max=200"`
	Description *string          `json:"description"`
	Currency    *models.Currency `json:"currency" validate:"omitempty,currency"`
}

func (r *UpdateClientProfileRequest) ValidationMessages() map[string]string {
	return map[string]string{
		"currency.currency": "Currency must be either KSH or USD",
	}
}

// Updates returns the column map of the supplied fields.
func (r *UpdateClientProfileRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	setTrimmed(updates, "company_name", r.CompanyName)
	setTrimmed(updates, "industry", r.Industry)
	setString(updates, "company_size", r.CompanySize)
	setString(updates, "website", r.Website)
	setString(updates, "description", r.Description)
	if r.Currency != nil {
		updates["currency"] = *r.Currency
	}
	return updates
}

type UpdateJobSeekerProfileRequest struct {
	FirstName            *string   `json:"first_name" validate:"omitnil,notblank,trimmed-min2,max=100"`
	LastName             *string   `json:"last_name" validate:"omitnil,notblank,trimmed-min2,max=100"`
	Profession           *string   `json:"profession" validate:"omitnil,notblank,trimmed-min2,max=100"`
	Experience           *string   `json:"experience"`
	Skills               *[]string `json:"skills" validate:"omitempty,nonblank-items"`
	Bio                  *string   `json:"bio"`
	GithubLink           *string   `json:"github_link" validate:"omitempty,url,max=200"`
	LinkedinLink         *string   `json:"linkedin_link" validate:"omitempty,url,max=200"`
	PersonalWebsite      *string   `json:"personal_website" validate:"omitempty,url,max=200"`
	PortfolioDescription *string   `json:"portfolio_description"`
}

func (r *UpdateJobSeekerProfileRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	setTrimmed(updates, "first_name", r.FirstName)
	setTrimmed(updates, "last_name", r.LastName)
	setTrimmed(updates, "profession", r.Profession)
	setString(updates, "experience", r.Experience)
	setString(updates, "bio", r.Bio)
	setString(updates, "github_link", r.GithubLink)
	setString(updates, "linkedin_link", r.LinkedinLink)
	setString(updates, "personal_website", r.PersonalWebsite)
	setString(updates, "portfolio_description", r.PortfolioDescription)
	if r.Skills != nil {
		updates["skills"] = pq.StringArray(trimAll(*r.Skills))
	}
	return updates
}

// FileResponse reports where an uploaded file can be fetched.
type FileResponse map[string]string

func setString(updates map[string]interface{}, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}

func setTrimmed(updates map[string]interface{}, column string, value *string) {
	if value != nil {
		updates[column] = strings.TrimSpace(*value)
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}
	return out
}
