package request

import "video-catalog/pkg/utils"

var GenreRules = []utils.Rule{
	{Field: "name", Kind: utils.KindString, Required: true, Tags: "max=255"},
	{Field: "is_active", Kind: utils.KindBoolean},
}

type GenreRequest struct {
	Name     string
	IsActive *bool
}

func NewGenreRequest(fields map[string]any) *GenreRequest {
	name, _ := fields["name"].(string)
	return &GenreRequest{
		Name:     name,
		IsActive: optionalBool(fields, "is_active"),
	}
}
